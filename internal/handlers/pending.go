package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/mirgames/donate-api/internal/usecase"
	"github.com/mirgames/donate-api/internal/utils"
	"github.com/rs/zerolog/log"
)

type pendingEntry struct {
	ID          int64     `json:"id"`
	AccountID   int64     `json:"accountId"`
	Kind        string    `json:"kind"`
	CoinsReward int64     `json:"coinsReward"`
	MoneyReward int64     `json:"moneyReward"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PendingHandler serves the consumer's pull of unsettled donations.
type PendingHandler struct {
	queue Queue
}

func NewPendingHandler(queue Queue) *PendingHandler {
	return &PendingHandler{queue: queue}
}

func (h *PendingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit := int32(usecase.MaxPeekLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			utils.WriteJSONError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = int32(parsed)
	}

	donations, err := h.queue.Peek(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("failed to list pending donations")
		writeDomainError(w, err)
		return
	}

	entries := make([]pendingEntry, len(donations))
	for i, d := range donations {
		entries[i] = pendingEntry{
			ID:          d.ID,
			AccountID:   d.AccountID,
			Kind:        d.Kind,
			CoinsReward: d.CoinsReward,
			MoneyReward: d.MoneyReward,
			CreatedAt:   d.CreatedAt.Time,
		}
	}

	utils.WriteJSON(w, http.StatusOK, entries)
}
