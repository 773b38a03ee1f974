package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mirgames/donate-api/internal/utils"
	"github.com/rs/zerolog/log"
)

type settleRequest struct {
	DonationID int64 `json:"donationId" validate:"required"`
}

// SettleHandler acknowledges a donation: credits the account and marks
// the entry processed in one atomic step.
type SettleHandler struct {
	queue Queue
}

func NewSettleHandler(queue Queue) *SettleHandler {
	return &SettleHandler{queue: queue}
}

func (h *SettleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req settleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.WriteJSONError(w, http.StatusBadRequest, "donationId is required")
		return
	}

	donation, err := h.queue.ClaimAndSettle(r.Context(), req.DonationID)
	if err != nil {
		log.Warn().Err(err).Int64("donation_id", req.DonationID).Msg("settlement rejected")
		writeDomainError(w, err)
		return
	}

	log.Info().
		Int64("donation_id", donation.ID).
		Int64("account_id", donation.AccountID).
		Int64("coins", donation.CoinsReward).
		Int64("money", donation.MoneyReward).
		Msg("donation settled")
	utils.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
