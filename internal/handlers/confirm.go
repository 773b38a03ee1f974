package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mirgames/donate-api/internal/models"
	"github.com/mirgames/donate-api/internal/utils"
	"github.com/rs/zerolog/log"
)

type confirmRequest struct {
	AccountID int64   `json:"accountId" validate:"required"`
	Kind      string  `json:"kind" validate:"required"`
	Amount    float64 `json:"amount" validate:"required"`
	OrderID   string  `json:"orderId" validate:"required"`
}

type confirmResponse struct {
	Reward models.Reward `json:"reward"`
}

// ConfirmHandler captures the payment and records the donation.
type ConfirmHandler struct {
	ledger ConfirmService
}

func NewConfirmHandler(ledger ConfirmService) *ConfirmHandler {
	return &ConfirmHandler{ledger: ledger}
}

func (h *ConfirmHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.WriteJSONError(w, http.StatusBadRequest, "accountId, kind, amount and orderId are required")
		return
	}

	reward, err := h.ledger.Confirm(r.Context(), req.AccountID, req.Kind, req.Amount, req.OrderID)
	if err != nil {
		log.Warn().Err(err).Str("order_id", req.OrderID).Msg("confirmation failed")
		writeDomainError(w, err)
		return
	}

	log.Info().
		Str("order_id", req.OrderID).
		Int64("account_id", req.AccountID).
		Int64("coins", reward.Coins).
		Int64("money", reward.Money).
		Msg("donation recorded")
	utils.WriteJSON(w, http.StatusOK, confirmResponse{Reward: reward})
}
