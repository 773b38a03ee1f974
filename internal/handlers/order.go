package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mirgames/donate-api/internal/models"
	"github.com/mirgames/donate-api/internal/utils"
	"github.com/rs/zerolog/log"
)

type orderRequest struct {
	AccountID int64   `json:"accountId" validate:"required"`
	Kind      string  `json:"kind" validate:"required"`
	Amount    float64 `json:"amount" validate:"required"`
}

type orderResponse struct {
	OrderID string        `json:"orderId"`
	Reward  models.Reward `json:"reward"`
}

// OrderHandler creates a payment-provider order for a donation.
type OrderHandler struct {
	intent IntentService
}

func NewOrderHandler(intent IntentService) *OrderHandler {
	return &OrderHandler{intent: intent}
}

func (h *OrderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.WriteJSONError(w, http.StatusBadRequest, "accountId, kind and amount are required")
		return
	}

	intent, err := h.intent.CreateIntent(r.Context(), req.AccountID, req.Kind, req.Amount)
	if err != nil {
		log.Warn().Err(err).Int64("account_id", req.AccountID).Msg("order intent rejected")
		writeDomainError(w, err)
		return
	}

	log.Info().
		Int64("account_id", req.AccountID).
		Str("order_id", intent.OrderID).
		Str("kind", req.Kind).
		Float64("amount", req.Amount).
		Msg("provider order created")
	utils.WriteJSON(w, http.StatusCreated, orderResponse{OrderID: intent.OrderID, Reward: intent.Reward})
}
