package handlers

import (
	"errors"
	"net/http"

	"github.com/mirgames/donate-api/internal/models"
	"github.com/mirgames/donate-api/internal/utils"
)

// writeDomainError maps the pipeline's error taxonomy onto HTTP
// statuses. Anything unrecognized is a store or programming failure
// and surfaces as 500 without leaking details.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrAccountNotFound):
		utils.WriteJSONError(w, http.StatusNotFound, "Account not found")
	case errors.Is(err, models.ErrDonationNotFound):
		utils.WriteJSONError(w, http.StatusNotFound, "Donation not found")
	case errors.Is(err, models.ErrAmountOutOfRange):
		utils.WriteJSONError(w, http.StatusUnprocessableEntity, "Amount must be between 1 and 1000")
	case errors.Is(err, models.ErrInvalidRewardKind):
		utils.WriteJSONError(w, http.StatusUnprocessableEntity, "Reward kind must be coins or money")
	case errors.Is(err, models.ErrDuplicateOrder):
		utils.WriteJSONError(w, http.StatusConflict, "Order already confirmed")
	case errors.Is(err, models.ErrPaymentNotCompleted):
		utils.WriteJSONError(w, http.StatusPaymentRequired, "Payment not completed")
	case errors.Is(err, models.ErrGatewayUnavailable):
		utils.WriteJSONError(w, http.StatusBadGateway, "Payment gateway unavailable")
	default:
		utils.WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
	}
}
