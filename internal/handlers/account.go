package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mirgames/donate-api/internal/utils"
	"github.com/rs/zerolog/log"
)

type accountResponse struct {
	AccountID   int64  `json:"accountId"`
	DisplayName string `json:"displayName"`
	Coins       int64  `json:"coins"`
	Money       int64  `json:"money"`
}

// AccountHandler is the account existence probe.
type AccountHandler struct {
	accounts AccountStorage
}

func NewAccountHandler(accounts AccountStorage) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

func (h *AccountHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.WriteJSONError(w, http.StatusBadRequest, "Account id must be an integer")
		return
	}

	account, err := h.accounts.GetAccountByID(r.Context(), id)
	if err != nil {
		log.Debug().Err(err).Int64("account_id", id).Msg("account lookup failed")
		writeDomainError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, accountResponse{
		AccountID:   account.ID,
		DisplayName: account.DisplayName,
		Coins:       account.Coins,
		Money:       account.Money,
	})
}
