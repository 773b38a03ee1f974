package handlers

import (
	"net/http"

	"github.com/mirgames/donate-api/internal/utils"
)

type PingHandler struct {
	store Pinger
}

func NewPingHandler(store Pinger) *PingHandler {
	return &PingHandler{store: store}
}

func (h *PingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		utils.WriteJSONError(w, http.StatusInternalServerError, "Database unreachable")
		return
	}
	w.WriteHeader(http.StatusOK)
}
