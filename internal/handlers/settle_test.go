package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mirgames/donate-api/internal/handlers"
	"github.com/mirgames/donate-api/internal/models"
	"github.com/mirgames/donate-api/internal/testutils"
	"github.com/mirgames/donate-api/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSettleHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		store := new(testutils.MockDonationStorage)
		handler := handlers.NewSettleHandler(usecase.NewSettlementQueue(store))

		store.On("SettleDonation", mock.Anything, int64(1)).
			Return(models.Donation{ID: 1, AccountID: 123456, CoinsReward: 50, Processed: true}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/consumer/settle",
			strings.NewReader(`{"donationId":1}`))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
		store.AssertExpectations(t)
	})

	t.Run("already settled", func(t *testing.T) {
		store := new(testutils.MockDonationStorage)
		handler := handlers.NewSettleHandler(usecase.NewSettlementQueue(store))

		store.On("SettleDonation", mock.Anything, int64(2)).
			Return(models.Donation{}, models.ErrDonationNotFound)

		req := httptest.NewRequest(http.MethodPost, "/api/consumer/settle",
			strings.NewReader(`{"donationId":2}`))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing donation id", func(t *testing.T) {
		store := new(testutils.MockDonationStorage)
		handler := handlers.NewSettleHandler(usecase.NewSettlementQueue(store))

		req := httptest.NewRequest(http.MethodPost, "/api/consumer/settle", strings.NewReader(`{}`))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		store.AssertNotCalled(t, "SettleDonation")
	})

	t.Run("store failure", func(t *testing.T) {
		store := new(testutils.MockDonationStorage)
		handler := handlers.NewSettleHandler(usecase.NewSettlementQueue(store))

		store.On("SettleDonation", mock.Anything, int64(3)).
			Return(models.Donation{}, assert.AnError)

		req := httptest.NewRequest(http.MethodPost, "/api/consumer/settle",
			strings.NewReader(`{"donationId":3}`))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
