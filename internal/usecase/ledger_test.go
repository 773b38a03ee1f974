package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/mirgames/donate-api/internal/gateway"
	"github.com/mirgames/donate-api/internal/models"
	"github.com/mirgames/donate-api/internal/reward"
	"github.com/mirgames/donate-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLedgerUseCase(t *testing.T, store *testutils.MockDonationStorage, gw *testutils.MockGatewayClient) *LedgerUseCase {
	t.Helper()
	calc, err := reward.NewCalculator(5, 0.5)
	require.NoError(t, err)
	return NewLedgerUseCase(store, gw, calc)
}

func TestConfirm_Success(t *testing.T) {
	store := new(testutils.MockDonationStorage)
	gw := new(testutils.MockGatewayClient)
	uc := newLedgerUseCase(t, store, gw)

	store.On("ConfirmDonation", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	gw.On("CaptureOrder", mock.Anything, "O1").
		Return(gateway.CaptureResult{Status: gateway.StatusCompleted, Amount: 10}, nil)

	got, err := uc.Confirm(context.Background(), 123456, models.KindCoins, 10, "O1")
	assert.NoError(t, err)
	assert.Equal(t, models.Reward{Coins: 50, Money: 0}, got)

	// The donation handed to the store carries the computed reward and
	// is still unprocessed.
	donation := store.Calls[0].Arguments.Get(1).(*models.Donation)
	assert.Equal(t, "O1", donation.OrderID)
	assert.Equal(t, int64(123456), donation.AccountID)
	assert.Equal(t, int64(50), donation.CoinsReward)
	assert.Equal(t, int64(0), donation.MoneyReward)
	assert.False(t, donation.Processed)
	store.AssertExpectations(t)
	gw.AssertExpectations(t)
}

func TestConfirm_DuplicateOrder(t *testing.T) {
	store := new(testutils.MockDonationStorage)
	gw := new(testutils.MockGatewayClient)
	uc := newLedgerUseCase(t, store, gw)

	store.On("ConfirmDonation", mock.Anything, mock.Anything, mock.Anything).
		Return(models.ErrDuplicateOrder)

	_, err := uc.Confirm(context.Background(), 123456, models.KindCoins, 10, "O1")
	assert.ErrorIs(t, err, models.ErrDuplicateOrder)
	gw.AssertNotCalled(t, "CaptureOrder")
}

func TestConfirm_AccountNotFound(t *testing.T) {
	store := new(testutils.MockDonationStorage)
	gw := new(testutils.MockGatewayClient)
	uc := newLedgerUseCase(t, store, gw)

	store.On("ConfirmDonation", mock.Anything, mock.Anything, mock.Anything).
		Return(models.ErrAccountNotFound)

	_, err := uc.Confirm(context.Background(), 111111, models.KindCoins, 10, "O1")
	assert.ErrorIs(t, err, models.ErrAccountNotFound)
	gw.AssertNotCalled(t, "CaptureOrder")
}

func TestConfirm_PaymentNotCompleted(t *testing.T) {
	store := new(testutils.MockDonationStorage)
	gw := new(testutils.MockGatewayClient)
	uc := newLedgerUseCase(t, store, gw)

	store.On("ConfirmDonation", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	gw.On("CaptureOrder", mock.Anything, "O2").
		Return(gateway.CaptureResult{Status: gateway.StatusDeclined}, nil)

	_, err := uc.Confirm(context.Background(), 123456, models.KindCoins, 10, "O2")
	assert.ErrorIs(t, err, models.ErrPaymentNotCompleted)
}

func TestConfirm_GatewayError(t *testing.T) {
	store := new(testutils.MockDonationStorage)
	gw := new(testutils.MockGatewayClient)
	uc := newLedgerUseCase(t, store, gw)

	store.On("ConfirmDonation", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	gw.On("CaptureOrder", mock.Anything, "O3").
		Return(gateway.CaptureResult{}, errors.New("timeout"))

	_, err := uc.Confirm(context.Background(), 123456, models.KindCoins, 10, "O3")
	assert.ErrorIs(t, err, models.ErrGatewayUnavailable)
}

func TestConfirm_InvalidKind(t *testing.T) {
	store := new(testutils.MockDonationStorage)
	gw := new(testutils.MockGatewayClient)
	uc := newLedgerUseCase(t, store, gw)

	store.On("ConfirmDonation", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	gw.On("CaptureOrder", mock.Anything, "O4").
		Return(gateway.CaptureResult{Status: gateway.StatusCompleted, Amount: 10}, nil)

	_, err := uc.Confirm(context.Background(), 123456, "gems", 10, "O4")
	assert.ErrorIs(t, err, models.ErrInvalidRewardKind)
}
