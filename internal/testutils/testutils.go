package testutils

import (
	"context"

	"github.com/mirgames/donate-api/internal/gateway"
	"github.com/mirgames/donate-api/internal/models"
	"github.com/stretchr/testify/mock"
)

type MockAccountStorage struct {
	mock.Mock
}

func (m *MockAccountStorage) GetAccountByID(ctx context.Context, id int64) (models.Account, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Account), args.Error(1)
}

type MockDonationStorage struct {
	mock.Mock
}

// ConfirmDonation mirrors the real store: the configured error stands
// in for the duplicate/account checks, and only when they pass is the
// capture callback run, its error propagated as the transaction abort.
func (m *MockDonationStorage) ConfirmDonation(ctx context.Context, donation *models.Donation, capture models.CaptureFunc) error {
	args := m.Called(ctx, donation, capture)
	if err := args.Error(0); err != nil {
		return err
	}
	if err := capture(ctx); err != nil {
		return err
	}
	donation.ID = 1
	return nil
}

func (m *MockDonationStorage) ListPendingDonations(ctx context.Context, limit int32) ([]models.Donation, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.Donation), args.Error(1)
}

func (m *MockDonationStorage) SettleDonation(ctx context.Context, donationID int64) (models.Donation, error) {
	args := m.Called(ctx, donationID)
	return args.Get(0).(models.Donation), args.Error(1)
}

type MockGatewayClient struct {
	mock.Mock
}

func (m *MockGatewayClient) CreateOrder(ctx context.Context, order gateway.CreateOrderRequest) (string, error) {
	args := m.Called(ctx, order)
	return args.String(0), args.Error(1)
}

func (m *MockGatewayClient) CaptureOrder(ctx context.Context, orderID string) (gateway.CaptureResult, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(gateway.CaptureResult), args.Error(1)
}
