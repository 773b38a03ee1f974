package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/mirgames/donate-api/internal/gateway"
	"github.com/mirgames/donate-api/internal/models"
)

const (
	MinAmount = 1.0
	MaxAmount = 1000.0
)

type GatewayClient interface {
	CreateOrder(ctx context.Context, order gateway.CreateOrderRequest) (string, error)
	CaptureOrder(ctx context.Context, orderID string) (gateway.CaptureResult, error)
}

type RewardCalculator interface {
	Compute(kind string, amount float64) (models.Reward, error)
}

// IntentUseCase builds a pending provider order for a donation. It is
// request-scoped: nothing is persisted locally, so an abandoned order
// leaves no durable trace.
type IntentUseCase struct {
	accounts models.AccountStorage
	gateway  GatewayClient
	reward   RewardCalculator
}

func NewIntentUseCase(accounts models.AccountStorage, gw GatewayClient, reward RewardCalculator) *IntentUseCase {
	return &IntentUseCase{accounts: accounts, gateway: gw, reward: reward}
}

func (uc *IntentUseCase) CreateIntent(ctx context.Context, accountID int64, kind string, amount float64) (models.OrderIntent, error) {
	if _, err := uc.accounts.GetAccountByID(ctx, accountID); err != nil {
		if errors.Is(err, models.ErrAccountNotFound) {
			return models.OrderIntent{}, models.ErrAccountNotFound
		}
		return models.OrderIntent{}, fmt.Errorf("failed to look up account %d: %w", accountID, err)
	}

	if amount < MinAmount || amount > MaxAmount {
		return models.OrderIntent{}, models.ErrAmountOutOfRange
	}

	expected, err := uc.reward.Compute(kind, amount)
	if err != nil {
		return models.OrderIntent{}, err
	}

	orderID, err := uc.gateway.CreateOrder(ctx, gateway.CreateOrderRequest{
		AccountID: accountID,
		Kind:      kind,
		Amount:    amount,
	})
	if err != nil {
		return models.OrderIntent{}, fmt.Errorf("%w: %v", models.ErrGatewayUnavailable, err)
	}

	return models.OrderIntent{OrderID: orderID, Reward: expected}, nil
}
