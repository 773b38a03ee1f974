package usecase

import (
	"context"
	"fmt"

	"github.com/mirgames/donate-api/internal/gateway"
	"github.com/mirgames/donate-api/internal/models"
)

// LedgerUseCase turns a captured payment into a durable donation row.
type LedgerUseCase struct {
	storage models.DonationStorage
	gateway GatewayClient
	reward  RewardCalculator
}

func NewLedgerUseCase(storage models.DonationStorage, gw GatewayClient, reward RewardCalculator) *LedgerUseCase {
	return &LedgerUseCase{storage: storage, gateway: gw, reward: reward}
}

// Confirm captures the provider order and records the donation in one
// unit of work. The capture call runs inside the store's transaction
// scope: if it reports anything but COMPLETED, or fails outright,
// nothing is written. A crash between a successful capture and the
// commit leaves a captured payment with no donation row; that gap is
// closed by manual audit against the provider's transaction log, not
// by automatic compensation.
func (uc *LedgerUseCase) Confirm(ctx context.Context, accountID int64, kind string, amount float64, orderID string) (models.Reward, error) {
	donation := models.Donation{
		OrderID:   orderID,
		AccountID: accountID,
		Kind:      kind,
		Amount:    amount,
	}

	err := uc.storage.ConfirmDonation(ctx, &donation, func(ctx context.Context) error {
		result, err := uc.gateway.CaptureOrder(ctx, orderID)
		if err != nil {
			return fmt.Errorf("%w: %v", models.ErrGatewayUnavailable, err)
		}
		if result.Status != gateway.StatusCompleted {
			return fmt.Errorf("%w: status %s", models.ErrPaymentNotCompleted, result.Status)
		}

		reward, err := uc.reward.Compute(kind, amount)
		if err != nil {
			return err
		}
		donation.CoinsReward = reward.Coins
		donation.MoneyReward = reward.Money
		return nil
	})
	if err != nil {
		return models.Reward{}, err
	}

	return models.Reward{Coins: donation.CoinsReward, Money: donation.MoneyReward}, nil
}
