package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/mirgames/donate-api/internal/models"
)

var validate = validator.New()

type IntentService interface {
	CreateIntent(ctx context.Context, accountID int64, kind string, amount float64) (models.OrderIntent, error)
}

type ConfirmService interface {
	Confirm(ctx context.Context, accountID int64, kind string, amount float64, orderID string) (models.Reward, error)
}

type Queue interface {
	Peek(ctx context.Context, limit int32) ([]models.Donation, error)
	ClaimAndSettle(ctx context.Context, donationID int64) (models.Donation, error)
}

type AccountStorage interface {
	GetAccountByID(ctx context.Context, id int64) (models.Account, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}
