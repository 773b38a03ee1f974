package models

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const (
	KindCoins = "coins"
	KindMoney = "money"
)

// Account is a pre-provisioned player account. The pipeline never
// creates or deletes accounts; settlement only increments balances.
type Account struct {
	ID          int64
	DisplayName string
	Coins       int64
	Money       int64
}

// Donation is one confirmed payment awaiting (or after) settlement.
// OrderID is the provider-issued order identifier and the idempotency
// key: at most one Donation per OrderID, enforced by a unique
// constraint in the store.
type Donation struct {
	ID          int64
	OrderID     string
	AccountID   int64
	Kind        string
	Amount      float64
	CoinsReward int64
	MoneyReward int64
	Processed   bool
	CreatedAt   pgtype.Timestamptz
	ProcessedAt pgtype.Timestamptz
}

// Reward is the computed in-game credit for a donation. Exactly one of
// the two fields is nonzero.
type Reward struct {
	Coins int64 `json:"coins"`
	Money int64 `json:"money"`
}

// OrderIntent is the result of creating a payment-provider order: the
// provider's order id plus the reward the player will receive once the
// payment is captured and settled.
type OrderIntent struct {
	OrderID string
	Reward  Reward
}

// CaptureFunc is invoked by the store inside the confirmation
// transaction, after the duplicate and account checks but before the
// Donation insert. It performs the gateway capture and fills in the
// computed rewards.
type CaptureFunc func(ctx context.Context) error

type AccountStorage interface {
	GetAccountByID(ctx context.Context, id int64) (Account, error)
}

type DonationStorage interface {
	ConfirmDonation(ctx context.Context, donation *Donation, capture CaptureFunc) error
	ListPendingDonations(ctx context.Context, limit int32) ([]Donation, error)
	SettleDonation(ctx context.Context, donationID int64) (Donation, error)
}
