package usecase

import (
	"context"

	"github.com/mirgames/donate-api/internal/models"
)

// MaxPeekLimit bounds a single pending-queue pull.
const MaxPeekLimit = 50

// SettlementQueue is the work-queue view of the donations table: Peek
// reads unsettled entries without claiming them, ClaimAndSettle
// transitions exactly one entry to processed while crediting the
// account.
type SettlementQueue struct {
	storage models.DonationStorage
}

func NewSettlementQueue(storage models.DonationStorage) *SettlementQueue {
	return &SettlementQueue{storage: storage}
}

// Peek returns up to limit unprocessed donations, oldest first. The
// limit is clamped to [1, MaxPeekLimit].
func (q *SettlementQueue) Peek(ctx context.Context, limit int32) ([]models.Donation, error) {
	if limit < 1 || limit > MaxPeekLimit {
		limit = MaxPeekLimit
	}
	return q.storage.ListPendingDonations(ctx, limit)
}

// ClaimAndSettle credits the donation's account and marks the entry
// processed. Settling an already-settled or unknown id returns
// models.ErrDonationNotFound, which makes consumer retries after a
// crash-before-ack safe no-ops.
func (q *SettlementQueue) ClaimAndSettle(ctx context.Context, donationID int64) (models.Donation, error) {
	return q.storage.SettleDonation(ctx, donationID)
}
