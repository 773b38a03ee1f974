package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mirgames/donate-api/internal/models"
)

const uniqueViolationCode = "23505"

type Storage struct {
	db *pgxpool.Pool
}

func NewStorage(db *pgxpool.Pool) (*Storage, error) {
	if db == nil {
		return nil, errors.New("database pool is nil")
	}
	return &Storage{db: db}, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *Storage) GetAccountByID(ctx context.Context, id int64) (models.Account, error) {
	var account models.Account
	err := s.db.QueryRow(ctx,
		`SELECT id, display_name, coins, money FROM accounts WHERE id = $1`, id,
	).Scan(&account.ID, &account.DisplayName, &account.Coins, &account.Money)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Account{}, models.ErrAccountNotFound
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("failed to get account %d: %w", id, err)
	}
	return account, nil
}

// ConfirmDonation runs the confirmation unit of work: duplicate-order
// check, account check, the caller-supplied capture step, then a single
// insert of the donation with processed=false. Everything is rolled
// back if any step fails. The unique constraint on order_id is the
// authoritative idempotency guard; the SELECT beforehand only gives
// retries a clean DuplicateOrder instead of a constraint violation.
func (s *Storage) ConfirmDonation(ctx context.Context, donation *models.Donation, capture models.CaptureFunc) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	if err := tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM donations WHERE order_id = $1)`, donation.OrderID,
	).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check order %s: %w", donation.OrderID, err)
	}
	if exists {
		return models.ErrDuplicateOrder
	}

	if err := tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM accounts WHERE id = $1)`, donation.AccountID,
	).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check account %d: %w", donation.AccountID, err)
	}
	if !exists {
		return models.ErrAccountNotFound
	}

	if err := capture(ctx); err != nil {
		return err
	}

	donation.CreatedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}
	err = tx.QueryRow(ctx,
		`INSERT INTO donations (order_id, account_id, kind, amount, coins_reward, money_reward, processed, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7)
		 RETURNING id`,
		donation.OrderID, donation.AccountID, donation.Kind, donation.Amount,
		donation.CoinsReward, donation.MoneyReward, donation.CreatedAt,
	).Scan(&donation.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return models.ErrDuplicateOrder
		}
		return fmt.Errorf("failed to insert donation for order %s: %w", donation.OrderID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit donation for order %s: %w", donation.OrderID, err)
	}
	return nil
}

// ListPendingDonations returns unprocessed donations oldest first. It
// does not claim or lock anything; the same row may show up in several
// polls until settled.
func (s *Storage) ListPendingDonations(ctx context.Context, limit int32) ([]models.Donation, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, order_id, account_id, kind, amount, coins_reward, money_reward, processed, created_at, processed_at
		 FROM donations
		 WHERE NOT processed
		 ORDER BY created_at ASC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending donations: %w", err)
	}
	defer rows.Close()

	var donations []models.Donation
	for rows.Next() {
		var d models.Donation
		if err := rows.Scan(&d.ID, &d.OrderID, &d.AccountID, &d.Kind, &d.Amount,
			&d.CoinsReward, &d.MoneyReward, &d.Processed, &d.CreatedAt, &d.ProcessedAt); err != nil {
			return nil, fmt.Errorf("failed to scan donation: %w", err)
		}
		donations = append(donations, d)
	}
	return donations, rows.Err()
}

// SettleDonation claims the donation and credits the account in one
// transaction. The conditional UPDATE is the claim: it only matches
// while processed is still false, so concurrent settle calls for the
// same id can never credit twice — exactly one caller sees the row,
// the rest get ErrDonationNotFound.
func (s *Storage) SettleDonation(ctx context.Context, donationID int64) (models.Donation, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return models.Donation{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var d models.Donation
	err = tx.QueryRow(ctx,
		`UPDATE donations
		 SET processed = TRUE, processed_at = now()
		 WHERE id = $1 AND NOT processed
		 RETURNING id, order_id, account_id, kind, amount, coins_reward, money_reward, processed, created_at, processed_at`,
		donationID,
	).Scan(&d.ID, &d.OrderID, &d.AccountID, &d.Kind, &d.Amount,
		&d.CoinsReward, &d.MoneyReward, &d.Processed, &d.CreatedAt, &d.ProcessedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Donation{}, models.ErrDonationNotFound
	}
	if err != nil {
		return models.Donation{}, fmt.Errorf("failed to claim donation %d: %w", donationID, err)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE accounts SET coins = coins + $2, money = money + $3 WHERE id = $1`,
		d.AccountID, d.CoinsReward, d.MoneyReward,
	); err != nil {
		return models.Donation{}, fmt.Errorf("failed to credit account %d: %w", d.AccountID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return models.Donation{}, fmt.Errorf("failed to commit settlement of donation %d: %w", donationID, err)
	}
	return d, nil
}
