package aiusage

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles generation_quota persistence.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Consume atomically checks the allowance for period and deducts one.
// A row from an older period is reset to quota before deducting.
// Returns ErrQuotaExhausted when 0 rows are updated (allowance spent or user absent).
func (s *Store) Consume(ctx context.Context, uid, period string, quota int) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE generation_quota SET
			remaining = CASE WHEN period != $1 THEN $2 - 1 ELSE remaining - 1 END,
			period = $1
		WHERE uid = $3 AND (period < $1 OR remaining > 0)
	`, period, quota, uid)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrQuotaExhausted
	}
	return nil
}

// Refund gives one generation back, capped at quota. Refunds for a past
// period are ignored since the next Consume resets the row anyway.
func (s *Store) Refund(ctx context.Context, uid, period string, quota int) error {
	_, err := s.db.Exec(ctx, `
		UPDATE generation_quota SET remaining = LEAST(remaining + 1, $2)
		WHERE uid = $3 AND period = $1
	`, period, quota, uid)
	return err
}

// Remaining reports the allowance left in period without consuming it.
func (s *Store) Remaining(ctx context.Context, uid, period string, quota int) (int, error) {
	var remaining int
	var rowPeriod string
	err := s.db.QueryRow(ctx, `SELECT remaining, period FROM generation_quota WHERE uid = $1`, uid).Scan(&remaining, &rowPeriod)
	if err != nil {
		return 0, err
	}
	if rowPeriod != period {
		return quota, nil
	}
	return remaining, nil
}

// EnsureUser inserts a new row for uid with the full allowance.
// If the row already exists the insert is silently skipped (ON CONFLICT DO NOTHING).
func (s *Store) EnsureUser(ctx context.Context, uid, period string, quota int) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO generation_quota (uid, remaining, period)
		VALUES ($1, $2, $3)
		ON CONFLICT (uid) DO NOTHING
	`, uid, quota, period)
	return err
}
