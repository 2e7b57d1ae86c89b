package aiusage

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

// Service orchestrates the monthly generation allowance.
type Service struct {
	store *Store
	quota int
	now   func() time.Time
}

// NewService creates a Service backed by the given Store. A non-positive
// quota uses DefaultMonthlyQuota.
func NewService(store *Store, quota int) *Service {
	if quota <= 0 {
		quota = DefaultMonthlyQuota
	}
	return &Service{store: store, quota: quota, now: time.Now}
}

func (s *Service) period() string {
	return s.now().UTC().Format(periodLayout)
}

// Reserve deducts one generation from the user's monthly allowance.
// If the user row does not exist yet it is initialised and the generation is immediately consumed.
// Returns ErrQuotaExhausted when the allowance for the current month is spent.
func (s *Service) Reserve(ctx context.Context, uid string) error {
	period := s.period()
	err := s.store.Consume(ctx, uid, period, s.quota)
	if !errors.Is(err, ErrQuotaExhausted) {
		return err
	}

	// Row may be missing: try to create it, then retry the deduction once.
	if initErr := s.store.EnsureUser(ctx, uid, period, s.quota); initErr != nil {
		return initErr
	}
	return s.store.Consume(ctx, uid, period, s.quota)
}

// Refund returns a generation reserved for a request that produced no trip.
func (s *Service) Refund(ctx context.Context, uid string) error {
	return s.store.Refund(ctx, uid, s.period(), s.quota)
}

// Limit is the monthly allowance every user starts with.
func (s *Service) Limit() int { return s.quota }

// Remaining reports how many generations the user has left this month.
func (s *Service) Remaining(ctx context.Context, uid string) (int, error) {
	n, err := s.store.Remaining(ctx, uid, s.period(), s.quota)
	if errors.Is(err, pgx.ErrNoRows) {
		return s.quota, nil
	}
	return n, err
}
