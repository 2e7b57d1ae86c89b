package trips

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore stores trips in the trips table with JSONB document columns.
type PGStore struct {
	db *pgxpool.Pool
}

func NewPGStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) Save(ctx context.Context, t *Trip) error {
	choice, err := json.Marshal(t.Choice)
	if err != nil {
		return fmt.Errorf("encode choice: %w", err)
	}
	plan, err := json.Marshal(t.Plan)
	if err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}
	budget, err := json.Marshal(t.TotalBudget)
	if err != nil {
		return fmt.Errorf("encode budget: %w", err)
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO trips (
			id, user_id, user_email, user_name,
			choice, plan, total_budget, status,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8,
			$9, $10
		)
		ON CONFLICT (id) DO UPDATE SET
			choice = EXCLUDED.choice,
			plan = EXCLUDED.plan,
			total_budget = EXCLUDED.total_budget,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at`,
		t.ID, t.UserID, t.UserEmail, t.UserName,
		choice, plan, budget, t.Status,
		t.CreatedAt, t.UpdatedAt,
	)
	return err
}

const selectTrip = `
	SELECT id, user_id, user_email, user_name,
	       choice, plan, total_budget, status,
	       created_at, updated_at
	FROM trips`

func (s *PGStore) Get(ctx context.Context, id string) (*Trip, error) {
	row := s.db.QueryRow(ctx, selectTrip+` WHERE id = $1`, id)
	t, err := scanTrip(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return t, err
}

func (s *PGStore) ListByUser(ctx context.Context, userID string) ([]*Trip, error) {
	rows, err := s.db.Query(ctx, selectTrip+` WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func scanTrip(row pgx.Row) (*Trip, error) {
	var t Trip
	var choice, plan, budget []byte
	err := row.Scan(
		&t.ID, &t.UserID, &t.UserEmail, &t.UserName,
		&choice, &plan, &budget, &t.Status,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(choice, &t.Choice); err != nil {
		return nil, fmt.Errorf("decode choice: %w", err)
	}
	if err := json.Unmarshal(plan, &t.Plan); err != nil {
		return nil, fmt.Errorf("decode plan: %w", err)
	}
	if err := json.Unmarshal(budget, &t.TotalBudget); err != nil {
		return nil, fmt.Errorf("decode budget: %w", err)
	}
	return &t, nil
}
