package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/interntrack/interntrack-backend-go/internal/domain/profile"
	"github.com/interntrack/interntrack-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type profileRepositoryImpl struct {
	db *database.DB
}

// NewProfileRepository creates the profile aggregate sink backed by the
// profiles table, one document per user.
func NewProfileRepository(db *database.DB) profile.Repository {
	return &profileRepositoryImpl{db: db}
}

func (r *profileRepositoryImpl) Get(ctx context.Context, userID string) (profile.Profile, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT user_id, name, email, company, required_hours, total_hours, updated_at
		FROM profiles
		WHERE user_id = $1
	`

	var p profile.Profile
	err := q.QueryRow(ctx, query, userID).Scan(
		&p.UserID, &p.Name, &p.Email, &p.Company, &p.RequiredHours, &p.TotalHours, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, profile.ErrProfileNotFound
		}
		return profile.Profile{}, fmt.Errorf("failed to read profile: %w", err)
	}
	return p, nil
}

func (r *profileRepositoryImpl) Upsert(ctx context.Context, p profile.Profile) error {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO profiles (user_id, name, email, company, required_hours, total_hours)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE
		SET name = EXCLUDED.name,
		    email = EXCLUDED.email,
		    company = EXCLUDED.company,
		    required_hours = EXCLUDED.required_hours,
		    total_hours = EXCLUDED.total_hours,
		    updated_at = NOW()
	`
	_, err := q.Exec(ctx, query, p.UserID, p.Name, p.Email, p.Company, p.RequiredHours, p.TotalHours)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// MergeTotalHours writes only the aggregate, leaving the identity block
// untouched. A missing document is created on the fly.
func (r *profileRepositoryImpl) MergeTotalHours(ctx context.Context, userID string, totalHours int) error {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO profiles (user_id, total_hours)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET total_hours = EXCLUDED.total_hours,
		    updated_at = NOW()
	`
	_, err := q.Exec(ctx, query, userID, totalHours)
	if err != nil {
		return fmt.Errorf("failed to merge total hours: %w", err)
	}
	return nil
}

func (r *profileRepositoryImpl) SetRequiredHours(ctx context.Context, userID string, hours int) error {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO profiles (user_id, required_hours)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET required_hours = EXCLUDED.required_hours,
		    updated_at = NOW()
	`
	_, err := q.Exec(ctx, query, userID, hours)
	if err != nil {
		return fmt.Errorf("failed to set required hours: %w", err)
	}
	return nil
}

func (r *profileRepositoryImpl) RecordSyncNote(ctx context.Context, userID, note string) error {
	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO sync_notes (id, user_id, note)
		VALUES ($1, $2, $3)
	`
	_, err := q.Exec(ctx, query, uuid.New(), userID, note)
	if err != nil {
		return fmt.Errorf("failed to record sync note: %w", err)
	}
	return nil
}
