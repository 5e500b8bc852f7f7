package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/interntrack/interntrack-backend-go/internal/domain/report"
	"github.com/interntrack/interntrack-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type draftRepositoryImpl struct {
	db *database.DB
}

// NewDraftRepository creates the report draft cache backed by the
// report_drafts table, one jsonb document per user.
func NewDraftRepository(db *database.DB) report.DraftRepository {
	return &draftRepositoryImpl{db: db}
}

func (r *draftRepositoryImpl) Load(ctx context.Context, userID string) (report.Draft, error) {
	q := GetQuerier(ctx, r.db)

	var raw []byte
	err := q.QueryRow(ctx, `SELECT draft FROM report_drafts WHERE user_id = $1`, userID).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return report.Draft{}, report.ErrDraftNotFound
		}
		return report.Draft{}, fmt.Errorf("failed to read draft: %w", err)
	}

	var draft report.Draft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return report.Draft{}, fmt.Errorf("%w: %v", report.ErrMalformedDraft, err)
	}
	return draft, nil
}

func (r *draftRepositoryImpl) Save(ctx context.Context, userID string, draft report.Draft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}

	q := GetQuerier(ctx, r.db)
	query := `
		INSERT INTO report_drafts (user_id, draft)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET draft = EXCLUDED.draft,
		    updated_at = NOW()
	`
	if _, err := q.Exec(ctx, query, userID, raw); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

func (r *draftRepositoryImpl) Clear(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)
	if _, err := q.Exec(ctx, `DELETE FROM report_drafts WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to clear draft: %w", err)
	}
	return nil
}
