package report

import "context"

// DraftRepository is the local draft cache: a single document per user,
// read once when the report screen opens and overwritten on every debounce
// tick, background transition and unmount, then cleared on submit.
type DraftRepository interface {
	// Load returns the cached draft, or ErrDraftNotFound.
	Load(ctx context.Context, userID string) (Draft, error)

	// Save overwrites the cached draft.
	Save(ctx context.Context, userID string, draft Draft) error

	// Clear drops the cached draft. Clearing an absent draft is not an
	// error.
	Clear(ctx context.Context, userID string) error
}
