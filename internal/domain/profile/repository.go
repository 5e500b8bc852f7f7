package profile

import "context"

// Repository is the single-document merge-write target for each user's
// profile. MergeTotalHours and RecordSyncNote are best-effort sinks: the
// caller logs their failures but never blocks a user action on them.
type Repository interface {
	// Get returns the user's profile, or ErrProfileNotFound.
	Get(ctx context.Context, userID string) (Profile, error)

	// Upsert replaces the identity fields and goal of the profile,
	// creating the document when absent.
	Upsert(ctx context.Context, p Profile) error

	// MergeTotalHours writes only the aggregate into the profile document,
	// creating it with defaults when absent.
	MergeTotalHours(ctx context.Context, userID string, totalHours int) error

	// SetRequiredHours updates the goal scalar.
	SetRequiredHours(ctx context.Context, userID string, hours int) error

	// RecordSyncNote appends a diagnostic note describing a failed remote
	// exchange, for later inspection.
	RecordSyncNote(ctx context.Context, userID, note string) error
}
