package report

import "context"

// ReportService assembles report entries from selected logs and manages the
// draft auto-save lifecycle.
type ReportService interface {
	// Assemble maps the selected logs into report entries with the task
	// text left blank for the intern to fill in.
	Assemble(ctx context.Context, userID string, req AssembleRequest) ([]Entry, error)

	// LoadDraft reads the cached draft, once, when the report screen opens.
	LoadDraft(ctx context.Context, userID string) (Draft, error)

	// SaveDraft schedules a debounced write of the draft to the cache and
	// returns immediately.
	SaveDraft(ctx context.Context, userID string, req SaveDraftRequest)

	// Flush persists any pending draft for the user right away, as on a
	// transition to background or navigation away.
	Flush(userID string)

	// FlushAll persists every pending draft, as on shutdown.
	FlushAll()

	// Submit finalizes the entries, hands the document back to the caller
	// and clears the draft cache.
	Submit(ctx context.Context, userID string, req SubmitRequest) (SubmitResponse, error)
}
