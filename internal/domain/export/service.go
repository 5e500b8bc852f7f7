package export

import "context"

type ExportService interface {
	// RenderCSV serializes the user's full log collection into a CSV payload.
	RenderCSV(ctx context.Context, userID string) (*CSVDocument, error)
	// ArchiveCSV renders the CSV and persists it through the file sink.
	ArchiveCSV(ctx context.Context, userID string) (*ArchiveResponse, error)
}
