package report

import "errors"

// Report domain errors
var (
	ErrDraftNotFound       = errors.New("no report draft saved")
	ErrNoExportableEntries = errors.New("report has no entries with a completed task")
	ErrMalformedDraft      = errors.New("cached report draft is malformed")
)
