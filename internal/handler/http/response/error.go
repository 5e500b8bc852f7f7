package response

import (
	"errors"
	"net/http"

	"github.com/interntrack/interntrack-backend-go/internal/domain/export"
	"github.com/interntrack/interntrack-backend-go/internal/domain/profile"
	"github.com/interntrack/interntrack-backend-go/internal/domain/report"
	"github.com/interntrack/interntrack-backend-go/internal/domain/timelog"
	"github.com/interntrack/interntrack-backend-go/internal/pkg/timecalc"
	"github.com/interntrack/interntrack-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// A failed write-through keeps the local mirror intact; the caller may
	// retry the identical request.
	var syncErr *timelog.SyncError
	if errors.As(err, &syncErr) {
		BadGateway(w, "Remote sync failed, your change was not saved")
		return
	}

	switch {
	// Time log domain errors
	case errors.Is(err, timecalc.ErrSpanTooLong):
		BadRequest(w, "Shift exceeds 24 hours", nil)
	case errors.Is(err, timelog.ErrDuplicateLog):
		Conflict(w, "A log for this date and clock-in already exists")
	case errors.Is(err, timelog.ErrLogNotFound):
		NotFound(w, "Time log not found")
	case errors.Is(err, timelog.ErrMalformedRemote):
		BadGateway(w, "Remote log collection returned malformed data")

	// Profile domain errors
	case errors.Is(err, profile.ErrProfileNotFound):
		NotFound(w, "Profile not found")
	case errors.Is(err, profile.ErrIdentityIncomplete):
		BadRequest(w, "Complete your profile (name, email, company) before exporting", nil)

	// Report and export domain errors
	case errors.Is(err, report.ErrDraftNotFound):
		NotFound(w, "No report draft saved yet")
	case errors.Is(err, report.ErrMalformedDraft):
		InternalServerError(w, "Stored report draft could not be decoded")
	case errors.Is(err, report.ErrNoExportableEntries):
		BadRequest(w, "No entries with completed tasks to submit", nil)
	case errors.Is(err, export.ErrNothingToExport):
		BadRequest(w, "No time logs to export", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
