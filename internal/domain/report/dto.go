package report

import (
	"github.com/interntrack/interntrack-backend-go/internal/pkg/validator"
)

// ========================================
// REPORT DTOs
// ========================================

// AssembleRequest selects logs by derived key to seed report entries.
type AssembleRequest struct {
	Keys []string `json:"keys"`
}

func (r *AssembleRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Keys) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "keys",
			Message: "at least one log key must be selected",
		})
	}
	for _, k := range r.Keys {
		if validator.IsEmpty(k) {
			errs = append(errs, validator.ValidationError{
				Field:   "keys",
				Message: "log keys must be non-empty",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SaveDraftRequest replaces the whole cached draft.
type SaveDraftRequest struct {
	FormInfo FormInfo `json:"form_info"`
	Entries  []Entry  `json:"entries"`
}

// SubmitRequest finalizes the current draft into a report document.
type SubmitRequest struct {
	FormInfo FormInfo `json:"form_info"`
	Entries  []Entry  `json:"entries"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FormInfo.StudentName) {
		errs = append(errs, validator.ValidationError{
			Field:   "form_info.student_name",
			Message: "student name is required",
		})
	}
	if validator.IsEmpty(r.FormInfo.CompanyName) {
		errs = append(errs, validator.ValidationError{
			Field:   "form_info.company_name",
			Message: "company name is required",
		})
	}
	if len(r.Entries) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "entries",
			Message: "at least one report entry is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SubmitResponse carries the finalized document handed to the external
// generator. Excluded counts entries dropped by the export-ready predicate.
type SubmitResponse struct {
	FormInfo FormInfo `json:"form_info"`
	Entries  []Entry  `json:"entries"`
	Excluded int      `json:"excluded"`
}
