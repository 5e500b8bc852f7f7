package profile

import (
	"github.com/interntrack/interntrack-backend-go/internal/pkg/validator"
)

// ========================================
// PROFILE DTOs
// ========================================

type UpdateGoalRequest struct {
	RequiredHours int `json:"required_hours"`
}

func (r *UpdateGoalRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.RequiredHours < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "required_hours",
			Message: "required_hours must be a positive number",
		})
	}
	if r.RequiredHours > 10000 {
		errs = append(errs, validator.ValidationError{
			Field:   "required_hours",
			Message: "required_hours must not exceed 10000",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateProfileRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	}
	if validator.IsEmpty(r.Company) {
		errs = append(errs, validator.ValidationError{
			Field:   "company",
			Message: "company is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ProfileResponse struct {
	UserID        string `json:"user_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Company       string `json:"company"`
	RequiredHours int    `json:"required_hours"`
	TotalHours    int    `json:"total_hours"`
	UpdatedAt     string `json:"updated_at,omitempty"`
}
