package timelog

import (
	"github.com/interntrack/interntrack-backend-go/internal/pkg/timecalc"
	"github.com/interntrack/interntrack-backend-go/internal/pkg/validator"
)

// ========================================
// TIME LOG DTOs
// ========================================

// UpsertLogRequest carries one candidate log. ClockIn and ClockOut are the
// raw "H:MM"/"HH:MM" digits as typed; the meridiem tags are separate. Hours
// may be supplied by the caller or left nil to be computed from the times.
// EditKey is set on the update path to the key of the record being replaced,
// which exempts that record from the duplicate check.
type UpsertLogRequest struct {
	Date        string `json:"date"`
	ClockIn     string `json:"clock_in"`
	ClockOut    string `json:"clock_out"`
	InMeridiem  string `json:"in_meridiem"`
	OutMeridiem string `json:"out_meridiem"`
	Hours       *int   `json:"hours,omitempty"`
	EditKey     string `json:"-"`
}

// Validate applies the format and range rules in order, short-circuiting on
// the first group of failures. The duplicate-key rule needs the loaded
// collection and lives in the service.
func (r *UpsertLogRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	}
	if validator.IsEmpty(r.ClockIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in",
			Message: "clock_in is required",
		})
	}
	if validator.IsEmpty(r.ClockOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_out",
			Message: "clock_out is required",
		})
	}
	if len(errs) > 0 {
		return errs
	}

	if _, ok := validator.IsValidLogDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a real calendar date in YYYY/MM/DD format",
		})
	}
	if !validator.IsValidClock(r.ClockIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in",
			Message: "clock_in must be H:MM with hour 0-23 and minute 0-59",
		})
	}
	if !validator.IsValidClock(r.ClockOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_out",
			Message: "clock_out must be H:MM with hour 0-23 and minute 0-59",
		})
	}
	if !validator.IsValidMeridiem(r.InMeridiem) {
		errs = append(errs, validator.ValidationError{
			Field:   "in_meridiem",
			Message: "in_meridiem must be AM or PM",
		})
	}
	if !validator.IsValidMeridiem(r.OutMeridiem) {
		errs = append(errs, validator.ValidationError{
			Field:   "out_meridiem",
			Message: "out_meridiem must be AM or PM",
		})
	}
	if len(errs) > 0 {
		return errs
	}

	if r.Hours != nil && (*r.Hours < 1 || *r.Hours > 24) {
		errs = append(errs, validator.ValidationError{
			Field:   "hours",
			Message: "hours must be an integer between 1 and 24",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToTimeLog converts a validated request into its canonical stored record,
// computing the rounded hours when the caller did not supply them. The
// computed value is range checked the same way a supplied one is.
func (r *UpsertLogRequest) ToTimeLog() (TimeLog, error) {
	inHour, inMin, err := timecalc.ParseClock(r.ClockIn)
	if err != nil {
		return TimeLog{}, err
	}
	outHour, outMin, err := timecalc.ParseClock(r.ClockOut)
	if err != nil {
		return TimeLog{}, err
	}

	hours := 0
	if r.Hours != nil {
		hours = *r.Hours
	} else {
		hours, err = timecalc.ComputeHours(r.ClockIn, r.ClockOut, timecalc.Meridiem(r.InMeridiem), timecalc.Meridiem(r.OutMeridiem))
		if err != nil {
			return TimeLog{}, err
		}
		if hours < 1 || hours > 24 {
			return TimeLog{}, validator.ValidationErrors{{
				Field:   "hours",
				Message: "computed hours must be an integer between 1 and 24",
			}}
		}
	}

	return TimeLog{
		Date:     r.Date,
		ClockIn:  timecalc.CombineStored(timecalc.FormatClock(inHour, inMin), timecalc.Meridiem(r.InMeridiem)),
		ClockOut: timecalc.CombineStored(timecalc.FormatClock(outHour, outMin), timecalc.Meridiem(r.OutMeridiem)),
		Hours:    hours,
	}, nil
}

type LogResponse struct {
	Key      string   `json:"key"`
	Log      TimeLog  `json:"log"`
	Progress Progress `json:"progress"`
}

type ListLogsFilter struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *ListLogsFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LogListItem struct {
	Key string  `json:"key"`
	Log TimeLog `json:"log"`
}

type ListLogsResponse struct {
	TotalCount int           `json:"total_count"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalPages int           `json:"total_pages"`
	Logs       []LogListItem `json:"logs"`
}
