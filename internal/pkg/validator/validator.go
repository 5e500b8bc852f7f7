package validator

import (
	"regexp"
	"strings"
	"time"

	"github.com/interntrack/interntrack-backend-go/internal/pkg/timecalc"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

const logDateLayout = "2006/01/02"

// IsValidLogDate checks a "YYYY/MM/DD" date string. The parsed value must
// round-trip to the exact input, which rejects impossible dates and unpadded
// components alike.
func IsValidLogDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse(logDateLayout, dateStr)
	if err != nil {
		return time.Time{}, false
	}
	if date.Format(logDateLayout) != dateStr {
		return time.Time{}, false
	}
	return date, true
}

var clockRegex = regexp.MustCompile(`^\d{1,2}:\d{2}$`)

// IsValidClock checks an "H:MM" or "HH:MM" raw clock string: hour 0-23
// before any meridiem adjustment, minute 0-59.
func IsValidClock(clock string) bool {
	if !clockRegex.MatchString(clock) {
		return false
	}
	hour, minute, err := timecalc.ParseClock(clock)
	if err != nil {
		return false
	}
	return hour >= 0 && hour <= 23 && minute >= 0 && minute <= 59
}

// IsValidMeridiem checks for an exact "AM" or "PM" tag.
func IsValidMeridiem(m string) bool {
	return m == string(timecalc.AM) || m == string(timecalc.PM)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
