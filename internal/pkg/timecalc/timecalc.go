package timecalc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Meridiem tags a wall-clock time as morning or afternoon.
type Meridiem string

const (
	AM Meridiem = "AM"
	PM Meridiem = "PM"
)

// ErrSpanTooLong is returned when the elapsed span between clock-in and
// clock-out exceeds 24 hours. The computed value must be discarded and the
// caller asked to re-enter the times.
var ErrSpanTooLong = errors.New("elapsed time exceeds 24 hours")

// ParseClock splits an "H:MM" or "HH:MM" string into its hour and minute
// digits. The hour is returned raw (no meridiem adjustment) and is not range
// checked beyond its two-digit width; minutes must be 0-59.
func ParseClock(s string) (hour, minute int, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 || len(parts[0]) == 0 || len(parts[0]) > 2 || len(parts[1]) != 2 {
		return 0, 0, fmt.Errorf("invalid clock time %q", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid clock time %q", s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid clock time %q", s)
	}
	return hour, minute, nil
}

// FormatClock renders an hour and minute pair as a zero-padded "HH:MM".
func FormatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// hour24 converts a raw clock hour plus meridiem tag into 24-hour form.
// Hours of 13 and above are taken as already being 24-hour input and the
// tag is ignored for them.
func hour24(hour int, m Meridiem) int {
	switch {
	case m == PM && hour < 12:
		return hour + 12
	case m == AM && hour == 12:
		return 0
	default:
		return hour
	}
}

// ClockMinutes returns minutes since midnight for a clock string and its
// meridiem tag. Used for stable intra-day ordering of logs.
func ClockMinutes(clock string, m Meridiem) (int, error) {
	h, min, err := ParseClock(clock)
	if err != nil {
		return 0, err
	}
	return hour24(h, m)*60 + min, nil
}

// ComputeHours converts a clock-in/clock-out pair with meridiem tags into a
// rounded elapsed-hour integer.
//
// A negative span is treated as an overnight shift and wrapped by 24 hours.
// A span over 24 hours yields ErrSpanTooLong. When the interval fully covers
// the 12:00-13:00 window one lunch hour is deducted before rounding. The
// function is pure: identical inputs always produce identical output.
func ComputeHours(clockIn, clockOut string, in, out Meridiem) (int, error) {
	inH, inM, err := ParseClock(clockIn)
	if err != nil {
		return 0, err
	}
	outH, outM, err := ParseClock(clockOut)
	if err != nil {
		return 0, err
	}

	start := float64(hour24(inH, in)) + float64(inM)/60
	end := float64(hour24(outH, out)) + float64(outM)/60

	elapsed := end - start
	if elapsed < 0 {
		elapsed += 24
	}
	if elapsed > 24 {
		return 0, ErrSpanTooLong
	}

	// Lunch deduction when the shift spans the whole 12:00-13:00 window.
	if start <= 12 && end >= 13 {
		elapsed--
	}

	return int(math.Round(elapsed)), nil
}

// CombineStored joins a zero-padded clock string and meridiem tag into the
// stored "HH:MM AM|PM" form.
func CombineStored(clock string, m Meridiem) string {
	return clock + " " + string(m)
}

// SplitStored splits a stored "HH:MM AM|PM" value back into its clock string
// and meridiem tag. Malformed values fall back to an AM tag so ordering stays
// total.
func SplitStored(stored string) (string, Meridiem) {
	clock, tag, found := strings.Cut(stored, " ")
	if !found || (tag != string(AM) && tag != string(PM)) {
		return clock, AM
	}
	return clock, Meridiem(tag)
}
