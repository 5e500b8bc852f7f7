package timelog

// TimeLog is one validated attendance record for an intern's day.
//
// Date is the canonical zero-padded "YYYY/MM/DD" form. ClockIn and ClockOut
// carry the meridiem tag in stored form, e.g. "08:00 AM". Hours is the
// rounded elapsed duration after the automatic lunch deduction, always in
// 1..24. A record is replaced whole on edit, never patched field by field.
type TimeLog struct {
	Date     string `json:"date"`
	ClockIn  string `json:"clock_in"`
	ClockOut string `json:"clock_out"`
	Hours    int    `json:"hours"`
}

// Key returns the log's natural identity, derived from its date and
// clock-in time. Exactly one log may exist per key for a given user.
func (l TimeLog) Key() string {
	return DeriveKey(l.Date, l.ClockIn)
}
