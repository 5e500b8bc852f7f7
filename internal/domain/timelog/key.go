package timelog

import "regexp"

var nonAlphanumeric = regexp.MustCompile(`[^A-Za-z0-9]+`)

// DeriveKey builds the remote document identifier for a log by stripping
// every non-alphanumeric character from the concatenation of its date and
// clock-in time. The same derivation guards write-path deduplication, so a
// retried write with identical inputs overwrites instead of duplicating.
func DeriveKey(date, clockIn string) string {
	return nonAlphanumeric.ReplaceAllString(date+clockIn, "")
}
