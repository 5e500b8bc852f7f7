package timelog

// Progress is the aggregate derived from the current log collection against
// the intern's hour goal.
type Progress struct {
	TotalHours     int     `json:"total_hours"`
	RequiredHours  int     `json:"required_hours"`
	Percent        float64 `json:"percent"`
	RemainingHours int     `json:"remaining_hours"`
}

// Recompute derives total, percent-to-goal and remaining hours from a log
// collection. Percent is clamped to [0, 1] and remaining never goes
// negative. A non-positive goal yields zero percent rather than dividing
// by it.
func Recompute(logs []TimeLog, goal int) Progress {
	total := 0
	for _, l := range logs {
		total += l.Hours
	}

	percent := 0.0
	if goal > 0 {
		percent = float64(total) / float64(goal)
		if percent > 1 {
			percent = 1
		}
	}

	remaining := goal - total
	if remaining < 0 {
		remaining = 0
	}

	return Progress{
		TotalHours:     total,
		RequiredHours:  goal,
		Percent:        percent,
		RemainingHours: remaining,
	}
}
