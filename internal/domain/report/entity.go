package report

// Entry is one day's line in the weekly accomplishment report: a time log
// plus the manually written task and remarks text. TimeIn and TimeOut keep
// the meridiem-tagged "HH:MM AM|PM" form.
type Entry struct {
	Date          string `json:"date"`
	TimeIn        string `json:"time_in"`
	TimeOut       string `json:"time_out"`
	Hours         int    `json:"hours"`
	TaskCompleted string `json:"task_completed"`
	Remarks       string `json:"remarks,omitempty"`
}

// FormInfo is the report header the intern fills in once per report.
type FormInfo struct {
	StudentName  string `json:"student_name"`
	StudentEmail string `json:"student_email"`
	CompanyName  string `json:"company_name"`
	Supervisor   string `json:"supervisor,omitempty"`
	WeekLabel    string `json:"week_label,omitempty"`
}

// Draft is the in-progress, unsaved report form state held in the draft
// cache between editing sessions.
type Draft struct {
	FormInfo FormInfo `json:"form_info"`
	Entries  []Entry  `json:"entries"`
}

// exportable reports whether an entry carries everything the document
// generator needs. TaskCompleted is the only free-text field that is
// mandatory.
func (e Entry) exportable() bool {
	return e.Date != "" && e.TimeIn != "" && e.TimeOut != "" && e.Hours != 0 && e.TaskCompleted != ""
}

// Finalize filters entries down to the export-ready subset. It is the
// single predicate every export and submit path goes through, and it is
// idempotent: finalizing an already finalized slice changes nothing.
func Finalize(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.exportable() {
			out = append(out, e)
		}
	}
	return out
}
