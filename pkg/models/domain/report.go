package domain

import "time"

// ReportingPeriod is the inclusive calendar-month range derived from the
// declaration's period code.
type ReportingPeriod struct {
	Start time.Time
	End   time.Time
}

// Report is the result of one full pipeline run over a submitted declaration.
type Report struct {
	SubmissionID  string
	Period        ReportingPeriod
	EmployeeCount int
	Questions     []*QuestionNode
	Answers       map[string]Answer
}
