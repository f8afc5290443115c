package api

import "time"

type TimePeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type Answer struct {
	Key         string `json:"key"`
	Value       any    `json:"value"`
	Source      string `json:"source"`
	Explanation string `json:"explanation"`
}

type Question struct {
	ID       string     `json:"id"`
	Label    string     `json:"label"`
	Kind     string     `json:"kind"`
	Order    int        `json:"order"`
	Options  []string   `json:"options,omitempty"`
	Children []Question `json:"children,omitempty"`
}

type Report struct {
	SubmissionID  string     `json:"submission_id"`
	Period        TimePeriod `json:"period"`
	EmployeeCount int        `json:"employee_count"`
	Answers       []Answer   `json:"answers"`
}
