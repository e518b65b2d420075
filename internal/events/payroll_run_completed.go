package events

import "time"

const PayrollRunCompletedTopic = "hr.payroll.run.completed.v1"

type PayrollRunCompletedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	RunID        string    `json:"run_id"`
	PayrollMonth string    `json:"payroll_month"`
	PayrollType  string    `json:"payroll_type"`
	SlipCount    int64     `json:"slip_count"`
	OccurredAt   time.Time `json:"occurred_at"`
}
