package events

import "time"

const EmployeeLifecycleTopic = "personnel.employee.lifecycle.v1"

const (
	EmployeeCreated = "employee_created"
	EmployeeUpdated = "employee_updated"
	EmployeeDeleted = "employee_deleted"
)

type EmployeeLifecycleEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID int64     `json:"employee_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
