package biometric

import (
	"time"
)

// Status is the punch kind reported by the biometric terminal. Only the four
// values below are recognized; anything else is rejected at parse time.
type Status string

const (
	StatusClockIn   Status = "C/In"
	StatusClockOut  Status = "C/Out"
	StatusBreakOut  Status = "Out"
	StatusBreakBack Status = "Out Back"
)

// IsInLike reports whether the status opens a working span (clock in or
// return from break).
func (s Status) IsInLike() bool {
	return s == StatusClockIn || s == StatusBreakBack
}

// IsOutLike reports whether the status closes a working span (clock out or
// step out for a break).
func (s Status) IsOutLike() bool {
	return s == StatusClockOut || s == StatusBreakOut
}

// LogEvent is one normalized biometric punch. Events are immutable once
// constructed; the parser emits either a fully valid event or nothing.
type LogEvent struct {
	// ID disambiguates identical-timestamp punches:
	// "<employee_no>-<unix_millis>-<ingestion_index>".
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	EmployeeNo int       `json:"employee_no"`
	EventTime  time.Time `json:"event_time"`
	Status     Status    `json:"status"`
}

// Employee is a derived aggregate, one per distinct employee number seen in
// the event list. It is recomputed fully from the current list, never
// patched incrementally.
type Employee struct {
	Name       string    `json:"name"`
	EmployeeNo int       `json:"employee_no"`
	TotalLogs  int       `json:"total_logs"`
	FirstSeen  time.Time `json:"first_seen"`
	LastSeen   time.Time `json:"last_seen"`
}
