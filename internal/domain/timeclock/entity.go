package timeclock

import "time"

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Clock-out initiators. System clock-outs are synthesized when the last POS
// shift tied to a time shift ends or is auto-closed.
const (
	SourceUser   = "user"
	SourceSystem = "system"
)

// TimeShift is the attendance envelope: opened by clock-in, closed by
// clock-out. At most one active record per user.
type TimeShift struct {
	ID             string
	UserID         string
	BusinessID     string
	ScheduleID     *string
	ClockIn        time.Time
	ClockOut       *time.Time
	ClockOutSource *string
	BreakStart     *time.Time
	BreakMinutes   int
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// OnBreak reports whether a break is currently open.
func (t *TimeShift) OnBreak() bool {
	return t.BreakStart != nil
}
