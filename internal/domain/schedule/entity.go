package schedule

import "time"

type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusMissed    Status = "missed"
)

// Schedule is a manager-planned shift: who works, when, and on which register.
type Schedule struct {
	ID         string
	BusinessID string
	StaffID    string
	StartTime  time.Time
	EndTime    time.Time
	Status     Status
	RegisterID *string
	Notes      *string
	CreatedBy  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NormalizeEnd resolves overnight shifts: an end time-of-day at or before the
// start is read as ending on the following day.
func NormalizeEnd(start, end time.Time) time.Time {
	if !end.After(start) {
		return end.Add(24 * time.Hour)
	}
	return end
}

// Overlaps reports whether two shifts overlap using half-open interval
// comparison, so back-to-back shifts sharing an exact boundary do not
// conflict. Both intervals are normalized for overnight wrap first.
func Overlaps(newStart, newEnd, existingStart, existingEnd time.Time) bool {
	newEnd = NormalizeEnd(newStart, newEnd)
	existingEnd = NormalizeEnd(existingStart, existingEnd)
	return newStart.Before(existingEnd) && newEnd.After(existingStart)
}

// SelectRelevant picks the schedule a clock-in or "today's schedule" lookup
// should bind to. Schedules that have not yet ended win, latest start first;
// if every schedule has ended, the one with the latest start is returned.
func SelectRelevant(schedules []Schedule, now time.Time) *Schedule {
	if len(schedules) == 0 {
		return nil
	}

	var best *Schedule
	for i := range schedules {
		s := &schedules[i]
		if !NormalizeEnd(s.StartTime, s.EndTime).After(now) {
			continue
		}
		if best == nil || s.StartTime.After(best.StartTime) {
			best = s
		}
	}
	if best != nil {
		return best
	}

	best = &schedules[0]
	for i := range schedules {
		if schedules[i].StartTime.After(best.StartTime) {
			best = &schedules[i]
		}
	}
	return best
}
