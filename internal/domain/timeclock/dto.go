package timeclock

import "time"

type ClockInRequest struct {
	// Override lets a manager-approved clock-in proceed past a hard
	// schedule validation failure.
	Override bool `json:"override"`
}

type TimeShiftResponse struct {
	ID             string   `json:"id"`
	UserID         string   `json:"user_id"`
	BusinessID     string   `json:"business_id"`
	ScheduleID     *string  `json:"schedule_id,omitempty"`
	ClockIn        int64    `json:"clock_in"`
	ClockOut       *int64   `json:"clock_out,omitempty"`
	ClockOutSource *string  `json:"clock_out_source,omitempty"`
	OnBreak        bool     `json:"on_break"`
	BreakMinutes   int      `json:"break_minutes"`
	Status         string   `json:"status"`
	Warnings       []string `json:"warnings,omitempty"`
}

func ToResponse(t TimeShift) TimeShiftResponse {
	resp := TimeShiftResponse{
		ID:             t.ID,
		UserID:         t.UserID,
		BusinessID:     t.BusinessID,
		ScheduleID:     t.ScheduleID,
		ClockIn:        t.ClockIn.Unix(),
		ClockOutSource: t.ClockOutSource,
		OnBreak:        t.OnBreak(),
		BreakMinutes:   t.BreakMinutes,
		Status:         string(t.Status),
	}
	if t.ClockOut != nil {
		out := t.ClockOut.Unix()
		resp.ClockOut = &out
	}
	return resp
}

// Worked returns total attended duration net of breaks; zero while active.
func Worked(t TimeShift) time.Duration {
	if t.ClockOut == nil {
		return 0
	}
	d := t.ClockOut.Sub(t.ClockIn) - time.Duration(t.BreakMinutes)*time.Minute
	if d < 0 {
		return 0
	}
	return d
}
