package schedule

import (
	"time"

	"github.com/auraswift/pos-backend-go/internal/pkg/validator"
)

type CreateScheduleRequest struct {
	StaffID    string  `json:"staff_id"`
	StartTime  int64   `json:"start_time"`
	EndTime    int64   `json:"end_time"`
	RegisterID *string `json:"register_id"`
	Notes      *string `json:"notes"`
}

func (r *CreateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "staff_id is required"})
	}
	if r.StartTime <= 0 {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start_time is required"})
	}
	if r.EndTime <= 0 {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end_time is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateScheduleRequest struct {
	ID         string  `json:"id"`
	StartTime  *int64  `json:"start_time"`
	EndTime    *int64  `json:"end_time"`
	Status     *string `json:"status"`
	RegisterID *string `json:"register_id"`
	Notes      *string `json:"notes"`
}

func (r *UpdateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{
		string(StatusUpcoming), string(StatusActive), string(StatusCompleted), string(StatusMissed),
	}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of upcoming, active, completed, missed"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ScheduleResponse struct {
	ID         string  `json:"id"`
	BusinessID string  `json:"business_id"`
	StaffID    string  `json:"staff_id"`
	StartTime  int64   `json:"start_time"`
	EndTime    int64   `json:"end_time"`
	Status     string  `json:"status"`
	RegisterID *string `json:"register_id,omitempty"`
	Notes      *string `json:"notes,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

func ToResponse(s Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:         s.ID,
		BusinessID: s.BusinessID,
		StaffID:    s.StaffID,
		StartTime:  s.StartTime.Unix(),
		EndTime:    s.EndTime.Unix(),
		Status:     string(s.Status),
		RegisterID: s.RegisterID,
		Notes:      s.Notes,
		CreatedAt:  s.CreatedAt.Format(time.RFC3339),
	}
}

// ClockInValidation is the decision returned before a clock-in is allowed.
// Warnings are advisory; RequiresApproval marks hard failures a manager may
// override.
type ClockInValidation struct {
	Valid            bool              `json:"valid"`
	CanClockIn       bool              `json:"can_clock_in"`
	RequiresApproval bool              `json:"requires_approval"`
	Warnings         []string          `json:"warnings"`
	Reason           string            `json:"reason,omitempty"`
	Schedule         *ScheduleResponse `json:"schedule,omitempty"`
}
