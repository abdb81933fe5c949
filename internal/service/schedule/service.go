package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/auraswift/pos-backend-go/internal/domain/schedule"
	"github.com/auraswift/pos-backend-go/internal/domain/user"
	"github.com/google/uuid"
)

type scheduleServiceImpl struct {
	scheduleRepo     schedule.ScheduleRepository
	userRepo         user.UserRepository
	clockInTolerance time.Duration
}

func NewScheduleService(
	scheduleRepo schedule.ScheduleRepository,
	userRepo user.UserRepository,
	clockInToleranceMinutes int,
) schedule.ScheduleService {
	return &scheduleServiceImpl{
		scheduleRepo:     scheduleRepo,
		userRepo:         userRepo,
		clockInTolerance: time.Duration(clockInToleranceMinutes) * time.Minute,
	}
}

// Create implements schedule.ScheduleService. The new shift is rejected when
// it overlaps any other shift for the same staff member.
func (s *scheduleServiceImpl) Create(ctx context.Context, businessID string, actorID string, req schedule.CreateScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	start := time.Unix(req.StartTime, 0)
	end := time.Unix(req.EndTime, 0)
	// An end before the start reads as an overnight shift; an end equal to
	// the start is a zero-length shift and rejected.
	if end.Equal(start) {
		return schedule.ScheduleResponse{}, schedule.ErrInvalidTimeRange
	}

	staff, err := s.userRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}
	if staff.BusinessID != businessID {
		return schedule.ScheduleResponse{}, user.ErrBusinessMismatch
	}

	if err := s.checkOverlap(ctx, req.StaffID, businessID, start, end, ""); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	now := time.Now()
	created, err := s.scheduleRepo.Create(ctx, schedule.Schedule{
		ID:         uuid.NewString(),
		BusinessID: businessID,
		StaffID:    req.StaffID,
		StartTime:  start,
		EndTime:    end,
		Status:     schedule.StatusUpcoming,
		RegisterID: req.RegisterID,
		Notes:      req.Notes,
		CreatedBy:  actorID,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	slog.Info("schedule created", "schedule_id", created.ID, "staff_id", created.StaffID)
	return schedule.ToResponse(created), nil
}

// Update implements schedule.ScheduleService. Time changes re-run the overlap
// check against every other shift of the same staff member.
func (s *scheduleServiceImpl) Update(ctx context.Context, businessID string, req schedule.UpdateScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	found, err := s.scheduleRepo.GetByID(ctx, req.ID, businessID)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	if req.StartTime != nil {
		found.StartTime = time.Unix(*req.StartTime, 0)
	}
	if req.EndTime != nil {
		found.EndTime = time.Unix(*req.EndTime, 0)
	}
	if req.Status != nil {
		found.Status = schedule.Status(*req.Status)
	}
	if req.RegisterID != nil {
		found.RegisterID = req.RegisterID
	}
	if req.Notes != nil {
		found.Notes = req.Notes
	}

	if req.StartTime != nil || req.EndTime != nil {
		if err := s.checkOverlap(ctx, found.StaffID, businessID, found.StartTime, found.EndTime, found.ID); err != nil {
			return schedule.ScheduleResponse{}, err
		}
	}

	found.UpdatedAt = time.Now()
	if err := s.scheduleRepo.Update(ctx, found); err != nil {
		return schedule.ScheduleResponse{}, err
	}
	return schedule.ToResponse(found), nil
}

// Delete implements schedule.ScheduleService.
func (s *scheduleServiceImpl) Delete(ctx context.Context, businessID string, id string) error {
	return s.scheduleRepo.Delete(ctx, id, businessID)
}

// GetByBusiness implements schedule.ScheduleService.
func (s *scheduleServiceImpl) GetByBusiness(ctx context.Context, businessID string, fromUnix, toUnix int64) ([]schedule.ScheduleResponse, error) {
	schedules, err := s.scheduleRepo.ListByBusiness(ctx, businessID, time.Unix(fromUnix, 0), time.Unix(toUnix, 0))
	if err != nil {
		return nil, err
	}
	return toResponses(schedules), nil
}

// GetByStaff implements schedule.ScheduleService.
func (s *scheduleServiceImpl) GetByStaff(ctx context.Context, businessID string, staffID string) ([]schedule.ScheduleResponse, error) {
	schedules, err := s.scheduleRepo.ListByStaff(ctx, staffID, businessID)
	if err != nil {
		return nil, err
	}
	return toResponses(schedules), nil
}

// ValidateClockIn implements schedule.ScheduleService. A user with no
// schedule today is denied, as is arriving outside the tolerance window
// around the scheduled start; both are hard failures a manager can override.
func (s *scheduleServiceImpl) ValidateClockIn(ctx context.Context, userID string, businessID string) (schedule.ClockInValidation, error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	// Overnight shifts from yesterday may still be running.
	from := dayStart.Add(-24 * time.Hour)
	to := dayStart.Add(24 * time.Hour)

	schedules, err := s.scheduleRepo.ListByStaffBetween(ctx, userID, from, to)
	if err != nil {
		return schedule.ClockInValidation{}, fmt.Errorf("load schedules: %w", err)
	}

	relevant := schedule.SelectRelevant(schedules, now)
	if relevant == nil {
		return schedule.ClockInValidation{
			Reason:           "No schedule found for today",
			RequiresApproval: true,
		}, nil
	}

	resp := schedule.ToResponse(*relevant)
	validation := schedule.ClockInValidation{Schedule: &resp}

	earliest := relevant.StartTime.Add(-s.clockInTolerance)
	latest := relevant.StartTime.Add(s.clockInTolerance)
	end := schedule.NormalizeEnd(relevant.StartTime, relevant.EndTime)

	switch {
	case now.Before(earliest):
		validation.Reason = fmt.Sprintf("Too early to clock in; shift starts at %s", relevant.StartTime.Format("15:04"))
		validation.RequiresApproval = true
	case now.After(end):
		validation.Reason = "The scheduled shift has already ended"
		validation.RequiresApproval = true
	case now.After(latest):
		validation.Valid = true
		validation.CanClockIn = true
		validation.Warnings = append(validation.Warnings,
			fmt.Sprintf("Late clock-in: shift started at %s", relevant.StartTime.Format("15:04")))
	default:
		validation.Valid = true
		validation.CanClockIn = true
	}

	return validation, nil
}

func (s *scheduleServiceImpl) checkOverlap(ctx context.Context, staffID string, businessID string, start, end time.Time, excludeID string) error {
	existing, err := s.scheduleRepo.ListByStaff(ctx, staffID, businessID)
	if err != nil {
		return fmt.Errorf("load existing schedules: %w", err)
	}
	for _, other := range existing {
		if other.ID == excludeID || other.Status == schedule.StatusCompleted || other.Status == schedule.StatusMissed {
			continue
		}
		if schedule.Overlaps(start, end, other.StartTime, other.EndTime) {
			return schedule.ErrScheduleOverlap
		}
	}
	return nil
}

func toResponses(schedules []schedule.Schedule) []schedule.ScheduleResponse {
	responses := make([]schedule.ScheduleResponse, 0, len(schedules))
	for _, s := range schedules {
		responses = append(responses, schedule.ToResponse(s))
	}
	return responses
}
