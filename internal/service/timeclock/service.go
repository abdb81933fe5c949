package timeclock

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/auraswift/pos-backend-go/internal/domain/schedule"
	"github.com/auraswift/pos-backend-go/internal/domain/timeclock"
	"github.com/google/uuid"
)

type timeclockServiceImpl struct {
	timeShiftRepo   timeclock.TimeShiftRepository
	scheduleService schedule.ScheduleService
}

func NewTimeclockService(
	timeShiftRepo timeclock.TimeShiftRepository,
	scheduleService schedule.ScheduleService,
) timeclock.TimeclockService {
	return &timeclockServiceImpl{
		timeShiftRepo:   timeShiftRepo,
		scheduleService: scheduleService,
	}
}

// ClockIn implements timeclock.TimeclockService. Schedule validation runs
// first; hard failures block unless the request carries a manager override.
func (s *timeclockServiceImpl) ClockIn(ctx context.Context, userID string, businessID string, req timeclock.ClockInRequest) (timeclock.TimeShiftResponse, error) {
	active, err := s.timeShiftRepo.GetActiveByUser(ctx, userID)
	if err != nil {
		return timeclock.TimeShiftResponse{}, fmt.Errorf("check active time shift: %w", err)
	}
	if active != nil {
		return timeclock.TimeShiftResponse{}, timeclock.ErrAlreadyClockedIn
	}

	validation, err := s.scheduleService.ValidateClockIn(ctx, userID, businessID)
	if err != nil {
		return timeclock.TimeShiftResponse{}, err
	}
	if !validation.CanClockIn && !req.Override {
		return timeclock.TimeShiftResponse{}, timeclock.ErrClockInNotAllowed
	}

	var scheduleID *string
	if validation.Schedule != nil {
		scheduleID = &validation.Schedule.ID
	}

	now := time.Now()
	created, err := s.timeShiftRepo.Create(ctx, timeclock.TimeShift{
		ID:         uuid.NewString(),
		UserID:     userID,
		BusinessID: businessID,
		ScheduleID: scheduleID,
		ClockIn:    now,
		Status:     timeclock.StatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return timeclock.TimeShiftResponse{}, err
	}

	slog.Info("clocked in", "user_id", userID, "time_shift_id", created.ID, "override", req.Override)

	resp := timeclock.ToResponse(created)
	resp.Warnings = validation.Warnings
	return resp, nil
}

// ClockOut implements timeclock.TimeclockService. An open break is closed
// and folded into the break total first.
func (s *timeclockServiceImpl) ClockOut(ctx context.Context, userID string) (timeclock.TimeShiftResponse, error) {
	active, err := s.timeShiftRepo.GetActiveByUser(ctx, userID)
	if err != nil {
		return timeclock.TimeShiftResponse{}, fmt.Errorf("check active time shift: %w", err)
	}
	if active == nil {
		return timeclock.TimeShiftResponse{}, timeclock.ErrNotClockedIn
	}

	now := time.Now()
	closeTimeShift(active, now, timeclock.SourceUser)

	if err := s.timeShiftRepo.Update(ctx, *active); err != nil {
		return timeclock.TimeShiftResponse{}, err
	}

	slog.Info("clocked out", "user_id", userID, "time_shift_id", active.ID)
	return timeclock.ToResponse(*active), nil
}

// StartBreak implements timeclock.TimeclockService.
func (s *timeclockServiceImpl) StartBreak(ctx context.Context, userID string) (timeclock.TimeShiftResponse, error) {
	active, err := s.timeShiftRepo.GetActiveByUser(ctx, userID)
	if err != nil {
		return timeclock.TimeShiftResponse{}, fmt.Errorf("check active time shift: %w", err)
	}
	if active == nil {
		return timeclock.TimeShiftResponse{}, timeclock.ErrNotClockedIn
	}
	if active.OnBreak() {
		return timeclock.TimeShiftResponse{}, timeclock.ErrBreakInProgress
	}

	now := time.Now()
	active.BreakStart = &now
	active.UpdatedAt = now

	if err := s.timeShiftRepo.Update(ctx, *active); err != nil {
		return timeclock.TimeShiftResponse{}, err
	}
	return timeclock.ToResponse(*active), nil
}

// EndBreak implements timeclock.TimeclockService.
func (s *timeclockServiceImpl) EndBreak(ctx context.Context, userID string) (timeclock.TimeShiftResponse, error) {
	active, err := s.timeShiftRepo.GetActiveByUser(ctx, userID)
	if err != nil {
		return timeclock.TimeShiftResponse{}, fmt.Errorf("check active time shift: %w", err)
	}
	if active == nil {
		return timeclock.TimeShiftResponse{}, timeclock.ErrNotClockedIn
	}
	if !active.OnBreak() {
		return timeclock.TimeShiftResponse{}, timeclock.ErrNoBreakInProgress
	}

	now := time.Now()
	active.BreakMinutes += int(now.Sub(*active.BreakStart).Minutes())
	active.BreakStart = nil
	active.UpdatedAt = now

	if err := s.timeShiftRepo.Update(ctx, *active); err != nil {
		return timeclock.TimeShiftResponse{}, err
	}
	return timeclock.ToResponse(*active), nil
}

// GetActive implements timeclock.TimeclockService.
func (s *timeclockServiceImpl) GetActive(ctx context.Context, userID string) (*timeclock.TimeShiftResponse, error) {
	active, err := s.timeShiftRepo.GetActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, nil
	}
	resp := timeclock.ToResponse(*active)
	return &resp, nil
}

// closeTimeShift completes a time shift in place, folding any open break
// into the break total. Shared with the POS shift cascade.
func closeTimeShift(t *timeclock.TimeShift, at time.Time, source string) {
	if t.BreakStart != nil {
		t.BreakMinutes += int(at.Sub(*t.BreakStart).Minutes())
		t.BreakStart = nil
	}
	t.ClockOut = &at
	t.ClockOutSource = &source
	t.Status = timeclock.StatusCompleted
	t.UpdatedAt = at
}

// Close completes the given time shift with the supplied source. Exposed for
// the POS shift service's auto-clock-out cascade.
func Close(ctx context.Context, repo timeclock.TimeShiftRepository, t *timeclock.TimeShift, at time.Time, source string) error {
	closeTimeShift(t, at, source)
	return repo.Update(ctx, *t)
}
