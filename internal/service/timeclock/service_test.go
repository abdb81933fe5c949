package timeclock

import (
	"context"
	"testing"
	"time"

	"github.com/auraswift/pos-backend-go/internal/domain/schedule"
	"github.com/auraswift/pos-backend-go/internal/domain/timeclock"
	"github.com/auraswift/pos-backend-go/internal/domain/user"
	"github.com/auraswift/pos-backend-go/internal/pkg/database"
	"github.com/auraswift/pos-backend-go/internal/repository/sqlite"
	scheduleService "github.com/auraswift/pos-backend-go/internal/service/schedule"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type timeclockTestEnv struct {
	businessID   string
	userID       string
	scheduleRepo schedule.ScheduleRepository
	timeclockSvc timeclock.TimeclockService
}

func newTimeclockTestEnv(t *testing.T) *timeclockTestEnv {
	t.Helper()
	ctx := context.Background()

	db, err := database.NewSQLiteDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	userRepo := sqlite.NewUserRepository(db)
	scheduleRepo := sqlite.NewScheduleRepository(db)
	timeShiftRepo := sqlite.NewTimeShiftRepository(db)

	businessID := uuid.NewString()
	now := time.Now()
	staff, err := userRepo.Create(ctx, user.User{
		ID:         uuid.NewString(),
		BusinessID: businessID,
		Email:      "staff@example.com",
		Role:       user.RoleCashier,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	require.NoError(t, err)

	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo, userRepo, 30)
	timeclockSvc := NewTimeclockService(timeShiftRepo, scheduleSvc)

	return &timeclockTestEnv{
		businessID:   businessID,
		userID:       staff.ID,
		scheduleRepo: scheduleRepo,
		timeclockSvc: timeclockSvc,
	}
}

// seedLiveSchedule puts the staff member on a shift running right now so a
// plain clock-in passes validation.
func seedLiveSchedule(t *testing.T, ctx context.Context, env *timeclockTestEnv) schedule.Schedule {
	t.Helper()
	now := time.Now()
	sched, err := env.scheduleRepo.Create(ctx, schedule.Schedule{
		ID:         uuid.NewString(),
		BusinessID: env.businessID,
		StaffID:    env.userID,
		StartTime:  now.Add(-10 * time.Minute),
		EndTime:    now.Add(8 * time.Hour),
		Status:     schedule.StatusUpcoming,
		CreatedBy:  env.userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	require.NoError(t, err)
	return sched
}

func TestTimeclockService_ClockInAndOut(t *testing.T) {
	ctx := context.Background()
	env := newTimeclockTestEnv(t)
	seedLiveSchedule(t, ctx, env)

	clockedIn, err := env.timeclockSvc.ClockIn(ctx, env.userID, env.businessID, timeclock.ClockInRequest{})
	require.NoError(t, err)
	assert.Equal(t, string(timeclock.StatusActive), clockedIn.Status)
	assert.Empty(t, clockedIn.Warnings)

	active, err := env.timeclockSvc.GetActive(ctx, env.userID)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, clockedIn.ID, active.ID)

	clockedOut, err := env.timeclockSvc.ClockOut(ctx, env.userID)
	require.NoError(t, err)
	assert.Equal(t, string(timeclock.StatusCompleted), clockedOut.Status)
	require.NotNil(t, clockedOut.ClockOutSource)
	assert.Equal(t, timeclock.SourceUser, *clockedOut.ClockOutSource)

	active, err = env.timeclockSvc.GetActive(ctx, env.userID)
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestTimeclockService_ClockIn_UnscheduledDenied(t *testing.T) {
	ctx := context.Background()
	env := newTimeclockTestEnv(t)

	// No schedule today is a hard denial, not a warning.
	_, err := env.timeclockSvc.ClockIn(ctx, env.userID, env.businessID, timeclock.ClockInRequest{})
	assert.ErrorIs(t, err, timeclock.ErrClockInNotAllowed)

	clockedIn, err := env.timeclockSvc.ClockIn(ctx, env.userID, env.businessID, timeclock.ClockInRequest{Override: true})
	require.NoError(t, err)
	assert.Equal(t, string(timeclock.StatusActive), clockedIn.Status)
	assert.Nil(t, clockedIn.ScheduleID)
}

func TestTimeclockService_DoubleClockIn(t *testing.T) {
	ctx := context.Background()
	env := newTimeclockTestEnv(t)
	seedLiveSchedule(t, ctx, env)

	_, err := env.timeclockSvc.ClockIn(ctx, env.userID, env.businessID, timeclock.ClockInRequest{})
	require.NoError(t, err)

	_, err = env.timeclockSvc.ClockIn(ctx, env.userID, env.businessID, timeclock.ClockInRequest{})
	assert.ErrorIs(t, err, timeclock.ErrAlreadyClockedIn)
}

func TestTimeclockService_ClockOutWithoutClockIn(t *testing.T) {
	ctx := context.Background()
	env := newTimeclockTestEnv(t)

	_, err := env.timeclockSvc.ClockOut(ctx, env.userID)
	assert.ErrorIs(t, err, timeclock.ErrNotClockedIn)
}

func TestTimeclockService_Breaks(t *testing.T) {
	ctx := context.Background()
	env := newTimeclockTestEnv(t)
	seedLiveSchedule(t, ctx, env)

	_, err := env.timeclockSvc.ClockIn(ctx, env.userID, env.businessID, timeclock.ClockInRequest{})
	require.NoError(t, err)

	_, err = env.timeclockSvc.EndBreak(ctx, env.userID)
	assert.ErrorIs(t, err, timeclock.ErrNoBreakInProgress)

	onBreak, err := env.timeclockSvc.StartBreak(ctx, env.userID)
	require.NoError(t, err)
	assert.True(t, onBreak.OnBreak)

	_, err = env.timeclockSvc.StartBreak(ctx, env.userID)
	assert.ErrorIs(t, err, timeclock.ErrBreakInProgress)

	offBreak, err := env.timeclockSvc.EndBreak(ctx, env.userID)
	require.NoError(t, err)
	assert.False(t, offBreak.OnBreak)
}

func TestTimeclockService_ClockOutFoldsOpenBreak(t *testing.T) {
	ctx := context.Background()
	env := newTimeclockTestEnv(t)
	seedLiveSchedule(t, ctx, env)

	_, err := env.timeclockSvc.ClockIn(ctx, env.userID, env.businessID, timeclock.ClockInRequest{})
	require.NoError(t, err)
	_, err = env.timeclockSvc.StartBreak(ctx, env.userID)
	require.NoError(t, err)

	clockedOut, err := env.timeclockSvc.ClockOut(ctx, env.userID)
	require.NoError(t, err)
	assert.False(t, clockedOut.OnBreak)
	assert.Equal(t, string(timeclock.StatusCompleted), clockedOut.Status)
}

func TestTimeclockService_ClockIn_BindsRelevantSchedule(t *testing.T) {
	ctx := context.Background()
	env := newTimeclockTestEnv(t)
	now := time.Now()

	sched, err := env.scheduleRepo.Create(ctx, schedule.Schedule{
		ID:         uuid.NewString(),
		BusinessID: env.businessID,
		StaffID:    env.userID,
		StartTime:  now.Add(-1 * time.Hour),
		EndTime:    now.Add(7 * time.Hour),
		Status:     schedule.StatusUpcoming,
		CreatedBy:  env.userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	require.NoError(t, err)

	clockedIn, err := env.timeclockSvc.ClockIn(ctx, env.userID, env.businessID, timeclock.ClockInRequest{})
	require.NoError(t, err)
	require.NotNil(t, clockedIn.ScheduleID)
	assert.Equal(t, sched.ID, *clockedIn.ScheduleID)
}

func TestTimeclockService_ClockIn_BlockedAfterScheduleEnd(t *testing.T) {
	ctx := context.Background()
	env := newTimeclockTestEnv(t)
	now := time.Now()

	_, err := env.scheduleRepo.Create(ctx, schedule.Schedule{
		ID:         uuid.NewString(),
		BusinessID: env.businessID,
		StaffID:    env.userID,
		StartTime:  now.Add(-8 * time.Hour),
		EndTime:    now.Add(-1 * time.Hour),
		Status:     schedule.StatusUpcoming,
		CreatedBy:  env.userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	require.NoError(t, err)

	_, err = env.timeclockSvc.ClockIn(ctx, env.userID, env.businessID, timeclock.ClockInRequest{})
	assert.ErrorIs(t, err, timeclock.ErrClockInNotAllowed)

	// A manager override pushes past the hard failure.
	clockedIn, err := env.timeclockSvc.ClockIn(ctx, env.userID, env.businessID, timeclock.ClockInRequest{Override: true})
	require.NoError(t, err)
	assert.Equal(t, string(timeclock.StatusActive), clockedIn.Status)
}
