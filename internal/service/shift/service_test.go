package shift

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/auraswift/pos-backend-go/internal/domain/business"
	"github.com/auraswift/pos-backend-go/internal/domain/schedule"
	"github.com/auraswift/pos-backend-go/internal/domain/shift"
	"github.com/auraswift/pos-backend-go/internal/domain/timeclock"
	"github.com/auraswift/pos-backend-go/internal/domain/user"
	"github.com/auraswift/pos-backend-go/internal/pkg/database"
	"github.com/auraswift/pos-backend-go/internal/repository/sqlite"
	scheduleService "github.com/auraswift/pos-backend-go/internal/service/schedule"
	timeclockService "github.com/auraswift/pos-backend-go/internal/service/timeclock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shiftTestEnv struct {
	db            *database.DB
	businessID    string
	userID        string
	userRepo      user.UserRepository
	posShiftRepo  shift.POSShiftRepository
	timeShiftRepo timeclock.TimeShiftRepository
	scheduleRepo  schedule.ScheduleRepository
	txRepo        shift.TransactionRepository
	timeclockSvc  timeclock.TimeclockService
	shiftSvc      shift.ShiftService
}

func newShiftTestEnv(t *testing.T) *shiftTestEnv {
	t.Helper()
	ctx := context.Background()

	db, err := database.NewSQLiteDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	userRepo := sqlite.NewUserRepository(db)
	businessRepo := sqlite.NewBusinessRepository(db)
	roleRepo := sqlite.NewRoleRepository(db)
	scheduleRepo := sqlite.NewScheduleRepository(db)
	timeShiftRepo := sqlite.NewTimeShiftRepository(db)
	posShiftRepo := sqlite.NewPOSShiftRepository(db)
	txRepo := sqlite.NewTransactionRepository(db)

	now := time.Now()
	biz, err := businessRepo.Create(ctx, business.Business{
		ID:              uuid.NewString(),
		Name:            "Corner Shop",
		MaxStartingCash: decimal.NewFromInt(500),
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	require.NoError(t, err)

	cashier, err := userRepo.Create(ctx, user.User{
		ID:           uuid.NewString(),
		BusinessID:   biz.ID,
		Email:        "cashier@example.com",
		PasswordHash: "x",
		FirstName:    "Casey",
		Role:         user.RoleCashier,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.NoError(t, err)

	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo, userRepo, 30)
	timeclockSvc := timeclockService.NewTimeclockService(timeShiftRepo, scheduleSvc)
	shiftSvc := NewShiftService(db, posShiftRepo, txRepo, timeShiftRepo, scheduleRepo, scheduleSvc, businessRepo, userRepo, roleRepo, 24)

	return &shiftTestEnv{
		db:            db,
		businessID:    biz.ID,
		userID:        cashier.ID,
		userRepo:      userRepo,
		posShiftRepo:  posShiftRepo,
		timeShiftRepo: timeShiftRepo,
		scheduleRepo:  scheduleRepo,
		txRepo:        txRepo,
		timeclockSvc:  timeclockSvc,
		shiftSvc:      shiftSvc,
	}
}

func (e *shiftTestEnv) clockIn(t *testing.T, ctx context.Context, override bool) timeclock.TimeShiftResponse {
	t.Helper()
	resp, err := e.timeclockSvc.ClockIn(ctx, e.userID, e.businessID, timeclock.ClockInRequest{Override: override})
	require.NoError(t, err)
	return resp
}

// scheduleNow puts the cashier on a shift that is currently in progress so
// plain clock-ins and shift starts pass validation.
func (e *shiftTestEnv) scheduleNow(t *testing.T, ctx context.Context) schedule.Schedule {
	t.Helper()
	now := time.Now()
	sched, err := e.scheduleRepo.Create(ctx, schedule.Schedule{
		ID:         uuid.NewString(),
		BusinessID: e.businessID,
		StaffID:    e.userID,
		StartTime:  now.Add(-10 * time.Minute),
		EndTime:    now.Add(8 * time.Hour),
		Status:     schedule.StatusUpcoming,
		CreatedBy:  e.userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	require.NoError(t, err)
	return sched
}

func (e *shiftTestEnv) startShift(t *testing.T, ctx context.Context, terminal string, cash int64) shift.ShiftResponse {
	t.Helper()
	resp, err := e.shiftSvc.Start(ctx, e.userID, e.businessID, shift.StartShiftRequest{
		TerminalID:   terminal,
		StartingCash: decimal.NewFromInt(cash),
	})
	require.NoError(t, err)
	return resp
}

func TestShiftService_Start_Success(t *testing.T) {
	ctx := context.Background()
	env := newShiftTestEnv(t)

	sched := env.scheduleNow(t, ctx)
	clockedIn := env.clockIn(t, ctx, false)
	started := env.startShift(t, ctx, "till-1", 100)

	assert.Equal(t, string(shift.StatusActive), started.Status)
	require.NotNil(t, started.TimeShiftID)
	assert.Equal(t, clockedIn.ID, *started.TimeShiftID)
	require.NotNil(t, started.ScheduleID)
	assert.Equal(t, sched.ID, *started.ScheduleID)
	assert.Empty(t, started.Warnings)

	// Opening the drawer marks the matched schedule as running.
	updated, err := env.scheduleRepo.GetByID(ctx, sched.ID, env.businessID)
	require.NoError(t, err)
	assert.Equal(t, schedule.StatusActive, updated.Status)
}

func TestShiftService_Start_UnscheduledNeedsOverride(t *testing.T) {
	ctx := context.Background()
	env := newShiftTestEnv(t)

	// No schedule at all: clock-in and shift start are both hard denials
	// without a manager override.
	_, err := env.timeclockSvc.ClockIn(ctx, env.userID, env.businessID, timeclock.ClockInRequest{})
	require.ErrorIs(t, err, timeclock.ErrClockInNotAllowed)

	env.clockIn(t, ctx, true)

	_, err = env.shiftSvc.Start(ctx, env.userID, env.businessID, shift.StartShiftRequest{
		TerminalID:   "till-1",
		StartingCash: decimal.NewFromInt(100),
	})
	require.ErrorIs(t, err, shift.ErrScheduleValidationFailed)

	started, err := env.shiftSvc.Start(ctx, env.userID, env.businessID, shift.StartShiftRequest{
		TerminalID:   "till-1",
		StartingCash: decimal.NewFromInt(100),
		Override:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, string(shift.StatusActive), started.Status)
}

func TestShiftService_Start_AdminRoleSkipsScheduleValidation(t *testing.T) {
	ctx := context.Background()
	env := newShiftTestEnv(t)

	now := time.Now()
	admin, err := env.userRepo.Create(ctx, user.User{
		ID:           uuid.NewString(),
		BusinessID:   env.businessID,
		Email:        "owner@example.com",
		PasswordHash: "x",
		FirstName:    "Ola",
		Role:         user.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.NoError(t, err)

	_, err = env.timeclockSvc.ClockIn(ctx, admin.ID, env.businessID, timeclock.ClockInRequest{Override: true})
	require.NoError(t, err)

	// Admins do not run a drawer by role, so no schedule and no override
	// still opens the shift.
	started, err := env.shiftSvc.Start(ctx, admin.ID, env.businessID, shift.StartShiftRequest{
		TerminalID:   "till-1",
		StartingCash: decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	assert.Equal(t, string(shift.StatusActive), started.Status)
}

func TestShiftService_Start_NegativeStartingCash(t *testing.T) {
	ctx := context.Background()
	env := newShiftTestEnv(t)
	env.scheduleNow(t, ctx)
	env.clockIn(t, ctx, false)

	_, err := env.shiftSvc.Start(ctx, env.userID, env.businessID, shift.StartShiftRequest{
		TerminalID:   "till-1",
		StartingCash: decimal.NewFromInt(-10),
	})
	require.ErrorIs(t, err, shift.ErrNegativeStartingCash)
	assert.EqualError(t, err, "Starting cash cannot be negative")
}

func TestShiftService_Start_StartingCashOverBusinessLimit(t *testing.T) {
	ctx := context.Background()
	env := newShiftTestEnv(t)
	env.scheduleNow(t, ctx)
	env.clockIn(t, ctx, false)

	_, err := env.shiftSvc.Start(ctx, env.userID, env.businessID, shift.StartShiftRequest{
		TerminalID:   "till-1",
		StartingCash: decimal.NewFromInt(501),
	})
	assert.ErrorIs(t, err, shift.ErrStartingCashTooHigh)
}

func TestShiftService_Start_RequiresClockIn(t *testing.T) {
	ctx := context.Background()
	env := newShiftTestEnv(t)

	// The clock-in gate comes before the cash bounds, so the bad amount
	// never gets a look-in.
	_, err := env.shiftSvc.Start(ctx, env.userID, env.businessID, shift.StartShiftRequest{
		TerminalID:   "till-1",
		StartingCash: decimal.NewFromInt(-10),
	})
	assert.ErrorIs(t, err, timeclock.ErrNotClockedIn)
}

func TestShiftService_Start_AlreadyActive(t *testing.T) {
	ctx := context.Background()
	env := newShiftTestEnv(t)
	env.scheduleNow(t, ctx)
	env.clockIn(t, ctx, false)
	env.startShift(t, ctx, "till-1", 100)

	_, err := env.shiftSvc.Start(ctx, env.userID, env.businessID, shift.StartShiftRequest{
		TerminalID:   "till-1",
		StartingCash: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, shift.ErrShiftAlreadyActive)

	_, err = env.shiftSvc.Start(ctx, env.userID, env.businessID, shift.StartShiftRequest{
		TerminalID:   "till-2",
		StartingCash: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, shift.ErrShiftActiveOtherTerminal)
}

func TestShiftService_End_ReconcilesDrawerAndClocksOut(t *testing.T) {
	ctx := context.Background()
	env := newShiftTestEnv(t)
	env.scheduleNow(t, ctx)
	clockedIn := env.clockIn(t, ctx, false)
	env.startShift(t, ctx, "till-1", 100)

	record := func(txType, method string, amount int64) {
		_, err := env.shiftSvc.RecordTransaction(ctx, env.userID, shift.RecordTransactionRequest{
			Type:          txType,
			Amount:        decimal.NewFromInt(amount),
			PaymentMethod: method,
		})
		require.NoError(t, err)
	}
	record("sale", "cash", 50)
	record("sale", "card", 200)
	record("refund", "cash", 10)
	record("void", "cash", 5)

	counted := decimal.NewFromInt(135)
	ended, err := env.shiftSvc.End(ctx, env.userID, shift.EndShiftRequest{FinalCash: counted})
	require.NoError(t, err)

	assert.Equal(t, string(shift.StatusEnded), ended.Status)
	assert.True(t, ended.TotalSales.Equal(decimal.NewFromInt(250)))
	assert.True(t, ended.TotalRefunds.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, 3, ended.TotalTransactions)
	assert.Equal(t, 1, ended.TotalVoids)
	// Expected cash only counts cash movement: 100 + 50 - 10.
	require.NotNil(t, ended.ExpectedCash)
	assert.True(t, ended.ExpectedCash.Equal(decimal.NewFromInt(140)))
	require.NotNil(t, ended.FinalCash)
	assert.True(t, ended.FinalCash.Equal(counted))
	require.NotNil(t, ended.EndReason)
	assert.Equal(t, shift.EndReasonUser, *ended.EndReason)

	// Ending the last POS shift on the time shift clocks the user out.
	timeShift, err := env.timeShiftRepo.GetByID(ctx, clockedIn.ID)
	require.NoError(t, err)
	assert.Equal(t, timeclock.StatusCompleted, timeShift.Status)
	require.NotNil(t, timeShift.ClockOutSource)
	assert.Equal(t, timeclock.SourceSystem, *timeShift.ClockOutSource)

	active, err := env.shiftSvc.GetActive(ctx, env.userID)
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestShiftService_End_NoActiveShift(t *testing.T) {
	ctx := context.Background()
	env := newShiftTestEnv(t)

	_, err := env.shiftSvc.End(ctx, env.userID, shift.EndShiftRequest{})
	assert.ErrorIs(t, err, shift.ErrNoActiveShift)
}

func TestShiftService_End_NoClockOutWhileTimeShiftStillBusy(t *testing.T) {
	ctx := context.Background()
	env := newShiftTestEnv(t)
	env.scheduleNow(t, ctx)
	clockedIn := env.clockIn(t, ctx, false)
	env.startShift(t, ctx, "till-1", 100)

	// A second live drawer still references the same time shift.
	now := time.Now()
	_, err := env.posShiftRepo.Create(ctx, shift.POSShift{
		ID:           uuid.NewString(),
		UserID:       "someone-else",
		BusinessID:   env.businessID,
		TerminalID:   "till-2",
		TimeShiftID:  &clockedIn.ID,
		StartingCash: decimal.NewFromInt(50),
		TotalSales:   decimal.Zero,
		TotalRefunds: decimal.Zero,
		Status:       shift.StatusActive,
		StartedAt:    now,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.NoError(t, err)

	_, err = env.shiftSvc.End(ctx, env.userID, shift.EndShiftRequest{FinalCash: decimal.NewFromInt(100)})
	require.NoError(t, err)

	timeShift, err := env.timeShiftRepo.GetByID(ctx, clockedIn.ID)
	require.NoError(t, err)
	assert.Equal(t, timeclock.StatusActive, timeShift.Status)

	// Once the last drawer closes, exactly one system clock-out fires.
	_, err = env.shiftSvc.End(ctx, "someone-else", shift.EndShiftRequest{FinalCash: decimal.NewFromInt(50)})
	require.NoError(t, err)

	timeShift, err = env.timeShiftRepo.GetByID(ctx, clockedIn.ID)
	require.NoError(t, err)
	assert.Equal(t, timeclock.StatusCompleted, timeShift.Status)
	require.NotNil(t, timeShift.ClockOutSource)
	assert.Equal(t, timeclock.SourceSystem, *timeShift.ClockOutSource)
}

func seedActiveShift(t *testing.T, ctx context.Context, env *shiftTestEnv, startedAt time.Time, scheduleID *string, timeShiftID *string) shift.POSShift {
	t.Helper()
	created, err := env.posShiftRepo.Create(ctx, shift.POSShift{
		ID:           uuid.NewString(),
		UserID:       env.userID,
		BusinessID:   env.businessID,
		TerminalID:   "till-1",
		ScheduleID:   scheduleID,
		TimeShiftID:  timeShiftID,
		StartingCash: decimal.NewFromInt(100),
		TotalSales:   decimal.Zero,
		TotalRefunds: decimal.Zero,
		Status:       shift.StatusActive,
		StartedAt:    startedAt,
		CreatedAt:    startedAt,
		UpdatedAt:    startedAt,
	})
	require.NoError(t, err)
	return created
}

func TestShiftService_Sweep_ClosesOverdueShift(t *testing.T) {
	ctx := context.Background()
	env := newShiftTestEnv(t)
	now := time.Now()

	sched, err := env.scheduleRepo.Create(ctx, schedule.Schedule{
		ID:         uuid.NewString(),
		BusinessID: env.businessID,
		StaffID:    env.userID,
		StartTime:  now.Add(-6 * time.Hour),
		EndTime:    now.Add(-1 * time.Hour),
		Status:     schedule.StatusActive,
		CreatedBy:  env.userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	require.NoError(t, err)

	// The only schedule has ended, so clocking in takes a manager override.
	clockedIn := env.clockIn(t, ctx, true)
	seeded := seedActiveShift(t, ctx, env, now.Add(-5*time.Hour), &sched.ID, &clockedIn.ID)

	require.NoError(t, env.shiftSvc.Sweep(ctx))

	swept, err := env.posShiftRepo.GetByID(ctx, seeded.ID, env.businessID)
	require.NoError(t, err)
	assert.Equal(t, shift.StatusEnded, swept.Status)
	require.NotNil(t, swept.EndReason)
	assert.Equal(t, shift.EndReasonOverdue, *swept.EndReason)
	// Auto-close assumes the drawer balances.
	require.NotNil(t, swept.FinalCash)
	require.NotNil(t, swept.ExpectedCash)
	assert.True(t, swept.FinalCash.Equal(*swept.ExpectedCash))

	timeShift, err := env.timeShiftRepo.GetByID(ctx, clockedIn.ID)
	require.NoError(t, err)
	assert.Equal(t, timeclock.StatusCompleted, timeShift.Status)

	updatedSched, err := env.scheduleRepo.GetByID(ctx, sched.ID, env.businessID)
	require.NoError(t, err)
	assert.Equal(t, schedule.StatusCompleted, updatedSched.Status)
}

func TestShiftService_Sweep_ClosesStaleShift(t *testing.T) {
	ctx := context.Background()
	env := newShiftTestEnv(t)

	seeded := seedActiveShift(t, ctx, env, time.Now().Add(-48*time.Hour), nil, nil)

	require.NoError(t, env.shiftSvc.Sweep(ctx))

	swept, err := env.posShiftRepo.GetByID(ctx, seeded.ID, env.businessID)
	require.NoError(t, err)
	assert.Equal(t, shift.StatusEnded, swept.Status)
	require.NotNil(t, swept.EndReason)
	assert.Equal(t, shift.EndReasonStale, *swept.EndReason)
}

func TestShiftService_Sweep_LeavesRunningShiftAlone(t *testing.T) {
	ctx := context.Background()
	env := newShiftTestEnv(t)
	now := time.Now()

	sched, err := env.scheduleRepo.Create(ctx, schedule.Schedule{
		ID:         uuid.NewString(),
		BusinessID: env.businessID,
		StaffID:    env.userID,
		StartTime:  now.Add(-2 * time.Hour),
		EndTime:    now.Add(6 * time.Hour),
		Status:     schedule.StatusActive,
		CreatedBy:  env.userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	require.NoError(t, err)

	seeded := seedActiveShift(t, ctx, env, now.Add(-2*time.Hour), &sched.ID, nil)

	require.NoError(t, env.shiftSvc.Sweep(ctx))

	kept, err := env.posShiftRepo.GetByID(ctx, seeded.ID, env.businessID)
	require.NoError(t, err)
	assert.Equal(t, shift.StatusActive, kept.Status)
}

func TestShiftService_GetCashDrawerBalance(t *testing.T) {
	ctx := context.Background()
	env := newShiftTestEnv(t)
	env.scheduleNow(t, ctx)
	env.clockIn(t, ctx, false)
	started := env.startShift(t, ctx, "till-1", 100)

	record := func(txType, method string, amount int64) {
		_, err := env.shiftSvc.RecordTransaction(ctx, env.userID, shift.RecordTransactionRequest{
			Type:          txType,
			Amount:        decimal.NewFromInt(amount),
			PaymentMethod: method,
		})
		require.NoError(t, err)
	}
	record("sale", "cash", 50)
	record("sale", "card", 75)
	record("refund", "cash", 10)

	balance, err := env.shiftSvc.GetCashDrawerBalance(ctx, env.userID)
	require.NoError(t, err)
	assert.Equal(t, started.ID, balance.ShiftID)
	assert.True(t, balance.CashSales.Equal(decimal.NewFromInt(50)))
	assert.True(t, balance.CashRefunds.Equal(decimal.NewFromInt(10)))
	assert.True(t, balance.Balance.Equal(decimal.NewFromInt(140)), "got %s", balance.Balance)
}

func TestShiftService_GetStats(t *testing.T) {
	ctx := context.Background()
	env := newShiftTestEnv(t)
	env.scheduleNow(t, ctx)
	env.clockIn(t, ctx, false)
	started := env.startShift(t, ctx, "till-1", 100)

	for i := 0; i < 3; i++ {
		_, err := env.shiftSvc.RecordTransaction(ctx, env.userID, shift.RecordTransactionRequest{
			Type:          "sale",
			Amount:        decimal.NewFromInt(int64(10 * (i + 1))),
			PaymentMethod: "card",
		})
		require.NoError(t, err)
	}
	_, err := env.shiftSvc.RecordTransaction(ctx, env.userID, shift.RecordTransactionRequest{
		Type:          "refund",
		Amount:        decimal.NewFromInt(15),
		PaymentMethod: "cash",
	})
	require.NoError(t, err)

	stats, err := env.shiftSvc.GetStats(ctx, env.businessID, started.ID)
	require.NoError(t, err)
	assert.True(t, stats.TotalSales.Equal(decimal.NewFromInt(60)))
	assert.True(t, stats.TotalRefunds.Equal(decimal.NewFromInt(15)))
	assert.True(t, stats.NetSales.Equal(decimal.NewFromInt(45)))
	assert.Equal(t, 4, stats.TotalTransactions)
}

func TestShiftService_RecordTransaction_RejectsBadType(t *testing.T) {
	ctx := context.Background()
	env := newShiftTestEnv(t)
	env.scheduleNow(t, ctx)
	env.clockIn(t, ctx, false)
	env.startShift(t, ctx, "till-1", 100)

	_, err := env.shiftSvc.RecordTransaction(ctx, env.userID, shift.RecordTransactionRequest{
		Type:          "gift",
		Amount:        decimal.NewFromInt(10),
		PaymentMethod: "cash",
	})
	assert.Error(t, err)
}

func TestShiftService_RecordTransaction_NoActiveShift(t *testing.T) {
	ctx := context.Background()
	env := newShiftTestEnv(t)

	_, err := env.shiftSvc.RecordTransaction(ctx, env.userID, shift.RecordTransactionRequest{
		Type:          "sale",
		Amount:        decimal.NewFromInt(10),
		PaymentMethod: "cash",
	})
	assert.ErrorIs(t, err, shift.ErrNoActiveShift)
}

func TestShiftService_GetTodaySchedule(t *testing.T) {
	ctx := context.Background()
	env := newShiftTestEnv(t)
	now := time.Now()

	none, err := env.shiftSvc.GetTodaySchedule(ctx, env.userID, env.businessID)
	require.NoError(t, err)
	assert.Nil(t, none)

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

	got, err := env.shiftSvc.GetTodaySchedule(ctx, env.userID, env.businessID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, sched.ID, got.ID)
}

func TestShiftService_Start_HonorsScheduleValidation(t *testing.T) {
	ctx := context.Background()
	env := newShiftTestEnv(t)
	now := time.Now()

	// The only schedule in the window has already ended, so clock-in
	// requires approval and the drawer must not open without an override.
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

	// Clock in with override so only the shift start is under test.
	_, err = env.timeclockSvc.ClockIn(ctx, env.userID, env.businessID, timeclock.ClockInRequest{Override: true})
	require.NoError(t, err)

	_, err = env.shiftSvc.Start(ctx, env.userID, env.businessID, shift.StartShiftRequest{
		TerminalID:   "till-1",
		StartingCash: decimal.NewFromInt(100),
	})
	require.ErrorIs(t, err, shift.ErrScheduleValidationFailed)

	started, err := env.shiftSvc.Start(ctx, env.userID, env.businessID, shift.StartShiftRequest{
		TerminalID:   "till-1",
		StartingCash: decimal.NewFromInt(100),
		Override:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, string(shift.StatusActive), started.Status)
}

func TestShiftService_HourlyStats(t *testing.T) {
	ctx := context.Background()
	env := newShiftTestEnv(t)
	env.scheduleNow(t, ctx)
	env.clockIn(t, ctx, false)
	started := env.startShift(t, ctx, "till-1", 100)

	for i := 0; i < 2; i++ {
		_, err := env.shiftSvc.RecordTransaction(ctx, env.userID, shift.RecordTransactionRequest{
			Type:          "sale",
			Amount:        decimal.NewFromInt(20),
			PaymentMethod: "cash",
		})
		require.NoError(t, err)
	}

	hourly, err := env.shiftSvc.GetHourlyStats(ctx, env.businessID, started.ID)
	require.NoError(t, err)
	require.Len(t, hourly, 1)
	assert.Equal(t, time.Now().Hour(), hourly[0].Hour)
	assert.Equal(t, 2, hourly[0].Count)
	assert.True(t, hourly[0].Amount.Equal(decimal.NewFromInt(40)), fmt.Sprintf("got %s", hourly[0].Amount))
}
