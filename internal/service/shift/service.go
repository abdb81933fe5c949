package shift

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/auraswift/pos-backend-go/internal/domain/business"
	"github.com/auraswift/pos-backend-go/internal/domain/role"
	"github.com/auraswift/pos-backend-go/internal/domain/schedule"
	"github.com/auraswift/pos-backend-go/internal/domain/shift"
	"github.com/auraswift/pos-backend-go/internal/domain/timeclock"
	"github.com/auraswift/pos-backend-go/internal/domain/user"
	"github.com/auraswift/pos-backend-go/internal/pkg/database"
	"github.com/auraswift/pos-backend-go/internal/repository/sqlite"
	timeclockservice "github.com/auraswift/pos-backend-go/internal/service/timeclock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type shiftServiceImpl struct {
	db              *database.DB
	posShiftRepo    shift.POSShiftRepository
	transactionRepo shift.TransactionRepository
	timeShiftRepo   timeclock.TimeShiftRepository
	scheduleRepo    schedule.ScheduleRepository
	scheduleService schedule.ScheduleService
	businessRepo    business.BusinessRepository
	userRepo        user.UserRepository
	roleRepo        role.RoleRepository
	staleAfter      time.Duration
}

func NewShiftService(
	db *database.DB,
	posShiftRepo shift.POSShiftRepository,
	transactionRepo shift.TransactionRepository,
	timeShiftRepo timeclock.TimeShiftRepository,
	scheduleRepo schedule.ScheduleRepository,
	scheduleService schedule.ScheduleService,
	businessRepo business.BusinessRepository,
	userRepo user.UserRepository,
	roleRepo role.RoleRepository,
	staleShiftHours int,
) shift.ShiftService {
	return &shiftServiceImpl{
		db:              db,
		posShiftRepo:    posShiftRepo,
		transactionRepo: transactionRepo,
		timeShiftRepo:   timeShiftRepo,
		scheduleRepo:    scheduleRepo,
		scheduleService: scheduleService,
		businessRepo:    businessRepo,
		userRepo:        userRepo,
		roleRepo:        roleRepo,
		staleAfter:      time.Duration(staleShiftHours) * time.Hour,
	}
}

// Start implements shift.ShiftService. Preconditions, in order: valid
// request, no leftover auto-closable shifts, no live shift for the user, an
// open time shift, a passing schedule validation when the role requires a
// drawer (override excepted), and cash within the business limit.
func (s *shiftServiceImpl) Start(ctx context.Context, userID string, businessID string, req shift.StartShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	// Yesterday's forgotten shifts must not block today's till.
	if err := s.Sweep(ctx); err != nil {
		slog.Warn("pre-start sweep failed", "error", err)
	}

	active, err := s.posShiftRepo.GetActiveByUser(ctx, userID)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("check active shift: %w", err)
	}
	if active != nil {
		if active.TerminalID == req.TerminalID {
			return shift.ShiftResponse{}, shift.ErrShiftAlreadyActive
		}
		return shift.ShiftResponse{}, shift.ErrShiftActiveOtherTerminal
	}

	timeShift, err := s.timeShiftRepo.GetActiveByUser(ctx, userID)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("check time shift: %w", err)
	}
	if timeShift == nil {
		return shift.ShiftResponse{}, timeclock.ErrNotClockedIn
	}

	// Only roles that run a drawer are held to their schedule.
	var validation schedule.ClockInValidation
	if s.requiresPOSShift(ctx, userID, businessID) {
		validation, err = s.scheduleService.ValidateClockIn(ctx, userID, businessID)
		if err != nil {
			return shift.ShiftResponse{}, err
		}
		if !validation.CanClockIn && !req.Override {
			return shift.ShiftResponse{}, shift.ErrScheduleValidationFailed
		}
	}

	if req.StartingCash.IsNegative() {
		return shift.ShiftResponse{}, shift.ErrNegativeStartingCash
	}
	biz, err := s.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if req.StartingCash.GreaterThan(biz.MaxStartingCash) {
		return shift.ShiftResponse{}, shift.ErrStartingCashTooHigh
	}

	var scheduleID *string
	if validation.Schedule != nil {
		scheduleID = &validation.Schedule.ID
	} else if timeShift.ScheduleID != nil {
		scheduleID = timeShift.ScheduleID
	}

	now := time.Now()
	created, err := s.posShiftRepo.Create(ctx, shift.POSShift{
		ID:           uuid.NewString(),
		UserID:       userID,
		BusinessID:   businessID,
		TerminalID:   req.TerminalID,
		ScheduleID:   scheduleID,
		TimeShiftID:  &timeShift.ID,
		StartingCash: req.StartingCash,
		TotalSales:   decimal.Zero,
		TotalRefunds: decimal.Zero,
		Status:       shift.StatusActive,
		StartedAt:    now,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	// The schedule status update is advisory; the drawer is already open.
	if scheduleID != nil {
		if err := s.scheduleRepo.UpdateStatus(ctx, *scheduleID, schedule.StatusActive); err != nil {
			slog.Warn("mark schedule active failed", "schedule_id", *scheduleID, "error", err)
		}
	}

	slog.Info("pos shift started",
		"shift_id", created.ID,
		"user_id", userID,
		"terminal_id", req.TerminalID,
		"override", req.Override)

	resp := shift.ToResponse(created)
	resp.Warnings = validation.Warnings
	return resp, nil
}

// End implements shift.ShiftService. The drawer is reconciled and the
// auto-clock-out cascade fires if this was the last live shift on the time
// shift. Cascade failures are logged, not returned; the drawer close already
// committed and must stand.
func (s *shiftServiceImpl) End(ctx context.Context, userID string, req shift.EndShiftRequest) (shift.ShiftResponse, error) {
	active, err := s.posShiftRepo.GetActiveByUser(ctx, userID)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("check active shift: %w", err)
	}
	if active == nil {
		return shift.ShiftResponse{}, shift.ErrNoActiveShift
	}

	now := time.Now()
	if err := s.closeShift(ctx, active, now, shift.EndReasonUser, &req.FinalCash); err != nil {
		return shift.ShiftResponse{}, err
	}

	if err := s.cascadeClockOut(ctx, active, now); err != nil {
		slog.Error("auto clock-out cascade failed", "shift_id", active.ID, "error", err)
	}

	slog.Info("pos shift ended", "shift_id", active.ID, "user_id", userID)
	return shift.ToResponse(*active), nil
}

// GetActive implements shift.ShiftService.
func (s *shiftServiceImpl) GetActive(ctx context.Context, userID string) (*shift.ShiftResponse, error) {
	if err := s.Sweep(ctx); err != nil {
		slog.Warn("sweep before active lookup failed", "error", err)
	}

	active, err := s.posShiftRepo.GetActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, nil
	}
	resp := shift.ToResponse(*active)
	return &resp, nil
}

// GetTodaySchedule implements shift.ShiftService.
func (s *shiftServiceImpl) GetTodaySchedule(ctx context.Context, userID string, businessID string) (*schedule.ScheduleResponse, error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	from := dayStart.Add(-24 * time.Hour)
	to := dayStart.Add(24 * time.Hour)

	schedules, err := s.scheduleRepo.ListByStaffBetween(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	relevant := schedule.SelectRelevant(schedules, now)
	if relevant == nil {
		return nil, nil
	}
	resp := schedule.ToResponse(*relevant)
	return &resp, nil
}

// GetStats implements shift.ShiftService.
func (s *shiftServiceImpl) GetStats(ctx context.Context, businessID string, shiftID string) (shift.ShiftStats, error) {
	if _, err := s.posShiftRepo.GetByID(ctx, shiftID, businessID); err != nil {
		return shift.ShiftStats{}, err
	}

	totals, err := s.transactionRepo.TotalsByShift(ctx, shiftID)
	if err != nil {
		return shift.ShiftStats{}, err
	}

	return shift.ShiftStats{
		ShiftID:           shiftID,
		TotalSales:        totals.Sales,
		TotalRefunds:      totals.Refunds,
		TotalTransactions: totals.Transactions,
		TotalVoids:        totals.Voids,
		NetSales:          totals.Sales.Sub(totals.Refunds),
	}, nil
}

// GetHourlyStats implements shift.ShiftService.
func (s *shiftServiceImpl) GetHourlyStats(ctx context.Context, businessID string, shiftID string) ([]shift.HourlyStat, error) {
	if _, err := s.posShiftRepo.GetByID(ctx, shiftID, businessID); err != nil {
		return nil, err
	}
	return s.transactionRepo.HourlyByShift(ctx, shiftID)
}

// GetCashDrawerBalance implements shift.ShiftService. Only cash movements
// touch the drawer; card activity never changes the balance.
func (s *shiftServiceImpl) GetCashDrawerBalance(ctx context.Context, userID string) (shift.CashDrawerBalance, error) {
	active, err := s.posShiftRepo.GetActiveByUser(ctx, userID)
	if err != nil {
		return shift.CashDrawerBalance{}, err
	}
	if active == nil {
		return shift.CashDrawerBalance{}, shift.ErrNoActiveShift
	}

	totals, err := s.transactionRepo.TotalsByShift(ctx, active.ID)
	if err != nil {
		return shift.CashDrawerBalance{}, err
	}

	return shift.CashDrawerBalance{
		ShiftID:      active.ID,
		StartingCash: active.StartingCash,
		CashSales:    totals.CashSales,
		CashRefunds:  totals.CashRefunds,
		Balance:      active.StartingCash.Add(totals.CashSales).Sub(totals.CashRefunds),
	}, nil
}

// RecordTransaction implements shift.ShiftService.
func (s *shiftServiceImpl) RecordTransaction(ctx context.Context, userID string, req shift.RecordTransactionRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	active, err := s.posShiftRepo.GetActiveByUser(ctx, userID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if active == nil {
		return shift.ShiftResponse{}, shift.ErrNoActiveShift
	}

	now := time.Now()
	err = sqlite.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		_, err := s.transactionRepo.Create(txCtx, shift.Transaction{
			ID:            uuid.NewString(),
			ShiftID:       active.ID,
			BusinessID:    active.BusinessID,
			Type:          shift.TransactionType(req.Type),
			Amount:        req.Amount,
			PaymentMethod: shift.PaymentMethod(req.PaymentMethod),
			CreatedAt:     now,
		})
		if err != nil {
			return fmt.Errorf("record transaction: %w", err)
		}

		switch shift.TransactionType(req.Type) {
		case shift.TransactionSale:
			active.TotalSales = active.TotalSales.Add(req.Amount)
			active.TotalTransactions++
		case shift.TransactionRefund:
			active.TotalRefunds = active.TotalRefunds.Add(req.Amount)
			active.TotalTransactions++
		case shift.TransactionVoid:
			active.TotalVoids++
		}
		active.UpdatedAt = now

		return s.posShiftRepo.Update(txCtx, *active)
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return shift.ToResponse(*active), nil
}

// Sweep implements shift.ShiftService. Overdue shifts (the linked schedule
// ended) and stale shifts (running past the stale cutoff with no schedule to
// judge by) are closed with synthesized drawer counts, each inside its own
// transaction together with its clock-out cascade.
func (s *shiftServiceImpl) Sweep(ctx context.Context) error {
	actives, err := s.posShiftRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("list active shifts: %w", err)
	}

	now := time.Now()
	for i := range actives {
		current := &actives[i]

		reason := s.sweepReason(ctx, current, now)
		if reason == "" {
			continue
		}

		err := sqlite.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
			if err := s.closeShift(txCtx, current, now, reason, nil); err != nil {
				return err
			}
			return s.cascadeClockOut(txCtx, current, now)
		})
		if err != nil {
			slog.Error("sweep failed for shift", "shift_id", current.ID, "reason", reason, "error", err)
			continue
		}
		slog.Info("shift auto-closed", "shift_id", current.ID, "reason", reason)
	}
	return nil
}

// requiresPOSShift resolves the shift requirement behind the user's primary
// role. An unreadable role record falls back to the built-in role defaults.
func (s *shiftServiceImpl) requiresPOSShift(ctx context.Context, userID string, businessID string) bool {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return shift.RequireShiftWhenRoleUnknown
	}

	var rec *role.Role
	if found, err := s.roleRepo.GetByName(ctx, businessID, string(u.Role)); err == nil {
		rec = &found
	}
	return shift.RequiresPOSShift(u.Role, rec)
}

// sweepReason decides whether a shift is past its life. Empty means leave it.
func (s *shiftServiceImpl) sweepReason(ctx context.Context, current *shift.POSShift, now time.Time) string {
	if current.ScheduleID != nil {
		sched, err := s.scheduleRepo.GetByID(ctx, *current.ScheduleID, current.BusinessID)
		if err == nil {
			if now.After(schedule.NormalizeEnd(sched.StartTime, sched.EndTime)) {
				return shift.EndReasonOverdue
			}
			return ""
		}
		slog.Warn("sweep could not load schedule", "shift_id", current.ID, "error", err)
	}
	if now.Sub(current.StartedAt) >= s.staleAfter {
		return shift.EndReasonStale
	}
	return ""
}

// closeShift finalizes the drawer: totals recomputed from the transaction
// log, expected cash derived, final cash either counted (explicit end) or
// assumed equal to expected (auto-close).
func (s *shiftServiceImpl) closeShift(ctx context.Context, current *shift.POSShift, at time.Time, reason string, finalCash *decimal.Decimal) error {
	totals, err := s.transactionRepo.TotalsByShift(ctx, current.ID)
	if err != nil {
		return fmt.Errorf("compute shift totals: %w", err)
	}

	expected := current.StartingCash.Add(totals.CashSales).Sub(totals.CashRefunds)
	current.TotalSales = totals.Sales
	current.TotalRefunds = totals.Refunds
	current.TotalTransactions = totals.Transactions
	current.TotalVoids = totals.Voids
	current.ExpectedCash = &expected
	if finalCash != nil {
		current.FinalCash = finalCash
	} else {
		current.FinalCash = &expected
	}
	current.Status = shift.StatusEnded
	current.EndReason = &reason
	current.EndedAt = &at
	current.UpdatedAt = at

	return s.posShiftRepo.Update(ctx, *current)
}

// cascadeClockOut closes the linked time shift once no active POS shift
// references it. Exactly one system clock-out results no matter how many POS
// shifts the time shift carried.
func (s *shiftServiceImpl) cascadeClockOut(ctx context.Context, current *shift.POSShift, at time.Time) error {
	if current.TimeShiftID == nil {
		return nil
	}

	remaining, err := s.posShiftRepo.CountActiveByTimeShift(ctx, *current.TimeShiftID)
	if err != nil {
		return fmt.Errorf("count remaining shifts: %w", err)
	}
	if remaining > 0 {
		return nil
	}

	timeShift, err := s.timeShiftRepo.GetByID(ctx, *current.TimeShiftID)
	if err != nil {
		return fmt.Errorf("load time shift: %w", err)
	}
	if timeShift.Status != timeclock.StatusActive {
		return nil
	}

	if err := timeclockservice.Close(ctx, s.timeShiftRepo, &timeShift, at, timeclock.SourceSystem); err != nil {
		return fmt.Errorf("close time shift: %w", err)
	}

	if timeShift.ScheduleID != nil {
		if err := s.scheduleRepo.UpdateStatus(ctx, *timeShift.ScheduleID, schedule.StatusCompleted); err != nil {
			slog.Warn("mark schedule completed failed", "schedule_id", *timeShift.ScheduleID, "error", err)
		}
	}
	return nil
}
