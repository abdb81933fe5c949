package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/auraswift/pos-backend-go/internal/config"
	appHTTP "github.com/auraswift/pos-backend-go/internal/handler/http"
	"github.com/auraswift/pos-backend-go/internal/pkg/cron"
	"github.com/auraswift/pos-backend-go/internal/pkg/database"
	"github.com/auraswift/pos-backend-go/internal/pkg/jwt"
	"github.com/auraswift/pos-backend-go/internal/pkg/secure"
	"github.com/auraswift/pos-backend-go/internal/repository/sqlite"
	authService "github.com/auraswift/pos-backend-go/internal/service/auth"
	expiryService "github.com/auraswift/pos-backend-go/internal/service/expiry"
	maintenanceService "github.com/auraswift/pos-backend-go/internal/service/maintenance"
	rbacService "github.com/auraswift/pos-backend-go/internal/service/rbac"
	scheduleService "github.com/auraswift/pos-backend-go/internal/service/schedule"
	settingsService "github.com/auraswift/pos-backend-go/internal/service/settings"
	shiftService "github.com/auraswift/pos-backend-go/internal/service/shift"
	timeclockService "github.com/auraswift/pos-backend-go/internal/service/timeclock"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	db, err := database.NewSQLiteDB(cfg.Database.Path)
	if err != nil {
		fmt.Println("Error opening database:", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := sqlite.NewUserRepository(db)
	businessRepo := sqlite.NewBusinessRepository(db)
	sessionRepo := sqlite.NewSessionRepository(db)
	roleRepo := sqlite.NewRoleRepository(db)
	userRoleRepo := sqlite.NewUserRoleRepository(db)
	userPermissionRepo := sqlite.NewUserPermissionRepository(db)
	scheduleRepo := sqlite.NewScheduleRepository(db)
	timeShiftRepo := sqlite.NewTimeShiftRepository(db)
	posShiftRepo := sqlite.NewPOSShiftRepository(db)
	transactionRepo := sqlite.NewTransactionRepository(db)
	batchRepo := sqlite.NewBatchRepository(db)
	notificationRepo := sqlite.NewNotificationRepository(db)
	expirySettingsRepo := sqlite.NewExpirySettingsRepository(db)
	settingsRepo := sqlite.NewSettingsRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	lockoutWindow, err := time.ParseDuration(cfg.Auth.LockoutWindow)
	if err != nil {
		fmt.Println("Invalid LOGIN_LOCKOUT_WINDOW:", err)
		os.Exit(1)
	}
	loginLimiter := limiter.New(memory.NewStore(), limiter.Rate{
		Period: lockoutWindow,
		Limit:  cfg.Auth.LockoutLimit,
	})

	var settingsCodec *secure.Codec
	if cfg.Settings.EncryptionKey != "" {
		settingsCodec, err = secure.NewCodec(cfg.Settings.EncryptionKey)
		if err != nil {
			fmt.Println("Invalid SETTINGS_ENCRYPTION_KEY:", err)
			os.Exit(1)
		}
	}

	rbacSvc := rbacService.NewRBACService(roleRepo, userRoleRepo, userPermissionRepo, userRepo)
	authSvc := authService.NewAuthService(
		db,
		userRepo,
		businessRepo,
		sessionRepo,
		roleRepo,
		userRoleRepo,
		jwtSvc,
		loginLimiter,
		rbacSvc,
		cfg.Shift.DefaultMaxStartingCash,
	)
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo, userRepo, cfg.Shift.ClockInToleranceMinutes)
	timeclockSvc := timeclockService.NewTimeclockService(timeShiftRepo, scheduleSvc)
	shiftSvc := shiftService.NewShiftService(
		db,
		posShiftRepo,
		transactionRepo,
		timeShiftRepo,
		scheduleRepo,
		scheduleSvc,
		businessRepo,
		userRepo,
		roleRepo,
		cfg.Shift.StaleShiftHours,
	)
	expirySvc := expiryService.NewExpiryService(batchRepo, notificationRepo, expirySettingsRepo)
	settingsSvc := settingsService.NewSettingsService(settingsRepo, settingsCodec)
	maintenanceSvc := maintenanceService.NewMaintenanceService(db)

	router := appHTTP.NewRouter(appHTTP.RouterDeps{
		Config:      cfg,
		JWTService:  jwtSvc,
		RBACService: rbacSvc,

		RoleRepo:     roleRepo,
		POSShiftRepo: posShiftRepo,

		App:         appHTTP.NewAppHandler(cfg.App.Version, cfg.App.Env),
		Auth:        appHTTP.NewAuthHandler(authSvc),
		User:        appHTTP.NewUserHandler(authSvc),
		Role:        appHTTP.NewRoleHandler(rbacSvc),
		Schedule:    appHTTP.NewScheduleHandler(scheduleSvc),
		Timeclock:   appHTTP.NewTimeclockHandler(timeclockSvc),
		Shift:       appHTTP.NewShiftHandler(shiftSvc),
		Expiry:      appHTTP.NewExpiryHandler(expirySvc),
		Maintenance: appHTTP.NewMaintenanceHandler(maintenanceSvc),
		Settings:    appHTTP.NewSettingsHandler(settingsSvc),
	})

	scheduler := cron.NewScheduler()
	scheduler.Register("purge_expired_sessions", time.Hour, func(ctx context.Context) error {
		purged, err := sessionRepo.DeleteExpired(ctx, time.Now())
		if err != nil {
			return err
		}
		if purged > 0 {
			slog.Info("expired sessions purged", "count", purged)
		}
		return nil
	})
	scheduler.Register("shift_sweep", 15*time.Minute, shiftSvc.Sweep)
	scheduler.Register("expiry_scan", time.Hour, expirySvc.ScanAll)
	scheduler.Start()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}
	scheduler.Stop()
}
