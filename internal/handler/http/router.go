package http

import (
	"log/slog"
	"os"

	"github.com/auraswift/pos-backend-go/internal/config"
	"github.com/auraswift/pos-backend-go/internal/domain/role"
	"github.com/auraswift/pos-backend-go/internal/domain/shift"
	"github.com/auraswift/pos-backend-go/internal/handler/http/middleware"
	"github.com/auraswift/pos-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterDeps struct {
	Config      *config.Config
	JWTService  jwt.Service
	RBACService role.RBACService

	RoleRepo     role.RoleRepository
	POSShiftRepo shift.POSShiftRepository

	App         AppHandler
	Auth        AuthHandler
	User        UserHandler
	Role        RoleHandler
	Schedule    ScheduleHandler
	Timeclock   TimeclockHandler
	Shift       ShiftHandler
	Expiry      ExpiryHandler
	Maintenance MaintenanceHandler
	Settings    SettingsHandler
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "auraswift-pos"),
		slog.String("version", deps.Config.App.Version),
		slog.String("env", deps.Config.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{deps.Config.App.CORSOrigin},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/health", deps.App.Health)
	r.Get("/version", deps.App.Version)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", deps.Auth.Register)
			r.Post("/login", deps.Auth.Login)
			r.Post("/refresh", deps.Auth.RefreshToken)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(deps.JWTService.JWTAuth()))

			r.Post("/auth/logout", deps.Auth.Logout)
			r.Get("/auth/me", deps.Auth.Me)

			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", deps.User.List)
				r.Post("/", deps.User.Create)
				r.Put("/{id}", deps.User.Update)
				r.Delete("/{id}", deps.User.Delete)
			})

			r.Route("/roles", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", deps.Role.List)
				r.Post("/", deps.Role.Create)
				r.Get("/{id}", deps.Role.Get)
				r.Put("/{id}", deps.Role.Update)
				r.Delete("/{id}", deps.Role.Delete)
				r.Post("/assign", deps.Role.Assign)
				r.Delete("/assign/{userID}/{roleID}", deps.Role.Revoke)
				r.Post("/permissions", deps.Role.GrantPermission)
				r.Delete("/permissions/{userID}/{permission}", deps.Role.RevokePermission)
			})
			r.Get("/users/{userID}/roles", deps.Role.UserRoles)
			r.Get("/users/{userID}/permissions", deps.Role.UserPermissions)

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/mine", deps.Schedule.ListMine)
				r.Get("/validate-clock-in", deps.Schedule.ValidateClockIn)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/", deps.Schedule.List)
					r.Post("/", deps.Schedule.Create)
					r.Put("/{id}", deps.Schedule.Update)
					r.Delete("/{id}", deps.Schedule.Delete)
				})
			})

			r.Route("/timeclock", func(r chi.Router) {
				r.Post("/clock-in", deps.Timeclock.ClockIn)
				r.Post("/clock-out", deps.Timeclock.ClockOut)
				r.Post("/break/start", deps.Timeclock.StartBreak)
				r.Post("/break/end", deps.Timeclock.EndBreak)
				r.Get("/active", deps.Timeclock.Active)
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Post("/start", deps.Shift.Start)
				r.Post("/end", deps.Shift.End)
				r.Get("/active", deps.Shift.Active)
				r.Get("/today-schedule", deps.Shift.TodaySchedule)
				r.Get("/{id}/stats", deps.Shift.Stats)
				r.Get("/{id}/hourly", deps.Shift.HourlyStats)
				r.Get("/drawer", deps.Shift.DrawerBalance)

				// Drawer operations need the sale permission and, for till
				// staff, a live shift.
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(deps.RBACService, role.PermPOSSale))
					r.Use(middleware.RequireActiveShift(deps.RoleRepo, deps.POSShiftRepo))
					r.Post("/transactions", deps.Shift.RecordTransaction)
				})
			})

			r.Route("/expiry", func(r chi.Router) {
				r.Post("/batches", deps.Expiry.CreateBatch)
				r.Post("/scan", deps.Expiry.Scan)
				r.Get("/notifications", deps.Expiry.ListNotifications)
				r.Put("/notifications/{id}", deps.Expiry.SetNotificationStatus)
				r.Get("/settings", deps.Expiry.GetSettings)
				r.Put("/settings", deps.Expiry.UpdateSettings)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/{key}", deps.Settings.Get)
				r.Put("/{key}", deps.Settings.Set)
				r.Delete("/{key}", deps.Settings.Delete)
			})

			r.Route("/database", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/info", deps.Maintenance.Info)
				r.Post("/backup", deps.Maintenance.Backup)
				r.Post("/empty", deps.Maintenance.Empty)
				r.Post("/import", deps.Maintenance.Import)
			})
		})
	})

	return r
}
