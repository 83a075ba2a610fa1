package http

import (
	"log/slog"
	"os"

	"github.com/attendly/attendly-backend-go/internal/config"
	"github.com/attendly/attendly-backend-go/internal/handler/http/middleware"
	"github.com/attendly/attendly-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Attendance   AttendanceHandler
	Leave        LeaveHandler
	Policy       PolicyHandler
	Stats        StatsHandler
	Employee     EmployeeHandler
	Verification VerificationHandler
	Notification NotificationHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       parseLogLevel(cfg.App.LogLevel),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendly"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/punch-in", h.Attendance.PunchIn)
				r.Post("/punch-out", h.Attendance.PunchOut)
				r.Get("/today", h.Attendance.GetToday)
				r.Get("/history", h.Attendance.GetHistory)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/records", h.Attendance.ListRecords)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Submit)
				r.Get("/my", h.Leave.ListMine)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Leave.ListAll)
					r.Post("/{id}/approve", h.Leave.Approve)
					r.Post("/{id}/reject", h.Leave.Reject)
				})
			})

			r.Route("/policy", func(r chi.Router) {
				r.Get("/", h.Policy.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/", h.Policy.Update)
				})
			})

			r.Get("/stats", h.Stats.GetStats)

			r.Post("/verification/attempts", h.Verification.RecordAttempt)

			r.Get("/departments", h.Employee.ListDepartments)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", h.Employee.List)
					r.Patch("/{id}/status", h.Employee.UpdateStatus)
				})

				r.Route("/notifications", func(r chi.Router) {
					r.Get("/", h.Notification.List)
					r.Patch("/{id}/read", h.Notification.MarkRead)
				})
			})
		})

		// EventSource cannot set headers, so the stream also accepts the
		// token as a ?jwt= query parameter.
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verify(jwtService.JWTAuth(), jwtauth.TokenFromQuery, jwtauth.TokenFromHeader))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
			r.Use(middleware.AdminOnly)

			r.Get("/notifications/stream", h.Notification.Stream)
		})
	})

	return r
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
