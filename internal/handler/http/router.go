package http

import (
	"log/slog"
	"os"

	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/config"
	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/handler/http/middleware"
	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth       AuthHandler
	Department DepartmentHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Dashboard  DashboardHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-management"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
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

	verifier := jwtauth.Verifier(jwtService.JWTAuth())
	authRequired := middleware.AuthRequired(jwtService.JWTAuth())

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/signup", h.Auth.Signup)
			r.Post("/resend-verification", h.Auth.ResendVerification)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)

			r.Group(func(r chi.Router) {
				r.Use(verifier, authRequired)
				r.Post("/verify-email", h.Auth.VerifyEmail)
				r.Get("/me", h.Auth.Me)
			})
		})

		r.Route("/departments", func(r chi.Router) {
			r.Get("/", h.Department.ListDepartments)
			r.Get("/{id}", h.Department.GetDepartment)

			r.Group(func(r chi.Router) {
				r.Use(verifier, authRequired, middleware.AdminOnly)
				r.Post("/", h.Department.CreateDepartment)
				r.Put("/{id}", h.Department.UpdateDepartment)
				r.Delete("/{id}", h.Department.DeleteDepartment)
			})
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.Employee.ListEmployees)
			r.Get("/{id}", h.Employee.GetEmployee)

			r.Group(func(r chi.Router) {
				r.Use(verifier, authRequired, middleware.AdminOnly)
				r.Post("/", h.Employee.CreateEmployee)
				r.Put("/{id}", h.Employee.UpdateEmployee)
				r.Delete("/{id}", h.Employee.DeleteEmployee)
			})
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(verifier, authRequired)
				r.Get("/", h.Attendance.ListAttendance)
				r.Get("/today", h.Attendance.TodayOverview)
				r.Get("/{id}", h.Attendance.GetAttendance)
				r.Post("/clock-in/{employeeID}", h.Attendance.ClockIn)
				r.Post("/clock-out/{employeeID}", h.Attendance.ClockOut)
			})

			r.Group(func(r chi.Router) {
				r.Use(verifier, authRequired, middleware.AdminOnly)
				r.Post("/", h.Attendance.CreateAttendance)
				r.Put("/{id}", h.Attendance.UpdateAttendance)
				r.Delete("/{id}", h.Attendance.DeleteAttendance)
			})
		})

		r.Route("/leave", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(verifier, authRequired)
				r.Get("/", h.Leave.ListLeave)
				r.Get("/{id}", h.Leave.GetLeave)
				r.Post("/", h.Leave.CreateLeave)
			})

			r.Group(func(r chi.Router) {
				r.Use(verifier, authRequired, middleware.AdminOnly)
				r.Put("/{id}", h.Leave.UpdateLeave)
				r.Delete("/{id}", h.Leave.DeleteLeave)
				r.Post("/{id}/approve", h.Leave.ApproveLeave)
				r.Post("/{id}/reject", h.Leave.RejectLeave)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(verifier, authRequired)
			r.Get("/dashboard", h.Dashboard.GetDashboard)
		})
	})

	return r
}
