package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lakbayhr/ems-backend-go/internal/config"
	"github.com/lakbayhr/ems-backend-go/internal/handler/http/middleware"
	"github.com/lakbayhr/ems-backend-go/internal/pkg/jwt"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth         AuthHandler
	Employee     EmployeeHandler
	Master       MasterHandler
	Attendance   AttendanceHandler
	Leave        LeaveHandler
	Payroll      PayrollHandler
	Announcement AnnouncementHandler
	Recruitment  RecruitmentHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ems-lakbayhr"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Uploaded files (payslips, resumes) are served straight off disk.
	if cfg.Storage.Type == "local" {
		r.Handle("/files/*", http.StripPrefix("/files/", http.FileServer(http.Dir(cfg.Storage.BasePath))))
	}

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", h.Auth.LoginWithGoogle)
				r.Get("/callback/google", h.Auth.OAuthCallbackGoogle)
			})
		})

		// Public recruitment surface: browse postings and apply.
		r.Get("/careers", h.Recruitment.ListJobPostings)
		r.Get("/careers/{id}", h.Recruitment.GetJobPosting)
		r.Post("/careers/{id}/apply", h.Recruitment.CreateApplicant)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/me", h.Auth.Me)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
				})
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", h.Master.ListDepartments)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/", h.Master.CreateDepartment)
					r.Put("/{id}", h.Master.UpdateDepartment)
					r.Delete("/{id}", h.Master.DeleteDepartment)
				})
			})

			r.Route("/positions", func(r chi.Router) {
				r.Get("/", h.Master.ListPositions)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/", h.Master.CreatePosition)
					r.Put("/{id}", h.Master.UpdatePosition)
					r.Delete("/{id}", h.Master.DeletePosition)
				})
			})

			r.Route("/attendances", func(r chi.Router) {
				r.Get("/", h.Attendance.List)
				r.Get("/{id}", h.Attendance.Get)
				r.Post("/", h.Attendance.Create)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Put("/{id}", h.Attendance.Update)
					r.Delete("/{id}", h.Attendance.Delete)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Get("/", h.Leave.List)
				r.Get("/{id}", h.Leave.Get)
				r.Post("/", h.Leave.Create)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/{id}/review", h.Leave.Review)
				})
			})

			r.Route("/payrolls", func(r chi.Router) {
				r.Use(middleware.RequireHR)

				r.Get("/", h.Payroll.List)
				r.Get("/check-duplicate", h.Payroll.CheckDuplicate)
				r.Get("/summary", h.Payroll.PeriodSummary)
				r.Get("/{id}", h.Payroll.Get)
				r.Get("/{id}/payslip", h.Payroll.DownloadPayslip)
				r.Post("/", h.Payroll.Process)
				r.Patch("/{id}/status", h.Payroll.UpdateStatus)

				r.Route("/deduction-types", func(r chi.Router) {
					r.Get("/", h.Payroll.ListDeductionTypes)
					r.Post("/", h.Payroll.CreateDeductionType)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/{id}/lock", h.Payroll.Lock)
					r.Post("/{id}/unlock", h.Payroll.Unlock)
					r.Delete("/{id}", h.Payroll.Delete)
				})
			})

			r.Route("/announcements", func(r chi.Router) {
				r.Get("/", h.Announcement.List)
				r.Get("/{id}", h.Announcement.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/", h.Announcement.Create)
					r.Put("/{id}", h.Announcement.Update)
					r.Delete("/{id}", h.Announcement.Delete)
				})
			})

			r.Route("/job-postings", func(r chi.Router) {
				r.Use(middleware.RequireHR)

				r.Get("/", h.Recruitment.ListJobPostings)
				r.Get("/{id}", h.Recruitment.GetJobPosting)
				r.Post("/", h.Recruitment.CreateJobPosting)
				r.Put("/{id}", h.Recruitment.UpdateJobPosting)
				r.Delete("/{id}", h.Recruitment.DeleteJobPosting)
			})

			r.Route("/applicants", func(r chi.Router) {
				r.Use(middleware.RequireHR)

				r.Get("/", h.Recruitment.ListApplicants)
				r.Get("/{id}", h.Recruitment.GetApplicant)
				r.Patch("/{id}/status", h.Recruitment.UpdateApplicantStatus)
				r.Post("/{id}/resume", h.Recruitment.UploadResume)
			})
		})
	})
	return r
}
