package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lakbayhr/ems-backend-go/internal/config"
	appHTTP "github.com/lakbayhr/ems-backend-go/internal/handler/http"
	"github.com/lakbayhr/ems-backend-go/internal/pkg/database"
	"github.com/lakbayhr/ems-backend-go/internal/pkg/email"
	"github.com/lakbayhr/ems-backend-go/internal/pkg/jwt"
	"github.com/lakbayhr/ems-backend-go/internal/pkg/oauth"
	"github.com/lakbayhr/ems-backend-go/internal/pkg/payslip"
	"github.com/lakbayhr/ems-backend-go/internal/pkg/storage"
	"github.com/lakbayhr/ems-backend-go/internal/repository/postgresql"
	announcementService "github.com/lakbayhr/ems-backend-go/internal/service/announcement"
	attendanceService "github.com/lakbayhr/ems-backend-go/internal/service/attendance"
	serviceAuth "github.com/lakbayhr/ems-backend-go/internal/service/auth"
	employeeService "github.com/lakbayhr/ems-backend-go/internal/service/employee"
	leaveService "github.com/lakbayhr/ems-backend-go/internal/service/leave"
	masterService "github.com/lakbayhr/ems-backend-go/internal/service/master"
	payrollService "github.com/lakbayhr/ems-backend-go/internal/service/payroll"
	recruitmentService "github.com/lakbayhr/ems-backend-go/internal/service/recruitment"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	positionRepo := postgresql.NewPositionRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	announcementRepo := postgresql.NewAnnouncementRepository(db)
	jobPostingRepo := postgresql.NewJobPostingRepository(db)
	applicantRepo := postgresql.NewApplicantRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}

	emailSvc, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	payslipRenderer := payslip.NewRenderer(cfg.App.CompanyName)

	authSvc := serviceAuth.NewAuthService(userRepo, jwtService, googleService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	masterSvc := masterService.NewMasterService(departmentRepo, positionRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo, emailSvc)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, employeeRepo, attendanceRepo, payslipRenderer, emailSvc, cfg.App.FrontendURL)
	announcementSvc := announcementService.NewAnnouncementService(announcementRepo)
	recruitmentSvc := recruitmentService.NewRecruitmentService(jobPostingRepo, applicantRepo, fileStorage, emailSvc)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc, jwtService, googleService, cfg.App.FrontendURL),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Master:       appHTTP.NewMasterHandler(masterSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Payroll:      appHTTP.NewPayrollHandler(payrollSvc),
		Announcement: appHTTP.NewAnnouncementHandler(announcementSvc),
		Recruitment:  appHTTP.NewRecruitmentHandler(recruitmentSvc),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Forced shutdown:", err)
	}
	fmt.Println("Server stopped")
}
