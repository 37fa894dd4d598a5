package response

import (
	"errors"
	"net/http"

	"github.com/lakbayhr/ems-backend-go/internal/domain/announcement"
	"github.com/lakbayhr/ems-backend-go/internal/domain/attendance"
	"github.com/lakbayhr/ems-backend-go/internal/domain/auth"
	"github.com/lakbayhr/ems-backend-go/internal/domain/employee"
	"github.com/lakbayhr/ems-backend-go/internal/domain/leave"
	"github.com/lakbayhr/ems-backend-go/internal/domain/master"
	"github.com/lakbayhr/ems-backend-go/internal/domain/payroll"
	"github.com/lakbayhr/ems-backend-go/internal/domain/recruitment"
	"github.com/lakbayhr/ems-backend-go/internal/domain/user"
	"github.com/lakbayhr/ems-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User account is deactivated")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Master data errors
	case errors.Is(err, master.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, master.ErrDepartmentNameExists):
		Conflict(w, "Department name already exists")
	case errors.Is(err, master.ErrPositionNotFound):
		NotFound(w, "Position not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAttendanceExists):
		Conflict(w, "Attendance already recorded for this employee and date")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrLeaveOverlaps):
		Conflict(w, "Leave request overlaps an existing request")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollAlreadyExists):
		Conflict(w, "Payroll already processed for this employee and period")
	case errors.Is(err, payroll.ErrInvalidPayrollPeriod):
		BadRequest(w, "Payroll period must be in YYYY-MM format", nil)
	case errors.Is(err, payroll.ErrEmployeeHasNoSalary):
		BadRequest(w, "Employee has no base salary set", nil)
	case errors.Is(err, payroll.ErrPayrollLocked):
		Locked(w, "Payroll record is locked")
	case errors.Is(err, payroll.ErrInvalidStatusChange):
		Conflict(w, "Invalid payroll status change")
	case errors.Is(err, payroll.ErrDeductionTypeNotFound):
		NotFound(w, "Deduction type not found")

	// Announcement domain errors
	case errors.Is(err, announcement.ErrAnnouncementNotFound):
		NotFound(w, "Announcement not found")

	// Recruitment domain errors
	case errors.Is(err, recruitment.ErrJobPostingNotFound):
		NotFound(w, "Job posting not found")
	case errors.Is(err, recruitment.ErrJobPostingClosed):
		Conflict(w, "Job posting is closed")
	case errors.Is(err, recruitment.ErrApplicantNotFound):
		NotFound(w, "Applicant not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
