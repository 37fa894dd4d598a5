package attendance

import (
	"github.com/lakbayhr/ems-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateAttendanceRequest struct {
	EmployeeID    string           `json:"employee_id"`
	Date          string           `json:"date"`
	TimeIn        *string          `json:"time_in,omitempty"`
	TimeOut       *string          `json:"time_out,omitempty"`
	Status        string           `json:"status"`
	OvertimeHours *decimal.Decimal `json:"overtime_hours,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
}

var statuses = []string{
	string(StatusPresent), string(StatusAbsent), string(StatusLate), string(StatusOnLeave),
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID == "" {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
	}
	if !validator.IsInSlice(r.Status, statuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of present, absent, late, on_leave"})
	}
	if r.TimeIn != nil {
		if _, ok := validator.IsValidDateTime(*r.TimeIn); !ok {
			errs = append(errs, validator.ValidationError{Field: "time_in", Message: "must be an ISO8601 timestamp"})
		}
	}
	if r.TimeOut != nil {
		if _, ok := validator.IsValidDateTime(*r.TimeOut); !ok {
			errs = append(errs, validator.ValidationError{Field: "time_out", Message: "must be an ISO8601 timestamp"})
		}
	}
	if r.OvertimeHours != nil && r.OvertimeHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAttendanceRequest struct {
	ID            string           `json:"-"`
	TimeIn        *string          `json:"time_in,omitempty"`
	TimeOut       *string          `json:"time_out,omitempty"`
	Status        *string          `json:"status,omitempty"`
	OvertimeHours *decimal.Decimal `json:"overtime_hours,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !validator.IsInSlice(*r.Status, statuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of present, absent, late, on_leave"})
	}
	if r.OvertimeHours != nil && r.OvertimeHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  string          `json:"employee_name,omitempty"`
	EmployeeCode  string          `json:"employee_code,omitempty"`
	Date          string          `json:"date"`
	TimeIn        *string         `json:"time_in,omitempty"`
	TimeOut       *string         `json:"time_out,omitempty"`
	Status        string          `json:"status"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	Notes         *string         `json:"notes,omitempty"`
}

type ListAttendanceResponse struct {
	Data       []AttendanceResponse `json:"data"`
	TotalCount int64                `json:"total_count"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
}
