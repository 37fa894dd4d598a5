package attendance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lakbayhr/ems-backend-go/internal/domain/attendance"
	"github.com/lakbayhr/ems-backend-go/internal/domain/employee"
	"github.com/lakbayhr/ems-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepository attendance.AttendanceRepository
	employeeRepository   employee.EmployeeRepository
}

func NewAttendanceService(attendanceRepository attendance.AttendanceRepository, employeeRepository employee.EmployeeRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepository: attendanceRepository,
		employeeRepository:   employeeRepository,
	}
}

// Create implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.employeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	att := attendance.Attendance{
		EmployeeID:    req.EmployeeID,
		Date:          date,
		Status:        attendance.AttendanceStatus(req.Status),
		OvertimeHours: decimal.Zero,
		Notes:         req.Notes,
	}
	if req.OvertimeHours != nil {
		att.OvertimeHours = *req.OvertimeHours
	}
	if req.TimeIn != nil {
		t, _ := validator.IsValidDateTime(*req.TimeIn)
		att.TimeIn = &t
	}
	if req.TimeOut != nil {
		t, _ := validator.IsValidDateTime(*req.TimeOut)
		att.TimeOut = &t
	}

	created, err := s.attendanceRepository.Create(ctx, att)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toAttendanceResponse(created), nil
}

// GetByID implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetByID(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	att, err := s.attendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return toAttendanceResponse(att), nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	records, total, err := s.attendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	resp := attendance.ListAttendanceResponse{
		Data:       make([]attendance.AttendanceResponse, 0, len(records)),
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	for _, att := range records {
		resp.Data = append(resp.Data, toAttendanceResponse(att))
	}

	return resp, nil
}

// Update implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := s.attendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if req.TimeIn != nil {
		t, _ := validator.IsValidDateTime(*req.TimeIn)
		att.TimeIn = &t
	}
	if req.TimeOut != nil {
		t, _ := validator.IsValidDateTime(*req.TimeOut)
		att.TimeOut = &t
	}
	if req.Status != nil {
		att.Status = attendance.AttendanceStatus(*req.Status)
	}
	if req.OvertimeHours != nil {
		att.OvertimeHours = *req.OvertimeHours
	}
	if req.Notes != nil {
		att.Notes = req.Notes
	}

	updated, err := s.attendanceRepository.Update(ctx, att)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toAttendanceResponse(updated), nil
}

// Delete implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.attendanceRepository.Delete(ctx, id)
}

func toAttendanceResponse(att attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:            att.ID,
		EmployeeID:    att.EmployeeID,
		Date:          att.Date.Format("2006-01-02"),
		TimeIn:        formatTimePtr(att.TimeIn),
		TimeOut:       formatTimePtr(att.TimeOut),
		Status:        string(att.Status),
		OvertimeHours: att.OvertimeHours,
		Notes:         att.Notes,
	}
	if att.EmployeeName != nil {
		resp.EmployeeName = *att.EmployeeName
	}
	if att.EmployeeCode != nil {
		resp.EmployeeCode = *att.EmployeeCode
	}
	return resp
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
