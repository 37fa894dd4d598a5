package leave

import (
	"context"
	"log/slog"
	"time"

	"github.com/lakbayhr/ems-backend-go/internal/domain/employee"
	"github.com/lakbayhr/ems-backend-go/internal/domain/leave"
	"github.com/lakbayhr/ems-backend-go/internal/pkg/email"
	"github.com/lakbayhr/ems-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leaveRepository    leave.LeaveRepository
	employeeRepository employee.EmployeeRepository
	emailService       email.EmailService
}

func NewLeaveService(leaveRepository leave.LeaveRepository, employeeRepository employee.EmployeeRepository, emailService email.EmailService) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRepository:    leaveRepository,
		employeeRepository: employeeRepository,
		emailService:       emailService,
	}
}

// Create implements leave.LeaveService.
func (s *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	if _, err := s.employeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.LeaveResponse{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	overlaps, err := s.leaveRepository.HasOverlapping(ctx, req.EmployeeID, start, end)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if overlaps {
		return leave.LeaveResponse{}, leave.ErrLeaveOverlaps
	}

	days := int(end.Sub(start).Hours()/24) + 1

	created, err := s.leaveRepository.Create(ctx, leave.LeaveRequest{
		EmployeeID: req.EmployeeID,
		LeaveType:  leave.LeaveType(req.LeaveType),
		StartDate:  start,
		EndDate:    end,
		Days:       days,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return toLeaveResponse(created), nil
}

// GetByID implements leave.LeaveService.
func (s *LeaveServiceImpl) GetByID(ctx context.Context, id string) (leave.LeaveResponse, error) {
	req, err := s.leaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return toLeaveResponse(req), nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	requests, total, err := s.leaveRepository.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveResponse{}, err
	}

	resp := leave.ListLeaveResponse{
		Data:       make([]leave.LeaveResponse, 0, len(requests)),
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	for _, r := range requests {
		resp.Data = append(resp.Data, toLeaveResponse(r))
	}

	return resp, nil
}

// Review implements leave.LeaveService.
func (s *LeaveServiceImpl) Review(ctx context.Context, req leave.ReviewLeaveRequest, reviewerID string) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	existing, err := s.leaveRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if existing.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	if err := s.leaveRepository.UpdateStatus(ctx, req.ID, leave.LeaveStatus(req.Status), reviewerID); err != nil {
		return leave.LeaveResponse{}, err
	}

	updated, err := s.leaveRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	// Notification is best effort; the review already stands.
	if emp, err := s.employeeRepository.GetByID(ctx, updated.EmployeeID); err == nil {
		if err := s.emailService.SendLeaveStatus(emp.Email, emp.FullName(), string(updated.LeaveType), string(updated.Status), ""); err != nil {
			slog.Error("failed to send leave status email", "leave_id", updated.ID, "error", err)
		}
	}

	return toLeaveResponse(updated), nil
}

func toLeaveResponse(r leave.LeaveRequest) leave.LeaveResponse {
	resp := leave.LeaveResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		LeaveType:  string(r.LeaveType),
		StartDate:  r.StartDate.Format("2006-01-02"),
		EndDate:    r.EndDate.Format("2006-01-02"),
		Days:       r.Days,
		Reason:     r.Reason,
		Status:     string(r.Status),
		ReviewedBy: r.ReviewedBy,
	}
	if r.ReviewedAt != nil {
		at := r.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &at
	}
	if r.EmployeeName != nil {
		resp.EmployeeName = *r.EmployeeName
	}
	if r.EmployeeCode != nil {
		resp.EmployeeCode = *r.EmployeeCode
	}
	return resp
}
