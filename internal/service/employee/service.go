package employee

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/lakbayhr/ems-backend-go/internal/domain/employee"
	"github.com/lakbayhr/ems-backend-go/internal/pkg/database"
	"github.com/lakbayhr/ems-backend-go/internal/pkg/validator"
	"github.com/lakbayhr/ems-backend-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db                 *database.DB
	employeeRepository employee.EmployeeRepository
}

func NewEmployeeService(db *database.DB, employeeRepository employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		employeeRepository: employeeRepository,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hireDate, _ := validator.IsValidDate(req.HireDate)

	emp := employee.Employee{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
		Address:       req.Address,
		MaritalStatus: employee.MaritalStatus(req.MaritalStatus),
		DepartmentID:  req.DepartmentID,
		PositionID:    req.PositionID,
		HireDate:      hireDate,
		BaseSalary:    req.BaseSalary,
		Allowance:     decimal.Zero,
		Status:        employee.EmploymentActive,
	}
	if req.Allowance != nil {
		emp.Allowance = *req.Allowance
	}
	if req.DOB != nil {
		dob, _ := validator.IsValidDate(*req.DOB)
		emp.DOB = &dob
	}

	var created employee.Employee

	// Code issuance and insert share a transaction so concurrent creates
	// cannot claim the same EMP-NNNN.
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		code, err := s.employeeRepository.NextEmployeeCode(txCtx)
		if err != nil {
			return fmt.Errorf("failed to issue employee code: %w", err)
		}
		emp.EmployeeCode = code

		created, err = s.employeeRepository.Create(txCtx, emp)
		if err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(created), nil
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	employees, total, err := s.employeeRepository.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	resp := employee.ListEmployeeResponse{
		Data:       make([]employee.EmployeeResponse, 0, len(employees)),
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	for _, emp := range employees {
		resp.Data = append(resp.Data, toEmployeeResponse(emp))
	}

	return resp, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FirstName != nil {
		emp.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		emp.LastName = *req.LastName
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		emp.PhoneNumber = req.PhoneNumber
	}
	if req.Address != nil {
		emp.Address = req.Address
	}
	if req.MaritalStatus != nil {
		emp.MaritalStatus = employee.MaritalStatus(*req.MaritalStatus)
	}
	if req.DepartmentID != nil {
		emp.DepartmentID = req.DepartmentID
	}
	if req.PositionID != nil {
		emp.PositionID = req.PositionID
	}
	if req.BaseSalary != nil {
		emp.BaseSalary = req.BaseSalary
	}
	if req.Allowance != nil {
		emp.Allowance = *req.Allowance
	}
	if req.Status != nil {
		emp.Status = employee.EmploymentStatus(*req.Status)
	}

	updated, err := s.employeeRepository.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(updated), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.employeeRepository.SoftDelete(ctx, id)
}

func toEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:             emp.ID,
		EmployeeCode:   emp.EmployeeCode,
		FirstName:      emp.FirstName,
		LastName:       emp.LastName,
		Email:          emp.Email,
		PhoneNumber:    emp.PhoneNumber,
		Address:        emp.Address,
		MaritalStatus:  string(emp.MaritalStatus),
		DepartmentID:   emp.DepartmentID,
		DepartmentName: emp.DepartmentName,
		PositionID:     emp.PositionID,
		PositionName:   emp.PositionName,
		HireDate:       emp.HireDate.Format("2006-01-02"),
		BaseSalary:     emp.BaseSalary,
		Allowance:      emp.Allowance,
		Status:         string(emp.Status),
		PhotoURL:       emp.PhotoURL,
	}
	if emp.DOB != nil {
		dob := emp.DOB.Format("2006-01-02")
		resp.DOB = &dob
	}
	return resp
}
