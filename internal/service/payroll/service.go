package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/lakbayhr/ems-backend-go/internal/domain/attendance"
	"github.com/lakbayhr/ems-backend-go/internal/domain/employee"
	"github.com/lakbayhr/ems-backend-go/internal/domain/payroll"
	"github.com/lakbayhr/ems-backend-go/internal/pkg/database"
	"github.com/lakbayhr/ems-backend-go/internal/pkg/email"
	"github.com/lakbayhr/ems-backend-go/internal/pkg/payslip"
	"github.com/lakbayhr/ems-backend-go/internal/pkg/validator"
	"github.com/lakbayhr/ems-backend-go/internal/repository/postgresql"
)

type PayrollServiceImpl struct {
	payrollRepository    payroll.PayrollRepository
	employeeRepository   employee.EmployeeRepository
	attendanceRepository attendance.AttendanceRepository
	payslipRenderer      *payslip.Renderer
	emailService         email.EmailService
	frontendURL          string

	// runTx wraps the record-plus-items write; swapped out in unit tests.
	runTx func(ctx context.Context, fn func(tx pgx.Tx) error) error
}

func NewPayrollService(
	db *database.DB,
	payrollRepository payroll.PayrollRepository,
	employeeRepository employee.EmployeeRepository,
	attendanceRepository attendance.AttendanceRepository,
	payslipRenderer *payslip.Renderer,
	emailService email.EmailService,
	frontendURL string,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepository:    payrollRepository,
		employeeRepository:   employeeRepository,
		attendanceRepository: attendanceRepository,
		payslipRenderer:      payslipRenderer,
		emailService:         emailService,
		frontendURL:          frontendURL,
		runTx: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// ProcessPayroll implements payroll.PayrollService.
//
// One run per employee per period. SSS and Pag-IBIG are computed on base
// salary; PhilHealth and withholding tax on total earnings. The record and
// its custom deduction items are persisted in a single transaction, so a
// failed run leaves no partial state.
func (s *PayrollServiceImpl) ProcessPayroll(ctx context.Context, req payroll.ProcessPayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	periodStart, periodEnd, ok := validator.PeriodBounds(req.PayrollPeriod)
	if !ok {
		return payroll.PayrollResponse{}, payroll.ErrInvalidPayrollPeriod
	}

	emp, err := s.employeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	if emp.BaseSalary == nil || emp.BaseSalary.IsZero() {
		return payroll.PayrollResponse{}, payroll.ErrEmployeeHasNoSalary
	}
	baseSalary := *emp.BaseSalary

	// Pre-check keeps the common failure cheap; the unique constraint on
	// (employee_id, payroll_period) closes the race for concurrent runs.
	if _, err := s.payrollRepository.GetByEmployeeAndPeriod(ctx, req.EmployeeID, req.PayrollPeriod); err == nil {
		return payroll.PayrollResponse{}, payroll.ErrPayrollAlreadyExists
	} else if !errors.Is(err, payroll.ErrPayrollNotFound) {
		return payroll.PayrollResponse{}, err
	}

	// Referenced deduction types must exist before anything is written.
	for _, cd := range req.CustomDeductions {
		if cd.DeductionTypeID != nil {
			if _, err := s.payrollRepository.GetDeductionTypeByID(ctx, *cd.DeductionTypeID); err != nil {
				return payroll.PayrollResponse{}, err
			}
		}
	}

	overtimeHours, err := s.attendanceRepository.SumOvertimeHours(ctx, req.EmployeeID, periodStart, periodEnd)
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to aggregate overtime: %w", err)
	}

	overtimePay := payroll.OvertimePay(baseSalary, overtimeHours).Round(payroll.CurrencyPlaces)
	holidayPay := req.HolidayPay.Round(payroll.CurrencyPlaces)
	allowance := emp.Allowance.Round(payroll.CurrencyPlaces)
	bonus := req.Bonus.Round(payroll.CurrencyPlaces)

	customDeductionTotal := decimal.Zero
	for _, cd := range req.CustomDeductions {
		customDeductionTotal = customDeductionTotal.Add(cd.Amount.Round(payroll.CurrencyPlaces))
	}

	totalEarnings := baseSalary.Add(overtimePay).Add(holidayPay).Add(allowance).Add(bonus)

	sss := payroll.SSSContribution(baseSalary).Round(payroll.CurrencyPlaces)
	pagibig := payroll.PagIbigContribution(baseSalary).Round(payroll.CurrencyPlaces)
	philhealth := payroll.PhilHealthContribution(totalEarnings).Round(payroll.CurrencyPlaces)
	withholdingTax := payroll.WithholdingTax(totalEarnings).Round(payroll.CurrencyPlaces)

	totalDeductions := sss.Add(pagibig).Add(philhealth).Add(withholdingTax).Add(customDeductionTotal)
	netPay := totalEarnings.Sub(totalDeductions)

	payDate := periodEnd
	if req.PayDate != nil {
		payDate, _ = validator.IsValidDate(*req.PayDate)
	}

	record := payroll.Payroll{
		EmployeeID:      req.EmployeeID,
		PayrollPeriod:   req.PayrollPeriod,
		PayDate:         payDate,
		BaseSalary:      baseSalary.Round(payroll.CurrencyPlaces),
		OvertimePay:     overtimePay,
		HolidayPay:      holidayPay,
		Allowance:       allowance,
		Bonus:           bonus,
		PhilHealth:      philhealth,
		SSS:             sss,
		PagIbig:         pagibig,
		WithholdingTax:  withholdingTax,
		TotalEarnings:   totalEarnings.Round(payroll.CurrencyPlaces),
		TotalDeductions: totalDeductions.Round(payroll.CurrencyPlaces),
		NetPay:          netPay.Round(payroll.CurrencyPlaces),
		Status:          payroll.PayrollStatusProcessed,
		IsLocked:        true,
	}

	var created payroll.Payroll
	var items []payroll.PayrollItem

	err = s.runTx(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err = s.payrollRepository.Create(txCtx, record)
		if err != nil {
			return err
		}

		for _, cd := range req.CustomDeductions {
			item, err := s.payrollRepository.CreateItem(txCtx, payroll.PayrollItem{
				PayrollID:       created.ID,
				DeductionTypeID: cd.DeductionTypeID,
				ItemType:        payroll.ItemTypeDeduction,
				Description:     cd.Description,
				Amount:          cd.Amount.Round(payroll.CurrencyPlaces),
			})
			if err != nil {
				return fmt.Errorf("failed to create payroll item: %w", err)
			}
			items = append(items, item)
		}
		return nil
	})
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return toPayrollResponse(created, items), nil
}

// CheckDuplicate implements payroll.PayrollService.
func (s *PayrollServiceImpl) CheckDuplicate(ctx context.Context, employeeID, period string) (payroll.CheckDuplicateResponse, error) {
	if !validator.IsValidPayrollPeriod(period) {
		return payroll.CheckDuplicateResponse{}, payroll.ErrInvalidPayrollPeriod
	}

	existing, err := s.payrollRepository.GetByEmployeeAndPeriod(ctx, employeeID, period)
	if err != nil {
		if errors.Is(err, payroll.ErrPayrollNotFound) {
			return payroll.CheckDuplicateResponse{Exists: false}, nil
		}
		return payroll.CheckDuplicateResponse{}, err
	}

	resp := toPayrollResponse(existing, nil)
	return payroll.CheckDuplicateResponse{Exists: true, Payroll: &resp}, nil
}

// GetPayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayroll(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	record, err := s.payrollRepository.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	items, err := s.payrollRepository.ListItems(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return toPayrollResponse(record, items), nil
}

// GetPayrollByEmployeePeriod implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayrollByEmployeePeriod(ctx context.Context, employeeID, period string) (payroll.PayrollResponse, error) {
	if _, _, ok := validator.PeriodBounds(period); !ok {
		return payroll.PayrollResponse{}, payroll.ErrInvalidPayrollPeriod
	}

	record, err := s.payrollRepository.GetByEmployeeAndPeriod(ctx, employeeID, period)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	items, err := s.payrollRepository.ListItems(ctx, record.ID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return toPayrollResponse(record, items), nil
}

// ListPayrolls implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListPayrolls(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	records, total, err := s.payrollRepository.List(ctx, filter)
	if err != nil {
		return payroll.ListPayrollResponse{}, err
	}

	resp := payroll.ListPayrollResponse{
		Data:       make([]payroll.PayrollResponse, 0, len(records)),
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	for _, record := range records {
		resp.Data = append(resp.Data, toPayrollResponse(record, nil))
	}

	return resp, nil
}

// UpdateStatus implements payroll.PayrollService. Allowed transitions are
// processed -> approved and approved -> paid.
func (s *PayrollServiceImpl) UpdateStatus(ctx context.Context, req payroll.UpdatePayrollStatusRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	record, err := s.payrollRepository.GetByID(ctx, req.ID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	next := payroll.PayrollStatus(req.Status)
	valid := (record.Status == payroll.PayrollStatusProcessed && next == payroll.PayrollStatusApproved) ||
		(record.Status == payroll.PayrollStatusApproved && next == payroll.PayrollStatusPaid)
	if !valid {
		return payroll.PayrollResponse{}, payroll.ErrInvalidStatusChange
	}

	if err := s.payrollRepository.UpdateStatus(ctx, req.ID, next); err != nil {
		return payroll.PayrollResponse{}, err
	}

	if next == payroll.PayrollStatusPaid && s.emailService != nil {
		s.notifyPaid(ctx, record)
	}

	return s.GetPayroll(ctx, req.ID)
}

// notifyPaid emails the employee their payslip link. Best effort; the status
// change is already committed.
func (s *PayrollServiceImpl) notifyPaid(ctx context.Context, record payroll.Payroll) {
	emp, err := s.employeeRepository.GetByID(ctx, record.EmployeeID)
	if err != nil {
		slog.Error("Failed to load employee for payslip email", "payroll_id", record.ID, "error", err)
		return
	}

	link := fmt.Sprintf("%s/payrolls/%s/payslip", s.frontendURL, record.ID)
	if err := s.emailService.SendPayslipNotification(emp.Email, emp.FullName(), record.PayrollPeriod, record.NetPay.StringFixed(2), link); err != nil {
		slog.Error("Failed to send payslip email", "payroll_id", record.ID, "error", err)
	}
}

// SetLock implements payroll.PayrollService.
func (s *PayrollServiceImpl) SetLock(ctx context.Context, id string, locked bool) error {
	if _, err := s.payrollRepository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.payrollRepository.SetLocked(ctx, id, locked)
}

// DeletePayroll implements payroll.PayrollService. Locked records must be
// unlocked first.
func (s *PayrollServiceImpl) DeletePayroll(ctx context.Context, id string) error {
	record, err := s.payrollRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if record.IsLocked {
		return payroll.ErrPayrollLocked
	}
	return s.payrollRepository.Delete(ctx, id)
}

// GetPeriodSummary implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPeriodSummary(ctx context.Context, period string) (payroll.PeriodSummaryResponse, error) {
	if !validator.IsValidPayrollPeriod(period) {
		return payroll.PeriodSummaryResponse{}, payroll.ErrInvalidPayrollPeriod
	}

	summary, err := s.payrollRepository.GetPeriodSummary(ctx, period)
	if err != nil {
		return payroll.PeriodSummaryResponse{}, err
	}

	return payroll.PeriodSummaryResponse{
		PayrollPeriod:   summary.PayrollPeriod,
		EmployeeCount:   summary.EmployeeCount,
		TotalEarnings:   summary.TotalEarnings,
		TotalDeductions: summary.TotalDeductions,
		TotalNetPay:     summary.TotalNetPay,
	}, nil
}

// GeneratePayslipPDF implements payroll.PayrollService.
func (s *PayrollServiceImpl) GeneratePayslipPDF(ctx context.Context, id string) ([]byte, error) {
	record, err := s.payrollRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.payrollRepository.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}

	itemPtrs := make([]*payroll.PayrollItem, 0, len(items))
	for i := range items {
		itemPtrs = append(itemPtrs, &items[i])
	}

	return s.payslipRenderer.Render(&record, itemPtrs)
}

// CreateDeductionType implements payroll.PayrollService.
func (s *PayrollServiceImpl) CreateDeductionType(ctx context.Context, req payroll.CreateDeductionTypeRequest) (payroll.DeductionTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.DeductionTypeResponse{}, err
	}

	created, err := s.payrollRepository.CreateDeductionType(ctx, payroll.DeductionType{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return payroll.DeductionTypeResponse{}, err
	}

	return payroll.DeductionTypeResponse{
		ID:          created.ID,
		Name:        created.Name,
		Description: created.Description,
	}, nil
}

// ListDeductionTypes implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListDeductionTypes(ctx context.Context) ([]payroll.DeductionTypeResponse, error) {
	types, err := s.payrollRepository.ListDeductionTypes(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]payroll.DeductionTypeResponse, 0, len(types))
	for _, dt := range types {
		resp = append(resp, payroll.DeductionTypeResponse{
			ID:          dt.ID,
			Name:        dt.Name,
			Description: dt.Description,
		})
	}
	return resp, nil
}

func toPayrollResponse(record payroll.Payroll, items []payroll.PayrollItem) payroll.PayrollResponse {
	resp := payroll.PayrollResponse{
		ID:              record.ID,
		EmployeeID:      record.EmployeeID,
		DepartmentName:  record.DepartmentName,
		PositionName:    record.PositionName,
		PayrollPeriod:   record.PayrollPeriod,
		PayDate:         record.PayDate.Format("2006-01-02"),
		BaseSalary:      record.BaseSalary,
		OvertimePay:     record.OvertimePay,
		HolidayPay:      record.HolidayPay,
		Allowance:       record.Allowance,
		Bonus:           record.Bonus,
		PhilHealth:      record.PhilHealth,
		SSS:             record.SSS,
		PagIbig:         record.PagIbig,
		WithholdingTax:  record.WithholdingTax,
		TotalEarnings:   record.TotalEarnings,
		TotalDeductions: record.TotalDeductions,
		NetPay:          record.NetPay,
		Status:          string(record.Status),
		IsLocked:        record.IsLocked,
	}
	if record.EmployeeName != nil {
		resp.EmployeeName = *record.EmployeeName
	}
	if record.EmployeeCode != nil {
		resp.EmployeeCode = *record.EmployeeCode
	}
	for _, it := range items {
		resp.Items = append(resp.Items, payroll.PayrollItemResponse{
			ID:              it.ID,
			DeductionTypeID: it.DeductionTypeID,
			ItemType:        string(it.ItemType),
			Description:     it.Description,
			Amount:          it.Amount,
		})
	}
	return resp
}
