package payroll

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakbayhr/ems-backend-go/internal/domain/attendance"
	"github.com/lakbayhr/ems-backend-go/internal/domain/employee"
	"github.com/lakbayhr/ems-backend-go/internal/domain/payroll"
	"github.com/lakbayhr/ems-backend-go/internal/pkg/payslip"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ---- fakes ----

type fakePayrollRepo struct {
	mu      sync.Mutex
	seq     int
	records map[string]payroll.Payroll // id -> record
	byKey   map[string]string          // employeeID|period -> id
	items   map[string][]payroll.PayrollItem
	types   map[string]payroll.DeductionType
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{
		records: make(map[string]payroll.Payroll),
		byKey:   make(map[string]string),
		items:   make(map[string][]payroll.PayrollItem),
		types:   make(map[string]payroll.DeductionType),
	}
}

func (f *fakePayrollRepo) Create(ctx context.Context, record payroll.Payroll) (payroll.Payroll, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := record.EmployeeID + "|" + record.PayrollPeriod
	if _, exists := f.byKey[key]; exists {
		return payroll.Payroll{}, payroll.ErrPayrollAlreadyExists
	}

	f.seq++
	record.ID = fmt.Sprintf("pr-%d", f.seq)
	record.CreatedAt = time.Now()
	f.records[record.ID] = record
	f.byKey[key] = record.ID
	return record, nil
}

func (f *fakePayrollRepo) CreateItem(ctx context.Context, item payroll.PayrollItem) (payroll.PayrollItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	item.ID = fmt.Sprintf("it-%d", f.seq)
	f.items[item.PayrollID] = append(f.items[item.PayrollID], item)
	return item, nil
}

func (f *fakePayrollRepo) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	record, ok := f.records[id]
	if !ok {
		return payroll.Payroll{}, payroll.ErrPayrollNotFound
	}
	return record, nil
}

func (f *fakePayrollRepo) GetByEmployeeAndPeriod(ctx context.Context, employeeID, period string) (payroll.Payroll, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id, ok := f.byKey[employeeID+"|"+period]
	if !ok {
		return payroll.Payroll{}, payroll.ErrPayrollNotFound
	}
	return f.records[id], nil
}

func (f *fakePayrollRepo) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.Payroll, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []payroll.Payroll
	for _, r := range f.records {
		if filter.PayrollPeriod != "" && r.PayrollPeriod != filter.PayrollPeriod {
			continue
		}
		if filter.EmployeeID != "" && r.EmployeeID != filter.EmployeeID {
			continue
		}
		out = append(out, r)
	}
	return out, int64(len(out)), nil
}

func (f *fakePayrollRepo) ListItems(ctx context.Context, payrollID string) ([]payroll.PayrollItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.items[payrollID], nil
}

func (f *fakePayrollRepo) UpdateStatus(ctx context.Context, id string, status payroll.PayrollStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	record, ok := f.records[id]
	if !ok {
		return payroll.ErrPayrollNotFound
	}
	record.Status = status
	f.records[id] = record
	return nil
}

func (f *fakePayrollRepo) SetLocked(ctx context.Context, id string, locked bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	record, ok := f.records[id]
	if !ok {
		return payroll.ErrPayrollNotFound
	}
	record.IsLocked = locked
	f.records[id] = record
	return nil
}

func (f *fakePayrollRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	record, ok := f.records[id]
	if !ok {
		return payroll.ErrPayrollNotFound
	}
	delete(f.records, id)
	delete(f.byKey, record.EmployeeID+"|"+record.PayrollPeriod)
	delete(f.items, id)
	return nil
}

func (f *fakePayrollRepo) GetPeriodSummary(ctx context.Context, period string) (payroll.PeriodSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	summary := payroll.PeriodSummary{
		PayrollPeriod:   period,
		TotalEarnings:   decimal.Zero,
		TotalDeductions: decimal.Zero,
		TotalNetPay:     decimal.Zero,
	}
	for _, r := range f.records {
		if r.PayrollPeriod != period {
			continue
		}
		summary.EmployeeCount++
		summary.TotalEarnings = summary.TotalEarnings.Add(r.TotalEarnings)
		summary.TotalDeductions = summary.TotalDeductions.Add(r.TotalDeductions)
		summary.TotalNetPay = summary.TotalNetPay.Add(r.NetPay)
	}
	return summary, nil
}

func (f *fakePayrollRepo) CreateDeductionType(ctx context.Context, dt payroll.DeductionType) (payroll.DeductionType, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	dt.ID = fmt.Sprintf("dt-%d", f.seq)
	f.types[dt.ID] = dt
	return dt, nil
}

func (f *fakePayrollRepo) GetDeductionTypeByID(ctx context.Context, id string) (payroll.DeductionType, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	dt, ok := f.types[id]
	if !ok {
		return payroll.DeductionType{}, payroll.ErrDeductionTypeNotFound
	}
	return dt, nil
}

func (f *fakePayrollRepo) ListDeductionTypes(ctx context.Context) ([]payroll.DeductionType, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []payroll.DeductionType
	for _, dt := range f.types {
		out = append(out, dt)
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) SoftDelete(ctx context.Context, id string) error { return nil }

func (f *fakeEmployeeRepo) NextEmployeeCode(ctx context.Context) (string, error) {
	return "EMP-0001", nil
}

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository
	overtime map[string]decimal.Decimal
}

func (f *fakeAttendanceRepo) SumOvertimeHours(ctx context.Context, employeeID string, from, to time.Time) (decimal.Decimal, error) {
	if h, ok := f.overtime[employeeID]; ok {
		return h, nil
	}
	return decimal.Zero, nil
}

// ---- fixtures ----

func newTestService(overtime map[string]decimal.Decimal, employees ...employee.Employee) (*PayrollServiceImpl, *fakePayrollRepo) {
	repo := newFakePayrollRepo()
	empRepo := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, emp := range employees {
		empRepo.employees[emp.ID] = emp
	}

	svc := &PayrollServiceImpl{
		payrollRepository:    repo,
		employeeRepository:   empRepo,
		attendanceRepository: &fakeAttendanceRepo{overtime: overtime},
		payslipRenderer:      payslip.NewRenderer("Lakbay HR"),
		runTx: func(ctx context.Context, fn func(tx pgx.Tx) error) error {
			return fn(nil)
		},
	}
	return svc, repo
}

func testEmployee(id string, baseSalary, allowance string) employee.Employee {
	base := d(baseSalary)
	dept := "Engineering"
	pos := "Software Engineer"
	return employee.Employee{
		ID:             id,
		EmployeeCode:   "EMP-0001",
		FirstName:      "Maria",
		LastName:       "Santos",
		Email:          "maria.santos@example.com",
		BaseSalary:     &base,
		Allowance:      d(allowance),
		Status:         employee.EmploymentActive,
		DepartmentName: &dept,
		PositionName:   &pos,
	}
}

// ---- tests ----

func TestProcessPayroll_ComputesAllFields(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(
		map[string]decimal.Decimal{"emp-1": d("10")},
		testEmployee("emp-1", "30000", "0"),
	)

	resp, err := svc.ProcessPayroll(ctx, payroll.ProcessPayrollRequest{
		EmployeeID:    "emp-1",
		PayrollPeriod: "2025-07",
	})
	require.NoError(t, err)

	// 30000/176 * 1.25 * 10h
	assert.True(t, resp.OvertimePay.Equal(d("2130.68")), "overtime pay = %s", resp.OvertimePay)
	assert.True(t, resp.TotalEarnings.Equal(d("32130.68")), "total earnings = %s", resp.TotalEarnings)

	assert.True(t, resp.SSS.Equal(d("500")), "sss = %s", resp.SSS)
	assert.True(t, resp.PagIbig.Equal(d("600")), "pagibig = %s", resp.PagIbig)
	assert.True(t, resp.PhilHealth.Equal(d("321.31")), "philhealth = %s", resp.PhilHealth)
	assert.True(t, resp.WithholdingTax.Equal(d("2259.47")), "withholding = %s", resp.WithholdingTax)

	assert.True(t, resp.TotalDeductions.Equal(d("3680.78")), "total deductions = %s", resp.TotalDeductions)
	assert.True(t, resp.NetPay.Equal(d("28449.90")), "net pay = %s", resp.NetPay)

	assert.Equal(t, string(payroll.PayrollStatusProcessed), resp.Status)
	assert.True(t, resp.IsLocked)
}

func TestProcessPayroll_NetPayInvariant(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(
		map[string]decimal.Decimal{"emp-1": d("3.5")},
		testEmployee("emp-1", "45250.75", "2500"),
	)

	resp, err := svc.ProcessPayroll(ctx, payroll.ProcessPayrollRequest{
		EmployeeID:    "emp-1",
		PayrollPeriod: "2025-03",
		HolidayPay:    d("1200"),
		Bonus:         d("800"),
	})
	require.NoError(t, err)

	assert.True(t, resp.NetPay.Equal(resp.TotalEarnings.Sub(resp.TotalDeductions)),
		"net %s != earnings %s - deductions %s", resp.NetPay, resp.TotalEarnings, resp.TotalDeductions)

	earnings := resp.BaseSalary.Add(resp.OvertimePay).Add(resp.HolidayPay).Add(resp.Allowance).Add(resp.Bonus)
	assert.True(t, resp.TotalEarnings.Equal(earnings))
}

func TestProcessPayroll_DefaultPayDateIsLastDayOfMonth(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(nil, testEmployee("emp-1", "25000", "0"))

	resp, err := svc.ProcessPayroll(ctx, payroll.ProcessPayrollRequest{
		EmployeeID:    "emp-1",
		PayrollPeriod: "2024-02",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", resp.PayDate)
}

func TestProcessPayroll_ExplicitPayDate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(nil, testEmployee("emp-1", "25000", "0"))

	payDate := "2025-07-15"
	resp, err := svc.ProcessPayroll(ctx, payroll.ProcessPayrollRequest{
		EmployeeID:    "emp-1",
		PayrollPeriod: "2025-07",
		PayDate:       &payDate,
	})
	require.NoError(t, err)
	assert.Equal(t, payDate, resp.PayDate)
}

func TestProcessPayroll_MissingBaseSalary(t *testing.T) {
	ctx := context.Background()
	emp := testEmployee("emp-1", "0", "0")
	emp.BaseSalary = nil
	svc, _ := newTestService(nil, emp)

	_, err := svc.ProcessPayroll(ctx, payroll.ProcessPayrollRequest{
		EmployeeID:    "emp-1",
		PayrollPeriod: "2025-07",
	})
	assert.ErrorIs(t, err, payroll.ErrEmployeeHasNoSalary)
}

func TestProcessPayroll_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(nil)

	_, err := svc.ProcessPayroll(ctx, payroll.ProcessPayrollRequest{
		EmployeeID:    "missing",
		PayrollPeriod: "2025-07",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestProcessPayroll_InvalidPeriod(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(nil, testEmployee("emp-1", "25000", "0"))

	_, err := svc.ProcessPayroll(ctx, payroll.ProcessPayrollRequest{
		EmployeeID:    "emp-1",
		PayrollPeriod: "2025-13",
	})
	assert.Error(t, err)
}

func TestProcessPayroll_DuplicateRejected(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(nil, testEmployee("emp-1", "25000", "0"))

	req := payroll.ProcessPayrollRequest{EmployeeID: "emp-1", PayrollPeriod: "2025-07"}

	_, err := svc.ProcessPayroll(ctx, req)
	require.NoError(t, err)

	_, err = svc.ProcessPayroll(ctx, req)
	assert.ErrorIs(t, err, payroll.ErrPayrollAlreadyExists)
}

func TestProcessPayroll_ConcurrentRunsCreateExactlyOne(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(nil, testEmployee("emp-1", "25000", "0"))

	const runs = 10
	var wg sync.WaitGroup
	errCh := make(chan error, runs)

	for i := 0; i < runs; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.ProcessPayroll(ctx, payroll.ProcessPayrollRequest{
				EmployeeID:    "emp-1",
				PayrollPeriod: "2025-07",
			})
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)

	successes := 0
	for err := range errCh {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, payroll.ErrPayrollAlreadyExists)
		}
	}
	assert.Equal(t, 1, successes)
	assert.Len(t, repo.records, 1)
}

func TestProcessPayroll_CustomDeductions(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(nil, testEmployee("emp-1", "25000", "0"))

	dt, err := svc.CreateDeductionType(ctx, payroll.CreateDeductionTypeRequest{Name: "SSS Loan"})
	require.NoError(t, err)

	withoutCustom, err := svc.ProcessPayroll(ctx, payroll.ProcessPayrollRequest{
		EmployeeID:    "emp-1",
		PayrollPeriod: "2025-06",
	})
	require.NoError(t, err)

	withCustom, err := svc.ProcessPayroll(ctx, payroll.ProcessPayrollRequest{
		EmployeeID:    "emp-1",
		PayrollPeriod: "2025-07",
		CustomDeductions: []payroll.CustomDeductionInput{
			{DeductionTypeID: &dt.ID, Description: "SSS salary loan", Amount: d("750.50")},
			{Description: "Tardiness", Amount: d("125")},
		},
	})
	require.NoError(t, err)

	diff := withCustom.TotalDeductions.Sub(withoutCustom.TotalDeductions)
	assert.True(t, diff.Equal(d("875.50")), "custom deductions added %s", diff)
	assert.True(t, withCustom.NetPay.Equal(withoutCustom.NetPay.Sub(d("875.50"))))

	require.Len(t, withCustom.Items, 2)
	assert.Equal(t, string(payroll.ItemTypeDeduction), withCustom.Items[0].ItemType)
	assert.Len(t, repo.items[withCustom.ID], 2)
}

func TestProcessPayroll_UnknownDeductionType(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(nil, testEmployee("emp-1", "25000", "0"))

	missing := "dt-missing"
	_, err := svc.ProcessPayroll(ctx, payroll.ProcessPayrollRequest{
		EmployeeID:    "emp-1",
		PayrollPeriod: "2025-07",
		CustomDeductions: []payroll.CustomDeductionInput{
			{DeductionTypeID: &missing, Description: "Loan", Amount: d("100")},
		},
	})
	assert.ErrorIs(t, err, payroll.ErrDeductionTypeNotFound)
	assert.Empty(t, repo.records)
}

func TestCheckDuplicate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(nil, testEmployee("emp-1", "25000", "0"))

	resp, err := svc.CheckDuplicate(ctx, "emp-1", "2025-07")
	require.NoError(t, err)
	assert.False(t, resp.Exists)
	assert.Nil(t, resp.Payroll)

	_, err = svc.ProcessPayroll(ctx, payroll.ProcessPayrollRequest{
		EmployeeID:    "emp-1",
		PayrollPeriod: "2025-07",
	})
	require.NoError(t, err)

	resp, err = svc.CheckDuplicate(ctx, "emp-1", "2025-07")
	require.NoError(t, err)
	assert.True(t, resp.Exists)
	require.NotNil(t, resp.Payroll)
	assert.Equal(t, "2025-07", resp.Payroll.PayrollPeriod)
}

func TestUpdateStatus_Transitions(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(nil, testEmployee("emp-1", "25000", "0"))

	created, err := svc.ProcessPayroll(ctx, payroll.ProcessPayrollRequest{
		EmployeeID:    "emp-1",
		PayrollPeriod: "2025-07",
	})
	require.NoError(t, err)

	// processed -> paid skips approval
	_, err = svc.UpdateStatus(ctx, payroll.UpdatePayrollStatusRequest{ID: created.ID, Status: "paid"})
	assert.ErrorIs(t, err, payroll.ErrInvalidStatusChange)

	approved, err := svc.UpdateStatus(ctx, payroll.UpdatePayrollStatusRequest{ID: created.ID, Status: "approved"})
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.Status)

	paid, err := svc.UpdateStatus(ctx, payroll.UpdatePayrollStatusRequest{ID: created.ID, Status: "paid"})
	require.NoError(t, err)
	assert.Equal(t, "paid", paid.Status)

	_, err = svc.UpdateStatus(ctx, payroll.UpdatePayrollStatusRequest{ID: created.ID, Status: "approved"})
	assert.ErrorIs(t, err, payroll.ErrInvalidStatusChange)
}

func TestDeletePayroll_LockedRejected(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(nil, testEmployee("emp-1", "25000", "0"))

	created, err := svc.ProcessPayroll(ctx, payroll.ProcessPayrollRequest{
		EmployeeID:    "emp-1",
		PayrollPeriod: "2025-07",
	})
	require.NoError(t, err)

	err = svc.DeletePayroll(ctx, created.ID)
	assert.ErrorIs(t, err, payroll.ErrPayrollLocked)

	require.NoError(t, svc.SetLock(ctx, created.ID, false))
	require.NoError(t, svc.DeletePayroll(ctx, created.ID))

	_, err = svc.GetPayroll(ctx, created.ID)
	assert.ErrorIs(t, err, payroll.ErrPayrollNotFound)
}

func TestGetPeriodSummary(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(nil,
		testEmployee("emp-1", "25000", "0"),
		testEmployee("emp-2", "40000", "1000"),
	)

	for _, id := range []string{"emp-1", "emp-2"} {
		_, err := svc.ProcessPayroll(ctx, payroll.ProcessPayrollRequest{
			EmployeeID:    id,
			PayrollPeriod: "2025-07",
		})
		require.NoError(t, err)
	}

	summary, err := svc.GetPeriodSummary(ctx, "2025-07")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.EmployeeCount)
	assert.True(t, summary.TotalNetPay.Equal(summary.TotalEarnings.Sub(summary.TotalDeductions)))
}

func TestGeneratePayslipPDF(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(nil, testEmployee("emp-1", "25000", "0"))

	created, err := svc.ProcessPayroll(ctx, payroll.ProcessPayrollRequest{
		EmployeeID:    "emp-1",
		PayrollPeriod: "2025-07",
	})
	require.NoError(t, err)

	pdf, err := svc.GeneratePayslipPDF(ctx, created.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
