// Package payslip renders payroll records as downloadable PDF payslips.
package payslip

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/lakbayhr/ems-backend-go/internal/domain/payroll"
)

type Renderer struct {
	companyName string
}

func NewRenderer(companyName string) *Renderer {
	return &Renderer{companyName: companyName}
}

// Render produces the payslip PDF for a processed payroll record.
func (r *Renderer) Render(p *payroll.Payroll, items []*payroll.PayrollItem) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, r.companyName)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, fmt.Sprintf("Payslip for %s", p.PayrollPeriod))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Employee: %s", deref(p.EmployeeName)))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Employee Code: %s", deref(p.EmployeeCode)))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Department: %s", deref(p.DepartmentName)))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Position: %s", deref(p.PositionName)))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Pay Date: %s", p.PayDate.Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Earnings")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	r.line(pdf, "Base Salary", p.BaseSalary)
	r.line(pdf, "Overtime Pay", p.OvertimePay)
	r.line(pdf, "Holiday Pay", p.HolidayPay)
	r.line(pdf, "Allowance", p.Allowance)
	r.line(pdf, "Bonus", p.Bonus)
	for _, it := range items {
		if it.ItemType == payroll.ItemTypeEarning {
			r.line(pdf, it.Description, it.Amount)
		}
	}
	pdf.SetFont("Helvetica", "B", 11)
	r.line(pdf, "Total Earnings", p.TotalEarnings)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Deductions")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	r.line(pdf, "SSS", p.SSS)
	r.line(pdf, "PhilHealth", p.PhilHealth)
	r.line(pdf, "Pag-IBIG", p.PagIbig)
	r.line(pdf, "Withholding Tax", p.WithholdingTax)
	for _, it := range items {
		if it.ItemType == payroll.ItemTypeDeduction {
			r.line(pdf, it.Description, it.Amount)
		}
	}
	pdf.SetFont("Helvetica", "B", 11)
	r.line(pdf, "Total Deductions", p.TotalDeductions)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	r.line(pdf, "Net Pay", p.NetPay)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) line(pdf *gofpdf.Fpdf, label string, amount decimal.Decimal) {
	pdf.Cell(120, 7, label)
	pdf.CellFormat(0, 7, "PHP "+amount.StringFixed(2), "", 0, "R", false, 0, "")
	pdf.Ln(7)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
