package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/lakbayhr/ems-backend-go/internal/domain/payroll"
	"github.com/lakbayhr/ems-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Process(w http.ResponseWriter, r *http.Request)
	CheckDuplicate(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Lock(w http.ResponseWriter, r *http.Request)
	Unlock(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	PeriodSummary(w http.ResponseWriter, r *http.Request)
	DownloadPayslip(w http.ResponseWriter, r *http.Request)

	CreateDeductionType(w http.ResponseWriter, r *http.Request)
	ListDeductionTypes(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func (h *payrollHandlerImpl) Process(w http.ResponseWriter, r *http.Request) {
	var req payroll.ProcessPayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.ProcessPayroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll processed", result)
}

func (h *payrollHandlerImpl) CheckDuplicate(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	period := r.URL.Query().Get("payroll_period")
	if employeeID == "" || period == "" {
		response.BadRequest(w, "employee_id and payroll_period are required", nil)
		return
	}

	result, err := h.payrollService.CheckDuplicate(r.Context(), employeeID, period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	result, err := h.payrollService.GetPayroll(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := payroll.PayrollFilter{
		EmployeeID:    r.URL.Query().Get("employee_id"),
		PayrollPeriod: r.URL.Query().Get("payroll_period"),
		Status:        r.URL.Query().Get("status"),
	}
	filter.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.payrollService.ListPayrolls(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := int((result.TotalCount + int64(result.Limit) - 1) / int64(result.Limit))
	response.SuccessWithMeta(w, result.Data, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: totalPages,
	})
}

func (h *payrollHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	var req payroll.UpdatePayrollStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.payrollService.UpdateStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll status updated", result)
}

func (h *payrollHandlerImpl) Lock(w http.ResponseWriter, r *http.Request) {
	h.setLock(w, r, true)
}

func (h *payrollHandlerImpl) Unlock(w http.ResponseWriter, r *http.Request) {
	h.setLock(w, r, false)
}

func (h *payrollHandlerImpl) setLock(w http.ResponseWriter, r *http.Request, locked bool) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	if err := h.payrollService.SetLock(r.Context(), id, locked); err != nil {
		response.HandleError(w, err)
		return
	}

	if locked {
		response.SuccessWithMessage(w, "Payroll locked", nil)
		return
	}
	response.SuccessWithMessage(w, "Payroll unlocked", nil)
}

func (h *payrollHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	if err := h.payrollService.DeletePayroll(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll deleted", nil)
}

func (h *payrollHandlerImpl) PeriodSummary(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("payroll_period")
	if period == "" {
		response.BadRequest(w, "payroll_period is required", nil)
		return
	}

	result, err := h.payrollService.GetPeriodSummary(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) DownloadPayslip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	pdf, err := h.payrollService.GeneratePayslipPDF(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="payslip-%s.pdf"`, id))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func (h *payrollHandlerImpl) CreateDeductionType(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateDeductionTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.CreateDeductionType(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Deduction type created", result)
}

func (h *payrollHandlerImpl) ListDeductionTypes(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.ListDeductionTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
