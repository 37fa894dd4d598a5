package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/lakbayhr/ems-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService defines the interface for sending emails
type EmailService interface {
	SendPayslipNotification(to, employeeName, payrollPeriod, netPay, payslipLink string) error
	SendLeaveStatus(to, employeeName, leaveType, status, reviewerNote string) error
	SendApplicantStatus(to, applicantName, jobTitle, status, notes string) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type payslipEmailData struct {
	EmployeeName  string
	PayrollPeriod string
	NetPay        string
	PayslipLink   string
}

// SendPayslipNotification notifies an employee that their payslip is ready.
func (s *emailServiceImpl) SendPayslipNotification(to, employeeName, payrollPeriod, netPay, payslipLink string) error {
	data := payslipEmailData{
		EmployeeName:  employeeName,
		PayrollPeriod: payrollPeriod,
		NetPay:        netPay,
		PayslipLink:   payslipLink,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "payslip_notification.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Your Payslip for %s", payrollPeriod), body.String())
}

type leaveStatusEmailData struct {
	EmployeeName string
	LeaveType    string
	Status       string
	ReviewerNote string
}

// SendLeaveStatus notifies an employee that their leave request was reviewed.
func (s *emailServiceImpl) SendLeaveStatus(to, employeeName, leaveType, status, reviewerNote string) error {
	data := leaveStatusEmailData{
		EmployeeName: employeeName,
		LeaveType:    leaveType,
		Status:       status,
		ReviewerNote: reviewerNote,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "leave_status.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Leave Request %s", status), body.String())
}

type applicantStatusEmailData struct {
	ApplicantName string
	JobTitle      string
	Status        string
	Notes         string
}

// SendApplicantStatus notifies an applicant that their application moved
// through the pipeline.
func (s *emailServiceImpl) SendApplicantStatus(to, applicantName, jobTitle, status, notes string) error {
	data := applicantStatusEmailData{
		ApplicantName: applicantName,
		JobTitle:      jobTitle,
		Status:        status,
		Notes:         notes,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "applicant_status.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Application Update: %s", jobTitle), body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
