package recruitment

import "errors"

var (
	ErrJobPostingNotFound = errors.New("job posting not found")
	ErrJobPostingClosed   = errors.New("job posting is closed")
	ErrApplicantNotFound  = errors.New("applicant not found")
)
