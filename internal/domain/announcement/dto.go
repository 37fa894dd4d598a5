package announcement

import "github.com/lakbayhr/ems-backend-go/internal/pkg/validator"

type UpsertAnnouncementRequest struct {
	ID      string `json:"-"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	Publish bool   `json:"publish"`
}

func (r *UpsertAnnouncementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	if validator.IsEmpty(r.Body) {
		errs = append(errs, validator.ValidationError{Field: "body", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AnnouncementResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Body        string  `json:"body"`
	PublishedAt *string `json:"published_at,omitempty"`
	CreatedBy   string  `json:"created_by"`
}
