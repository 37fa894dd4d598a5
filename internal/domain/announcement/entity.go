package announcement

import "time"

// Announcement is a company-wide notice shown on the admin dashboard.
type Announcement struct {
	ID          string
	Title       string
	Body        string
	PublishedAt *time.Time
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
