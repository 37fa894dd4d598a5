package announcement

import "context"

type AnnouncementRepository interface {
	Create(ctx context.Context, a Announcement) (Announcement, error)
	GetByID(ctx context.Context, id string) (Announcement, error)
	List(ctx context.Context, publishedOnly bool) ([]Announcement, error)
	Update(ctx context.Context, a Announcement) (Announcement, error)
	Delete(ctx context.Context, id string) error
}
