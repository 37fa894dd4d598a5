package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/lakbayhr/ems-backend-go/internal/domain/announcement"
	"github.com/lakbayhr/ems-backend-go/internal/pkg/database"
)

type announcementRepositoryImpl struct {
	db *database.DB
}

func NewAnnouncementRepository(db *database.DB) announcement.AnnouncementRepository {
	return &announcementRepositoryImpl{db: db}
}

const announcementColumns = `id, title, body, published_at, created_by, created_at, updated_at`

func scanAnnouncement(row pgx.Row) (announcement.Announcement, error) {
	var a announcement.Announcement
	err := row.Scan(&a.ID, &a.Title, &a.Body, &a.PublishedAt, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// Create implements announcement.AnnouncementRepository.
func (r *announcementRepositoryImpl) Create(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO announcements (title, body, published_at, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + announcementColumns

	created, err := scanAnnouncement(q.QueryRow(ctx, query, a.Title, a.Body, a.PublishedAt, a.CreatedBy))
	if err != nil {
		return announcement.Announcement{}, err
	}

	return created, nil
}

// GetByID implements announcement.AnnouncementRepository.
func (r *announcementRepositoryImpl) GetByID(ctx context.Context, id string) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanAnnouncement(q.QueryRow(ctx, `SELECT `+announcementColumns+` FROM announcements WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return announcement.Announcement{}, announcement.ErrAnnouncementNotFound
		}
		return announcement.Announcement{}, err
	}

	return found, nil
}

// List implements announcement.AnnouncementRepository.
func (r *announcementRepositoryImpl) List(ctx context.Context, publishedOnly bool) ([]announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + announcementColumns + ` FROM announcements`
	if publishedOnly {
		query += ` WHERE published_at IS NOT NULL AND published_at <= NOW()`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var announcements []announcement.Announcement
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, err
		}
		announcements = append(announcements, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return announcements, nil
}

// Update implements announcement.AnnouncementRepository.
func (r *announcementRepositoryImpl) Update(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE announcements
		SET title = $1, body = $2, published_at = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING ` + announcementColumns

	updated, err := scanAnnouncement(q.QueryRow(ctx, query, a.Title, a.Body, a.PublishedAt, a.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return announcement.Announcement{}, announcement.ErrAnnouncementNotFound
		}
		return announcement.Announcement{}, err
	}

	return updated, nil
}

// Delete implements announcement.AnnouncementRepository.
func (r *announcementRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return announcement.ErrAnnouncementNotFound
	}
	return nil
}
