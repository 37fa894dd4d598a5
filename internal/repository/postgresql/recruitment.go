package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/lakbayhr/ems-backend-go/internal/domain/recruitment"
	"github.com/lakbayhr/ems-backend-go/internal/pkg/database"
)

type jobPostingRepositoryImpl struct {
	db *database.DB
}

func NewJobPostingRepository(db *database.DB) recruitment.JobPostingRepository {
	return &jobPostingRepositoryImpl{db: db}
}

const jobPostingColumns = `j.id, j.title, j.department_id, j.description, j.status, j.created_at, j.updated_at,
	d.name AS department_name,
	(SELECT COUNT(*) FROM applicants a WHERE a.job_posting_id = j.id) AS applicant_count`

const jobPostingJoins = `
	FROM job_postings j
	LEFT JOIN departments d ON j.department_id = d.id`

func scanJobPosting(row pgx.Row) (recruitment.JobPosting, error) {
	var j recruitment.JobPosting
	err := row.Scan(
		&j.ID,
		&j.Title,
		&j.DepartmentID,
		&j.Description,
		&j.Status,
		&j.CreatedAt,
		&j.UpdatedAt,
		&j.DepartmentName,
		&j.ApplicantCount,
	)
	return j, err
}

// Create implements recruitment.JobPostingRepository.
func (r *jobPostingRepositoryImpl) Create(ctx context.Context, job recruitment.JobPosting) (recruitment.JobPosting, error) {
	q := GetQuerier(ctx, r.db)

	var id string
	err := q.QueryRow(ctx, `
		INSERT INTO job_postings (title, department_id, description, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, job.Title, job.DepartmentID, job.Description, job.Status).Scan(&id)
	if err != nil {
		return recruitment.JobPosting{}, err
	}

	return r.GetByID(ctx, id)
}

// GetByID implements recruitment.JobPostingRepository.
func (r *jobPostingRepositoryImpl) GetByID(ctx context.Context, id string) (recruitment.JobPosting, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanJobPosting(q.QueryRow(ctx, `SELECT `+jobPostingColumns+jobPostingJoins+` WHERE j.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return recruitment.JobPosting{}, recruitment.ErrJobPostingNotFound
		}
		return recruitment.JobPosting{}, err
	}

	return found, nil
}

// List implements recruitment.JobPostingRepository.
func (r *jobPostingRepositoryImpl) List(ctx context.Context, openOnly bool) ([]recruitment.JobPosting, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + jobPostingColumns + jobPostingJoins
	if openOnly {
		query += ` WHERE j.status = 'open'`
	}
	query += ` ORDER BY j.created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var postings []recruitment.JobPosting
	for rows.Next() {
		j, err := scanJobPosting(rows)
		if err != nil {
			return nil, err
		}
		postings = append(postings, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return postings, nil
}

// Update implements recruitment.JobPostingRepository.
func (r *jobPostingRepositoryImpl) Update(ctx context.Context, job recruitment.JobPosting) (recruitment.JobPosting, error) {
	q := GetQuerier(ctx, r.db)

	var id string
	err := q.QueryRow(ctx, `
		UPDATE job_postings
		SET title = $1, department_id = $2, description = $3, status = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id
	`, job.Title, job.DepartmentID, job.Description, job.Status, job.ID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return recruitment.JobPosting{}, recruitment.ErrJobPostingNotFound
		}
		return recruitment.JobPosting{}, err
	}

	return r.GetByID(ctx, id)
}

// Delete implements recruitment.JobPostingRepository.
func (r *jobPostingRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return recruitment.ErrJobPostingNotFound
	}
	return nil
}

type applicantRepositoryImpl struct {
	db *database.DB
}

func NewApplicantRepository(db *database.DB) recruitment.ApplicantRepository {
	return &applicantRepositoryImpl{db: db}
}

const applicantColumns = `a.id, a.job_posting_id, a.full_name, a.email, a.phone_number,
	a.resume_url, a.status, a.notes, a.created_at, a.updated_at,
	j.title AS job_title`

const applicantJoins = `
	FROM applicants a
	JOIN job_postings j ON a.job_posting_id = j.id`

func scanApplicant(row pgx.Row) (recruitment.Applicant, error) {
	var a recruitment.Applicant
	err := row.Scan(
		&a.ID,
		&a.JobPostingID,
		&a.FullName,
		&a.Email,
		&a.PhoneNumber,
		&a.ResumeURL,
		&a.Status,
		&a.Notes,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.JobTitle,
	)
	return a, err
}

// Create implements recruitment.ApplicantRepository.
func (r *applicantRepositoryImpl) Create(ctx context.Context, a recruitment.Applicant) (recruitment.Applicant, error) {
	q := GetQuerier(ctx, r.db)

	var id string
	err := q.QueryRow(ctx, `
		INSERT INTO applicants (job_posting_id, full_name, email, phone_number, resume_url, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, a.JobPostingID, a.FullName, a.Email, a.PhoneNumber, a.ResumeURL, a.Status, a.Notes).Scan(&id)
	if err != nil {
		return recruitment.Applicant{}, err
	}

	return r.GetByID(ctx, id)
}

// GetByID implements recruitment.ApplicantRepository.
func (r *applicantRepositoryImpl) GetByID(ctx context.Context, id string) (recruitment.Applicant, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanApplicant(q.QueryRow(ctx, `SELECT `+applicantColumns+applicantJoins+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return recruitment.Applicant{}, recruitment.ErrApplicantNotFound
		}
		return recruitment.Applicant{}, err
	}

	return found, nil
}

// ListByJob implements recruitment.ApplicantRepository.
func (r *applicantRepositoryImpl) ListByJob(ctx context.Context, jobPostingID string) ([]recruitment.Applicant, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+applicantColumns+applicantJoins+` WHERE a.job_posting_id = $1 ORDER BY a.created_at DESC`, jobPostingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var applicants []recruitment.Applicant
	for rows.Next() {
		a, err := scanApplicant(rows)
		if err != nil {
			return nil, err
		}
		applicants = append(applicants, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return applicants, nil
}

// UpdateStatus implements recruitment.ApplicantRepository.
func (r *applicantRepositoryImpl) UpdateStatus(ctx context.Context, id string, status recruitment.ApplicantStatus, notes *string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE applicants
		SET status = $1, notes = COALESCE($2, notes), updated_at = NOW()
		WHERE id = $3
	`, status, notes, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return recruitment.ErrApplicantNotFound
	}
	return nil
}

// SetResumeURL implements recruitment.ApplicantRepository.
func (r *applicantRepositoryImpl) SetResumeURL(ctx context.Context, id string, resumeURL string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE applicants SET resume_url = $1, updated_at = NOW() WHERE id = $2`, resumeURL, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return recruitment.ErrApplicantNotFound
	}
	return nil
}
