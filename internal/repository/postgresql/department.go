package postgresql

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/lakbayhr/ems-backend-go/internal/domain/master"
	"github.com/lakbayhr/ems-backend-go/internal/pkg/database"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) master.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

// Create implements master.DepartmentRepository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, d master.Department) (master.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (name, description)
		VALUES ($1, $2)
		RETURNING id, name, description, created_at, updated_at
	`

	var created master.Department
	err := q.QueryRow(ctx, query, d.Name, d.Description).Scan(
		&created.ID, &created.Name, &created.Description, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_departments_name") {
			return master.Department{}, master.ErrDepartmentNameExists
		}
		return master.Department{}, err
	}

	return created, nil
}

// GetByID implements master.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (master.Department, error) {
	q := GetQuerier(ctx, r.db)

	var found master.Department
	err := q.QueryRow(ctx, `SELECT id, name, description, created_at, updated_at FROM departments WHERE id = $1`, id).Scan(
		&found.ID, &found.Name, &found.Description, &found.CreatedAt, &found.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return master.Department{}, master.ErrDepartmentNotFound
		}
		return master.Department{}, err
	}

	return found, nil
}

// List implements master.DepartmentRepository.
func (r *departmentRepositoryImpl) List(ctx context.Context) ([]master.Department, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, description, created_at, updated_at FROM departments ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []master.Department
	for rows.Next() {
		var d master.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

// Update implements master.DepartmentRepository.
func (r *departmentRepositoryImpl) Update(ctx context.Context, d master.Department) (master.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE departments
		SET name = $1, description = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id, name, description, created_at, updated_at
	`

	var updated master.Department
	err := q.QueryRow(ctx, query, d.Name, d.Description, d.ID).Scan(
		&updated.ID, &updated.Name, &updated.Description, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return master.Department{}, master.ErrDepartmentNotFound
		}
		if strings.Contains(err.Error(), "uk_departments_name") {
			return master.Department{}, master.ErrDepartmentNameExists
		}
		return master.Department{}, err
	}

	return updated, nil
}

// Delete implements master.DepartmentRepository.
func (r *departmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return master.ErrDepartmentNotFound
	}
	return nil
}
