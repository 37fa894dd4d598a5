package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/lakbayhr/ems-backend-go/internal/domain/master"
	"github.com/lakbayhr/ems-backend-go/internal/pkg/database"
)

type positionRepositoryImpl struct {
	db *database.DB
}

func NewPositionRepository(db *database.DB) master.PositionRepository {
	return &positionRepositoryImpl{db: db}
}

const positionColumns = `p.id, p.department_id, p.title, p.created_at, p.updated_at, d.name AS department_name`

const positionJoins = `
	FROM positions p
	LEFT JOIN departments d ON p.department_id = d.id`

func scanPosition(row pgx.Row) (master.Position, error) {
	var p master.Position
	err := row.Scan(&p.ID, &p.DepartmentID, &p.Title, &p.CreatedAt, &p.UpdatedAt, &p.DepartmentName)
	return p, err
}

// Create implements master.PositionRepository.
func (r *positionRepositoryImpl) Create(ctx context.Context, p master.Position) (master.Position, error) {
	q := GetQuerier(ctx, r.db)

	var id string
	err := q.QueryRow(ctx, `INSERT INTO positions (department_id, title) VALUES ($1, $2) RETURNING id`,
		p.DepartmentID, p.Title,
	).Scan(&id)
	if err != nil {
		return master.Position{}, err
	}

	return r.GetByID(ctx, id)
}

// GetByID implements master.PositionRepository.
func (r *positionRepositoryImpl) GetByID(ctx context.Context, id string) (master.Position, error) {
	q := GetQuerier(ctx, r.db)

	found, err := scanPosition(q.QueryRow(ctx, `SELECT `+positionColumns+positionJoins+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return master.Position{}, master.ErrPositionNotFound
		}
		return master.Position{}, err
	}

	return found, nil
}

// List implements master.PositionRepository.
func (r *positionRepositoryImpl) List(ctx context.Context) ([]master.Position, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+positionColumns+positionJoins+` ORDER BY p.title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var positions []master.Position
	for rows.Next() {
		p, err := scanPosition(rows)
		if err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return positions, nil
}

// Update implements master.PositionRepository.
func (r *positionRepositoryImpl) Update(ctx context.Context, p master.Position) (master.Position, error) {
	q := GetQuerier(ctx, r.db)

	var id string
	err := q.QueryRow(ctx, `UPDATE positions SET department_id = $1, title = $2, updated_at = NOW() WHERE id = $3 RETURNING id`,
		p.DepartmentID, p.Title, p.ID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return master.Position{}, master.ErrPositionNotFound
		}
		return master.Position{}, err
	}

	return r.GetByID(ctx, id)
}

// Delete implements master.PositionRepository.
func (r *positionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM positions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return master.ErrPositionNotFound
	}
	return nil
}
