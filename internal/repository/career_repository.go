package repository

import (
	"context"
	"database/sql"
	"errors"

	"career-compass/internal/database"
	"career-compass/internal/domain/career"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresCareerRepository struct {
	db database.DB
}

func NewPostgresCareerRepository(db database.DB) *PostgresCareerRepository {
	return &PostgresCareerRepository{db: db}
}

const careerColumns = `id, title, description, scope, earning_potential, skills, demand_level, category, created_at, updated_at`

func (r *PostgresCareerRepository) GetByID(ctx context.Context, id uuid.UUID) (career.Career, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+careerColumns+` FROM careers WHERE id = $1`, id)
	return scanCareer(row)
}

func (r *PostgresCareerRepository) getByTitle(ctx context.Context, title string) (career.Career, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+careerColumns+` FROM careers WHERE title = $1`, title)
	return scanCareer(row)
}

// Ensure inserts c unless a career with the same title already exists, then
// returns the stored row. Titles carry a unique constraint, so concurrent
// callers all read back the same record.
func (r *PostgresCareerRepository) Ensure(ctx context.Context, c career.Career) (career.Career, error) {
	id := c.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO careers (id, title, description, scope, earning_potential, skills, demand_level, category)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (title) DO NOTHING`,
		id, c.Title, c.Description, c.Scope, c.EarningPotential, c.Skills, string(c.DemandLevel), c.Category,
	)
	if err != nil {
		return career.Career{}, err
	}
	return r.getByTitle(ctx, c.Title)
}

func (r *PostgresCareerRepository) List(ctx context.Context) ([]career.Career, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+careerColumns+` FROM careers ORDER BY title ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]career.Career, 0)
	for rows.Next() {
		c, err := scanCareer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanCareer(row database.Row) (career.Career, error) {
	var c career.Career
	var demand string
	err := row.Scan(&c.ID, &c.Title, &c.Description, &c.Scope, &c.EarningPotential,
		&c.Skills, &demand, &c.Category, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return career.Career{}, career.ErrNotFound
		}
		return career.Career{}, err
	}
	c.DemandLevel = career.DemandLevel(demand)
	return c, nil
}
