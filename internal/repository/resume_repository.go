package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"career-compass/internal/database"
	"career-compass/internal/domain/resume"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

type PostgresResumeRepository struct {
	db database.DB
}

func NewPostgresResumeRepository(db database.DB) *PostgresResumeRepository {
	return &PostgresResumeRepository{db: db}
}

const resumeColumns = `id, title, user_id, career_id, summary, personal_info, skills,
	experiences, projects, education, certifications,
	feedback, score, strengths, improvements, version, is_active, created_at, updated_at`

func (r *PostgresResumeRepository) GetByID(ctx context.Context, id string) (resume.Resume, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+resumeColumns+` FROM resumes WHERE id = $1`, id)
	return scanResume(row)
}

func (r *PostgresResumeRepository) Create(ctx context.Context, rs resume.Resume) error {
	personal, sections, err := encodeResumeBlobs(rs)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO resumes (`+resumeColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		rs.ID, rs.Title, rs.UserID, rs.CareerID, rs.Summary, personal, rs.Skills,
		sections[0], sections[1], sections[2], sections[3],
		rs.Feedback, rs.Score, rs.Strengths, rs.Improvements,
		rs.Version, rs.IsActive, rs.CreatedAt, rs.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return resume.ErrConflict
		}
		return err
	}
	return nil
}

func (r *PostgresResumeRepository) Update(ctx context.Context, rs resume.Resume) error {
	personal, sections, err := encodeResumeBlobs(rs)
	if err != nil {
		return err
	}

	affected, err := r.db.Exec(ctx,
		`UPDATE resumes
		 SET title = $2, summary = $3, personal_info = $4, skills = $5,
		     experiences = $6, projects = $7, education = $8, certifications = $9,
		     feedback = $10, score = $11, strengths = $12, improvements = $13,
		     updated_at = $14
		 WHERE id = $1`,
		rs.ID, rs.Title, rs.Summary, personal, rs.Skills,
		sections[0], sections[1], sections[2], sections[3],
		rs.Feedback, rs.Score, rs.Strengths, rs.Improvements,
		rs.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return resume.ErrNotFound
	}
	return nil
}

func (r *PostgresResumeRepository) Delete(ctx context.Context, id string) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return resume.ErrNotFound
	}
	return nil
}

// encodeResumeBlobs renders the personal-info object and the four section
// sequences as JSONB payloads. Nil sequences are written as empty arrays so
// readers never see null.
func encodeResumeBlobs(rs resume.Resume) ([]byte, [4][]byte, error) {
	personal := rs.PersonalInfo
	if len(personal) == 0 {
		personal = json.RawMessage(`{}`)
	}

	var sections [4][]byte
	for i, seq := range [][]json.RawMessage{rs.Experiences, rs.Projects, rs.Education, rs.Certifications} {
		if seq == nil {
			seq = []json.RawMessage{}
		}
		b, err := json.Marshal(seq)
		if err != nil {
			return nil, sections, err
		}
		sections[i] = b
	}
	return personal, sections, nil
}

func scanResume(row database.Row) (resume.Resume, error) {
	var rs resume.Resume
	var personal []byte
	var sections [4][]byte

	err := row.Scan(&rs.ID, &rs.Title, &rs.UserID, &rs.CareerID, &rs.Summary, &personal, &rs.Skills,
		&sections[0], &sections[1], &sections[2], &sections[3],
		&rs.Feedback, &rs.Score, &rs.Strengths, &rs.Improvements,
		&rs.Version, &rs.IsActive, &rs.CreatedAt, &rs.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return resume.Resume{}, resume.ErrNotFound
		}
		return resume.Resume{}, err
	}

	rs.PersonalInfo = json.RawMessage(personal)
	if len(rs.PersonalInfo) == 0 {
		rs.PersonalInfo = json.RawMessage(`{}`)
	}

	dests := []*[]json.RawMessage{&rs.Experiences, &rs.Projects, &rs.Education, &rs.Certifications}
	for i, raw := range sections {
		seq := make([]json.RawMessage, 0)
		if len(raw) > 0 && string(raw) != "null" {
			if err := json.Unmarshal(raw, &seq); err != nil {
				return resume.Resume{}, err
			}
		}
		*dests[i] = seq
	}

	if rs.Skills == nil {
		rs.Skills = []string{}
	}
	if rs.Strengths == nil {
		rs.Strengths = []string{}
	}
	if rs.Improvements == nil {
		rs.Improvements = []string{}
	}
	return rs, nil
}
