package postgres

import (
	"context"
	"errors"
	"time"

	"grh-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type candidateRepo struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

const candidateColumns = `id, job_offer_id, first_name, last_name, email, phone, status,
	cv_url, years_of_experience, education_level, cover_letter, notes, skills,
	created_at, updated_at`

func scanCandidate(row pgx.Row, c *domain.Candidate) error {
	var skills []string
	err := row.Scan(
		&c.ID, &c.JobOfferID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Status,
		&c.CVURL, &c.YearsOfExperience, &c.EducationLevel, &c.CoverLetter, &c.Notes,
		pq.Array(&skills), &c.CreatedAt, &c.UpdatedAt,
	)
	c.Skills = skills
	return err
}

func (r *candidateRepo) FetchByOffer(ctx context.Context, offerID int64) ([]domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE job_offer_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, offerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates := []domain.Candidate{}
	for rows.Next() {
		var c domain.Candidate
		if err := scanCandidate(rows, &c); err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}

	return candidates, rows.Err()
}

func (r *candidateRepo) FetchAll(ctx context.Context) ([]domain.CandidateWithJob, error) {
	query := `
		SELECT
			c.id, c.job_offer_id, c.first_name, c.last_name, c.email, c.phone, c.status,
			c.cv_url, c.years_of_experience, c.education_level, c.cover_letter, c.notes, c.skills,
			c.created_at, c.updated_at,
			jo.title AS job_title
		FROM candidates c
		LEFT JOIN job_offers jo ON c.job_offer_id = jo.id
		ORDER BY c.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates := []domain.CandidateWithJob{}
	for rows.Next() {
		var c domain.CandidateWithJob
		var skills []string
		if err := rows.Scan(
			&c.ID, &c.JobOfferID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Status,
			&c.CVURL, &c.YearsOfExperience, &c.EducationLevel, &c.CoverLetter, &c.Notes,
			pq.Array(&skills), &c.CreatedAt, &c.UpdatedAt,
			&c.JobTitle,
		); err != nil {
			return nil, err
		}
		c.Skills = skills
		candidates = append(candidates, c)
	}

	return candidates, rows.Err()
}

func (r *candidateRepo) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`

	var c domain.Candidate
	err := scanCandidate(r.db.QueryRow(ctx, query, id), &c)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *candidateRepo) UpdateStatus(ctx context.Context, id int64, status string, updatedAt time.Time) error {
	query := `UPDATE candidates SET status = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status, updatedAt)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
