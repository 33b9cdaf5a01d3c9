package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"grh-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobOfferRepo struct {
	db *pgxpool.Pool
}

func NewJobOfferRepository(db *pgxpool.Pool) domain.JobOfferRepository {
	return &jobOfferRepo{db: db}
}

func (r *jobOfferRepo) Fetch(ctx context.Context, filter domain.JobOfferFilter) ([]domain.JobOfferWithCount, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT
			jo.id, jo.title, jo.department, jo.location, jo.type, jo.description,
			jo.status, jo.created_at, jo.updated_at,
			COUNT(c.id) AS candidate_count
		FROM job_offers jo
		LEFT JOIN candidates c ON c.job_offer_id = jo.id`)

	var conds []string
	var args []interface{}

	if filter.Status != "" && filter.Status != "all" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("jo.status = $%d", len(args)))
	}
	if filter.Department != "" && filter.Department != "all" {
		args = append(args, filter.Department)
		conds = append(conds, fmt.Sprintf("jo.department = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conds = append(conds, fmt.Sprintf("(jo.title ILIKE $%d OR jo.description ILIKE $%d)", len(args), len(args)))
	}

	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString(" GROUP BY jo.id ORDER BY jo.created_at DESC")

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	offers := []domain.JobOfferWithCount{}
	for rows.Next() {
		var offer domain.JobOfferWithCount
		if err := rows.Scan(
			&offer.ID, &offer.Title, &offer.Department, &offer.Location, &offer.Type,
			&offer.Description, &offer.Status, &offer.CreatedAt, &offer.UpdatedAt,
			&offer.CandidateCount,
		); err != nil {
			return nil, err
		}
		offers = append(offers, offer)
	}

	return offers, rows.Err()
}

func (r *jobOfferRepo) GetByID(ctx context.Context, id int64) (*domain.JobOffer, error) {
	query := `SELECT id, title, department, location, type, description, status, created_at, updated_at
              FROM job_offers WHERE id = $1`
	var offer domain.JobOffer
	err := r.db.QueryRow(ctx, query, id).Scan(
		&offer.ID, &offer.Title, &offer.Department, &offer.Location, &offer.Type,
		&offer.Description, &offer.Status, &offer.CreatedAt, &offer.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &offer, nil
}

func (r *jobOfferRepo) Create(ctx context.Context, offer *domain.JobOffer) error {
	query := `INSERT INTO job_offers (title, department, location, type, description, status, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRow(ctx, query,
		offer.Title, offer.Department, offer.Location, offer.Type, offer.Description,
		offer.Status, offer.CreatedAt, offer.UpdatedAt,
	).Scan(&offer.ID)
}

// buildOfferPatch assembles the SET clause for a partial update from the
// fields the patch actually carries. The write targets are a fixed set of
// columns, never derived from request keys.
func buildOfferPatch(patch domain.JobOfferPatch, updatedAt time.Time) (string, []interface{}) {
	var sets []string
	var args []interface{}

	write := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Title != nil {
		write("title", *patch.Title)
	}
	if patch.Department != nil {
		write("department", *patch.Department)
	}
	if patch.Location != nil {
		write("location", *patch.Location)
	}
	if patch.Type != nil {
		write("type", *patch.Type)
	}
	if patch.Description != nil {
		write("description", *patch.Description)
	}
	if patch.Status != nil {
		write("status", *patch.Status)
	}
	write("updated_at", updatedAt)

	return strings.Join(sets, ", "), args
}

func (r *jobOfferRepo) UpdatePartial(ctx context.Context, id int64, patch domain.JobOfferPatch, updatedAt time.Time) error {
	setClause, args := buildOfferPatch(patch, updatedAt)
	args = append(args, id)
	query := fmt.Sprintf("UPDATE job_offers SET %s WHERE id = $%d", setClause, len(args))

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobOfferRepo) Close(ctx context.Context, id int64, updatedAt time.Time) error {
	query := `UPDATE job_offers SET status = $2, updated_at = $3 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, domain.OfferStatusClosed, updatedAt)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobOfferRepo) CountCandidates(ctx context.Context, offerID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM candidates WHERE job_offer_id = $1`, offerID).Scan(&count)
	return count, err
}

// DeleteCascade removes the offer's candidates and the offer itself in one
// transaction. A failure partway rolls back both deletes.
func (r *jobOfferRepo) DeleteCascade(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM candidates WHERE job_offer_id = $1`, id); err != nil {
		return err
	}

	result, err := tx.Exec(ctx, `DELETE FROM job_offers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return tx.Commit(ctx)
}

func (r *jobOfferRepo) Departments(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT department FROM job_offers ORDER BY department`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	departments := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		departments = append(departments, name)
	}

	return departments, rows.Err()
}
