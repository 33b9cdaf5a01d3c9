package postgres

import (
	"context"
	"time"

	"grh-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type hrRepo struct {
	db *pgxpool.Pool
}

func NewHRRepository(db *pgxpool.Pool) domain.HRRepository {
	return &hrRepo{db: db}
}

func (r *hrRepo) FetchAttendanceByDate(ctx context.Context, date time.Time) ([]domain.Attendance, error) {
	query := `SELECT id, employee_id, date, status, check_in, check_out
              FROM attendance WHERE date = $1 ORDER BY employee_id ASC`

	rows, err := r.db.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []domain.Attendance{}
	for rows.Next() {
		var a domain.Attendance
		if err := rows.Scan(&a.ID, &a.EmployeeID, &a.Date, &a.Status, &a.CheckIn, &a.CheckOut); err != nil {
			return nil, err
		}
		records = append(records, a)
	}

	return records, rows.Err()
}

func (r *hrRepo) FetchLeaveRequests(ctx context.Context) ([]domain.LeaveRequest, error) {
	query := `
		SELECT
			lr.id, lr.employee_id,
			COALESCE(e.first_name || ' ' || e.last_name, '') AS employee_name,
			lr.type, lr.start_date, lr.end_date, lr.days, lr.status
		FROM leave_requests lr
		LEFT JOIN employees e ON lr.employee_id = e.id
		ORDER BY lr.start_date DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := []domain.LeaveRequest{}
	for rows.Next() {
		var lr domain.LeaveRequest
		if err := rows.Scan(
			&lr.ID, &lr.EmployeeID, &lr.EmployeeName,
			&lr.Type, &lr.StartDate, &lr.EndDate, &lr.Days, &lr.Status,
		); err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}

	return requests, rows.Err()
}

func (r *hrRepo) FetchTrainings(ctx context.Context) ([]domain.Training, error) {
	query := `SELECT id, title, status, start_date, end_date FROM trainings ORDER BY start_date DESC NULLS LAST`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trainings := []domain.Training{}
	for rows.Next() {
		var t domain.Training
		if err := rows.Scan(&t.ID, &t.Title, &t.Status, &t.StartDate, &t.EndDate); err != nil {
			return nil, err
		}
		trainings = append(trainings, t)
	}

	return trainings, rows.Err()
}
