package postgres

import (
	"context"

	"grh-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type statsRepo struct {
	db *pgxpool.Pool
}

func NewStatsRepository(db *pgxpool.Pool) domain.StatsRepository {
	return &statsRepo{db: db}
}

func (r *statsRepo) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats

	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&stats.TotalEmployees); err != nil {
		return nil, err
	}

	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendance WHERE date = CURRENT_DATE AND status = 'present'`,
	).Scan(&stats.PresentToday); err != nil {
		return nil, err
	}

	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM leave_requests WHERE status = 'pending'`,
	).Scan(&stats.PendingLeaves); err != nil {
		return nil, err
	}

	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM trainings WHERE status = 'completed'`,
	).Scan(&stats.CompletedTrainings); err != nil {
		return nil, err
	}

	return &stats, nil
}

func (r *statsRepo) WorkforceSnapshot(ctx context.Context) (*domain.WorkforceSnapshot, error) {
	var snap domain.WorkforceSnapshot

	err := r.db.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN status = 'active' THEN 1 ELSE 0 END), 0),
			COALESCE(AVG(EXTRACT(EPOCH FROM (NOW() - hire_date)) / 31557600), 0)
		FROM employees`,
	).Scan(&snap.EmployeeTotal, &snap.EmployeeActive, &snap.AvgTenureYears)
	if err != nil {
		return nil, err
	}

	deptRows, err := r.db.Query(ctx, `
		SELECT d.name, COUNT(e.id)
		FROM departments d
		LEFT JOIN employees e ON d.id = e.department_id
		GROUP BY d.id, d.name
		ORDER BY d.name`)
	if err != nil {
		return nil, err
	}
	defer deptRows.Close()
	for deptRows.Next() {
		var dc domain.DepartmentCount
		if err := deptRows.Scan(&dc.Name, &dc.Count); err != nil {
			return nil, err
		}
		snap.Departments = append(snap.Departments, dc)
	}
	if err := deptRows.Err(); err != nil {
		return nil, err
	}

	attRows, err := r.db.Query(ctx, `
		SELECT date, COUNT(*)
		FROM attendance
		WHERE date >= CURRENT_DATE - INTERVAL '7 days'
		GROUP BY date
		ORDER BY date DESC`)
	if err != nil {
		return nil, err
	}
	defer attRows.Close()
	for attRows.Next() {
		var ad domain.AttendanceDay
		if err := attRows.Scan(&ad.Date, &ad.PresentCount); err != nil {
			return nil, err
		}
		snap.Attendance = append(snap.Attendance, ad)
	}
	if err := attRows.Err(); err != nil {
		return nil, err
	}

	recRows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM candidates GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer recRows.Close()
	for recRows.Next() {
		var sc domain.StatusCount
		if err := recRows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, err
		}
		snap.Recruitment = append(snap.Recruitment, sc)
	}
	if err := recRows.Err(); err != nil {
		return nil, err
	}

	return &snap, nil
}

func (r *statsRepo) PayrollSummary(ctx context.Context) (*domain.PayrollSummary, error) {
	var summary domain.PayrollSummary

	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(salary), 0) FROM employees WHERE status = 'active'`,
	).Scan(&summary.TotalMonthly)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT d.name, COUNT(e.id), COALESCE(SUM(e.salary), 0)
		FROM departments d
		LEFT JOIN employees e ON d.id = e.department_id AND e.status = 'active'
		GROUP BY d.id, d.name
		ORDER BY d.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var dp domain.DepartmentPayroll
		if err := rows.Scan(&dp.Name, &dp.Headcount, &dp.TotalSalary); err != nil {
			return nil, err
		}
		summary.Departments = append(summary.Departments, dp)
	}

	return &summary, rows.Err()
}
