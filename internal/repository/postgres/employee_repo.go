package postgres

import (
	"context"

	"grh-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type employeeRepo struct {
	db *pgxpool.Pool
}

func NewEmployeeRepository(db *pgxpool.Pool) domain.EmployeeRepository {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) Fetch(ctx context.Context) ([]domain.EmployeeWithDetails, error) {
	query := `
		SELECT
			e.id, e.user_id, e.first_name, e.last_name, e.employee_code, e.position,
			e.department_id, e.hire_date, e.salary, e.currency, e.phone, e.address,
			e.status, e.created_at, e.updated_at,
			u.email, u.role,
			d.name AS department_name
		FROM employees e
		LEFT JOIN users u ON e.user_id = u.id
		LEFT JOIN departments d ON e.department_id = d.id
		ORDER BY e.first_name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := []domain.EmployeeWithDetails{}
	for rows.Next() {
		var e domain.EmployeeWithDetails
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.FirstName, &e.LastName, &e.EmployeeCode, &e.Position,
			&e.DepartmentID, &e.HireDate, &e.Salary, &e.Currency, &e.Phone, &e.Address,
			&e.Status, &e.CreatedAt, &e.UpdatedAt,
			&e.Email, &e.Role,
			&e.DepartmentName,
		); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

func (r *employeeRepo) Create(ctx context.Context, employee *domain.Employee) error {
	query := `INSERT INTO employees (
			user_id, first_name, last_name, employee_code, position,
			department_id, hire_date, salary, currency, phone, address, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`

	return r.db.QueryRow(ctx, query,
		employee.UserID, employee.FirstName, employee.LastName, employee.EmployeeCode,
		employee.Position, employee.DepartmentID, employee.HireDate, employee.Salary,
		employee.Currency, employee.Phone, employee.Address, employee.Status,
		employee.CreatedAt, employee.UpdatedAt,
	).Scan(&employee.ID)
}
