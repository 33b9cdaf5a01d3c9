package domain

import (
	"context"
	"time"
)

type Employee struct {
	ID           int64     `json:"id"`
	UserID       *int64    `json:"user_id"`
	FirstName    string    `json:"first_name" validate:"required,max=191"`
	LastName     string    `json:"last_name" validate:"required,max=191"`
	EmployeeCode string    `json:"employee_code" validate:"required,max=50"`
	Position     string    `json:"position" validate:"required,max=191"`
	DepartmentID *int64    `json:"department_id"`
	HireDate     time.Time `json:"hire_date" validate:"required"`
	Salary       float64   `json:"salary" validate:"gte=0"`
	Currency     string    `json:"currency" validate:"required,len=3"`
	Phone        string    `json:"phone" validate:"max=50"`
	Address      string    `json:"address" validate:"max=255"`
	Status       string    `json:"status" validate:"required,oneof=active inactive"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// EmployeeWithDetails joins the employee with its user account and department.
type EmployeeWithDetails struct {
	Employee
	Email          *string `json:"email"`
	Role           *string `json:"role"`
	DepartmentName *string `json:"department_name"`
}

type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type EmployeeRepository interface {
	Fetch(ctx context.Context) ([]EmployeeWithDetails, error)
	Create(ctx context.Context, employee *Employee) error
}

type EmployeeUsecase interface {
	ListEmployees(ctx context.Context) ([]EmployeeWithDetails, error)
	CreateEmployee(ctx context.Context, employee *Employee) error
}
