package usecase

import (
	"context"
	"time"

	"grh-backend/internal/domain"
	"grh-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type employeeUsecase struct {
	employeeRepo domain.EmployeeRepository
	validate     *validator.Validate
}

func NewEmployeeUsecase(employeeRepo domain.EmployeeRepository, validate *validator.Validate) domain.EmployeeUsecase {
	return &employeeUsecase{
		employeeRepo: employeeRepo,
		validate:     validate,
	}
}

func (u *employeeUsecase) ListEmployees(ctx context.Context) ([]domain.EmployeeWithDetails, error) {
	return u.employeeRepo.Fetch(ctx)
}

func (u *employeeUsecase) CreateEmployee(ctx context.Context, employee *domain.Employee) error {
	if err := requirePermission(ctx, domain.OpManageEmployees); err != nil {
		return err
	}

	if err := u.validate.Struct(employee); err != nil {
		return apperror.BadRequest(err.Error())
	}

	now := time.Now()
	employee.CreatedAt = now
	employee.UpdatedAt = now

	return u.employeeRepo.Create(ctx, employee)
}
