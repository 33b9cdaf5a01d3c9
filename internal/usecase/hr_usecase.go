package usecase

import (
	"context"
	"time"

	"grh-backend/internal/domain"
)

type hrUsecase struct {
	hrRepo domain.HRRepository
}

func NewHRUsecase(hrRepo domain.HRRepository) domain.HRUsecase {
	return &hrUsecase{hrRepo: hrRepo}
}

func (u *hrUsecase) ListAttendance(ctx context.Context, date time.Time) ([]domain.Attendance, error) {
	return u.hrRepo.FetchAttendanceByDate(ctx, date)
}

func (u *hrUsecase) ListLeaveRequests(ctx context.Context) ([]domain.LeaveRequest, error) {
	return u.hrRepo.FetchLeaveRequests(ctx)
}

func (u *hrUsecase) ListTrainings(ctx context.Context) ([]domain.Training, error) {
	return u.hrRepo.FetchTrainings(ctx)
}
