package domain

import (
	"context"
	"time"
)

type Attendance struct {
	ID         int64      `json:"id"`
	EmployeeID int64      `json:"employee_id"`
	Date       time.Time  `json:"date"`
	Status     string     `json:"status"`
	CheckIn    *time.Time `json:"check_in"`
	CheckOut   *time.Time `json:"check_out"`
}

type LeaveRequest struct {
	ID           int64     `json:"id"`
	EmployeeID   int64     `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	Type         string    `json:"type"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Days         int       `json:"days"`
	Status       string    `json:"status"`
}

type Training struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Status    string     `json:"status"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

type HRRepository interface {
	FetchAttendanceByDate(ctx context.Context, date time.Time) ([]Attendance, error)
	FetchLeaveRequests(ctx context.Context) ([]LeaveRequest, error)
	FetchTrainings(ctx context.Context) ([]Training, error)
}

type HRUsecase interface {
	ListAttendance(ctx context.Context, date time.Time) ([]Attendance, error)
	ListLeaveRequests(ctx context.Context) ([]LeaveRequest, error)
	ListTrainings(ctx context.Context) ([]Training, error)
}
