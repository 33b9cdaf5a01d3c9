package domain

import (
	"context"
	"time"
)

// DashboardStats are the headline counters of the dashboard page.
type DashboardStats struct {
	TotalEmployees     int64 `json:"totalEmployees"`
	PresentToday       int64 `json:"presentToday"`
	PendingLeaves      int64 `json:"pendingLeaves"`
	CompletedTrainings int64 `json:"completedTrainings"`
}

type DepartmentCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type AttendanceDay struct {
	Date         time.Time `json:"date"`
	PresentCount int64     `json:"present_count"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// WorkforceSnapshot aggregates the HR statistics fed to the AI consultant
// prompt.
type WorkforceSnapshot struct {
	EmployeeTotal  int64
	EmployeeActive int64
	AvgTenureYears float64
	Departments    []DepartmentCount
	Attendance     []AttendanceDay
	Recruitment    []StatusCount
}

type DepartmentPayroll struct {
	Name        string  `json:"name"`
	Headcount   int64   `json:"headcount"`
	TotalSalary float64 `json:"total_salary"`
}

// PayrollSummary aggregates monthly salary totals for the payroll page.
type PayrollSummary struct {
	TotalMonthly float64             `json:"total_monthly"`
	Departments  []DepartmentPayroll `json:"departments"`
}

type StatsRepository interface {
	DashboardStats(ctx context.Context) (*DashboardStats, error)
	WorkforceSnapshot(ctx context.Context) (*WorkforceSnapshot, error)
	PayrollSummary(ctx context.Context) (*PayrollSummary, error)
}

type InsightUsecase interface {
	DashboardStats(ctx context.Context) (*DashboardStats, error)
	PayrollSummary(ctx context.Context) (*PayrollSummary, error)
	WorkforceInsight(ctx context.Context) (string, error)
	SummarizeCandidate(ctx context.Context, candidateID int64) (string, error)
}
