package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type DashboardSummary struct {
	TotalStudents   int64           `json:"total_students"`
	TotalCourses    int64           `json:"total_courses"`
	EnrolledRevenue decimal.Decimal `json:"enrolled_revenue"`
	RecentTeachers  []Teacher       `json:"recent_teachers"`
	RecentStudents  []Student       `json:"recent_students"`
}

type DashboardUseCase interface {
	GetSummary(ctx context.Context) (*DashboardSummary, error)
}

type DashboardRepository interface {
	CountStudents(ctx context.Context) (int64, error)
	CountCourses(ctx context.Context) (int64, error)
	// GetEnrollmentPrices returns the course price of every enrollment.
	GetEnrollmentPrices(ctx context.Context) ([]decimal.Decimal, error)
	GetRecentTeachers(ctx context.Context, limit int) ([]Teacher, error)
	GetRecentStudents(ctx context.Context, limit int) ([]Student, error)
}
