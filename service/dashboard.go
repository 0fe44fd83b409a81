package service

import (
	"context"

	"github.com/enzoobispoo/EduSystem/domain"
	"github.com/shopspring/decimal"
)

const recentLimit = 3

type dashboardService struct {
	repo domain.DashboardRepository
}

func NewDashboardService(repo domain.DashboardRepository) domain.DashboardUseCase {
	return &dashboardService{repo: repo}
}

func (s *dashboardService) GetSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	students, err := s.repo.CountStudents(ctx)
	if err != nil {
		return nil, err
	}
	courses, err := s.repo.CountCourses(ctx)
	if err != nil {
		return nil, err
	}
	prices, err := s.repo.GetEnrollmentPrices(ctx)
	if err != nil {
		return nil, err
	}
	teachers, err := s.repo.GetRecentTeachers(ctx, recentLimit)
	if err != nil {
		return nil, err
	}
	recentStudents, err := s.repo.GetRecentStudents(ctx, recentLimit)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardSummary{
		TotalStudents:   students,
		TotalCourses:    courses,
		EnrolledRevenue: decimal.Sum(decimal.Zero, prices...),
		RecentTeachers:  teachers,
		RecentStudents:  recentStudents,
	}, nil
}
