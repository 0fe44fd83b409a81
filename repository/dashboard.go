package repository

import (
	"context"

	"github.com/enzoobispoo/EduSystem/domain"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) domain.DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) CountStudents(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Student{}).Count(&count).Error; err != nil {
		return 0, dbError(err, "student")
	}
	return count, nil
}

func (r *dashboardRepository) CountCourses(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Course{}).Count(&count).Error; err != nil {
		return 0, dbError(err, "course")
	}
	return count, nil
}

func (r *dashboardRepository) GetEnrollmentPrices(ctx context.Context) ([]decimal.Decimal, error) {
	var prices []decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&domain.Enrollment{}).
		Joins("JOIN courses ON courses.id = enrollments.course_id").
		Pluck("courses.price", &prices).Error
	if err != nil {
		return nil, dbError(err, "enrollment")
	}
	return prices, nil
}

func (r *dashboardRepository) GetRecentTeachers(ctx context.Context, limit int) ([]domain.Teacher, error) {
	var teachers []domain.Teacher
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&teachers).Error; err != nil {
		return nil, dbError(err, "teacher")
	}
	return teachers, nil
}

func (r *dashboardRepository) GetRecentStudents(ctx context.Context, limit int) ([]domain.Student, error) {
	var students []domain.Student
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&students).Error; err != nil {
		return nil, dbError(err, "student")
	}
	return students, nil
}
