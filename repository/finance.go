package repository

import (
	"context"
	"time"

	"github.com/enzoobispoo/EduSystem/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type financeRepository struct {
	db *gorm.DB
}

func NewFinanceRepository(db *gorm.DB) domain.FinanceRepository {
	return &financeRepository{db: db}
}

func (r *financeRepository) GetEnrollmentsBetween(ctx context.Context, from, to time.Time, status string) ([]domain.Enrollment, error) {
	var enrollments []domain.Enrollment
	q := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Course").
		Where("enrolled_at >= ? AND enrolled_at < ?", from, to)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Order("enrolled_at DESC").Find(&enrollments).Error; err != nil {
		return nil, dbError(err, "enrollment")
	}
	return enrollments, nil
}

func (r *financeRepository) GetPayoutsForPeriod(ctx context.Context, month, year int, status string) ([]domain.Payout, error) {
	var payouts []domain.Payout
	q := r.db.WithContext(ctx).
		Preload("Teacher").
		Where("month = ? AND year = ?", month, year)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Order("created_at DESC").Find(&payouts).Error; err != nil {
		return nil, dbError(err, "payout")
	}
	return payouts, nil
}

func (r *financeRepository) CountPayouts(ctx context.Context, month, year int, status string) (int64, error) {
	var count int64
	q := r.db.WithContext(ctx).
		Model(&domain.Payout{}).
		Where("month = ? AND year = ?", month, year)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, dbError(err, "payout")
	}
	return count, nil
}

func (r *financeRepository) CountActiveStudents(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Student{}).
		Where("status = ?", domain.StatusActive).
		Count(&count).Error
	if err != nil {
		return 0, dbError(err, "student")
	}
	return count, nil
}

// CreatePayoutIfAbsent relies on the (teacher_id, month, year) unique index, so two
// concurrent generators for the same period write a single row.
func (r *financeRepository) CreatePayoutIfAbsent(ctx context.Context, payout *domain.Payout) (bool, error) {
	res := r.db.WithContext(ctx).
		Omit("Teacher").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "teacher_id"}, {Name: "month"}, {Name: "year"}},
			DoNothing: true,
		}).
		Create(payout)
	if res.Error != nil {
		return false, dbError(res.Error, "payout")
	}
	return res.RowsAffected == 1, nil
}

func (r *financeRepository) UpdateEnrollmentStatus(ctx context.Context, id, status string) (*domain.Enrollment, error) {
	var enrollment domain.Enrollment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&enrollment, "id = ?", id).Error; err != nil {
			return dbError(err, "enrollment")
		}
		if err := tx.Model(&enrollment).Update("status", status).Error; err != nil {
			return dbError(err, "enrollment")
		}
		return dbError(tx.Preload("Student").Preload("Course").First(&enrollment, "id = ?", id).Error, "enrollment")
	})
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *financeRepository) UpdatePayoutStatus(ctx context.Context, id, status string) (*domain.Payout, error) {
	var payout domain.Payout
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&payout, "id = ?", id).Error; err != nil {
			return dbError(err, "payout")
		}
		if err := tx.Model(&payout).Update("status", status).Error; err != nil {
			return dbError(err, "payout")
		}
		return dbError(tx.Preload("Teacher").First(&payout, "id = ?", id).Error, "payout")
	})
	if err != nil {
		return nil, err
	}
	return &payout, nil
}
