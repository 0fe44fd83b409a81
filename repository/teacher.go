package repository

import (
	"context"
	"errors"

	"github.com/enzoobispoo/EduSystem/domain"
	"github.com/enzoobispoo/EduSystem/utils"
	"gorm.io/gorm"
)

type teacherRepository struct {
	db *gorm.DB
}

func NewTeacherRepository(db *gorm.DB) domain.TeacherRepository {
	return &teacherRepository{db: db}
}

func courseRefs(ids []string) []domain.Course {
	courses := make([]domain.Course, len(ids))
	for i, id := range ids {
		courses[i] = domain.Course{Base: domain.Base{ID: id}}
	}
	return courses
}

func (r *teacherRepository) CreateTeacher(ctx context.Context, teacher *domain.Teacher, courseIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Courses", "Payouts").Create(teacher).Error; err != nil {
			return dbError(err, "teacher")
		}
		if len(courseIDs) == 0 {
			return nil
		}
		refs := courseRefs(courseIDs)
		if err := tx.Model(teacher).Omit("Courses.*").Association("Courses").Append(&refs); err != nil {
			return dbError(err, "course")
		}
		teacher.Courses = refs
		return nil
	})
}

func (r *teacherRepository) GetAllTeachers(ctx context.Context, period utils.Period) ([]domain.Teacher, error) {
	var teachers []domain.Teacher
	err := r.db.WithContext(ctx).
		Preload("Courses").
		Preload("Payouts", "month = ? AND year = ?", period.Month, period.Year).
		Order("name ASC").
		Find(&teachers).Error
	if err != nil {
		return nil, dbError(err, "teacher")
	}
	return teachers, nil
}

func (r *teacherRepository) GetTeacherByID(ctx context.Context, id string) (*domain.Teacher, error) {
	var teacher domain.Teacher
	err := r.db.WithContext(ctx).
		Preload("Courses").
		Preload("Payouts", func(db *gorm.DB) *gorm.DB {
			return db.Order("year DESC, month DESC")
		}).
		First(&teacher, "id = ?", id).Error
	if err != nil {
		return nil, dbError(err, "teacher")
	}
	return &teacher, nil
}

func (r *teacherRepository) FindDuplicate(ctx context.Context, email, nationalID, excludeID string) (*domain.Teacher, error) {
	var teacher domain.Teacher
	q := r.db.WithContext(ctx).Where("(email = ? OR national_id = ?)", email, nationalID)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.First(&teacher).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, dbError(err, "teacher")
	}
	return &teacher, nil
}

func (r *teacherRepository) UpdateTeacher(ctx context.Context, teacher *domain.Teacher, courseIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Teacher{}).
			Where("id = ?", teacher.ID).
			Updates(map[string]interface{}{
				"name":         teacher.Name,
				"email":        teacher.Email,
				"phone":        teacher.Phone,
				"national_id":  teacher.NationalID,
				"payout_type":  teacher.PayoutType,
				"hourly_rate":  teacher.HourlyRate,
				"student_rate": teacher.StudentRate,
				"status":       teacher.Status,
			})
		if res.Error != nil {
			return dbError(res.Error, "teacher")
		}
		if res.RowsAffected == 0 {
			return domain.NotFound("teacher")
		}
		if courseIDs == nil {
			return nil
		}
		refs := courseRefs(courseIDs)
		if err := tx.Model(teacher).Omit("Courses.*").Association("Courses").Replace(&refs); err != nil {
			return dbError(err, "course")
		}
		return nil
	})
}

// DeleteTeacher removes payouts and course links and detaches calendar events.
func (r *teacherRepository) DeleteTeacher(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("teacher_id = ?", id).Delete(&domain.Payout{}).Error; err != nil {
			return dbError(err, "payout")
		}
		if err := tx.Exec("DELETE FROM teacher_courses WHERE teacher_id = ?", id).Error; err != nil {
			return dbError(err, "teacher")
		}
		if err := tx.Model(&domain.CalendarEvent{}).Where("teacher_id = ?", id).Update("teacher_id", nil).Error; err != nil {
			return dbError(err, "calendar event")
		}
		res := tx.Where("id = ?", id).Delete(&domain.Teacher{})
		if res.Error != nil {
			return dbError(res.Error, "teacher")
		}
		if res.RowsAffected == 0 {
			return domain.NotFound("teacher")
		}
		return nil
	})
}

func (r *teacherRepository) GetActiveTeachers(ctx context.Context) ([]domain.Teacher, error) {
	var teachers []domain.Teacher
	err := r.db.WithContext(ctx).
		Where("status = ?", domain.StatusActive).
		Order("created_at ASC").
		Find(&teachers).Error
	if err != nil {
		return nil, dbError(err, "teacher")
	}
	return teachers, nil
}
