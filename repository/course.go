package repository

import (
	"context"

	"github.com/enzoobispoo/EduSystem/domain"
	"gorm.io/gorm"
)

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) domain.CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) CreateCourse(ctx context.Context, course *domain.Course) error {
	if err := r.db.WithContext(ctx).Omit("Enrollments", "Teachers").Create(course).Error; err != nil {
		return dbError(err, "course")
	}
	return nil
}

func (r *courseRepository) GetAllCourses(ctx context.Context) ([]domain.Course, error) {
	var courses []domain.Course
	err := r.db.WithContext(ctx).
		Preload("Enrollments").
		Preload("Enrollments.Student").
		Preload("Teachers").
		Order("start_date ASC").
		Find(&courses).Error
	if err != nil {
		return nil, dbError(err, "course")
	}
	return courses, nil
}

func (r *courseRepository) GetCourseByID(ctx context.Context, id string) (*domain.Course, error) {
	var course domain.Course
	err := r.db.WithContext(ctx).
		Preload("Enrollments").
		Preload("Enrollments.Student").
		Preload("Teachers").
		First(&course, "id = ?", id).Error
	if err != nil {
		return nil, dbError(err, "course")
	}
	return &course, nil
}

func (r *courseRepository) GetCoursesByIDs(ctx context.Context, ids []string) ([]domain.Course, error) {
	var courses []domain.Course
	if len(ids) == 0 {
		return courses, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&courses).Error; err != nil {
		return nil, dbError(err, "course")
	}
	return courses, nil
}

func (r *courseRepository) UpdateCourse(ctx context.Context, course *domain.Course) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Course{}).
		Where("id = ?", course.ID).
		Updates(map[string]interface{}{
			"name":        course.Name,
			"description": course.Description,
			"price":       course.Price,
			"category":    course.Category,
			"start_date":  course.StartDate,
			"end_date":    course.EndDate,
		})
	if res.Error != nil {
		return dbError(res.Error, "course")
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("course")
	}
	return nil
}

// DeleteCourse removes enrollments and teacher links and detaches calendar events.
func (r *courseRepository) DeleteCourse(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", id).Delete(&domain.Enrollment{}).Error; err != nil {
			return dbError(err, "enrollment")
		}
		if err := tx.Exec("DELETE FROM teacher_courses WHERE course_id = ?", id).Error; err != nil {
			return dbError(err, "course")
		}
		if err := tx.Model(&domain.CalendarEvent{}).Where("course_id = ?", id).Update("course_id", nil).Error; err != nil {
			return dbError(err, "calendar event")
		}
		res := tx.Where("id = ?", id).Delete(&domain.Course{})
		if res.Error != nil {
			return dbError(res.Error, "course")
		}
		if res.RowsAffected == 0 {
			return domain.NotFound("course")
		}
		return nil
	})
}
