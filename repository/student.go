package repository

import (
	"context"
	"errors"

	"github.com/enzoobispoo/EduSystem/domain"
	"gorm.io/gorm"
)

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) domain.StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) CreateStudent(ctx context.Context, student *domain.Student, enrollments []domain.Enrollment) error {
	tx := r.db.WithContext(ctx).Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Omit("Enrollments").Create(student).Error; err != nil {
		tx.Rollback()
		return dbError(err, "student")
	}

	for i := range enrollments {
		enrollments[i].StudentID = student.ID
	}
	if len(enrollments) > 0 {
		if err := tx.Omit("Student", "Course").Create(&enrollments).Error; err != nil {
			tx.Rollback()
			return dbError(err, "enrollment")
		}
	}

	if err := tx.Commit().Error; err != nil {
		return dbError(err, "student")
	}
	student.Enrollments = enrollments
	return nil
}

func (r *studentRepository) GetAllStudents(ctx context.Context) ([]domain.Student, error) {
	var students []domain.Student
	err := r.db.WithContext(ctx).
		Preload("Enrollments").
		Preload("Enrollments.Course").
		Order("created_at DESC").
		Find(&students).Error
	if err != nil {
		return nil, dbError(err, "student")
	}
	return students, nil
}

func (r *studentRepository) GetStudentByID(ctx context.Context, id string) (*domain.Student, error) {
	var student domain.Student
	err := r.db.WithContext(ctx).
		Preload("Enrollments").
		Preload("Enrollments.Course").
		First(&student, "id = ?", id).Error
	if err != nil {
		return nil, dbError(err, "student")
	}
	return &student, nil
}

func (r *studentRepository) FindDuplicate(ctx context.Context, email, nationalID, excludeID string) (*domain.Student, error) {
	var student domain.Student
	q := r.db.WithContext(ctx).Where("(email = ? OR national_id = ?)", email, nationalID)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.First(&student).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, dbError(err, "student")
	}
	return &student, nil
}

func (r *studentRepository) UpdateStudent(ctx context.Context, student *domain.Student) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Student{}).
		Where("id = ?", student.ID).
		Updates(map[string]interface{}{
			"name":        student.Name,
			"email":       student.Email,
			"phone":       student.Phone,
			"national_id": student.NationalID,
			"status":      student.Status,
		})
	if res.Error != nil {
		return dbError(res.Error, "student")
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("student")
	}
	return nil
}

// DeleteStudent removes the student and its enrollments.
func (r *studentRepository) DeleteStudent(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_id = ?", id).Delete(&domain.Enrollment{}).Error; err != nil {
			return dbError(err, "enrollment")
		}
		res := tx.Where("id = ?", id).Delete(&domain.Student{})
		if res.Error != nil {
			return dbError(res.Error, "student")
		}
		if res.RowsAffected == 0 {
			return domain.NotFound("student")
		}
		return nil
	})
}

func (r *studentRepository) CreateEnrollment(ctx context.Context, enrollment *domain.Enrollment) error {
	if err := r.db.WithContext(ctx).Omit("Student", "Course").Create(enrollment).Error; err != nil {
		return dbError(err, "enrollment")
	}
	return nil
}

func (r *studentRepository) EnrollmentExists(ctx context.Context, studentID, courseID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Enrollment{}).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		Count(&count).Error
	if err != nil {
		return false, dbError(err, "enrollment")
	}
	return count > 0, nil
}
