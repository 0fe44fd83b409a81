package domain

import (
	"context"
)

type StudentUseCase interface {
	RegisterStudent(ctx context.Context, student *Student, courseIDs []string, paymentStatus string) (*Student, error)
	GetAllStudents(ctx context.Context) ([]Student, error)
	GetStudentByID(ctx context.Context, id string) (*Student, error)
	UpdateStudent(ctx context.Context, student *Student) (*Student, error)
	DeleteStudent(ctx context.Context, id string) error
	EnrollStudent(ctx context.Context, studentID, courseID, paymentStatus string) (*Enrollment, error)
}

type StudentRepository interface {
	// CreateStudent stores the student and its initial enrollments in one transaction.
	CreateStudent(ctx context.Context, student *Student, enrollments []Enrollment) error
	GetAllStudents(ctx context.Context) ([]Student, error)
	GetStudentByID(ctx context.Context, id string) (*Student, error)
	// FindDuplicate returns a student other than excludeID sharing the email or national id.
	FindDuplicate(ctx context.Context, email, nationalID, excludeID string) (*Student, error)
	UpdateStudent(ctx context.Context, student *Student) error
	DeleteStudent(ctx context.Context, id string) error

	CreateEnrollment(ctx context.Context, enrollment *Enrollment) error
	EnrollmentExists(ctx context.Context, studentID, courseID string) (bool, error)
}
