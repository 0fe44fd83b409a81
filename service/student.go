package service

import (
	"context"

	"github.com/enzoobispoo/EduSystem/domain"
	"github.com/enzoobispoo/EduSystem/utils"
)

type studentService struct {
	repo    domain.StudentRepository
	courses domain.CourseRepository
	events  domain.EventPublisher
}

func NewStudentService(repo domain.StudentRepository, courses domain.CourseRepository, events domain.EventPublisher) domain.StudentUseCase {
	return &studentService{repo: repo, courses: courses, events: events}
}

func (s *studentService) checkDuplicate(ctx context.Context, student *domain.Student) error {
	dup, err := s.repo.FindDuplicate(ctx, student.Email, student.NationalID, student.ID)
	if err != nil {
		return err
	}
	if dup == nil {
		return nil
	}
	if dup.Email == student.Email {
		return domain.Conflict("a student with this email already exists")
	}
	return domain.Conflict("a student with this national id already exists")
}

func normalizeStudent(student *domain.Student) {
	student.Name = utils.NormalizeName(student.Name)
	student.Email = utils.NormalizeEmail(student.Email)
	if student.Status == "" {
		student.Status = domain.StatusActive
	}
}

// RegisterStudent creates the student together with one enrollment per course.
func (s *studentService) RegisterStudent(ctx context.Context, student *domain.Student, courseIDs []string, paymentStatus string) (*domain.Student, error) {
	normalizeStudent(student)
	if paymentStatus == "" {
		paymentStatus = domain.PaymentPending
	}
	if !validPaymentStatus(paymentStatus) {
		return nil, domain.Invalid("payment_status must be one of: pending paid")
	}
	if err := s.checkDuplicate(ctx, student); err != nil {
		return nil, err
	}

	ids := uniqueIDs(courseIDs)
	courses, err := s.courses.GetCoursesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(courses) != len(ids) {
		return nil, domain.NotFound("course")
	}

	enrollments := make([]domain.Enrollment, 0, len(courses))
	for _, c := range courses {
		enrollments = append(enrollments, domain.Enrollment{CourseID: c.ID, Status: paymentStatus})
	}
	if err := s.repo.CreateStudent(ctx, student, enrollments); err != nil {
		return nil, err
	}

	for i := range student.Enrollments {
		course := courses[i]
		student.Enrollments[i].Course = &course
		publish(ctx, s.events, domain.DomainEvent{
			Type:    domain.EventEnrollmentCreated,
			Subject: student.Name,
			Detail:  course.Name,
		})
	}
	publish(ctx, s.events, domain.DomainEvent{Type: domain.EventStudentRegistered, Subject: student.Name})
	return student, nil
}

func (s *studentService) GetAllStudents(ctx context.Context) ([]domain.Student, error) {
	return s.repo.GetAllStudents(ctx)
}

func (s *studentService) GetStudentByID(ctx context.Context, id string) (*domain.Student, error) {
	return s.repo.GetStudentByID(ctx, id)
}

func (s *studentService) UpdateStudent(ctx context.Context, student *domain.Student) (*domain.Student, error) {
	current, err := s.repo.GetStudentByID(ctx, student.ID)
	if err != nil {
		return nil, err
	}
	if student.Status == "" {
		student.Status = current.Status
	}
	normalizeStudent(student)
	if err := s.checkDuplicate(ctx, student); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStudent(ctx, student); err != nil {
		return nil, err
	}
	return s.repo.GetStudentByID(ctx, student.ID)
}

func (s *studentService) DeleteStudent(ctx context.Context, id string) error {
	return s.repo.DeleteStudent(ctx, id)
}

func (s *studentService) EnrollStudent(ctx context.Context, studentID, courseID, paymentStatus string) (*domain.Enrollment, error) {
	if paymentStatus == "" {
		paymentStatus = domain.PaymentPending
	}
	if !validPaymentStatus(paymentStatus) {
		return nil, domain.Invalid("payment_status must be one of: pending paid")
	}

	student, err := s.repo.GetStudentByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	course, err := s.courses.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	exists, err := s.repo.EnrollmentExists(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.Conflict("student is already enrolled in this course")
	}

	enrollment := &domain.Enrollment{StudentID: student.ID, CourseID: course.ID, Status: paymentStatus}
	if err := s.repo.CreateEnrollment(ctx, enrollment); err != nil {
		return nil, err
	}
	enrollment.Course = &domain.Course{Base: course.Base, Name: course.Name, Price: course.Price, Category: course.Category}

	publish(ctx, s.events, domain.DomainEvent{
		Type:    domain.EventEnrollmentCreated,
		Subject: student.Name,
		Detail:  course.Name,
	})
	return enrollment, nil
}
