package service

import (
	"context"

	"github.com/enzoobispoo/EduSystem/domain"
	"github.com/enzoobispoo/EduSystem/utils"
)

type courseService struct {
	repo   domain.CourseRepository
	events domain.EventPublisher
}

func NewCourseService(repo domain.CourseRepository, events domain.EventPublisher) domain.CourseUseCase {
	return &courseService{repo: repo, events: events}
}

func validateCourse(course *domain.Course) error {
	course.Name = utils.NormalizeName(course.Name)
	if course.Category == "" {
		course.Category = domain.CategoryGames
	}
	switch course.Category {
	case domain.CategoryGames, domain.CategoryRobotics, domain.CategoryExtracurricular, domain.CategoryCurricular:
	default:
		return domain.Invalid("category must be one of: games robotics extracurricular curricular")
	}
	if course.Price.IsNegative() {
		return domain.Invalid("price must not be negative")
	}
	if course.EndDate.Before(course.StartDate) {
		return domain.Invalid("end_date must not be before start_date")
	}
	return nil
}

func (s *courseService) CreateCourse(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	if err := validateCourse(course); err != nil {
		return nil, err
	}
	if err := s.repo.CreateCourse(ctx, course); err != nil {
		return nil, err
	}
	publish(ctx, s.events, domain.DomainEvent{Type: domain.EventCourseCreated, Subject: course.Name})
	return course, nil
}

func (s *courseService) GetAllCourses(ctx context.Context) ([]domain.Course, error) {
	return s.repo.GetAllCourses(ctx)
}

func (s *courseService) GetCourseByID(ctx context.Context, id string) (*domain.Course, error) {
	return s.repo.GetCourseByID(ctx, id)
}

func (s *courseService) UpdateCourse(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	if err := validateCourse(course); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateCourse(ctx, course); err != nil {
		return nil, err
	}
	return s.repo.GetCourseByID(ctx, course.ID)
}

func (s *courseService) DeleteCourse(ctx context.Context, id string) error {
	return s.repo.DeleteCourse(ctx, id)
}
