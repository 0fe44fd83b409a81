package service

import (
	"context"
	"time"

	"github.com/enzoobispoo/EduSystem/domain"
	"github.com/enzoobispoo/EduSystem/utils"
	"github.com/rs/zerolog/log"
)

type teacherService struct {
	repo      domain.TeacherRepository
	courses   domain.CourseRepository
	generator domain.PayoutGenerator
	events    domain.EventPublisher
	loc       *time.Location
}

func NewTeacherService(repo domain.TeacherRepository, courses domain.CourseRepository, generator domain.PayoutGenerator, events domain.EventPublisher, loc *time.Location) domain.TeacherUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &teacherService{repo: repo, courses: courses, generator: generator, events: events, loc: loc}
}

func (s *teacherService) prepare(ctx context.Context, teacher *domain.Teacher, courseIDs []string) error {
	teacher.Name = utils.NormalizeName(teacher.Name)
	teacher.Email = utils.NormalizeEmail(teacher.Email)
	if teacher.PayoutType == "" {
		teacher.PayoutType = domain.PayoutPerStudent
	}
	if teacher.Status == "" {
		teacher.Status = domain.StatusActive
	}
	if teacher.PayoutType != domain.PayoutPerHour && teacher.PayoutType != domain.PayoutPerStudent {
		return domain.Invalid("payout_type must be one of: per_hour per_student")
	}

	dup, err := s.repo.FindDuplicate(ctx, teacher.Email, teacher.NationalID, teacher.ID)
	if err != nil {
		return err
	}
	if dup != nil {
		if dup.Email == teacher.Email {
			return domain.Conflict("a teacher with this email already exists")
		}
		return domain.Conflict("a teacher with this national id already exists")
	}
	return ensureCourses(ctx, s.courses, courseIDs)
}

// ensureCourses fails with NotFound unless every id names an existing course.
func ensureCourses(ctx context.Context, repo domain.CourseRepository, ids []string) error {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil
	}
	found, err := repo.GetCoursesByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(found) != len(ids) {
		return domain.NotFound("course")
	}
	return nil
}

func uniqueIDs(ids []string) []string {
	if ids == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// CreateTeacher stores the teacher and then generates the current month's payout.
// A failed payout is logged and leaves the teacher in place.
func (s *teacherService) CreateTeacher(ctx context.Context, teacher *domain.Teacher, courseIDs []string) (*domain.Teacher, error) {
	if err := s.prepare(ctx, teacher, courseIDs); err != nil {
		return nil, err
	}
	if err := s.repo.CreateTeacher(ctx, teacher, uniqueIDs(courseIDs)); err != nil {
		return nil, err
	}

	period := utils.CurrentPeriod(time.Now(), s.loc)
	payout, created, err := s.generator.GenerateForTeacher(ctx, *teacher, period)
	switch {
	case err != nil:
		log.Error().Err(err).Str("teacher", teacher.ID).Str("period", period.String()).Msg("automatic payout failed")
	case created:
		teacher.Payouts = append(teacher.Payouts, *payout)
	}

	publish(ctx, s.events, domain.DomainEvent{Type: domain.EventTeacherRegistered, Subject: teacher.Name})
	return teacher, nil
}

func (s *teacherService) GetAllTeachers(ctx context.Context) ([]domain.Teacher, error) {
	return s.repo.GetAllTeachers(ctx, utils.CurrentPeriod(time.Now(), s.loc))
}

func (s *teacherService) GetTeacherByID(ctx context.Context, id string) (*domain.Teacher, error) {
	return s.repo.GetTeacherByID(ctx, id)
}

func (s *teacherService) UpdateTeacher(ctx context.Context, teacher *domain.Teacher, courseIDs []string) (*domain.Teacher, error) {
	current, err := s.repo.GetTeacherByID(ctx, teacher.ID)
	if err != nil {
		return nil, err
	}
	if teacher.PayoutType == "" {
		teacher.PayoutType = current.PayoutType
	}
	if teacher.Status == "" {
		teacher.Status = current.Status
	}
	if teacher.HourlyRate == nil {
		teacher.HourlyRate = current.HourlyRate
	}
	if teacher.StudentRate == nil {
		teacher.StudentRate = current.StudentRate
	}
	if err := s.prepare(ctx, teacher, courseIDs); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateTeacher(ctx, teacher, uniqueIDs(courseIDs)); err != nil {
		return nil, err
	}
	return s.repo.GetTeacherByID(ctx, teacher.ID)
}

func (s *teacherService) DeleteTeacher(ctx context.Context, id string) error {
	return s.repo.DeleteTeacher(ctx, id)
}
