package service

import (
	"context"
	"time"

	"github.com/enzoobispoo/EduSystem/domain"
	"github.com/enzoobispoo/EduSystem/utils"
)

const (
	defaultOccurrenceLimit = 100
	maxOccurrenceLimit     = 366
)

type calendarService struct {
	repo     domain.CalendarRepository
	teachers domain.TeacherRepository
	courses  domain.CourseRepository
}

func NewCalendarService(repo domain.CalendarRepository, teachers domain.TeacherRepository, courses domain.CourseRepository) domain.CalendarUseCase {
	return &calendarService{repo: repo, teachers: teachers, courses: courses}
}

func (s *calendarService) validate(ctx context.Context, event *domain.CalendarEvent) error {
	if !utils.ClockBefore(event.StartTime, event.EndTime) {
		return domain.Invalid("end_time must be after start_time")
	}
	if event.Category == "" {
		event.Category = domain.EventClass
	}
	switch event.Category {
	case domain.EventClass, domain.EventMeeting, domain.EventEvent, domain.EventHoliday:
	default:
		return domain.Invalid("category must be one of: class meeting event holiday")
	}

	if event.RecurrencePattern != nil {
		switch *event.RecurrencePattern {
		case domain.RecurrenceDaily, domain.RecurrenceWeekly, domain.RecurrenceMonthly:
		default:
			return domain.Invalid("recurrence_pattern must be one of: daily weekly monthly")
		}
		if event.RecurrenceEnd == nil {
			return domain.Invalid("recurrence_end is required when recurrence_pattern is set")
		}
		if event.RecurrenceEnd.Before(event.Date) {
			return domain.Invalid("recurrence_end must not be before date")
		}
	} else {
		event.RecurrenceEnd = nil
	}

	if event.TeacherID != nil {
		if _, err := s.teachers.GetTeacherByID(ctx, *event.TeacherID); err != nil {
			return err
		}
	}
	if event.CourseID != nil {
		if _, err := s.courses.GetCourseByID(ctx, *event.CourseID); err != nil {
			return err
		}
	}
	return nil
}

func (s *calendarService) CreateEvent(ctx context.Context, event *domain.CalendarEvent) (*domain.CalendarEvent, error) {
	if err := s.validate(ctx, event); err != nil {
		return nil, err
	}
	if err := s.repo.CreateEvent(ctx, event); err != nil {
		return nil, err
	}
	return s.repo.GetEventByID(ctx, event.ID)
}

func (s *calendarService) GetEvents(ctx context.Context, filter domain.CalendarFilter) ([]domain.CalendarEvent, error) {
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, domain.Invalid("to must not be before from")
	}
	return s.repo.GetEvents(ctx, filter)
}

func (s *calendarService) GetEventByID(ctx context.Context, id string) (*domain.CalendarEvent, error) {
	return s.repo.GetEventByID(ctx, id)
}

// UpdateEvent also covers rescheduling: a new date or time range is just another edit.
func (s *calendarService) UpdateEvent(ctx context.Context, event *domain.CalendarEvent) (*domain.CalendarEvent, error) {
	if err := s.validate(ctx, event); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateEvent(ctx, event); err != nil {
		return nil, err
	}
	return s.repo.GetEventByID(ctx, event.ID)
}

func (s *calendarService) DeleteEvent(ctx context.Context, id string) error {
	return s.repo.DeleteEvent(ctx, id)
}

func (s *calendarService) GetOccurrences(ctx context.Context, id string, limit int) ([]time.Time, error) {
	if limit <= 0 {
		limit = defaultOccurrenceLimit
	}
	if limit > maxOccurrenceLimit {
		limit = maxOccurrenceLimit
	}

	event, err := s.repo.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}

	pattern := ""
	if event.RecurrencePattern != nil {
		pattern = *event.RecurrencePattern
	}

	dates := make([]time.Time, 0, 8)
	for date := range utils.Occurrences(event.Date, pattern, event.RecurrenceEnd) {
		dates = append(dates, date)
		if len(dates) == limit {
			break
		}
	}
	return dates, nil
}
