package repository

import (
	"context"

	"github.com/enzoobispoo/EduSystem/domain"
	"gorm.io/gorm"
)

type calendarRepository struct {
	db *gorm.DB
}

func NewCalendarRepository(db *gorm.DB) domain.CalendarRepository {
	return &calendarRepository{db: db}
}

func (r *calendarRepository) CreateEvent(ctx context.Context, event *domain.CalendarEvent) error {
	if err := r.db.WithContext(ctx).Omit("Teacher", "Course").Create(event).Error; err != nil {
		return dbError(err, "calendar event")
	}
	return nil
}

func (r *calendarRepository) GetEvents(ctx context.Context, filter domain.CalendarFilter) ([]domain.CalendarEvent, error) {
	var events []domain.CalendarEvent
	q := r.db.WithContext(ctx).Preload("Teacher").Preload("Course")
	if filter.From != nil {
		q = q.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("date <= ?", *filter.To)
	}
	if filter.TeacherID != "" {
		q = q.Where("teacher_id = ?", filter.TeacherID)
	}
	if filter.CourseID != "" {
		q = q.Where("course_id = ?", filter.CourseID)
	}
	if err := q.Order("date ASC, start_time ASC").Find(&events).Error; err != nil {
		return nil, dbError(err, "calendar event")
	}
	return events, nil
}

func (r *calendarRepository) GetEventByID(ctx context.Context, id string) (*domain.CalendarEvent, error) {
	var event domain.CalendarEvent
	err := r.db.WithContext(ctx).Preload("Teacher").Preload("Course").First(&event, "id = ?", id).Error
	if err != nil {
		return nil, dbError(err, "calendar event")
	}
	return &event, nil
}

func (r *calendarRepository) UpdateEvent(ctx context.Context, event *domain.CalendarEvent) error {
	res := r.db.WithContext(ctx).
		Model(&domain.CalendarEvent{}).
		Where("id = ?", event.ID).
		Updates(map[string]interface{}{
			"title":              event.Title,
			"description":        event.Description,
			"date":               event.Date,
			"start_time":         event.StartTime,
			"end_time":           event.EndTime,
			"teacher_id":         event.TeacherID,
			"course_id":          event.CourseID,
			"room":               event.Room,
			"category":           event.Category,
			"color":              event.Color,
			"recurrence_pattern": event.RecurrencePattern,
			"recurrence_end":     event.RecurrenceEnd,
		})
	if res.Error != nil {
		return dbError(res.Error, "calendar event")
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("calendar event")
	}
	return nil
}

func (r *calendarRepository) DeleteEvent(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.CalendarEvent{})
	if res.Error != nil {
		return dbError(res.Error, "calendar event")
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("calendar event")
	}
	return nil
}
