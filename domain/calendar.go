package domain

import (
	"context"
	"time"
)

type CalendarFilter struct {
	From      *time.Time
	To        *time.Time
	TeacherID string
	CourseID  string
}

type CalendarUseCase interface {
	CreateEvent(ctx context.Context, event *CalendarEvent) (*CalendarEvent, error)
	GetEvents(ctx context.Context, filter CalendarFilter) ([]CalendarEvent, error)
	GetEventByID(ctx context.Context, id string) (*CalendarEvent, error)
	UpdateEvent(ctx context.Context, event *CalendarEvent) (*CalendarEvent, error)
	DeleteEvent(ctx context.Context, id string) error
	// GetOccurrences expands the event's recurrence, at most limit dates.
	GetOccurrences(ctx context.Context, id string, limit int) ([]time.Time, error)
}

type CalendarRepository interface {
	CreateEvent(ctx context.Context, event *CalendarEvent) error
	GetEvents(ctx context.Context, filter CalendarFilter) ([]CalendarEvent, error)
	GetEventByID(ctx context.Context, id string) (*CalendarEvent, error)
	UpdateEvent(ctx context.Context, event *CalendarEvent) error
	DeleteEvent(ctx context.Context, id string) error
}
