package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventStudentRegistered = "student.registered"
	EventEnrollmentCreated = "enrollment.created"
	EventEnrollmentPaid    = "enrollment.paid"
	EventTeacherRegistered = "teacher.registered"
	EventCourseCreated     = "course.created"
	EventPayoutPaid        = "payout.paid"
	EventPayoutsGenerated  = "payouts.generated"
)

// DomainEvent describes something that happened to the ledger or the registry.
// Subject is the main name involved, Detail a secondary one (course, origin).
type DomainEvent struct {
	Type       string           `json:"type"`
	Subject    string           `json:"subject"`
	Detail     string           `json:"detail,omitempty"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	Count      int              `json:"count,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// EventPublisher hands events to the asynchronous side-effect pipeline.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
}

type NotificationUseCase interface {
	CreateNotification(ctx context.Context, notification *Notification) (*Notification, error)
	GetLatestNotifications(ctx context.Context) ([]Notification, error)
	MarkAsRead(ctx context.Context, id string) (*Notification, error)
	MarkAllAsRead(ctx context.Context) (int64, error)
	DeleteNotification(ctx context.Context, id string) error
	// HandleEvent turns a domain event into a stored notification.
	HandleEvent(ctx context.Context, event DomainEvent) error
}

type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification *Notification) error
	GetLatestNotifications(ctx context.Context, limit int) ([]Notification, error)
	MarkAsRead(ctx context.Context, id string) (*Notification, error)
	MarkAllAsRead(ctx context.Context) (int64, error)
	DeleteNotification(ctx context.Context, id string) error
}
