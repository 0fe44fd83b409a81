package service

import (
	"context"
	"fmt"

	"github.com/enzoobispoo/EduSystem/domain"
	"github.com/enzoobispoo/EduSystem/metrics"
	"github.com/enzoobispoo/EduSystem/queue"
	"github.com/rs/zerolog/log"
)

type notificationService struct {
	repo domain.NotificationRepository
}

func NewNotificationService(repo domain.NotificationRepository) domain.NotificationUseCase {
	return &notificationService{repo: repo}
}

func (s *notificationService) CreateNotification(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	if n.Title == "" || n.Message == "" {
		return nil, domain.Invalid("title and message are required")
	}
	if n.Category == "" {
		n.Category = domain.NotifySystem
	}
	if n.Icon == "" {
		n.Icon = "bell"
	}
	if n.Color == "" {
		n.Color = "blue"
	}
	if err := s.repo.CreateNotification(ctx, n); err != nil {
		return nil, err
	}
	metrics.NotificationsCreated.Inc()
	return n, nil
}

func (s *notificationService) GetLatestNotifications(ctx context.Context) ([]domain.Notification, error) {
	return s.repo.GetLatestNotifications(ctx, domain.NotificationFeedLimit)
}

func (s *notificationService) MarkAsRead(ctx context.Context, id string) (*domain.Notification, error) {
	return s.repo.MarkAsRead(ctx, id)
}

func (s *notificationService) MarkAllAsRead(ctx context.Context) (int64, error) {
	return s.repo.MarkAllAsRead(ctx)
}

func (s *notificationService) DeleteNotification(ctx context.Context, id string) error {
	return s.repo.DeleteNotification(ctx, id)
}

func (s *notificationService) HandleEvent(ctx context.Context, event domain.DomainEvent) error {
	n, ok := NotificationFor(event)
	if !ok {
		return fmt.Errorf("no notification template for event %q", event.Type)
	}
	_, err := s.CreateNotification(ctx, &n)
	return err
}

func strPtr(s string) *string { return &s }

// NotificationFor renders the feed entry for a domain event.
func NotificationFor(event domain.DomainEvent) (domain.Notification, bool) {
	switch event.Type {
	case domain.EventStudentRegistered:
		return domain.Notification{
			Title:    "New Student Registered",
			Message:  fmt.Sprintf("%s was registered in the system", event.Subject),
			Category: domain.NotifyStudent,
			Icon:     "user-plus",
			Color:    "green",
			URL:      strPtr("/students"),
		}, true
	case domain.EventEnrollmentCreated:
		return domain.Notification{
			Title:    "New Enrollment",
			Message:  fmt.Sprintf("%s enrolled in %s", event.Subject, event.Detail),
			Category: domain.NotifyStudent,
			Icon:     "book-open",
			Color:    "blue",
			URL:      strPtr("/students"),
		}, true
	case domain.EventEnrollmentPaid:
		amount := "0.00"
		if event.Amount != nil {
			amount = event.Amount.StringFixed(2)
		}
		return domain.Notification{
			Title:    "Payment Received",
			Message:  fmt.Sprintf("Received %s from %s for %s", amount, event.Subject, event.Detail),
			Category: domain.NotifyPayment,
			Icon:     "dollar-sign",
			Color:    "green",
			URL:      strPtr("/finance"),
		}, true
	case domain.EventTeacherRegistered:
		return domain.Notification{
			Title:    "New Teacher Registered",
			Message:  fmt.Sprintf("%s joined the team", event.Subject),
			Category: domain.NotifyTeacher,
			Icon:     "user-check",
			Color:    "purple",
			URL:      strPtr("/teachers"),
		}, true
	case domain.EventCourseCreated:
		return domain.Notification{
			Title:    "New Course Created",
			Message:  fmt.Sprintf("The course %q was added to the catalog", event.Subject),
			Category: domain.NotifyCourse,
			Icon:     "book",
			Color:    "yellow",
			URL:      strPtr("/courses"),
		}, true
	case domain.EventPayoutPaid:
		amount := "0.00"
		if event.Amount != nil {
			amount = event.Amount.StringFixed(2)
		}
		return domain.Notification{
			Title:    "Payout Paid",
			Message:  fmt.Sprintf("Paid %s to %s for %s", amount, event.Subject, event.Detail),
			Category: domain.NotifyFinance,
			Icon:     "dollar-sign",
			Color:    "blue",
			URL:      strPtr("/finance"),
		}, true
	case domain.EventPayoutsGenerated:
		return domain.Notification{
			Title:    "Payouts Generated",
			Message:  fmt.Sprintf("%d pending payouts generated for %s", event.Count, event.Subject),
			Category: domain.NotifyFinance,
			Icon:     "file-text",
			Color:    "orange",
			URL:      strPtr("/finance"),
		}, true
	}
	return domain.Notification{}, false
}

// RunNotificationWorker consumes domain events until ctx is done and stores their
// notifications. A failing event is logged and dropped.
func RunNotificationWorker(ctx context.Context, q queue.Queue, uc domain.NotificationUseCase) error {
	msgs, err := q.Consume(ctx)
	if err != nil {
		return err
	}
	log.Info().Msg("notification worker started")

	for msg := range msgs {
		event, err := queue.Decode(msg)
		if err != nil {
			log.Warn().Err(err).Str("type", msg.Type).Msg("dropping undecodable event")
			continue
		}
		if err := uc.HandleEvent(ctx, event); err != nil {
			log.Warn().Err(err).Str("event", event.Type).Msg("notification not stored")
		}
	}

	log.Info().Msg("notification worker stopped")
	return nil
}
