package repository

import (
	"context"

	"github.com/enzoobispoo/EduSystem/domain"
	"gorm.io/gorm"
)

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) domain.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) CreateNotification(ctx context.Context, notification *domain.Notification) error {
	if err := r.db.WithContext(ctx).Create(notification).Error; err != nil {
		return dbError(err, "notification")
	}
	return nil
}

func (r *notificationRepository) GetLatestNotifications(ctx context.Context, limit int) ([]domain.Notification, error) {
	var notifications []domain.Notification
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, dbError(err, "notification")
	}
	return notifications, nil
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id string) (*domain.Notification, error) {
	var notification domain.Notification
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&notification, "id = ?", id).Error; err != nil {
			return dbError(err, "notification")
		}
		return dbError(tx.Model(&notification).Update("read", true).Error, "notification")
	})
	if err != nil {
		return nil, err
	}
	notification.Read = true
	return &notification, nil
}

func (r *notificationRepository) MarkAllAsRead(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("read = ?", false).
		Update("read", true)
	if res.Error != nil {
		return 0, dbError(res.Error, "notification")
	}
	return res.RowsAffected, nil
}

func (r *notificationRepository) DeleteNotification(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Notification{})
	if res.Error != nil {
		return dbError(res.Error, "notification")
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("notification")
	}
	return nil
}
