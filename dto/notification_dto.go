package dto

import "github.com/enzoobispoo/EduSystem/domain"

type CreateNotificationRequest struct {
	Title    string  `json:"title" binding:"required,max=150"`
	Message  string  `json:"message" binding:"required"`
	Category string  `json:"category" binding:"omitempty,oneof=student teacher course payment finance system"`
	Icon     string  `json:"icon" binding:"omitempty,max=30"`
	Color    string  `json:"color" binding:"omitempty,max=20"`
	URL      *string `json:"url" binding:"omitempty,max=255"`
}

func MapCreateNotificationRequest(req *CreateNotificationRequest) *domain.Notification {
	return &domain.Notification{
		Title:    req.Title,
		Message:  req.Message,
		Category: req.Category,
		Icon:     req.Icon,
		Color:    req.Color,
		URL:      req.URL,
	}
}
