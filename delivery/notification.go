package delivery

import (
	"net/http"

	"github.com/enzoobispoo/EduSystem/domain"
	"github.com/enzoobispoo/EduSystem/dto"
	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	uc domain.NotificationUseCase
}

func NewNotificationHandler(r gin.IRouter, uc domain.NotificationUseCase) {
	h := &NotificationHandler{uc: uc}

	notifications := r.Group("/notifications")
	{
		notifications.GET("", h.GetLatestNotifications)
		notifications.POST("", h.CreateNotification)
		notifications.POST("/read-all", h.MarkAllAsRead)
		notifications.PUT("/:id/read", h.MarkAsRead)
		notifications.DELETE("/:id", h.DeleteNotification)
	}
}

func (h *NotificationHandler) GetLatestNotifications(c *gin.Context) {
	notifications, err := h.uc.GetLatestNotifications(c.Request.Context())
	if err != nil {
		respondError(c, "GetLatestNotifications", "Failed to get notifications", err)
		return
	}
	respondData(c, http.StatusOK, "GetLatestNotifications", notifications)
}

func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	var req dto.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "CreateNotification", "Failed to create notification", err)
		return
	}
	notification, err := h.uc.CreateNotification(c.Request.Context(), dto.MapCreateNotificationRequest(&req))
	if err != nil {
		respondError(c, "CreateNotification", "Failed to create notification", err)
		return
	}
	respondData(c, http.StatusCreated, "CreateNotification", notification)
}

func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	notification, err := h.uc.MarkAsRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "MarkAsRead", "Failed to mark notification as read", err)
		return
	}
	respondData(c, http.StatusOK, "MarkAsRead", notification)
}

func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	updated, err := h.uc.MarkAllAsRead(c.Request.Context())
	if err != nil {
		respondError(c, "MarkAllAsRead", "Failed to mark notifications as read", err)
		return
	}
	respondData(c, http.StatusOK, "MarkAllAsRead", gin.H{"updated": updated})
}

func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	if err := h.uc.DeleteNotification(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "DeleteNotification", "Failed to delete notification", err)
		return
	}
	respondMessage(c, "DeleteNotification", "Notification deleted successfully")
}
