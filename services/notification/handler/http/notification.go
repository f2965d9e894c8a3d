package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cargolink/cargolink/internal/pkg/middleware"
	"github.com/cargolink/cargolink/internal/utils"
	"github.com/cargolink/cargolink/services/notification"
)

// NotificationHandler handles HTTP requests for notifications
type NotificationHandler struct {
	notificationUC notification.NotificationUC
}

// NewNotificationHandler creates a new notification HTTP handler
func NewNotificationHandler(notificationUC notification.NotificationUC) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: notificationUC,
	}
}

// RegisterRoutes registers the notification handler routes on an
// authenticated group.
func (h *NotificationHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/notifications", h.ListNotifications)
	g.POST("/notifications/read", h.MarkAllRead)
}

// ListNotifications returns the caller's notification feed
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing identity")
	}

	notifications, err := h.notificationUC.List(c.Request().Context(), actor)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "notifications listed", notifications)
}

// MarkAllRead flags the caller's unread notifications
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "missing identity")
	}

	if err := h.notificationUC.MarkAllRead(c.Request().Context(), actor); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "notifications marked read", nil)
}
