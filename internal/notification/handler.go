package notification

import (
	"context"
	"net/http"

	"github.com/datachef-lab/academic360-sub015/internal/seating"
	"github.com/labstack/echo/v4"
)

// NotificationHandler handles HTTP requests for seat notifications.
type NotificationHandler struct {
	service *NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(service *NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// SendSeatNoticesRequest carries an accepted seating plan's assignments.
type SendSeatNoticesRequest struct {
	ExamName string                   `json:"exam_name" validate:"required"`      // Display name used in the email subject
	Assigned []seating.SeatAssignment `json:"assigned" validate:"required,min=1"` // Accepted plan's seat assignments
}

// SendSeatNotices emails every assigned candidate their seat.
func (h *NotificationHandler) SendSeatNotices(c echo.Context) error {
	var req SendSeatNoticesRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	report, err := h.service.SendSeatNotices(context.Background(), req.ExamName, req.Assigned)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to send seat notices"})
	}
	return c.JSON(http.StatusOK, report)
}
