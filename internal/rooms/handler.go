package rooms

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// RoomHandler handles HTTP requests for the room catalog.
type RoomHandler struct {
	service *RoomService
}

// NewRoomHandler creates a new RoomHandler.
func NewRoomHandler(service *RoomService) *RoomHandler {
	return &RoomHandler{service: service}
}

// EligibleRoomsRequest represents the request to filter conflict-free rooms.
type EligibleRoomsRequest struct {
	Windows []ExamSubjectWindow `json:"windows" validate:"required,min=1,dive"` // Proposed subject time slots
}

// ListRooms returns all active rooms for the planning UI.
func (h *RoomHandler) ListRooms(c echo.Context) error {
	rooms, err := h.service.ListRooms(context.Background())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rooms)
}

// EligibleRooms returns the rooms free of scheduling conflicts against the
// proposed exam's subject windows.
func (h *RoomHandler) EligibleRooms(c echo.Context) error {
	var req EligibleRoomsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	for _, w := range req.Windows {
		if !w.EndTime.After(w.StartTime) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Window end time must be after start time"})
		}
	}

	eligible, err := h.service.EligibleRooms(context.Background(), req.Windows)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, eligible)
}
