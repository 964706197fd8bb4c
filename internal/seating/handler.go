package seating

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/datachef-lab/academic360-sub015/internal/population"
	"github.com/datachef-lab/academic360-sub015/internal/rooms"
	"github.com/labstack/echo/v4"
)

// SeatingHandler handles HTTP requests for seat assignment.
type SeatingHandler struct {
	service *SeatingService
}

// NewSeatingHandler creates a new SeatingHandler.
func NewSeatingHandler(service *SeatingService) *SeatingHandler {
	return &SeatingHandler{service: service}
}

// AssignSeatsRequest represents the request to assign seats to the eligible
// population. Rooms are filled in the order given here.
type AssignSeatsRequest struct {
	population.FilterSpec
	AssignBy population.AssignBy         `json:"assign_by" validate:"required,oneof=UID REGISTRATION_NUMBER"` // Ordering/matching key
	Rooms    []rooms.RoomAssignmentInput `json:"rooms" validate:"required"`                                   // Operator-chosen rooms, in fill order
}

// GetStudentsWithSeats computes a full seating plan for the filter. The
// response is a plan, not a commitment; persisting accepted plans is the
// caller's scheduling step.
func (h *SeatingHandler) GetStudentsWithSeats(c echo.Context) error {
	var req AssignSeatsRequest
	if err := population.DecodePayload(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	roster, err := population.RosterFile(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid roster upload"})
	}
	var rosterReader io.Reader
	if roster != nil {
		defer roster.Close()
		rosterReader = roster
	}

	resp, err := h.service.AssignWithFilter(context.Background(), req.FilterSpec, req.AssignBy, req.Rooms, rosterReader)
	if err != nil {
		if errors.Is(err, population.ErrValidation) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, resp)
}
