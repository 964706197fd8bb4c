package population

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// PopulationHandler handles HTTP requests for counting and capacity planning.
type PopulationHandler struct {
	service *PopulationService
}

// NewPopulationHandler creates a new PopulationHandler.
func NewPopulationHandler(service *PopulationService) *PopulationHandler {
	return &PopulationHandler{service: service}
}

// CountStudentsRequest represents the request to count eligible students.
type CountStudentsRequest struct {
	FilterSpec
	AssignBy AssignBy `json:"assign_by" validate:"omitempty,oneof=UID REGISTRATION_NUMBER"` // Key mode for roster matching
}

// CountStudentsResponse reports the population size plus roster reconciliation.
type CountStudentsResponse struct {
	Count        int              `json:"count"`
	NotFound     []string         `json:"not_found"`
	RosterErrors []RosterRowError `json:"roster_errors"`
}

// BreakdownRequest represents the request for a per-combination breakdown.
type BreakdownRequest struct {
	FilterSpec
	AssignBy     AssignBy      `json:"assign_by" validate:"omitempty,oneof=UID REGISTRATION_NUMBER"` // Key mode for roster matching
	Combinations []Combination `json:"combinations"`                                                 // Allowed (program course, shift) pairs, in render order
}

// BreakdownResponse wraps the breakdown plus roster reconciliation.
type BreakdownResponse struct {
	BreakdownResult
	NotFound     []string         `json:"not_found"`
	RosterErrors []RosterRowError `json:"roster_errors"`
}

// DecodePayload binds the request body into v. Multipart requests carry the
// JSON in the "payload" form field so a roster file can ride alongside; plain
// JSON bodies bind directly.
func DecodePayload(c echo.Context, v interface{}) error {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		payload := c.FormValue("payload")
		if payload == "" {
			return errors.New("missing payload form field")
		}
		if err := json.Unmarshal([]byte(payload), v); err != nil {
			return err
		}
	} else if err := c.Bind(v); err != nil {
		return err
	}
	return c.Validate(v)
}

// RosterFile opens the optional roster upload. Returns a nil reader when the
// request carries no roster.
func RosterFile(c echo.Context) (io.ReadCloser, error) {
	fh, err := c.FormFile("roster")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	return fh.Open()
}

// CountStudents returns how many students will sit the exam for the filter.
func (h *PopulationHandler) CountStudents(c echo.Context) error {
	var req CountStudentsRequest
	if err := DecodePayload(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	roster, err := RosterFile(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid roster upload"})
	}
	if roster != nil {
		defer roster.Close()
	}

	mode := req.AssignBy
	if mode == "" {
		mode = AssignByUID
	}
	res, err := h.service.Resolve(context.Background(), req.FilterSpec, rosterReader(roster), mode)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, CountStudentsResponse{
		Count:        len(res.Candidates),
		NotFound:     res.NotFound,
		RosterErrors: res.RosterErrors,
	})
}

// CountStudentsBreakdown returns total and per-combination candidate counts.
func (h *PopulationHandler) CountStudentsBreakdown(c echo.Context) error {
	var req BreakdownRequest
	if err := DecodePayload(c, &req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	roster, err := RosterFile(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid roster upload"})
	}
	if roster != nil {
		defer roster.Close()
	}

	mode := req.AssignBy
	if mode == "" {
		mode = AssignByUID
	}
	res, err := h.service.Resolve(context.Background(), req.FilterSpec, rosterReader(roster), mode)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, BreakdownResponse{
		BreakdownResult: ComputeBreakdown(res.Candidates, req.Combinations),
		NotFound:        res.NotFound,
		RosterErrors:    res.RosterErrors,
	})
}

// rosterReader avoids handing the service a non-nil interface wrapping a nil
// file when no roster was uploaded.
func rosterReader(roster io.ReadCloser) io.Reader {
	if roster == nil {
		return nil
	}
	return roster
}
