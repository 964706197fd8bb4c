package exams

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ExamHandler handles HTTP requests for duplicate-exam checks.
type ExamHandler struct {
	service *ExamService
}

// NewExamHandler creates a new ExamHandler.
func NewExamHandler(service *ExamService) *ExamHandler {
	return &ExamHandler{service: service}
}

// CheckDuplicate reports whether the proposed exam definition collides with a
// committed one.
func (h *ExamHandler) CheckDuplicate(c echo.Context) error {
	var req ExamDefinition
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	result, err := h.service.CheckDuplicate(context.Background(), req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, result)
}
