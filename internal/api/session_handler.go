package api

import (
	"github.com/labstack/echo/v4"

	"github.com/lakagar/healing-minds-and-mindful-connection/internal/entity"
	"github.com/lakagar/healing-minds-and-mindful-connection/internal/service"
)

type SessionHandler struct {
	bookingService *service.BookingService
}

func NewSessionHandler(bookingService *service.BookingService) *SessionHandler {
	return &SessionHandler{bookingService: bookingService}
}

type statusRequest struct {
	Status string `json:"status"`
}

// bindStatus reads a status change body. On failure it returns the message to report.
func bindStatus(c echo.Context) (status string, problem string) {
	in := statusRequest{}
	if err := c.Bind(&in); err != nil {
		return "", "Invalid request payload"
	}
	if !entity.ValidStatus(in.Status) {
		return "", "status must be one of scheduled, completed, canceled"
	}
	return in.Status, ""
}

// BookSession --> POST /api/sessions
func (h *SessionHandler) BookSession(c echo.Context) error {
	in := service.NewSession{}
	if err := c.Bind(&in); err != nil {
		return badRequest(c, "Invalid request payload")
	}
	if in.TherapistID < 1 {
		return badRequest(c, "therapistId is required")
	}

	session, err := h.bookingService.Book(c.Request().Context(), currentUser(c).ID, in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(201, session)
}

// ListSessions --> GET /api/sessions
func (h *SessionHandler) ListSessions(c echo.Context) error {
	return c.JSON(200, h.bookingService.Sessions(currentUser(c).ID))
}

// UpdateStatus --> PATCH /api/sessions/:id/status
func (h *SessionHandler) UpdateStatus(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "Invalid ID")
	}
	status, problem := bindStatus(c)
	if problem != "" {
		return badRequest(c, problem)
	}

	session, err := h.bookingService.UpdateStatus(c.Request().Context(), currentUser(c).ID, id, status)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, session)
}
