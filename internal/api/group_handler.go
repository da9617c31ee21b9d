package api

import (
	"github.com/labstack/echo/v4"

	"github.com/lakagar/healing-minds-and-mindful-connection/internal/service"
)

type GroupSessionHandler struct {
	groupService *service.GroupSessionService
}

func NewGroupSessionHandler(groupService *service.GroupSessionService) *GroupSessionHandler {
	return &GroupSessionHandler{groupService: groupService}
}

// ListGroupSessions --> GET /api/group-sessions
func (h *GroupSessionHandler) ListGroupSessions(c echo.Context) error {
	return c.JSON(200, h.groupService.List())
}

// CreateGroupSession --> POST /api/group-sessions
func (h *GroupSessionHandler) CreateGroupSession(c echo.Context) error {
	in := service.NewGroupSession{}
	if err := c.Bind(&in); err != nil {
		return badRequest(c, "Invalid request payload")
	}
	if in.TherapistID < 1 {
		return badRequest(c, "therapistId is required")
	}
	if in.MaxParticipants < 1 {
		return badRequest(c, "maxParticipants must be positive")
	}

	session, err := h.groupService.Create(c.Request().Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(201, session)
}

// UpdateStatus --> PATCH /api/group-sessions/:id/status
func (h *GroupSessionHandler) UpdateStatus(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "Invalid ID")
	}
	status, problem := bindStatus(c)
	if problem != "" {
		return badRequest(c, problem)
	}

	session, err := h.groupService.UpdateStatus(c.Request().Context(), id, status)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, session)
}

// Participants --> GET /api/group-sessions/:id/participants
func (h *GroupSessionHandler) Participants(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "Invalid ID")
	}
	participants, err := h.groupService.Participants(id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, participants)
}

// Join --> POST /api/group-sessions/:id/join
func (h *GroupSessionHandler) Join(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "Invalid ID")
	}
	participant, err := h.groupService.Join(c.Request().Context(), id, currentUser(c).ID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(201, participant)
}

// Leave --> DELETE /api/group-sessions/:id/leave
func (h *GroupSessionHandler) Leave(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return badRequest(c, "Invalid ID")
	}
	if err := h.groupService.Leave(c.Request().Context(), id, currentUser(c).ID); err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(204)
}

// UserGroupSessions --> GET /api/user/group-sessions
func (h *GroupSessionHandler) UserGroupSessions(c echo.Context) error {
	return c.JSON(200, h.groupService.UserGroupSessions(currentUser(c).ID))
}
