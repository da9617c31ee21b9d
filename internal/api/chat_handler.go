package api

import (
	"github.com/labstack/echo/v4"

	"github.com/lakagar/healing-minds-and-mindful-connection/internal/service"
)

type ChatHandler struct {
	chatService *service.ChatService
}

func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Chat --> POST /api/chat
func (h *ChatHandler) Chat(c echo.Context) error {
	in := struct {
		Message string `json:"message"`
	}{}
	if err := c.Bind(&in); err != nil {
		return badRequest(c, "Invalid request payload")
	}
	if in.Message == "" {
		return badRequest(c, "Message is required")
	}

	entry, err := h.chatService.Chat(c.Request().Context(), currentUser(c).ID, in.Message)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, map[string]string{"response": entry.Response})
}

// History --> GET /api/chat/history
func (h *ChatHandler) History(c echo.Context) error {
	return c.JSON(200, h.chatService.History(currentUser(c).ID))
}

// Recommendations --> POST /api/resources/recommendations
func (h *ChatHandler) Recommendations(c echo.Context) error {
	in := struct {
		Mood     string `json:"mood"`
		Concerns string `json:"concerns"`
	}{}
	if err := c.Bind(&in); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	resources, err := h.chatService.Recommend(c.Request().Context(), in.Mood, in.Concerns)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, map[string]interface{}{"resources": resources})
}
