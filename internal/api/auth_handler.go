package api

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lakagar/healing-minds-and-mindful-connection/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates an account --> POST /api/register
func (h *AuthHandler) Register(c echo.Context) error {
	in := service.RegisterInput{}
	if err := c.Bind(&in); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	user, err := h.authService.Register(c.Request().Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(201, user)
}

// Login opens a session --> POST /api/login
func (h *AuthHandler) Login(c echo.Context) error {
	login := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{}
	if err := c.Bind(&login); err != nil {
		return badRequest(c, "Invalid request payload")
	}
	if strings.TrimSpace(login.Username) == "" || login.Password == "" {
		return badRequest(c, "Username and password are required")
	}

	token, user, err := h.authService.Login(c.Request().Context(), login.Username, login.Password)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, map[string]interface{}{"token": token, "user": user})
}

// Logout ends the current session --> POST /api/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	claims := claimsFrom(c)
	if claims == nil {
		return c.JSON(401, map[string]string{"error": "Unauthorized"})
	}
	if err := h.authService.Logout(c.Request().Context(), claims.SessionID); err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(204)
}

// CurrentUser --> GET /api/user
func (h *AuthHandler) CurrentUser(c echo.Context) error {
	return c.JSON(200, currentUser(c))
}

// UpdateProfile --> PATCH /api/user
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	in := service.ProfileUpdate{}
	if err := c.Bind(&in); err != nil {
		return badRequest(c, "Invalid request payload")
	}

	user, err := h.authService.UpdateProfile(c.Request().Context(), currentUser(c).ID, in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(200, user)
}
