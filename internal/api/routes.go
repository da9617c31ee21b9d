package api

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lakagar/healing-minds-and-mindful-connection/internal/metrics"
	"github.com/lakagar/healing-minds-and-mindful-connection/internal/service"
)

// Services bundles what the HTTP layer depends on.
type Services struct {
	Auth         *service.AuthService
	Catalog      *service.CatalogService
	Mood         *service.MoodService
	Cart         *service.CartService
	Booking      *service.BookingService
	GroupSession *service.GroupSessionService
	Chat         *service.ChatService

	// Admins lists the usernames allowed to create group sessions and change their status.
	Admins []string
}

// RegisterRoutes mounts every endpoint on e.
func RegisterRoutes(e *echo.Echo, s Services) {
	authHandler := NewAuthHandler(s.Auth)
	catalogHandler := NewCatalogHandler(s.Catalog)
	moodHandler := NewMoodHandler(s.Mood)
	cartHandler := NewCartHandler(s.Cart)
	sessionHandler := NewSessionHandler(s.Booking)
	groupHandler := NewGroupSessionHandler(s.GroupSession)
	chatHandler := NewChatHandler(s.Chat)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]interface{}{
			"status":  "ok",
			"service": "healing-minds",
			"time":    time.Now().Format(time.RFC3339),
		})
	})
	e.GET("/metrics", metrics.Handler())

	apiGroup := e.Group("/api")
	apiGroup.POST("/register", authHandler.Register)
	apiGroup.POST("/login", authHandler.Login)
	apiGroup.GET("/medicines", catalogHandler.ListMedicines)
	apiGroup.GET("/medicines/:id", catalogHandler.GetMedicine)
	apiGroup.GET("/therapists", catalogHandler.ListTherapists)
	apiGroup.GET("/therapists/:id", catalogHandler.GetTherapist)
	apiGroup.GET("/group-sessions", groupHandler.ListGroupSessions)
	apiGroup.GET("/group-sessions/:id/participants", groupHandler.Participants)

	// Auth is attached per route so unknown /api paths still answer 404.
	auth := RequireAuth(s.Auth)
	admin := append(RequireAuth(s.Auth), RequireAdmin(s.Admins))

	apiGroup.POST("/logout", authHandler.Logout, auth...)
	apiGroup.GET("/user", authHandler.CurrentUser, auth...)
	apiGroup.PATCH("/user", authHandler.UpdateProfile, auth...)

	apiGroup.POST("/mood", moodHandler.CreateMoodEntry, auth...)
	apiGroup.GET("/mood", moodHandler.ListMoodEntries, auth...)
	apiGroup.GET("/mood/summary", moodHandler.Summary, auth...)
	apiGroup.GET("/mood/analysis", moodHandler.Analysis, auth...)

	apiGroup.GET("/cart", cartHandler.GetCart, auth...)
	apiGroup.POST("/cart", cartHandler.AddToCart, auth...)
	apiGroup.PUT("/cart/:id", cartHandler.UpdateQuantity, auth...)
	apiGroup.DELETE("/cart/:id", cartHandler.RemoveItem, auth...)
	apiGroup.DELETE("/cart", cartHandler.ClearCart, auth...)

	apiGroup.POST("/sessions", sessionHandler.BookSession, auth...)
	apiGroup.GET("/sessions", sessionHandler.ListSessions, auth...)
	apiGroup.PATCH("/sessions/:id/status", sessionHandler.UpdateStatus, auth...)

	apiGroup.POST("/group-sessions", groupHandler.CreateGroupSession, admin...)
	apiGroup.PATCH("/group-sessions/:id/status", groupHandler.UpdateStatus, admin...)
	apiGroup.POST("/group-sessions/:id/join", groupHandler.Join, auth...)
	apiGroup.DELETE("/group-sessions/:id/leave", groupHandler.Leave, auth...)
	apiGroup.GET("/user/group-sessions", groupHandler.UserGroupSessions, auth...)

	apiGroup.POST("/chat", chatHandler.Chat, auth...)
	apiGroup.GET("/chat/history", chatHandler.History, auth...)
	apiGroup.POST("/resources/recommendations", chatHandler.Recommendations, auth...)
}
