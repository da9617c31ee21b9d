package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lakagar/healing-minds-and-mindful-connection/internal/service"
)

const defaultRecentMoods = 7

type MoodHandler struct {
	moodService *service.MoodService
}

func NewMoodHandler(moodService *service.MoodService) *MoodHandler {
	return &MoodHandler{moodService: moodService}
}

// CreateMoodEntry --> POST /api/mood
func (h *MoodHandler) CreateMoodEntry(c echo.Context) error {
	in := struct {
		Mood string     `json:"mood"`
		Note *string    `json:"note"`
		Date *time.Time `json:"date"`
	}{}
	if err := c.Bind(&in); err != nil {
		return badRequest(c, "Invalid request payload")
	}
	if strings.TrimSpace(in.Mood) == "" {
		return badRequest(c, "Mood is required")
	}

	var date time.Time
	if in.Date != nil {
		date = *in.Date
	}
	entry, err := h.moodService.Record(c.Request().Context(), currentUser(c).ID, in.Mood, in.Note, date)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(201, entry)
}

// ListMoodEntries --> GET /api/mood
func (h *MoodHandler) ListMoodEntries(c echo.Context) error {
	return c.JSON(200, h.moodService.Entries(currentUser(c).ID))
}

// Summary --> GET /api/mood/summary?recent=n
func (h *MoodHandler) Summary(c echo.Context) error {
	recent := defaultRecentMoods
	if raw := c.QueryParam("recent"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(c, "recent must be an integer")
		}
		recent = n
	}
	return c.JSON(200, h.moodService.Summary(currentUser(c).ID, recent))
}

// Analysis --> GET /api/mood/analysis
func (h *MoodHandler) Analysis(c echo.Context) error {
	return c.JSON(200, h.moodService.Analyze(c.Request().Context(), currentUser(c).ID))
}
