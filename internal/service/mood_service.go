package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lakagar/healing-minds-and-mindful-connection/internal/assistant"
	"github.com/lakagar/healing-minds-and-mindful-connection/internal/entity"
	"github.com/lakagar/healing-minds-and-mindful-connection/internal/events"
	"github.com/lakagar/healing-minds-and-mindful-connection/internal/repository"
)

type MoodService struct {
	store     *repository.Store
	assistant assistant.Assistant
	publisher events.Publisher
}

func NewMoodService(store *repository.Store, a assistant.Assistant, publisher events.Publisher) *MoodService {
	return &MoodService{store: store, assistant: a, publisher: publisher}
}

// MoodSummary aggregates a user's mood history.
type MoodSummary struct {
	Total  int                `json:"total"`
	Counts map[string]int     `json:"counts"`
	Recent []entity.MoodEntry `json:"recent"`
}

// Record stores a mood entry for the user. A zero date means now.
func (s *MoodService) Record(ctx context.Context, userID int, mood string, note *string, date time.Time) (entity.MoodEntry, error) {
	if strings.TrimSpace(mood) == "" {
		return entity.MoodEntry{}, fmt.Errorf("mood is required: %w", repository.ErrValidation)
	}
	entry, err := s.store.CreateMoodEntry(entity.MoodEntry{
		UserID: userID,
		Mood:   mood,
		Note:   note,
		Date:   date,
	})
	if err != nil {
		logger.Error().Err(err).Msgf("Error recording mood for user %d", userID)
		return entity.MoodEntry{}, err
	}

	events.Emit(ctx, s.publisher, events.Event{
		Entity:  "mood",
		Action:  events.MoodCreated,
		ID:      entry.ID,
		Payload: entry,
	})
	return entry, nil
}

// Entries returns the user's mood entries, most recent first.
func (s *MoodService) Entries(userID int) []entity.MoodEntry {
	return s.store.ListMoodEntries(userID)
}

// CountsByCategory counts the user's entries per mood.
func (s *MoodService) CountsByCategory(userID int) map[string]int {
	counts := make(map[string]int)
	for _, e := range s.store.ListMoodEntries(userID) {
		counts[e.Mood]++
	}
	return counts
}

// RecentEntries returns at most n entries, most recent first. n <= 0 yields none.
func (s *MoodService) RecentEntries(userID, n int) []entity.MoodEntry {
	if n <= 0 {
		return []entity.MoodEntry{}
	}
	entries := s.store.ListMoodEntries(userID)
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// EntriesByMonth returns the user's entries dated within the given calendar
// month, most recent first. Dates are compared in loc.
func (s *MoodService) EntriesByMonth(userID, year int, month time.Month, loc *time.Location) []entity.MoodEntry {
	if loc == nil {
		loc = time.UTC
	}
	out := make([]entity.MoodEntry, 0)
	for _, e := range s.store.ListMoodEntries(userID) {
		d := e.Date.In(loc)
		if d.Year() == year && d.Month() == month {
			out = append(out, e)
		}
	}
	return out
}

// Summary counts the user's entries per mood and includes the most recent ones.
func (s *MoodService) Summary(userID, recent int) MoodSummary {
	entries := s.store.ListMoodEntries(userID)
	summary := MoodSummary{
		Total:  len(entries),
		Counts: make(map[string]int),
		Recent: []entity.MoodEntry{},
	}
	for _, e := range entries {
		summary.Counts[e.Mood]++
	}
	if recent > 0 {
		summary.Recent = entries[:min(recent, len(entries))]
	}
	return summary
}

// Analyze hands the user's history to the assistant.
func (s *MoodService) Analyze(ctx context.Context, userID int) assistant.MoodAnalysis {
	entries := s.store.ListMoodEntries(userID)
	samples := make([]entity.MoodSample, 0, len(entries))
	for _, e := range entries {
		samples = append(samples, e.Sample())
	}
	return s.assistant.AnalyzeMood(ctx, samples)
}
