// Package assistant produces chat replies, resource suggestions and mood
// analyses for the wellness features. Implementations never fail: when the
// backing model is unavailable they return fixed fallback payloads.
package assistant

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/lakagar/healing-minds-and-mindful-connection/internal/entity"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

const (
	FallbackEmptyReply = "I'm sorry, I couldn't generate a response. Please try again."
	FallbackReply      = "I'm experiencing some technical difficulties. Please try again later."
)

// Resource types a recommendation may carry.
const (
	ResourceArticle   = "Article"
	ResourceExercise  = "Exercise"
	ResourceVideo     = "Video"
	ResourceBook      = "Book"
	ResourceTechnique = "Technique"
)

type Resource struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ResourceType string `json:"resourceType"`
}

type MoodAnalysis struct {
	Summary     string   `json:"summary"`
	Insights    []string `json:"insights"`
	Suggestions []string `json:"suggestions"`
}

// FallbackAnalysis is returned whenever mood entries cannot be analyzed.
func FallbackAnalysis() MoodAnalysis {
	return MoodAnalysis{
		Summary:     "Unable to analyze mood patterns at this time.",
		Insights:    []string{"Data analysis unavailable"},
		Suggestions: []string{"Try again later"},
	}
}

type Assistant interface {
	Respond(ctx context.Context, message string) string
	Recommend(ctx context.Context, mood, concerns string) []Resource
	AnalyzeMood(ctx context.Context, entries []entity.MoodSample) MoodAnalysis
}

// Offline answers with the fallback payloads without any network access.
type Offline struct{}

func (Offline) Respond(context.Context, string) string { return FallbackReply }

func (Offline) Recommend(context.Context, string, string) []Resource { return []Resource{} }

func (Offline) AnalyzeMood(context.Context, []entity.MoodSample) MoodAnalysis {
	return FallbackAnalysis()
}
