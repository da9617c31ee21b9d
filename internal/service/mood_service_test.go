package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakagar/healing-minds-and-mindful-connection/internal/assistant"
	"github.com/lakagar/healing-minds-and-mindful-connection/internal/entity"
	"github.com/lakagar/healing-minds-and-mindful-connection/internal/repository"
)

type stubAssistant struct {
	reply     string
	resources []assistant.Resource
	analysis  assistant.MoodAnalysis
	samples   []entity.MoodSample
}

func (a *stubAssistant) Respond(context.Context, string) string { return a.reply }

func (a *stubAssistant) Recommend(context.Context, string, string) []assistant.Resource {
	return a.resources
}

func (a *stubAssistant) AnalyzeMood(_ context.Context, entries []entity.MoodSample) assistant.MoodAnalysis {
	a.samples = entries
	return a.analysis
}

func strPtr(s string) *string { return &s }

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 8, 0, 0, 0, time.UTC)
}

func seedMoods(t *testing.T, svc *MoodService, userID int) {
	t.Helper()
	ctx := context.Background()
	for i, mood := range []string{"happy", "anxious", "happy", "calm"} {
		_, err := svc.Record(ctx, userID, mood, nil, day(i+1))
		require.NoError(t, err)
	}
}

func TestRecordMood(t *testing.T) {
	store := newTestStore()
	pub := &recordingPublisher{}
	svc := NewMoodService(store, &stubAssistant{}, pub)

	entry, err := svc.Record(context.Background(), 1, "calm", strPtr("long walk"), time.Time{})
	require.NoError(t, err)

	assert.Equal(t, fixedNow, entry.Date)
	assert.Equal(t, "long walk", *entry.Note)
	assert.Equal(t, []string{"mood-created-1"}, pub.keys())

	_, err = svc.Record(context.Background(), 1, "  ", nil, time.Time{})
	assert.ErrorIs(t, err, repository.ErrValidation)
}

func TestRecordMoodSurvivesPublishFailure(t *testing.T) {
	store := newTestStore()
	svc := NewMoodService(store, &stubAssistant{}, &recordingPublisher{err: errBrokerDown})

	_, err := svc.Record(context.Background(), 1, "sad", nil, time.Time{})
	require.NoError(t, err)
	assert.Len(t, svc.Entries(1), 1)
}

func TestCountsByCategory(t *testing.T) {
	svc := NewMoodService(newTestStore(), &stubAssistant{}, &recordingPublisher{})
	seedMoods(t, svc, 1)
	seedMoods(t, svc, 2)

	assert.Equal(t, map[string]int{"happy": 2, "anxious": 1, "calm": 1}, svc.CountsByCategory(1))
	assert.Empty(t, svc.CountsByCategory(3))
}

func TestRecentEntries(t *testing.T) {
	svc := NewMoodService(newTestStore(), &stubAssistant{}, &recordingPublisher{})
	seedMoods(t, svc, 1)

	recent := svc.RecentEntries(1, 2)
	require.Len(t, recent, 2)
	assert.Equal(t, "calm", recent[0].Mood)
	assert.Equal(t, "happy", recent[1].Mood)

	assert.Len(t, svc.RecentEntries(1, 10), 4)
	assert.Empty(t, svc.RecentEntries(1, 0))
	assert.Empty(t, svc.RecentEntries(1, -3))
}

func TestEntriesByMonth(t *testing.T) {
	svc := NewMoodService(newTestStore(), &stubAssistant{}, &recordingPublisher{})
	ctx := context.Background()
	_, _ = svc.Record(ctx, 1, "happy", nil, time.Date(2025, time.February, 28, 23, 0, 0, 0, time.UTC))
	_, _ = svc.Record(ctx, 1, "calm", nil, time.Date(2025, time.March, 1, 0, 30, 0, 0, time.UTC))
	_, _ = svc.Record(ctx, 1, "sad", nil, time.Date(2025, time.March, 31, 9, 0, 0, 0, time.UTC))

	march := svc.EntriesByMonth(1, 2025, time.March, nil)
	require.Len(t, march, 2)
	assert.Equal(t, "sad", march[0].Mood)

	// 00:30 UTC on 1 March is still February five hours west.
	est := time.FixedZone("EST", -5*60*60)
	assert.Len(t, svc.EntriesByMonth(1, 2025, time.February, est), 2)
}

func TestSummary(t *testing.T) {
	svc := NewMoodService(newTestStore(), &stubAssistant{}, &recordingPublisher{})
	seedMoods(t, svc, 1)

	summary := svc.Summary(1, 3)
	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 2, summary.Counts["happy"])
	require.Len(t, summary.Recent, 3)
	assert.Equal(t, "calm", summary.Recent[0].Mood)

	assert.Empty(t, svc.Summary(1, 0).Recent)
}

func TestAnalyzePassesSamplesNewestFirst(t *testing.T) {
	stub := &stubAssistant{analysis: assistant.MoodAnalysis{Summary: "steady"}}
	svc := NewMoodService(newTestStore(), stub, &recordingPublisher{})
	ctx := context.Background()
	_, _ = svc.Record(ctx, 1, "anxious", strPtr("exam"), day(1))
	_, _ = svc.Record(ctx, 1, "calm", nil, day(2))

	analysis := svc.Analyze(ctx, 1)

	assert.Equal(t, "steady", analysis.Summary)
	assert.Equal(t, []entity.MoodSample{
		{Mood: "calm", Date: "2025-03-02"},
		{Mood: "anxious", Date: "2025-03-01", Note: "exam"},
	}, stub.samples)
}
