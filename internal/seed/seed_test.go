package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakagar/healing-minds-and-mindful-connection/internal/entity"
	"github.com/lakagar/healing-minds-and-mindful-connection/internal/repository"
)

func TestSample(t *testing.T) {
	store := repository.New()
	now := time.Date(2025, time.March, 3, 15, 30, 0, 0, time.UTC)

	require.NoError(t, Sample(store, now))

	meds := store.ListMedicines()
	require.Len(t, meds, 6)
	assert.Equal(t, "Sertraline (Generic)", meds[0].Name)
	assert.Equal(t, 1299, meds[0].Price)
	assert.Equal(t, 999, meds[5].Price)
	for _, m := range meds {
		assert.True(t, m.InStock, m.Name)
	}
	assert.Len(t, store.ListMedicinesByCategory("Antidepressant"), 2)

	therapists := store.ListTherapists()
	require.Len(t, therapists, 6)
	for _, th := range therapists {
		assert.True(t, th.Available, th.Name)
	}

	sessions := store.ListGroupSessions()
	require.Len(t, sessions, 6)
	for i, g := range sessions {
		assert.Equal(t, time.Date(2025, time.March, 10, 9+i, 0, 0, 0, time.UTC), g.SessionDate)
		assert.Equal(t, therapists[i].ID, g.TherapistID)
		assert.Equal(t, 60, g.Duration)
		assert.Equal(t, 10, g.MaxParticipants)
		assert.Zero(t, g.CurrentParticipants)
		assert.Equal(t, entity.StatusScheduled, g.Status)
	}
}

func TestSampleLeavesUsersEmpty(t *testing.T) {
	store := repository.New()
	require.NoError(t, Sample(store, time.Now()))
	assert.Zero(t, store.CountUsers())
}
