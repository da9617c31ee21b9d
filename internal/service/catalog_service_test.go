package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakagar/healing-minds-and-mindful-connection/internal/repository"
)

func TestCatalogMedicines(t *testing.T) {
	store := newTestStore()
	svc := NewCatalogService(store)
	a := mustMedicine(t, store, "Omega-3 Fish Oil", 2299)
	_ = mustMedicine(t, store, "Melatonin (3mg)", 999)

	assert.Len(t, svc.Medicines(""), 2)
	assert.Len(t, svc.Medicines("Supplement"), 2)
	assert.Empty(t, svc.Medicines("Anxiolytic"))

	got, err := svc.Medicine(a.ID)
	require.NoError(t, err)
	assert.Equal(t, a, got)

	_, err = svc.Medicine(99)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCatalogTherapists(t *testing.T) {
	store := newTestStore()
	svc := NewCatalogService(store)
	th := mustTherapist(t, store, "Dr. Sarah Johnson")

	require.Len(t, svc.Therapists(), 1)
	got, err := svc.Therapist(th.ID)
	require.NoError(t, err)
	assert.True(t, got.Available)

	_, err = svc.Therapist(2)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
