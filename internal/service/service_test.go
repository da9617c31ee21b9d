package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lakagar/healing-minds-and-mindful-connection/internal/entity"
	"github.com/lakagar/healing-minds-and-mindful-connection/internal/events"
	"github.com/lakagar/healing-minds-and-mindful-connection/internal/repository"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) keys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	keys := make([]string, 0, len(p.events))
	for _, e := range p.events {
		keys = append(keys, e.Key())
	}
	return keys
}

var errBrokerDown = errors.New("broker down")

var fixedNow = time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC)

func newTestStore() *repository.Store {
	return repository.New(repository.WithClock(func() time.Time { return fixedNow }))
}

func mustMedicine(t *testing.T, s *repository.Store, name string, price int) entity.Medicine {
	t.Helper()
	m, err := s.CreateMedicine(entity.NewMedicine{Name: name, Category: "Supplement", Price: price})
	require.NoError(t, err)
	return m
}

func mustTherapist(t *testing.T, s *repository.Store, name string) entity.Therapist {
	t.Helper()
	th, err := s.CreateTherapist(entity.NewTherapist{Name: name})
	require.NoError(t, err)
	return th
}

func mustGroupSession(t *testing.T, s *repository.Store, therapistID, capacity int) entity.GroupSession {
	t.Helper()
	g, err := s.CreateGroupSession(entity.GroupSession{
		Name:            "Stress Reduction",
		TherapistID:     therapistID,
		SessionDate:     fixedNow.Add(7 * 24 * time.Hour),
		Duration:        60,
		MaxParticipants: capacity,
	})
	require.NoError(t, err)
	return g
}
