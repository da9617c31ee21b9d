package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lakagar/healing-minds-and-mindful-connection/internal/entity"
	"github.com/lakagar/healing-minds-and-mindful-connection/internal/events"
	"github.com/lakagar/healing-minds-and-mindful-connection/internal/repository"
)

// BookingService manages one-on-one therapy sessions.
type BookingService struct {
	store     *repository.Store
	resolver  *Resolver
	publisher events.Publisher
}

func NewBookingService(store *repository.Store, resolver *Resolver, publisher events.Publisher) *BookingService {
	return &BookingService{store: store, resolver: resolver, publisher: publisher}
}

type NewSession struct {
	TherapistID int       `json:"therapistId"`
	SessionDate time.Time `json:"sessionDate"`
	Duration    int       `json:"duration"`
	SessionType string    `json:"sessionType"`
}

// Book schedules a session for the user with an existing therapist.
func (s *BookingService) Book(ctx context.Context, userID int, in NewSession) (entity.SessionView, error) {
	if in.SessionDate.IsZero() {
		return entity.SessionView{}, fmt.Errorf("session date is required: %w", repository.ErrValidation)
	}
	if in.Duration < 1 {
		return entity.SessionView{}, fmt.Errorf("duration must be positive: %w", repository.ErrValidation)
	}
	if strings.TrimSpace(in.SessionType) == "" {
		return entity.SessionView{}, fmt.Errorf("session type is required: %w", repository.ErrValidation)
	}
	if _, err := s.store.GetTherapist(in.TherapistID); err != nil {
		return entity.SessionView{}, err
	}

	session, err := s.store.CreateSession(entity.Session{
		UserID:      userID,
		TherapistID: in.TherapistID,
		SessionDate: in.SessionDate,
		Duration:    in.Duration,
		SessionType: in.SessionType,
	})
	if err != nil {
		logger.Error().Err(err).Msgf("Error booking session for user %d", userID)
		return entity.SessionView{}, err
	}

	events.Emit(ctx, s.publisher, events.Event{
		Entity:  "session",
		Action:  events.SessionBooked,
		ID:      session.ID,
		Payload: session,
	})
	return s.resolver.SessionWithTherapist(session), nil
}

// Sessions returns the user's sessions, earliest first.
func (s *BookingService) Sessions(userID int) []entity.SessionView {
	sessions := s.store.ListSessions(userID)
	views := make([]entity.SessionView, 0, len(sessions))
	for _, sess := range sessions {
		views = append(views, s.resolver.SessionWithTherapist(sess))
	}
	return views
}

// UpdateStatus changes the status of one of the user's sessions.
func (s *BookingService) UpdateStatus(ctx context.Context, userID, sessionID int, status string) (entity.SessionView, error) {
	existing, err := s.store.GetSession(sessionID)
	if err != nil {
		return entity.SessionView{}, err
	}
	if existing.UserID != userID {
		return entity.SessionView{}, fmt.Errorf("session %d: %w", sessionID, repository.ErrNotFound)
	}

	session, err := s.store.UpdateSessionStatus(sessionID, status)
	if err != nil {
		return entity.SessionView{}, err
	}

	events.Emit(ctx, s.publisher, events.Event{
		Entity:  "session",
		Action:  events.SessionStatus,
		ID:      session.ID,
		Payload: map[string]any{"sessionId": session.ID, "status": session.Status},
	})
	return s.resolver.SessionWithTherapist(session), nil
}
