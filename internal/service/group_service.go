package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lakagar/healing-minds-and-mindful-connection/internal/entity"
	"github.com/lakagar/healing-minds-and-mindful-connection/internal/events"
	"github.com/lakagar/healing-minds-and-mindful-connection/internal/metrics"
	"github.com/lakagar/healing-minds-and-mindful-connection/internal/repository"
)

type GroupSessionService struct {
	store     *repository.Store
	resolver  *Resolver
	publisher events.Publisher
}

func NewGroupSessionService(store *repository.Store, resolver *Resolver, publisher events.Publisher) *GroupSessionService {
	return &GroupSessionService{store: store, resolver: resolver, publisher: publisher}
}

// NewGroupSession holds the fields a caller may set when scheduling a group session.
type NewGroupSession struct {
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	TherapistID     int       `json:"therapistId"`
	SessionDate     time.Time `json:"sessionDate"`
	Duration        int       `json:"duration"`
	MaxParticipants int       `json:"maxParticipants"`
}

func (s *GroupSessionService) List() []entity.GroupSessionView {
	sessions := s.store.ListGroupSessions()
	views := make([]entity.GroupSessionView, 0, len(sessions))
	for _, g := range sessions {
		views = append(views, s.resolver.GroupSessionWithTherapist(g))
	}
	return views
}

func (s *GroupSessionService) Get(id int) (entity.GroupSessionView, error) {
	g, err := s.store.GetGroupSession(id)
	if err != nil {
		return entity.GroupSessionView{}, err
	}
	return s.resolver.GroupSessionWithTherapist(g), nil
}

// Create schedules a group session led by an existing therapist.
func (s *GroupSessionService) Create(ctx context.Context, in NewGroupSession) (entity.GroupSessionView, error) {
	if strings.TrimSpace(in.Name) == "" {
		return entity.GroupSessionView{}, fmt.Errorf("name is required: %w", repository.ErrValidation)
	}
	if _, err := s.store.GetTherapist(in.TherapistID); err != nil {
		return entity.GroupSessionView{}, err
	}
	g, err := s.store.CreateGroupSession(entity.GroupSession{
		Name:            in.Name,
		Description:     in.Description,
		TherapistID:     in.TherapistID,
		SessionDate:     in.SessionDate,
		Duration:        in.Duration,
		MaxParticipants: in.MaxParticipants,
	})
	if err != nil {
		logger.Error().Err(err).Msgf("Error creating group session %q", in.Name)
		return entity.GroupSessionView{}, err
	}
	logger.Info().Msgf("Group session %d scheduled for %s", g.ID, g.SessionDate.Format(time.RFC3339))
	return s.resolver.GroupSessionWithTherapist(g), nil
}

func (s *GroupSessionService) UpdateStatus(ctx context.Context, id int, status string) (entity.GroupSessionView, error) {
	g, err := s.store.UpdateGroupSessionStatus(id, status)
	if err != nil {
		return entity.GroupSessionView{}, err
	}
	return s.resolver.GroupSessionWithTherapist(g), nil
}

// Join adds the user to the group session. It fails with ErrConflict when the
// user already joined and ErrCapacityExceeded when no place is left.
func (s *GroupSessionService) Join(ctx context.Context, sessionID, userID int) (entity.GroupSessionParticipant, error) {
	participant, err := s.store.JoinGroupSession(sessionID, userID)
	metrics.RecordJoin(joinResult(err))
	if err != nil {
		return entity.GroupSessionParticipant{}, err
	}

	events.Emit(ctx, s.publisher, events.Event{
		Entity:  "group-session",
		Action:  events.GroupSessionJoined,
		ID:      sessionID,
		Payload: participant,
	})
	return participant, nil
}

func joinResult(err error) string {
	switch {
	case err == nil:
		return "joined"
	case errors.Is(err, repository.ErrConflict):
		return "conflict"
	case errors.Is(err, repository.ErrCapacityExceeded):
		return "full"
	case errors.Is(err, repository.ErrNotFound):
		return "not_found"
	}
	return "error"
}

// Leave removes the user from the group session. ErrNotFound means the user
// was not a participant.
func (s *GroupSessionService) Leave(ctx context.Context, sessionID, userID int) error {
	if !s.store.LeaveGroupSession(sessionID, userID) {
		return fmt.Errorf("user %d is not in group session %d: %w", userID, sessionID, repository.ErrNotFound)
	}
	metrics.RecordLeave()

	events.Emit(ctx, s.publisher, events.Event{
		Entity:  "group-session",
		Action:  events.GroupSessionLeft,
		ID:      sessionID,
		Payload: map[string]int{"sessionId": sessionID, "userId": userID},
	})
	return nil
}

func (s *GroupSessionService) Participants(sessionID int) ([]entity.GroupSessionParticipant, error) {
	return s.resolver.ParticipantsOf(sessionID)
}

func (s *GroupSessionService) UserGroupSessions(userID int) []entity.GroupSessionView {
	return s.resolver.UserGroupSessions(userID)
}
