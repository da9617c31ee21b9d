package service

import (
	"github.com/lakagar/healing-minds-and-mindful-connection/internal/entity"
	"github.com/lakagar/healing-minds-and-mindful-connection/internal/repository"
)

// Resolver joins stored records with the records they reference. It never
// writes; a dangling reference is substituted or skipped, not reported.
type Resolver struct {
	store *repository.Store
}

func NewResolver(store *repository.Store) *Resolver {
	return &Resolver{store: store}
}

// CartWithDetails returns the user's cart lines with their medicines. Lines
// whose medicine no longer exists are omitted.
func (r *Resolver) CartWithDetails(userID int) []entity.CartLine {
	items := r.store.ListCartItems(userID)
	lines := make([]entity.CartLine, 0, len(items))
	for _, item := range items {
		medicine, err := r.store.GetMedicine(item.MedicineID)
		if err != nil {
			logger.Warn().Err(err).Msgf("Cart item %d references missing medicine %d", item.ID, item.MedicineID)
			continue
		}
		lines = append(lines, entity.CartLine{CartItem: item, Medicine: medicine})
	}
	return lines
}

func (r *Resolver) therapistName(id int) string {
	t, err := r.store.GetTherapist(id)
	if err != nil {
		return entity.UnknownTherapist
	}
	return t.Name
}

func (r *Resolver) SessionWithTherapist(s entity.Session) entity.SessionView {
	return entity.SessionView{Session: s, TherapistName: r.therapistName(s.TherapistID)}
}

func (r *Resolver) GroupSessionWithTherapist(g entity.GroupSession) entity.GroupSessionView {
	return entity.GroupSessionView{GroupSession: g, TherapistName: r.therapistName(g.TherapistID)}
}

// ParticipantsOf returns the participant rows of a group session, failing
// with ErrNotFound when the session does not exist.
func (r *Resolver) ParticipantsOf(groupSessionID int) ([]entity.GroupSessionParticipant, error) {
	if _, err := r.store.GetGroupSession(groupSessionID); err != nil {
		return nil, err
	}
	return r.store.ListParticipants(groupSessionID), nil
}

// UserGroupSessions returns the group sessions the user has joined, earliest first.
func (r *Resolver) UserGroupSessions(userID int) []entity.GroupSessionView {
	joined := make(map[int]bool)
	for _, p := range r.store.ListUserParticipations(userID) {
		joined[p.SessionID] = true
	}

	views := make([]entity.GroupSessionView, 0, len(joined))
	for _, g := range r.store.ListGroupSessions() {
		if joined[g.ID] {
			views = append(views, r.GroupSessionWithTherapist(g))
		}
	}
	return views
}
