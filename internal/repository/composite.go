package repository

import (
	"fmt"

	"github.com/lakagar/healing-minds-and-mindful-connection/internal/entity"
)

// Operations in this file touch more than one table or read-then-write a
// single table, so they hold the relevant locks for their whole duration.
// Lock order is always groupSessions before participants.

// AddToCart adds quantity of a medicine to the user's cart. When the user
// already has a line for the medicine its quantity is increased instead of a
// second line being created; merged reports which of the two happened.
func (s *Store) AddToCart(userID, medicineID, quantity int) (item entity.CartItem, merged bool, err error) {
	if _, err := s.medicines.get(medicineID); err != nil {
		return entity.CartItem{}, false, err
	}
	quantity = clampQuantity(quantity)
	if quantity > entity.MaxCartQuantity {
		return entity.CartItem{}, false, errQuantityTooLarge(quantity)
	}

	s.cartItems.mu.Lock()
	defer s.cartItems.mu.Unlock()

	if existing, ok := s.cartItems.lookupLocked(cartKey(userID, medicineID)); ok {
		if existing.Quantity > entity.MaxCartQuantity-quantity {
			return entity.CartItem{}, false, errQuantityTooLarge(existing.Quantity + quantity)
		}
		item, err = s.cartItems.updateLocked(existing.ID, func(c *entity.CartItem) {
			c.Quantity += quantity
		})
		return item, true, err
	}

	item, err = s.cartItems.insertLocked(entity.CartItem{
		UserID:     userID,
		MedicineID: medicineID,
		Quantity:   quantity,
	})
	return item, false, err
}

// JoinGroupSession adds the user to the session and bumps its participant
// counter in one step. A duplicate join fails with ErrConflict and a join on a
// full session fails with ErrCapacityExceeded; neither changes any state.
func (s *Store) JoinGroupSession(sessionID, userID int) (entity.GroupSessionParticipant, error) {
	s.groupSessions.mu.Lock()
	defer s.groupSessions.mu.Unlock()
	s.participants.mu.Lock()
	defer s.participants.mu.Unlock()

	session, err := s.groupSessions.getLocked(sessionID)
	if err != nil {
		return entity.GroupSessionParticipant{}, err
	}
	if _, joined := s.participants.lookupLocked(participantKey(sessionID, userID)); joined {
		return entity.GroupSessionParticipant{}, fmt.Errorf("user %d already joined group session %d: %w", userID, sessionID, ErrConflict)
	}
	if session.Full() {
		return entity.GroupSessionParticipant{}, fmt.Errorf("group session %d has %d of %d places taken: %w",
			sessionID, session.CurrentParticipants, session.MaxParticipants, ErrCapacityExceeded)
	}

	participant, err := s.participants.insertLocked(entity.GroupSessionParticipant{
		SessionID: sessionID,
		UserID:    userID,
	})
	if err != nil {
		return entity.GroupSessionParticipant{}, err
	}
	if _, err := s.groupSessions.updateLocked(sessionID, func(g *entity.GroupSession) {
		g.CurrentParticipants++
	}); err != nil {
		// Unreachable while both locks are held, but keep the pair in sync.
		s.participants.removeLocked(participant.ID)
		return entity.GroupSessionParticipant{}, err
	}
	return participant, nil
}

// LeaveGroupSession removes the user's participant row and decrements the
// counter, floored at zero. It reports false when the user had not joined.
func (s *Store) LeaveGroupSession(sessionID, userID int) bool {
	s.groupSessions.mu.Lock()
	defer s.groupSessions.mu.Unlock()
	s.participants.mu.Lock()
	defer s.participants.mu.Unlock()

	participant, ok := s.participants.lookupLocked(participantKey(sessionID, userID))
	if !ok {
		return false
	}
	if !s.participants.removeLocked(participant.ID) {
		return false
	}
	// The session may be missing only if the row was dangling; the row is gone either way.
	_, _ = s.groupSessions.updateLocked(sessionID, func(g *entity.GroupSession) {
		if g.CurrentParticipants > 0 {
			g.CurrentParticipants--
		}
	})
	return true
}
