// Package repository holds the in-memory domain store. Every entity kind lives
// in its own table guarded by its own lock; operations that span two kinds are
// in composite.go.
package repository

import (
	"fmt"
	"time"

	"github.com/lakagar/healing-minds-and-mindful-connection/internal/entity"
)

// Store is the domain data store. Construct one with New and share it by
// reference; the zero value is not usable.
type Store struct {
	now func() time.Time

	users         *table[entity.User]
	moods         *table[entity.MoodEntry]
	medicines     *table[entity.Medicine]
	cartItems     *table[entity.CartItem]
	therapists    *table[entity.Therapist]
	sessions      *table[entity.Session]
	groupSessions *table[entity.GroupSession]
	participants  *table[entity.GroupSessionParticipant]
	chats         *table[entity.ChatHistoryEntry]
}

type Option func(*Store)

// WithClock overrides the time source used for default timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		now: time.Now,
		users: newTable("user",
			func(u entity.User) int { return u.ID },
			func(u *entity.User, id int) { u.ID = id },
			func(u entity.User) string { return u.Username }),
		moods: newTable("mood entry",
			func(m entity.MoodEntry) int { return m.ID },
			func(m *entity.MoodEntry, id int) { m.ID = id },
			nil),
		medicines: newTable("medicine",
			func(m entity.Medicine) int { return m.ID },
			func(m *entity.Medicine, id int) { m.ID = id },
			nil),
		cartItems: newTable("cart item",
			func(c entity.CartItem) int { return c.ID },
			func(c *entity.CartItem, id int) { c.ID = id },
			func(c entity.CartItem) string { return cartKey(c.UserID, c.MedicineID) }),
		therapists: newTable("therapist",
			func(t entity.Therapist) int { return t.ID },
			func(t *entity.Therapist, id int) { t.ID = id },
			nil),
		sessions: newTable("session",
			func(s entity.Session) int { return s.ID },
			func(s *entity.Session, id int) { s.ID = id },
			nil),
		groupSessions: newTable("group session",
			func(g entity.GroupSession) int { return g.ID },
			func(g *entity.GroupSession, id int) { g.ID = id },
			nil),
		participants: newTable("group session participant",
			func(p entity.GroupSessionParticipant) int { return p.ID },
			func(p *entity.GroupSessionParticipant, id int) { p.ID = id },
			func(p entity.GroupSessionParticipant) string { return participantKey(p.SessionID, p.UserID) }),
		chats: newTable("chat history entry",
			func(c entity.ChatHistoryEntry) int { return c.ID },
			func(c *entity.ChatHistoryEntry, id int) { c.ID = id },
			nil),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func cartKey(userID, medicineID int) string {
	return fmt.Sprintf("%d:%d", userID, medicineID)
}

func participantKey(sessionID, userID int) string {
	return fmt.Sprintf("%d:%d", sessionID, userID)
}

// Users ----------------------------------------------------------------------

// CreateUser inserts a user. Duplicate usernames fail with ErrConflict.
func (s *Store) CreateUser(u entity.User) (entity.User, error) {
	if u.Username == "" {
		return entity.User{}, fmt.Errorf("username is required: %w", ErrValidation)
	}
	if u.Language == "" {
		u.Language = entity.DefaultLanguage
	}
	if u.Theme == "" {
		u.Theme = entity.DefaultTheme
	}
	return s.users.insert(u)
}

func (s *Store) GetUser(id int) (entity.User, error) {
	return s.users.get(id)
}

// GetUserByUsername looks a user up through the username index.
func (s *Store) GetUserByUsername(username string) (entity.User, error) {
	u, ok := s.users.lookup(username)
	if !ok {
		return entity.User{}, fmt.Errorf("user %q: %w", username, ErrNotFound)
	}
	return u, nil
}

// UpdateUser merges patch into the user. Renaming onto a taken username fails
// with ErrConflict and leaves the user unchanged.
func (s *Store) UpdateUser(id int, patch entity.UserPatch) (entity.User, error) {
	if patch.Username != nil && *patch.Username == "" {
		return entity.User{}, fmt.Errorf("username cannot be empty: %w", ErrValidation)
	}
	return s.users.update(id, patch.Apply)
}

func (s *Store) CountUsers() int {
	return s.users.len()
}

// Mood entries ---------------------------------------------------------------

// CreateMoodEntry inserts a mood entry, stamping it with the current time when
// no date is given.
func (s *Store) CreateMoodEntry(e entity.MoodEntry) (entity.MoodEntry, error) {
	if e.Date.IsZero() {
		e.Date = s.now()
	}
	return s.moods.insert(e)
}

func (s *Store) GetMoodEntry(id int) (entity.MoodEntry, error) {
	return s.moods.get(id)
}

// ListMoodEntries returns the user's mood entries, most recent first.
func (s *Store) ListMoodEntries(userID int) []entity.MoodEntry {
	entries := s.moods.list(func(m entity.MoodEntry) bool { return m.UserID == userID })
	sortMoodsNewestFirst(entries)
	return entries
}

// Medicines ------------------------------------------------------------------

// CreateMedicine inserts a catalog entry. Medicines are in stock unless the
// input says otherwise.
func (s *Store) CreateMedicine(in entity.NewMedicine) (entity.Medicine, error) {
	return s.medicines.insert(in.Medicine())
}

func (s *Store) GetMedicine(id int) (entity.Medicine, error) {
	return s.medicines.get(id)
}

func (s *Store) ListMedicines() []entity.Medicine {
	return s.medicines.list(nil)
}

func (s *Store) ListMedicinesByCategory(category string) []entity.Medicine {
	return s.medicines.list(func(m entity.Medicine) bool { return m.Category == category })
}

// RemoveMedicine drops a medicine from the catalog. Cart lines that reference
// it are left in place.
func (s *Store) RemoveMedicine(id int) bool {
	return s.medicines.remove(id)
}

// Cart -----------------------------------------------------------------------

func (s *Store) ListCartItems(userID int) []entity.CartItem {
	return s.cartItems.list(func(c entity.CartItem) bool { return c.UserID == userID })
}

func (s *Store) GetCartItem(id int) (entity.CartItem, error) {
	return s.cartItems.get(id)
}

// UpdateCartItemQuantity sets the quantity of a cart line. Quantities below 1
// are clamped to 1; quantities above entity.MaxCartQuantity are rejected.
func (s *Store) UpdateCartItemQuantity(id, quantity int) (entity.CartItem, error) {
	quantity = clampQuantity(quantity)
	if quantity > entity.MaxCartQuantity {
		return entity.CartItem{}, errQuantityTooLarge(quantity)
	}
	return s.cartItems.update(id, func(c *entity.CartItem) {
		c.Quantity = quantity
	})
}

func (s *Store) RemoveCartItem(id int) bool {
	return s.cartItems.remove(id)
}

// ClearCart removes every cart line of the user and returns how many were removed.
func (s *Store) ClearCart(userID int) int {
	s.cartItems.mu.Lock()
	defer s.cartItems.mu.Unlock()

	removed := 0
	for _, item := range s.cartItems.listLocked(func(c entity.CartItem) bool { return c.UserID == userID }) {
		if s.cartItems.removeLocked(item.ID) {
			removed++
		}
	}
	return removed
}

func clampQuantity(q int) int {
	if q < 1 {
		return 1
	}
	return q
}

func errQuantityTooLarge(q int) error {
	return fmt.Errorf("quantity %d exceeds %d: %w", q, entity.MaxCartQuantity, ErrValidation)
}

// Therapists -----------------------------------------------------------------

func (s *Store) CreateTherapist(in entity.NewTherapist) (entity.Therapist, error) {
	return s.therapists.insert(in.Therapist())
}

func (s *Store) GetTherapist(id int) (entity.Therapist, error) {
	return s.therapists.get(id)
}

func (s *Store) ListTherapists() []entity.Therapist {
	return s.therapists.list(nil)
}

// RemoveTherapist drops a therapist. Sessions that reference them are kept.
func (s *Store) RemoveTherapist(id int) bool {
	return s.therapists.remove(id)
}

// Sessions -------------------------------------------------------------------

// CreateSession books a one-on-one session. An empty status defaults to scheduled.
func (s *Store) CreateSession(sess entity.Session) (entity.Session, error) {
	if sess.Status == "" {
		sess.Status = entity.StatusScheduled
	}
	if !entity.ValidStatus(sess.Status) {
		return entity.Session{}, fmt.Errorf("session status %q: %w", sess.Status, ErrValidation)
	}
	return s.sessions.insert(sess)
}

func (s *Store) GetSession(id int) (entity.Session, error) {
	return s.sessions.get(id)
}

// ListSessions returns the user's sessions, earliest first.
func (s *Store) ListSessions(userID int) []entity.Session {
	out := s.sessions.list(func(sess entity.Session) bool { return sess.UserID == userID })
	sortByTime(out, func(sess entity.Session) time.Time { return sess.SessionDate })
	return out
}

func (s *Store) UpdateSessionStatus(id int, status string) (entity.Session, error) {
	if !entity.ValidStatus(status) {
		return entity.Session{}, fmt.Errorf("session status %q: %w", status, ErrValidation)
	}
	return s.sessions.update(id, func(sess *entity.Session) {
		sess.Status = status
	})
}

// Group sessions -------------------------------------------------------------

// CreateGroupSession inserts a group session. The participant counter always
// starts at zero regardless of the value passed in.
func (s *Store) CreateGroupSession(g entity.GroupSession) (entity.GroupSession, error) {
	if g.MaxParticipants < 1 {
		return entity.GroupSession{}, fmt.Errorf("max participants must be positive: %w", ErrValidation)
	}
	if g.Status == "" {
		g.Status = entity.StatusScheduled
	}
	if !entity.ValidStatus(g.Status) {
		return entity.GroupSession{}, fmt.Errorf("group session status %q: %w", g.Status, ErrValidation)
	}
	g.CurrentParticipants = 0
	return s.groupSessions.insert(g)
}

func (s *Store) GetGroupSession(id int) (entity.GroupSession, error) {
	return s.groupSessions.get(id)
}

// ListGroupSessions returns all group sessions, earliest first.
func (s *Store) ListGroupSessions() []entity.GroupSession {
	out := s.groupSessions.list(nil)
	sortByTime(out, func(g entity.GroupSession) time.Time { return g.SessionDate })
	return out
}

// UpdateGroupSessionStatus is the administrative status change. It never
// touches the participant counter.
func (s *Store) UpdateGroupSessionStatus(id int, status string) (entity.GroupSession, error) {
	if !entity.ValidStatus(status) {
		return entity.GroupSession{}, fmt.Errorf("group session status %q: %w", status, ErrValidation)
	}
	return s.groupSessions.update(id, func(g *entity.GroupSession) {
		g.Status = status
	})
}

func (s *Store) ListParticipants(sessionID int) []entity.GroupSessionParticipant {
	return s.participants.list(func(p entity.GroupSessionParticipant) bool { return p.SessionID == sessionID })
}

// ListUserParticipations returns the participant rows held by the user.
func (s *Store) ListUserParticipations(userID int) []entity.GroupSessionParticipant {
	return s.participants.list(func(p entity.GroupSessionParticipant) bool { return p.UserID == userID })
}

// Chat history ---------------------------------------------------------------

// SaveChatHistory appends an exchange; the timestamp is always set by the store.
func (s *Store) SaveChatHistory(e entity.ChatHistoryEntry) (entity.ChatHistoryEntry, error) {
	e.Timestamp = s.now()
	return s.chats.insert(e)
}

// ListChatHistory returns the user's exchanges, oldest first.
func (s *Store) ListChatHistory(userID int) []entity.ChatHistoryEntry {
	out := s.chats.list(func(c entity.ChatHistoryEntry) bool { return c.UserID == userID })
	sortByTime(out, func(c entity.ChatHistoryEntry) time.Time { return c.Timestamp })
	return out
}
