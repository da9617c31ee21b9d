package repository

import (
	"fmt"
	"sort"
	"sync"
)

// table is a keyed collection for one entity kind. Each table owns its lock and
// its id allocator; ids start at 1 and are never handed out twice.
type table[T any] struct {
	mu     sync.RWMutex
	kind   string
	nextID int
	rows   map[int]T
	getID  func(T) int
	setID  func(*T, int)

	// key, when set, defines a unique index over the rows.
	key   func(T) string
	index map[string]int
}

func newTable[T any](kind string, getID func(T) int, setID func(*T, int), key func(T) string) *table[T] {
	t := &table[T]{
		kind:   kind,
		nextID: 1,
		rows:   make(map[int]T),
		getID:  getID,
		setID:  setID,
		key:    key,
	}
	if key != nil {
		t.index = make(map[string]int)
	}
	return t
}

func (t *table[T]) insert(rec T) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.insertLocked(rec)
}

func (t *table[T]) insertLocked(rec T) (T, error) {
	var k string
	if t.key != nil {
		k = t.key(rec)
		if _, exists := t.index[k]; exists {
			var zero T
			return zero, fmt.Errorf("%s %q already exists: %w", t.kind, k, ErrConflict)
		}
	}

	id := t.nextID
	t.nextID++
	t.setID(&rec, id)
	t.rows[id] = rec
	if t.key != nil {
		t.index[k] = id
	}
	return rec, nil
}

func (t *table[T]) get(id int) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.getLocked(id)
}

func (t *table[T]) getLocked(id int) (T, error) {
	rec, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s %d: %w", t.kind, id, ErrNotFound)
	}
	return rec, nil
}

func (t *table[T]) lookup(key string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lookupLocked(key)
}

func (t *table[T]) lookupLocked(key string) (T, bool) {
	var zero T
	if t.key == nil {
		return zero, false
	}
	id, ok := t.index[key]
	if !ok {
		return zero, false
	}
	return t.rows[id], true
}

// list returns the rows matching pred ordered by id. A nil pred matches everything.
func (t *table[T]) list(pred func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.listLocked(pred)
}

func (t *table[T]) listLocked(pred func(T) bool) []T {
	out := make([]T, 0, len(t.rows))
	for _, rec := range t.rows {
		if pred == nil || pred(rec) {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return t.getID(out[i]) < t.getID(out[j]) })
	return out
}

// update applies fn to a copy of the row and stores the result. The id cannot
// be changed by fn.
func (t *table[T]) update(id int, fn func(*T)) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.updateLocked(id, fn)
}

func (t *table[T]) updateLocked(id int, fn func(*T)) (T, error) {
	current, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s %d: %w", t.kind, id, ErrNotFound)
	}

	next := current
	fn(&next)
	t.setID(&next, id)

	if t.key != nil {
		oldKey, newKey := t.key(current), t.key(next)
		if oldKey != newKey {
			if other, taken := t.index[newKey]; taken && other != id {
				var zero T
				return zero, fmt.Errorf("%s %q already exists: %w", t.kind, newKey, ErrConflict)
			}
			delete(t.index, oldKey)
			t.index[newKey] = id
		}
	}

	t.rows[id] = next
	return next, nil
}

func (t *table[T]) remove(id int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.removeLocked(id)
}

func (t *table[T]) removeLocked(id int) bool {
	rec, ok := t.rows[id]
	if !ok {
		return false
	}
	delete(t.rows, id)
	if t.key != nil {
		delete(t.index, t.key(rec))
	}
	return true
}

func (t *table[T]) len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}
