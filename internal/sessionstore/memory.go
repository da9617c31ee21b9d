package sessionstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

type entry struct {
	blob      []byte
	expiresAt time.Time
}

// Memory is an in-process Store. Expired entries are invisible to Get right
// away and are reclaimed by Prune, which StartPruning runs on a schedule.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry

	ttl     time.Duration
	now     func() time.Time
	onPrune func(removed int)
	sched   *cron.Cron
}

var _ Store = (*Memory)(nil)

type MemoryOption func(*Memory)

// WithDefaultTTL sets the TTL used when Set is called with a non-positive ttl.
func WithDefaultTTL(ttl time.Duration) MemoryOption {
	return func(m *Memory) {
		if ttl > 0 {
			m.ttl = ttl
		}
	}
}

func WithClock(now func() time.Time) MemoryOption {
	return func(m *Memory) {
		m.now = now
	}
}

// WithPruneHook registers a callback receiving the number of entries removed by each prune.
func WithPruneHook(fn func(removed int)) MemoryOption {
	return func(m *Memory) {
		m.onPrune = fn
	}
}

func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{
		entries: make(map[string]entry),
		ttl:     DefaultTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Memory) Get(_ context.Context, id string) ([]byte, bool, error) {
	m.mu.RLock()
	e, ok := m.entries[id]
	m.mu.RUnlock()

	if !ok || !m.now().Before(e.expiresAt) {
		return nil, false, nil
	}
	return append([]byte(nil), e.blob...), true, nil
}

func (m *Memory) Set(_ context.Context, id string, blob []byte, ttl time.Duration) error {
	if id == "" {
		return fmt.Errorf("session id is required")
	}
	if ttl <= 0 {
		ttl = m.ttl
	}

	m.mu.Lock()
	m.entries[id] = entry{
		blob:      append([]byte(nil), blob...),
		expiresAt: m.now().Add(ttl),
	}
	m.mu.Unlock()
	return nil
}

func (m *Memory) Destroy(_ context.Context, id string) error {
	m.mu.Lock()
	delete(m.entries, id)
	m.mu.Unlock()
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Prune removes expired entries and returns how many were removed. Candidates
// are collected under the read lock and deleted one at a time, so foreground
// calls are only ever held up by a single map delete.
func (m *Memory) Prune() int {
	now := m.now()

	m.mu.RLock()
	var expired []string
	for id, e := range m.entries {
		if !now.Before(e.expiresAt) {
			expired = append(expired, id)
		}
	}
	m.mu.RUnlock()

	removed := 0
	for _, id := range expired {
		m.mu.Lock()
		// A concurrent Set may have refreshed the entry since the scan.
		if e, ok := m.entries[id]; ok && !now.Before(e.expiresAt) {
			delete(m.entries, id)
			removed++
		}
		m.mu.Unlock()
	}

	if m.onPrune != nil {
		m.onPrune(removed)
	}
	return removed
}

// StartPruning schedules Prune every interval until Stop is called.
func (m *Memory) StartPruning(interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultPruneInterval
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sched != nil {
		return fmt.Errorf("session pruning already started")
	}

	sched := cron.New()
	_, err := sched.AddFunc(fmt.Sprintf("@every %s", interval), func() {
		removed := m.Prune()
		logger.Info().Msgf("Pruned %d expired sessions", removed)
	})
	if err != nil {
		return fmt.Errorf("schedule session pruning: %w", err)
	}
	sched.Start()
	m.sched = sched
	return nil
}

// Stop halts scheduled pruning and waits for a running prune to finish.
func (m *Memory) Stop() {
	m.mu.Lock()
	sched := m.sched
	m.sched = nil
	m.mu.Unlock()

	if sched != nil {
		<-sched.Stop().Done()
	}
}
