package storage

import "sync"

// Monotonic wraps a Backend shared by several concurrent games so the
// persisted high score never decreases: a game that loaded an older value
// cannot overwrite a better score saved by another.
type Monotonic struct {
	mu    sync.Mutex
	inner Backend
	best  int
}

// NewMonotonic wraps inner and primes the best score from it.
// A failing initial load starts from 0.
func NewMonotonic(inner Backend) *Monotonic {
	m := &Monotonic{inner: inner}
	if score, err := inner.Load(); err == nil {
		m.best = score
	}
	return m
}

// Load returns the best score known to this process or stored by inner.
func (m *Monotonic) Load() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	score, err := m.inner.Load()
	if err != nil {
		if m.best > 0 {
			return m.best, nil
		}
		return 0, err
	}
	m.best = max(m.best, score)
	return m.best, nil
}

// Save persists score only if it beats the best known score.
func (m *Monotonic) Save(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if score <= m.best {
		return nil
	}
	m.best = score
	return m.inner.Save(score)
}

// Reset clears the inner backend and forgets the best score.
func (m *Monotonic) Reset() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.best = 0
	return m.inner.Reset()
}

// Close closes the inner backend.
func (m *Monotonic) Close() error {
	return m.inner.Close()
}

// Inner returns the wrapped backend.
func (m *Monotonic) Inner() Backend {
	return m.inner
}
