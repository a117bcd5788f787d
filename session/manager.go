package session

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Factory builds the collaborators for a new session.
type Factory struct {
	Decoder   Decoder
	Generator Generator
	Feedback  FeedbackProvider
	Options   Options
}

// Manager is the in-memory registry of live sessions. Nothing it holds
// outlives the process.
type Manager struct {
	factory     Factory
	idleTimeout time.Duration
	logger      zerolog.Logger

	mu       sync.RWMutex
	sessions map[string]*Session

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// NewManager starts a registry. Sessions idle longer than idleTimeout are
// closed and dropped; zero disables eviction.
func NewManager(factory Factory, idleTimeout time.Duration) *Manager {
	logger := zerolog.Nop()
	if factory.Options.Logger != nil {
		logger = *factory.Options.Logger
	}
	m := &Manager{
		factory:     factory,
		idleTimeout: idleTimeout,
		logger:      logger,
		sessions:    make(map[string]*Session),
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
	if idleTimeout > 0 {
		go m.janitor(sweepInterval(idleTimeout))
	} else {
		close(m.done)
	}
	return m
}

// Create registers a new empty session for owner.
func (m *Manager) Create(owner string) *Session {
	f := m.factory
	s := New(owner, f.Decoder, f.Generator, f.Feedback, f.Options)

	m.mu.Lock()
	m.sessions[s.ID()] = s
	m.mu.Unlock()

	activeSessions.Inc()
	m.logger.Info().Str("session_id", s.ID()).Str("owner", owner).Msg("session created")
	return s
}

// Get returns the session with id if owner holds it.
func (m *Manager) Get(id, owner string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok || s.Owner() != owner {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Delete closes and removes the session.
func (m *Manager) Delete(id, owner string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if !ok || s.Owner() != owner {
		m.mu.Unlock()
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	m.mu.Unlock()

	activeSessions.Dec()
	s.Close()
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Close stops the janitor and closes every session.
func (m *Manager) Close() {
	m.once.Do(func() { close(m.stop) })
	<-m.done

	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		activeSessions.Dec()
		s.Close()
	}
}

func (m *Manager) janitor(every time.Duration) {
	defer close(m.done)
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.evictIdle(m.now())
		}
	}
}

func (m *Manager) evictIdle(now time.Time) {
	var expired []*Session
	m.mu.Lock()
	for id, s := range m.sessions {
		if now.Sub(s.LastActive()) > m.idleTimeout {
			expired = append(expired, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range expired {
		activeSessions.Dec()
		s.Close()
		m.logger.Info().Str("session_id", s.ID()).Msg("idle session evicted")
	}
}

func (m *Manager) now() time.Time {
	if m.factory.Options.Now != nil {
		return m.factory.Options.Now()
	}
	return time.Now()
}

func sweepInterval(idle time.Duration) time.Duration {
	every := idle / 4
	if every < 10*time.Millisecond {
		every = 10 * time.Millisecond
	}
	if every > time.Minute {
		every = time.Minute
	}
	return every
}
