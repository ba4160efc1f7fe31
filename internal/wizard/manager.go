package wizard

import (
	"sync"

	"repouso-data/internal/schema"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Manager tracks open wizard sessions by handle. One State instance is
// owned by exactly one session; handles are opaque uuids.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	catalog  *schema.Catalog
	identity IdentityProvider
	records  RecordWriter
	logger   *zap.Logger
}

func NewManager(catalog *schema.Catalog, identity IdentityProvider, records RecordWriter, logger *zap.Logger) *Manager {
	return &Manager{
		sessions: map[string]*Session{},
		catalog:  catalog,
		identity: identity,
		records:  records,
		logger:   logger,
	}
}

// Open starts a fresh wizard session and returns its handle. The
// session is dropped from the manager once submission succeeds.
func (m *Manager) Open(onSuccess func()) (string, *Session) {
	handle := uuid.NewString()
	sess := NewSession(m.catalog, m.identity, m.records, func() {
		m.remove(handle)
		if onSuccess != nil {
			onSuccess()
		}
	}, m.logger)

	m.mu.Lock()
	m.sessions[handle] = sess
	m.mu.Unlock()
	return handle, sess
}

// Get resolves an open session by handle.
func (m *Manager) Get(handle string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[handle]
	return sess, ok
}

// Cancel discards the session's state and forgets the handle. Refused
// while the session is mid-submit.
func (m *Manager) Cancel(handle string) error {
	m.mu.RLock()
	sess, ok := m.sessions[handle]
	m.mu.RUnlock()
	if !ok {
		return nil
	}
	if err := sess.Cancel(); err != nil {
		return err
	}
	m.remove(handle)
	return nil
}

func (m *Manager) remove(handle string) {
	m.mu.Lock()
	delete(m.sessions, handle)
	m.mu.Unlock()
}
