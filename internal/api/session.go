package api

import (
	"sync"

	"github.com/dpereira/travel-assistant/internal/domain/trip"
	"github.com/dpereira/travel-assistant/internal/wizard"
	"github.com/google/uuid"
)

// Session holds one in-progress travel request: the aggregate being
// built, its wizard position, and the editable email preview. Sessions
// live in memory only; they are discarded when the process ends.
type Session struct {
	ID string

	mu sync.Mutex

	Req    *trip.Request
	Wizard *wizard.Controller

	// editedBody is the user's hand-edited preview text. It is cleared
	// whenever a trip field changes, matching the preview regenerating
	// on every edit.
	editedBody    string
	hasEditedBody bool

	// exporting guards against a duplicate export while one is in
	// flight. There is no cancellation; the flag is the whole model.
	exporting bool
}

func newSession(req *trip.Request) *Session {
	return &Session{
		ID:     uuid.NewString(),
		Req:    req,
		Wizard: wizard.NewController(req),
	}
}

// withLock runs fn while holding the session lock.
func (s *Session) withLock(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

// tryBeginExport sets the in-flight flag, reporting whether it was
// free.
func (s *Session) tryBeginExport() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.exporting {
		return false
	}
	s.exporting = true
	return true
}

func (s *Session) endExport() {
	s.mu.Lock()
	s.exporting = false
	s.mu.Unlock()
}

// SessionStore is an in-memory session registry keyed by ID.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

// Create registers a session for the given request.
func (st *SessionStore) Create(req *trip.Request) *Session {
	s := newSession(req)
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get looks up a session by ID.
func (st *SessionStore) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

// Delete removes a session.
func (st *SessionStore) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}
