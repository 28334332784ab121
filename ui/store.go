package ui

import (
	"sync"
	"time"
)

// Page is the interaction state of one browser session's current page.
type Page struct {
	Hub *Hub
	Nav *NavState
}

type session struct {
	mu       sync.Mutex
	page     Page
	lastSeen time.Time
	removed  bool // dropped from the store; callers must fetch again
}

// Store keeps one mounted page per session id.
// Work on a session is serialized; different sessions proceed in parallel.
// Lock order: a session's lock, then the store's, never the reverse.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
	now      func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{sessions: map[string]*session{}, ttl: ttl, now: time.Now}
}

// Mount replaces the session's page with a freshly mounted one,
// unmounting the previous navigation bar first.
func (s *Store) Mount(id string) Snapshot {
	sess := s.lock(id)
	defer sess.mu.Unlock()

	if sess.page.Nav != nil {
		sess.page.Nav.Unmount()
	}
	hub := NewHub()
	sess.page = Page{Hub: hub, Nav: Mount(hub)}
	sess.lastSeen = s.now()
	return sess.page.Nav.Snapshot()
}

// With runs fn on the session's page, mounting one if needed.
func (s *Store) With(id string, fn func(p Page) error) error {
	sess := s.lock(id)
	defer sess.mu.Unlock()

	if sess.page.Nav == nil || !sess.page.Nav.Mounted() {
		hub := NewHub()
		sess.page = Page{Hub: hub, Nav: Mount(hub)}
	}
	sess.lastSeen = s.now()
	return fn(sess.page)
}

// Remove unmounts and forgets a session.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		return
	}

	sess.mu.Lock()
	s.drop(id, sess)
	sess.mu.Unlock()
}

// Sweep unmounts sessions idle for longer than the ttl and returns how many.
func (s *Store) Sweep() int {
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	all := make(map[string]*session, len(s.sessions))
	for id, sess := range s.sessions {
		all[id] = sess
	}
	s.mu.Unlock()

	n := 0
	for id, sess := range all {
		// Checked under the session lock, so a request holding it keeps
		// the session alive
		sess.mu.Lock()
		if !sess.removed && sess.lastSeen.Before(cutoff) {
			s.drop(id, sess)
			n++
		}
		sess.mu.Unlock()
	}
	return n
}

// drop unmounts sess and takes it out of the map. sess.mu must be held.
func (s *Store) drop(id string, sess *session) {
	sess.removed = true
	if sess.page.Nav != nil {
		sess.page.Nav.Unmount()
	}
	s.forget(id, sess)
}

func (s *Store) forget(id string, sess *session) {
	s.mu.Lock()
	if s.sessions[id] == sess {
		delete(s.sessions, id)
	}
	s.mu.Unlock()
}

// Len is the number of tracked sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Store) get(id string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		sess = &session{lastSeen: s.now()}
		s.sessions[id] = sess
	}
	return sess
}

// lock returns the session for id with its lock held. A session removed
// between lookup and locking is skipped and the lookup retried.
func (s *Store) lock(id string) *session {
	for {
		sess := s.get(id)
		sess.mu.Lock()
		if !sess.removed {
			return sess
		}
		sess.mu.Unlock()
		s.forget(id, sess)
	}
}
