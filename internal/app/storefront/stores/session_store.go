package stores

import (
	"sync"

	"github.com/maxiipins/storefront-service/internal/app/storefront/domain"
)

// SessionSnapshot is an immutable read of one session's auth state.
type SessionSnapshot struct {
	State           domain.SessionState
	IsAuthenticated bool
	User            *domain.User
	Token           string
}

// SessionStore keeps one AuthSession per session key and applies the state
// machine transitions under a single lock.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*domain.AuthSession
	subs     map[int]func(sessionKey string)
	nextID   int
}

// NewSessionStore returns an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*domain.AuthSession),
		subs:     make(map[int]func(string)),
	}
}

// Subscribe registers fn to run after every transition. The returned
// function unsubscribes.
func (s *SessionStore) Subscribe(fn func(sessionKey string)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *SessionStore) notify(sessionKey string) {
	s.mu.Lock()
	fns := make([]func(string), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(sessionKey)
	}
}

// session allocates on first write. Reads of unseen keys must not grow the
// map; they report the anonymous state instead.
func (s *SessionStore) session(sessionKey string) *domain.AuthSession {
	sess, ok := s.sessions[sessionKey]
	if !ok {
		sess = domain.NewAuthSession()
		s.sessions[sessionKey] = sess
	}
	return sess
}

// Get returns a snapshot of the session's auth state. An unseen key is
// anonymous and allocates nothing.
func (s *SessionStore) Get(sessionKey string) SessionSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionKey]
	if !ok {
		return SessionSnapshot{State: domain.SessionAnonymous}
	}
	var user *domain.User
	if u := sess.User(); u != nil {
		copied := *u
		user = &copied
	}
	return SessionSnapshot{
		State:           sess.State(),
		IsAuthenticated: sess.IsAuthenticated(),
		User:            user,
		Token:           sess.Token(),
	}
}

// BeginLogin marks a login attempt in flight.
func (s *SessionStore) BeginLogin(sessionKey string) error {
	s.mu.Lock()
	err := s.session(sessionKey).BeginLogin()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify(sessionKey)
	return nil
}

// CompleteLogin applies a successful login.
func (s *SessionStore) CompleteLogin(sessionKey string, user domain.User, token string) {
	s.mu.Lock()
	s.session(sessionKey).CompleteLogin(user, token)
	s.mu.Unlock()
	s.notify(sessionKey)
}

// FailLogin restores the pre-attempt state.
func (s *SessionStore) FailLogin(sessionKey string) {
	s.mu.Lock()
	s.session(sessionKey).FailLogin()
	s.mu.Unlock()
	s.notify(sessionKey)
}

// Logout drops the session back to anonymous and releases its entry.
func (s *SessionStore) Logout(sessionKey string) {
	s.mu.Lock()
	delete(s.sessions, sessionKey)
	s.mu.Unlock()
	s.notify(sessionKey)
}
