package panel

import (
	"errors"
	"log/slog"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionStore keeps playground sessions in memory. A session expires after
// ttl without being fetched; expired sessions are closed.
type SessionStore struct {
	sessions   *gocache.Cache
	defaults   Config
	dispatcher Dispatcher
	logger     *slog.Logger
}

func NewSessionStore(ttl time.Duration, defaults Config, dispatcher Dispatcher, logger *slog.Logger) *SessionStore {
	if logger == nil {
		logger = slog.Default()
	}

	expiration, cleanup := gocache.NoExpiration, time.Duration(0)
	if ttl > 0 {
		expiration, cleanup = ttl, min(ttl, time.Minute)
	}

	c := gocache.New(expiration, cleanup)
	c.OnEvicted(func(id string, v any) {
		s, ok := v.(*Session)
		if !ok {
			return
		}
		// Get may have stored the session again after the janitor removed it.
		if cur, found := c.Get(id); found && cur == v {
			return
		}
		s.Close()
		logger.Debug("playground session closed", "session_id", id)
	})

	return &SessionStore{
		sessions:   c,
		defaults:   defaults,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Create starts a session with the store's default config.
func (st *SessionStore) Create() *Session {
	s := NewSession(st.defaults, st.dispatcher, st.logger)
	st.sessions.Set(s.ID(), s, gocache.DefaultExpiration)
	return s
}

// Get returns the session and extends its lifetime. A session that expired
// while being fetched is reported as not found.
func (st *SessionStore) Get(id string) (*Session, error) {
	v, ok := st.sessions.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	s := v.(*Session)
	st.sessions.Set(id, s, gocache.DefaultExpiration)
	if s.Closed() {
		st.sessions.Delete(id)
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (st *SessionStore) Delete(id string) {
	st.sessions.Delete(id)
}

func (st *SessionStore) Len() int {
	return st.sessions.ItemCount()
}

func (st *SessionStore) Defaults() Config {
	return st.defaults
}
