package repository

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned for unknown or expired session tokens
var ErrSessionNotFound = errors.New("session not found")

// Session is a logged-in visitor of the store replica
type Session struct {
	Token    string
	Username string
	Cart     []string
}

// SessionRepository keeps replica sessions in memory
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionRepository creates an empty session repository
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]*Session),
	}
}

// CreateSession starts a session for username
func (r *SessionRepository) CreateSession(username string) *Session {
	session := &Session{
		Token:    uuid.NewString(),
		Username: username,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.Token] = session

	return session.copy()
}

// GetSession returns a snapshot of the session
func (r *SessionRepository) GetSession(token string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session.copy(), nil
}

// DeleteSession ends the session; unknown tokens are ignored
func (r *SessionRepository) DeleteSession(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
}

// AddToCart adds productID to the session's cart once and returns the cart size
func (r *SessionRepository) AddToCart(token, productID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[token]
	if !ok {
		return 0, ErrSessionNotFound
	}
	if !session.InCart(productID) {
		session.Cart = append(session.Cart, productID)
	}
	return len(session.Cart), nil
}

// RemoveFromCart drops productID from the session's cart and returns the cart size
func (r *SessionRepository) RemoveFromCart(token, productID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[token]
	if !ok {
		return 0, ErrSessionNotFound
	}
	kept := session.Cart[:0]
	for _, id := range session.Cart {
		if id != productID {
			kept = append(kept, id)
		}
	}
	session.Cart = kept
	return len(session.Cart), nil
}

// InCart reports whether productID is in the cart
func (s *Session) InCart(productID string) bool {
	for _, id := range s.Cart {
		if id == productID {
			return true
		}
	}
	return false
}

func (s *Session) copy() *Session {
	c := *s
	c.Cart = append([]string(nil), s.Cart...)
	return &c
}
