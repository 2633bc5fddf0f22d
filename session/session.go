// Package session holds the client-side auth token. The token lives in
// an explicit Session object rather than package-level state: callers
// construct it from storage at startup and pass it to whatever issues
// requests.
package session

import "sync"

// TokenStorage persists the active token so a session survives process
// restart on the same device.
type TokenStorage interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

type Session struct {
	mu      sync.Mutex
	storage TokenStorage
	token   string
}

// NewFromStorage builds a session hydrated from durable storage. A
// missing stored token is not an error; the session simply starts
// unauthenticated.
func NewFromStorage(storage TokenStorage) (*Session, error) {
	token, err := storage.Load()
	if err != nil {
		return nil, err
	}
	return &Session{storage: storage, token: token}, nil
}

// Set records the token and persists it.
func (s *Session) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.storage.Save(token); err != nil {
		return err
	}
	s.token = token
	return nil
}

// Clear drops the token from both the session and durable storage.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.storage.Clear(); err != nil {
		return err
	}
	s.token = ""
	return nil
}

// Token returns the active token and whether one is set.
func (s *Session) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != ""
}
