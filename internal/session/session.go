package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

var ErrSessionNotFound = fmt.Errorf("session not found")

type Session interface {
	ID() string
	Attribute(key string) (string, bool)
	SetAttribute(key string, value string)
	Attributes() map[string]string
}

type Store interface {
	Create() (string, error)
	Get(id string) (Session, error)
	Remove(id string)
	Len() int
}

type session struct {
	id    string
	mu    sync.RWMutex
	attrs map[string]string
}

func (s *session) ID() string {
	return s.id
}

func (s *session) Attribute(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.attrs[key]
	return v, ok
}

func (s *session) SetAttribute(key string, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attrs[key] = value
}

func (s *session) Attributes() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(s.attrs))
	for k, v := range s.attrs {
		out[k] = v
	}
	return out
}

type store struct {
	mu       sync.RWMutex
	sessions map[string]*session
	newID    func() (uuid.UUID, error)
}

func NewStore() Store {
	return &store{
		sessions: make(map[string]*session),
		newID:    uuid.NewRandom,
	}
}

// Create never reuses an identifier that is currently stored.
func (s *store) Create() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for {
		id, err := s.newID()
		if err != nil {
			return "", fmt.Errorf("generate session id: %w", err)
		}

		key := id.String()
		if _, exists := s.sessions[key]; exists {
			continue
		}

		s.sessions[key] = &session{
			id:    key,
			attrs: make(map[string]string),
		}
		return key, nil
	}
}

func (s *store) Get(id string) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
}

func (s *store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}
