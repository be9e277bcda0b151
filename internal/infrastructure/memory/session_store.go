// Package memory implementa el almacén de sesiones en el proceso (sin REDIS_ADDR).
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/sistema-estoque/internal/domain/entity"
	"github.com/jhoicas/sistema-estoque/internal/domain/repository"
)

var _ repository.SessionStore = (*SessionStore)(nil)

// SessionStore mapa protegido por RWMutex. Las sesiones vencidas se eliminan al leerlas.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]entity.Session
	now      func() time.Time
}

// NewSessionStore construye un almacén vacío.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]entity.Session), now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (s *SessionStore) WithClock(now func() time.Time) *SessionStore {
	s.now = now
	return s
}

func (s *SessionStore) Create(_ context.Context, session *entity.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = *session
	return nil
}

func (s *SessionStore) Get(_ context.Context, id string) (*entity.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if session.Expired(s.now()) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, nil
	}
	return &session, nil
}

func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

// Len número de sesiones guardadas (incluye vencidas aún no leídas).
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
