package recordstore

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrMissingID   = errors.New("record id required")
	ErrCorruptData = errors.New("corrupt stored data")
)

// Backend es el mapeo persistente clave -> blob.
// Put debe reemplazar el valor completo de forma atómica.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

// Store serializa las escrituras por clave y centraliza la generación de IDs.
// Solo coordina dentro del proceso: dos procesos sobre el mismo backend
// siguen siendo "last writer wins" sobre el blob entero.
type Store struct {
	backend Backend
	newID   func() string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(backend Backend) *Store {
	return &Store{
		backend: backend,
		newID:   uuid.NewString,
		locks:   make(map[string]*sync.Mutex),
	}
}

func (s *Store) Close() error {
	if s == nil || s.backend == nil {
		return nil
	}
	return s.backend.Close()
}

func (s *Store) lockFor(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	return l
}
