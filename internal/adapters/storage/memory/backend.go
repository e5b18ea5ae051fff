package memory

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// Backend guarda los blobs en un map. Pensado para dev y tests.
type Backend struct {
	mu    sync.RWMutex
	byKey map[string][]byte
}

func NewBackend() *Backend {
	return &Backend{
		byKey: make(map[string][]byte),
	}
}

func (b *Backend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	v, ok := b.byKey[key]
	if !ok {
		return nil, false, nil
	}
	// copia para que nadie mute el valor guardado
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (b *Backend) Put(ctx context.Context, key string, value []byte) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("key required")
	}

	v := make([]byte, len(value))
	copy(v, value)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.byKey[key] = v
	return nil
}

func (b *Backend) Close() error { return nil }
