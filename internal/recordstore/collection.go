package recordstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Record es lo mínimo que necesita una colección: leer y reasignar el ID.
type Record[T any] interface {
	RecordID() string
	WithRecordID(id string) T
}

// Collection es una secuencia ordenada de T guardada como un único blob JSON bajo key.
type Collection[T Record[T]] struct {
	store *Store
	key   string
}

func NewCollection[T Record[T]](store *Store, key string) *Collection[T] {
	return &Collection[T]{store: store, key: key}
}

// List devuelve la colección completa. Una clave nunca escrita da un slice vacío.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	return c.load(ctx)
}

func (c *Collection[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	id = strings.TrimSpace(id)
	if id == "" {
		return zero, ErrNotFound
	}

	items, err := c.load(ctx)
	if err != nil {
		return zero, err
	}
	for _, it := range items {
		if it.RecordID() == id {
			return it, nil
		}
	}
	return zero, ErrNotFound
}

// Upsert reemplaza en su posición el elemento con el mismo ID o lo agrega al final.
func (c *Collection[T]) Upsert(ctx context.Context, rec T) error {
	if strings.TrimSpace(rec.RecordID()) == "" {
		return ErrMissingID
	}
	return c.mutate(ctx, func(items []T) ([]T, error) {
		for i, it := range items {
			if it.RecordID() == rec.RecordID() {
				items[i] = rec
				return items, nil
			}
		}
		return append(items, rec), nil
	})
}

// Update busca id y aplica fn bajo el lock de la clave, en su posición.
// Si id no existe devuelve ErrNotFound; si fn falla no se escribe nada.
func (c *Collection[T]) Update(ctx context.Context, id string, fn func(T) (T, error)) (T, error) {
	var out T
	id = strings.TrimSpace(id)
	if id == "" {
		return out, ErrNotFound
	}

	err := c.mutate(ctx, func(items []T) ([]T, error) {
		for i, it := range items {
			if it.RecordID() != id {
				continue
			}
			next, err := fn(it)
			if err != nil {
				return nil, err
			}
			items[i] = next.WithRecordID(id)
			out = items[i]
			return items, nil
		}
		return nil, ErrNotFound
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// Create asigna un ID nuevo generado por el store y agrega el registro al final.
func (c *Collection[T]) Create(ctx context.Context, rec T) (T, error) {
	rec = rec.WithRecordID(c.store.newID())
	if err := c.Upsert(ctx, rec); err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

// Prepend inserta siempre al inicio, sin buscar por ID (galería: solo se agrega).
func (c *Collection[T]) Prepend(ctx context.Context, rec T) (T, error) {
	if strings.TrimSpace(rec.RecordID()) == "" {
		rec = rec.WithRecordID(c.store.newID())
	}
	err := c.mutate(ctx, func(items []T) ([]T, error) {
		return append([]T{rec}, items...), nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

// Remove filtra el ID y reescribe. Un ID inexistente no es error.
func (c *Collection[T]) Remove(ctx context.Context, id string) error {
	return c.mutate(ctx, func(items []T) ([]T, error) {
		out := items[:0]
		for _, it := range items {
			if it.RecordID() != id {
				out = append(out, it)
			}
		}
		return out, nil
	})
}

func (c *Collection[T]) mutate(ctx context.Context, fn func([]T) ([]T, error)) error {
	l := c.store.lockFor(c.key)
	l.Lock()
	defer l.Unlock()

	// Si el blob está corrupto load falla y no se sobrescribe nada.
	items, err := c.load(ctx)
	if err != nil {
		return err
	}

	items, err = fn(items)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("recordstore: marshal %s: %w", c.key, err)
	}
	if err := c.store.backend.Put(ctx, c.key, raw); err != nil {
		return fmt.Errorf("recordstore: put %s: %w", c.key, err)
	}
	return nil
}

func (c *Collection[T]) load(ctx context.Context) ([]T, error) {
	raw, found, err := c.store.backend.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("recordstore: get %s: %w", c.key, err)
	}
	if !found || len(raw) == 0 {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: key=%s: %v", ErrCorruptData, c.key, err)
	}
	if items == nil {
		// "null" guardado explícitamente
		items = []T{}
	}
	return items, nil
}
