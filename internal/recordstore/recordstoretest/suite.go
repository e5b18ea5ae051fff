// Package recordstoretest contiene la batería común que debe pasar cualquier Backend.
package recordstoretest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-care-manager/internal/recordstore"
)

// Note es un registro mínimo para ejercitar el store sin depender de los dominios.
type Note struct {
	ID    string `json:"id"`
	PetID string `json:"petId"`
	Text  string `json:"text"`
	Tag   string `json:"tag,omitempty"`
}

func (n Note) RecordID() string { return n.ID }

func (n Note) WithRecordID(id string) Note {
	n.ID = id
	return n
}

// RunBackendSuite corre las propiedades de round-trip, upsert, delete y orden
// contra un Backend nuevo por subtest.
func RunBackendSuite(t *testing.T, newBackend func(t *testing.T) recordstore.Backend) {
	t.Helper()

	newCollection := func(t *testing.T, key string) *recordstore.Collection[Note] {
		t.Helper()
		store := recordstore.New(newBackend(t))
		t.Cleanup(func() { _ = store.Close() })
		return recordstore.NewCollection[Note](store, key)
	}

	t.Run("empty collection lists nothing", func(t *testing.T) {
		c := newCollection(t, "notes")

		items, err := c.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("round trip", func(t *testing.T) {
		ctx := context.Background()
		c := newCollection(t, "notes")

		n := Note{ID: "n-1", PetID: "pet-1", Text: "Impfpass mitbringen"}
		require.NoError(t, c.Upsert(ctx, n))

		items, err := c.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []Note{n}, items)
	})

	t.Run("upsert twice keeps one", func(t *testing.T) {
		ctx := context.Background()
		c := newCollection(t, "notes")

		n := Note{ID: "n-1", PetID: "pet-1", Text: "a"}
		require.NoError(t, c.Upsert(ctx, n))
		require.NoError(t, c.Upsert(ctx, n))

		items, err := c.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []Note{n}, items)
	})

	t.Run("update in place keeps position", func(t *testing.T) {
		ctx := context.Background()
		c := newCollection(t, "notes")

		a := Note{ID: "a", Text: "first"}
		b := Note{ID: "b", Text: "second"}
		z := Note{ID: "z", Text: "third"}
		for _, n := range []Note{a, b, z} {
			require.NoError(t, c.Upsert(ctx, n))
		}

		b2 := Note{ID: "b", Text: "second, edited", Tag: "x"}
		require.NoError(t, c.Upsert(ctx, b2))

		items, err := c.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []Note{a, b2, z}, items)
	})

	t.Run("remove", func(t *testing.T) {
		ctx := context.Background()
		c := newCollection(t, "notes")

		require.NoError(t, c.Upsert(ctx, Note{ID: "a"}))
		require.NoError(t, c.Upsert(ctx, Note{ID: "b"}))
		require.NoError(t, c.Remove(ctx, "a"))
		// id inexistente: no-op
		require.NoError(t, c.Remove(ctx, "missing"))

		items, err := c.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []Note{{ID: "b"}}, items)

		_, err = c.Get(ctx, "a")
		assert.ErrorIs(t, err, recordstore.ErrNotFound)
	})

	t.Run("prepend puts newest first", func(t *testing.T) {
		ctx := context.Background()
		c := newCollection(t, "gallery")

		a, err := c.Prepend(ctx, Note{Text: "a"})
		require.NoError(t, err)
		b, err := c.Prepend(ctx, Note{Text: "b"})
		require.NoError(t, err)

		assert.NotEmpty(t, a.ID)
		assert.NotEqual(t, a.ID, b.ID)

		items, err := c.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []Note{b, a}, items)
	})

	t.Run("collections are independent", func(t *testing.T) {
		ctx := context.Background()
		store := recordstore.New(newBackend(t))
		t.Cleanup(func() { _ = store.Close() })

		pets := recordstore.NewCollection[Note](store, "pets")
		appts := recordstore.NewCollection[Note](store, "appointments")

		require.NoError(t, pets.Upsert(ctx, Note{ID: "p"}))

		items, err := appts.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("concurrent creates are not lost", func(t *testing.T) {
		ctx := context.Background()
		c := newCollection(t, "notes")

		const n = 25
		var wg sync.WaitGroup
		errs := make(chan error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				if _, err := c.Create(ctx, Note{Text: fmt.Sprintf("note %d", i)}); err != nil {
					errs <- err
				}
			}(i)
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		items, err := c.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, n)

		seen := map[string]struct{}{}
		for _, it := range items {
			seen[it.ID] = struct{}{}
		}
		assert.Len(t, seen, n)
	})

	t.Run("corrupt blob is reported and never overwritten", func(t *testing.T) {
		ctx := context.Background()
		backend := newBackend(t)
		store := recordstore.New(backend)
		t.Cleanup(func() { _ = store.Close() })

		garbage := []byte(`{"not":"an array"`)
		require.NoError(t, backend.Put(ctx, "notes", garbage))

		c := recordstore.NewCollection[Note](store, "notes")

		_, err := c.List(ctx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, recordstore.ErrCorruptData))

		err = c.Upsert(ctx, Note{ID: "a"})
		assert.ErrorIs(t, err, recordstore.ErrCorruptData)

		raw, found, err := backend.Get(ctx, "notes")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, garbage, raw)
	})
}
