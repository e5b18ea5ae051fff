package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-care-manager/internal/recordstore"
	"pet-care-manager/internal/recordstore/recordstoretest"
)

func newTestBackend(t *testing.T, prefix string) (*Backend, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	return NewBackendWithClient(client, prefix), mr
}

func TestBackend_RecordStoreSuite(t *testing.T) {
	recordstoretest.RunBackendSuite(t, func(t *testing.T) recordstore.Backend {
		b, _ := newTestBackend(t, "")
		return b
	})
}

func TestBackend_UsesPrefixAndNoTTL(t *testing.T) {
	ctx := context.Background()
	b, mr := newTestBackend(t, "petcare:")
	defer b.Close()

	require.NoError(t, b.Ping(ctx))
	require.NoError(t, b.Put(ctx, "pcm_feeding", []byte(`[]`)))

	v, err := mr.Get("petcare:pcm_feeding")
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
	assert.Zero(t, mr.TTL("petcare:pcm_feeding"))
}
