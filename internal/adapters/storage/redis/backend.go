package redis

import (
	"context"
	"errors"
	"strings"

	"github.com/redis/go-redis/v9"
)

type Options struct {
	Addr     string
	Password string
	DB       int

	// Prefix se antepone a cada clave de colección (p.ej. "petcare:").
	Prefix string
}

// Backend guarda cada colección como un string de Redis. SET reemplaza el valor entero.
type Backend struct {
	client *redis.Client
	prefix string
}

func NewBackend(opts Options) *Backend {
	return NewBackendWithClient(redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	}), opts.Prefix)
}

// NewBackendWithClient permite inyectar el cliente (tests con miniredis).
func NewBackendWithClient(client *redis.Client, prefix string) *Backend {
	return &Backend{
		client: client,
		prefix: strings.TrimSpace(prefix),
	}
}

// Ping verifica la conexión al arrancar.
func (b *Backend) Ping(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}

func (b *Backend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := b.client.Get(ctx, b.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (b *Backend) Put(ctx context.Context, key string, value []byte) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("redis: key required")
	}
	// sin TTL: los registros viven hasta que se borran
	return b.client.Set(ctx, b.prefix+key, value, 0).Err()
}

func (b *Backend) Close() error {
	if b == nil || b.client == nil {
		return nil
	}
	return b.client.Close()
}
