package pets

import "context"

// Repository lo implementa recordstore.Collection[Pet].
type Repository interface {
	List(ctx context.Context) ([]Pet, error)
	Get(ctx context.Context, id string) (Pet, error)
	Create(ctx context.Context, p Pet) (Pet, error)
	// Update aplica fn sobre la mascota guardada de forma atómica.
	Update(ctx context.Context, id string, fn func(Pet) (Pet, error)) (Pet, error)
	Remove(ctx context.Context, id string) error
}
