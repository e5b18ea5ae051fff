package gallery

import "context"

type Repository interface {
	List(ctx context.Context) ([]Item, error)
	Prepend(ctx context.Context, it Item) (Item, error)
	Remove(ctx context.Context, id string) error
}
