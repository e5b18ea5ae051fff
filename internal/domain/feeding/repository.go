package feeding

import "context"

type Repository interface {
	List(ctx context.Context) ([]Plan, error)
	Create(ctx context.Context, p Plan) (Plan, error)
	Remove(ctx context.Context, id string) error
}
