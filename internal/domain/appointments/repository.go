package appointments

import "context"

type Repository interface {
	List(ctx context.Context) ([]Appointment, error)
	Create(ctx context.Context, a Appointment) (Appointment, error)
	Remove(ctx context.Context, id string) error
}
