package vacation

import "context"

type VacationRepository interface {
	Create(ctx context.Context, request Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	List(ctx context.Context, filter RequestFilter) ([]Request, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}
