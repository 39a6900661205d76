package walkers

import "context"

type Repository interface {
	List(ctx context.Context) ([]Walker, error)
	// GetByID devuelve ok=false si no existe.
	GetByID(ctx context.Context, id int64) (Walker, bool, error)
	ListByNeighborhood(ctx context.Context, neighborhoodID int64) ([]Walker, error)
	Create(ctx context.Context, w Walker) (int64, error)
	Update(ctx context.Context, w Walker) error
	Delete(ctx context.Context, id int64) error
}
