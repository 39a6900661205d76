package owners

import "context"

type Repository interface {
	List(ctx context.Context) ([]Owner, error)
	// GetByID y GetByEmail devuelven ok=false si no existe.
	GetByID(ctx context.Context, id int64) (Owner, bool, error)
	GetByEmail(ctx context.Context, email string) (Owner, bool, error)
	ListByNeighborhood(ctx context.Context, neighborhoodID int64) ([]Owner, error)
	Create(ctx context.Context, o Owner) (int64, error)
	Update(ctx context.Context, o Owner) error
	Delete(ctx context.Context, id int64) error
}
