package neighborhoods

import "context"

type Repository interface {
	List(ctx context.Context) ([]Neighborhood, error)
	// GetByID devuelve ok=false si no existe.
	GetByID(ctx context.Context, id int64) (Neighborhood, bool, error)
	Create(ctx context.Context, n Neighborhood) (int64, error)
	Update(ctx context.Context, n Neighborhood) error
	Delete(ctx context.Context, id int64) error
}
