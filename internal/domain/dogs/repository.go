package dogs

import "context"

type Repository interface {
	List(ctx context.Context) ([]Dog, error)
	// GetByID devuelve ok=false si no existe.
	GetByID(ctx context.Context, id int64) (Dog, bool, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]Dog, error)
	Create(ctx context.Context, d Dog) (int64, error)
	Update(ctx context.Context, d Dog) error
	Delete(ctx context.Context, id int64) error
}
