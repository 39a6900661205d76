package walks

import "context"

// Repository no expone Update ni Delete.
type Repository interface {
	List(ctx context.Context) ([]Walk, error)
	// GetByID devuelve ok=false si no existe.
	GetByID(ctx context.Context, id int64) (Walk, bool, error)
	// ListByWalker ordena por fecha descendente (id descendente en empate).
	ListByWalker(ctx context.Context, walkerID int64) ([]Walk, error)
	ListByDog(ctx context.Context, dogID int64) ([]Walk, error)
	Create(ctx context.Context, w Walk) (int64, error)
}
