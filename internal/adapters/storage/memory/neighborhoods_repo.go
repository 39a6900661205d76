package memory

import (
	"context"
	"strings"

	"doggo/internal/adapters/storage"
	"doggo/internal/domain/neighborhoods"
	"doggo/internal/errs"
)

type neighborhoodRepo struct {
	s *Store
}

func (r *neighborhoodRepo) List(ctx context.Context) ([]neighborhoods.Neighborhood, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return sortedByID(r.s.neighborhoods, nil), nil
}

func (r *neighborhoodRepo) GetByID(ctx context.Context, id int64) (neighborhoods.Neighborhood, bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n, ok := r.s.neighborhoods[id]
	return n, ok, nil
}

func (r *neighborhoodRepo) Create(ctx context.Context, n neighborhoods.Neighborhood) (int64, error) {
	if strings.TrimSpace(n.Name) == "" {
		return 0, storage.Required("neighborhood", "name")
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	n.ID = r.s.nextID("neighborhood")
	r.s.neighborhoods[n.ID] = n
	return n.ID, nil
}

func (r *neighborhoodRepo) Update(ctx context.Context, n neighborhoods.Neighborhood) error {
	if strings.TrimSpace(n.Name) == "" {
		return storage.Required("neighborhood", "name")
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.neighborhoods[n.ID]; !ok {
		return errs.NotFound("neighborhood", n.ID)
	}
	r.s.neighborhoods[n.ID] = n
	return nil
}

func (r *neighborhoodRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.neighborhoods[id]; !ok {
		return errs.NotFound("neighborhood", id)
	}
	for _, o := range r.s.owners {
		if o.NeighborhoodID == id {
			return storage.StillReferenced("neighborhood", "owner")
		}
	}
	for _, w := range r.s.walkers {
		if w.NeighborhoodID == id {
			return storage.StillReferenced("neighborhood", "walker")
		}
	}
	delete(r.s.neighborhoods, id)
	return nil
}
