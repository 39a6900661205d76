package memory

import (
	"context"
	"strings"

	"doggo/internal/adapters/storage"
	"doggo/internal/domain/walkers"
	"doggo/internal/errs"
)

type walkerRepo struct {
	s *Store
}

func (r *walkerRepo) List(ctx context.Context) ([]walkers.Walker, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return cloneWalkers(sortedByID(r.s.walkers, nil)), nil
}

func (r *walkerRepo) GetByID(ctx context.Context, id int64) (walkers.Walker, bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	w, ok := r.s.walkers[id]
	w.ImageURL = cloneStr(w.ImageURL)
	return w, ok, nil
}

func (r *walkerRepo) ListByNeighborhood(ctx context.Context, neighborhoodID int64) ([]walkers.Walker, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return cloneWalkers(sortedByID(r.s.walkers, func(w walkers.Walker) bool {
		return w.NeighborhoodID == neighborhoodID
	})), nil
}

func (r *walkerRepo) Create(ctx context.Context, w walkers.Walker) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.check(w); err != nil {
		return 0, err
	}
	w.ID = r.s.nextID("walker")
	w.ImageURL = cloneStr(w.ImageURL)
	r.s.walkers[w.ID] = w
	return w.ID, nil
}

func (r *walkerRepo) Update(ctx context.Context, w walkers.Walker) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.walkers[w.ID]; !ok {
		return errs.NotFound("walker", w.ID)
	}
	if err := r.check(w); err != nil {
		return err
	}
	w.ImageURL = cloneStr(w.ImageURL)
	r.s.walkers[w.ID] = w
	return nil
}

func (r *walkerRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.walkers[id]; !ok {
		return errs.NotFound("walker", id)
	}
	for _, wk := range r.s.walks {
		if wk.WalkerID == id {
			return storage.StillReferenced("walker", "walk")
		}
	}
	delete(r.s.walkers, id)
	return nil
}

func (r *walkerRepo) check(w walkers.Walker) error {
	if strings.TrimSpace(w.Name) == "" {
		return storage.Required("walker", "name")
	}
	if _, ok := r.s.neighborhoods[w.NeighborhoodID]; !ok {
		return storage.MissingReference("walker", "neighborhood_id")
	}
	return nil
}

func cloneWalkers(items []walkers.Walker) []walkers.Walker {
	for i := range items {
		items[i].ImageURL = cloneStr(items[i].ImageURL)
	}
	return items
}
