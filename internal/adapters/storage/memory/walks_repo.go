package memory

import (
	"context"
	"sort"

	"doggo/internal/adapters/storage"
	"doggo/internal/domain/walks"
	"doggo/internal/errs"
)

type walkRepo struct {
	s *Store
}

func (r *walkRepo) List(ctx context.Context) ([]walks.Walk, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return sortedByID(r.s.walks, nil), nil
}

func (r *walkRepo) GetByID(ctx context.Context, id int64) (walks.Walk, bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	w, ok := r.s.walks[id]
	return w, ok, nil
}

func (r *walkRepo) ListByWalker(ctx context.Context, walkerID int64) ([]walks.Walk, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := sortedByID(r.s.walks, func(w walks.Walk) bool {
		return w.WalkerID == walkerID
	})
	// Fecha desc, id desc en empate (mismo orden que el ORDER BY SQL).
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *walkRepo) ListByDog(ctx context.Context, dogID int64) ([]walks.Walk, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return sortedByID(r.s.walks, func(w walks.Walk) bool {
		return w.DogID == dogID
	}), nil
}

func (r *walkRepo) Create(ctx context.Context, w walks.Walk) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	switch {
	case w.Date.IsZero():
		return 0, storage.Required("walk", "date")
	case w.Duration <= 0:
		return 0, errs.Constraint("walk", "duration", "must be greater than 0")
	}
	if _, ok := r.s.walkers[w.WalkerID]; !ok {
		return 0, storage.MissingReference("walk", "walker_id")
	}
	if _, ok := r.s.dogs[w.DogID]; !ok {
		return 0, storage.MissingReference("walk", "dog_id")
	}

	w.ID = r.s.nextID("walk")
	r.s.walks[w.ID] = w
	return w.ID, nil
}
