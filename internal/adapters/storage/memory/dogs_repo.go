package memory

import (
	"context"
	"strings"

	"doggo/internal/adapters/storage"
	"doggo/internal/domain/dogs"
	"doggo/internal/errs"
)

type dogRepo struct {
	s *Store
}

func (r *dogRepo) List(ctx context.Context) ([]dogs.Dog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return cloneDogs(sortedByID(r.s.dogs, nil)), nil
}

func (r *dogRepo) GetByID(ctx context.Context, id int64) (dogs.Dog, bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	d, ok := r.s.dogs[id]
	return cloneDog(d), ok, nil
}

func (r *dogRepo) ListByOwner(ctx context.Context, ownerID int64) ([]dogs.Dog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return cloneDogs(sortedByID(r.s.dogs, func(d dogs.Dog) bool {
		return d.OwnerID == ownerID
	})), nil
}

func (r *dogRepo) Create(ctx context.Context, d dogs.Dog) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.check(d); err != nil {
		return 0, err
	}
	d.ID = r.s.nextID("dog")
	r.s.dogs[d.ID] = cloneDog(d)
	return d.ID, nil
}

func (r *dogRepo) Update(ctx context.Context, d dogs.Dog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.dogs[d.ID]; !ok {
		return errs.NotFound("dog", d.ID)
	}
	if err := r.check(d); err != nil {
		return err
	}
	r.s.dogs[d.ID] = cloneDog(d)
	return nil
}

func (r *dogRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.dogs[id]; !ok {
		return errs.NotFound("dog", id)
	}
	for _, w := range r.s.walks {
		if w.DogID == id {
			return storage.StillReferenced("dog", "walk")
		}
	}
	delete(r.s.dogs, id)
	return nil
}

func (r *dogRepo) check(d dogs.Dog) error {
	switch {
	case strings.TrimSpace(d.Name) == "":
		return storage.Required("dog", "name")
	case strings.TrimSpace(d.Breed) == "":
		return storage.Required("dog", "breed")
	}
	if _, ok := r.s.owners[d.OwnerID]; !ok {
		return storage.MissingReference("dog", "owner_id")
	}
	return nil
}

// Los punteros opcionales no se comparten con el caller.
func cloneDog(d dogs.Dog) dogs.Dog {
	d.Notes = cloneStr(d.Notes)
	d.ImageURL = cloneStr(d.ImageURL)
	return d
}

func cloneDogs(items []dogs.Dog) []dogs.Dog {
	for i := range items {
		items[i] = cloneDog(items[i])
	}
	return items
}
