package memory

import (
	"context"
	"strings"

	"doggo/internal/adapters/storage"
	"doggo/internal/domain/owners"
	"doggo/internal/errs"
)

type ownerRepo struct {
	s *Store
}

func (r *ownerRepo) List(ctx context.Context) ([]owners.Owner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return sortedByID(r.s.owners, nil), nil
}

func (r *ownerRepo) GetByID(ctx context.Context, id int64) (owners.Owner, bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	o, ok := r.s.owners[id]
	return o, ok, nil
}

func (r *ownerRepo) GetByEmail(ctx context.Context, email string) (owners.Owner, bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, o := range r.s.owners {
		if o.Email == email {
			return o, true, nil
		}
	}
	return owners.Owner{}, false, nil
}

func (r *ownerRepo) ListByNeighborhood(ctx context.Context, neighborhoodID int64) ([]owners.Owner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return sortedByID(r.s.owners, func(o owners.Owner) bool {
		return o.NeighborhoodID == neighborhoodID
	}), nil
}

func (r *ownerRepo) Create(ctx context.Context, o owners.Owner) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.check(o); err != nil {
		return 0, err
	}
	o.ID = r.s.nextID("owner")
	r.s.owners[o.ID] = o
	return o.ID, nil
}

func (r *ownerRepo) Update(ctx context.Context, o owners.Owner) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.owners[o.ID]; !ok {
		return errs.NotFound("owner", o.ID)
	}
	if err := r.check(o); err != nil {
		return err
	}
	r.s.owners[o.ID] = o
	return nil
}

func (r *ownerRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.owners[id]; !ok {
		return errs.NotFound("owner", id)
	}
	for _, d := range r.s.dogs {
		if d.OwnerID == id {
			return storage.StillReferenced("owner", "dog")
		}
	}
	delete(r.s.owners, id)
	return nil
}

// check replica NOT NULL / FK / UNIQUE del schema. Asume lock tomado.
func (r *ownerRepo) check(o owners.Owner) error {
	switch {
	case strings.TrimSpace(o.Name) == "":
		return storage.Required("owner", "name")
	case strings.TrimSpace(o.Email) == "":
		return storage.Required("owner", "email")
	case strings.TrimSpace(o.Address) == "":
		return storage.Required("owner", "address")
	case strings.TrimSpace(o.Phone) == "":
		return storage.Required("owner", "phone")
	}
	if _, ok := r.s.neighborhoods[o.NeighborhoodID]; !ok {
		return storage.MissingReference("owner", "neighborhood_id")
	}
	for id, other := range r.s.owners {
		if id != o.ID && other.Email == o.Email {
			return storage.Duplicate("owner", "email")
		}
	}
	return nil
}
