package sqldb

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"doggo/internal/domain/dogs"
)

const dogTable = "dog"

type DogsRepo struct {
	s *Store
}

func dogRecord(d dogs.Dog) goqu.Record {
	return goqu.Record{
		"name":      d.Name,
		"breed":     d.Breed,
		"notes":     nullable(d.Notes),
		"image_url": nullable(d.ImageURL),
		"owner_id":  d.OwnerID,
	}
}

func (r *DogsRepo) List(ctx context.Context) ([]dogs.Dog, error) {
	return selectMany(ctx, r.s, dogTable, r.s.from(dogTable, dogColumns), mapDog)
}

func (r *DogsRepo) GetByID(ctx context.Context, id int64) (dogs.Dog, bool, error) {
	ds := r.s.from(dogTable, dogColumns).Where(goqu.C("id").Eq(id))
	return selectOne(ctx, r.s, dogTable, ds, mapDog)
}

func (r *DogsRepo) ListByOwner(ctx context.Context, ownerID int64) ([]dogs.Dog, error) {
	ds := r.s.from(dogTable, dogColumns).Where(goqu.C("owner_id").Eq(ownerID))
	return selectMany(ctx, r.s, dogTable, ds, mapDog)
}

func (r *DogsRepo) Create(ctx context.Context, d dogs.Dog) (int64, error) {
	return r.s.insert(ctx, dogTable, dogRecord(d))
}

func (r *DogsRepo) Update(ctx context.Context, d dogs.Dog) error {
	return r.s.update(ctx, dogTable, d.ID, dogRecord(d))
}

func (r *DogsRepo) Delete(ctx context.Context, id int64) error {
	return r.s.delete(ctx, dogTable, id)
}
