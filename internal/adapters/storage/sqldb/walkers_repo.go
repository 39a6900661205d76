package sqldb

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"doggo/internal/domain/walkers"
)

const walkerTable = "walker"

type WalkersRepo struct {
	s *Store
}

func walkerRecord(w walkers.Walker) goqu.Record {
	return goqu.Record{
		"name":            w.Name,
		"image_url":       nullable(w.ImageURL),
		"neighborhood_id": w.NeighborhoodID,
	}
}

func (r *WalkersRepo) List(ctx context.Context) ([]walkers.Walker, error) {
	return selectMany(ctx, r.s, walkerTable, r.s.from(walkerTable, walkerColumns), mapWalker)
}

func (r *WalkersRepo) GetByID(ctx context.Context, id int64) (walkers.Walker, bool, error) {
	ds := r.s.from(walkerTable, walkerColumns).Where(goqu.C("id").Eq(id))
	return selectOne(ctx, r.s, walkerTable, ds, mapWalker)
}

// ListByNeighborhood filtra por id de barrio, nunca por nombre.
func (r *WalkersRepo) ListByNeighborhood(ctx context.Context, neighborhoodID int64) ([]walkers.Walker, error) {
	ds := r.s.from(walkerTable, walkerColumns).Where(goqu.C("neighborhood_id").Eq(neighborhoodID))
	return selectMany(ctx, r.s, walkerTable, ds, mapWalker)
}

func (r *WalkersRepo) Create(ctx context.Context, w walkers.Walker) (int64, error) {
	return r.s.insert(ctx, walkerTable, walkerRecord(w))
}

func (r *WalkersRepo) Update(ctx context.Context, w walkers.Walker) error {
	return r.s.update(ctx, walkerTable, w.ID, walkerRecord(w))
}

func (r *WalkersRepo) Delete(ctx context.Context, id int64) error {
	return r.s.delete(ctx, walkerTable, id)
}
