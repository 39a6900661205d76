package sqldb

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"doggo/internal/domain/neighborhoods"
)

const neighborhoodTable = "neighborhood"

type NeighborhoodsRepo struct {
	s *Store
}

func (r *NeighborhoodsRepo) List(ctx context.Context) ([]neighborhoods.Neighborhood, error) {
	return selectMany(ctx, r.s, neighborhoodTable, r.s.from(neighborhoodTable, neighborhoodColumns), mapNeighborhood)
}

func (r *NeighborhoodsRepo) GetByID(ctx context.Context, id int64) (neighborhoods.Neighborhood, bool, error) {
	ds := r.s.from(neighborhoodTable, neighborhoodColumns).Where(goqu.C("id").Eq(id))
	return selectOne(ctx, r.s, neighborhoodTable, ds, mapNeighborhood)
}

func (r *NeighborhoodsRepo) Create(ctx context.Context, n neighborhoods.Neighborhood) (int64, error) {
	return r.s.insert(ctx, neighborhoodTable, goqu.Record{"name": n.Name})
}

func (r *NeighborhoodsRepo) Update(ctx context.Context, n neighborhoods.Neighborhood) error {
	return r.s.update(ctx, neighborhoodTable, n.ID, goqu.Record{"name": n.Name})
}

func (r *NeighborhoodsRepo) Delete(ctx context.Context, id int64) error {
	return r.s.delete(ctx, neighborhoodTable, id)
}
