package sqldb

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"doggo/internal/domain/owners"
)

const ownerTable = "owner"

type OwnersRepo struct {
	s *Store
}

func ownerRecord(o owners.Owner) goqu.Record {
	return goqu.Record{
		"name":            o.Name,
		"email":           o.Email,
		"address":         o.Address,
		"phone":           o.Phone,
		"neighborhood_id": o.NeighborhoodID,
	}
}

func (r *OwnersRepo) List(ctx context.Context) ([]owners.Owner, error) {
	return selectMany(ctx, r.s, ownerTable, r.s.from(ownerTable, ownerColumns), mapOwner)
}

func (r *OwnersRepo) GetByID(ctx context.Context, id int64) (owners.Owner, bool, error) {
	ds := r.s.from(ownerTable, ownerColumns).Where(goqu.C("id").Eq(id))
	return selectOne(ctx, r.s, ownerTable, ds, mapOwner)
}

func (r *OwnersRepo) GetByEmail(ctx context.Context, email string) (owners.Owner, bool, error) {
	ds := r.s.from(ownerTable, ownerColumns).Where(goqu.C("email").Eq(email))
	return selectOne(ctx, r.s, ownerTable, ds, mapOwner)
}

func (r *OwnersRepo) ListByNeighborhood(ctx context.Context, neighborhoodID int64) ([]owners.Owner, error) {
	ds := r.s.from(ownerTable, ownerColumns).Where(goqu.C("neighborhood_id").Eq(neighborhoodID))
	return selectMany(ctx, r.s, ownerTable, ds, mapOwner)
}

func (r *OwnersRepo) Create(ctx context.Context, o owners.Owner) (int64, error) {
	return r.s.insert(ctx, ownerTable, ownerRecord(o))
}

func (r *OwnersRepo) Update(ctx context.Context, o owners.Owner) error {
	return r.s.update(ctx, ownerTable, o.ID, ownerRecord(o))
}

func (r *OwnersRepo) Delete(ctx context.Context, id int64) error {
	return r.s.delete(ctx, ownerTable, id)
}
