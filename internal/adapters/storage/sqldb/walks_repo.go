package sqldb

import (
	"context"
	"time"

	"github.com/doug-martin/goqu/v9"

	"doggo/internal/domain/walks"
)

const walkTable = "walk"

// WalksRepo es solo lectura + alta.
type WalksRepo struct {
	s *Store
}

func (r *WalksRepo) List(ctx context.Context) ([]walks.Walk, error) {
	return selectMany(ctx, r.s, walkTable, r.s.from(walkTable, walkColumns), mapWalk)
}

func (r *WalksRepo) GetByID(ctx context.Context, id int64) (walks.Walk, bool, error) {
	ds := r.s.from(walkTable, walkColumns).Where(goqu.C("id").Eq(id))
	return selectOne(ctx, r.s, walkTable, ds, mapWalk)
}

func (r *WalksRepo) ListByWalker(ctx context.Context, walkerID int64) ([]walks.Walk, error) {
	ds := r.s.from(walkTable, walkColumns).
		Where(goqu.C("walker_id").Eq(walkerID)).
		Order(goqu.C("date").Desc(), goqu.C("id").Desc())
	return selectMany(ctx, r.s, walkTable, ds, mapWalk)
}

func (r *WalksRepo) ListByDog(ctx context.Context, dogID int64) ([]walks.Walk, error) {
	ds := r.s.from(walkTable, walkColumns).Where(goqu.C("dog_id").Eq(dogID))
	return selectMany(ctx, r.s, walkTable, ds, mapWalk)
}

func (r *WalksRepo) Create(ctx context.Context, w walks.Walk) (int64, error) {
	return r.s.insert(ctx, walkTable, goqu.Record{
		"date":      w.Date.UTC(),
		"duration":  int64(w.Duration / time.Second),
		"walker_id": w.WalkerID,
		"dog_id":    w.DogID,
	})
}
