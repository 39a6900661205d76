// Package storetest es la batería de contrato que todo adapter de storage
// debe pasar. Cada adapter la corre desde su propio _test.go:
//
//	storetest.Run(t, func(t *testing.T) storage.Repositories { ... })
package storetest

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doggo/internal/adapters/storage"
	"doggo/internal/domain/dogs"
	"doggo/internal/domain/neighborhoods"
	"doggo/internal/domain/owners"
	"doggo/internal/domain/profiles"
	"doggo/internal/domain/walkers"
	"doggo/internal/domain/walks"
	"doggo/internal/errs"
)

// Factory devuelve repositorios sobre un almacenamiento vacío y aislado.
type Factory func(t *testing.T) storage.Repositories

func Run(t *testing.T, newRepos Factory) {
	t.Run("owner roundtrip", func(t *testing.T) { testOwnerRoundtrip(t, newRepos(t)) })
	t.Run("absent ids", func(t *testing.T) { testAbsentIDs(t, newRepos(t)) })
	t.Run("empty children", func(t *testing.T) { testEmptyChildren(t, newRepos(t)) })
	t.Run("list order", func(t *testing.T) { testListOrder(t, newRepos(t)) })
	t.Run("owner by email", func(t *testing.T) { testOwnerByEmail(t, newRepos(t)) })
	t.Run("dog update breed", func(t *testing.T) { testDogUpdateBreed(t, newRepos(t)) })
	t.Run("dog optional fields", func(t *testing.T) { testDogOptionalFields(t, newRepos(t)) })
	t.Run("update missing", func(t *testing.T) { testUpdateMissing(t, newRepos(t)) })
	t.Run("delete missing", func(t *testing.T) { testDeleteMissing(t, newRepos(t)) })
	t.Run("delete restricted", func(t *testing.T) { testDeleteRestricted(t, newRepos(t)) })
	t.Run("delete leaf", func(t *testing.T) { testDeleteLeaf(t, newRepos(t)) })
	t.Run("dangling references", func(t *testing.T) { testDanglingReferences(t, newRepos(t)) })
	t.Run("duplicate email", func(t *testing.T) { testDuplicateEmail(t, newRepos(t)) })
	t.Run("walks by walker order", func(t *testing.T) { testWalksByWalkerOrder(t, newRepos(t)) })
	t.Run("walks by dog", func(t *testing.T) { testWalksByDog(t, newRepos(t)) })
	t.Run("owner profile", func(t *testing.T) { testOwnerProfile(t, newRepos(t)) })
	t.Run("walker profile", func(t *testing.T) { testWalkerProfile(t, newRepos(t)) })
}

// -------------------------
// Fixtures
// -------------------------

type fixture struct {
	t     *testing.T
	ctx   context.Context
	repos storage.Repositories
	n     int
}

func newFixture(t *testing.T, repos storage.Repositories) *fixture {
	return &fixture{t: t, ctx: context.Background(), repos: repos}
}

func (f *fixture) seq() int {
	f.n++
	return f.n
}

func (f *fixture) neighborhood(name string) int64 {
	f.t.Helper()
	id, err := f.repos.Neighborhoods.Create(f.ctx, neighborhoods.Neighborhood{Name: name})
	require.NoError(f.t, err)
	return id
}

func (f *fixture) owner(neighborhoodID int64) owners.Owner {
	f.t.Helper()
	n := f.seq()
	o := owners.Owner{
		Name:           fmt.Sprintf("Owner %d", n),
		Email:          fmt.Sprintf("owner%d@example.com", n),
		Address:        fmt.Sprintf("%d Main Street", 100+n),
		Phone:          fmt.Sprintf("555-01%02d", n),
		NeighborhoodID: neighborhoodID,
	}
	id, err := f.repos.Owners.Create(f.ctx, o)
	require.NoError(f.t, err)
	o.ID = id
	return o
}

func (f *fixture) dog(ownerID int64) dogs.Dog {
	f.t.Helper()
	d := dogs.Dog{
		Name:    fmt.Sprintf("Dog %d", f.seq()),
		Breed:   "Beagle",
		OwnerID: ownerID,
	}
	id, err := f.repos.Dogs.Create(f.ctx, d)
	require.NoError(f.t, err)
	d.ID = id
	return d
}

func (f *fixture) walker(neighborhoodID int64) walkers.Walker {
	f.t.Helper()
	w := walkers.Walker{
		Name:           fmt.Sprintf("Walker %d", f.seq()),
		NeighborhoodID: neighborhoodID,
	}
	id, err := f.repos.Walkers.Create(f.ctx, w)
	require.NoError(f.t, err)
	w.ID = id
	return w
}

func (f *fixture) walk(walkerID, dogID int64, date time.Time, d time.Duration) walks.Walk {
	f.t.Helper()
	w := walks.Walk{Date: date, Duration: d, WalkerID: walkerID, DogID: dogID}
	id, err := f.repos.Walks.Create(f.ctx, w)
	require.NoError(f.t, err)
	w.ID = id
	return w
}

func ptr(s string) *string { return &s }

func assertConstraint(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrConstraint), "expected constraint error, got %v", err)

	var ce *errs.ConstraintError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, field, ce.Field)
}

func assertNotFound(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrNotFound), "expected not found, got %v", err)
}

// -------------------------
// Casos
// -------------------------

func testOwnerRoundtrip(t *testing.T, repos storage.Repositories) {
	f := newFixture(t, repos)
	hood := f.neighborhood("Palermo")

	in := owners.Owner{
		Name:           "Ana",
		Email:          "ana@example.com",
		Address:        "Av. Santa Fe 1234",
		Phone:          "555-0101",
		NeighborhoodID: hood,
	}
	id, err := repos.Owners.Create(f.ctx, in)
	require.NoError(t, err)
	assert.Positive(t, id)

	got, ok, err := repos.Owners.GetByID(f.ctx, id)
	require.NoError(t, err)
	require.True(t, ok)

	in.ID = id
	assert.Equal(t, in, got)
}

func testAbsentIDs(t *testing.T, repos storage.Repositories) {
	ctx := context.Background()
	const missing = int64(987654)

	_, ok, err := repos.Neighborhoods.GetByID(ctx, missing)
	require.NoError(t, err)
	assert.False(t, ok, "neighborhood")

	_, ok, err = repos.Owners.GetByID(ctx, missing)
	require.NoError(t, err)
	assert.False(t, ok, "owner")

	_, ok, err = repos.Owners.GetByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, ok, "owner by email")

	_, ok, err = repos.Dogs.GetByID(ctx, missing)
	require.NoError(t, err)
	assert.False(t, ok, "dog")

	_, ok, err = repos.Walkers.GetByID(ctx, missing)
	require.NoError(t, err)
	assert.False(t, ok, "walker")

	_, ok, err = repos.Walks.GetByID(ctx, missing)
	require.NoError(t, err)
	assert.False(t, ok, "walk")
}

func testEmptyChildren(t *testing.T, repos storage.Repositories) {
	f := newFixture(t, repos)
	hood := f.neighborhood("Empty")
	o := f.owner(hood)
	d := f.dog(o.ID)
	w := f.walker(hood)
	other := f.neighborhood("Nobody lives here")

	lists := map[string]func() (int, bool, error){
		"all neighborhoods": func() (int, bool, error) {
			items, err := repos.Neighborhoods.List(f.ctx)
			return len(items), items != nil, err
		},
		"dogs by owner": func() (int, bool, error) {
			items, err := repos.Dogs.ListByOwner(f.ctx, o.ID+1000)
			return len(items), items != nil, err
		},
		"owners by neighborhood": func() (int, bool, error) {
			items, err := repos.Owners.ListByNeighborhood(f.ctx, other)
			return len(items), items != nil, err
		},
		"walkers by neighborhood": func() (int, bool, error) {
			items, err := repos.Walkers.ListByNeighborhood(f.ctx, other)
			return len(items), items != nil, err
		},
		"walks by walker": func() (int, bool, error) {
			items, err := repos.Walks.ListByWalker(f.ctx, w.ID)
			return len(items), items != nil, err
		},
		"walks by dog": func() (int, bool, error) {
			items, err := repos.Walks.ListByDog(f.ctx, d.ID)
			return len(items), items != nil, err
		},
	}

	for name, list := range lists {
		n, nonNil, err := list()
		require.NoError(t, err, name)
		assert.True(t, nonNil, "%s returned nil slice", name)
		if name != "all neighborhoods" {
			assert.Zero(t, n, name)
		}
	}
}

func testListOrder(t *testing.T, repos storage.Repositories) {
	f := newFixture(t, repos)
	a := f.neighborhood("A")
	b := f.neighborhood("B")
	c := f.neighborhood("C")

	items, err := repos.Neighborhoods.List(f.ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []int64{a, b, c}, []int64{items[0].ID, items[1].ID, items[2].ID})
}

func testOwnerByEmail(t *testing.T, repos storage.Repositories) {
	f := newFixture(t, repos)
	o := f.owner(f.neighborhood("Recoleta"))

	got, ok, err := repos.Owners.GetByEmail(f.ctx, o.Email)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, o, got)
}

func testDogUpdateBreed(t *testing.T, repos storage.Repositories) {
	f := newFixture(t, repos)
	o := f.owner(f.neighborhood("Caballito"))
	before := f.dog(o.ID)

	changed := before
	changed.Breed = "Border Collie"
	require.NoError(t, repos.Dogs.Update(f.ctx, changed))

	after, ok, err := repos.Dogs.GetByID(f.ctx, before.ID)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, "Border Collie", after.Breed)
	after.Breed = before.Breed
	assert.Equal(t, before, after, "only the breed should change")
}

func testDogOptionalFields(t *testing.T, repos storage.Repositories) {
	f := newFixture(t, repos)
	o := f.owner(f.neighborhood("Belgrano"))

	plain := f.dog(o.ID)
	got, ok, err := repos.Dogs.GetByID(f.ctx, plain.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Nil(t, got.Notes)
	assert.Nil(t, got.ImageURL)

	full := dogs.Dog{
		Name:     "Luna",
		Breed:    "Galgo",
		Notes:    ptr("afraid of bikes"),
		ImageURL: ptr("https://img.example.com/luna.png"),
		OwnerID:  o.ID,
	}
	id, err := repos.Dogs.Create(f.ctx, full)
	require.NoError(t, err)

	got, ok, err = repos.Dogs.GetByID(f.ctx, id)
	require.NoError(t, err)
	require.True(t, ok)
	require.NotNil(t, got.Notes)
	require.NotNil(t, got.ImageURL)
	assert.Equal(t, "afraid of bikes", *got.Notes)
	assert.Equal(t, "https://img.example.com/luna.png", *got.ImageURL)
}

func testUpdateMissing(t *testing.T, repos storage.Repositories) {
	f := newFixture(t, repos)
	hood := f.neighborhood("Nuñez")

	assertNotFound(t, repos.Neighborhoods.Update(f.ctx, neighborhoods.Neighborhood{ID: 4242, Name: "X"}))
	assertNotFound(t, repos.Walkers.Update(f.ctx, walkers.Walker{ID: 4242, Name: "X", NeighborhoodID: hood}))
}

func testDeleteMissing(t *testing.T, repos storage.Repositories) {
	ctx := context.Background()

	err := repos.Walkers.Delete(ctx, 4242)
	assertNotFound(t, err)

	var nf *errs.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "walker", nf.Entity)
	assert.Equal(t, int64(4242), nf.ID)

	assertNotFound(t, repos.Owners.Delete(ctx, 4242))
	assertNotFound(t, repos.Dogs.Delete(ctx, 4242))
	assertNotFound(t, repos.Neighborhoods.Delete(ctx, 4242))
}

func testDeleteRestricted(t *testing.T, repos storage.Repositories) {
	f := newFixture(t, repos)
	hood := f.neighborhood("Villa Crespo")
	o := f.owner(hood)
	d := f.dog(o.ID)
	w := f.walker(hood)
	f.walk(w.ID, d.ID, time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), 30*time.Minute)

	assertConstraint(t, repos.Owners.Delete(f.ctx, o.ID), "id")
	assertConstraint(t, repos.Dogs.Delete(f.ctx, d.ID), "id")
	assertConstraint(t, repos.Walkers.Delete(f.ctx, w.ID), "id")
	assertConstraint(t, repos.Neighborhoods.Delete(f.ctx, hood), "id")

	_, ok, err := repos.Owners.GetByID(f.ctx, o.ID)
	require.NoError(t, err)
	assert.True(t, ok, "owner must survive a rejected delete")
}

func testDeleteLeaf(t *testing.T, repos storage.Repositories) {
	f := newFixture(t, repos)
	o := f.owner(f.neighborhood("Flores"))
	d := f.dog(o.ID)

	require.NoError(t, repos.Dogs.Delete(f.ctx, d.ID))
	require.NoError(t, repos.Owners.Delete(f.ctx, o.ID))

	_, ok, err := repos.Dogs.GetByID(f.ctx, d.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func testDanglingReferences(t *testing.T, repos storage.Repositories) {
	f := newFixture(t, repos)
	hood := f.neighborhood("Almagro")
	o := f.owner(hood)
	d := f.dog(o.ID)
	w := f.walker(hood)

	_, err := repos.Dogs.Create(f.ctx, dogs.Dog{Name: "Ghost", Breed: "Husky", OwnerID: o.ID + 999})
	assertConstraint(t, err, "owner_id")

	_, err = repos.Owners.Create(f.ctx, owners.Owner{
		Name: "Bob", Email: "bob@example.com", Address: "Calle Falsa 123", Phone: "555", NeighborhoodID: hood + 999,
	})
	assertConstraint(t, err, "neighborhood_id")

	_, err = repos.Walkers.Create(f.ctx, walkers.Walker{Name: "Zoe", NeighborhoodID: hood + 999})
	assertConstraint(t, err, "neighborhood_id")

	_, err = repos.Walks.Create(f.ctx, walks.Walk{
		Date: time.Now().UTC(), Duration: time.Minute, WalkerID: w.ID + 999, DogID: d.ID,
	})
	require.True(t, errors.Is(err, errs.ErrConstraint), "walk with dangling walker: %v", err)

	moved := d
	moved.OwnerID = o.ID + 999
	assertConstraint(t, repos.Dogs.Update(f.ctx, moved), "owner_id")
}

func testDuplicateEmail(t *testing.T, repos storage.Repositories) {
	f := newFixture(t, repos)
	hood := f.neighborhood("Boedo")
	first := f.owner(hood)

	dup := first
	dup.ID = 0
	dup.Name = "Someone Else"
	_, err := repos.Owners.Create(f.ctx, dup)
	assertConstraint(t, err, "email")

	second := f.owner(hood)
	second.Email = first.Email
	assertConstraint(t, repos.Owners.Update(f.ctx, second), "email")
}

func testWalksByWalkerOrder(t *testing.T, repos storage.Repositories) {
	f := newFixture(t, repos)
	hood := f.neighborhood("San Telmo")
	d := f.dog(f.owner(hood).ID)
	w := f.walker(hood)
	base := time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)

	oldest := f.walk(w.ID, d.ID, base, 20*time.Minute)
	newest := f.walk(w.ID, d.ID, base.Add(48*time.Hour), 40*time.Minute)
	middle := f.walk(w.ID, d.ID, base.Add(24*time.Hour), 30*time.Minute)
	tie := f.walk(w.ID, d.ID, base.Add(24*time.Hour), 10*time.Minute)

	items, err := repos.Walks.ListByWalker(f.ctx, w.ID)
	require.NoError(t, err)
	require.Len(t, items, 4)

	ids := make([]int64, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	assert.Equal(t, []int64{newest.ID, tie.ID, middle.ID, oldest.ID}, ids)

	assert.True(t, items[0].Date.Equal(newest.Date))
	assert.Equal(t, time.UTC, items[0].Date.Location())
	assert.Equal(t, 40*time.Minute, items[0].Duration)
}

func testWalksByDog(t *testing.T, repos storage.Repositories) {
	f := newFixture(t, repos)
	hood := f.neighborhood("Chacarita")
	o := f.owner(hood)
	rex := f.dog(o.ID)
	fido := f.dog(o.ID)
	w := f.walker(hood)
	at := time.Date(2024, 6, 1, 18, 30, 0, 0, time.UTC)

	f.walk(w.ID, rex.ID, at, time.Hour)
	f.walk(w.ID, fido.ID, at, time.Hour)
	f.walk(w.ID, rex.ID, at.Add(time.Hour), 15*time.Minute)

	items, err := repos.Walks.ListByDog(f.ctx, rex.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, it := range items {
		assert.Equal(t, rex.ID, it.DogID)
	}

	got, ok, err := repos.Walks.GetByID(f.ctx, items[0].ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, items[0], got)
}

func testOwnerProfile(t *testing.T, repos storage.Repositories) {
	f := newFixture(t, repos)
	north := f.neighborhood("North")
	south := f.neighborhood("South")

	o := f.owner(north)
	d1 := f.dog(o.ID)
	d2 := f.dog(o.ID)
	f.dog(f.owner(north).ID)
	w1 := f.walker(north)
	w2 := f.walker(north)
	f.walker(south)

	svc := profiles.NewService(deps(repos))
	p, err := svc.OwnerProfile(f.ctx, o.ID)
	require.NoError(t, err)

	assert.Equal(t, o, p.Owner)
	require.NotNil(t, p.Neighborhood)
	assert.Equal(t, "North", p.Neighborhood.Name)
	assert.Equal(t, []dogs.Dog{d1, d2}, p.Dogs)
	assert.Equal(t, []walkers.Walker{w1, w2}, p.Walkers)
	for _, w := range p.Walkers {
		assert.Equal(t, north, w.NeighborhoodID)
	}

	_, err = svc.OwnerProfile(f.ctx, o.ID+999)
	assertNotFound(t, err)
}

func testWalkerProfile(t *testing.T, repos storage.Repositories) {
	f := newFixture(t, repos)
	hood := f.neighborhood("Palermo Soho")
	d := f.dog(f.owner(hood).ID)
	w := f.walker(hood)
	base := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)

	f.walk(w.ID, d.ID, base, 45*time.Minute)
	f.walk(w.ID, d.ID, base.Add(72*time.Hour), 50*time.Minute)
	f.walk(w.ID, d.ID, base.Add(24*time.Hour), 5*time.Minute)

	svc := profiles.NewService(deps(repos))
	p, err := svc.WalkerProfile(f.ctx, w.ID)
	require.NoError(t, err)

	require.Len(t, p.Walks, 3)
	for i := 1; i < len(p.Walks); i++ {
		assert.False(t, p.Walks[i].Date.After(p.Walks[i-1].Date), "walks must be newest first")
	}
	assert.Equal(t, 100*time.Minute, p.TotalWalked)
	assert.Equal(t, "1 hr 40 min", p.TotalWalkedDisplay)

	empty := f.walker(hood)
	p, err = svc.WalkerProfile(f.ctx, empty.ID)
	require.NoError(t, err)
	assert.NotNil(t, p.Walks)
	assert.Empty(t, p.Walks)
	assert.Equal(t, "0 hr 0 min", p.TotalWalkedDisplay)

	_, err = svc.WalkerProfile(f.ctx, w.ID+999)
	assertNotFound(t, err)
}

func deps(repos storage.Repositories) profiles.Deps {
	return profiles.Deps{
		Owners:        repos.Owners,
		Dogs:          repos.Dogs,
		Walkers:       repos.Walkers,
		Walks:         repos.Walks,
		Neighborhoods: repos.Neighborhoods,
	}
}
