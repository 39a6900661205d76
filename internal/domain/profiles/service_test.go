package profiles_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"doggo/internal/adapters/storage/memory"
	"doggo/internal/domain/dogs"
	"doggo/internal/domain/neighborhoods"
	"doggo/internal/domain/owners"
	"doggo/internal/domain/profiles"
	"doggo/internal/domain/walkers"
	"doggo/internal/domain/walks"
	"doggo/internal/errs"
)

var errBoom = errors.New("boom")

// failingWalks falla en ListByWalker; el resto delega.
type failingWalks struct {
	walks.Repository
}

func (failingWalks) ListByWalker(ctx context.Context, walkerID int64) ([]walks.Walk, error) {
	return nil, errBoom
}

// hoodless nunca encuentra el barrio.
type hoodless struct {
	neighborhoods.Repository
}

func (hoodless) GetByID(ctx context.Context, id int64) (neighborhoods.Neighborhood, bool, error) {
	return neighborhoods.Neighborhood{}, false, nil
}

func seed(t *testing.T) (profiles.Deps, int64, int64) {
	t.Helper()
	ctx := context.Background()
	repos := memory.NewRepositories()

	hood, err := repos.Neighborhoods.Create(ctx, neighborhoods.Neighborhood{Name: "Colegiales"})
	if err != nil {
		t.Fatalf("create neighborhood: %v", err)
	}
	ownerID, err := repos.Owners.Create(ctx, owners.Owner{
		Name: "Luis", Email: "luis@example.com", Address: "Federico Lacroze 2000", Phone: "555-0111", NeighborhoodID: hood,
	})
	if err != nil {
		t.Fatalf("create owner: %v", err)
	}
	dogID, err := repos.Dogs.Create(ctx, dogs.Dog{Name: "Negro", Breed: "Labrador", OwnerID: ownerID})
	if err != nil {
		t.Fatalf("create dog: %v", err)
	}
	walkerID, err := repos.Walkers.Create(ctx, walkers.Walker{Name: "Sofía", NeighborhoodID: hood})
	if err != nil {
		t.Fatalf("create walker: %v", err)
	}
	if _, err := repos.Walks.Create(ctx, walks.Walk{
		Date: time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC), Duration: 95 * time.Minute, WalkerID: walkerID, DogID: dogID,
	}); err != nil {
		t.Fatalf("create walk: %v", err)
	}

	return profiles.Deps{
		Owners:        repos.Owners,
		Dogs:          repos.Dogs,
		Walkers:       repos.Walkers,
		Walks:         repos.Walks,
		Neighborhoods: repos.Neighborhoods,
	}, ownerID, walkerID
}

func TestService_WalkerProfile_Totals(t *testing.T) {
	deps, _, walkerID := seed(t)
	svc := profiles.NewService(deps)

	p, err := svc.WalkerProfile(context.Background(), walkerID)
	if err != nil {
		t.Fatalf("WalkerProfile returned error: %v", err)
	}
	if p.TotalWalkedDisplay != "1 hr 35 min" {
		t.Fatalf("expected 1 hr 35 min, got %q", p.TotalWalkedDisplay)
	}
	if p.Neighborhood == nil || p.Neighborhood.Name != "Colegiales" {
		t.Fatalf("expected neighborhood Colegiales, got %#v", p.Neighborhood)
	}
}

func TestService_WalkerProfile_PropagatesChildErrors(t *testing.T) {
	deps, _, walkerID := seed(t)
	deps.Walks = failingWalks{deps.Walks}
	svc := profiles.NewService(deps)

	_, err := svc.WalkerProfile(context.Background(), walkerID)
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestService_OwnerProfile_MissingNeighborhood(t *testing.T) {
	deps, ownerID, _ := seed(t)
	deps.Neighborhoods = hoodless{deps.Neighborhoods}
	svc := profiles.NewService(deps)

	p, err := svc.OwnerProfile(context.Background(), ownerID)
	if err != nil {
		t.Fatalf("OwnerProfile returned error: %v", err)
	}
	if p.Neighborhood != nil {
		t.Fatalf("expected nil neighborhood, got %#v", p.Neighborhood)
	}
	if len(p.Dogs) != 1 || len(p.Walkers) != 1 {
		t.Fatalf("expected 1 dog and 1 walker, got %d/%d", len(p.Dogs), len(p.Walkers))
	}
}

func TestService_OwnerProfile_NotFound(t *testing.T) {
	deps, _, _ := seed(t)
	svc := profiles.NewService(deps)

	_, err := svc.OwnerProfile(context.Background(), 404)
	var nf *errs.NotFoundError
	if !errors.As(err, &nf) || nf.Entity != "owner" || nf.ID != 404 {
		t.Fatalf("expected owner 404 not found, got %v", err)
	}
}
