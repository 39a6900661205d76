package dogs

import (
	"context"
	"errors"
	"testing"

	"doggo/internal/errs"
)

type testRepo struct {
	last Dog
}

func (r *testRepo) List(ctx context.Context) ([]Dog, error) { return make([]Dog, 0), nil }

func (r *testRepo) GetByID(ctx context.Context, id int64) (Dog, bool, error) {
	if r.last.ID == id {
		return r.last, true, nil
	}
	return Dog{}, false, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerID int64) ([]Dog, error) {
	return make([]Dog, 0), nil
}

func (r *testRepo) Create(ctx context.Context, d Dog) (int64, error) {
	d.ID = 1
	r.last = d
	return d.ID, nil
}

func (r *testRepo) Update(ctx context.Context, d Dog) error {
	if d.ID != r.last.ID {
		return errs.NotFound("dog", d.ID)
	}
	r.last = d
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id int64) error { return nil }

func strp(s string) *string { return &s }

func TestService_Create_BlankOptionalsBecomeNil(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	d, err := svc.Create(context.Background(), Input{
		Name:     " Rex ",
		Breed:    "Boxer",
		Notes:    strp("   "),
		ImageURL: strp(""),
		OwnerID:  4,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if d.Name != "Rex" {
		t.Fatalf("expected trimmed name, got %q", d.Name)
	}
	if d.Notes != nil || d.ImageURL != nil {
		t.Fatalf("expected nil optionals, got notes=%v image=%v", d.Notes, d.ImageURL)
	}
	if repo.last.Notes != nil {
		t.Fatalf("repo received non-nil notes")
	}
}

func TestService_Create_RejectsBadImageURL(t *testing.T) {
	svc := NewService(&testRepo{})

	_, err := svc.Create(context.Background(), Input{
		Name:     "Rex",
		Breed:    "Boxer",
		ImageURL: strp("not a url"),
		OwnerID:  4,
	})
	var ce *errs.ConstraintError
	if !errors.As(err, &ce) || ce.Field != "image_url" {
		t.Fatalf("expected image_url constraint, got %v", err)
	}
}

func TestService_Get_NotFound(t *testing.T) {
	svc := NewService(&testRepo{})

	_, err := svc.Get(context.Background(), 9)
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
