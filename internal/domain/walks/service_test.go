package walks

import (
	"context"
	"errors"
	"testing"
	"time"

	"doggo/internal/errs"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	next  int64
	byID  map[int64]Walk
	calls int
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Walk{}}
}

func (r *testRepo) List(ctx context.Context) ([]Walk, error) {
	out := make([]Walk, 0, len(r.byID))
	for _, w := range r.byID {
		out = append(out, w)
	}
	return out, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Walk, bool, error) {
	w, ok := r.byID[id]
	return w, ok, nil
}

func (r *testRepo) ListByWalker(ctx context.Context, walkerID int64) ([]Walk, error) {
	return make([]Walk, 0), nil
}

func (r *testRepo) ListByDog(ctx context.Context, dogID int64) ([]Walk, error) {
	return make([]Walk, 0), nil
}

func (r *testRepo) Create(ctx context.Context, w Walk) (int64, error) {
	r.calls++
	r.next++
	w.ID = r.next
	r.byID[w.ID] = w
	return w.ID, nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_StoresUTCSeconds(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	local := time.Date(2025, 3, 10, 8, 30, 15, 999, time.FixedZone("ART", -3*3600))
	w, err := svc.Create(context.Background(), Input{
		Date:            local,
		DurationSeconds: 2700,
		WalkerID:        1,
		DogID:           2,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if w.ID != 1 {
		t.Fatalf("expected id 1, got %d", w.ID)
	}
	want := time.Date(2025, 3, 10, 11, 30, 15, 0, time.UTC)
	if !w.Date.Equal(want) || w.Date.Location() != time.UTC {
		t.Fatalf("expected %s in UTC, got %s", want, w.Date)
	}
	if w.Duration != 45*time.Minute {
		t.Fatalf("expected 45m, got %s", w.Duration)
	}
	if stored := repo.byID[w.ID]; stored != w {
		t.Fatalf("stored walk differs: %#v vs %#v", stored, w)
	}
}

func TestService_Create_RejectsInvalidInput(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	valid := Input{Date: now.Add(-time.Hour), DurationSeconds: 600, WalkerID: 1, DogID: 1}

	tests := []struct {
		name  string
		edit  func(in *Input)
		field string
	}{
		{"missing date", func(in *Input) { in.Date = time.Time{} }, "date"},
		{"zero duration", func(in *Input) { in.DurationSeconds = 0 }, "duration_seconds"},
		{"negative duration", func(in *Input) { in.DurationSeconds = -60 }, "duration_seconds"},
		{"longer than a day", func(in *Input) { in.DurationSeconds = 86401 }, "duration_seconds"},
		{"missing walker", func(in *Input) { in.WalkerID = 0 }, "walker_id"},
		{"negative dog", func(in *Input) { in.DogID = -3 }, "dog_id"},
		{"future date", func(in *Input) { in.Date = now.Add(48 * time.Hour) }, "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestRepo()
			svc := NewService(repo)
			svc.now = func() time.Time { return now }

			in := valid
			tt.edit(&in)

			_, err := svc.Create(context.Background(), in)
			if !errors.Is(err, errs.ErrConstraint) {
				t.Fatalf("expected constraint error, got %v", err)
			}
			var ce *errs.ConstraintError
			if !errors.As(err, &ce) || ce.Field != tt.field {
				t.Fatalf("expected field %q, got %v", tt.field, err)
			}
			if repo.calls != 0 {
				t.Fatalf("repo must not be called on invalid input")
			}
		})
	}
}

func TestService_Get_NotFound(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Get(context.Background(), 77)
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
