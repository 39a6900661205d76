package walks

import (
	"context"
	"time"

	"doggo/internal/errs"
	"doggo/internal/platform/validate"
)

const entity = "walk"

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type Input struct {
	Date            time.Time `json:"date" validate:"required"`
	DurationSeconds int64     `json:"duration_seconds" validate:"required,gt=0,max=86400"`
	WalkerID        int64     `json:"walker_id" validate:"required,gt=0"`
	DogID           int64     `json:"dog_id" validate:"required,gt=0"`
}

func (s *Service) Create(ctx context.Context, in Input) (Walk, error) {
	if err := validate.Struct(entity, in); err != nil {
		return Walk{}, err
	}
	// Paseos futuros no se registran.
	if in.Date.After(s.now().Add(24 * time.Hour)) {
		return Walk{}, errs.Constraint(entity, "date", "must not be in the future")
	}

	w := Walk{
		Date:     in.Date.UTC().Truncate(time.Second),
		Duration: time.Duration(in.DurationSeconds) * time.Second,
		WalkerID: in.WalkerID,
		DogID:    in.DogID,
	}
	id, err := s.repo.Create(ctx, w)
	if err != nil {
		return Walk{}, err
	}
	w.ID = id
	return w, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Walk, error) {
	w, ok, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Walk{}, err
	}
	if !ok {
		return Walk{}, errs.NotFound(entity, id)
	}
	return w, nil
}

func (s *Service) List(ctx context.Context) ([]Walk, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByWalker(ctx context.Context, walkerID int64) ([]Walk, error) {
	return s.repo.ListByWalker(ctx, walkerID)
}

func (s *Service) ListByDog(ctx context.Context, dogID int64) ([]Walk, error) {
	return s.repo.ListByDog(ctx, dogID)
}
