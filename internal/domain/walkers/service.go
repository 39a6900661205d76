package walkers

import (
	"context"
	"strings"

	"doggo/internal/errs"
	"doggo/internal/platform/validate"
)

const entity = "walker"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type Input struct {
	Name           string  `json:"name" validate:"required,max=55"`
	ImageURL       *string `json:"image_url" validate:"omitempty,url,max=255"`
	NeighborhoodID int64   `json:"neighborhood_id" validate:"required,gt=0"`
}

func (in Input) normalized() Input {
	in.Name = strings.TrimSpace(in.Name)
	if in.ImageURL != nil {
		v := strings.TrimSpace(*in.ImageURL)
		in.ImageURL = &v
		if v == "" {
			in.ImageURL = nil
		}
	}
	return in
}

func (s *Service) Create(ctx context.Context, in Input) (Walker, error) {
	in = in.normalized()
	if err := validate.Struct(entity, in); err != nil {
		return Walker{}, err
	}

	w := Walker{Name: in.Name, ImageURL: in.ImageURL, NeighborhoodID: in.NeighborhoodID}
	id, err := s.repo.Create(ctx, w)
	if err != nil {
		return Walker{}, err
	}
	w.ID = id
	return w, nil
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (Walker, error) {
	in = in.normalized()
	if err := validate.Struct(entity, in); err != nil {
		return Walker{}, err
	}

	w := Walker{ID: id, Name: in.Name, ImageURL: in.ImageURL, NeighborhoodID: in.NeighborhoodID}
	if err := s.repo.Update(ctx, w); err != nil {
		return Walker{}, err
	}
	return w, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Walker, error) {
	w, ok, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Walker{}, err
	}
	if !ok {
		return Walker{}, errs.NotFound(entity, id)
	}
	return w, nil
}

func (s *Service) List(ctx context.Context) ([]Walker, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByNeighborhood(ctx context.Context, neighborhoodID int64) ([]Walker, error) {
	return s.repo.ListByNeighborhood(ctx, neighborhoodID)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
