package neighborhoods

import (
	"context"
	"strings"

	"doggo/internal/errs"
	"doggo/internal/platform/validate"
)

const entity = "neighborhood"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type Input struct {
	Name string `json:"name" validate:"required,max=55"`
}

func (in Input) normalized() Input {
	in.Name = strings.TrimSpace(in.Name)
	return in
}

func (s *Service) Create(ctx context.Context, in Input) (Neighborhood, error) {
	in = in.normalized()
	if err := validate.Struct(entity, in); err != nil {
		return Neighborhood{}, err
	}

	n := Neighborhood{Name: in.Name}
	id, err := s.repo.Create(ctx, n)
	if err != nil {
		return Neighborhood{}, err
	}
	n.ID = id
	return n, nil
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (Neighborhood, error) {
	in = in.normalized()
	if err := validate.Struct(entity, in); err != nil {
		return Neighborhood{}, err
	}

	n := Neighborhood{ID: id, Name: in.Name}
	if err := s.repo.Update(ctx, n); err != nil {
		return Neighborhood{}, err
	}
	return n, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Neighborhood, error) {
	n, ok, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Neighborhood{}, err
	}
	if !ok {
		return Neighborhood{}, errs.NotFound(entity, id)
	}
	return n, nil
}

func (s *Service) List(ctx context.Context) ([]Neighborhood, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
