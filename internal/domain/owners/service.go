package owners

import (
	"context"
	"fmt"
	"strings"

	"doggo/internal/errs"
	"doggo/internal/platform/validate"
)

const entity = "owner"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type Input struct {
	Name           string `json:"name" validate:"required,max=55"`
	Email          string `json:"email" validate:"required,email,max=255"`
	Address        string `json:"address" validate:"required,min=10,max=100"`
	Phone          string `json:"phone" validate:"required,max=55"`
	NeighborhoodID int64  `json:"neighborhood_id" validate:"required,gt=0"`
}

func (in Input) normalized() Input {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Address = strings.TrimSpace(in.Address)
	in.Phone = strings.TrimSpace(in.Phone)
	return in
}

func (in Input) toOwner(id int64) Owner {
	return Owner{
		ID:             id,
		Name:           in.Name,
		Email:          in.Email,
		Address:        in.Address,
		Phone:          in.Phone,
		NeighborhoodID: in.NeighborhoodID,
	}
}

func (s *Service) Create(ctx context.Context, in Input) (Owner, error) {
	in = in.normalized()
	if err := validate.Struct(entity, in); err != nil {
		return Owner{}, err
	}

	o := in.toOwner(0)
	id, err := s.repo.Create(ctx, o)
	if err != nil {
		return Owner{}, err
	}
	o.ID = id
	return o, nil
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (Owner, error) {
	in = in.normalized()
	if err := validate.Struct(entity, in); err != nil {
		return Owner{}, err
	}

	o := in.toOwner(id)
	if err := s.repo.Update(ctx, o); err != nil {
		return Owner{}, err
	}
	return o, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Owner, error) {
	o, ok, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Owner{}, err
	}
	if !ok {
		return Owner{}, errs.NotFound(entity, id)
	}
	return o, nil
}

// GetByEmail busca por email normalizado (trim + minúsculas).
func (s *Service) GetByEmail(ctx context.Context, email string) (Owner, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return Owner{}, errs.Constraint(entity, "email", "is required")
	}

	o, ok, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return Owner{}, err
	}
	if !ok {
		return Owner{}, fmt.Errorf("owner with email %q: %w", email, errs.ErrNotFound)
	}
	return o, nil
}

func (s *Service) List(ctx context.Context) ([]Owner, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByNeighborhood(ctx context.Context, neighborhoodID int64) ([]Owner, error) {
	return s.repo.ListByNeighborhood(ctx, neighborhoodID)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
