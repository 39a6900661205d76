package dogs

import (
	"context"
	"strings"

	"doggo/internal/errs"
	"doggo/internal/platform/validate"
)

const entity = "dog"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type Input struct {
	Name     string  `json:"name" validate:"required,max=55"`
	Breed    string  `json:"breed" validate:"required,max=55"`
	Notes    *string `json:"notes" validate:"omitempty,max=255"`
	ImageURL *string `json:"image_url" validate:"omitempty,url,max=255"`
	OwnerID  int64   `json:"owner_id" validate:"required,gt=0"`
}

func (in Input) normalized() Input {
	in.Name = strings.TrimSpace(in.Name)
	in.Breed = strings.TrimSpace(in.Breed)
	in.Notes = optional(in.Notes)
	in.ImageURL = optional(in.ImageURL)
	return in
}

// optional trata "" (o solo espacios) igual que ausente.
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func (in Input) toDog(id int64) Dog {
	return Dog{
		ID:       id,
		Name:     in.Name,
		Breed:    in.Breed,
		Notes:    in.Notes,
		ImageURL: in.ImageURL,
		OwnerID:  in.OwnerID,
	}
}

func (s *Service) Create(ctx context.Context, in Input) (Dog, error) {
	in = in.normalized()
	if err := validate.Struct(entity, in); err != nil {
		return Dog{}, err
	}

	d := in.toDog(0)
	id, err := s.repo.Create(ctx, d)
	if err != nil {
		return Dog{}, err
	}
	d.ID = id
	return d, nil
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (Dog, error) {
	in = in.normalized()
	if err := validate.Struct(entity, in); err != nil {
		return Dog{}, err
	}

	d := in.toDog(id)
	if err := s.repo.Update(ctx, d); err != nil {
		return Dog{}, err
	}
	return d, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Dog, error) {
	d, ok, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Dog{}, err
	}
	if !ok {
		return Dog{}, errs.NotFound(entity, id)
	}
	return d, nil
}

func (s *Service) List(ctx context.Context) ([]Dog, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID int64) ([]Dog, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
