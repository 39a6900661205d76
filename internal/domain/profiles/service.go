// Package profiles compone vistas que cruzan entidades a partir de los
// repositorios. Cada lookup hijo usa su propia conexión, así que los que
// no dependen entre sí corren en paralelo.
package profiles

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"doggo/internal/domain/dogs"
	"doggo/internal/domain/neighborhoods"
	"doggo/internal/domain/owners"
	"doggo/internal/domain/walkers"
	"doggo/internal/domain/walks"
	"doggo/internal/errs"
)

type Service struct {
	owners        owners.Repository
	dogs          dogs.Repository
	walkers       walkers.Repository
	walks         walks.Repository
	neighborhoods neighborhoods.Repository
}

type Deps struct {
	Owners        owners.Repository
	Dogs          dogs.Repository
	Walkers       walkers.Repository
	Walks         walks.Repository
	Neighborhoods neighborhoods.Repository
}

func NewService(d Deps) *Service {
	return &Service{
		owners:        d.Owners,
		dogs:          d.Dogs,
		walkers:       d.Walkers,
		walks:         d.Walks,
		neighborhoods: d.Neighborhoods,
	}
}

func (s *Service) OwnerProfile(ctx context.Context, ownerID int64) (OwnerProfile, error) {
	o, ok, err := s.owners.GetByID(ctx, ownerID)
	if err != nil {
		return OwnerProfile{}, fmt.Errorf("owner profile: %w", err)
	}
	if !ok {
		return OwnerProfile{}, errs.NotFound("owner", ownerID)
	}

	p := OwnerProfile{Owner: o}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := s.dogs.ListByOwner(gctx, o.ID)
		p.Dogs = items
		return err
	})
	g.Go(func() error {
		items, err := s.walkers.ListByNeighborhood(gctx, o.NeighborhoodID)
		p.Walkers = items
		return err
	})
	g.Go(func() error {
		n, err := s.neighborhood(gctx, o.NeighborhoodID)
		p.Neighborhood = n
		return err
	})
	if err := g.Wait(); err != nil {
		return OwnerProfile{}, fmt.Errorf("owner profile: %w", err)
	}
	return p, nil
}

func (s *Service) WalkerProfile(ctx context.Context, walkerID int64) (WalkerProfile, error) {
	wk, ok, err := s.walkers.GetByID(ctx, walkerID)
	if err != nil {
		return WalkerProfile{}, fmt.Errorf("walker profile: %w", err)
	}
	if !ok {
		return WalkerProfile{}, errs.NotFound("walker", walkerID)
	}

	p := WalkerProfile{Walker: wk}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := s.walks.ListByWalker(gctx, wk.ID)
		p.Walks = items
		return err
	})
	g.Go(func() error {
		n, err := s.neighborhood(gctx, wk.NeighborhoodID)
		p.Neighborhood = n
		return err
	})
	if err := g.Wait(); err != nil {
		return WalkerProfile{}, fmt.Errorf("walker profile: %w", err)
	}

	// Fecha descendente.
	sort.SliceStable(p.Walks, func(i, j int) bool {
		return p.Walks[i].Date.After(p.Walks[j].Date)
	})
	p.TotalWalked = walks.Total(p.Walks)
	p.TotalWalkedDisplay = walks.FormatDuration(p.TotalWalked)
	return p, nil
}

// neighborhood devuelve nil si el barrio no existe.
func (s *Service) neighborhood(ctx context.Context, id int64) (*neighborhoods.Neighborhood, error) {
	n, ok, err := s.neighborhoods.GetByID(ctx, id)
	if err != nil || !ok {
		return nil, err
	}
	return &n, nil
}
