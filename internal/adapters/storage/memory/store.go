package memory

import (
	"sort"
	"sync"

	"doggo/internal/adapters/storage"
	"doggo/internal/domain/dogs"
	"doggo/internal/domain/neighborhoods"
	"doggo/internal/domain/owners"
	"doggo/internal/domain/walkers"
	"doggo/internal/domain/walks"
)

// Store guarda todas las tablas bajo un mismo lock para poder chequear
// FKs y dependientes igual que el adapter SQL.
type Store struct {
	mu sync.RWMutex

	seq           map[string]int64
	neighborhoods map[int64]neighborhoods.Neighborhood
	owners        map[int64]owners.Owner
	dogs          map[int64]dogs.Dog
	walkers       map[int64]walkers.Walker
	walks         map[int64]walks.Walk
}

func NewStore() *Store {
	return &Store{
		seq:           make(map[string]int64),
		neighborhoods: make(map[int64]neighborhoods.Neighborhood),
		owners:        make(map[int64]owners.Owner),
		dogs:          make(map[int64]dogs.Dog),
		walkers:       make(map[int64]walkers.Walker),
		walks:         make(map[int64]walks.Walk),
	}
}

// NewRepositories crea un Store nuevo y devuelve sus repositorios.
func NewRepositories() storage.Repositories {
	return NewStore().Repositories()
}

func (s *Store) Repositories() storage.Repositories {
	return storage.Repositories{
		Neighborhoods: &neighborhoodRepo{s: s},
		Owners:        &ownerRepo{s: s},
		Dogs:          &dogRepo{s: s},
		Walkers:       &walkerRepo{s: s},
		Walks:         &walkRepo{s: s},
	}
}

// nextID asume s.mu tomado en escritura.
func (s *Store) nextID(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

// sortedByID devuelve los valores de m ordenados por id asc, filtrados por keep.
func sortedByID[T any](m map[int64]T, keep func(T) bool) []T {
	ids := make([]int64, 0, len(m))
	for id, v := range m {
		if keep == nil || keep(v) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, m[id])
	}
	return out
}

func cloneStr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
