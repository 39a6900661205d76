package sqldb

import "doggo/internal/adapters/storage"

func NewRepositories(s *Store) storage.Repositories {
	return storage.Repositories{
		Neighborhoods: &NeighborhoodsRepo{s: s},
		Owners:        &OwnersRepo{s: s},
		Dogs:          &DogsRepo{s: s},
		Walkers:       &WalkersRepo{s: s},
		Walks:         &WalksRepo{s: s},
	}
}
