package profiles

import (
	"time"

	"doggo/internal/domain/dogs"
	"doggo/internal/domain/neighborhoods"
	"doggo/internal/domain/owners"
	"doggo/internal/domain/walkers"
	"doggo/internal/domain/walks"
)

// OwnerProfile: el owner, sus perros y los walkers de su barrio.
type OwnerProfile struct {
	Owner        owners.Owner
	Neighborhood *neighborhoods.Neighborhood
	Dogs         []dogs.Dog
	Walkers      []walkers.Walker
}

// WalkerProfile: el walker y su historial, más reciente primero.
type WalkerProfile struct {
	Walker             walkers.Walker
	Neighborhood       *neighborhoods.Neighborhood
	Walks              []walks.Walk
	TotalWalked        time.Duration
	TotalWalkedDisplay string
}
