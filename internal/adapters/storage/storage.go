// Package storage reúne los repositorios de todas las entidades para que
// el router y la CLI los cableen sin conocer el adapter concreto.
package storage

import (
	"doggo/internal/domain/dogs"
	"doggo/internal/domain/neighborhoods"
	"doggo/internal/domain/owners"
	"doggo/internal/domain/walkers"
	"doggo/internal/domain/walks"
)

type Repositories struct {
	Neighborhoods neighborhoods.Repository
	Owners        owners.Repository
	Dogs          dogs.Repository
	Walkers       walkers.Repository
	Walks         walks.Repository
}
