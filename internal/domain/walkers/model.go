package walkers

// Walker pasea perros dentro de su barrio.
type Walker struct {
	ID             int64
	Name           string
	ImageURL       *string
	NeighborhoodID int64
}
