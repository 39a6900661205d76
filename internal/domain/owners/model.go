package owners

// Owner es el dueño de uno o más perros; pertenece a un barrio.
type Owner struct {
	ID             int64
	Name           string
	Email          string
	Address        string
	Phone          string
	NeighborhoodID int64
}
