package dogs

// Dog pertenece a un owner. Notes e ImageURL son opcionales: nil = sin valor.
type Dog struct {
	ID       int64
	Name     string
	Breed    string
	Notes    *string
	ImageURL *string
	OwnerID  int64
}
