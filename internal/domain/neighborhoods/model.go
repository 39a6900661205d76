package neighborhoods

// Neighborhood agrupa owners y walkers por zona.
type Neighborhood struct {
	ID   int64
	Name string
}
