package walks

import (
	"fmt"
	"time"
)

// Walk es un registro inmutable: una vez creado solo se lee.
type Walk struct {
	ID       int64
	Date     time.Time
	Duration time.Duration // se persiste en segundos enteros
	WalkerID int64
	DogID    int64
}

// Total suma las duraciones.
func Total(items []Walk) time.Duration {
	var total time.Duration
	for _, w := range items {
		total += w.Duration
	}
	return total
}

// FormatDuration: "1 hr 35 min". Los segundos sueltos se truncan.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := int64(d / time.Hour)
	m := int64((d % time.Hour) / time.Minute)
	return fmt.Sprintf("%d hr %d min", h, m)
}
