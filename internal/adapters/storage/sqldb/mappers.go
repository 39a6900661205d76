package sqldb

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"doggo/internal/domain/dogs"
	"doggo/internal/domain/neighborhoods"
	"doggo/internal/domain/owners"
	"doggo/internal/domain/walkers"
	"doggo/internal/domain/walks"
	"doggo/internal/errs"
)

// rowScanner lo cumplen *sql.Rows, *sqlx.Rows y *sql.Row.
type rowScanner interface {
	Scan(dest ...any) error
}

// El orden de cada lista define el orden del Scan en el mapper.
var (
	neighborhoodColumns = []any{"id", "name"}
	ownerColumns        = []any{"id", "name", "email", "address", "phone", "neighborhood_id"}
	dogColumns          = []any{"id", "name", "breed", "notes", "image_url", "owner_id"}
	walkerColumns       = []any{"id", "name", "image_url", "neighborhood_id"}
	walkColumns         = []any{"id", "date", "duration", "walker_id", "dog_id"}
)

func mapNeighborhood(row rowScanner) (neighborhoods.Neighborhood, error) {
	var n neighborhoods.Neighborhood
	if err := row.Scan(&n.ID, &n.Name); err != nil {
		return neighborhoods.Neighborhood{}, scanError("neighborhood", err)
	}
	return n, nil
}

func mapOwner(row rowScanner) (owners.Owner, error) {
	var o owners.Owner
	if err := row.Scan(&o.ID, &o.Name, &o.Email, &o.Address, &o.Phone, &o.NeighborhoodID); err != nil {
		return owners.Owner{}, scanError("owner", err)
	}
	return o, nil
}

func mapDog(row rowScanner) (dogs.Dog, error) {
	var (
		d     dogs.Dog
		notes sql.NullString
		image sql.NullString
	)
	if err := row.Scan(&d.ID, &d.Name, &d.Breed, &notes, &image, &d.OwnerID); err != nil {
		return dogs.Dog{}, scanError("dog", err)
	}
	d.Notes = nullableString(notes)
	d.ImageURL = nullableString(image)
	return d, nil
}

func mapWalker(row rowScanner) (walkers.Walker, error) {
	var (
		w     walkers.Walker
		image sql.NullString
	)
	if err := row.Scan(&w.ID, &w.Name, &image, &w.NeighborhoodID); err != nil {
		return walkers.Walker{}, scanError("walker", err)
	}
	w.ImageURL = nullableString(image)
	return w, nil
}

func mapWalk(row rowScanner) (walks.Walk, error) {
	var (
		w       walks.Walk
		rawDate any
		seconds int64
	)
	if err := row.Scan(&w.ID, &rawDate, &seconds, &w.WalkerID, &w.DogID); err != nil {
		return walks.Walk{}, scanError("walk", err)
	}

	date, err := parseTime(rawDate)
	if err != nil {
		return walks.Walk{}, errs.Mapping("walk", "date", err)
	}
	if seconds < 0 {
		return walks.Walk{}, errs.Mapping("walk", "duration", fmt.Errorf("negative duration %d", seconds))
	}

	w.Date = date
	w.Duration = time.Duration(seconds) * time.Second
	return w, nil
}

// NULL -> nil; nunca "".
func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}

func nullable(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

// Formatos de texto con los que SQLite puede devolver un DATETIME.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t.UTC(), nil
	case string:
		return parseTimeText(t)
	case []byte:
		return parseTimeText(string(t))
	case nil:
		return time.Time{}, errors.New("unexpected NULL")
	default:
		return time.Time{}, fmt.Errorf("unsupported date type %T", v)
	}
}

func parseTimeText(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable date %q", s)
}

var scanColumnRe = regexp.MustCompile(`name "([^"]+)"`)

// scanError: database/sql nombra la columna en el mensaje
// ("sql: Scan error on column index 2, name \"email\": ...").
func scanError(entity string, err error) error {
	col := "row"
	if m := scanColumnRe.FindStringSubmatch(err.Error()); len(m) == 2 {
		col = m[1]
	}
	return errs.Mapping(entity, col, err)
}
