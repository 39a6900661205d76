package sqldb

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doggo/internal/errs"
)

// fakeRow imita el Scan de database/sql para los tipos que usan los mappers.
type fakeRow struct {
	cols []string
	vals []any
}

func (r fakeRow) Scan(dest ...any) error {
	if len(dest) != len(r.vals) {
		return fmt.Errorf("sql: expected %d destination arguments in Scan, not %d", len(r.vals), len(dest))
	}
	for i, d := range dest {
		v := r.vals[i]
		var err error
		switch p := d.(type) {
		case sql.Scanner:
			err = p.Scan(v)
		case *any:
			*p = v
		case *int64:
			n, ok := v.(int64)
			if !ok {
				err = fmt.Errorf("converting %T to int64 is unsupported", v)
			}
			*p = n
		case *string:
			s, ok := v.(string)
			if !ok {
				err = fmt.Errorf("converting NULL to string is unsupported")
			}
			*p = s
		default:
			err = fmt.Errorf("unsupported dest %T", d)
		}
		if err != nil {
			return fmt.Errorf("sql: Scan error on column index %d, name %q: %w", i, r.cols[i], err)
		}
	}
	return nil
}

func dogRow(vals ...any) fakeRow {
	return fakeRow{cols: []string{"id", "name", "breed", "notes", "image_url", "owner_id"}, vals: vals}
}

func walkRow(vals ...any) fakeRow {
	return fakeRow{cols: []string{"id", "date", "duration", "walker_id", "dog_id"}, vals: vals}
}

func TestMapDog_NullableColumns(t *testing.T) {
	d, err := mapDog(dogRow(int64(1), "Rex", "Boxer", nil, nil, int64(7)))
	require.NoError(t, err)
	assert.Nil(t, d.Notes)
	assert.Nil(t, d.ImageURL)
	assert.Equal(t, int64(7), d.OwnerID)

	d, err = mapDog(dogRow(int64(2), "Kira", "Pug", "", "https://img/kira.png", int64(7)))
	require.NoError(t, err)
	require.NotNil(t, d.Notes)
	assert.Equal(t, "", *d.Notes)
	require.NotNil(t, d.ImageURL)
	assert.Equal(t, "https://img/kira.png", *d.ImageURL)
}

func TestMapOwner_TypeMismatch(t *testing.T) {
	row := fakeRow{
		cols: []string{"id", "name", "email", "address", "phone", "neighborhood_id"},
		vals: []any{int64(1), "Ana", nil, "Calle 123", "555", int64(1)},
	}

	_, err := mapOwner(row)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrMapping))

	var me *errs.MappingError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, "owner", me.Entity)
	assert.Equal(t, "email", me.Column)
}

func TestMapWalk(t *testing.T) {
	want := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)

	tests := []struct {
		name    string
		date    any
		seconds int64
		column  string
	}{
		{name: "time value", date: want.In(time.FixedZone("ART", -3*3600)), seconds: 1800},
		{name: "sqlite text", date: "2024-02-03 04:05:06+00:00", seconds: 1800},
		{name: "rfc3339 bytes", date: []byte("2024-02-03T01:05:06-03:00"), seconds: 1800},
		{name: "null date", date: nil, seconds: 1800, column: "date"},
		{name: "garbage date", date: "yesterday", seconds: 1800, column: "date"},
		{name: "negative duration", date: want, seconds: -5, column: "duration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := mapWalk(walkRow(int64(9), tt.date, tt.seconds, int64(2), int64(3)))
			if tt.column != "" {
				var me *errs.MappingError
				require.ErrorAs(t, err, &me)
				assert.Equal(t, "walk", me.Entity)
				assert.Equal(t, tt.column, me.Column)
				return
			}

			require.NoError(t, err)
			assert.True(t, w.Date.Equal(want), "got %s", w.Date)
			assert.Equal(t, time.UTC, w.Date.Location())
			assert.Equal(t, 30*time.Minute, w.Duration)
			assert.Equal(t, int64(2), w.WalkerID)
			assert.Equal(t, int64(3), w.DogID)
		})
	}
}

func TestNullable(t *testing.T) {
	assert.Nil(t, nullable(nil))

	s := "x"
	assert.Equal(t, "x", nullable(&s))
}

func TestScanError_UnknownColumn(t *testing.T) {
	err := scanError("dog", errors.New("sql: no rows in result set"))

	var me *errs.MappingError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, "row", me.Column)
}
