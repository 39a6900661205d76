package storage

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"doggo/internal/errs"
)

// Mensajes de constraint compartidos por los adapters, para que memory y
// SQL reporten lo mismo ante la misma violación.

func Required(entity, field string) *errs.ConstraintError {
	return errs.Constraint(entity, field, "is required")
}

// MissingReference: FK que apunta a una fila inexistente (owner_id -> Owner).
func MissingReference(entity, field string) *errs.ConstraintError {
	return errs.Constraint(entity, field, "referenced "+Humanize(strings.TrimSuffix(field, "_id"))+" does not exist")
}

// StillReferenced: borrado rechazado porque existen filas dependientes.
func StillReferenced(entity, dependent string) *errs.ConstraintError {
	return errs.Constraint(entity, "id", "still referenced by "+Humanize(dependent)+" records")
}

func Duplicate(entity, field string) *errs.ConstraintError {
	return errs.Constraint(entity, field, Humanize(field)+" already used by another "+entity)
}

// Humanize: "neighborhood_id" -> "Neighborhood Id", "image_url" -> "Image Url".
func Humanize(s string) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, "_", " "))
	if s == "" {
		return s
	}
	return cases.Title(language.English).String(s)
}
