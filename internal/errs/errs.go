// Package errs define la taxonomía de errores que cruzan la capa de datos.
//
// Los consumidores (handlers HTTP, CLI) distinguen los casos con errors.Is
// contra los sentinels, o con errors.As cuando necesitan el detalle.
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrConstraint = errors.New("constraint violation")
	ErrConnection = errors.New("connection error")
	ErrMapping    = errors.New("mapping error")
)

// NotFoundError: la entidad pedida no existe.
type NotFoundError struct {
	Entity string
	ID     int64
}

func NotFound(entity string, id int64) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ConstraintError nombra el campo que violó la regla (requerido, FK, único...).
type ConstraintError struct {
	Entity string `json:"entity"`
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func Constraint(entity, field, reason string) *ConstraintError {
	return &ConstraintError{Entity: entity, Field: field, Reason: reason}
}

func (e *ConstraintError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Entity, e.Reason)
	}
	return fmt.Sprintf("%s.%s: %s", e.Entity, e.Field, e.Reason)
}

func (e *ConstraintError) Is(target error) bool { return target == ErrConstraint }

// ConnectionError cubre store inalcanzable, DSN ausente y timeouts.
type ConnectionError struct {
	Op  string
	Err error
}

func Connection(op string, err error) *ConnectionError {
	return &ConnectionError{Op: op, Err: err}
}

func (e *ConnectionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: connection error", e.Op)
	}
	return fmt.Sprintf("%s: connection error: %v", e.Op, e.Err)
}

func (e *ConnectionError) Unwrap() error        { return e.Err }
func (e *ConnectionError) Is(target error) bool { return target == ErrConnection }

// MappingError: una fila no coincide con la forma esperada del registro.
// Es un bug de schema/código, no algo que el usuario pueda corregir.
type MappingError struct {
	Entity string
	Column string
	Err    error
}

func Mapping(entity, column string, err error) *MappingError {
	return &MappingError{Entity: entity, Column: column, Err: err}
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("map %s.%s: %v", e.Entity, e.Column, e.Err)
}

func (e *MappingError) Unwrap() error        { return e.Err }
func (e *MappingError) Is(target error) bool { return target == ErrMapping }

// HTTPStatus traduce un error de la capa de datos a un status HTTP.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConstraint):
		return http.StatusBadRequest
	case errors.Is(err, ErrConnection):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
