// Package web agrupa los helpers JSON que comparten los handlers de dominio.
package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"

	"doggo/internal/errs"
	"doggo/internal/platform/logger"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBodyBytes = 1 << 20

// ErrorBody es la forma de cualquier respuesta no-2xx.
type ErrorBody struct {
	Error  string `json:"error"`
	Field  string `json:"field,omitempty"`
	Entity string `json:"entity,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError elige status con errs.HTTPStatus. Los 5xx se loguean y no
// exponen el detalle interno.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := errs.HTTPStatus(err)
	body := ErrorBody{Error: err.Error()}

	var ce *errs.ConstraintError
	if errors.As(err, &ce) {
		body.Field = ce.Field
		body.Entity = ce.Entity
	}

	if status >= http.StatusInternalServerError {
		logger.FromContext(r.Context(), nil).Error("request failed", map[string]any{
			"error":  err,
			"status": status,
			"path":   r.URL.Path,
		})
		body = ErrorBody{Error: http.StatusText(status)}
	}

	WriteJSON(w, status, body)
}

// BadRequest para errores de forma del request (JSON inválido, ids mal formados).
func BadRequest(w http.ResponseWriter, msg string) {
	WriteJSON(w, http.StatusBadRequest, ErrorBody{Error: msg})
}

func Decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

// IDParam lee un id entero positivo de la ruta.
func IDParam(r *http.Request, name string) (int64, error) {
	return parseID(name, chi.URLParam(r, name))
}

// QueryID lee un id opcional del query string; ok=false si no viene.
func QueryID(r *http.Request, name string) (id int64, ok bool, err error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, false, nil
	}
	id, err = parseID(name, raw)
	return id, err == nil, err
}

func parseID(name, raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}
	return id, nil
}
