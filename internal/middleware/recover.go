package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	"doggo/internal/platform/logger"
	"doggo/internal/platform/web"
)

// Recover convierte un panic en 500 con cuerpo JSON y lo loguea con stack.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			logger.FromContext(r.Context(), nil).Error("panic recovered", map[string]any{
				"panic":  rec,
				"path":   r.URL.Path,
				"method": r.Method,
				"stack":  string(debug.Stack()),
			})
			web.WriteJSON(w, http.StatusInternalServerError, web.ErrorBody{
				Error: http.StatusText(http.StatusInternalServerError),
			})
		}()

		next.ServeHTTP(w, r)
	})
}
