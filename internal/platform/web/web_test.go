package web_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doggo/internal/errs"
	"doggo/internal/platform/web"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{
			name:   "constraint",
			err:    errs.Constraint("dog", "owner_id", "referenced Owner does not exist"),
			status: http.StatusBadRequest,
			body:   `{"error":"dog.owner_id: referenced Owner does not exist","field":"owner_id","entity":"dog"}`,
		},
		{
			name:   "not found",
			err:    errs.NotFound("walker", 3),
			status: http.StatusNotFound,
		},
		{
			name:   "connection hides detail",
			err:    errs.Connection("select owner", errors.New("dial tcp 10.0.0.1:5432: refused")),
			status: http.StatusServiceUnavailable,
			body:   `{"error":"Service Unavailable"}`,
		},
		{
			name:   "unknown is 500",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			body:   `{"error":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			web.WriteError(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			if tt.body != "" {
				assert.JSONEq(t, tt.body, rec.Body.String())
			}
		})
	}
}

func TestDecode(t *testing.T) {
	var in struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Rex"}`))
	require.NoError(t, web.Decode(req, &in))
	assert.Equal(t, "Rex", in.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	assert.Error(t, web.Decode(req, &in))
}

func TestIDParam(t *testing.T) {
	r := chi.NewRouter()
	var (
		got    int64
		gotErr error
	)
	r.Get("/dogs/{dogID}", func(w http.ResponseWriter, req *http.Request) {
		got, gotErr = web.IDParam(req, "dogID")
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/dogs/42", nil))
	require.NoError(t, gotErr)
	assert.Equal(t, int64(42), got)

	for _, raw := range []string{"0", "-7", "abc", "1.5"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/dogs/"+raw, nil))
		assert.Error(t, gotErr, raw)
	}
}

func TestQueryID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/walks", nil)
	_, ok, err := web.QueryID(req, "dog_id")
	require.NoError(t, err)
	assert.False(t, ok)

	req = httptest.NewRequest(http.MethodGet, "/walks?dog_id=5", nil)
	id, ok, err := web.QueryID(req, "dog_id")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(5), id)

	req = httptest.NewRequest(http.MethodGet, "/walks?dog_id=x", nil)
	_, ok, err = web.QueryID(req, "dog_id")
	assert.Error(t, err)
	assert.False(t, ok)
}
