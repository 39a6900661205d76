package httpclient_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doggo/internal/errs"
	"doggo/internal/platform/httpclient"
)

func TestNew_RejectsBadURL(t *testing.T) {
	for _, raw := range []string{"", "localhost:8080", "ftp://host", "/relative"} {
		_, err := httpclient.New(raw, 0)
		assert.Error(t, err, raw)
	}
}

func TestClient_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		switch r.URL.Path {
		case "/neighborhoods":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id":1,"name":"Palermo"}]`))
		case "/owners/9/profile":
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"owner 9 not found"}`))
		default:
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}))
	defer srv.Close()

	c, err := httpclient.New(srv.URL+"/", 0)
	require.NoError(t, err)

	var hoods []struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, c.Get(context.Background(), "neighborhoods", &hoods))
	require.Len(t, hoods, 1)
	assert.Equal(t, "Palermo", hoods[0].Name)

	err = c.Get(context.Background(), "/owners/9/profile", nil)
	var he *httpclient.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusNotFound, he.StatusCode)
	assert.Equal(t, "owner 9 not found", he.Body.Error)
	assert.True(t, errors.Is(err, errs.ErrNotFound))

	err = c.Get(context.Background(), "/elsewhere", nil)
	assert.True(t, errors.Is(err, errs.ErrConnection))
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := httpclient.New(url, 0)
	require.NoError(t, err)

	err = c.Get(context.Background(), "/health", nil)
	assert.True(t, errors.Is(err, errs.ErrConnection), "got %v", err)
}
