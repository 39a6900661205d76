package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"doggo/internal/adapters/storage/memory"
	"doggo/internal/errs"
	"doggo/internal/router"
)

func TestHTTP_EndToEnd_Profiles(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// 1) Barrios
	north := createID(t, ts.URL, "/neighborhoods", map[string]any{"name": "Palermo"})
	south := createID(t, ts.URL, "/neighborhoods", map[string]any{"name": "Boca"})

	// 2) Owner con dos perros
	ownerID := createID(t, ts.URL, "/owners", map[string]any{
		"name":            "Ana",
		"email":           "Ana@Example.com",
		"address":         "Av. Santa Fe 1234",
		"phone":           "555-0101",
		"neighborhood_id": north,
	})
	rex := createID(t, ts.URL, "/dogs", map[string]any{"name": "Rex", "breed": "Boxer", "owner_id": ownerID})
	createID(t, ts.URL, "/dogs", map[string]any{"name": "Luna", "breed": "Galgo", "notes": "  ", "owner_id": ownerID})

	// 3) Walkers: uno por barrio
	walker := createID(t, ts.URL, "/walkers", map[string]any{"name": "Sofía", "neighborhood_id": north})
	createID(t, ts.URL, "/walkers", map[string]any{"name": "Juan", "neighborhood_id": south})

	// 4) Dos paseos
	createID(t, ts.URL, "/walks", map[string]any{
		"date": "2025-01-10T09:00:00Z", "duration_seconds": 3600, "walker_id": walker, "dog_id": rex,
	})
	createID(t, ts.URL, "/walks", map[string]any{
		"date": "2025-01-12T09:00:00-03:00", "duration_seconds": 1500, "walker_id": walker, "dog_id": rex,
	})

	// 5) Perfil del owner: solo walkers de su barrio
	{
		st, body := doReq(t, ts.URL, "GET", "/owners/"+itoa(ownerID)+"/profile", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 owner profile, got %d body=%s", st, string(body))
		}
		var p struct {
			Owner struct {
				Email string `json:"email"`
			} `json:"owner"`
			Neighborhood struct {
				Name string `json:"name"`
			} `json:"neighborhood"`
			Dogs []struct {
				Notes *string `json:"notes"`
			} `json:"dogs"`
			Walkers []struct {
				NeighborhoodID int64 `json:"neighborhood_id"`
			} `json:"walkers"`
		}
		mustJSON(t, body, &p)

		if p.Owner.Email != "ana@example.com" {
			t.Fatalf("expected normalized email, got %q", p.Owner.Email)
		}
		if p.Neighborhood.Name != "Palermo" {
			t.Fatalf("expected Palermo, got %q", p.Neighborhood.Name)
		}
		if len(p.Dogs) != 2 || p.Dogs[1].Notes != nil {
			t.Fatalf("expected 2 dogs, blank notes as null: %s", string(body))
		}
		if len(p.Walkers) != 1 || p.Walkers[0].NeighborhoodID != north {
			t.Fatalf("expected only walkers from %d: %s", north, string(body))
		}
	}

	// 6) Perfil del walker: más reciente primero y total
	{
		st, body := doReq(t, ts.URL, "GET", "/walkers/"+itoa(walker)+"/profile", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 walker profile, got %d body=%s", st, string(body))
		}
		var p struct {
			Walks []struct {
				Date     string `json:"date"`
				Duration string `json:"duration"`
			} `json:"walks"`
			TotalWalkedSeconds int64  `json:"total_walked_seconds"`
			TotalWalked        string `json:"total_walked"`
		}
		mustJSON(t, body, &p)

		if len(p.Walks) != 2 || p.Walks[0].Date != "2025-01-12T12:00:00Z" {
			t.Fatalf("expected newest walk first in UTC: %s", string(body))
		}
		if p.TotalWalkedSeconds != 5100 || p.TotalWalked != "1 hr 25 min" {
			t.Fatalf("unexpected totals: %s", string(body))
		}
	}

	// 7) Borrar un owner con perros se rechaza
	{
		st, body := doReq(t, ts.URL, "DELETE", "/owners/"+itoa(ownerID), nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 deleting owner with dogs, got %d body=%s", st, string(body))
		}
		var e struct {
			Field  string `json:"field"`
			Entity string `json:"entity"`
		}
		mustJSON(t, body, &e)
		if e.Entity != "owner" || e.Field != "id" {
			t.Fatalf("unexpected error body: %s", string(body))
		}
	}

	// 8) Filtros por query
	{
		st, body := doReq(t, ts.URL, "GET", "/owners?email=ANA@example.com", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 by email, got %d body=%s", st, string(body))
		}
		st, _ = doReq(t, ts.URL, "GET", "/owners?email=nobody@example.com", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for unknown email, got %d", st)
		}
		st, body = doReq(t, ts.URL, "GET", "/walkers?neighborhood_id="+itoa(south), nil)
		var ws []map[string]any
		mustJSON(t, body, &ws)
		if st != http.StatusOK || len(ws) != 1 {
			t.Fatalf("expected one walker in south, got %d body=%s", st, string(body))
		}
		st, body = doReq(t, ts.URL, "GET", "/walks?dog_id="+itoa(rex), nil)
		var wk []map[string]any
		mustJSON(t, body, &wk)
		if st != http.StatusOK || len(wk) != 2 {
			t.Fatalf("expected 2 walks for rex, got %d body=%s", st, string(body))
		}
	}
}

func TestHTTP_Errors(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
	}{
		{"unknown owner", "GET", "/owners/999", nil, http.StatusNotFound},
		{"unknown walker profile", "GET", "/walkers/999/profile", nil, http.StatusNotFound},
		{"bad id", "GET", "/dogs/abc", nil, http.StatusBadRequest},
		{"negative id", "GET", "/walks/-1", nil, http.StatusBadRequest},
		{"delete missing walker", "DELETE", "/walkers/999", nil, http.StatusNotFound},
		{"invalid json", "POST", "/neighborhoods", "not-an-object", http.StatusBadRequest},
		{"dangling owner", "POST", "/dogs", map[string]any{"name": "Ghost", "breed": "Husky", "owner_id": 42}, http.StatusBadRequest},
		{"missing name", "POST", "/neighborhoods", map[string]any{"name": ""}, http.StatusBadRequest},
		{"empty dogs of unknown owner", "GET", "/owners/999/dogs", nil, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, body := doReq(t, ts.URL, tt.method, tt.path, tt.body)
			if st != tt.status {
				t.Fatalf("expected %d, got %d body=%s", tt.status, st, string(body))
			}
		})
	}
}

func TestHTTP_Health(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/health", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", st, string(body))
	}

	repos := memory.NewRepositories()
	down := httptest.NewServer(router.NewRouter(router.Options{
		Repos:  &repos,
		Health: pingFunc(func(ctx context.Context) error { return errs.Connection("ping", errors.New("refused")) }),
	}))
	defer down.Close()

	st, body = doReq(t, down.URL, "GET", "/health", nil)
	if st != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d body=%s", st, string(body))
	}
}

func TestHTTP_RequestIDHeader(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	res, err := http.Get(ts.URL + "/neighborhoods")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer res.Body.Close()

	if res.Header.Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header")
	}
}

// -------------------------
// Helpers
// -------------------------

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func itoa(id int64) string { return strconv.FormatInt(id, 10) }

func createID(t *testing.T, baseURL, path string, body any) int64 {
	t.Helper()

	st, resp := doReq(t, baseURL, "POST", path, body)
	if st != http.StatusCreated {
		t.Fatalf("POST %s: expected 201, got %d body=%s", path, st, string(resp))
	}
	var out struct {
		ID int64 `json:"id"`
	}
	mustJSON(t, resp, &out)
	if out.ID == 0 {
		t.Fatalf("POST %s: missing id in %s", path, string(resp))
	}
	return out.ID
}

func mustJSON(t *testing.T, b []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(b, v); err != nil {
		t.Fatalf("json unmarshal: %v body=%s", err, string(b))
	}
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
