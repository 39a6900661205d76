package main

import (
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doggo/internal/adapters/storage/memory"
	"doggo/internal/domain/dogs"
	"doggo/internal/domain/neighborhoods"
	"doggo/internal/domain/owners"
	"doggo/internal/domain/walkers"
	"doggo/internal/domain/walks"
	"doggo/internal/errs"
	"doggo/internal/router"
)

func seededServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()
	repos := memory.NewRepositories()

	hood, err := repos.Neighborhoods.Create(ctx, neighborhoods.Neighborhood{Name: "Palermo"})
	require.NoError(t, err)
	ownerID, err := repos.Owners.Create(ctx, owners.Owner{
		Name: "Ana", Email: "ana@example.com", Address: "Av. Santa Fe 1234", Phone: "555-0101", NeighborhoodID: hood,
	})
	require.NoError(t, err)
	dogID, err := repos.Dogs.Create(ctx, dogs.Dog{Name: "Rex", Breed: "Boxer", OwnerID: ownerID})
	require.NoError(t, err)
	walkerID, err := repos.Walkers.Create(ctx, walkers.Walker{Name: "Sofía", NeighborhoodID: hood})
	require.NoError(t, err)
	_, err = repos.Walks.Create(ctx, walks.Walk{
		Date: time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC), Duration: 95 * time.Minute, WalkerID: walkerID, DogID: dogID,
	})
	require.NoError(t, err)

	ts := httptest.NewServer(router.NewRouter(router.Options{Repos: &repos}))
	t.Cleanup(ts.Close)
	return ts
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCLI_OwnerProfile(t *testing.T) {
	ts := seededServer(t)

	out, err := run(t, "owners", "profile", "1", "--server", ts.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "Ana (#1)")
	assert.Contains(t, out, "Palermo")
	assert.Contains(t, out, "Rex")
	assert.Contains(t, out, "Sofía")
}

func TestCLI_WalkerProfileJSON(t *testing.T) {
	ts := seededServer(t)

	out, err := run(t, "walkers", "profile", "1", "--json", "--server", ts.URL)
	require.NoError(t, err)
	assert.Contains(t, out, `"total_walked": "1 hr 35 min"`)
	assert.Contains(t, out, `"total_walked_seconds": 5700`)
}

func TestCLI_NeighborhoodsList(t *testing.T) {
	ts := seededServer(t)

	out, err := run(t, "neighborhoods", "list", "--server", ts.URL)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "Palermo")
}

func TestCLI_Errors(t *testing.T) {
	ts := seededServer(t)

	_, err := run(t, "owners", "profile", "99", "--server", ts.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrNotFound), "got %v", err)

	_, err = run(t, "walkers", "profile", "abc", "--server", ts.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "positive integer")

	_, err = run(t, "neighborhoods", "list", "--server", "not a url")
	require.Error(t, err)
}
