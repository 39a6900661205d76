package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doggo/internal/adapters/storage"
	"doggo/internal/adapters/storage/memory"
	"doggo/internal/adapters/storage/storetest"
	"doggo/internal/domain/dogs"
	"doggo/internal/domain/neighborhoods"
	"doggo/internal/domain/owners"
)

func TestStore_Contract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) storage.Repositories {
		return memory.NewRepositories()
	})
}

func TestStore_DogPointersAreCopied(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()

	hood, err := repos.Neighborhoods.Create(ctx, neighborhoods.Neighborhood{Name: "Centro"})
	require.NoError(t, err)

	id := createOwner(t, repos, hood)

	notes := "likes tennis balls"
	dogID, err := repos.Dogs.Create(ctx, dogs.Dog{Name: "Toby", Breed: "Mestizo", Notes: &notes, OwnerID: id})
	require.NoError(t, err)

	notes = "mutated by caller"

	got, ok, err := repos.Dogs.GetByID(ctx, dogID)
	require.NoError(t, err)
	require.True(t, ok)
	require.NotNil(t, got.Notes)
	assert.Equal(t, "likes tennis balls", *got.Notes)

	*got.Notes = "mutated again"
	again, _, err := repos.Dogs.GetByID(ctx, dogID)
	require.NoError(t, err)
	assert.Equal(t, "likes tennis balls", *again.Notes)
}

func TestStore_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()

	const n = 50
	var wg sync.WaitGroup
	ids := make([]int64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id, err := repos.Neighborhoods.Create(ctx, neighborhoods.Neighborhood{Name: "N"})
			assert.NoError(t, err)
			ids[i] = id
		}(i)
	}
	wg.Wait()

	seen := make(map[int64]bool, n)
	for _, id := range ids {
		assert.False(t, seen[id], "duplicated id %d", id)
		seen[id] = true
	}

	items, err := repos.Neighborhoods.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, n)
}

func TestStore_RequiredFields(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositories()

	_, err := repos.Neighborhoods.Create(ctx, neighborhoods.Neighborhood{Name: "  "})
	require.Error(t, err)
	assert.Equal(t, "neighborhood.name: is required", err.Error())
}

func createOwner(t *testing.T, repos storage.Repositories, hood int64) int64 {
	t.Helper()
	id, err := repos.Owners.Create(context.Background(), owners.Owner{
		Name:           "Marta",
		Email:          "marta@example.com",
		Address:        "Rivadavia 5000",
		Phone:          "555-0199",
		NeighborhoodID: hood,
	})
	require.NoError(t, err)
	return id
}
