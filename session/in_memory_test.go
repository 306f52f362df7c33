package session

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStore_GetCreatesLazily(t *testing.T) {
	store := NewInMemoryStore()

	tr, err := store.Get("run-1")
	require.NoError(t, err)
	assert.Equal(t, "run-1", tr.ID)
	assert.Equal(t, 0, tr.Len())
}

func TestInMemoryStore_AppendResponse(t *testing.T) {
	store := NewInMemoryStore()

	first, err := store.AppendResponse("run-1", "researcher", "findings")
	require.NoError(t, err)
	second, err := store.AppendResponse("run-1", "writer", "draft")
	require.NoError(t, err)

	assert.Equal(t, 0, first.Index)
	assert.Equal(t, 1, second.Index)

	tr, err := store.Get("run-1")
	require.NoError(t, err)
	assert.Equal(t, 2, tr.Len())
}

func TestInMemoryStore_GetReturnsClone(t *testing.T) {
	store := NewInMemoryStore()
	_, err := store.AppendResponse("run-1", "a", "one")
	require.NoError(t, err)

	tr, err := store.Get("run-1")
	require.NoError(t, err)
	tr.Append("b", "externally added")

	fresh, err := store.Get("run-1")
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.Len())
}

func TestInMemoryStore_CreateOverwrites(t *testing.T) {
	store := NewInMemoryStore()
	_, err := store.AppendResponse("run-1", "a", "one")
	require.NoError(t, err)

	_, err = store.Create("run-1")
	require.NoError(t, err)

	tr, err := store.Get("run-1")
	require.NoError(t, err)
	assert.Equal(t, 0, tr.Len())
}

func TestInMemoryStore_Delete(t *testing.T) {
	store := NewInMemoryStore()
	_, err := store.Create("run-1")
	require.NoError(t, err)

	require.NoError(t, store.Delete("run-1"))
	assert.Error(t, store.Delete("run-1"))
}

func TestInMemoryStore_ConcurrentAppends(t *testing.T) {
	store := NewInMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := store.AppendResponse("run-1", fmt.Sprintf("agent-%d", i), "text")
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	tr, err := store.Get("run-1")
	require.NoError(t, err)
	assert.Equal(t, 50, tr.Len())
}
