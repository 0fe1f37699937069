package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todopoints/internal/domain"
)

func TestStoreStateRepository_Empty(t *testing.T) {
	p, _ := newProvider(t)

	state, err := NewStoreStateRepository(p).Load()
	require.NoError(t, err)
	assert.Empty(t, state.Purchased)
	assert.Empty(t, state.Selected)
}

func TestStoreStateRepository_SaveAndLoad(t *testing.T) {
	p, _ := newProvider(t)
	repo := NewStoreStateRepository(p)

	require.NoError(t, repo.SavePurchased([]string{"Red", "Blue", "Red"}))
	require.NoError(t, repo.SaveSelected("Blue"))

	state, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"Blue", "Red"}, state.Purchased)
	assert.Equal(t, "Blue", state.Selected)
}

func TestStoreStateRepository_ClearSelection(t *testing.T) {
	p, values := newProvider(t)
	repo := NewStoreStateRepository(p)

	require.NoError(t, repo.SaveSelected("Gold"))
	require.NoError(t, repo.SaveSelected(""))

	_, found, err := values.Get(domain.NamespaceStore, domain.KeySelectedItem)
	require.NoError(t, err)
	assert.False(t, found)
}
