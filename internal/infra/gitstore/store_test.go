package gitstore

import (
	"encoding/hex"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todopoints/internal/domain"
	"github.com/runoshun/todopoints/internal/infra/crypto"
)

func setupTestRepo(t *testing.T) *git.Repository {
	t.Helper()

	repo, err := git.Init(memory.NewStorage(), nil)
	require.NoError(t, err)
	return repo
}

func testSealer(t *testing.T) *crypto.Sealer {
	t.Helper()
	key := make([]byte, crypto.KeySize)
	for i := range key {
		key[i] = byte(i + 1)
	}
	s, err := crypto.NewSealer(hex.EncodeToString(key))
	require.NoError(t, err)
	return s
}

func TestStore_Initialize(t *testing.T) {
	store := NewWithRepo(setupTestRepo(t), "todopoints-test", nil)
	assert.False(t, store.IsInitialized())

	require.NoError(t, store.Initialize())
	assert.True(t, store.IsInitialized())

	// Second call should be idempotent
	require.NoError(t, store.Initialize())
}

func TestStore_PutAndGet(t *testing.T) {
	store := NewWithRepo(setupTestRepo(t), "todopoints-test", nil)

	value := domain.Value{Kind: domain.KindStringList, Strings: []string{"Buy milk,false", "a, b,true"}}
	require.NoError(t, store.Put(domain.NamespaceTasks, domain.KeyTasks, value))

	got, found, err := store.Get(domain.NamespaceTasks, domain.KeyTasks)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, value, got)
}

func TestStore_GetMissing(t *testing.T) {
	store := NewWithRepo(setupTestRepo(t), "todopoints-test", nil)

	_, found, err := store.Get(domain.NamespaceStore, domain.KeySelectedItem)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_Overwrite(t *testing.T) {
	store := NewWithRepo(setupTestRepo(t), "todopoints-test", nil)

	require.NoError(t, store.Put(domain.NamespaceTasks, domain.KeyPoints, domain.Value{Kind: domain.KindInt, Int: 10}))
	require.NoError(t, store.Put(domain.NamespaceTasks, domain.KeyPoints, domain.Value{Kind: domain.KindInt, Int: 20}))

	got, _, err := store.Get(domain.NamespaceTasks, domain.KeyPoints)
	require.NoError(t, err)
	assert.Equal(t, 20, got.Int)
}

func TestStore_RefLayout(t *testing.T) {
	repo := setupTestRepo(t)
	store := NewWithRepo(repo, "todopoints-test", nil)

	require.NoError(t, store.Put(domain.NamespaceStore, domain.KeyPurchasedItems, domain.Value{Kind: domain.KindStringSet, Strings: []string{"Red"}}))

	_, err := repo.Reference(plumbing.ReferenceName("refs/todopoints-test/store/purchasedItems"), true)
	assert.NoError(t, err)
}

func TestStore_DeleteAndKeys(t *testing.T) {
	store := NewWithRepo(setupTestRepo(t), "todopoints-test", nil)
	require.NoError(t, store.Initialize())

	require.NoError(t, store.Put(domain.NamespaceStore, domain.KeySelectedItem, domain.Value{Kind: domain.KindString, String: "Red"}))
	require.NoError(t, store.Put(domain.NamespaceStore, domain.KeyPurchasedItems, domain.Value{Kind: domain.KindStringSet, Strings: []string{"Red"}}))
	require.NoError(t, store.Put(domain.NamespaceTasks, domain.KeyPoints, domain.Value{Kind: domain.KindInt, Int: 5}))

	keys, err := store.Keys(domain.NamespaceStore)
	require.NoError(t, err)
	assert.Equal(t, []string{domain.KeyPurchasedItems, domain.KeySelectedItem}, keys)

	require.NoError(t, store.Delete(domain.NamespaceStore, domain.KeySelectedItem))
	require.NoError(t, store.Delete(domain.NamespaceStore, domain.KeySelectedItem))

	keys, err = store.Keys(domain.NamespaceStore)
	require.NoError(t, err)
	assert.Equal(t, []string{domain.KeyPurchasedItems}, keys)
}

func TestStore_Encrypted(t *testing.T) {
	repo := setupTestRepo(t)
	store := NewWithRepo(repo, "todopoints-test", testSealer(t))

	value := domain.Value{Kind: domain.KindString, String: "Gold"}
	require.NoError(t, store.Put(domain.NamespaceStore, domain.KeySelectedItem, value))

	got, found, err := store.Get(domain.NamespaceStore, domain.KeySelectedItem)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, value, got)

	// A store without the key cannot decode the blob
	plain := NewWithRepo(repo, "todopoints-test", nil)
	_, _, err = plain.Get(domain.NamespaceStore, domain.KeySelectedItem)
	assert.Error(t, err)
}

func TestOpen_CreatesBareRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.git")

	store, err := Open(path, "todopoints", nil)
	require.NoError(t, err)
	require.NoError(t, store.Put(domain.NamespaceTasks, domain.KeyPoints, domain.Value{Kind: domain.KindInt, Int: 40}))

	reopened, err := Open(path, "todopoints", nil)
	require.NoError(t, err)
	got, found, err := reopened.Get(domain.NamespaceTasks, domain.KeyPoints)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 40, got.Int)
}
