package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todopoints/internal/domain"
	"github.com/runoshun/todopoints/internal/infra/prefs"
	"github.com/runoshun/todopoints/internal/infra/repository"
	"github.com/runoshun/todopoints/internal/testutil"
)

func TestMigrateTasks_Execute_LegacySet(t *testing.T) {
	// Setup: a legacy set with one malformed record
	values := testutil.NewMemoryValueStore()
	provider := prefs.NewProvider(values)
	require.NoError(t, provider.Namespace(domain.NamespaceTasks).SetStringSet(domain.KeyTasks,
		[]string{"water plants,false", "pay rent,true", "bad"}))
	repo := repository.NewTaskRepository(provider)
	uc := NewMigrateTasks(repo, values, domain.NopLogger{})

	// Execute
	out, err := uc.Execute(context.Background(), MigrateTasksInput{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.TaskFormatLegacySet, out.From)
	assert.Equal(t, 2, out.Converted)
	assert.Equal(t, 1, out.Dropped)
	assert.True(t, out.Migrated)

	records, found, err := provider.Namespace(domain.NamespaceTasks).GetStringList(domain.KeyTasks)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"pay rent,true", "water plants,false"}, records)

	// Second run is a no-op
	out, err = uc.Execute(context.Background(), MigrateTasksInput{})
	require.NoError(t, err)
	assert.Equal(t, domain.TaskFormatList, out.From)
	assert.False(t, out.Migrated)
}

func TestMigrateTasks_Execute_DryRun(t *testing.T) {
	repo := testutil.NewMockTaskRepository(domain.Task{Text: "a"})
	repo.Format = domain.TaskFormatLegacySet
	uc := NewMigrateTasks(repo, testutil.NewMemoryValueStore(), domain.NopLogger{})

	out, err := uc.Execute(context.Background(), MigrateTasksInput{DryRun: true})

	require.NoError(t, err)
	assert.Equal(t, 1, out.Converted)
	assert.False(t, out.Migrated)
	assert.Zero(t, repo.Saves)
}

func TestMigrateTasks_Execute_NothingStored(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	uc := NewMigrateTasks(repo, testutil.NewMemoryValueStore(), domain.NopLogger{})

	out, err := uc.Execute(context.Background(), MigrateTasksInput{})

	require.NoError(t, err)
	assert.Equal(t, domain.TaskFormatNone, out.From)
	assert.False(t, out.Migrated)
}
