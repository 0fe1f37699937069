package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todopoints/internal/domain"
)

func TestMigrateCommand(t *testing.T) {
	c, values := newTestContainer(t)
	require.NoError(t, values.Put(domain.NamespaceTasks, domain.KeyTasks, domain.Value{
		Kind:    domain.KindStringSet,
		Strings: []string{"b,false", "a,true", "broken"},
	}))

	out, err := runCommand(t, newMigrateCommand(c), "", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "Would convert 2 tasks, dropping 1 malformed records")

	out, err = runCommand(t, newMigrateCommand(c), "")
	require.NoError(t, err)
	assert.Contains(t, out, "Converted 2 tasks, dropped 1 malformed records")

	stored, _, err := values.Get(domain.NamespaceTasks, domain.KeyTasks)
	require.NoError(t, err)
	assert.Equal(t, domain.KindStringList, stored.Kind)
	assert.Equal(t, []string{"a,true", "b,false"}, stored.Strings)

	out, err = runCommand(t, newMigrateCommand(c), "")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing to migrate (format: list)")
}

func TestInitCommand(t *testing.T) {
	c, _ := newTestContainer(t)

	out, err := runCommand(t, newInitCommand(c), "")

	require.NoError(t, err)
	assert.Contains(t, out, "Initialized file store in /data/todopoints")
}
