package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todopoints/internal/domain"
)

func TestManager_GetGlobalConfigInfo(t *testing.T) {
	t.Run("returns info when file exists", func(t *testing.T) {
		globalDir := t.TempDir()
		configContent := "[log]\nlevel = \"debug\""
		writeConfig(t, globalDir, domain.ConfigFileName, configContent)

		info := NewManagerWithGlobalDir(globalDir).GetGlobalConfigInfo()

		assert.Equal(t, filepath.Join(globalDir, domain.ConfigFileName), info.Path)
		assert.Equal(t, configContent, info.Content)
		assert.True(t, info.Exists)
	})

	t.Run("returns info when file does not exist", func(t *testing.T) {
		globalDir := t.TempDir()

		info := NewManagerWithGlobalDir(globalDir).GetGlobalConfigInfo()

		assert.Equal(t, filepath.Join(globalDir, domain.ConfigFileName), info.Path)
		assert.Empty(t, info.Content)
		assert.False(t, info.Exists)
	})

	t.Run("returns empty info when global dir is empty", func(t *testing.T) {
		info := NewManagerWithGlobalDir("").GetGlobalConfigInfo()

		assert.Empty(t, info.Path)
		assert.False(t, info.Exists)
	})
}

func TestManager_GetOverrideConfigInfo(t *testing.T) {
	globalDir := t.TempDir()
	writeConfig(t, globalDir, domain.ConfigOverrideFileName, "[log]\nlevel = \"warn\"")

	info := NewManagerWithGlobalDir(globalDir).GetOverrideConfigInfo()

	assert.Equal(t, filepath.Join(globalDir, domain.ConfigOverrideFileName), info.Path)
	assert.True(t, info.Exists)
}

func TestManager_InitGlobalConfig(t *testing.T) {
	t.Run("creates config file and directory", func(t *testing.T) {
		globalDir := filepath.Join(t.TempDir(), "todopoints")
		manager := NewManagerWithGlobalDir(globalDir)

		err := manager.InitGlobalConfig(domain.NewDefaultConfig())

		require.NoError(t, err)
		content, err := os.ReadFile(filepath.Join(globalDir, domain.ConfigFileName))
		require.NoError(t, err)
		assert.Contains(t, string(content), "[storage]")
		assert.Contains(t, string(content), `backend = "file"`)
		assert.Contains(t, string(content), `level = "info"`)
	})

	t.Run("returns error if file exists", func(t *testing.T) {
		globalDir := t.TempDir()
		writeConfig(t, globalDir, domain.ConfigFileName, "existing")

		err := NewManagerWithGlobalDir(globalDir).InitGlobalConfig(domain.NewDefaultConfig())

		assert.ErrorIs(t, err, domain.ErrConfigExists)
		content, _ := os.ReadFile(filepath.Join(globalDir, domain.ConfigFileName))
		assert.Equal(t, "existing", string(content))
	})

	t.Run("fails without global dir", func(t *testing.T) {
		err := NewManagerWithGlobalDir("").InitGlobalConfig(domain.NewDefaultConfig())
		assert.Error(t, err)
	})
}
