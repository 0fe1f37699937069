package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todopoints/internal/domain"
	"github.com/runoshun/todopoints/internal/testutil"
)

func TestShowConfig_Execute(t *testing.T) {
	t.Run("returns both config infos and effective config", func(t *testing.T) {
		manager := &testutil.MockConfigManager{
			GlobalInfo: domain.ConfigInfo{
				Path:    "/home/test/.config/todopoints/config.toml",
				Content: "[log]\nlevel = \"debug\"",
				Exists:  true,
			},
			OverrideInfo: domain.ConfigInfo{
				Path: "/home/test/.config/todopoints/config.override.toml",
			},
		}
		cfg := domain.NewDefaultConfig()
		cfg.Log.Level = "debug"
		loader := &testutil.MockConfigLoader{Config: cfg}

		out, err := NewShowConfig(manager, loader).Execute(context.Background(), ShowConfigInput{})

		require.NoError(t, err)
		assert.True(t, out.GlobalConfig.Exists)
		assert.False(t, out.OverrideConfig.Exists)
		assert.Equal(t, "debug", out.EffectiveConfig.Log.Level)
	})

	t.Run("propagates loader errors", func(t *testing.T) {
		loader := &testutil.MockConfigLoader{Err: assert.AnError}

		_, err := NewShowConfig(&testutil.MockConfigManager{}, loader).Execute(context.Background(), ShowConfigInput{})

		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestInitConfig_Execute(t *testing.T) {
	manager := &testutil.MockConfigManager{
		GlobalInfo: domain.ConfigInfo{Path: "/home/test/.config/todopoints/config.toml"},
	}

	out, err := NewInitConfig(manager).Execute(context.Background(), InitConfigInput{})

	require.NoError(t, err)
	assert.True(t, manager.InitGlobalCall)
	assert.Equal(t, "/home/test/.config/todopoints/config.toml", out.Path)
}

func TestInitConfig_Execute_Exists(t *testing.T) {
	manager := &testutil.MockConfigManager{InitErr: domain.ErrConfigExists}

	_, err := NewInitConfig(manager).Execute(context.Background(), InitConfigInput{})

	assert.ErrorIs(t, err, domain.ErrConfigExists)
}

func TestInitStore_Execute(t *testing.T) {
	logger := &testutil.MockLogger{}
	uc := NewInitStore(testutil.NewMemoryValueStore(), logger)

	out, err := uc.Execute(context.Background(), InitStoreInput{Location: "/data/todopoints"})

	require.NoError(t, err)
	assert.Equal(t, "/data/todopoints", out.Location)
	require.Len(t, logger.Entries, 1)
	assert.Contains(t, logger.Entries[0].Msg, "/data/todopoints")
}
