package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todopoints/internal/domain"
	"github.com/runoshun/todopoints/internal/testutil"
)

func TestConfigShowCommand(t *testing.T) {
	c, _ := newTestContainer(t)
	c.ConfigManager = &testutil.MockConfigManager{
		GlobalInfo:   domain.ConfigInfo{Path: "/cfg/config.toml", Exists: true},
		OverrideInfo: domain.ConfigInfo{Path: "/cfg/config.override.toml"},
	}
	cfg := domain.NewDefaultConfig()
	cfg.Storage.EncryptionKey = "secret"
	c.ConfigLoader = &testutil.MockConfigLoader{Config: cfg}

	out, err := runCommand(t, newConfigCommand(c), "", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "- /cfg/config.toml\n")
	assert.Contains(t, out, "- /cfg/config.override.toml (not found)")
	assert.Contains(t, out, "[storage]")
	assert.Contains(t, out, "backend = 'file'")
	assert.NotContains(t, out, "secret")
}

func TestConfigInitCommand(t *testing.T) {
	c, _ := newTestContainer(t)
	manager := &testutil.MockConfigManager{GlobalInfo: domain.ConfigInfo{Path: "/cfg/config.toml"}}
	c.ConfigManager = manager

	out, err := runCommand(t, newConfigCommand(c), "", "init")

	require.NoError(t, err)
	assert.True(t, manager.InitGlobalCall)
	assert.Contains(t, out, "Created /cfg/config.toml")
}

func TestConfigInitCommand_Exists(t *testing.T) {
	c, _ := newTestContainer(t)
	c.ConfigManager = &testutil.MockConfigManager{
		GlobalInfo: domain.ConfigInfo{Path: "/cfg/config.toml", Exists: true},
		InitErr:    domain.ErrConfigExists,
	}

	_, err := runCommand(t, newConfigCommand(c), "", "init")

	require.ErrorIs(t, err, domain.ErrConfigExists)
	assert.Contains(t, err.Error(), "/cfg/config.toml")
}
