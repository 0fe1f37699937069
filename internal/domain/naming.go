package domain

import (
	"path/filepath"
)

// AppName is used for config, data and log directory names.
const AppName = "todopoints"

// Persisted namespaces and keys. These names are shared with data written by
// earlier versions and must not change.
const (
	NamespaceTasks = "tasks"
	NamespaceStore = "store"

	KeyTasks          = "tasks"
	KeyPoints         = "points"
	KeyPurchasedItems = "purchasedItems"
	KeySelectedItem   = "selectedItem"
)

// Config file names.
const (
	ConfigFileName         = "config.toml"
	ConfigOverrideFileName = "config.override.toml"
)

// GlobalConfigDir returns the config directory under configHome
// (typically XDG_CONFIG_HOME or ~/.config, resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppName)
}

// DataDir returns the data directory under dataHome
// (typically XDG_DATA_HOME or ~/.local/share, resolved by caller).
func DataDir(dataHome string) string {
	return filepath.Join(dataHome, AppName)
}

// NamespacePath returns the path of a namespace file for the file backend.
func NamespacePath(dataDir, namespace string) string {
	return filepath.Join(dataDir, namespace+".json")
}

// GitStorePath returns the repository path for the git backend.
func GitStorePath(dataDir string) string {
	return filepath.Join(dataDir, "store.git")
}

// LogPath returns the path to the application log file.
func LogPath(dataDir string) string {
	return filepath.Join(dataDir, "logs", AppName+".log")
}
