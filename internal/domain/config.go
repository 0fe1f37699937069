package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Storage backends.
const (
	BackendFile = "file" // One JSON file per namespace
	BackendGit  = "git"  // Git refs and blobs
)

// Default configuration values.
const (
	DefaultBackend      = BackendFile
	DefaultGitNamespace = "todopoints"
	DefaultLogLevel     = "info"
)

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string      `toml:"-"`
	Storage  StorageConfig `toml:"storage"`
	Log      LogConfig     `toml:"log"`
}

// StorageConfig holds settings from the [storage] section.
type StorageConfig struct {
	Backend       string `toml:"backend,omitempty"`        // "file" (default) or "git"
	Dir           string `toml:"dir,omitempty"`            // Data directory (default: XDG data dir)
	Namespace     string `toml:"namespace,omitempty"`      // Ref prefix for the git backend
	EncryptionKey string `toml:"encryption_key,omitempty"` // 64 hex chars enables AES-256-GCM for git blobs
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error
}

// NewDefaultConfig returns a Config with default values.
// Storage.Dir is left empty; the container resolves it from the environment.
func NewDefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend:   DefaultBackend,
			Namespace: DefaultGitNamespace,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// ValidateBackend reports whether the configured backend is known.
func (c *Config) ValidateBackend() error {
	switch c.Storage.Backend {
	case BackendFile, BackendGit:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Storage.Backend)
}

// RenderConfigTemplate renders the commented config file written by `config init`.
func RenderConfigTemplate(cfg *Config) string {
	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}
	return buf.String()
}
