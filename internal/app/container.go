// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/runoshun/todopoints/internal/domain"
	"github.com/runoshun/todopoints/internal/infra/config"
	"github.com/runoshun/todopoints/internal/infra/crypto"
	"github.com/runoshun/todopoints/internal/infra/filestore"
	"github.com/runoshun/todopoints/internal/infra/gitstore"
	"github.com/runoshun/todopoints/internal/infra/logging"
	"github.com/runoshun/todopoints/internal/infra/prefs"
	"github.com/runoshun/todopoints/internal/infra/repository"
	"github.com/runoshun/todopoints/internal/usecase"
)

// Config holds the resolved application paths.
type Config struct {
	ConfigDir     string // Directory holding config.toml
	DataDir       string // Directory holding store data and logs
	Backend       string // Storage backend name
	StoreLocation string // File store directory or git repository path
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Values           domain.ValueStore
	StoreInitializer domain.StoreInitializer
	Tasks            domain.TaskRepository
	StoreState       domain.StoreStateRepository
	Points           domain.PointBalance
	ConfigLoader     domain.ConfigLoader
	ConfigManager    domain.ConfigManager
	AppLogger        domain.Logger

	// Pointer fields
	Logger    *slog.Logger
	AppConfig *domain.Config
	closer    io.Closer

	// Configuration
	Config Config
}

// New creates a Container from the configuration in configDir.
// An empty configDir means the XDG default.
func New(configDir string) (*Container, error) {
	if configDir == "" {
		configDir = config.DefaultGlobalConfigDir()
	}

	configLoader := config.NewLoaderWithGlobalDir(configDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// Diagnostics go to stderr; the file logger records application events
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	for _, w := range appConfig.Warnings {
		logger.Warn("config", "warning", w)
	}

	dataDir, err := resolveDataDir(appConfig.Storage.Dir)
	if err != nil {
		return nil, err
	}

	cfg := Config{
		ConfigDir: configDir,
		DataDir:   dataDir,
		Backend:   appConfig.Storage.Backend,
	}

	var values domain.ValueStore
	var storeInit domain.StoreInitializer
	switch appConfig.Storage.Backend {
	case domain.BackendGit:
		var sealer *crypto.Sealer
		if appConfig.Storage.EncryptionKey != "" {
			sealer, err = crypto.NewSealer(appConfig.Storage.EncryptionKey)
			if err != nil {
				return nil, fmt.Errorf("encryption key: %w", err)
			}
		}
		cfg.StoreLocation = domain.GitStorePath(dataDir)
		gitStore, err := gitstore.Open(cfg.StoreLocation, appConfig.Storage.Namespace, sealer)
		if err != nil {
			return nil, err
		}
		values, storeInit = gitStore, gitStore
	default:
		cfg.StoreLocation = dataDir
		fileStore := filestore.New(dataDir)
		values, storeInit = fileStore, fileStore
	}

	fileLogger := logging.New(dataDir, logging.ParseLevel(appConfig.Log.Level))

	c := NewWithDeps(cfg, values, storeInit, fileLogger, logger)
	c.ConfigLoader = configLoader
	c.ConfigManager = config.NewManagerWithGlobalDir(configDir)
	c.AppConfig = appConfig
	c.closer = fileLogger
	return c, nil
}

// NewWithDeps creates a Container over the given value store.
// Repositories and the point balance are built on top of it.
func NewWithDeps(cfg Config, values domain.ValueStore, storeInit domain.StoreInitializer, appLogger domain.Logger, logger *slog.Logger) *Container {
	if appLogger == nil {
		appLogger = domain.NopLogger{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	provider := prefs.NewProvider(values)
	return &Container{
		Values:           values,
		StoreInitializer: storeInit,
		Tasks:            repository.NewTaskRepository(provider),
		StoreState:       repository.NewStoreStateRepository(provider),
		Points:           repository.NewPointBalance(provider),
		AppLogger:        appLogger,
		Logger:           logger,
		AppConfig:        domain.NewDefaultConfig(),
		Config:           cfg,
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// resolveDataDir returns the configured data dir, or the XDG default.
func resolveDataDir(configured string) (string, error) {
	if configured != "" {
		if rest, ok := strings.CutPrefix(configured, "~/"); ok {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("resolve home directory: %w", err)
			}
			return filepath.Join(home, rest), nil
		}
		return configured, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return domain.DataDir(dataHome), nil
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Tasks, c.AppLogger)
}

// RequestCompleteUseCase returns a new RequestComplete use case.
func (c *Container) RequestCompleteUseCase() *usecase.RequestComplete {
	return usecase.NewRequestComplete(c.Tasks)
}

// ConfirmCompleteUseCase returns a new ConfirmComplete use case.
func (c *Container) ConfirmCompleteUseCase() *usecase.ConfirmComplete {
	return usecase.NewConfirmComplete(c.Tasks, c.Points, c.AppLogger)
}

// ConfirmDeleteUseCase returns a new ConfirmDelete use case.
func (c *Container) ConfirmDeleteUseCase() *usecase.ConfirmDelete {
	return usecase.NewConfirmDelete(c.Tasks, c.AppLogger)
}

// LoadTasksUseCase returns a new LoadTasks use case.
func (c *Container) LoadTasksUseCase() *usecase.LoadTasks {
	return usecase.NewLoadTasks(c.Tasks, c.Points, c.AppLogger)
}

// LoadCatalogUseCase returns a new LoadCatalog use case.
func (c *Container) LoadCatalogUseCase() *usecase.LoadCatalog {
	return usecase.NewLoadCatalog(c.StoreState, c.Points)
}

// PurchaseItemUseCase returns a new PurchaseItem use case.
func (c *Container) PurchaseItemUseCase() *usecase.PurchaseItem {
	return usecase.NewPurchaseItem(c.StoreState, c.Points, c.AppLogger)
}

// SelectItemUseCase returns a new SelectItem use case.
func (c *Container) SelectItemUseCase() *usecase.SelectItem {
	return usecase.NewSelectItem(c.StoreState, c.AppLogger)
}

// ActiveThemeUseCase returns a new ActiveTheme use case.
func (c *Container) ActiveThemeUseCase() *usecase.ActiveTheme {
	return usecase.NewActiveTheme(c.StoreState)
}

// ShowPointsUseCase returns a new ShowPoints use case.
func (c *Container) ShowPointsUseCase() *usecase.ShowPoints {
	return usecase.NewShowPoints(c.Points)
}

// MigrateTasksUseCase returns a new MigrateTasks use case.
func (c *Container) MigrateTasksUseCase() *usecase.MigrateTasks {
	return usecase.NewMigrateTasks(c.Tasks, c.StoreInitializer, c.AppLogger)
}

// InitStoreUseCase returns a new InitStore use case.
func (c *Container) InitStoreUseCase() *usecase.InitStore {
	return usecase.NewInitStore(c.StoreInitializer, c.AppLogger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
