// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"slices"

	"github.com/runoshun/todopoints/internal/domain"
)

// MemoryValueStore is an in-memory domain.ValueStore.
// Fields are ordered to minimize memory padding.
type MemoryValueStore struct {
	Data   map[string]map[string]domain.Value
	GetErr error
	PutErr error
	Puts   int
}

// NewMemoryValueStore creates an empty MemoryValueStore.
func NewMemoryValueStore() *MemoryValueStore {
	return &MemoryValueStore{Data: make(map[string]map[string]domain.Value)}
}

// Get returns a value.
func (m *MemoryValueStore) Get(namespace, key string) (domain.Value, bool, error) {
	if m.GetErr != nil {
		return domain.Value{}, false, m.GetErr
	}
	v, ok := m.Data[namespace][key]
	return v, ok, nil
}

// Put stores a value.
func (m *MemoryValueStore) Put(namespace, key string, value domain.Value) error {
	if m.PutErr != nil {
		return m.PutErr
	}
	if m.Data[namespace] == nil {
		m.Data[namespace] = make(map[string]domain.Value)
	}
	m.Data[namespace][key] = value
	m.Puts++
	return nil
}

// Delete removes a value.
func (m *MemoryValueStore) Delete(namespace, key string) error {
	delete(m.Data[namespace], key)
	return nil
}

// Keys lists keys of a namespace, sorted.
func (m *MemoryValueStore) Keys(namespace string) ([]string, error) {
	var keys []string
	for k := range m.Data[namespace] {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys, nil
}

// Initialize is a no-op.
func (m *MemoryValueStore) Initialize() error {
	return nil
}

// MockTaskRepository is a test double for domain.TaskRepository.
// Fields are ordered to minimize memory padding.
type MockTaskRepository struct {
	LoadErr error
	SaveErr error
	Tasks   []domain.Task
	Format  domain.TaskFormat
	Dropped int
	Saves   int
}

// NewMockTaskRepository creates a repository holding the given tasks.
func NewMockTaskRepository(tasks ...domain.Task) *MockTaskRepository {
	format := domain.TaskFormatNone
	if len(tasks) > 0 {
		format = domain.TaskFormatList
	}
	return &MockTaskRepository{Tasks: tasks, Format: format}
}

// Load returns a copy of the stored tasks.
func (m *MockTaskRepository) Load() (*domain.TaskSnapshot, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return &domain.TaskSnapshot{
		Tasks:   slices.Clone(m.Tasks),
		Format:  m.Format,
		Dropped: m.Dropped,
	}, nil
}

// Save replaces the stored tasks.
func (m *MockTaskRepository) Save(tasks []domain.Task) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Tasks = slices.Clone(tasks)
	m.Format = domain.TaskFormatList
	m.Dropped = 0
	m.Saves++
	return nil
}

// MockStoreStateRepository is a test double for domain.StoreStateRepository.
type MockStoreStateRepository struct {
	LoadErr error
	SaveErr error
	State   domain.StoreState
}

// Load returns a copy of the state.
func (m *MockStoreStateRepository) Load() (*domain.StoreState, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return &domain.StoreState{
		Purchased: slices.Clone(m.State.Purchased),
		Selected:  m.State.Selected,
	}, nil
}

// SavePurchased stores the purchased names.
func (m *MockStoreStateRepository) SavePurchased(names []string) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.State.Purchased = slices.Clone(names)
	return nil
}

// SaveSelected stores the selected name.
func (m *MockStoreStateRepository) SaveSelected(name string) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.State.Selected = name
	return nil
}

// MockPointBalance is a test double for domain.PointBalance.
type MockPointBalance struct {
	Err    error
	Points int
}

// Balance returns the configured points.
func (m *MockPointBalance) Balance() (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return m.Points, nil
}

// Award adds points.
func (m *MockPointBalance) Award(points int) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	m.Points += points
	return m.Points, nil
}

// Spend deducts points if affordable.
func (m *MockPointBalance) Spend(points int) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	if m.Points < points {
		return m.Points, domain.ErrInsufficientFunds
	}
	m.Points -= points
	return m.Points, nil
}

// LogEntry is a captured log line.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// String formats the entry for assertions.
func (e LogEntry) String() string {
	return fmt.Sprintf("[%s] [%s] %s", e.Level, e.Category, e.Msg)
}

// MockLogger captures log entries.
type MockLogger struct {
	Entries []LogEntry
}

func (m *MockLogger) add(level, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// Debug records a debug entry.
func (m *MockLogger) Debug(category, msg string) { m.add("DEBUG", category, msg) }

// Info records an info entry.
func (m *MockLogger) Info(category, msg string) { m.add("INFO", category, msg) }

// Warn records a warning entry.
func (m *MockLogger) Warn(category, msg string) { m.add("WARN", category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(category, msg string) { m.add("ERROR", category, msg) }

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config *domain.Config
	Err    error
}

// Load returns the configured config.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	InitErr        error
	GlobalInfo     domain.ConfigInfo
	OverrideInfo   domain.ConfigInfo
	InitGlobalCall bool
}

// GetGlobalConfigInfo returns the configured info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalInfo
}

// GetOverrideConfigInfo returns the configured info.
func (m *MockConfigManager) GetOverrideConfigInfo() domain.ConfigInfo {
	return m.OverrideInfo
}

// InitGlobalConfig records the call.
func (m *MockConfigManager) InitGlobalConfig(_ *domain.Config) error {
	m.InitGlobalCall = true
	return m.InitErr
}

// Ensure mocks implement the ports.
var (
	_ domain.ValueStore           = (*MemoryValueStore)(nil)
	_ domain.StoreInitializer     = (*MemoryValueStore)(nil)
	_ domain.TaskRepository       = (*MockTaskRepository)(nil)
	_ domain.StoreStateRepository = (*MockStoreStateRepository)(nil)
	_ domain.PointBalance         = (*MockPointBalance)(nil)
	_ domain.Logger               = (*MockLogger)(nil)
	_ domain.ConfigLoader         = (*MockConfigLoader)(nil)
	_ domain.ConfigManager        = (*MockConfigManager)(nil)
)
