package domain

// ValueKind identifies the type of a stored preference value.
type ValueKind string

// Value kinds.
const (
	KindNone       ValueKind = ""
	KindString     ValueKind = "string"
	KindInt        ValueKind = "int"
	KindStringSet  ValueKind = "string_set"
	KindStringList ValueKind = "string_list"
)

// Value is a single stored preference value.
// Fields are ordered to minimize memory padding.
type Value struct {
	Kind    ValueKind `json:"kind" yaml:"kind"`
	String  string    `json:"string,omitempty" yaml:"string,omitempty"`
	Strings []string  `json:"strings,omitempty" yaml:"strings,omitempty"`
	Int     int       `json:"int,omitempty" yaml:"int,omitempty"`
}

// ValueStore is the raw persistent dictionary behind every namespace.
// Implementations must make each Put and Delete atomic.
type ValueStore interface {
	// Get returns the value stored under namespace/key.
	// found is false if the key does not exist.
	Get(namespace, key string) (value Value, found bool, err error)

	// Put stores a value under namespace/key, replacing any previous value.
	Put(namespace, key string, value Value) error

	// Delete removes namespace/key. Deleting a missing key is not an error.
	Delete(namespace, key string) error

	// Keys lists the keys present in a namespace.
	Keys(namespace string) ([]string, error)
}

// StoreInitializer initializes the data store.
type StoreInitializer interface {
	// Initialize creates the store if it doesn't exist.
	Initialize() error
}

// KVStore is a typed view of one namespace.
// Getters return found=false and the zero value for missing keys, and
// ErrWrongValueKind if the key holds a value of another kind.
type KVStore interface {
	Namespace() string
	Kind(key string) (ValueKind, error)
	GetString(key string) (string, bool, error)
	SetString(key, value string) error
	GetInt(key string) (int, bool, error)
	SetInt(key string, value int) error
	// GetStringSet returns the members sorted.
	GetStringSet(key string) ([]string, bool, error)
	// SetStringSet stores the values with duplicates removed.
	SetStringSet(key string, values []string) error
	GetStringList(key string) ([]string, bool, error)
	SetStringList(key string, values []string) error
	Remove(key string) error
}

// KVProvider hands out namespaced stores.
type KVProvider interface {
	Namespace(name string) KVStore
}

// TaskFormat identifies how the task list is persisted.
type TaskFormat int

const (
	TaskFormatNone       TaskFormat = iota // Nothing stored yet
	TaskFormatList                         // Ordered list of records
	TaskFormatLegacySet                    // Unordered, deduplicated set of records
)

// String returns the name of the format.
func (f TaskFormat) String() string {
	switch f {
	case TaskFormatNone:
		return "none"
	case TaskFormatList:
		return "list"
	case TaskFormatLegacySet:
		return "legacy-set"
	}
	return "unknown"
}

// TaskSnapshot is the task list as read from storage.
type TaskSnapshot struct {
	Tasks   []Task
	Format  TaskFormat
	Dropped int // Malformed records skipped while decoding
}

// TaskRepository persists the ordered task list.
type TaskRepository interface {
	// Load reads the task list in either stored format.
	Load() (*TaskSnapshot, error)

	// Save writes the full list in the ordered format.
	Save(tasks []Task) error
}

// StoreState is the persisted mutable part of the store catalog.
type StoreState struct {
	Selected  string   // Empty if nothing is selected
	Purchased []string // Purchased item names
}

// StoreStateRepository persists purchased and selected store items.
type StoreStateRepository interface {
	Load() (*StoreState, error)
	SavePurchased(names []string) error
	SaveSelected(name string) error
}

// PointBalance is the single owner of the user's point balance.
// Both the task list and the store go through it.
type PointBalance interface {
	// Balance returns the current balance.
	Balance() (int, error)

	// Award adds points and returns the new balance.
	Award(points int) (int, error)

	// Spend deducts points and returns the new balance.
	// Returns ErrInsufficientFunds without changing anything if the balance is too low.
	Spend(points int) (int, error)
}

// Logger writes application log entries.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards all log entries.
type NopLogger struct{}

func (NopLogger) Debug(_, _ string) {}
func (NopLogger) Info(_, _ string)  {}
func (NopLogger) Warn(_, _ string)  {}
func (NopLogger) Error(_, _ string) {}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults + global + override).
	Load() (*Config, error)
}

// ConfigInfo describes a config file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// ConfigManager inspects and creates config files.
type ConfigManager interface {
	GetGlobalConfigInfo() ConfigInfo
	GetOverrideConfigInfo() ConfigInfo
	InitGlobalConfig(cfg *Config) error
}
