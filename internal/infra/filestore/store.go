// Package filestore provides a JSON file-based implementation of domain.ValueStore.
//
// Each namespace lives in its own file:
//
//	<dir>/
//	  tasks.json      {"meta": {...}, "values": {"tasks": {...}, "points": {...}}}
//	  tasks.json.lock
//	  store.json
//	  store.json.lock
package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"syscall"

	"github.com/runoshun/todopoints/internal/domain"
)

// formatVersion is written into every namespace file.
const formatVersion = 1

// namespaceData represents the JSON file structure.
type namespaceData struct {
	Values map[string]domain.Value `json:"values"`
	Meta   meta                    `json:"meta"`
}

// meta contains file metadata.
type meta struct {
	Version int `json:"version"`
}

// Store implements domain.ValueStore using JSON files.
type Store struct {
	dir string
}

// New creates a new Store rooted at dir.
// The directory does not need to exist; it is created on first write.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Get returns the value stored under namespace/key.
func (s *Store) Get(namespace, key string) (domain.Value, bool, error) {
	var (
		value domain.Value
		found bool
	)
	err := s.withLock(namespace, func(data *namespaceData) error {
		value, found = data.Values[key]
		return nil
	})
	return value, found, err
}

// Put stores a value under namespace/key.
func (s *Store) Put(namespace, key string, value domain.Value) error {
	return s.withLockWrite(namespace, func(data *namespaceData) error {
		data.Values[key] = value
		return nil
	})
}

// Delete removes namespace/key.
func (s *Store) Delete(namespace, key string) error {
	return s.withLockWrite(namespace, func(data *namespaceData) error {
		delete(data.Values, key)
		return nil
	})
}

// Keys lists the keys of a namespace in sorted order.
func (s *Store) Keys(namespace string) ([]string, error) {
	var keys []string
	err := s.withLock(namespace, func(data *namespaceData) error {
		for k := range data.Values {
			keys = append(keys, k)
		}
		return nil
	})
	slices.Sort(keys)
	return keys, err
}

// Initialize creates the data directory if it doesn't exist.
func (s *Store) Initialize() error {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	return nil
}

func (s *Store) path(namespace string) string {
	return domain.NamespacePath(s.dir, namespace)
}

// withLock executes fn with a shared (read) lock.
func (s *Store) withLock(namespace string, fn func(*namespaceData) error) error {
	lock, err := s.acquireLock(namespace, syscall.LOCK_SH)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read(namespace)
	if err != nil {
		return err
	}

	return fn(data)
}

// withLockWrite executes fn with an exclusive (write) lock and writes the result.
func (s *Store) withLockWrite(namespace string, fn func(*namespaceData) error) error {
	lock, err := s.acquireLock(namespace, syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read(namespace)
	if err != nil {
		return err
	}

	if err := fn(data); err != nil {
		return err
	}

	return s.write(namespace, data)
}

func (s *Store) acquireLock(namespace string, lockType int) (*os.File, error) {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.path(namespace)+".lock", os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

// read loads a namespace file. A missing file is an empty namespace.
func (s *Store) read(namespace string) (*namespaceData, error) {
	data := &namespaceData{
		Values: make(map[string]domain.Value),
		Meta:   meta{Version: formatVersion},
	}

	content, err := os.ReadFile(s.path(namespace))
	if err != nil {
		if os.IsNotExist(err) {
			return data, nil
		}
		return nil, fmt.Errorf("read namespace %q: %w", namespace, err)
	}

	if err := json.Unmarshal(content, data); err != nil {
		return nil, fmt.Errorf("parse namespace %q: %w", namespace, err)
	}

	if data.Values == nil {
		data.Values = make(map[string]domain.Value)
	}

	return data, nil
}

func (s *Store) write(namespace string, data *namespaceData) error {
	data.Meta.Version = formatVersion
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal namespace %q: %w", namespace, err)
	}

	// Write to temp file first, then rename for atomicity
	path := s.path(namespace)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// Ensure Store implements the storage ports.
var (
	_ domain.ValueStore       = (*Store)(nil)
	_ domain.StoreInitializer = (*Store)(nil)
)
