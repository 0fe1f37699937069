// Package gitstore provides a Git plumbing-based implementation of domain.ValueStore.
package gitstore

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"gopkg.in/yaml.v3"

	"github.com/runoshun/todopoints/internal/domain"
	"github.com/runoshun/todopoints/internal/infra/crypto"
)

// Store implements domain.ValueStore using Git refs and blobs.
//
// Data structure:
//
//	refs/<prefix>/
//	  initialized        → blob marker
//	  <namespace>/
//	    <key>            → blob (value YAML, optionally sealed)
type Store struct {
	repo   *git.Repository
	sealer *crypto.Sealer
	prefix string // e.g., "todopoints"
	mu     sync.RWMutex
}

// Open opens the repository at path, creating a bare repository if none exists.
// A nil sealer stores values in plain YAML.
func Open(path, prefix string, sealer *crypto.Sealer) (*Store, error) {
	repo, err := git.PlainOpen(path)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		repo, err = git.PlainInit(path, true)
	}
	if err != nil {
		return nil, fmt.Errorf("open git repository: %w", err)
	}
	return NewWithRepo(repo, prefix, sealer), nil
}

// NewWithRepo creates a new Store with an existing repository instance.
func NewWithRepo(repo *git.Repository, prefix string, sealer *crypto.Sealer) *Store {
	return &Store{
		repo:   repo,
		prefix: prefix,
		sealer: sealer,
	}
}

// refPrefix returns the ref prefix for this store.
func (s *Store) refPrefix() string {
	return "refs/" + s.prefix + "/"
}

// namespacePrefix returns the ref prefix for a namespace.
func (s *Store) namespacePrefix(namespace string) string {
	return s.refPrefix() + namespace + "/"
}

// valueRef returns the ref name for a key.
func (s *Store) valueRef(namespace, key string) plumbing.ReferenceName {
	return plumbing.ReferenceName(s.namespacePrefix(namespace) + key)
}

// initializedRef returns the ref name for the initialized marker.
func (s *Store) initializedRef() plumbing.ReferenceName {
	return plumbing.ReferenceName(s.refPrefix() + "initialized")
}

// Get returns the value stored under namespace/key.
func (s *Store) Get(namespace, key string) (domain.Value, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ref, err := s.repo.Reference(s.valueRef(namespace, key), true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return domain.Value{}, false, nil
		}
		return domain.Value{}, false, fmt.Errorf("get value ref: %w", err)
	}

	data, err := s.readBlob(ref.Hash())
	if err != nil {
		return domain.Value{}, false, fmt.Errorf("read %s/%s: %w", namespace, key, err)
	}

	var value domain.Value
	if err := yaml.Unmarshal(data, &value); err != nil {
		return domain.Value{}, false, fmt.Errorf("decode %s/%s: %w", namespace, key, err)
	}
	return value, true, nil
}

// Put stores a value under namespace/key.
func (s *Store) Put(namespace, key string, value domain.Value) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal value: %w", err)
	}

	hash, err := s.writeBlob(data)
	if err != nil {
		return err
	}

	ref := plumbing.NewHashReference(s.valueRef(namespace, key), hash)
	if err := s.repo.Storer.SetReference(ref); err != nil {
		return fmt.Errorf("set value ref: %w", err)
	}
	return nil
}

// Delete removes namespace/key.
func (s *Store) Delete(namespace, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Storer.RemoveReference(s.valueRef(namespace, key)); err != nil {
		if !errors.Is(err, plumbing.ErrReferenceNotFound) {
			return fmt.Errorf("remove value ref: %w", err)
		}
	}
	return nil
}

// Keys lists the keys of a namespace in sorted order.
func (s *Store) Keys(namespace string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prefix := s.namespacePrefix(namespace)
	refs, err := s.repo.References()
	if err != nil {
		return nil, fmt.Errorf("list refs: %w", err)
	}
	defer refs.Close()

	var keys []string
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		name := string(ref.Name())
		if key, ok := strings.CutPrefix(name, prefix); ok && key != "" {
			keys = append(keys, key)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterate refs: %w", err)
	}

	slices.Sort(keys)
	return keys, nil
}

// Initialize writes the initialized marker if it doesn't exist.
func (s *Store) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.repo.Reference(s.initializedRef(), true); err == nil {
		return nil
	}

	hash, err := s.writeBlob([]byte("initialized"))
	if err != nil {
		return err
	}

	ref := plumbing.NewHashReference(s.initializedRef(), hash)
	if err := s.repo.Storer.SetReference(ref); err != nil {
		return fmt.Errorf("set initialized ref: %w", err)
	}
	return nil
}

// IsInitialized reports whether the initialized marker exists.
func (s *Store) IsInitialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, err := s.repo.Reference(s.initializedRef(), true)
	return err == nil
}

// writeBlob writes data to a blob, sealing it if configured, and returns the hash.
func (s *Store) writeBlob(data []byte) (plumbing.Hash, error) {
	blobData := data
	if s.sealer != nil {
		sealed, err := s.sealer.Seal(data)
		if err != nil {
			return plumbing.ZeroHash, fmt.Errorf("encrypt data: %w", err)
		}
		blobData = sealed
	}

	obj := s.repo.Storer.NewEncodedObject()
	obj.SetType(plumbing.BlobObject)
	obj.SetSize(int64(len(blobData)))

	writer, err := obj.Writer()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("create blob writer: %w", err)
	}

	if _, writeErr := writer.Write(blobData); writeErr != nil {
		_ = writer.Close()
		return plumbing.ZeroHash, fmt.Errorf("write blob: %w", writeErr)
	}
	_ = writer.Close()

	hash, err := s.repo.Storer.SetEncodedObject(obj)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("store blob: %w", err)
	}

	return hash, nil
}

// readBlob reads and optionally opens data from a blob.
func (s *Store) readBlob(hash plumbing.Hash) ([]byte, error) {
	blob, err := s.repo.BlobObject(hash)
	if err != nil {
		return nil, fmt.Errorf("get blob: %w", err)
	}

	reader, err := blob.Reader()
	if err != nil {
		return nil, fmt.Errorf("read blob: %w", err)
	}
	defer func() { _ = reader.Close() }()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read blob data: %w", err)
	}

	if s.sealer != nil {
		opened, err := s.sealer.Open(data)
		if err != nil {
			return nil, fmt.Errorf("decrypt data: %w", err)
		}
		return opened, nil
	}

	return data, nil
}

// Ensure Store implements the storage ports.
var (
	_ domain.ValueStore       = (*Store)(nil)
	_ domain.StoreInitializer = (*Store)(nil)
)
