// Package prefs provides typed, namespaced access to a domain.ValueStore.
package prefs

import (
	"fmt"
	"slices"

	"github.com/runoshun/todopoints/internal/domain"
)

// Provider implements domain.KVProvider.
type Provider struct {
	values domain.ValueStore
}

// NewProvider creates a Provider over the given value store.
func NewProvider(values domain.ValueStore) *Provider {
	return &Provider{values: values}
}

// Namespace returns a typed store for the namespace.
func (p *Provider) Namespace(name string) domain.KVStore {
	return &Store{values: p.values, namespace: name}
}

// Store implements domain.KVStore for one namespace.
type Store struct {
	values    domain.ValueStore
	namespace string
}

// Namespace returns the namespace name.
func (s *Store) Namespace() string {
	return s.namespace
}

// Kind returns the kind of the stored value, or KindNone if absent.
func (s *Store) Kind(key string) (domain.ValueKind, error) {
	v, found, err := s.values.Get(s.namespace, key)
	if err != nil {
		return domain.KindNone, err
	}
	if !found {
		return domain.KindNone, nil
	}
	return v.Kind, nil
}

// GetString returns a string value.
func (s *Store) GetString(key string) (string, bool, error) {
	v, found, err := s.get(key, domain.KindString)
	if err != nil || !found {
		return "", false, err
	}
	return v.String, true, nil
}

// SetString stores a string value.
func (s *Store) SetString(key, value string) error {
	return s.put(key, domain.Value{Kind: domain.KindString, String: value})
}

// GetInt returns an integer value.
func (s *Store) GetInt(key string) (int, bool, error) {
	v, found, err := s.get(key, domain.KindInt)
	if err != nil || !found {
		return 0, false, err
	}
	return v.Int, true, nil
}

// SetInt stores an integer value.
func (s *Store) SetInt(key string, value int) error {
	return s.put(key, domain.Value{Kind: domain.KindInt, Int: value})
}

// GetStringSet returns the members of a set, sorted.
func (s *Store) GetStringSet(key string) ([]string, bool, error) {
	v, found, err := s.get(key, domain.KindStringSet)
	if err != nil || !found {
		return nil, false, err
	}
	return normalizeSet(v.Strings), true, nil
}

// SetStringSet stores a set; duplicates are removed.
func (s *Store) SetStringSet(key string, values []string) error {
	return s.put(key, domain.Value{Kind: domain.KindStringSet, Strings: normalizeSet(values)})
}

// GetStringList returns a list in stored order.
func (s *Store) GetStringList(key string) ([]string, bool, error) {
	v, found, err := s.get(key, domain.KindStringList)
	if err != nil || !found {
		return nil, false, err
	}
	return slices.Clone(v.Strings), true, nil
}

// SetStringList stores a list preserving order and duplicates.
func (s *Store) SetStringList(key string, values []string) error {
	return s.put(key, domain.Value{Kind: domain.KindStringList, Strings: slices.Clone(values)})
}

// Remove deletes a key.
func (s *Store) Remove(key string) error {
	if err := s.values.Delete(s.namespace, key); err != nil {
		return fmt.Errorf("remove %s/%s: %w", s.namespace, key, err)
	}
	return nil
}

func (s *Store) get(key string, kind domain.ValueKind) (domain.Value, bool, error) {
	v, found, err := s.values.Get(s.namespace, key)
	if err != nil {
		return domain.Value{}, false, fmt.Errorf("get %s/%s: %w", s.namespace, key, err)
	}
	if !found {
		return domain.Value{}, false, nil
	}
	if v.Kind != kind {
		return domain.Value{}, false, fmt.Errorf("%s/%s is %s, not %s: %w", s.namespace, key, v.Kind, kind, domain.ErrWrongValueKind)
	}
	return v, true, nil
}

func (s *Store) put(key string, v domain.Value) error {
	if err := s.values.Put(s.namespace, key, v); err != nil {
		return fmt.Errorf("put %s/%s: %w", s.namespace, key, err)
	}
	return nil
}

// normalizeSet sorts and deduplicates set members.
func normalizeSet(values []string) []string {
	out := slices.Clone(values)
	slices.Sort(out)
	return slices.Compact(out)
}

// Ensure the types implement the ports.
var (
	_ domain.KVProvider = (*Provider)(nil)
	_ domain.KVStore    = (*Store)(nil)
)
