package store

import (
	"errors"
	"maps"
	"slices"
)

// ErrUnavailable indicates that the storage backend cannot be used at all,
// e.g. the database could not be opened.
var ErrUnavailable = errors.New("storage unavailable")

// Backend is a synchronous string-keyed key-value store.
type Backend interface {
	// Get returns the value for key. ok is false if the key is absent.
	Get(key string) (value string, ok bool, err error)

	// Set stores value under key.
	Set(key, value string) error

	// Delete removes key.
	Delete(key string) error
}

// Lister is implemented by backends that can enumerate their keys.
type Lister interface {
	// Keys returns every stored key in lexical order.
	Keys() ([]string, error)
}

// Memory is a map-backed Backend. The zero value is not usable; call NewMemory.
type Memory struct {
	data map[string]string
}

var (
	_ Backend = (*Memory)(nil)
	_ Lister  = (*Memory)(nil)
)

// NewMemory returns an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.data[key] = value
	return nil
}

func (m *Memory) Delete(key string) error {
	delete(m.data, key)
	return nil
}

// Keys returns every stored key in lexical order.
func (m *Memory) Keys() ([]string, error) {
	return slices.Sorted(maps.Keys(m.data)), nil
}

// Unavailable is a Backend whose every call fails. It stands in for storage
// that is disabled or could not be opened.
type Unavailable struct {
	Err error
}

var _ Backend = Unavailable{}

func (u Unavailable) Get(string) (string, bool, error) { return "", false, u.err() }
func (u Unavailable) Set(string, string) error         { return u.err() }
func (u Unavailable) Delete(string) error              { return u.err() }

func (u Unavailable) err() error {
	if u.Err != nil {
		return errors.Join(ErrUnavailable, u.Err)
	}
	return ErrUnavailable
}
