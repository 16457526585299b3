package storage

import (
	"errors"
	"math"
	"sync"
)

const defaultCapacity = 100

var (
	// ErrInvalidCapacity indicates the provided capacity violates validation rules.
	ErrInvalidCapacity = errors.New("capacity must be a positive finite number")
)

// Storage provides access to the default bin capacity applied when a packing
// request does not carry its own.
type Storage interface {
	GetCapacity() (float64, error)
	SetCapacity(capacity float64) error
}

// MemoryStorage keeps the default capacity in-memory and guards access with a RWMutex.
type MemoryStorage struct {
	mu       sync.RWMutex
	capacity float64
}

// NewMemoryStorage initialises storage with the built-in default capacity.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{capacity: defaultCapacity}
}

// DefaultCapacity returns the built-in default bin capacity.
func DefaultCapacity() float64 {
	return defaultCapacity
}

// GetCapacity returns the currently configured default capacity.
func (s *MemoryStorage) GetCapacity() (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.capacity, nil
}

// SetCapacity validates and stores the provided default capacity.
func (s *MemoryStorage) SetCapacity(capacity float64) error {
	if !(capacity > 0) || math.IsInf(capacity, 1) {
		return ErrInvalidCapacity
	}

	s.mu.Lock()
	s.capacity = capacity
	s.mu.Unlock()

	return nil
}
