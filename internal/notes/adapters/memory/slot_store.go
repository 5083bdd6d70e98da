// Package memory keeps storage slots in process memory.
package memory

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("memory slot store is closed")

// SlotStore map-backed implementation of storage.SlotStore.
type SlotStore struct {
	mu     sync.RWMutex
	data   map[string]string
	closed bool
}

// NewSlotStore creates an empty store.
func NewSlotStore() *SlotStore {
	return &SlotStore{data: make(map[string]string)}
}

func (s *SlotStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return "", false, ErrClosed
	}
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *SlotStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.data[key] = value
	return nil
}

func (s *SlotStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
