// Package cache provides a read cache in front of the state store.
package cache

import (
	"container/list"
	"context"
	"errors"
	"sync"

	"github.com/bnema/cardboard/internal/application/port"
)

// DefaultCapacity fits every card, metric and canvas key of a typical
// dashboard.
const DefaultCapacity = 256

type entry struct {
	key string
	// value is nil for keys known to be absent.
	value []byte
}

// KVStore is a write-through LRU cache over another port.KeyValueStore.
// Absent keys are cached too, so restoring many cards with no saved state
// does not hit the backend twice. It is safe for concurrent use.
type KVStore struct {
	backend  port.KeyValueStore
	capacity int

	mu    sync.Mutex
	items map[string]*list.Element
	order *list.List // front is the most recent
}

// Compile-time interface check.
var _ port.KeyValueStore = (*KVStore)(nil)

// NewKVStore wraps backend. A capacity of zero or less uses DefaultCapacity.
func NewKVStore(backend port.KeyValueStore, capacity int) *KVStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &KVStore{
		backend:  backend,
		capacity: capacity,
		items:    make(map[string]*list.Element),
		order:    list.New(),
	}
}

func (s *KVStore) lookup(key string) (value []byte, hit bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	elem, ok := s.items[key]
	if !ok {
		return nil, false
	}
	s.order.MoveToFront(elem)
	return elem.Value.(*entry).value, true
}

func (s *KVStore) remember(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.items[key]; ok {
		s.order.MoveToFront(elem)
		elem.Value.(*entry).value = value
		return
	}
	if s.order.Len() >= s.capacity {
		if oldest := s.order.Back(); oldest != nil {
			s.order.Remove(oldest)
			delete(s.items, oldest.Value.(*entry).key)
		}
	}
	s.items[key] = s.order.PushFront(&entry{key: key, value: value})
}

func (s *KVStore) forget(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if elem, ok := s.items[key]; ok {
		s.order.Remove(elem)
		delete(s.items, key)
	}
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if value, hit := s.lookup(key); hit {
		if value == nil {
			return nil, port.ErrKeyNotFound
		}
		return clone(value), nil
	}

	value, err := s.backend.Get(ctx, key)
	switch {
	case errors.Is(err, port.ErrKeyNotFound):
		s.remember(key, nil)
		return nil, err
	case err != nil:
		return nil, err
	}
	s.remember(key, clone(value))
	return value, nil
}

func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.backend.Set(ctx, key, value); err != nil {
		s.forget(key)
		return err
	}
	s.remember(key, clone(value))
	return nil
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	if err := s.backend.Delete(ctx, key); err != nil {
		s.forget(key)
		return err
	}
	s.remember(key, nil)
	return nil
}

// Keys always asks the backend.
func (s *KVStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	return s.backend.Keys(ctx, prefix)
}

func (s *KVStore) Clear(ctx context.Context) error {
	err := s.backend.Clear(ctx)

	s.mu.Lock()
	s.items = make(map[string]*list.Element)
	s.order.Init()
	s.mu.Unlock()

	return err
}

// Len returns the number of cached keys, absent ones included.
func (s *KVStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.Len()
}

func clone(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
