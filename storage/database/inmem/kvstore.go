package inmemdb

import (
	"context"
	"sync"

	"github.com/Ayushpund/Acharya/core"
)

type kvStore struct {
	table map[string]string
	mutex sync.RWMutex
}

var _ core.KVStore = (*kvStore)(nil)

// NewKVStore returns an empty core.KVStore living in memory.
func NewKVStore() core.KVStore {
	return &kvStore{table: make(map[string]string)}
}

func (s *kvStore) Get(_ context.Context, key string) (string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	value, ok := s.table[key]
	if !ok {
		return "", core.ErrKeyNotFound
	}
	return value, nil
}

func (s *kvStore) Set(_ context.Context, key, value string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.table[key] = value
	return nil
}

func (s *kvStore) Delete(_ context.Context, keys ...string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, k := range keys {
		delete(s.table, k)
	}
	return nil
}

func (s *kvStore) Close() error {
	return nil
}
