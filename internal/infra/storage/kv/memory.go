package kv

import (
	"context"
	"sync"
)

// MemoryStore key-value хранилище в памяти процесса.
// Используется в демо-режиме (storage.driver = "memory") и в тестах.
// Данные живут только до перезапуска процесса.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore создает пустое in-memory хранилище
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Get читает значение по ключу
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}

	// Копия, чтобы вызывающий не мог изменить содержимое хранилища
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

// Set записывает значение по ключу
func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.data[key] = stored
	return nil
}
