// Package tokenstore persists the single opaque bearer credential the
// client holds between runs. The contract is deliberately small: get,
// set, clear one secret string.
package tokenstore

import "sync"

// Store holds one opaque secret string across process restarts.
// Get returns an empty string, not an error, when nothing is stored.
type Store interface {
	Get() (string, error)
	Set(token string) error
	Clear() error
}

// Memory is an in-process Store for tests and ephemeral sessions.
type Memory struct {
	mu    sync.Mutex
	token string
}

func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Get() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *Memory) Set(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
