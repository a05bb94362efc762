package keystore

import (
	"fmt"
	"sync"
)

// Memory is an in-memory Store used by tests and by environments without a
// usable keychain daemon.
type Memory struct {
	mu      sync.Mutex
	entries map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]string)}
}

// Set stores a secret in memory.
func (m *Memory) Set(service, user, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[service+"/"+user] = value
	return nil
}

// Get retrieves a secret from memory.
func (m *Memory) Get(service, user string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.entries[service+"/"+user]
	if !ok {
		return "", fmt.Errorf("no entry for %s/%s", service, user)
	}
	return value, nil
}
