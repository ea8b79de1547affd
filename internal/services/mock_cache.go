package services

import (
	"context"
	"sync"
	"time"
)

// MockCache is an in-memory Cache for tests. Behaviour can be overridden per
// method with the *Func fields; calls are recorded either way.
type MockCache struct {
	PingFunc func(ctx context.Context) error
	SetFunc  func(ctx context.Context, key, value string, expiration time.Duration) error
	GetFunc  func(ctx context.Context, key string) (string, error)

	mu    sync.Mutex
	store map[string]string

	// Track calls for testing
	PingCalls  int
	SetCalls   []SetCall
	GetCalls   []string
	CloseCalls int
}

type SetCall struct {
	Key        string
	Value      string
	Expiration time.Duration
}

var _ Cache = (*MockCache)(nil)

// NewMockCache creates a new mock cache
func NewMockCache() *MockCache {
	return &MockCache{
		store: make(map[string]string),
	}
}

func (m *MockCache) Ping(ctx context.Context) error {
	m.mu.Lock()
	m.PingCalls++
	m.mu.Unlock()

	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

func (m *MockCache) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	m.mu.Lock()
	m.SetCalls = append(m.SetCalls, SetCall{Key: key, Value: value, Expiration: expiration})
	m.mu.Unlock()

	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, expiration)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.store[key] = value
	return nil
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	m.GetCalls = append(m.GetCalls, key)
	m.mu.Unlock()

	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store[key], nil
}

func (m *MockCache) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CloseCalls++
	return nil
}

// Len returns the number of stored keys.
func (m *MockCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.store)
}
