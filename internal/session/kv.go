package session

import (
	"context"
	"sync"
)

// KV is the key-value capability the session store is built on. Get returns
// an empty string for absent keys. SetMany must apply all entries atomically.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	SetMany(ctx context.Context, entries map[string]string) error
}

// MemoryKV is an in-process KV guarded by a single mutex.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryKV returns an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data[key], nil
}

func (m *MemoryKV) SetMany(_ context.Context, entries map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range entries {
		m.data[k] = v
	}
	return nil
}

// Snapshot copies the current contents.
func (m *MemoryKV) Snapshot() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]string, len(m.data))
	for k, v := range m.data {
		out[k] = v
	}
	return out
}

type namespacedKV struct {
	kv     KV
	prefix string
}

// Namespace scopes every key of kv under ns, as "<ns>:<key>".
func Namespace(kv KV, ns string) KV {
	return &namespacedKV{kv: kv, prefix: ns + ":"}
}

func (n *namespacedKV) Get(ctx context.Context, key string) (string, error) {
	return n.kv.Get(ctx, n.prefix+key)
}

func (n *namespacedKV) SetMany(ctx context.Context, entries map[string]string) error {
	scoped := make(map[string]string, len(entries))
	for k, v := range entries {
		scoped[n.prefix+k] = v
	}
	return n.kv.SetMany(ctx, scoped)
}
