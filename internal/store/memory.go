package store

import "sync"

// memoryBackend: driver in-memory, dipakai untuk test dan sebagai
// fallback kalau driver durable gagal dibuka.
type memoryBackend struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory membuat Backend in-memory kosong
func NewMemory() Backend {
	return &memoryBackend{data: make(map[string][]byte)}
}

func (m *memoryBackend) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	raw, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	// Copy biar caller tidak bisa mengubah isi map lewat slice yang sama
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}

func (m *memoryBackend) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw := make([]byte, len(value))
	copy(raw, value)
	m.data[key] = raw
	return nil
}

func (m *memoryBackend) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memoryBackend) Close() error { return nil }
