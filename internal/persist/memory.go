package persist

import "sync"

// Memory keeps the payload in process memory
type Memory struct {
	mu    sync.Mutex
	data  []byte
	saves int
}

// NewMemory returns an empty in-memory store
func NewMemory() *Memory {
	return &Memory{}
}

// NewMemoryWith returns an in-memory store that already holds data
func NewMemoryWith(data []byte) *Memory {
	return &Memory{data: append([]byte(nil), data...)}
}

// Load returns a copy of the stored payload
func (m *Memory) Load() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, nil
	}
	return append([]byte(nil), m.data...), nil
}

// Save replaces the stored payload
func (m *Memory) Save(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte(nil), data...)
	m.saves++
	return nil
}

// Saves returns how many times Save was called
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
