package persist

import "sync"

// Slot is a key/value blob store. Get reports ok=false when the key has never
// been written.
type Slot interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
}

// MemorySlot keeps values in process memory.
type MemorySlot struct {
	mu     sync.Mutex
	values map[string][]byte
	writes int
}

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{values: make(map[string][]byte)}
}

func (m *MemorySlot) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *MemorySlot) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = append([]byte(nil), value...)
	m.writes++
	return nil
}

// Writes counts Set calls.
func (m *MemorySlot) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
