package core

// Prefs is the flat key/value persistence contract used for the wallet,
// lifetime statistics and upgrade levels.
// Writes may be buffered until Flush.
type Prefs interface {
	GetInt(key string, def int) int
	PutInt(key string, value int)
	Contains(key string) bool
	Flush() error
}

// MemPrefs is an in-memory Prefs used when no database is available and in tests.
type MemPrefs struct {
	values  map[string]int
	Flushes int // Number of Flush calls
	Writes  int // Number of PutInt calls
}

// NewMemPrefs creates an empty in-memory store.
func NewMemPrefs() *MemPrefs {
	return &MemPrefs{values: make(map[string]int)}
}

// GetInt returns the stored value or def when the key is absent.
func (m *MemPrefs) GetInt(key string, def int) int {
	if v, ok := m.values[key]; ok {
		return v
	}
	return def
}

// PutInt stores a value.
func (m *MemPrefs) PutInt(key string, value int) {
	if m.values == nil {
		m.values = make(map[string]int)
	}
	m.values[key] = value
	m.Writes++
}

// Contains reports whether key has a stored value.
func (m *MemPrefs) Contains(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Flush is a no-op that counts calls.
func (m *MemPrefs) Flush() error {
	m.Flushes++
	return nil
}
