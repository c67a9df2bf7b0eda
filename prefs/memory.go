package prefs

// MemoryStore keeps preferences in process memory only. It backs tests and
// stands in for DiskStore when the save directory cannot be opened.
type MemoryStore struct {
	ints   map[Key]int
	floats map[Key]float64
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		ints:   make(map[Key]int),
		floats: make(map[Key]float64),
	}
}

func (s *MemoryStore) Has(key Key) bool {
	if _, ok := s.ints[key]; ok {
		return true
	}
	_, ok := s.floats[key]
	return ok
}

// GetInt returns the stored integer. Float values are truncated, matching
// how the engine preference store reads a float slot as an int.
func (s *MemoryStore) GetInt(key Key) (int, bool) {
	if v, ok := s.ints[key]; ok {
		return v, true
	}
	if v, ok := s.floats[key]; ok {
		return int(v), true
	}
	return 0, false
}

func (s *MemoryStore) GetFloat(key Key) (float64, bool) {
	if v, ok := s.floats[key]; ok {
		return v, true
	}
	if v, ok := s.ints[key]; ok {
		return float64(v), true
	}
	return 0, false
}

func (s *MemoryStore) SetInt(key Key, v int) error {
	delete(s.floats, key)
	s.ints[key] = v
	return nil
}

func (s *MemoryStore) SetFloat(key Key, v float64) error {
	delete(s.ints, key)
	s.floats[key] = v
	return nil
}

// Delete removes a key
func (s *MemoryStore) Delete(key Key) {
	delete(s.ints, key)
	delete(s.floats, key)
}
