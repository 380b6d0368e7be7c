package db

// MemorySlot keeps slots in a map for the lifetime of the process
type MemorySlot struct {
	values map[string][]byte

	// FailPut, when set, is returned by every Put
	FailPut error
}

// NewMemorySlot creates an empty in-memory slot store
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{values: make(map[string][]byte)}
}

func (s *MemorySlot) Get(key string) ([]byte, error) {
	v, ok := s.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *MemorySlot) Put(key string, value []byte) error {
	if s.FailPut != nil {
		return s.FailPut
	}
	s.values[key] = append([]byte(nil), value...)
	return nil
}

func (s *MemorySlot) Close() error {
	return nil
}
