package memkv

// Store keeps records in memory. Used by tests and --ephemeral runs.
type Store struct {
	data map[string]string
}

func New() *Store {
	return &Store{data: map[string]string{}}
}

func (s *Store) Get(key string) (string, bool, error) {
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *Store) Set(key, value string) error {
	s.data[key] = value
	return nil
}
