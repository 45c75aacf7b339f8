package keychain

import "sync"

type inMemoryStore struct {
	credentials map[string]string
	mutex       sync.RWMutex
}

// NewInMemoryStore keeps credentials in process memory. Nothing is persisted;
// contents live exactly as long as the store does.
func NewInMemoryStore() Store {
	return &inMemoryStore{
		credentials: map[string]string{},
	}
}

func (s *inMemoryStore) Set(name, value string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.credentials[name] = value
	return nil
}

func (s *inMemoryStore) Get(name string) (string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	value, found := s.credentials[name]
	if !found {
		return "", ErrNotFound
	}

	return value, nil
}

func (s *inMemoryStore) Delete(name string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.credentials, name)
	return nil
}

func (s *inMemoryStore) Has(name string) (bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	_, found := s.credentials[name]
	return found, nil
}
