package fakes

import (
	"sync"

	"github.com/echolane/voice-utils/keychain"
)

// FakeStore records every call and lets tests inject an error per method.
// Injected errors are surfaced verbatim; successful calls operate on an
// in-memory map so round-trips behave like a real store.
type FakeStore struct {
	SetErr       error
	SetCallCount int
	SetNames     []string
	SetValues    []string

	GetErr       error
	GetCallCount int
	GetNames     []string

	DeleteErr       error
	DeleteCallCount int
	DeleteNames     []string

	HasErr       error
	HasCallCount int
	HasNames     []string

	credentials map[string]string
	mutex       sync.Mutex
}

var _ keychain.Store = &FakeStore{}

func NewFakeStore() *FakeStore {
	return &FakeStore{credentials: map[string]string{}}
}

func (s *FakeStore) Set(name, value string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.SetCallCount++
	s.SetNames = append(s.SetNames, name)
	s.SetValues = append(s.SetValues, value)

	if s.SetErr != nil {
		return s.SetErr
	}

	if s.credentials == nil {
		s.credentials = map[string]string{}
	}
	s.credentials[name] = value
	return nil
}

func (s *FakeStore) Get(name string) (string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.GetCallCount++
	s.GetNames = append(s.GetNames, name)

	if s.GetErr != nil {
		return "", s.GetErr
	}

	value, found := s.credentials[name]
	if !found {
		return "", keychain.ErrNotFound
	}

	return value, nil
}

func (s *FakeStore) Delete(name string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.DeleteCallCount++
	s.DeleteNames = append(s.DeleteNames, name)

	if s.DeleteErr != nil {
		return s.DeleteErr
	}

	delete(s.credentials, name)
	return nil
}

func (s *FakeStore) Has(name string) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.HasCallCount++
	s.HasNames = append(s.HasNames, name)

	if s.HasErr != nil {
		return false, s.HasErr
	}

	_, found := s.credentials[name]
	return found, nil
}
