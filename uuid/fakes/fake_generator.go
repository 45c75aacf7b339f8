package fakes

import "sync"

// FakeGenerator is safe for concurrent use; the call count and queue are
// guarded by a mutex.
type FakeGenerator struct {
	GeneratedUUID     string
	GeneratedUUIDs    []string
	GenerateError     error
	GenerateCallCount int

	mutex sync.Mutex
}

func NewFakeGenerator() *FakeGenerator {
	return &FakeGenerator{}
}

func (gen *FakeGenerator) Generate() (string, error) {
	gen.mutex.Lock()
	defer gen.mutex.Unlock()

	gen.GenerateCallCount++

	uuid := gen.GeneratedUUID

	if len(gen.GeneratedUUIDs) > 0 {
		uuid = gen.GeneratedUUIDs[0]
		gen.GeneratedUUIDs = gen.GeneratedUUIDs[1:]
	}

	return uuid, gen.GenerateError
}
