// Package keychain defines the credential-store contract an application
// depends on for API keys and tokens, independent of which backend (OS
// keychain, environment, in-memory) satisfies it.
package keychain

import "errors"

// ErrNotFound is returned by Get for names that have never been set or have
// been deleted.
var ErrNotFound = errors.New("keychain: credential not found")

type Store interface {
	Set(name, value string) error
	Get(name string) (string, error)
	Delete(name string) error
	Has(name string) (bool, error)
}
