// Package keystore is the credential boundary: it stores and retrieves the
// API key from the OS keychain and enforces the key-length contract the
// application loop depends on.
package keystore

import (
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/odvcencio/monika/pkg/app"
	"github.com/odvcencio/monika/pkg/errors"
)

// Service is the keychain service namespace for monika credentials.
const Service = "monika-cli"

// KeyName is the keychain entry name for the API key.
const KeyName = "api_key"

// APIKeyLen is the required byte length of a stored API key. The length is
// the application core's contract; this is a convenience alias.
const APIKeyLen = app.APIKeyLen

// Store reads and writes named secrets.
// Implementations: Keychain (OS keychain), Memory (tests).
type Store interface {
	Set(service, user, value string) error
	Get(service, user string) (string, error)
}

// Keychain is the OS keychain implementation of Store.
type Keychain struct{}

// Set writes a secret to the OS keychain.
func (Keychain) Set(service, user, value string) error {
	return keyring.Set(service, user, value)
}

// Get reads a secret from the OS keychain.
func (Keychain) Get(service, user string) (string, error) {
	return keyring.Get(service, user)
}

// ValidateKey checks the API key length contract. A wrong-sized key is a
// configuration error reported to the caller, never stored or run with.
func ValidateKey(key string) *errors.Error {
	if len(key) != APIKeyLen {
		return errors.New(errors.ErrCodeConfigInvalid,
			fmt.Sprintf("API key is the wrong length: expected %d bytes, found %d bytes",
				APIKeyLen, len(key)))
	}
	return nil
}

// StoreAPIKey validates and stores the API key under the monika namespace.
func StoreAPIKey(s Store, key string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	if err := s.Set(Service, KeyName, key); err != nil {
		return errors.Wrap(err, errors.ErrCodeKeychainWrite, "failed to store API key")
	}
	return nil
}

// LoadAPIKey retrieves the stored API key and returns it as a fixed-size
// byte array after validating its length.
func LoadAPIKey(s Store) ([APIKeyLen]byte, error) {
	var key [APIKeyLen]byte

	value, err := s.Get(Service, KeyName)
	if err != nil {
		return key, errors.Wrap(err, errors.ErrCodeKeychainRead, "no API key found").
			WithRemediation("run `monika login <API_KEY>` to store an API key")
	}
	if verr := ValidateKey(value); verr != nil {
		return key, verr
	}

	copy(key[:], value)
	return key, nil
}
