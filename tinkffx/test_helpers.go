package tinkffx

import (
	"sync"

	"github.com/google/tink/go/core/registry"
)

var keyManagerOnce sync.Once

// getOrRegisterKeyManager gets the KeyManager, registering it with Tink's
// registry if necessary. Safe to call from multiple test files.
func getOrRegisterKeyManager() (*KeyManager, error) {
	keyManager := NewKeyManager()

	// If the type URL is already supported the KeyManager is registered.
	if _, err := registry.GetKeyManager(FFXKeyTypeURL); err == nil {
		return keyManager, nil
	}

	var regErr error
	keyManagerOnce.Do(func() {
		regErr = registry.RegisterKeyManager(keyManager)
	})
	if regErr != nil {
		return nil, regErr
	}
	return keyManager, nil
}
