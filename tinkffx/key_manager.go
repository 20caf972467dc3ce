// Package tinkffx provides Tink integration for the FFX integer cipher.
// This file contains the KeyManager implementation that registers FFX with
// Tink's registry.
package tinkffx

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/google/tink/go/core/registry"
	"github.com/google/tink/go/insecurecleartextkeyset"
	"github.com/google/tink/go/keyset"
	"github.com/google/tink/go/proto/tink_go_proto"
	"github.com/vdparikh/ffx"
	"github.com/vdparikh/ffx/subtle"
	"google.golang.org/protobuf/proto"
)

const (
	// FFXKeyTypeURL is the type URL for FFX keys in Tink's registry.
	FFXKeyTypeURL = "type.googleapis.com/google.crypto.tink.FfxFpeKey"
)

// KeyManager implements registry.KeyManager for FFX keys.
// This allows FFX to be registered with Tink's registry and used with
// keyset handles. Key material is raw 16-byte AES-128 keys, the size the
// FFX core consumes.
type KeyManager struct {
	typeURL string
}

// NewKeyManager creates a new FFX key manager.
func NewKeyManager() *KeyManager {
	return &KeyManager{
		typeURL: FFXKeyTypeURL,
	}
}

// Primitive creates an FFX key primitive from the given serialized key.
// The key value is the raw AES key material.
func (km *KeyManager) Primitive(serializedKey []byte) (interface{}, error) {
	if len(serializedKey) != subtle.KeySize {
		return nil, fmt.Errorf("invalid key size: %d bytes (must be %d)", len(serializedKey), subtle.KeySize)
	}
	// The message space is not part of the key, so the primitive is the
	// key handle itself. The factory binds it to a cipher.
	return ffx.NewKey(serializedKey), nil
}

// DoesSupport returns true if this KeyManager supports the given key type URL.
func (km *KeyManager) DoesSupport(typeURL string) bool {
	return typeURL == km.typeURL
}

// TypeURL returns the type URL of the keys managed by this KeyManager.
func (km *KeyManager) TypeURL() string {
	return km.typeURL
}

// NewKey generates a new key according to the given key template.
// FFX keys are raw bytes without a protobuf wrapper; use NewKeyData.
func (km *KeyManager) NewKey(serializedKeyTemplate []byte) (proto.Message, error) {
	return nil, fmt.Errorf("NewKey is not supported for raw FFX keys - use NewKeyData instead")
}

// NewKeyData creates a new KeyData with fresh random key material.
func (km *KeyManager) NewKeyData(serializedKeyTemplate []byte) (*tink_go_proto.KeyData, error) {
	keySize := subtle.KeySize
	if len(serializedKeyTemplate) > 0 {
		// Template value contains the key size as a single byte.
		keySize = int(serializedKeyTemplate[0])
		if keySize != subtle.KeySize {
			return nil, fmt.Errorf("invalid key size in template: %d bytes (must be %d)", keySize, subtle.KeySize)
		}
	}

	key := make([]byte, keySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate random key: %w", err)
	}

	return &tink_go_proto.KeyData{
		TypeUrl:         km.typeURL,
		Value:           key,
		KeyMaterialType: tink_go_proto.KeyData_SYMMETRIC,
	}, nil
}

// Verify that KeyManager implements registry.KeyManager
var _ registry.KeyManager = (*KeyManager)(nil)

// KeyTemplate creates a key template for FFX keys. This allows users to
// generate keys with a single line:
//
//	handle, err := keyset.NewHandle(tinkffx.KeyTemplate())
//
// The template generates AES-128 keys (16 bytes), the size the FFX
// construction is defined for.
func KeyTemplate() *tink_go_proto.KeyTemplate {
	return &tink_go_proto.KeyTemplate{
		TypeUrl:          FFXKeyTypeURL,
		Value:            []byte{subtle.KeySize},
		OutputPrefixType: tink_go_proto.OutputPrefixType_RAW,
	}
}

// NewKeysetHandleFromKey creates a keyset handle from a raw key (e.g., from
// an HSM). This is useful when you have a key from a custom HSM or key
// management system that isn't a standard Tink KMS client.
//
// The key must be 16 bytes (AES-128).
//
// Example:
//
//	hsmKey := []byte{...} // 16-byte key from your HSM
//	handle, err := tinkffx.NewKeysetHandleFromKey(hsmKey)
//	if err != nil {
//		log.Fatal(err)
//	}
//	primitive, err := tinkffx.New(handle, messageSpace)
//
// Note: This creates an unencrypted keyset. In production, consider
// encrypting the keyset before storing it using keyset.Write() with an AEAD.
func NewKeysetHandleFromKey(key []byte) (*keyset.Handle, error) {
	if len(key) != subtle.KeySize {
		return nil, fmt.Errorf("invalid key size: %d bytes (must be %d)", len(key), subtle.KeySize)
	}

	// Generate a unique key ID
	keyIDBytes := make([]byte, 4)
	if _, err := rand.Read(keyIDBytes); err != nil {
		return nil, fmt.Errorf("failed to generate key ID: %w", err)
	}
	keyID := binary.BigEndian.Uint32(keyIDBytes)

	keyData := &tink_go_proto.KeyData{
		TypeUrl:         FFXKeyTypeURL,
		Value:           key,
		KeyMaterialType: tink_go_proto.KeyData_SYMMETRIC,
	}

	keysetKey := &tink_go_proto.Keyset_Key{
		KeyData:          keyData,
		KeyId:            keyID,
		Status:           tink_go_proto.KeyStatusType_ENABLED,
		OutputPrefixType: tink_go_proto.OutputPrefixType_RAW,
	}

	ks := &tink_go_proto.Keyset{
		PrimaryKeyId: keyID,
		Key:          []*tink_go_proto.Keyset_Key{keysetKey},
	}

	buf := &keyset.MemReaderWriter{Keyset: ks}
	return insecurecleartextkeyset.Read(buf)
}
