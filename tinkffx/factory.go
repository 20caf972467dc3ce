// Package tinkffx provides Tink integration for the FFX integer cipher.
// This file contains the factory function for creating FPE primitives from
// Tink keyset handles.
package tinkffx

import (
	"fmt"
	"math/big"

	"github.com/google/tink/go/insecurecleartextkeyset"
	"github.com/google/tink/go/keyset"
	"github.com/google/tink/go/proto/tink_go_proto"
	"github.com/vdparikh/ffx"
)

// New creates a key-bound FPE primitive over the given message space from a
// Tink keyset handle. This is the main entry point for users following
// Tink's pattern.
//
// Example:
//
//	handle, err := keyset.NewHandle(tinkffx.KeyTemplate())
//	if err != nil {
//	    return err
//	}
//	ms, err := ffx.NewIntegerMessageSpace(big.NewInt(999999))
//	if err != nil {
//	    return err
//	}
//	primitive, err := tinkffx.New(handle, ms)
//	if err != nil {
//	    return err
//	}
//	ciphertext, err := primitive.Encrypt(big.NewInt(12345), []byte("tweak"))
func New(handle *keyset.Handle, messageSpace *ffx.IntegerMessageSpace) (ffx.IntegerFPE, error) {
	if handle == nil {
		return nil, fmt.Errorf("keyset handle cannot be nil")
	}
	if messageSpace == nil {
		return nil, fmt.Errorf("message space cannot be nil")
	}

	// Extract the primary key from the keyset using Tink's Primitives API
	primitives, err := handle.Primitives()
	if err != nil {
		return nil, fmt.Errorf("failed to get primitives from handle: %w", err)
	}

	primary := primitives.Primary
	if primary == nil {
		return nil, fmt.Errorf("no primary key found in keyset")
	}

	keyID := primary.KeyID
	if keyID == 0 {
		return nil, fmt.Errorf("invalid key ID in primary entry")
	}

	// Extract the keyset using insecurecleartextkeyset (for unencrypted
	// keysets created with insecurecleartextkeyset or keyset.NewHandle).
	ks := insecurecleartextkeyset.KeysetMaterial(handle)

	var keyBytes []byte
	for _, key := range ks.Key {
		if key.KeyId != keyID {
			continue
		}
		keyData := key.KeyData
		if keyData == nil {
			continue
		}

		switch keyData.GetKeyMaterialType() {
		case tink_go_proto.KeyData_SYMMETRIC:
			keyBytes = keyData.Value
		default:
			return nil, fmt.Errorf("unsupported key material type %v - use symmetric keys", keyData.GetKeyMaterialType())
		}
		break
	}

	if keyBytes == nil {
		return nil, fmt.Errorf("key with ID %d not found or unsupported key type", keyID)
	}

	cipher, err := ffx.NewFFXIntegerCipher(messageSpace)
	if err != nil {
		return nil, fmt.Errorf("failed to create FFX cipher: %w", err)
	}

	return &integerFPE{cipher: cipher, key: ffx.NewKey(keyBytes)}, nil
}

// integerFPE implements the ffx.IntegerFPE interface by binding a keyset's
// primary key to an FFXIntegerCipher.
type integerFPE struct {
	cipher *ffx.FFXIntegerCipher
	key    *ffx.Key
}

// Encrypt enciphers plaintext into another number of the message space.
func (p *integerFPE) Encrypt(plaintext *big.Int, tweak []byte) (*big.Int, error) {
	return p.cipher.Encrypt(plaintext, p.key, tweak)
}

// Decrypt deciphers a ciphertext produced by Encrypt with the same tweak.
func (p *integerFPE) Decrypt(ciphertext *big.Int, tweak []byte) (*big.Int, error) {
	return p.cipher.Decrypt(ciphertext, p.key, tweak)
}

// Verify that integerFPE implements ffx.IntegerFPE
var _ ffx.IntegerFPE = (*integerFPE)(nil)
