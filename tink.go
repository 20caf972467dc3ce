// This file defines the key-bound FPE interface for Tink integration.
// For the Tink key management itself, see the tinkffx package.

package ffx

import "math/big"

// IntegerFPE is a Tink-compatible interface for format-preserving encryption
// over an integer message space. It follows Tink's primitive pattern,
// similar to tink.DeterministicAEAD: the key is bound at construction time
// and the tweak is supplied per call.
// IntegerFPE is deterministic: same plaintext + tweak + key = same ciphertext.
type IntegerFPE interface {
	// Encrypt enciphers plaintext into another number of the message space.
	Encrypt(plaintext *big.Int, tweak []byte) (*big.Int, error)

	// Decrypt is the inverse of Encrypt for the same tweak.
	Decrypt(ciphertext *big.Int, tweak []byte) (*big.Int, error)
}
