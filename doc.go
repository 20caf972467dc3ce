// Package ffx implements Format-Preserving Encryption (FPE) for integer
// domains using the FFX mode of operation (alternating Feistel over an
// AES-CBC-MAC round function).
//
// Given a message space {0, 1, ..., N-1} for any N representable in up to
// 128 bits, the cipher is a keyed, tweakable bijection on that space:
// encryption maps any number in the range to another number in the same
// range, and decryption inverts the mapping with the same key and tweak.
// Cycle walking confines outputs to non-power-of-two ranges.
//
// Example usage, encrypting 12345 into another number in 0-1000000:
//
//	ms, err := ffx.NewIntegerMessageSpace(big.NewInt(1000000))
//	if err != nil {
//		log.Fatal(err)
//	}
//	cipher, err := ffx.NewFFXIntegerCipher(ms)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	key := ffx.NewKey(keyBytes) // 16 random bytes
//	tweak := []byte("customer.account")
//
//	ciphertext, err := cipher.Encrypt(big.NewInt(12345), key, tweak)
//	// possible result: 503752
//	plaintext, err := cipher.Decrypt(ciphertext, key, tweak)
//	// result: 12345
//
// The key is a random 16-byte value and has to be the same for decrypting a
// value as it was for encrypting it. The tweak is a public value similar to
// an initialization vector in the sense that it diversifies the permutation;
// it can be empty or up to 255 bytes long.
//
// The FFX parameters are fixed as follows:
//   - radix = 2 (number of symbols in alphabet: {0, 1})
//   - feistel method = 2 (alternating feistel)
//   - addition operator = 0 (characterwise addition (xor))
//
// The package includes Tink-compatible key management (see the tinkffx
// package). While Tink doesn't natively support FPE, tinkffx follows Tink's
// design patterns and integrates with Tink's keyset handles.
package ffx
