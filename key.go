package ffx

import "fmt"

// Key is an opaque, immutable handle over raw key material. The FFX integer
// cipher consumes exactly the first 16 bytes; a Key carrying fewer bytes
// fails at use with an illegal-argument error.
type Key struct {
	material []byte
}

// NewKey wraps the given key material. The bytes are copied, so the caller
// may reuse or zero its slice afterwards.
func NewKey(material []byte) *Key {
	k := &Key{material: make([]byte, len(material))}
	copy(k.material, material)
	return k
}

// Bytes returns the first n bytes of the key material. It returns an error
// wrapping ErrIllegalArgument when the key holds fewer than n bytes.
func (k *Key) Bytes(n int) ([]byte, error) {
	if len(k.material) < n {
		return nil, fmt.Errorf("%w: key holds %d bytes but %d are required", ErrIllegalArgument, len(k.material), n)
	}
	out := make([]byte, n)
	copy(out, k.material[:n])
	return out, nil
}

// Len returns the number of bytes of key material.
func (k *Key) Len() int {
	return len(k.material)
}
