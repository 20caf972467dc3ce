package ffx

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/vdparikh/ffx/subtle"
)

// ErrIllegalArgument is wrapped by every error caused by a caller breaking
// the API contract: nil or negative inputs, missing key material, oversize
// tweaks, or a message space outside the supported 8..128 bit range.
// Match with errors.Is.
var ErrIllegalArgument = errors.New("illegal argument")

// ErrIterationLimit is returned when the cycle-walking loop exceeds its
// safety cap. With a correct AES primitive the probability of hitting the
// cap is negligible (each extra walk halves the chance of another one).
var ErrIterationLimit = subtle.ErrIterationLimit

// OutsideMessageSpaceError is returned when a value handed to Rank, Encrypt
// or Decrypt is not an element of the message space, or when an Unrank
// position is not in [0, order).
type OutsideMessageSpaceError struct {
	// Value is the offending value.
	Value *big.Int
}

func (e *OutsideMessageSpaceError) Error() string {
	return fmt.Sprintf("value %v is outside the message space", e.Value)
}
