package ffx

import (
	"fmt"
	"math/big"
)

// MessageSpace defines a finite domain together with a pair of bijections
// between the domain and the positions {0, 1, ..., order-1}.
//
// In this library it is used in two ways: an integer FPE cipher enciphers on
// a message space of the form {0,...,N-1} for some arbitrary N, and the
// rank-then-encipher approach uses Rank/Unrank to carry elements of a richer
// domain into that integer form and back. The message spaces can also be
// used independently of FPE to perform rank/unrank operations.
//
// Ranks start counting at 0. Implementations are immutable; the domain is
// fixed by the constructor and cannot change after.
type MessageSpace[M any] interface {
	// Order returns the number of elements in the domain.
	Order() *big.Int

	// MaxValue returns the order of the message space minus one.
	MaxValue() *big.Int

	// Rank returns for every element of the domain its position n with
	// 0 <= n < Order(). It returns an *OutsideMessageSpaceError when the
	// value is not an element of the domain.
	Rank(value M) (*big.Int, error)

	// Unrank is the inverse of Rank: it returns the element at the given
	// position, or an *OutsideMessageSpaceError when the position is not
	// in [0, Order()).
	Unrank(rank *big.Int) (M, error)
}

// IntegerRangeMessageSpace is a message space over the contiguous integers
// [min, max]. The rank of a value v is v-min.
type IntegerRangeMessageSpace struct {
	min   *big.Int
	max   *big.Int
	order *big.Int
}

var _ MessageSpace[*big.Int] = (*IntegerRangeMessageSpace)(nil)

// NewIntegerRangeMessageSpace constructs a message space over [min, max].
// min must not be greater than max.
func NewIntegerRangeMessageSpace(min, max *big.Int) (*IntegerRangeMessageSpace, error) {
	if min == nil || max == nil {
		return nil, fmt.Errorf("%w: range bounds must not be nil", ErrIllegalArgument)
	}
	if min.Cmp(max) > 0 {
		return nil, fmt.Errorf("%w: min %v must not be greater than max %v", ErrIllegalArgument, min, max)
	}
	order := new(big.Int).Sub(max, min)
	order.Add(order, bigOne)
	return &IntegerRangeMessageSpace{
		min:   new(big.Int).Set(min),
		max:   new(big.Int).Set(max),
		order: order,
	}, nil
}

// Order returns the number of elements in the range, max-min+1.
func (ms *IntegerRangeMessageSpace) Order() *big.Int {
	return new(big.Int).Set(ms.order)
}

// MaxValue returns the order of the message space minus one.
func (ms *IntegerRangeMessageSpace) MaxValue() *big.Int {
	return new(big.Int).Sub(ms.order, bigOne)
}

// Min returns the lower bound of the range.
func (ms *IntegerRangeMessageSpace) Min() *big.Int {
	return new(big.Int).Set(ms.min)
}

// Max returns the upper bound of the range.
func (ms *IntegerRangeMessageSpace) Max() *big.Int {
	return new(big.Int).Set(ms.max)
}

// Rank returns value-min for every value in [min, max].
func (ms *IntegerRangeMessageSpace) Rank(value *big.Int) (*big.Int, error) {
	if value == nil {
		return nil, fmt.Errorf("%w: value must not be nil", ErrIllegalArgument)
	}
	if value.Cmp(ms.min) < 0 || value.Cmp(ms.max) > 0 {
		return nil, &OutsideMessageSpaceError{Value: new(big.Int).Set(value)}
	}
	return new(big.Int).Sub(value, ms.min), nil
}

// Unrank returns min+rank for every rank in [0, order).
func (ms *IntegerRangeMessageSpace) Unrank(rank *big.Int) (*big.Int, error) {
	if rank == nil {
		return nil, fmt.Errorf("%w: rank must not be nil", ErrIllegalArgument)
	}
	if rank.Sign() < 0 || rank.Cmp(ms.order) >= 0 {
		return nil, &OutsideMessageSpaceError{Value: new(big.Int).Set(rank)}
	}
	return new(big.Int).Add(ms.min, rank), nil
}

// IntegerMessageSpace is an IntegerRangeMessageSpace with a fixed minimum at
// 0. Because counting starts at 0 for both rank and value, the rank of an
// element is always the element itself.
//
// Example, a message space with the elements {0,1,...,10}:
//
//	ms, err := ffx.NewIntegerMessageSpace(big.NewInt(10))
//	order := ms.Order()                    // 11
//	rank, err := ms.Rank(big.NewInt(1))    // 1
//	value, err := ms.Unrank(rank)          // 1
type IntegerMessageSpace struct {
	*IntegerRangeMessageSpace
}

// NewIntegerMessageSpace constructs a message space over {0,...,max}.
// max must not be negative.
func NewIntegerMessageSpace(max *big.Int) (*IntegerMessageSpace, error) {
	if max == nil {
		return nil, fmt.Errorf("%w: max must not be nil", ErrIllegalArgument)
	}
	if max.Sign() < 0 {
		return nil, fmt.Errorf("%w: max must not be negative, got %v", ErrIllegalArgument, max)
	}
	inner, err := NewIntegerRangeMessageSpace(new(big.Int), max)
	if err != nil {
		return nil, err
	}
	return &IntegerMessageSpace{IntegerRangeMessageSpace: inner}, nil
}

var bigOne = big.NewInt(1)
