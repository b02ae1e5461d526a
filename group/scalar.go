package group

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// Order is the order of the BLS12-381 scalar field, the modulus every
// scalar in this library is reduced against.
var Order, _ = new(big.Int).SetString(
	"52435875175126190479447740508185965837690552500527637822603658699938581184513", 10)

// RandomScalar draws a uniform scalar in [0, Order) from rng, defaulting to
// crypto/rand.Reader when rng is nil. It reads extra bytes beyond the
// field's bit length and reduces modulo Order, so the residual bias is
// negligible without needing rejection sampling.
func RandomScalar(rng io.Reader) (*big.Int, error) {
	if rng == nil {
		rng = rand.Reader
	}
	byteLen := (Order.BitLen() + 64 + 7) / 8
	buf := make([]byte, byteLen)
	if _, err := io.ReadFull(rng, buf); err != nil {
		return nil, fmt.Errorf("group: read random scalar: %w", err)
	}
	n := new(big.Int).SetBytes(buf)
	n.Mod(n, Order)
	return n, nil
}

// Reduce returns x mod Order, always non-negative.
func Reduce(x *big.Int) *big.Int {
	r := new(big.Int).Mod(x, Order)
	return r
}

// Negate returns -x mod Order.
func Negate(x *big.Int) *big.Int {
	return Reduce(new(big.Int).Neg(x))
}
