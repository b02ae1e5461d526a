package zkp

import (
	"math/big"

	"github.com/dzamkov/zkp/group"
	"github.com/dzamkov/zkp/pool"
)

var orderRef = group.Order

// scalarMul returns a*b mod Order. The result is a pool.GetBigInt value the
// caller takes ownership of; response/claim slots copy it with Int.Set
// immediately, so it is never returned to the pool; the garbage collector
// reclaims it like any other allocation.
func scalarMul(a, b *big.Int) *big.Int {
	r := pool.GetBigInt()
	r.Mul(a, b)
	return r.Mod(r, orderRef)
}

// scalarAdd returns a+b mod Order.
func scalarAdd(a, b *big.Int) *big.Int {
	r := pool.GetBigInt()
	r.Add(a, b)
	return r.Mod(r, orderRef)
}

// scalarSub returns a-b mod Order.
func scalarSub(a, b *big.Int) *big.Int {
	r := pool.GetBigInt()
	r.Sub(a, b)
	return r.Mod(r, orderRef)
}
