package group

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Pair computes the bilinear pairing <a, b> : G1 x G2 -> GT.
func Pair(a bls12381.G1Affine, b bls12381.G2Affine) (bls12381.GT, error) {
	return bls12381.Pair([]bls12381.G1Affine{a}, []bls12381.G2Affine{b})
}

// GTEqual reports whether two GT elements are equal.
func GTEqual(a, b bls12381.GT) bool {
	return a.Equal(&b)
}

// GTMul returns a*b in GT.
func GTMul(a, b bls12381.GT) bls12381.GT {
	var out bls12381.GT
	out.Mul(&a, &b)
	return out
}

// GTExp returns a^s in GT.
func GTExp(a bls12381.GT, s *big.Int) bls12381.GT {
	var out bls12381.GT
	out.Exp(a, s)
	return out
}

// GTProductOfExps returns the product Π bases[i]^exps[i] in GT.
func GTProductOfExps(bases []bls12381.GT, exps []*big.Int) bls12381.GT {
	var acc bls12381.GT
	acc.SetOne()
	for i, b := range bases {
		acc = GTMul(acc, GTExp(b, exps[i]))
	}
	return acc
}

// FixedG2Pairer caches a fixed G2 point used as one operand across many
// pairing evaluations, mirroring the original implementation's
// pairing-precomputation helper (pairing_pp) for a frequently reused point
// such as a CL public key's X component. gnark-crypto does not expose a
// separable Miller-loop precomputation for a single fixed point on this
// curve, so the saving here is purely structural: call sites name the
// reused point once instead of threading it through every call.
type FixedG2Pairer struct {
	fixed bls12381.G2Affine
}

// NewFixedG2Pairer returns a pairer bound to fixed.
func NewFixedG2Pairer(fixed bls12381.G2Affine) *FixedG2Pairer {
	return &FixedG2Pairer{fixed: fixed}
}

// Pair computes <a, fixed>.
func (p *FixedG2Pairer) Pair(a bls12381.G1Affine) (bls12381.GT, error) {
	return Pair(a, p.fixed)
}
