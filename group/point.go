package group

import (
	"crypto/sha256"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Generators returns the curve's canonical G1 and G2 base points in affine
// form.
func Generators() (g1 bls12381.G1Affine, g2 bls12381.G2Affine) {
	_, _, g1, g2 = bls12381.Generators()
	return g1, g2
}

// ScalarMulG1 returns p^s (additively, s*p) in affine form.
func ScalarMulG1(p bls12381.G1Affine, s *big.Int) bls12381.G1Affine {
	var jac bls12381.G1Jac
	jac.FromAffine(&p)
	jac.ScalarMultiplication(&jac, s)
	var out bls12381.G1Affine
	out.FromJacobian(&jac)
	return out
}

// ScalarMulG2 returns p^s in affine form.
func ScalarMulG2(p bls12381.G2Affine, s *big.Int) bls12381.G2Affine {
	var jac bls12381.G2Jac
	jac.FromAffine(&p)
	jac.ScalarMultiplication(&jac, s)
	var out bls12381.G2Affine
	out.FromJacobian(&jac)
	return out
}

// AddG1 returns a*b (additively, a+b) in affine form.
func AddG1(a, b bls12381.G1Affine) bls12381.G1Affine {
	var jac bls12381.G1Jac
	jac.FromAffine(&a)
	var bJac bls12381.G1Jac
	bJac.FromAffine(&b)
	jac.AddAssign(&bJac)
	var out bls12381.G1Affine
	out.FromJacobian(&jac)
	return out
}

// AddG2 returns a*b in affine form.
func AddG2(a, b bls12381.G2Affine) bls12381.G2Affine {
	var jac bls12381.G2Jac
	jac.FromAffine(&a)
	var bJac bls12381.G2Jac
	bJac.FromAffine(&b)
	jac.AddAssign(&bJac)
	var out bls12381.G2Affine
	out.FromJacobian(&jac)
	return out
}

// EqualG1 reports whether two G1 affine points represent the same element.
func EqualG1(a, b bls12381.G1Affine) bool { return a.Equal(&b) }

// EqualG2 reports whether two G2 affine points represent the same element.
func EqualG2(a, b bls12381.G2Affine) bool { return a.Equal(&b) }

// CommitG1 computes the Pedersen commitment g^x h^o in G1.
func CommitG1(g, h bls12381.G1Affine, x, o *big.Int) bls12381.G1Affine {
	gx := ScalarMulG1(g, x)
	ho := ScalarMulG1(h, o)
	return AddG1(gx, ho)
}

// MultiScalarMulG1 computes the sum of points[i]^scalars[i] sequentially.
// The operand counts on the engine's hot paths are bounded by the message
// count of a CL signature (typically single digits), too small for a
// windowed multi-exponentiation to pay for its own setup.
func MultiScalarMulG1(points []bls12381.G1Affine, scalars []*big.Int) bls12381.G1Affine {
	var acc bls12381.G1Jac
	for i, p := range points {
		var term bls12381.G1Jac
		term.FromAffine(&p)
		term.ScalarMultiplication(&term, scalars[i])
		acc.AddAssign(&term)
	}
	var out bls12381.G1Affine
	out.FromJacobian(&acc)
	return out
}

// DeriveG2Generators deterministically derives count independent G2
// generator points the same way DeriveG1Generators does, for callers that
// need nothing-up-my-sleeve points in G2 (e.g. a CL signature scheme's
// public-key base).
func DeriveG2Generators(seed string, count int) []bls12381.G2Affine {
	_, base := Generators()
	out := make([]bls12381.G2Affine, count)
	for i := 0; i < count; i++ {
		h := sha256.New()
		h.Write([]byte(seed))
		h.Write([]byte{byte(i >> 24), byte(i >> 16), byte(i >> 8), byte(i)})
		digest := h.Sum(nil)
		s := new(big.Int).SetBytes(digest)
		s.Mod(s, Order)
		out[i] = ScalarMulG2(base, s)
	}
	return out
}

// DeriveG1Generators deterministically derives count independent G1
// generator points from a domain-separated seed, by hashing an incrementing
// counter into a scalar and multiplying the canonical base point. This is
// the "nothing up my sleeve" construction: no discrete log relation between
// the resulting points is known to anyone.
func DeriveG1Generators(seed string, count int) []bls12381.G1Affine {
	base, _ := Generators()
	out := make([]bls12381.G1Affine, count)
	for i := 0; i < count; i++ {
		h := sha256.New()
		h.Write([]byte(seed))
		h.Write([]byte{byte(i >> 24), byte(i >> 16), byte(i >> 8), byte(i)})
		digest := h.Sum(nil)
		s := new(big.Int).SetBytes(digest)
		s.Mod(s, Order)
		out[i] = ScalarMulG1(base, s)
	}
	return out
}
