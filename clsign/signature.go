package clsign

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/dzamkov/zkp/group"
	"github.com/dzamkov/zkp/pool"
)

// Signature is a CL signature over an n-message tuple: (a, b, c,
// A_1..A_{n-1}, B_1..B_{n-1}), all in G1.
type Signature struct {
	A, B, C bls12381.G1Affine
	AK, BK  []bls12381.G1Affine
}

// Sign produces a CL signature over messages under sk, sampling the
// randomizer a as a random multiple of the curve's canonical G1 base point.
// rng defaults to crypto/rand.Reader when nil.
func (s *Scheme) Sign(sk *SecretKey, messages []*big.Int, rng io.Reader) (*Signature, error) {
	if len(messages) != s.N {
		return nil, ErrInvalidMessageCount
	}
	if rng == nil {
		rng = rand.Reader
	}

	r, err := group.RandomScalar(rng)
	if err != nil {
		return nil, fmt.Errorf("clsign: draw randomizer: %w", err)
	}
	g1Base, _ := group.Generators()
	a := group.ScalarMulG1(g1Base, r)

	b := group.ScalarMulG1(a, sk.Y)

	ak := make([]bls12381.G1Affine, s.N-1)
	bk := make([]bls12381.G1Affine, s.N-1)
	for k := range ak {
		ak[k] = group.ScalarMulG1(a, sk.Z[k])
		bk[k] = group.ScalarMulG1(ak[k], sk.Y)
	}

	xy := pool.GetBigInt()
	defer pool.PutBigInt(xy)
	xy.Mul(sk.X, sk.Y)
	xy.Mod(xy, group.Order)

	c0Exp := pool.GetBigInt()
	defer pool.PutBigInt(c0Exp)
	c0Exp.Mul(xy, messages[0])
	c0Exp.Add(c0Exp, sk.X)
	c0Exp.Mod(c0Exp, group.Order)
	c := group.ScalarMulG1(a, c0Exp)

	exp := pool.GetBigInt()
	defer pool.PutBigInt(exp)
	for k := 1; k < s.N; k++ {
		exp.Mul(xy, messages[k])
		exp.Mod(exp, group.Order)
		c = group.AddG1(c, group.ScalarMulG1(ak[k-1], exp))
	}

	return &Signature{A: a, B: b, C: c, AK: ak, BK: bk}, nil
}

// Verify reports whether sig is a valid signature over messages under pk.
// The pairing checks reuse pk.Y, pk.X, and the scheme's own generator as a
// fixed G2 operand across many calls, so each is bound once through a
// group.FixedG2Pairer rather than re-supplied at every call site.
func (s *Scheme) Verify(pk *PublicKey, sig *Signature, messages []*big.Int) (bool, error) {
	if len(messages) != s.N {
		return false, ErrInvalidMessageCount
	}
	if len(sig.AK) != s.N-1 || len(sig.BK) != s.N-1 {
		return false, ErrInvalidMessageCount
	}

	yPairer := group.NewFixedG2Pairer(pk.Y)
	gPairer := group.NewFixedG2Pairer(s.G2Base)
	xPairer := group.NewFixedG2Pairer(pk.X)

	ya, err := yPairer.Pair(sig.A)
	if err != nil {
		return false, fmt.Errorf("clsign: pair(a,Y): %w", err)
	}
	gb, err := gPairer.Pair(sig.B)
	if err != nil {
		return false, fmt.Errorf("clsign: pair(b,g): %w", err)
	}
	if !group.GTEqual(ya, gb) {
		return false, nil
	}

	for k := 0; k < s.N-1; k++ {
		zka, err := group.Pair(sig.A, pk.Z[k])
		if err != nil {
			return false, fmt.Errorf("clsign: pair(a,Z[%d]): %w", k, err)
		}
		gak, err := gPairer.Pair(sig.AK[k])
		if err != nil {
			return false, fmt.Errorf("clsign: pair(A[%d],g): %w", k, err)
		}
		if !group.GTEqual(zka, gak) {
			return false, nil
		}

		yak, err := yPairer.Pair(sig.AK[k])
		if err != nil {
			return false, fmt.Errorf("clsign: pair(A[%d],Y): %w", k, err)
		}
		gbk, err := gPairer.Pair(sig.BK[k])
		if err != nil {
			return false, fmt.Errorf("clsign: pair(B[%d],g): %w", k, err)
		}
		if !group.GTEqual(yak, gbk) {
			return false, nil
		}
	}

	xa, err := xPairer.Pair(sig.A)
	if err != nil {
		return false, fmt.Errorf("clsign: pair(a,X): %w", err)
	}
	xb, err := xPairer.Pair(sig.B)
	if err != nil {
		return false, fmt.Errorf("clsign: pair(b,X): %w", err)
	}
	lhs := group.GTMul(xa, group.GTExp(xb, messages[0]))
	for k := 0; k < s.N-1; k++ {
		xbk, err := xPairer.Pair(sig.BK[k])
		if err != nil {
			return false, fmt.Errorf("clsign: pair(B[%d],X): %w", k, err)
		}
		lhs = group.GTMul(lhs, group.GTExp(xbk, messages[k+1]))
	}
	gc, err := gPairer.Pair(sig.C)
	if err != nil {
		return false, fmt.Errorf("clsign: pair(c,g): %w", err)
	}
	return group.GTEqual(lhs, gc), nil
}

// Blind draws fresh q, p and returns a re-randomized signature: every
// component raised to q, then c additionally raised to p. p is returned so
// the caller (the signature-possession block) can fold it into its
// response; q is consumed here and never reused. Per the engine's RNG
// documentation requirement, rng must be a uniform source not reused
// across proofs — nil defaults to crypto/rand.Reader.
func (s *Scheme) Blind(sig *Signature, rng io.Reader) (blinded *Signature, p *big.Int, err error) {
	if rng == nil {
		rng = rand.Reader
	}
	q, err := group.RandomScalar(rng)
	if err != nil {
		return nil, nil, fmt.Errorf("clsign: draw blinding q: %w", err)
	}
	p, err = group.RandomScalar(rng)
	if err != nil {
		return nil, nil, fmt.Errorf("clsign: draw blinding p: %w", err)
	}

	out := &Signature{
		A:  group.ScalarMulG1(sig.A, q),
		B:  group.ScalarMulG1(sig.B, q),
		AK: make([]bls12381.G1Affine, len(sig.AK)),
		BK: make([]bls12381.G1Affine, len(sig.BK)),
	}
	cq := group.ScalarMulG1(sig.C, q)
	out.C = group.ScalarMulG1(cq, p)
	for k := range sig.AK {
		out.AK[k] = group.ScalarMulG1(sig.AK[k], q)
	}
	for k := range sig.BK {
		out.BK[k] = group.ScalarMulG1(sig.BK[k], q)
	}
	return out, p, nil
}
