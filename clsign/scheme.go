package clsign

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/dzamkov/zkp/group"
)

// Scheme fixes the parameters of a CL signature instance: the message
// tuple length N, and the generator G2Base every public key and
// verification pairing is built against.
type Scheme struct {
	N      int
	G2Base bls12381.G2Affine
}

// NewScheme constructs a scheme for signing n-tuples of messages, bound to
// g2Base (the scheme's generator g, living in G2 under this package's
// asymmetric-curve placement). n must be at least 1.
func NewScheme(n int, g2Base bls12381.G2Affine) (*Scheme, error) {
	if n < 1 {
		return nil, ErrInvalidScheme
	}
	return &Scheme{N: n, G2Base: g2Base}, nil
}

// SecretKey holds a CL signing key: x, y, and z_1..z_{n-1}.
type SecretKey struct {
	X, Y *big.Int
	Z    []*big.Int
}

// PublicKey holds X = g^x, Y = g^y, Z_k = g^{z_k}, all in G2.
type PublicKey struct {
	X, Y bls12381.G2Affine
	Z    []bls12381.G2Affine
}

// Clear zeroes the secret key's scalars before release, per the engine's
// secret-buffer-hygiene requirement.
func (sk *SecretKey) Clear() {
	if sk.X != nil {
		sk.X.SetInt64(0)
	}
	if sk.Y != nil {
		sk.Y.SetInt64(0)
	}
	for _, z := range sk.Z {
		if z != nil {
			z.SetInt64(0)
		}
	}
}

// KeyGen draws a fresh secret/public key pair for the scheme. rng defaults
// to crypto/rand.Reader when nil.
func (s *Scheme) KeyGen(rng io.Reader) (*SecretKey, *PublicKey, error) {
	if rng == nil {
		rng = rand.Reader
	}
	x, err := group.RandomScalar(rng)
	if err != nil {
		return nil, nil, fmt.Errorf("clsign: draw x: %w", err)
	}
	y, err := group.RandomScalar(rng)
	if err != nil {
		return nil, nil, fmt.Errorf("clsign: draw y: %w", err)
	}
	z := make([]*big.Int, s.N-1)
	zPub := make([]bls12381.G2Affine, s.N-1)
	for k := range z {
		zk, err := group.RandomScalar(rng)
		if err != nil {
			return nil, nil, fmt.Errorf("clsign: draw z[%d]: %w", k, err)
		}
		z[k] = zk
		zPub[k] = group.ScalarMulG2(s.G2Base, zk)
	}

	sk := &SecretKey{X: x, Y: y, Z: z}
	pk := &PublicKey{
		X: group.ScalarMulG2(s.G2Base, x),
		Y: group.ScalarMulG2(s.G2Base, y),
		Z: zPub,
	}
	return sk, pk, nil
}
