package zkp

import (
	"bytes"
	"crypto/sha256"
	"math/big"

	"github.com/dzamkov/zkp/group"
	"github.com/dzamkov/zkp/wiretype"
)

// DeriveChallenge derives a Fiat-Shamir challenge by hashing the serialized
// claim_public tape and reducing the result modulo the scalar field order.
// The engine itself is challenge-agnostic (it accepts any *big.Int);
// this is an opt-in convenience for callers who want a non-interactive
// proof instead of threading a real interactive challenge through a
// transport.
func DeriveChallenge(claimPublic *wiretype.CompositeValue) (*big.Int, error) {
	var buf bytes.Buffer
	if err := claimPublic.WriteTo(&buf); err != nil {
		return nil, err
	}
	digest := sha256.Sum256(buf.Bytes())
	c := new(big.Int).SetBytes(digest[:])
	return group.Reduce(c), nil
}
