package zkp

import (
	"io"
	"math/big"

	"github.com/dzamkov/zkp/wiretype"
)

// Block is a polymorphic relation fragment contributing one Sigma-protocol
// to the combined proof. Concrete blocks (equals-public, equals, wsum-zero,
// product, and the CL signature-possession block) implement this small
// closed set of operations; dynamic dispatch exists only because the set
// of block kinds is open to extension, not because any one proof mixes an
// unknown set at verification time.
type Block interface {
	// bindSlots records the positional index this block was given in each
	// of the proof's four shared tapes, assigned when the block was
	// appended to its owning ProofDescription.
	bindSlots(supplementIdx, claimSecretIdx, claimPublicIdx, responseIdx int)

	// ClaimGen draws this block's randomness, recording its private state
	// into its own slot of claimSecret and its published commitment into
	// its own slot of claimPublic.
	ClaimGen(inst *Instance, claimSecret, claimPublic *wiretype.CompositeValue, rng io.Reader) error

	// ResponseGen computes this block's response from its own slot of
	// claimSecret, the instance, and the shared challenge.
	ResponseGen(inst *Instance, claimSecret *wiretype.CompositeValue, challenge *big.Int, response *wiretype.CompositeValue)

	// ResponseVerify checks this block's share of the proof.
	ResponseVerify(inst *Instance, claimPublic *wiretype.CompositeValue, challenge *big.Int, response *wiretype.CompositeValue) bool
}

// blockSlots is embedded by concrete blocks to hold the indices assigned
// by ProofDescription.appendBlock.
type blockSlots struct {
	supplementIdx  int
	claimSecretIdx int
	claimPublicIdx int
	responseIdx    int
}

func (s *blockSlots) bindSlots(supplementIdx, claimSecretIdx, claimPublicIdx, responseIdx int) {
	s.supplementIdx = supplementIdx
	s.claimSecretIdx = claimSecretIdx
	s.claimPublicIdx = claimPublicIdx
	s.responseIdx = responseIdx
}
