package zkp

import (
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/dzamkov/zkp/wiretype"
)

// ProofDescription is the frozen-after-first-use aggregate of a circuit:
// the commitment bases, the variable counters, the ordered computation
// list, the ordered block list, and the four composite payload types each
// block contributes to. Build it once, then derive as many instances from
// it as needed.
type ProofDescription struct {
	G, H bls12381.G1Affine

	numSecret int
	numPublic int

	computations []computation
	blocks       []Block

	supplementType  *wiretype.MultiType
	claimSecretType *wiretype.MultiType
	claimPublicType *wiretype.MultiType
	responseType    *wiretype.MultiType

	frozen bool
}

// NewProofDescription starts a new, open proof description bound to
// commitment bases g and h. Both must be independent generators of G1 with
// no known discrete-log relation between them.
func NewProofDescription(g, h bls12381.G1Affine) *ProofDescription {
	return &ProofDescription{
		G: g, H: h,
		supplementType:  &wiretype.MultiType{},
		claimSecretType: &wiretype.MultiType{},
		claimPublicType: &wiretype.MultiType{},
		responseType:    &wiretype.MultiType{},
	}
}

func (p *ProofDescription) checkOpen() {
	if p.frozen {
		panic("zkp: proof description is frozen; no more variables, computations, or blocks may be added")
	}
}

func (p *ProofDescription) freeze() { p.frozen = true }

// NumSecret returns the number of declared secret variables.
func (p *ProofDescription) NumSecret() int { return p.numSecret }

// NumPublic returns the number of declared public variables.
func (p *ProofDescription) NumPublic() int { return p.numPublic }

// appendBlock registers a block's four tape contributions and assigns it
// its slot indices. Concrete block constructors call this once they have
// built their static configuration.
func (p *ProofDescription) appendBlock(b Block, supplement, claimSecret, claimPublic, response wiretype.Type) {
	p.appendBlockSlot(b, supplement, claimSecret, claimPublic, response)
}

// appendBlockSlot is appendBlock's variant for blocks that need to recover
// their supplement slot index afterward, e.g. to hand it back to the
// caller so external callers (like RequireSig) can populate that slot.
func (p *ProofDescription) appendBlockSlot(b Block, supplement, claimSecret, claimPublic, response wiretype.Type) int {
	p.checkOpen()
	si := p.supplementType.Append(supplement)
	csi := p.claimSecretType.Append(claimSecret)
	cpi := p.claimPublicType.Append(claimPublic)
	ri := p.responseType.Append(response)
	b.bindSlots(si, csi, cpi, ri)
	p.blocks = append(p.blocks, b)
	return si
}

// ClaimGen walks every block in insertion order, producing the
// prover-local claim_secret tape and the published claim_public tape.
func (p *ProofDescription) ClaimGen(inst *Instance, rng io.Reader) (claimSecret, claimPublic *wiretype.CompositeValue, err error) {
	if !inst.updated {
		return nil, nil, ErrInstanceNotUpdated
	}
	p.freeze()
	cs, _ := p.claimSecretType.New().(*wiretype.CompositeValue)
	cp, _ := p.claimPublicType.New().(*wiretype.CompositeValue)
	for _, b := range p.blocks {
		if err := b.ClaimGen(inst, cs, cp, rng); err != nil {
			return nil, nil, err
		}
	}
	return cs, cp, nil
}

// ResponseGen walks every block, producing the response tape from the
// prover-local claim_secret tape and the agreed challenge.
func (p *ProofDescription) ResponseGen(inst *Instance, claimSecret *wiretype.CompositeValue, challenge *big.Int) *wiretype.CompositeValue {
	p.freeze()
	resp, _ := p.responseType.New().(*wiretype.CompositeValue)
	for _, b := range p.blocks {
		b.ResponseGen(inst, claimSecret, challenge, resp)
	}
	return resp
}

// ResponseVerify walks every block in insertion order, short-circuiting on
// the first block that reports failure.
func (p *ProofDescription) ResponseVerify(inst *Instance, claimPublic *wiretype.CompositeValue, challenge *big.Int, response *wiretype.CompositeValue) bool {
	p.freeze()
	for _, b := range p.blocks {
		if !b.ResponseVerify(inst, claimPublic, challenge, response) {
			return false
		}
	}
	return true
}

// NewClaimPublic allocates a zero-valued claim_public tape, e.g. to parse
// one read off the wire.
func (p *ProofDescription) NewClaimPublic() *wiretype.CompositeValue {
	v, _ := p.claimPublicType.New().(*wiretype.CompositeValue)
	return v
}

// NewResponse allocates a zero-valued response tape.
func (p *ProofDescription) NewResponse() *wiretype.CompositeValue {
	v, _ := p.responseType.New().(*wiretype.CompositeValue)
	return v
}
