package zkp

import (
	"io"
	"math/big"

	"github.com/dzamkov/zkp/group"
	"github.com/dzamkov/zkp/wiretype"
)

// wsumTerm is one (coefficient, secret variable) pair of a weighted sum.
type wsumTerm struct {
	Coeff *big.Int
	Var   Variable
}

// Term constructs a weighted-sum term for RequireWsumZero.
func Term(coeff *big.Int, v Variable) wsumTerm { return wsumTerm{Coeff: new(big.Int).Set(coeff), Var: v} }

// wsumZeroBlock proves that a caller-chosen weighted sum of secret
// variables commits to zero, without revealing any of them. See
// RequireWsumZero.
type wsumZeroBlock struct {
	blockSlots
	terms []wsumTerm
}

// RequireWsumZero appends a block asserting that
// Σ term.Coeff * term.Var == 0.
func RequireWsumZero(p *ProofDescription, terms ...wsumTerm) {
	RequireWsumZeroMany(p, terms)
}

// RequireWsumZeroMany is the slice-accepting form of RequireWsumZero.
func RequireWsumZeroMany(p *ProofDescription, terms []wsumTerm) {
	if len(terms) == 0 {
		panic("zkp: RequireWsumZero needs at least one term")
	}
	for _, t := range terms {
		if !t.Var.IsSecret() {
			panic("zkp: RequireWsumZero requires secret variables")
		}
	}
	cp := make([]wsumTerm, len(terms))
	copy(cp, terms)
	b := &wsumZeroBlock{terms: cp}
	p.appendBlock(b, wiretype.VoidType{}, wiretype.ScalarType{}, wiretype.G1Type{}, wiretype.ScalarType{})
}

// RequireSum appends a block asserting -c + a + b == 0, i.e. c == a + b.
func RequireSum(p *ProofDescription, c, a, b Variable) {
	RequireWsumZeroMany(p, []wsumTerm{
		Term(big.NewInt(-1), c),
		Term(big.NewInt(1), a),
		Term(big.NewInt(1), b),
	})
}

// RequireDif appends a block asserting -c + a - b == 0, i.e. c == a - b.
func RequireDif(p *ProofDescription, c, a, b Variable) {
	RequireWsumZeroMany(p, []wsumTerm{
		Term(big.NewInt(-1), c),
		Term(big.NewInt(1), a),
		Term(big.NewInt(-1), b),
	})
}

func (b *wsumZeroBlock) ClaimGen(inst *Instance, claimSecret, claimPublic *wiretype.CompositeValue, rng io.Reader) error {
	r, err := group.RandomScalar(rng)
	if err != nil {
		return err
	}
	claimSecret.At(b.claimSecretIdx).(*wiretype.ScalarValue).Int.Set(r)
	R := group.ScalarMulG1(inst.desc.H, r)
	claimPublic.At(b.claimPublicIdx).(*wiretype.G1Value).Point = R
	return nil
}

func (b *wsumZeroBlock) ResponseGen(inst *Instance, claimSecret *wiretype.CompositeValue, challenge *big.Int, response *wiretype.CompositeValue) {
	e := group.Reduce(challenge)
	r := claimSecret.At(b.claimSecretIdx).(*wiretype.ScalarValue).Int

	weightedOpenings := new(big.Int)
	for _, t := range b.terms {
		weightedOpenings = scalarAdd(weightedOpenings, scalarMul(t.Coeff, inst.Opening(t.Var)))
	}
	z := scalarSub(r, scalarMul(e, weightedOpenings))
	response.At(b.responseIdx).(*wiretype.ScalarValue).Int.Set(z)
}

func (b *wsumZeroBlock) ResponseVerify(inst *Instance, claimPublic *wiretype.CompositeValue, challenge *big.Int, response *wiretype.CompositeValue) bool {
	e := group.Reduce(challenge)
	R := claimPublic.At(b.claimPublicIdx).(*wiretype.G1Value).Point
	z := response.At(b.responseIdx).(*wiretype.ScalarValue).Int

	acc := group.ScalarMulG1(inst.desc.H, z)
	for _, t := range b.terms {
		acc = group.AddG1(acc, group.ScalarMulG1(inst.Commitment(t.Var), scalarMul(e, t.Coeff)))
	}
	return group.EqualG1(acc, R)
}
