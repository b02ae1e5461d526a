package zkp

import (
	"io"
	"math/big"

	"github.com/dzamkov/zkp/group"
	"github.com/dzamkov/zkp/wiretype"
)

// eqPublicBlock proves that a secret variable equals a fixed public value,
// without revealing the secret's opening. See RequireEqualPublic.
type eqPublicBlock struct {
	blockSlots
	s   Variable
	pub Variable
}

// RequireEqualPublic appends a block asserting that secret s equals the
// current value of public variable pub. This is also how VarSecretFor
// bridges a public variable into a secret-only operand.
func RequireEqualPublic(p *ProofDescription, s, pub Variable) {
	if !s.IsSecret() {
		panic("zkp: RequireEqualPublic requires a secret variable")
	}
	if !pub.IsPublic() {
		panic("zkp: RequireEqualPublic requires a public variable")
	}
	b := &eqPublicBlock{s: s, pub: pub}
	p.appendBlock(b, wiretype.VoidType{}, wiretype.ScalarType{}, wiretype.G1Type{}, wiretype.ScalarType{})
}

func (b *eqPublicBlock) ClaimGen(inst *Instance, claimSecret, claimPublic *wiretype.CompositeValue, rng io.Reader) error {
	r, err := group.RandomScalar(rng)
	if err != nil {
		return err
	}
	claimSecret.At(b.claimSecretIdx).(*wiretype.ScalarValue).Int.Set(r)
	R := group.ScalarMulG1(inst.desc.H, r)
	claimPublic.At(b.claimPublicIdx).(*wiretype.G1Value).Point = R
	return nil
}

func (b *eqPublicBlock) ResponseGen(inst *Instance, claimSecret *wiretype.CompositeValue, challenge *big.Int, response *wiretype.CompositeValue) {
	e := group.Reduce(challenge)
	r := claimSecret.At(b.claimSecretIdx).(*wiretype.ScalarValue).Int
	o := inst.Opening(b.s)
	z := scalarAdd(scalarMul(e, o), r)
	response.At(b.responseIdx).(*wiretype.ScalarValue).Int.Set(z)
}

func (b *eqPublicBlock) ResponseVerify(inst *Instance, claimPublic *wiretype.CompositeValue, challenge *big.Int, response *wiretype.CompositeValue) bool {
	e := group.Reduce(challenge)
	R := claimPublic.At(b.claimPublicIdx).(*wiretype.G1Value).Point
	z := response.At(b.responseIdx).(*wiretype.ScalarValue).Int
	p := inst.Get(b.pub)

	lhs := group.AddG1(group.ScalarMulG1(inst.desc.G, scalarMul(e, p)), group.ScalarMulG1(inst.desc.H, z))
	rhs := group.AddG1(group.ScalarMulG1(inst.Commitment(b.s), e), R)
	return group.EqualG1(lhs, rhs)
}
