package zkp

import (
	"io"
	"math/big"

	"github.com/dzamkov/zkp/group"
	"github.com/dzamkov/zkp/wiretype"
)

// productBlock proves that a secret variable p holds the product of two
// other secret variables f1, f2, via two Sigma-protocols bound together by
// a shared randomness r1. See RequireMul.
type productBlock struct {
	blockSlots
	f1, f2, p Variable
}

// RequireMul appends a block asserting p == f1 * f2.
func RequireMul(proof *ProofDescription, p, f1, f2 Variable) {
	if !p.IsSecret() || !f1.IsSecret() || !f2.IsSecret() {
		panic("zkp: RequireMul requires secret variables")
	}
	b := &productBlock{f1: f1, f2: f2, p: p}

	claimSecret := &wiretype.CompositeType{Parts: []wiretype.Part{
		{Name: "r1", Type: wiretype.ScalarType{}},
		{Name: "r2", Type: wiretype.ScalarType{}},
		{Name: "r3", Type: wiretype.ScalarType{}},
	}}
	claimPublic := &wiretype.CompositeType{Parts: []wiretype.Part{
		{Name: "R1", Type: wiretype.G1Type{}},
		{Name: "R2", Type: wiretype.G1Type{}},
	}}
	response := &wiretype.CompositeType{Parts: []wiretype.Part{
		{Name: "z1", Type: wiretype.ScalarType{}},
		{Name: "z2", Type: wiretype.ScalarType{}},
		{Name: "z3", Type: wiretype.ScalarType{}},
	}}
	proof.appendBlock(b, wiretype.VoidType{}, claimSecret, claimPublic, response)
}

func (b *productBlock) ClaimGen(inst *Instance, claimSecret, claimPublic *wiretype.CompositeValue, rng io.Reader) error {
	r1, err := group.RandomScalar(rng)
	if err != nil {
		return err
	}
	r2, err := group.RandomScalar(rng)
	if err != nil {
		return err
	}
	r3, err := group.RandomScalar(rng)
	if err != nil {
		return err
	}

	cs := claimSecret.At(b.claimSecretIdx).(*wiretype.CompositeValue)
	cs.Part("r1").(*wiretype.ScalarValue).Int.Set(r1)
	cs.Part("r2").(*wiretype.ScalarValue).Int.Set(r2)
	cs.Part("r3").(*wiretype.ScalarValue).Int.Set(r3)

	cp := claimPublic.At(b.claimPublicIdx).(*wiretype.CompositeValue)
	R1 := group.AddG1(group.ScalarMulG1(inst.desc.G, r1), group.ScalarMulG1(inst.desc.H, r2))
	R2 := group.AddG1(group.ScalarMulG1(inst.Commitment(b.f2), r1), group.ScalarMulG1(inst.desc.H, r3))
	cp.Part("R1").(*wiretype.G1Value).Point = R1
	cp.Part("R2").(*wiretype.G1Value).Point = R2
	return nil
}

func (b *productBlock) ResponseGen(inst *Instance, claimSecret *wiretype.CompositeValue, challenge *big.Int, response *wiretype.CompositeValue) {
	e := group.Reduce(challenge)
	cs := claimSecret.At(b.claimSecretIdx).(*wiretype.CompositeValue)
	r1 := cs.Part("r1").(*wiretype.ScalarValue).Int
	r2 := cs.Part("r2").(*wiretype.ScalarValue).Int
	r3 := cs.Part("r3").(*wiretype.ScalarValue).Int

	f1 := inst.Get(b.f1)
	oF1 := inst.Opening(b.f1)
	oF2 := inst.Opening(b.f2)
	oP := inst.Opening(b.p)

	z1 := scalarAdd(scalarMul(e, f1), r1)
	z2 := scalarAdd(scalarMul(e, oF1), r2)
	z3 := scalarAdd(scalarMul(e, scalarSub(oP, scalarMul(oF2, f1))), r3)

	resp := response.At(b.responseIdx).(*wiretype.CompositeValue)
	resp.Part("z1").(*wiretype.ScalarValue).Int.Set(z1)
	resp.Part("z2").(*wiretype.ScalarValue).Int.Set(z2)
	resp.Part("z3").(*wiretype.ScalarValue).Int.Set(z3)
}

func (b *productBlock) ResponseVerify(inst *Instance, claimPublic *wiretype.CompositeValue, challenge *big.Int, response *wiretype.CompositeValue) bool {
	e := group.Reduce(challenge)
	cp := claimPublic.At(b.claimPublicIdx).(*wiretype.CompositeValue)
	resp := response.At(b.responseIdx).(*wiretype.CompositeValue)

	R1 := cp.Part("R1").(*wiretype.G1Value).Point
	R2 := cp.Part("R2").(*wiretype.G1Value).Point
	z1 := resp.Part("z1").(*wiretype.ScalarValue).Int
	z2 := resp.Part("z2").(*wiretype.ScalarValue).Int
	z3 := resp.Part("z3").(*wiretype.ScalarValue).Int

	lhs1 := group.AddG1(group.ScalarMulG1(inst.desc.G, z1), group.ScalarMulG1(inst.desc.H, z2))
	rhs1 := group.AddG1(group.ScalarMulG1(inst.Commitment(b.f1), e), R1)
	if !group.EqualG1(lhs1, rhs1) {
		return false
	}

	lhs2 := group.AddG1(group.ScalarMulG1(inst.Commitment(b.f2), z1), group.ScalarMulG1(inst.desc.H, z3))
	rhs2 := group.AddG1(group.ScalarMulG1(inst.Commitment(b.p), e), R2)
	return group.EqualG1(lhs2, rhs2)
}
