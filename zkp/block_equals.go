package zkp

import (
	"io"
	"math/big"

	"github.com/dzamkov/zkp/group"
	"github.com/dzamkov/zkp/wiretype"
)

// equalsBlock proves that a list of secret variables all hold the same
// value, by sharing a single z response across every commitment. See
// RequireEqual / RequireEqualMany.
type equalsBlock struct {
	blockSlots
	vars []Variable
}

// RequireEqual appends a block asserting that every given secret variable
// holds the same value. It requires at least two variables.
func RequireEqual(p *ProofDescription, vars ...Variable) {
	RequireEqualMany(p, vars)
}

// RequireEqualMany is the slice-accepting form of RequireEqual, for callers
// that already hold a caller-constructed slice of variables.
func RequireEqualMany(p *ProofDescription, vars []Variable) {
	if len(vars) < 2 {
		panic("zkp: RequireEqual needs at least two variables")
	}
	for _, v := range vars {
		if !v.IsSecret() {
			panic("zkp: RequireEqual requires secret variables")
		}
	}
	cp := make([]Variable, len(vars))
	copy(cp, vars)
	b := &equalsBlock{vars: cp}

	n := len(cp)
	claimSecret := &wiretype.CompositeType{Parts: []wiretype.Part{
		{Name: "r", Type: wiretype.ScalarType{}},
		{Name: "rPrime", Type: wiretype.ArrayType{Item: wiretype.ScalarType{}, Count: n}},
	}}
	claimPublic := wiretype.ArrayType{Item: wiretype.G1Type{}, Count: n}
	response := &wiretype.CompositeType{Parts: []wiretype.Part{
		{Name: "z", Type: wiretype.ScalarType{}},
		{Name: "zPrime", Type: wiretype.ArrayType{Item: wiretype.ScalarType{}, Count: n}},
	}}
	p.appendBlock(b, wiretype.VoidType{}, claimSecret, claimPublic, response)
}

func (b *equalsBlock) ClaimGen(inst *Instance, claimSecret, claimPublic *wiretype.CompositeValue, rng io.Reader) error {
	cs := claimSecret.At(b.claimSecretIdx).(*wiretype.CompositeValue)
	cp := claimPublic.At(b.claimPublicIdx).(*wiretype.ArrayValue)

	r, err := group.RandomScalar(rng)
	if err != nil {
		return err
	}
	cs.Part("r").(*wiretype.ScalarValue).Int.Set(r)
	rPrime := cs.Part("rPrime").(*wiretype.ArrayValue)

	for k := range b.vars {
		rk, err := group.RandomScalar(rng)
		if err != nil {
			return err
		}
		rPrime.At(k).(*wiretype.ScalarValue).Int.Set(rk)
		Rk := group.AddG1(group.ScalarMulG1(inst.desc.G, r), group.ScalarMulG1(inst.desc.H, rk))
		cp.At(k).(*wiretype.G1Value).Point = Rk
	}
	return nil
}

func (b *equalsBlock) ResponseGen(inst *Instance, claimSecret *wiretype.CompositeValue, challenge *big.Int, response *wiretype.CompositeValue) {
	e := group.Reduce(challenge)
	cs := claimSecret.At(b.claimSecretIdx).(*wiretype.CompositeValue)
	resp := response.At(b.responseIdx).(*wiretype.CompositeValue)

	r := cs.Part("r").(*wiretype.ScalarValue).Int
	z := scalarAdd(scalarMul(e, inst.Get(b.vars[0])), r)
	resp.Part("z").(*wiretype.ScalarValue).Int.Set(z)

	rPrime := cs.Part("rPrime").(*wiretype.ArrayValue)
	zPrime := resp.Part("zPrime").(*wiretype.ArrayValue)
	for k, v := range b.vars {
		rk := rPrime.At(k).(*wiretype.ScalarValue).Int
		zk := scalarAdd(scalarMul(e, inst.Opening(v)), rk)
		zPrime.At(k).(*wiretype.ScalarValue).Int.Set(zk)
	}
}

func (b *equalsBlock) ResponseVerify(inst *Instance, claimPublic *wiretype.CompositeValue, challenge *big.Int, response *wiretype.CompositeValue) bool {
	e := group.Reduce(challenge)
	cp := claimPublic.At(b.claimPublicIdx).(*wiretype.ArrayValue)
	resp := response.At(b.responseIdx).(*wiretype.CompositeValue)

	z := resp.Part("z").(*wiretype.ScalarValue).Int
	zPrime := resp.Part("zPrime").(*wiretype.ArrayValue)

	for k, v := range b.vars {
		zk := zPrime.At(k).(*wiretype.ScalarValue).Int
		Rk := cp.At(k).(*wiretype.G1Value).Point

		lhs := group.AddG1(group.ScalarMulG1(inst.desc.G, z), group.ScalarMulG1(inst.desc.H, zk))
		rhs := group.AddG1(group.ScalarMulG1(inst.Commitment(v), e), Rk)
		if !group.EqualG1(lhs, rhs) {
			return false
		}
	}
	return true
}
