package zkp

import (
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/dzamkov/zkp/clsign"
	"github.com/dzamkov/zkp/group"
	"github.com/dzamkov/zkp/wiretype"
)

// sigPossessionBlock proves knowledge of a CL signature on the committed
// tuple of secret message variables, without revealing the signature or
// the messages. The signature itself lives in the instance's supplement
// slab (see RequireSig); the block blinds it fresh on every ClaimGen.
type sigPossessionBlock struct {
	blockSlots
	scheme *clsign.Scheme
	pk     *clsign.PublicKey
	msgs   []Variable
}

// RequireSig appends a signature-possession block over scheme/pk, tying
// the commitments of msgVars (one per scheme message slot, in order) to a
// CL signature supplied later via the returned supplement slot: callers
// set it with
//
//	inst.Supplement(slot).(*clsign.SignatureValue).Set(sig)
//
// before calling Instance.Update.
func RequireSig(p *ProofDescription, scheme *clsign.Scheme, pk *clsign.PublicKey, msgVars ...Variable) (slot int) {
	if len(msgVars) != scheme.N {
		panic("zkp: RequireSig message variable count must match the scheme")
	}
	for _, v := range msgVars {
		if !v.IsSecret() {
			panic("zkp: RequireSig requires secret message variables")
		}
	}
	vars := make([]Variable, len(msgVars))
	copy(vars, msgVars)
	b := &sigPossessionBlock{scheme: scheme, pk: pk, msgs: vars}

	n := scheme.N
	claimSecret := &wiretype.CompositeType{Parts: []wiretype.Part{
		{Name: "p", Type: wiretype.ScalarType{}},
		{Name: "rp", Type: wiretype.ScalarType{}},
		{Name: "r", Type: wiretype.ArrayType{Item: wiretype.ScalarType{}, Count: n}},
		{Name: "rPrime", Type: wiretype.ArrayType{Item: wiretype.ScalarType{}, Count: n}},
	}}
	claimPublic := &wiretype.CompositeType{Parts: []wiretype.Part{
		{Name: "sig", Type: clsign.SignatureType{N: n}},
		{Name: "Vq", Type: wiretype.GTType{}},
		{Name: "RVs", Type: wiretype.GTType{}},
		{Name: "RVq", Type: wiretype.GTType{}},
		{Name: "R", Type: wiretype.ArrayType{Item: wiretype.G1Type{}, Count: n}},
	}}
	response := &wiretype.CompositeType{Parts: []wiretype.Part{
		{Name: "zp", Type: wiretype.ScalarType{}},
		{Name: "z", Type: wiretype.ArrayType{Item: wiretype.ScalarType{}, Count: n}},
		{Name: "zPrime", Type: wiretype.ArrayType{Item: wiretype.ScalarType{}, Count: n}},
	}}
	return p.appendBlockSlot(b, clsign.SignatureType{N: n}, claimSecret, claimPublic, response)
}

func (b *sigPossessionBlock) ClaimGen(inst *Instance, claimSecret, claimPublic *wiretype.CompositeValue, rng io.Reader) error {
	sigValue := inst.Supplement(b.supplementIdx).(*clsign.SignatureValue)
	sig := sigValue.Signature()

	blinded, p, err := b.scheme.Blind(sig, rng)
	if err != nil {
		return err
	}
	rp, err := group.RandomScalar(rng)
	if err != nil {
		return err
	}

	n := b.scheme.N
	r := make([]*big.Int, n)
	rPrime := make([]*big.Int, n)
	for k := 0; k < n; k++ {
		r[k], err = group.RandomScalar(rng)
		if err != nil {
			return err
		}
		rPrime[k], err = group.RandomScalar(rng)
		if err != nil {
			return err
		}
	}

	// V_x = <X,a>, V_xy = <X,b>, V_xy,k = <X,B_k> for k=1..n-1. X is reused
	// across n+1 pairing calls, so it is bound once via a FixedG2Pairer.
	xPairer := group.NewFixedG2Pairer(b.pk.X)
	Vx, err := xPairer.Pair(blinded.A)
	if err != nil {
		return err
	}
	Vxy, err := xPairer.Pair(blinded.B)
	if err != nil {
		return err
	}
	VxyK := make([]bls12381.GT, n-1)
	for k := 0; k < n-1; k++ {
		VxyK[k], err = xPairer.Pair(blinded.BK[k])
		if err != nil {
			return err
		}
	}

	// V_q = V_x * V_xy ^ m_0 * Π_{k>=1} V_xy,k ^ m_k
	Vq := group.GTMul(Vx, group.GTExp(Vxy, inst.Get(b.msgs[0])))
	for k := 0; k < n-1; k++ {
		Vq = group.GTMul(Vq, group.GTExp(VxyK[k], inst.Get(b.msgs[k+1])))
	}

	// R_Vs = V_q ^ rp
	RVs := group.GTExp(Vq, rp)
	// R_Vq = V_xy ^ r_0 * Π_{k>=1} V_xy,k ^ r_k
	RVq := group.GTExp(Vxy, r[0])
	for k := 0; k < n-1; k++ {
		RVq = group.GTMul(RVq, group.GTExp(VxyK[k], r[k+1]))
	}

	cs := claimSecret.At(b.claimSecretIdx).(*wiretype.CompositeValue)
	cs.Part("p").(*wiretype.ScalarValue).Int.Set(p)
	cs.Part("rp").(*wiretype.ScalarValue).Int.Set(rp)
	csR := cs.Part("r").(*wiretype.ArrayValue)
	csRPrime := cs.Part("rPrime").(*wiretype.ArrayValue)
	for k := 0; k < n; k++ {
		csR.At(k).(*wiretype.ScalarValue).Int.Set(r[k])
		csRPrime.At(k).(*wiretype.ScalarValue).Int.Set(rPrime[k])
	}

	cp := claimPublic.At(b.claimPublicIdx).(*wiretype.CompositeValue)
	cp.Part("sig").(*clsign.SignatureValue).Set(blinded)
	cp.Part("Vq").(*wiretype.GTValue).Elem = Vq
	cp.Part("RVs").(*wiretype.GTValue).Elem = RVs
	cp.Part("RVq").(*wiretype.GTValue).Elem = RVq
	cpR := cp.Part("R").(*wiretype.ArrayValue)
	for k := 0; k < n; k++ {
		Rk := group.AddG1(group.ScalarMulG1(inst.desc.G, r[k]), group.ScalarMulG1(inst.desc.H, rPrime[k]))
		cpR.At(k).(*wiretype.G1Value).Point = Rk
	}
	return nil
}

func (b *sigPossessionBlock) ResponseGen(inst *Instance, claimSecret *wiretype.CompositeValue, challenge *big.Int, response *wiretype.CompositeValue) {
	e := group.Reduce(challenge)
	cs := claimSecret.At(b.claimSecretIdx).(*wiretype.CompositeValue)
	p := cs.Part("p").(*wiretype.ScalarValue).Int
	rp := cs.Part("rp").(*wiretype.ScalarValue).Int
	csR := cs.Part("r").(*wiretype.ArrayValue)
	csRPrime := cs.Part("rPrime").(*wiretype.ArrayValue)

	resp := response.At(b.responseIdx).(*wiretype.CompositeValue)
	zp := scalarAdd(scalarMul(e, p), rp)
	resp.Part("zp").(*wiretype.ScalarValue).Int.Set(zp)

	z := resp.Part("z").(*wiretype.ArrayValue)
	zPrime := resp.Part("zPrime").(*wiretype.ArrayValue)
	n := b.scheme.N
	for k := 0; k < n; k++ {
		m := inst.Get(b.msgs[k])
		o := inst.Opening(b.msgs[k])
		rk := csR.At(k).(*wiretype.ScalarValue).Int
		rPk := csRPrime.At(k).(*wiretype.ScalarValue).Int
		zk := scalarAdd(scalarMul(e, m), rk)
		zPk := scalarAdd(scalarMul(e, o), rPk)
		z.At(k).(*wiretype.ScalarValue).Int.Set(zk)
		zPrime.At(k).(*wiretype.ScalarValue).Int.Set(zPk)
	}
}

func (b *sigPossessionBlock) ResponseVerify(inst *Instance, claimPublic *wiretype.CompositeValue, challenge *big.Int, response *wiretype.CompositeValue) bool {
	e := group.Reduce(challenge)
	cp := claimPublic.At(b.claimPublicIdx).(*wiretype.CompositeValue)
	resp := response.At(b.responseIdx).(*wiretype.CompositeValue)

	sig := cp.Part("sig").(*clsign.SignatureValue).Signature()
	Vq := cp.Part("Vq").(*wiretype.GTValue).Elem
	RVs := cp.Part("RVs").(*wiretype.GTValue).Elem
	RVq := cp.Part("RVq").(*wiretype.GTValue).Elem
	R := cp.Part("R").(*wiretype.ArrayValue)

	zp := resp.Part("zp").(*wiretype.ScalarValue).Int
	z := resp.Part("z").(*wiretype.ArrayValue)
	zPrime := resp.Part("zPrime").(*wiretype.ArrayValue)

	n := b.scheme.N

	// Check 1: per-message Pedersen commitment consistency.
	for k := 0; k < n; k++ {
		zk := z.At(k).(*wiretype.ScalarValue).Int
		zPk := zPrime.At(k).(*wiretype.ScalarValue).Int
		Rk := R.At(k).(*wiretype.G1Value).Point

		lhs := group.AddG1(group.ScalarMulG1(inst.desc.G, zk), group.ScalarMulG1(inst.desc.H, zPk))
		rhs := group.AddG1(group.ScalarMulG1(inst.Commitment(b.msgs[k]), e), Rk)
		if !group.EqualG1(lhs, rhs) {
			return false
		}
	}

	// Check 3: pairing consistency of the blinded signature. Y, X, and the
	// scheme's own generator are each reused across several pairing calls below,
	// so each is bound once via a FixedG2Pairer.
	yPairer := group.NewFixedG2Pairer(b.pk.Y)
	gPairer := group.NewFixedG2Pairer(b.scheme.G2Base)
	xPairer := group.NewFixedG2Pairer(b.pk.X)

	ya, err := yPairer.Pair(sig.A)
	if err != nil {
		return false
	}
	gb, err := gPairer.Pair(sig.B)
	if err != nil {
		return false
	}
	if !group.GTEqual(ya, gb) {
		return false
	}
	for k := 0; k < n-1; k++ {
		zka, err := group.Pair(sig.A, b.pk.Z[k])
		if err != nil {
			return false
		}
		gak, err := gPairer.Pair(sig.AK[k])
		if err != nil {
			return false
		}
		if !group.GTEqual(zka, gak) {
			return false
		}
		yak, err := yPairer.Pair(sig.AK[k])
		if err != nil {
			return false
		}
		gbk, err := gPairer.Pair(sig.BK[k])
		if err != nil {
			return false
		}
		if !group.GTEqual(yak, gbk) {
			return false
		}
	}

	// Check 2: V_q^{zp} == <g,c>^e * R_Vs.
	gc, err := gPairer.Pair(sig.C)
	if err != nil {
		return false
	}
	lhs2 := group.GTExp(Vq, zp)
	rhs2 := group.GTMul(group.GTExp(gc, e), RVs)
	if !group.GTEqual(lhs2, rhs2) {
		return false
	}

	// Check 4: V_x^e * V_xy^{z0} * Π_{k>=1} V_xy,k^{zk} == V_q^e * R_Vq.
	Vx, err := xPairer.Pair(sig.A)
	if err != nil {
		return false
	}
	Vxy, err := xPairer.Pair(sig.B)
	if err != nil {
		return false
	}
	z0 := z.At(0).(*wiretype.ScalarValue).Int
	lhs4 := group.GTMul(group.GTExp(Vx, e), group.GTExp(Vxy, z0))
	for k := 0; k < n-1; k++ {
		VxyK, err := xPairer.Pair(sig.BK[k])
		if err != nil {
			return false
		}
		zk := z.At(k + 1).(*wiretype.ScalarValue).Int
		lhs4 = group.GTMul(lhs4, group.GTExp(VxyK, zk))
	}
	rhs4 := group.GTMul(group.GTExp(Vq, e), RVq)
	return group.GTEqual(lhs4, rhs4)
}
