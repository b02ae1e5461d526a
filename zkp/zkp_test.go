package zkp

import (
	"bytes"
	"math/big"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/dzamkov/zkp/group"
)

func testBases(t *testing.T) (g, h bls12381.G1Affine) {
	t.Helper()
	gens := group.DeriveG1Generators("zkp-test-bases", 2)
	return gens[0], gens[1]
}

// runProof drives a full prover/verifier round for desc, returning whether
// response_verify accepted.
func runProof(t *testing.T, desc *ProofDescription, challenge *big.Int, setup func(inst *Instance)) bool {
	t.Helper()
	proverInst := NewProverInstance(desc, nil)
	setup(proverInst)
	proverInst.Update()

	claimSecret, claimPublic, err := desc.ClaimGen(proverInst, nil)
	if err != nil {
		t.Fatalf("ClaimGen: %v", err)
	}
	response := desc.ResponseGen(proverInst, claimSecret, challenge)

	var buf bytes.Buffer
	if err := proverInst.PublicValuesWrite(&buf); err != nil {
		t.Fatalf("PublicValuesWrite: %v", err)
	}
	if err := proverInst.CommitmentsWrite(&buf); err != nil {
		t.Fatalf("CommitmentsWrite: %v", err)
	}
	if err := claimPublic.WriteTo(&buf); err != nil {
		t.Fatalf("claimPublic.WriteTo: %v", err)
	}
	if err := response.WriteTo(&buf); err != nil {
		t.Fatalf("response.WriteTo: %v", err)
	}

	verifierInst := NewVerifierInstance(desc)
	if err := verifierInst.PublicValuesRead(&buf); err != nil {
		t.Fatalf("PublicValuesRead: %v", err)
	}
	if err := verifierInst.CommitmentsRead(&buf); err != nil {
		t.Fatalf("CommitmentsRead: %v", err)
	}
	verifierInst.Update()

	vClaimPublic := desc.NewClaimPublic()
	if err := vClaimPublic.ReadFrom(&buf); err != nil {
		t.Fatalf("vClaimPublic.ReadFrom: %v", err)
	}
	vResponse := desc.NewResponse()
	if err := vResponse.ReadFrom(&buf); err != nil {
		t.Fatalf("vResponse.ReadFrom: %v", err)
	}

	return desc.ResponseVerify(verifierInst, vClaimPublic, challenge, vResponse)
}

func TestProductScenarioS1(t *testing.T) {
	g, h := testBases(t)
	desc := NewProofDescription(g, h)
	p := desc.VarSecret()
	q := desc.VarSecret()
	m := desc.VarSecret()
	RequireMul(desc, m, p, q)

	challenge := big.NewInt(1000001)
	ok := runProof(t, desc, challenge, func(inst *Instance) {
		inst.SetSecretInt64(p, -2)
		inst.SetSecretInt64(q, -2)
		inst.SetSecretInt64(m, 4)
	})
	if !ok {
		t.Fatalf("expected verification to succeed")
	}
}

func TestProductAndSumScenarioS2(t *testing.T) {
	g, h := testBases(t)
	desc := NewProofDescription(g, h)
	p := desc.VarSecret()
	q := desc.VarSecret()
	m := desc.VarSecret()
	RequireMul(desc, m, p, q)
	RequireWsumZero(desc,
		Term(big.NewInt(1), m),
		Term(big.NewInt(1), p),
		Term(big.NewInt(1), q),
	)

	challenge := big.NewInt(1000001)
	ok := runProof(t, desc, challenge, func(inst *Instance) {
		inst.SetSecretInt64(p, -2)
		inst.SetSecretInt64(q, -2)
		inst.SetSecretInt64(m, 4)
	})
	if !ok {
		t.Fatalf("expected verification to succeed")
	}
}

func TestProductInconsistentScenarioS3(t *testing.T) {
	g, h := testBases(t)
	desc := NewProofDescription(g, h)
	p := desc.VarSecret()
	q := desc.VarSecret()
	m := desc.VarSecret()
	RequireMul(desc, m, p, q)

	challenge := big.NewInt(1000001)
	ok := runProof(t, desc, challenge, func(inst *Instance) {
		inst.SetSecretInt64(p, 3)
		inst.SetSecretInt64(q, 5)
		inst.SetSecretInt64(m, 14)
	})
	if ok {
		t.Fatalf("expected verification to fail for an inconsistent product claim")
	}
}

func TestEqualsPublicScenarioS4(t *testing.T) {
	g, h := testBases(t)
	for _, tc := range []struct {
		name    string
		pub     int64
		wantOK  bool
	}{
		{"matching", 42, true},
		{"mismatched", 43, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			desc := NewProofDescription(g, h)
			s := desc.VarSecret()
			v := desc.VarPublic()
			RequireEqualPublic(desc, s, v)

			challenge := big.NewInt(777)
			ok := runProof(t, desc, challenge, func(inst *Instance) {
				inst.SetSecretInt64(s, 42)
				inst.SetPublicInt64(v, tc.pub)
			})
			if ok != tc.wantOK {
				t.Fatalf("response_verify = %v, want %v", ok, tc.wantOK)
			}
		})
	}
}

func TestEqualityChainScenarioS5(t *testing.T) {
	g, h := testBases(t)
	t.Run("all equal", func(t *testing.T) {
		desc := NewProofDescription(g, h)
		a := desc.VarSecret()
		b := desc.VarSecret()
		c := desc.VarSecret()
		RequireEqual(desc, a, b, c)

		challenge := big.NewInt(555)
		ok := runProof(t, desc, challenge, func(inst *Instance) {
			inst.SetSecretInt64(a, 7)
			inst.SetSecretInt64(b, 7)
			inst.SetSecretInt64(c, 7)
		})
		if !ok {
			t.Fatalf("expected verification to succeed")
		}
	})

	t.Run("one differs", func(t *testing.T) {
		desc := NewProofDescription(g, h)
		a := desc.VarSecret()
		b := desc.VarSecret()
		c := desc.VarSecret()
		RequireEqual(desc, a, b, c)

		challenge := big.NewInt(555)
		ok := runProof(t, desc, challenge, func(inst *Instance) {
			inst.SetSecretInt64(a, 7)
			inst.SetSecretInt64(b, 7)
			inst.SetSecretInt64(c, 8)
		})
		if ok {
			t.Fatalf("expected verification to fail")
		}
	})
}

func TestRequireSumAndDif(t *testing.T) {
	g, h := testBases(t)
	desc := NewProofDescription(g, h)
	a := desc.VarSecret()
	b := desc.VarSecret()
	c := desc.VarSecret()
	d := desc.VarSecret()
	RequireSum(desc, c, a, b)
	RequireDif(desc, d, a, b)

	challenge := big.NewInt(42)
	ok := runProof(t, desc, challenge, func(inst *Instance) {
		inst.SetSecretInt64(a, 10)
		inst.SetSecretInt64(b, 3)
		inst.SetSecretInt64(c, 13)
		inst.SetSecretInt64(d, 7)
	})
	if !ok {
		t.Fatalf("expected verification to succeed")
	}
}

func TestVarSecretForBridgesPublicVariable(t *testing.T) {
	g, h := testBases(t)
	desc := NewProofDescription(g, h)
	pub := desc.VarPublic()
	mirror := desc.VarSecretFor(pub)
	if !mirror.IsSecret() {
		t.Fatalf("VarSecretFor must return a secret variable")
	}

	other := desc.VarSecret()
	RequireEqual(desc, mirror, other)

	challenge := big.NewInt(99)
	ok := runProof(t, desc, challenge, func(inst *Instance) {
		inst.SetPublicInt64(pub, 11)
		inst.SetSecretInt64(other, 11)
	})
	if !ok {
		t.Fatalf("expected verification to succeed")
	}
}

func TestCommitmentIntegrity(t *testing.T) {
	g, h := testBases(t)
	desc := NewProofDescription(g, h)
	s := desc.VarSecret()
	inst := NewProverInstance(desc, nil)
	inst.SetSecretInt64(s, 123)

	got := inst.Commitment(s)
	want := group.CommitG1(g, h, inst.Get(s), inst.Opening(s))
	if !group.EqualG1(got, want) {
		t.Fatalf("commitment does not match g^x h^o")
	}
}

// TestInsertionOrderInvariance builds the same two blocks in both orders and
// checks that each, driven end to end with a matching order on both sides,
// still verifies: the wire layout is a function of insertion order, but
// consistent insertion order on both ends is all completeness requires.
func TestInsertionOrderInvariance(t *testing.T) {
	g, h := testBases(t)

	build := func(swap bool) (*ProofDescription, Variable, Variable, Variable) {
		desc := NewProofDescription(g, h)
		a := desc.VarSecret()
		b := desc.VarSecret()
		c := desc.VarSecret()
		if swap {
			RequireEqualPublic(desc, a, desc.VarConstInt64(1))
			RequireEqual(desc, b, c)
		} else {
			RequireEqual(desc, b, c)
			RequireEqualPublic(desc, a, desc.VarConstInt64(1))
		}
		return desc, a, b, c
	}

	for _, swap := range []bool{false, true} {
		desc, a, b, c := build(swap)
		challenge := big.NewInt(31337)
		ok := runProof(t, desc, challenge, func(inst *Instance) {
			inst.SetSecretInt64(a, 1)
			inst.SetSecretInt64(b, 2)
			inst.SetSecretInt64(c, 2)
		})
		if !ok {
			t.Fatalf("swap=%v: expected verification to succeed", swap)
		}
	}
}

// TestClaimPublicLayoutRoundTrip checks that a claim_public tape written,
// parsed back into a fresh tape of the same layout, and written again
// yields the identical bytes.
func TestClaimPublicLayoutRoundTrip(t *testing.T) {
	g, h := testBases(t)
	desc := NewProofDescription(g, h)
	a := desc.VarSecret()
	b := desc.VarSecret()
	RequireEqualPublic(desc, a, desc.VarConstInt64(1))

	inst := NewProverInstance(desc, nil)
	inst.SetSecretInt64(a, 1)
	inst.SetSecretInt64(b, 9)
	inst.Update()

	_, claimPublic, err := desc.ClaimGen(inst, nil)
	if err != nil {
		t.Fatalf("ClaimGen: %v", err)
	}
	var buf bytes.Buffer
	if err := claimPublic.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	var roundTrip bytes.Buffer
	roundTrip.Write(buf.Bytes())
	parsed := desc.NewClaimPublic()
	if err := parsed.ReadFrom(&roundTrip); err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	var reserialized bytes.Buffer
	if err := parsed.WriteTo(&reserialized); err != nil {
		t.Fatalf("WriteTo after round trip: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), reserialized.Bytes()) {
		t.Fatalf("read(write(x)) != x as bytes")
	}
}
