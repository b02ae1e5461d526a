package group

import (
	"math/big"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

func TestScalarMulAndAddG1(t *testing.T) {
	g, _ := Generators()
	three := ScalarMulG1(g, big.NewInt(3))
	two := ScalarMulG1(g, big.NewInt(2))
	one := ScalarMulG1(g, big.NewInt(1))
	sum := AddG1(two, one)
	if !EqualG1(three, sum) {
		t.Fatalf("3*g != 2*g + 1*g")
	}
}

func TestCommitG1Consistency(t *testing.T) {
	g, _ := Generators()
	h := DeriveG1Generators("commit-test", 1)[0]
	x := big.NewInt(11)
	o := big.NewInt(22)

	c1 := CommitG1(g, h, x, o)
	c2 := AddG1(ScalarMulG1(g, x), ScalarMulG1(h, o))
	if !EqualG1(c1, c2) {
		t.Fatalf("CommitG1 does not match manual g^x h^o")
	}
}

func TestDeriveG1GeneratorsDeterministicAndDistinct(t *testing.T) {
	a := DeriveG1Generators("seed", 3)
	b := DeriveG1Generators("seed", 3)
	for i := range a {
		if !EqualG1(a[i], b[i]) {
			t.Fatalf("derivation is not deterministic at index %d", i)
		}
	}
	if EqualG1(a[0], a[1]) || EqualG1(a[1], a[2]) {
		t.Fatalf("derived generators should be pairwise distinct")
	}

	other := DeriveG1Generators("different-seed", 1)
	if EqualG1(a[0], other[0]) {
		t.Fatalf("different seeds should not collide")
	}
}

func TestDeriveG2Generators(t *testing.T) {
	a := DeriveG2Generators("seed-g2", 2)
	if EqualG2(a[0], a[1]) {
		t.Fatalf("derived G2 generators should be distinct")
	}
}

func TestRandomScalarInRange(t *testing.T) {
	s, err := RandomScalar(nil)
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	if s.Sign() < 0 || s.Cmp(Order) >= 0 {
		t.Fatalf("scalar out of range: %v", s)
	}
}

func TestReduceAndNegate(t *testing.T) {
	x := new(big.Int).Add(Order, big.NewInt(5))
	if Reduce(x).Cmp(big.NewInt(5)) != 0 {
		t.Fatalf("Reduce(Order+5) != 5")
	}
	neg := Negate(big.NewInt(5))
	sum := new(big.Int).Add(neg, big.NewInt(5))
	sum.Mod(sum, Order)
	if sum.Sign() != 0 {
		t.Fatalf("Negate(5)+5 should be 0 mod Order, got %v", sum)
	}
}

func TestPairBilinearity(t *testing.T) {
	g1, g2 := Generators()
	a := big.NewInt(4)
	b := big.NewInt(5)

	lhs, err := Pair(ScalarMulG1(g1, a), ScalarMulG2(g2, b))
	if err != nil {
		t.Fatalf("Pair: %v", err)
	}

	base, err := Pair(g1, g2)
	if err != nil {
		t.Fatalf("Pair: %v", err)
	}
	ab := new(big.Int).Mul(a, b)
	rhs := GTExp(base, ab)

	if !GTEqual(lhs, rhs) {
		t.Fatalf("<a*g1, b*g2> != <g1,g2>^(ab)")
	}
}

func TestGTProductOfExps(t *testing.T) {
	g1, g2 := Generators()
	base, err := Pair(g1, g2)
	if err != nil {
		t.Fatalf("Pair: %v", err)
	}
	other, err := Pair(ScalarMulG1(g1, big.NewInt(2)), g2)
	if err != nil {
		t.Fatalf("Pair: %v", err)
	}

	got := GTProductOfExps([]bls12381.GT{base, other}, []*big.Int{big.NewInt(3), big.NewInt(5)})
	want := GTMul(GTExp(base, big.NewInt(3)), GTExp(other, big.NewInt(5)))
	if !GTEqual(got, want) {
		t.Fatalf("GTProductOfExps does not match manual product")
	}

	identity := GTProductOfExps(nil, nil)
	if !GTEqual(GTMul(identity, base), base) {
		t.Fatalf("empty GTProductOfExps should be the multiplicative identity")
	}
}

func TestFixedG2Pairer(t *testing.T) {
	g1, g2 := Generators()
	direct, err := Pair(g1, g2)
	if err != nil {
		t.Fatalf("Pair: %v", err)
	}
	pairer := NewFixedG2Pairer(g2)
	viaPairer, err := pairer.Pair(g1)
	if err != nil {
		t.Fatalf("pairer.Pair: %v", err)
	}
	if !GTEqual(direct, viaPairer) {
		t.Fatalf("FixedG2Pairer result differs from direct Pair")
	}
}
