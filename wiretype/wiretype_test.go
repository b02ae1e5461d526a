package wiretype

import (
	"bytes"
	"math/big"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

func TestScalarRoundTrip(t *testing.T) {
	v := ScalarType{}.New().(*ScalarValue)
	v.Int.SetInt64(424242)

	var buf bytes.Buffer
	if err := v.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	out := ScalarType{}.New().(*ScalarValue)
	if err := out.ReadFrom(&buf); err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	if out.Int.Cmp(v.Int) != 0 {
		t.Fatalf("got %v, want %v", out.Int, v.Int)
	}
}

func TestScalarClear(t *testing.T) {
	v := ScalarType{}.New().(*ScalarValue)
	v.Int.SetInt64(7)
	v.Clear()
	if v.Int.Sign() != 0 {
		t.Fatalf("expected zero after Clear, got %v", v.Int)
	}
}

func TestG1RoundTrip(t *testing.T) {
	_, _, g1, _ := bls12381.Generators()
	v := G1Type{}.New().(*G1Value)
	v.Point = g1

	var buf bytes.Buffer
	if err := v.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	out := G1Type{}.New().(*G1Value)
	if err := out.ReadFrom(&buf); err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	if !out.Point.Equal(&v.Point) {
		t.Fatalf("round-tripped point does not match")
	}
}

func TestArrayRoundTrip(t *testing.T) {
	at := ArrayType{Item: ScalarType{}, Count: 3}
	v := at.New().(*ArrayValue)
	for i := 0; i < v.Len(); i++ {
		v.At(i).(*ScalarValue).Int.SetInt64(int64(i * i))
	}

	var buf bytes.Buffer
	if err := v.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	out := at.New().(*ArrayValue)
	if err := out.ReadFrom(&buf); err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	for i := 0; i < out.Len(); i++ {
		want := int64(i * i)
		got := out.At(i).(*ScalarValue).Int
		if got.Cmp(big.NewInt(want)) != 0 {
			t.Fatalf("item %d: got %v, want %d", i, got, want)
		}
	}
}

func TestCompositeNamedAccess(t *testing.T) {
	ct := &CompositeType{Parts: []Part{
		{Name: "a", Type: ScalarType{}},
		{Name: "b", Type: G1Type{}},
	}}
	v := ct.New().(*CompositeValue)
	v.Part("a").(*ScalarValue).Int.SetInt64(5)
	_, _, g1, _ := bls12381.Generators()
	v.Part("b").(*G1Value).Point = g1

	var buf bytes.Buffer
	if err := v.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	out := ct.New().(*CompositeValue)
	if err := out.ReadFrom(&buf); err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	if out.Part("a").(*ScalarValue).Int.Cmp(big.NewInt(5)) != 0 {
		t.Fatalf("part a mismatch")
	}
	if !out.Part("b").(*G1Value).Point.Equal(&g1) {
		t.Fatalf("part b mismatch")
	}
}

func TestCompositePartPanicsOnUnknownName(t *testing.T) {
	ct := &CompositeType{Parts: []Part{{Name: "a", Type: ScalarType{}}}}
	v := ct.New().(*CompositeValue)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unknown part name")
		}
	}()
	v.Part("nope")
}

func TestMultiTypeInsertionOrder(t *testing.T) {
	mt := &MultiType{}
	i0 := mt.Append(ScalarType{})
	i1 := mt.Append(G1Type{})
	if i0 != 0 || i1 != 1 {
		t.Fatalf("unexpected slot indices: %d, %d", i0, i1)
	}

	v := mt.New().(*CompositeValue)
	if v.Len() != 2 {
		t.Fatalf("expected 2 parts, got %d", v.Len())
	}
	v.At(i0).(*ScalarValue).Int.SetInt64(99)
	if v.At(i0).(*ScalarValue).Int.Cmp(big.NewInt(99)) != 0 {
		t.Fatalf("slot 0 did not retain value")
	}
}
