package pool

import (
	"math/big"
	"testing"
)

func TestGetBigIntIsZeroed(t *testing.T) {
	v := GetBigInt()
	defer PutBigInt(v)
	if v.Sign() != 0 {
		t.Fatalf("expected zero-valued big.Int from pool, got %v", v)
	}
}

func TestPutBigIntZeroesBeforeReuse(t *testing.T) {
	v := GetBigInt()
	v.SetInt64(12345)
	PutBigInt(v)

	// Drain enough pooled entries to very likely observe the one we put
	// back; every entry the pool hands out must read as zero regardless.
	for i := 0; i < 8; i++ {
		w := GetBigInt()
		if w.Sign() != 0 {
			t.Fatalf("pool returned a non-zeroed big.Int: %v", w)
		}
		PutBigInt(w)
	}
}

func TestBigIntSliceRoundTrip(t *testing.T) {
	s := GetBigIntSlice()
	if len(s) != 0 {
		t.Fatalf("expected zero-length slice, got len %d", len(s))
	}
	s = append(s, big.NewInt(1), big.NewInt(2))
	PutBigIntSlice(s)

	s2 := GetBigIntSlice()
	if len(s2) != 0 {
		t.Fatalf("expected zero-length slice after Put/Get cycle, got len %d", len(s2))
	}
}

func TestG1AffinePoolRoundTrip(t *testing.T) {
	p := GetG1Affine()
	if !p.IsInfinity() {
		t.Fatalf("expected a fresh pooled G1Affine to be the zero value")
	}
	PutG1Affine(p)
}

func TestG2AffineSlicePoolRoundTrip(t *testing.T) {
	s := GetG2AffineSlice()
	if len(s) != 0 {
		t.Fatalf("expected zero-length slice, got len %d", len(s))
	}
	PutG2AffineSlice(s)
}

func TestDefaultPoolIsShared(t *testing.T) {
	if Default == nil {
		t.Fatalf("Default pool must be initialized")
	}
	v := Default.GetBigInt()
	Default.PutBigInt(v)
}
