package clsign

import (
	"io"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/dzamkov/zkp/wiretype"
)

// SignatureType describes the wire layout of a Signature for a scheme with
// n-1 A/B components: it is the type contributed to a proof description's
// supplement tape by the signature-possession block.
type SignatureType struct {
	N int
}

func (t SignatureType) New() wiretype.Value {
	return &SignatureValue{
		a:  wiretype.G1Type{}.New().(*wiretype.G1Value),
		b:  wiretype.G1Type{}.New().(*wiretype.G1Value),
		c:  wiretype.G1Type{}.New().(*wiretype.G1Value),
		ak: wiretype.ArrayType{Item: wiretype.G1Type{}, Count: t.N - 1}.New().(*wiretype.ArrayValue),
		bk: wiretype.ArrayType{Item: wiretype.G1Type{}, Count: t.N - 1}.New().(*wiretype.ArrayValue),
	}
}

// SignatureValue is the wire-layout counterpart of a Signature, held in an
// Instance's supplement slab.
type SignatureValue struct {
	a, b, c *wiretype.G1Value
	ak, bk  *wiretype.ArrayValue
}

func (v *SignatureValue) WriteTo(w io.Writer) error {
	for _, part := range []wiretype.Value{v.a, v.b, v.c, v.ak, v.bk} {
		if err := part.WriteTo(w); err != nil {
			return err
		}
	}
	return nil
}

func (v *SignatureValue) ReadFrom(r io.Reader) error {
	for _, part := range []wiretype.Value{v.a, v.b, v.c, v.ak, v.bk} {
		if err := part.ReadFrom(r); err != nil {
			return err
		}
	}
	return nil
}

func (v *SignatureValue) Clear() {
	v.a.Clear()
	v.b.Clear()
	v.c.Clear()
	v.ak.Clear()
	v.bk.Clear()
}

// Set copies sig's components into v.
func (v *SignatureValue) Set(sig *Signature) {
	v.a.Point = sig.A
	v.b.Point = sig.B
	v.c.Point = sig.C
	for k := 0; k < v.ak.Len(); k++ {
		v.ak.At(k).(*wiretype.G1Value).Point = sig.AK[k]
	}
	for k := 0; k < v.bk.Len(); k++ {
		v.bk.At(k).(*wiretype.G1Value).Point = sig.BK[k]
	}
}

// Signature reconstructs a *Signature from v's current contents.
func (v *SignatureValue) Signature() *Signature {
	sig := &Signature{
		A:  v.a.Point,
		B:  v.b.Point,
		C:  v.c.Point,
		AK: make([]bls12381.G1Affine, v.ak.Len()),
		BK: make([]bls12381.G1Affine, v.bk.Len()),
	}
	for k := range sig.AK {
		sig.AK[k] = v.ak.At(k).(*wiretype.G1Value).Point
	}
	for k := range sig.BK {
		sig.BK[k] = v.bk.At(k).(*wiretype.G1Value).Point
	}
	return sig
}
