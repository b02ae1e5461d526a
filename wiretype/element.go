package wiretype

import (
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// ScalarType describes a single field element, represented as a *big.Int
// reduced modulo the scalar field order.
type ScalarType struct{}

func (ScalarType) New() Value { return &ScalarValue{Int: new(big.Int)} }

// ScalarValue holds one scalar.
type ScalarValue struct {
	Int *big.Int
}

func (v *ScalarValue) WriteTo(w io.Writer) error {
	return writeLengthPrefixed(w, v.Int.Bytes())
}

func (v *ScalarValue) ReadFrom(r io.Reader) error {
	b, err := readLengthPrefixed(r)
	if err != nil {
		return err
	}
	v.Int.SetBytes(b)
	return nil
}

func (v *ScalarValue) Clear() { v.Int.SetInt64(0) }

// G1Type describes a single G1 group element (the commitment group and
// signature-component group).
type G1Type struct{}

func (G1Type) New() Value { return &G1Value{} }

// G1Value holds one G1 affine point.
type G1Value struct {
	Point bls12381.G1Affine
}

func (v *G1Value) WriteTo(w io.Writer) error {
	b := v.Point.Marshal()
	return writeLengthPrefixed(w, b)
}

func (v *G1Value) ReadFrom(r io.Reader) error {
	b, err := readLengthPrefixed(r)
	if err != nil {
		return err
	}
	return v.Point.Unmarshal(b)
}

func (v *G1Value) Clear() { v.Point = bls12381.G1Affine{} }

// G2Type describes a single G2 group element (the CL public-key group).
type G2Type struct{}

func (G2Type) New() Value { return &G2Value{} }

// G2Value holds one G2 affine point.
type G2Value struct {
	Point bls12381.G2Affine
}

func (v *G2Value) WriteTo(w io.Writer) error {
	return writeLengthPrefixed(w, v.Point.Marshal())
}

func (v *G2Value) ReadFrom(r io.Reader) error {
	b, err := readLengthPrefixed(r)
	if err != nil {
		return err
	}
	return v.Point.Unmarshal(b)
}

func (v *G2Value) Clear() { v.Point = bls12381.G2Affine{} }

// GTType describes a single pairing-target-group element.
type GTType struct{}

func (GTType) New() Value { return &GTValue{} }

// GTValue holds one GT element.
type GTValue struct {
	Elem bls12381.GT
}

func (v *GTValue) WriteTo(w io.Writer) error {
	b := v.Elem.Bytes()
	return writeLengthPrefixed(w, b[:])
}

func (v *GTValue) ReadFrom(r io.Reader) error {
	b, err := readLengthPrefixed(r)
	if err != nil {
		return err
	}
	return v.Elem.SetBytes(b)
}

func (v *GTValue) Clear() { v.Elem = bls12381.GT{} }
