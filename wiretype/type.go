package wiretype

import "io"

// Type describes the shape of one payload slot: a scalar, a group element,
// a fixed-size array of one inner type, an ordered composite, or void.
// New returns a freshly zero-valued Value matching the shape.
type Type interface {
	New() Value
}

// Value is a concrete instance of some Type. It can be serialized to and
// parsed from a byte stream in the canonical wire format, and cleared to
// zero its contents before release (secret-buffer hygiene).
type Value interface {
	WriteTo(w io.Writer) error
	ReadFrom(r io.Reader) error
	Clear()
}

// VoidType is the zero-sized type: it carries no data.
type VoidType struct{}

func (VoidType) New() Value { return voidValue{} }

type voidValue struct{}

func (voidValue) WriteTo(io.Writer) error { return nil }
func (voidValue) ReadFrom(io.Reader) error { return nil }
func (voidValue) Clear()                   {}
