package wiretype

import "io"

// Part names one labeled member of a CompositeType.
type Part struct {
	Name string
	Type Type
}

// CompositeType describes an ordered set of labeled parts of possibly
// distinct types. Parts are written and read in declaration order.
type CompositeType struct {
	Parts []Part
}

func (t *CompositeType) New() Value {
	values := make([]Value, len(t.Parts))
	index := make(map[string]int, len(t.Parts))
	for i, p := range t.Parts {
		values[i] = p.Type.New()
		index[p.Name] = i
	}
	return &CompositeValue{values: values, index: index}
}

// CompositeValue holds the concrete parts of a CompositeType.
type CompositeValue struct {
	values []Value
	index  map[string]int
}

// Part returns the part value with the given name. It panics if no such
// part was declared — a misuse condition, not a runtime error.
func (v *CompositeValue) Part(name string) Value {
	i, ok := v.index[name]
	if !ok {
		panic("wiretype: no such composite part: " + name)
	}
	return v.values[i]
}

// At returns the part value at the given insertion index.
func (v *CompositeValue) At(i int) Value { return v.values[i] }

// Len returns the number of parts.
func (v *CompositeValue) Len() int { return len(v.values) }

func (v *CompositeValue) WriteTo(w io.Writer) error {
	for _, part := range v.values {
		if err := part.WriteTo(w); err != nil {
			return err
		}
	}
	return nil
}

func (v *CompositeValue) ReadFrom(r io.Reader) error {
	for _, part := range v.values {
		if err := part.ReadFrom(r); err != nil {
			return err
		}
	}
	return nil
}

func (v *CompositeValue) Clear() {
	for _, part := range v.values {
		part.Clear()
	}
}

// MultiType is an engine-internal composite whose members are contributed
// by each block in insertion order, rather than declared up front. Blocks
// call Append while the owning proof description is still open; Append
// returns the positional index the block must remember to find its slot
// back in a MultiValue later.
type MultiType struct {
	parts []Type
}

// Append adds one more part to the multi-type and returns its index.
func (t *MultiType) Append(part Type) int {
	t.parts = append(t.parts, part)
	return len(t.parts) - 1
}

func (t *MultiType) New() Value {
	values := make([]Value, len(t.parts))
	for i, p := range t.parts {
		values[i] = p.New()
	}
	return &CompositeValue{values: values}
}
