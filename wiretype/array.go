package wiretype

import "io"

// ArrayType describes a fixed-count array of one inner type.
type ArrayType struct {
	Item  Type
	Count int
}

func (t ArrayType) New() Value {
	items := make([]Value, t.Count)
	for i := range items {
		items[i] = t.Item.New()
	}
	return &ArrayValue{items: items}
}

// ArrayValue holds the concrete items of an ArrayType, addressable by index.
type ArrayValue struct {
	items []Value
}

// Len returns the number of items in the array.
func (v *ArrayValue) Len() int { return len(v.items) }

// At returns the item at the given index.
func (v *ArrayValue) At(i int) Value { return v.items[i] }

func (v *ArrayValue) WriteTo(w io.Writer) error {
	for _, item := range v.items {
		if err := item.WriteTo(w); err != nil {
			return err
		}
	}
	return nil
}

func (v *ArrayValue) ReadFrom(r io.Reader) error {
	for _, item := range v.items {
		if err := item.ReadFrom(r); err != nil {
			return err
		}
	}
	return nil
}

func (v *ArrayValue) Clear() {
	for _, item := range v.items {
		item.Clear()
	}
}
