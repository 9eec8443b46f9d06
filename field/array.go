package field

import "strconv"

// Array is a structure whose children are anonymous, index-named,
// homogeneous elements. Element 0 is the first appended field.
type Array struct {
	Struct
}

// NewArray creates an empty array.
func NewArray() *Array {
	a := &Array{}
	a.Struct.name = "array"
	a.Struct.fields = make(map[string]Field)
	return a
}

// AddElement attaches f under the next integer index.
func (a *Array) AddElement(f Field) error {
	return a.Attach(strconv.Itoa(len(a.order)), f)
}

// AddElements attaches count freshly constructed elements.
func (a *Array) AddElements(count int, factory func() Field) error {
	for i := 0; i < count; i++ {
		if err := a.AddElement(factory()); err != nil {
			return err
		}
	}
	return nil
}

// Index returns the element at index i.
func (a *Array) Index(i int) (Field, error) {
	return a.Get(strconv.Itoa(i))
}

// Len returns the number of elements.
func (a *Array) Len() int {
	return len(a.order)
}

// MakeArray builds an array with count elements from the factory. It
// replaces per-layout array type definitions: the factory fixes the
// element type, repetition fixes the count.
func MakeArray(count int, factory func() Field) *Array {
	a := NewArray()
	_ = a.AddElements(count, factory)
	return a
}
