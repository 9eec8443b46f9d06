package field

import (
	"fmt"
	"iter"

	"github.com/wippyai/bytefield/errors"
)

// Struct is a composite field holding an ordered set of uniquely named
// children. Insertion order is layout order; child offsets are derived
// from current sizes on every walk and never stored.
type Struct struct {
	callbacks
	name     string
	order    []string
	fields   map[string]Field
	intOrder *ByteOrder
}

// NewStruct creates an empty structure. The name is used only for display.
func NewStruct(name string) *Struct {
	return &Struct{
		name:   name,
		fields: make(map[string]Field),
	}
}

// WithByteOrder sets a byte order override applied to every integer field
// attached afterwards. It does not touch fields already attached.
func (s *Struct) WithByteOrder(o ByteOrder) *Struct {
	s.intOrder = &o
	return s
}

func (s *Struct) inner() *Struct { return s }

func (s *Struct) TypeName() string {
	if s.name != "" {
		return s.name
	}
	return "struct"
}

func (s *Struct) IsPrim() bool { return false }

// Attach registers f under name. If the name already exists the field is
// replaced in place, keeping its position in the ordering; a new name is
// appended to the end.
func (s *Struct) Attach(name string, f Field) error {
	if f == nil {
		return errors.InvalidField(errors.PhaseAttach, nil, name, "nil field")
	}
	if s.intOrder != nil {
		if i, ok := f.(*Int); ok {
			i.order = *s.intOrder
		}
	}
	if _, exists := s.fields[name]; !exists {
		s.order = append(s.order, name)
	}
	s.fields[name] = f
	return nil
}

// AttachStrict registers f under name, failing if the name is taken.
func (s *Struct) AttachStrict(name string, f Field) error {
	if _, exists := s.fields[name]; exists {
		return errors.DuplicateName(errors.PhaseAttach, nil, name)
	}
	return s.Attach(name, f)
}

// Get returns the field registered under name.
func (s *Struct) Get(name string) (Field, error) {
	f, ok := s.fields[name]
	if !ok {
		return nil, errors.UnknownField(errors.PhaseValue, nil, name)
	}
	return f, nil
}

// GetStruct returns the nested structure registered under name.
func (s *Struct) GetStruct(name string) (*Struct, error) {
	f, err := s.Get(name)
	if err != nil {
		return nil, err
	}
	c, ok := f.(composite)
	if !ok {
		return nil, errors.InvalidValue(errors.PhaseValue, []string{name}, nil,
			fmt.Sprintf("field is %s, not a struct", f.TypeName()))
	}
	return c.inner(), nil
}

// Has reports whether a field with the given name exists. It never fails.
func (s *Struct) Has(name string) bool {
	_, ok := s.fields[name]
	return ok
}

// Names returns the field names in layout order.
func (s *Struct) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Fields iterates (name, field) pairs in layout order. The sequence is
// restartable.
func (s *Struct) Fields() iter.Seq2[string, Field] {
	return func(yield func(string, Field) bool) {
		for _, name := range s.order {
			if !yield(name, s.fields[name]) {
				return
			}
		}
	}
}

// Set assigns a raw value to the primitive registered under name. The
// value is normalized by the primitive; a nested structure cannot be set.
func (s *Struct) Set(name string, v any) error {
	f, err := s.Get(name)
	if err != nil {
		return err
	}
	p, ok := f.(Prim)
	if !ok {
		return errors.InvalidValue(errors.PhaseValue, []string{name}, v, "cannot assign a raw value to a struct")
	}
	if err := p.setValue(v); err != nil {
		if e, ok := err.(*errors.Error); ok && len(e.Path) == 0 {
			e.Path = []string{name}
		}
		return err
	}
	return nil
}

// SetPath assigns a raw value to a primitive nested below this structure.
func (s *Struct) SetPath(path []string, v any) error {
	if len(path) == 0 {
		return errors.UnknownField(errors.PhaseValue, nil, "")
	}
	cur := s
	for _, name := range path[:len(path)-1] {
		sub, err := cur.GetStruct(name)
		if err != nil {
			return err
		}
		cur = sub
	}
	return cur.Set(path[len(path)-1], v)
}

// Uint returns the unsigned value of the integer field at name.
func (s *Struct) Uint(name string) (uint64, error) {
	f, err := s.intField(name)
	if err != nil {
		return 0, err
	}
	return f.Uint(), nil
}

// Int returns the signed value of the integer field at name.
func (s *Struct) Int(name string) (int64, error) {
	f, err := s.intField(name)
	if err != nil {
		return 0, err
	}
	return f.Int(), nil
}

// Str returns the value of the text field at name.
func (s *Struct) Str(name string) (string, error) {
	f, err := s.Get(name)
	if err != nil {
		return "", err
	}
	switch t := f.(type) {
	case *CStr:
		return t.Value(), nil
	case *ZStr:
		return t.Value(), nil
	default:
		return "", errors.InvalidValue(errors.PhaseValue, []string{name}, nil,
			fmt.Sprintf("field is %s, not text", f.TypeName()))
	}
}

// Bytes returns the value of the binary field at name.
func (s *Struct) Bytes(name string) ([]byte, error) {
	f, err := s.Get(name)
	if err != nil {
		return nil, err
	}
	t, ok := f.(*Bytes)
	if !ok {
		return nil, errors.InvalidValue(errors.PhaseValue, []string{name}, nil,
			fmt.Sprintf("field is %s, not bytes", f.TypeName()))
	}
	return t.Value(), nil
}

func (s *Struct) intField(name string) (*Int, error) {
	f, err := s.Get(name)
	if err != nil {
		return nil, err
	}
	t, ok := f.(*Int)
	if !ok {
		return nil, errors.InvalidValue(errors.PhaseValue, []string{name}, nil,
			fmt.Sprintf("field is %s, not an integer", f.TypeName()))
	}
	return t, nil
}

// Size returns the current total size of the structure: the offset of the
// last transitively contained primitive plus its size, or 0 when the
// structure contains no primitives.
func (s *Struct) Size() int {
	total := 0
	_ = s.Walk(func(off int, path []string, p Prim) error {
		total = off + p.Size()
		return nil
	})
	return total
}
