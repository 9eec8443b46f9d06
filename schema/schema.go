package schema

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/wippyai/bytefield/errors"
	"github.com/wippyai/bytefield/field"
)

// Layout is a TOML layout definition: a named structure with an ordered
// field list.
type Layout struct {
	Name   string     `toml:"name"`
	Fields []FieldDef `toml:"fields"`
}

// FieldDef describes one field of a layout.
type FieldDef struct {
	Name   string           `toml:"name"`
	Type   string           `toml:"type"`
	Size   int              `toml:"size"`
	Endian string           `toml:"endian"`
	Count  int              `toml:"count"`
	Enum   map[string]int64 `toml:"enum"`
	Fields []FieldDef       `toml:"fields"`
	Elem   *FieldDef        `toml:"elem"`
}

// Load reads and parses a layout definition file.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseSchema, errors.KindInvalidData, err,
			fmt.Sprintf("read layout %s", path))
	}
	return Parse(data)
}

// Parse parses a layout definition from TOML bytes.
func Parse(data []byte) (*Layout, error) {
	var l Layout
	if err := toml.Unmarshal(data, &l); err != nil {
		return nil, errors.Wrap(errors.PhaseSchema, errors.KindInvalidData, err, "parse layout")
	}
	if l.Name == "" {
		l.Name = "layout"
	}
	return &l, nil
}

// Build compiles the definition into a structure ready for parsing.
func (l *Layout) Build() (*field.Struct, error) {
	return buildStruct(l.Name, l.Fields, nil)
}

func buildStruct(name string, defs []FieldDef, path []string) (*field.Struct, error) {
	s := field.NewStruct(name)
	for _, def := range defs {
		if def.Name == "" {
			return nil, errors.InvalidField(errors.PhaseSchema, path, def.Type, "field without a name")
		}
		f, err := buildField(def, append(path, def.Name))
		if err != nil {
			return nil, err
		}
		if err := s.AttachStrict(def.Name, f); err != nil {
			return nil, errors.Wrap(errors.PhaseSchema, errors.KindDuplicateName, err,
				fmt.Sprintf("field %q in %q", def.Name, name))
		}
	}
	return s, nil
}

func buildField(def FieldDef, path []string) (field.Field, error) {
	switch def.Type {
	case "u8", "u16", "u32", "u64", "i8", "i16", "i32", "i64":
		return buildInt(def, path)

	case "bytes":
		if def.Size <= 0 {
			return nil, errors.InvalidField(errors.PhaseSchema, path, def.Name, "bytes requires a size")
		}
		return field.NewBytes(def.Size), nil

	case "cstr":
		if def.Size <= 0 {
			return nil, errors.InvalidField(errors.PhaseSchema, path, def.Name, "cstr requires a size")
		}
		return field.NewCStr(def.Size), nil

	case "zstr":
		return field.NewZStr(), nil

	case "struct":
		return buildStruct(def.Name, def.Fields, path)

	case "array":
		if def.Count <= 0 {
			return nil, errors.InvalidField(errors.PhaseSchema, path, def.Name, "array requires a count")
		}
		if def.Elem == nil {
			return nil, errors.InvalidField(errors.PhaseSchema, path, def.Name, "array requires an elem definition")
		}
		a := field.NewArray()
		for i := 0; i < def.Count; i++ {
			elem, err := buildField(*def.Elem, append(path, fmt.Sprintf("%d", i)))
			if err != nil {
				return nil, err
			}
			if err := a.AddElement(elem); err != nil {
				return nil, err
			}
		}
		return a, nil

	case "":
		return nil, errors.InvalidField(errors.PhaseSchema, path, def.Name, "field without a type")

	default:
		return nil, errors.InvalidField(errors.PhaseSchema, path, def.Name,
			fmt.Sprintf("unknown type %q", def.Type))
	}
}

func buildInt(def FieldDef, path []string) (*field.Int, error) {
	var size int
	switch def.Type[1:] {
	case "8":
		size = 1
	case "16":
		size = 2
	case "32":
		size = 4
	case "64":
		size = 8
	}
	f := field.NewInt(size, def.Type[0] == 'i')

	switch def.Endian {
	case "", "little":
	case "big":
		f.WithOrder(field.BigEndian)
	default:
		return nil, errors.InvalidField(errors.PhaseSchema, path, def.Name,
			fmt.Sprintf("unknown endian %q", def.Endian))
	}

	if len(def.Enum) > 0 {
		e := field.NewEnum()
		for label, val := range def.Enum {
			e.Set(label, uint64(val))
		}
		f.WithEnum(e)
	}
	return f, nil
}
