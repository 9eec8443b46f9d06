package field

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a textual rendering of the structure to w: one line per
// field showing the absolute offset (addr plus the field's offset), type
// name, field name, decoded value, and raw representation. Nested
// structures recurse with increased indentation.
//
// The output is diagnostic only and not part of the binary contract.
func (s *Struct) Dump(w io.Writer, addr int) error {
	return s.dump(w, addr, 0, "")
}

func (s *Struct) dump(w io.Writer, addr, indent int, label string) error {
	pad := strings.Repeat(" ", indent)

	header := s.TypeName()
	if label != "" {
		header = fmt.Sprintf("%s %s", s.TypeName(), label)
	}
	if _, err := fmt.Fprintf(w, "%08x: %s%s\n", addr, pad, header); err != nil {
		return err
	}

	off := 0
	for _, name := range s.order {
		f := s.fields[name]
		if c, ok := f.(composite); ok {
			if err := c.inner().dump(w, addr+off, indent+2, name); err != nil {
				return err
			}
		} else {
			p := f.(Prim)
			_, err := fmt.Fprintf(w, "%08x: %s  %s %s = %s (%s)\n",
				addr+off, pad, p.TypeName(), name, p.ValueString(), p.RawString())
			if err != nil {
				return err
			}
		}
		off += f.Size()
	}
	return nil
}

// String renders the structure via Dump with address base 0.
func (s *Struct) String() string {
	var b strings.Builder
	_ = s.Dump(&b, 0)
	return b.String()
}
