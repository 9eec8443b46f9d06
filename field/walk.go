package field

// Walk performs a pre-order depth-first traversal of the structure and
// invokes fn for every transitively contained primitive with its byte
// offset relative to the structure and its name path.
//
// Offsets are recomputed from current sizes on every call, in flight: when
// fn resizes a primitive (as parsing a NUL terminated string does), every
// later primitive's offset reflects the new size within the same walk.
// Nothing is memoized between walks.
//
// No alignment padding is inserted between fields.
func (s *Struct) Walk(fn func(off int, path []string, p Prim) error) error {
	off := 0
	return s.walk(&off, nil, fn)
}

func (s *Struct) walk(off *int, path []string, fn func(off int, path []string, p Prim) error) error {
	for _, name := range s.order {
		// full-capacity slice so sibling paths never share backing
		childPath := append(path[:len(path):len(path)], name)

		f := s.fields[name]
		if c, ok := f.(composite); ok {
			if err := c.inner().walk(off, childPath, fn); err != nil {
				return err
			}
			continue
		}

		p := f.(Prim)
		if err := fn(*off, childPath, p); err != nil {
			return err
		}
		*off += p.Size()
	}
	return nil
}
