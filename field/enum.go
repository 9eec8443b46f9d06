package field

// Enum is a bidirectional value to label mapping attached to integer
// fields for display. It has no effect on parsing or emission.
//
// Duplicate labels or values overwrite prior bindings in both directions:
// last write wins.
type Enum struct {
	byVal  map[uint64]string
	byName map[string]uint64
}

// NewEnum creates an empty enumeration table.
func NewEnum() *Enum {
	return &Enum{
		byVal:  make(map[uint64]string),
		byName: make(map[string]uint64),
	}
}

// Set binds name to val and returns the table for chaining.
func (e *Enum) Set(name string, val uint64) *Enum {
	e.byVal[val] = name
	e.byName[name] = val
	return e
}

// Name returns the label bound to val.
func (e *Enum) Name(val uint64) (string, bool) {
	name, ok := e.byVal[val]
	return name, ok
}

// Value returns the value bound to name.
func (e *Enum) Value(name string) (uint64, bool) {
	val, ok := e.byName[name]
	return val, ok
}
