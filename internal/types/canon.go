// Package types maps C++ / database type descriptors to canonical tags.
//
// A canonical tag (Canon) is either a leaf, such as INT or VL_STRING, or a
// container shape wrapping one or two inner tags, such as
// (MAP, STRING, (VECTOR, INT)). Tags nest to any depth.
package types

import "strings"

// Kind classifies a canonical tag by how its values are stored in a table.
type Kind uint8

const (
	KindInvalid   Kind = iota // Not a known tag
	KindPrimitive             // Fixed-size value, counted with sizeof
	KindString                // Fixed-length string, length from the array dims
	KindVLString              // Variable-length value stored as a hash reference
	KindContainer             // Shape wrapping inner tags
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindString:
		return "string"
	case KindVLString:
		return "vl_string"
	case KindContainer:
		return "container"
	default:
		return "invalid"
	}
}

// Canon is a canonical type tag.
// Canon values are immutable; Args returns a copy.
type Canon struct {
	name string
	args []Canon
}

// Leaf returns the leaf tag with the given name, e.g. Leaf("INT").
func Leaf(name string) Canon {
	return Canon{name: name}
}

// Compose returns a container tag, e.g. Compose("MAP", Leaf("STRING"), Leaf("INT")).
func Compose(shape string, args ...Canon) Canon {
	return Canon{name: shape, args: append([]Canon(nil), args...)}
}

// Name returns the leaf symbol or the container shape.
func (c Canon) Name() string { return c.name }

// Args returns the inner tags of a container (nil for leaves).
func (c Canon) Args() []Canon {
	if len(c.args) == 0 {
		return nil
	}
	return append([]Canon(nil), c.args...)
}

// IsLeaf reports whether c has no inner tags.
func (c Canon) IsLeaf() bool { return len(c.args) == 0 }

// Kind returns the storage classification of c.
func (c Canon) Kind() Kind {
	if c.IsLeaf() {
		if l, ok := leaves[c.name]; ok {
			return l.kind
		}
		return KindInvalid
	}
	if _, ok := shapes[c.name]; ok {
		return KindContainer
	}
	return KindInvalid
}

// Equal reports whether c and o are the same tag.
func (c Canon) Equal(o Canon) bool {
	if c.name != o.name || len(c.args) != len(o.args) {
		return false
	}
	for i := range c.args {
		if !c.args[i].Equal(o.args[i]) {
			return false
		}
	}
	return true
}

// Check returns an UnsupportedTypeError if c or any inner tag is unknown
// or a container has the wrong number of inner tags.
func (c Canon) Check() error {
	if c.IsLeaf() {
		if _, ok := leaves[c.name]; !ok {
			return unsupported(c.String(), "unknown leaf %q", c.name)
		}
		return nil
	}
	s, ok := shapes[c.name]
	if !ok {
		return unsupported(c.String(), "unknown container shape %q", c.name)
	}
	if len(c.args) != s.arity {
		return unsupported(c.String(), "%s takes %d inner types, got %d", c.name, s.arity, len(c.args))
	}
	for _, a := range c.args {
		if err := a.Check(); err != nil {
			return err
		}
	}
	return nil
}

// String returns the tuple form: INT, (MAP, STRING, (VECTOR, INT)).
func (c Canon) String() string {
	if c.IsLeaf() {
		return c.name
	}
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(c.name)
	for _, a := range c.args {
		sb.WriteString(", ")
		sb.WriteString(a.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// DB returns the database type name: MAP_STRING_VECTOR_INT.
func (c Canon) DB() string {
	if c.IsLeaf() {
		return c.name
	}
	parts := make([]string, 0, len(c.args)+1)
	parts = append(parts, c.name)
	for _, a := range c.args {
		parts = append(parts, a.DB())
	}
	return strings.Join(parts, "_")
}

// Cpp returns the C++ spelling: std::map<std::string,std::vector<int>>.
// Unknown tags spell as their name.
func (c Canon) Cpp() string {
	if c.IsLeaf() {
		if l, ok := leaves[c.name]; ok {
			return l.cpp
		}
		return c.name
	}
	name := c.name
	if s, ok := shapes[c.name]; ok {
		name = s.cpp
	}
	parts := make([]string, len(c.args))
	for i, a := range c.args {
		parts[i] = a.Cpp()
	}
	return name + "<" + strings.Join(parts, ",") + ">"
}
