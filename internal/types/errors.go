package types

import "fmt"

// UnsupportedTypeError reports a type descriptor that matches no known
// leaf or container shape.
type UnsupportedTypeError struct {
	Type    string // Offending spelling, database name or tag
	Message string // What did not match
}

// Error returns a formatted error message.
func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported type %q: %s", e.Type, e.Message)
}

func unsupported(typ, format string, args ...any) *UnsupportedTypeError {
	return &UnsupportedTypeError{
		Type:    typ,
		Message: fmt.Sprintf(format, args...),
	}
}
