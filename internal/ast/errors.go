package ast

import (
	"fmt"
	"reflect"
)

// MalformedTreeError reports a tree a visitor cannot render: a nil or
// unknown node, or a field holding a node of the wrong shape.
type MalformedTreeError struct {
	Node    string // Variant (or Go type) of the offending node
	Field   string // Field of the parent holding it (optional)
	Message string // Human-readable description
}

// Error returns a formatted error message.
func (e *MalformedTreeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("malformed tree: %s.%s: %s", e.Node, e.Field, e.Message)
	}
	return fmt.Sprintf("malformed tree: %s: %s", e.Node, e.Message)
}

// Malformed aborts the current visit with a MalformedTreeError.
// Visitors call it; entry points convert it back to an error with Recover.
func Malformed(node, field, format string, args ...any) {
	panic(&MalformedTreeError{
		Node:    node,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	})
}

// Recover converts a MalformedTreeError panic into *errp.
// Any other panic is re-raised. It must be called directly by defer:
//
//	defer ast.Recover(&err)
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if mt, ok := r.(*MalformedTreeError); ok {
		*errp = mt
		return
	}
	panic(r)
}

// isNil reports whether n is nil or a typed nil pointer.
func isNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
