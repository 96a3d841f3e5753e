package hdf5gen

import (
	"errors"
	"fmt"

	"github.com/kolkov/hdf5gen/internal/ast"
	"github.com/kolkov/hdf5gen/internal/types"
)

// UnsupportedTypeError reports a type that matches no known leaf or
// container shape.
type UnsupportedTypeError struct {
	Type    string // Type as given
	Message string // What did not match
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported type %q: %s", e.Type, e.Message)
}

// MalformedTreeError reports a syntax tree that could not be rendered.
type MalformedTreeError struct {
	Message string // Error description
}

func (e *MalformedTreeError) Error() string {
	return fmt.Sprintf("malformed tree: %s", e.Message)
}

// IsUnsupported reports whether err is an UnsupportedTypeError.
func IsUnsupported(err error) bool {
	var ue *UnsupportedTypeError
	return errors.As(err, &ue)
}

// convertError maps internal error types to the public ones.
func convertError(typ string, err error) error {
	var ue *types.UnsupportedTypeError
	if errors.As(err, &ue) {
		return &UnsupportedTypeError{Type: typ, Message: ue.Message}
	}
	var me *ast.MalformedTreeError
	if errors.As(err, &me) {
		return &MalformedTreeError{Message: me.Error()}
	}
	return err
}
