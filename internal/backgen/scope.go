// Package backgen synthesizes the C++ fragments that size and declare a
// value read from a table column of arbitrary, possibly nested, type.
//
// Every builder is a pure function of its arguments. Variable names carry
// the nesting depth and the role path of the position they describe
// (jlen0, strlen1KEY, jlen2VALUEKEY), so sibling positions never share a
// name and rebuilding a fragment always yields an equal tree.
package backgen

import "strconv"

// Role names an element position inside a container.
type Role string

const (
	RoleKey   Role = "KEY"   // first inner type
	RoleValue Role = "VALUE" // second inner type
)

// roles is indexed by inner-type position.
var roles = [...]Role{RoleKey, RoleValue}

// Scope is the naming context of one position: its depth below the
// column value and the roles taken on the way down. The zero Scope is
// the column value itself.
type Scope struct {
	Depth int
	Role  Role // Concatenated role path, empty at depth 0
}

// Suffix returns the variable name suffix, e.g. "0" or "1KEY".
func (s Scope) Suffix() string {
	return strconv.Itoa(s.Depth) + string(s.Role)
}

// Child returns the scope of an inner position with role r.
func (s Scope) Child(r Role) Scope {
	return Scope{Depth: s.Depth + 1, Role: s.Role + r}
}
