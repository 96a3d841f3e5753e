package backgen

import "github.com/kolkov/hdf5gen/internal/ast"

// Declared lists, in emission order, every variable a fragment declares
// (Decl, DeclAssign) or assigns by name (Assign to a Var). Drivers use
// it to pre-declare the jlen counters a setup fragment assigns.
func Declared(node ast.Node) []string {
	var names []string
	add := func(n ast.Node) {
		if v, ok := n.(*ast.Var); ok && v != nil {
			names = append(names, v.Name)
		}
	}
	ast.Walk(node, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.Decl:
			add(n.Name)
		case *ast.DeclAssign:
			add(n.Target)
		case *ast.Assign:
			add(n.Target)
		}
		return true
	})
	return names
}
