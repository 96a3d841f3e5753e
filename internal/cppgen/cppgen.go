// Package cppgen renders ast trees as C++ source text.
//
// Emission is plain text assembly following a fixed contract: no spaces
// are injected around operators, compound statements put their opening
// brace on the header line, and bodies are indented two spaces per
// nesting level. Nothing is type checked; a semantically odd tree gives
// odd C++ rather than an error. Only nil nodes, and compound statements in expression position, fail, with
// *ast.MalformedTreeError.
package cppgen

import (
	"strings"

	"github.com/kolkov/hdf5gen/internal/ast"
)

// indentUnit is prepended to each body line per nesting level.
const indentUnit = "  "

// Generate returns the C++ text for node.
func Generate(node ast.Node) (s string, err error) {
	defer ast.Recover(&err)
	return ast.Accept[string](node, Generator{}), nil
}

// MustGenerate is like Generate but panics if the tree is malformed.
// It simplifies tests and tables of known-good fragments.
func MustGenerate(node ast.Node) string {
	s, err := Generate(node)
	if err != nil {
		panic(err)
	}
	return s
}

// Generator is the ast.Visitor producing C++ text.
// It holds no state; the zero value is ready to use.
type Generator struct{}

var _ ast.Visitor[string] = Generator{}

func (g Generator) VisitVar(n *ast.Var) string   { return n.Name }
func (g Generator) VisitType(n *ast.Type) string { return n.Cpp }
func (g Generator) VisitRaw(n *ast.Raw) string   { return n.Code }

func (g Generator) VisitDecl(n *ast.Decl) string {
	return g.expr("Decl", "type", n.Type) + " " + g.expr("Decl", "name", n.Name)
}

func (g Generator) VisitBinOp(n *ast.BinOp) string {
	return g.expr("BinOp", "x", n.X) + n.Op + g.expr("BinOp", "y", n.Y)
}

func (g Generator) VisitLeftUnaryOp(n *ast.LeftUnaryOp) string {
	return n.Op + g.expr("LeftUnaryOp", "name", n.Name)
}

func (g Generator) VisitRightUnaryOp(n *ast.RightUnaryOp) string {
	return g.expr("RightUnaryOp", "name", n.Name) + n.Op
}

func (g Generator) VisitFuncCall(n *ast.FuncCall) string {
	var sb strings.Builder
	sb.WriteString(g.expr("FuncCall", "name", n.Name))
	if len(n.Targs) > 0 {
		sb.WriteByte('<')
		sb.WriteString(g.join("FuncCall", "targs", n.Targs))
		sb.WriteByte('>')
	}
	sb.WriteByte('(')
	sb.WriteString(g.join("FuncCall", "args", n.Args))
	sb.WriteByte(')')
	return sb.String()
}

func (g Generator) VisitDeclAssign(n *ast.DeclAssign) string {
	return g.expr("DeclAssign", "type", n.Type) + " " +
		g.expr("DeclAssign", "target", n.Target) + "=" +
		g.expr("DeclAssign", "value", n.Value) + ";"
}

func (g Generator) VisitAssign(n *ast.Assign) string {
	return g.expr("Assign", "target", n.Target) + "=" + g.expr("Assign", "value", n.Value) + ";"
}

func (g Generator) VisitExprStmt(n *ast.ExprStmt) string {
	return g.expr("ExprStmt", "child", n.Child) + ";"
}

func (g Generator) VisitIf(n *ast.If) string {
	var sb strings.Builder
	sb.WriteString("if(")
	sb.WriteString(g.expr("If", "cond", n.Cond))
	sb.WriteString("){\n")
	sb.WriteString(g.body("If", n.Body))
	sb.WriteString("\n}")
	for _, e := range n.Elifs {
		sb.WriteString("else if(")
		sb.WriteString(g.expr("If", "elifs", e.Cond))
		sb.WriteString("){\n")
		sb.WriteString(g.body("If", e.Body))
		sb.WriteString("\n}")
	}
	if n.Else != nil {
		sb.WriteString("else{\n")
		sb.WriteString(g.body("If", n.Else))
		sb.WriteString("\n}")
	}
	return sb.String()
}

func (g Generator) VisitFor(n *ast.For) string {
	init := strings.TrimSuffix(g.expr("For", "adecl", n.Adecl), ";")

	var sb strings.Builder
	sb.WriteString("for(")
	sb.WriteString(init)
	sb.WriteByte(';')
	sb.WriteString(g.expr("For", "cond", n.Cond))
	sb.WriteByte(';')
	sb.WriteString(g.expr("For", "incr", n.Incr))
	sb.WriteString("){\n")
	sb.WriteString(g.body("For", n.Body))
	sb.WriteString("\n}")
	return sb.String()
}

func (g Generator) VisitCase(n *ast.Case) string {
	return "case " + g.expr("Case", "cond", n.Cond) + ": {\n" + g.body("Case", n.Body) + "\n}\n"
}

// VisitBlock emits each statement followed by a newline. Nested blocks
// are flattened in place.
func (g Generator) VisitBlock(n *ast.Block) string {
	var sb strings.Builder
	for _, c := range n.Nodes {
		if b, ok := c.(*ast.Block); ok && b != nil {
			sb.WriteString(g.VisitBlock(b))
			continue
		}
		sb.WriteString(g.child("Block", "nodes", c))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// child renders a required field, naming parent and field if it is nil.
func (g Generator) child(parent, field string, n ast.Node) string {
	if n == nil {
		ast.Malformed(parent, field, "missing node")
	}
	return ast.Accept[string](n, g)
}

// expr renders a field that must hold an expression or a simple
// statement. Compound statements there are malformed.
func (g Generator) expr(parent, field string, n ast.Node) string {
	if ast.IsCompound(n) {
		ast.Malformed(parent, field, "want expression or simple statement, got %s", n.Kind())
	}
	return g.child(parent, field, n)
}

func (g Generator) join(parent, field string, nodes []ast.Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = g.expr(parent, field, n)
	}
	return strings.Join(parts, ",")
}

// body renders statements one per line, indented one level. A statement
// that already ends with a newline (Block, Case) does not add a blank line.
func (g Generator) body(parent string, nodes []ast.Node) string {
	lines := make([]string, len(nodes))
	for i, n := range nodes {
		lines[i] = strings.TrimSuffix(g.child(parent, "body", n), "\n")
	}
	return indent(strings.Join(lines, "\n"))
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = indentUnit + line
		}
	}
	return strings.Join(lines, "\n")
}
