package ast

import (
	"io"
	"strconv"
	"strings"
)

// Printer writes the debugging representation of a tree.
// The output shows tree shape and is never fed back into compilation:
//
//	Decl(
//	 type=Type(
//	  cpp='int'
//	 ),
//	 name=Var(
//	  name='x'
//	 )
//	)
type Printer struct {
	w   io.Writer
	err error
}

// NewPrinter creates a new Printer that writes to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print writes the representation of node to the writer.
func (p *Printer) Print(node Node) error {
	s, err := Format(node)
	if err != nil {
		return err
	}
	if p.err == nil {
		_, p.err = io.WriteString(p.w, s)
	}
	return p.err
}

// Format returns the debugging representation of node.
// Output is deterministic; distinct field values give distinct text.
func Format(node Node) (s string, err error) {
	defer Recover(&err)
	return Accept[string](node, prettyFormatter{}), nil
}

// String returns the debugging representation of node, or the error text
// if the tree cannot be formatted.
func String(node Node) string {
	s, err := Format(node)
	if err != nil {
		return err.Error()
	}
	return s
}

// prettyFormatter renders every variant as Name(field=value, ...) with
// one space of indentation per nesting level.
type prettyFormatter struct{}

type field struct {
	name  string
	value string
}

func (p prettyFormatter) VisitVar(n *Var) string {
	return p.format("Var", p.text("name", n.Name))
}

func (p prettyFormatter) VisitType(n *Type) string {
	return p.format("Type", p.text("cpp", n.Cpp))
}

func (p prettyFormatter) VisitRaw(n *Raw) string {
	return p.format("Raw", p.text("code", n.Code))
}

func (p prettyFormatter) VisitDecl(n *Decl) string {
	return p.format("Decl", p.node("type", n.Type), p.node("name", n.Name))
}

func (p prettyFormatter) VisitBinOp(n *BinOp) string {
	return p.format("BinOp", p.node("x", n.X), p.text("op", n.Op), p.node("y", n.Y))
}

func (p prettyFormatter) VisitLeftUnaryOp(n *LeftUnaryOp) string {
	return p.format("LeftUnaryOp", p.text("op", n.Op), p.node("name", n.Name))
}

func (p prettyFormatter) VisitRightUnaryOp(n *RightUnaryOp) string {
	return p.format("RightUnaryOp", p.node("name", n.Name), p.text("op", n.Op))
}

func (p prettyFormatter) VisitFuncCall(n *FuncCall) string {
	return p.format("FuncCall", p.node("name", n.Name), p.list("args", n.Args), p.list("targs", n.Targs))
}

func (p prettyFormatter) VisitDeclAssign(n *DeclAssign) string {
	return p.format("DeclAssign", p.node("type", n.Type), p.node("target", n.Target), p.node("value", n.Value))
}

func (p prettyFormatter) VisitAssign(n *Assign) string {
	return p.format("Assign", p.node("target", n.Target), p.node("value", n.Value))
}

func (p prettyFormatter) VisitExprStmt(n *ExprStmt) string {
	return p.format("ExprStmt", p.node("child", n.Child))
}

func (p prettyFormatter) VisitIf(n *If) string {
	elifs := make([]string, len(n.Elifs))
	for i, e := range n.Elifs {
		elifs[i] = p.format("Elif", p.node("cond", e.Cond), p.list("body", e.Body))
	}
	el := field{"el", "<nil>"}
	if n.Else != nil {
		el = p.list("el", n.Else)
	}
	return p.format("If", p.node("cond", n.Cond), p.list("body", n.Body),
		field{"elifs", bracket(elifs)}, el)
}

func (p prettyFormatter) VisitFor(n *For) string {
	return p.format("For", p.node("adecl", n.Adecl), p.node("cond", n.Cond),
		p.node("incr", n.Incr), p.list("body", n.Body))
}

func (p prettyFormatter) VisitCase(n *Case) string {
	return p.format("Case", p.node("cond", n.Cond), p.list("body", n.Body))
}

func (p prettyFormatter) VisitBlock(n *Block) string {
	return p.format("Block", p.list("nodes", n.Nodes))
}

func (p prettyFormatter) format(name string, fields ...field) string {
	if len(fields) == 0 {
		return name + "()"
	}
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.name + "=" + f.value
	}
	return name + "(\n" + indent(strings.Join(parts, ",\n"), " ") + "\n)"
}

func (p prettyFormatter) text(name, value string) field {
	return field{name, quote(value)}
}

// quote returns s as a single-quoted literal with Go escapes. A single
// quote inside s is escaped; a double quote is not.
func quote(s string) string {
	q := strconv.Quote(s)
	q = strings.ReplaceAll(q[1:len(q)-1], `\"`, `"`)
	return "'" + strings.ReplaceAll(q, "'", `\'`) + "'"
}

func (p prettyFormatter) node(name string, n Node) field {
	if isNil(n) {
		return field{name, "<nil>"}
	}
	return field{name, Accept[string](n, p)}
}

func (p prettyFormatter) list(name string, nodes []Node) field {
	items := make([]string, len(nodes))
	for i, n := range nodes {
		items[i] = p.node("", n).value
	}
	return field{name, bracket(items)}
}

func bracket(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	return "[\n" + indent(strings.Join(items, ",\n"), " ") + "\n]"
}

// indent prefixes every non-empty line of s with prefix.
func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
