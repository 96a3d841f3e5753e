// Package ast defines the syntax tree used to describe generated C++ code.
//
// The tree is a closed set of value-like node variants. Nodes carry no
// behavior beyond reporting their Kind; rendering is done by visitors
// (see Visitor, Accept, Format and the cppgen package).
//
// Node hierarchy:
//
//	Node (interface)
//	├── Var, Type, Raw - leaves holding verbatim text
//	├── Decl, BinOp, LeftUnaryOp, RightUnaryOp, FuncCall - expressions
//	└── DeclAssign, Assign, ExprStmt, If, For, Case, Block - statements
//
// Text fields (names, operators, raw code, C++ type spellings) are
// emitted verbatim. Nothing in this package escapes or validates them.
package ast

// Kind identifies the concrete variant of a Node.
type Kind int

const (
	KindVar Kind = iota
	KindType
	KindDecl
	KindDeclAssign
	KindAssign
	KindBinOp
	KindLeftUnaryOp
	KindRightUnaryOp
	KindFuncCall
	KindRaw
	KindExprStmt
	KindIf
	KindFor
	KindCase
	KindBlock
)

var kindNames = [...]string{
	KindVar:          "Var",
	KindType:         "Type",
	KindDecl:         "Decl",
	KindDeclAssign:   "DeclAssign",
	KindAssign:       "Assign",
	KindBinOp:        "BinOp",
	KindLeftUnaryOp:  "LeftUnaryOp",
	KindRightUnaryOp: "RightUnaryOp",
	KindFuncCall:     "FuncCall",
	KindRaw:          "Raw",
	KindExprStmt:     "ExprStmt",
	KindIf:           "If",
	KindFor:          "For",
	KindCase:         "Case",
	KindBlock:        "Block",
}

// String returns the variant name, e.g. "BinOp".
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Node is the interface implemented by all tree nodes.
// The unexported marker keeps the variant set closed to this package.
type Node interface {
	// Kind reports the concrete variant.
	Kind() Kind
	node()
}

// -----------------------------------------------------------------------------
// Constructor helpers
// -----------------------------------------------------------------------------

// NewVar creates an identifier reference.
func NewVar(name string) *Var { return &Var{Name: name} }

// NewType creates a raw C++ type spelling.
func NewType(cpp string) *Type { return &Type{Cpp: cpp} }

// NewRaw creates a verbatim code fragment.
func NewRaw(code string) *Raw { return &Raw{Code: code} }

// NewDecl creates a "<type> <name>" declaration fragment.
func NewDecl(typ, name Node) *Decl { return &Decl{Type: typ, Name: name} }

// NewDeclAssign creates a declaration with initializer.
func NewDeclAssign(typ, target, value Node) *DeclAssign {
	return &DeclAssign{Type: typ, Target: target, Value: value}
}

// NewAssign creates an assignment statement.
func NewAssign(target, value Node) *Assign { return &Assign{Target: target, Value: value} }

// NewBinOp creates a binary expression.
func NewBinOp(x Node, op string, y Node) *BinOp { return &BinOp{X: x, Op: op, Y: y} }

// NewLeftUnaryOp creates a prefix unary expression.
func NewLeftUnaryOp(op string, name Node) *LeftUnaryOp {
	return &LeftUnaryOp{Op: op, Name: name}
}

// NewRightUnaryOp creates a postfix unary expression.
func NewRightUnaryOp(name Node, op string) *RightUnaryOp {
	return &RightUnaryOp{Name: name, Op: op}
}

// NewFuncCall creates a call. targs may be nil.
func NewFuncCall(name Node, args, targs []Node) *FuncCall {
	return &FuncCall{Name: name, Args: args, Targs: targs}
}

// NewExprStmt wraps an expression as a statement.
func NewExprStmt(child Node) *ExprStmt { return &ExprStmt{Child: child} }

// NewIf creates a conditional with no elif or else arms.
func NewIf(cond Node, body ...Node) *If { return &If{Cond: cond, Body: body} }

// NewFor creates a C-style loop.
func NewFor(adecl, cond, incr Node, body ...Node) *For {
	return &For{Adecl: adecl, Cond: cond, Incr: incr, Body: body}
}

// NewCase creates a switch arm.
func NewCase(cond Node, body ...Node) *Case { return &Case{Cond: cond, Body: body} }

// NewBlock creates a flat statement sequence.
func NewBlock(nodes ...Node) *Block { return &Block{Nodes: nodes} }
