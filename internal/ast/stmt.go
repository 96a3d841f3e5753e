package ast

// -----------------------------------------------------------------------------
// Simple statements
// -----------------------------------------------------------------------------

// DeclAssign represents a declaration with initializer.
// Example: int x=5;
type DeclAssign struct {
	Type   Node
	Target Node
	Value  Node
}

// Assign represents an assignment statement.
// Example: x=y;
type Assign struct {
	Target Node
	Value  Node
}

// ExprStmt wraps a bare expression as a statement.
// Example: a++;
type ExprStmt struct {
	Child Node
}

// -----------------------------------------------------------------------------
// Compound statements
// -----------------------------------------------------------------------------

// Elif is one "else if" arm of an If.
type Elif struct {
	Cond Node
	Body []Node
}

// If represents a conditional chain.
// Example:
//
//	if(x==y){
//	  x=1;
//	}else if(x>y){
//	  x=2;
//	}else{
//	  x=3;
//	}
type If struct {
	Cond  Node
	Body  []Node
	Elifs []Elif
	Else  []Node // nil means no else arm
}

// For represents a C-style loop.
// Adecl is rendered as a statement and loses its trailing terminator.
// Example: for(int i=0;i<5;i++){ ... }
type For struct {
	Adecl Node
	Cond  Node
	Incr  Node
	Body  []Node
}

// Case represents one switch arm.
// Example: case 3: { b++; break; }
type Case struct {
	Cond Node
	Body []Node
}

// Block is an ordered statement sequence. It is not a scope: a Block
// nested in a Block contributes its children in place.
type Block struct {
	Nodes []Node
}

func (*DeclAssign) Kind() Kind { return KindDeclAssign }
func (*Assign) Kind() Kind     { return KindAssign }
func (*ExprStmt) Kind() Kind   { return KindExprStmt }
func (*If) Kind() Kind         { return KindIf }
func (*For) Kind() Kind        { return KindFor }
func (*Case) Kind() Kind       { return KindCase }
func (*Block) Kind() Kind      { return KindBlock }

func (*DeclAssign) node() {}
func (*Assign) node()     {}
func (*ExprStmt) node()   {}
func (*If) node()         {}
func (*For) node()        {}
func (*Case) node()       {}
func (*Block) node()      {}

// IsCompound reports whether n is a statement that owns a body
// (If, For, Case) or a Block.
func IsCompound(n Node) bool {
	if isNil(n) {
		return false
	}
	switch n.(type) {
	case *If, *For, *Case, *Block:
		return true
	default:
		return false
	}
}
