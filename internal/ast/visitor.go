package ast

import "fmt"

// Visitor defines the generic visitor pattern over the closed node set.
// Type parameter T is the return type of visit methods.
//
// Adding a variant adds a method here, so every implementation stops
// compiling until it handles the new node.
//
// Example usage for code generation:
//
//	type Gen struct{}
//	func (g *Gen) VisitVar(n *Var) string { return n.Name }
//	// ... other methods
type Visitor[T any] interface {
	// Leaves
	VisitVar(*Var) T
	VisitType(*Type) T
	VisitRaw(*Raw) T

	// Expressions
	VisitDecl(*Decl) T
	VisitBinOp(*BinOp) T
	VisitLeftUnaryOp(*LeftUnaryOp) T
	VisitRightUnaryOp(*RightUnaryOp) T
	VisitFuncCall(*FuncCall) T

	// Statements
	VisitDeclAssign(*DeclAssign) T
	VisitAssign(*Assign) T
	VisitExprStmt(*ExprStmt) T
	VisitIf(*If) T
	VisitFor(*For) T
	VisitCase(*Case) T
	VisitBlock(*Block) T
}

// Accept dispatches to the visitor method for node's concrete variant.
// A nil node aborts the visit with a MalformedTreeError (see Recover).
//
// Example:
//
//	text := ast.Accept[string](node, gen)
func Accept[T any](node Node, v Visitor[T]) T {
	if isNil(node) {
		Malformed("<nil>", "", "cannot visit a nil node")
	}

	switch n := node.(type) {
	case *Var:
		return v.VisitVar(n)
	case *Type:
		return v.VisitType(n)
	case *Raw:
		return v.VisitRaw(n)

	case *Decl:
		return v.VisitDecl(n)
	case *BinOp:
		return v.VisitBinOp(n)
	case *LeftUnaryOp:
		return v.VisitLeftUnaryOp(n)
	case *RightUnaryOp:
		return v.VisitRightUnaryOp(n)
	case *FuncCall:
		return v.VisitFuncCall(n)

	case *DeclAssign:
		return v.VisitDeclAssign(n)
	case *Assign:
		return v.VisitAssign(n)
	case *ExprStmt:
		return v.VisitExprStmt(n)
	case *If:
		return v.VisitIf(n)
	case *For:
		return v.VisitFor(n)
	case *Case:
		return v.VisitCase(n)
	case *Block:
		return v.VisitBlock(n)

	default:
		Malformed(fmt.Sprintf("%T", node), "", "no visitor rule for this node")
		panic("unreachable")
	}
}

// Walk traverses a tree in depth-first order.
// For each node, it calls fn(node). If fn returns false,
// the children of that node are not visited. Nil children are skipped.
//
// Example: collect every identifier
//
//	var names []string
//	ast.Walk(block, func(n ast.Node) bool {
//	    if v, ok := n.(*ast.Var); ok {
//	        names = append(names, v.Name)
//	    }
//	    return true
//	})
func Walk(node Node, fn func(Node) bool) {
	if isNil(node) || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Var, *Type, *Raw:
		// no children

	case *Decl:
		Walk(n.Type, fn)
		Walk(n.Name, fn)

	case *BinOp:
		Walk(n.X, fn)
		Walk(n.Y, fn)

	case *LeftUnaryOp:
		Walk(n.Name, fn)

	case *RightUnaryOp:
		Walk(n.Name, fn)

	case *FuncCall:
		Walk(n.Name, fn)
		walkList(n.Args, fn)
		walkList(n.Targs, fn)

	case *DeclAssign:
		Walk(n.Type, fn)
		Walk(n.Target, fn)
		Walk(n.Value, fn)

	case *Assign:
		Walk(n.Target, fn)
		Walk(n.Value, fn)

	case *ExprStmt:
		Walk(n.Child, fn)

	case *If:
		Walk(n.Cond, fn)
		walkList(n.Body, fn)
		for _, e := range n.Elifs {
			Walk(e.Cond, fn)
			walkList(e.Body, fn)
		}
		walkList(n.Else, fn)

	case *For:
		Walk(n.Adecl, fn)
		Walk(n.Cond, fn)
		Walk(n.Incr, fn)
		walkList(n.Body, fn)

	case *Case:
		Walk(n.Cond, fn)
		walkList(n.Body, fn)

	case *Block:
		walkList(n.Nodes, fn)
	}
}

func walkList(nodes []Node, fn func(Node) bool) {
	for _, n := range nodes {
		Walk(n, fn)
	}
}
