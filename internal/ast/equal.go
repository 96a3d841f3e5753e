package ast

// Equal reports whether a and b are structurally equal: same variants
// with equal fields, recursively. Node identity is irrelevant, and a nil
// slice equals an empty one.
func Equal(a, b Node) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch x := a.(type) {
	case *Var:
		return x.Name == b.(*Var).Name
	case *Type:
		return x.Cpp == b.(*Type).Cpp
	case *Raw:
		return x.Code == b.(*Raw).Code

	case *Decl:
		y := b.(*Decl)
		return Equal(x.Type, y.Type) && Equal(x.Name, y.Name)
	case *BinOp:
		y := b.(*BinOp)
		return x.Op == y.Op && Equal(x.X, y.X) && Equal(x.Y, y.Y)
	case *LeftUnaryOp:
		y := b.(*LeftUnaryOp)
		return x.Op == y.Op && Equal(x.Name, y.Name)
	case *RightUnaryOp:
		y := b.(*RightUnaryOp)
		return x.Op == y.Op && Equal(x.Name, y.Name)
	case *FuncCall:
		y := b.(*FuncCall)
		return Equal(x.Name, y.Name) && equalList(x.Args, y.Args) && equalList(x.Targs, y.Targs)

	case *DeclAssign:
		y := b.(*DeclAssign)
		return Equal(x.Type, y.Type) && Equal(x.Target, y.Target) && Equal(x.Value, y.Value)
	case *Assign:
		y := b.(*Assign)
		return Equal(x.Target, y.Target) && Equal(x.Value, y.Value)
	case *ExprStmt:
		return Equal(x.Child, b.(*ExprStmt).Child)
	case *If:
		y := b.(*If)
		if !Equal(x.Cond, y.Cond) || !equalList(x.Body, y.Body) || len(x.Elifs) != len(y.Elifs) {
			return false
		}
		for i := range x.Elifs {
			if !Equal(x.Elifs[i].Cond, y.Elifs[i].Cond) || !equalList(x.Elifs[i].Body, y.Elifs[i].Body) {
				return false
			}
		}
		// An absent else arm differs from an empty one: only the latter renders.
		if (x.Else == nil) != (y.Else == nil) {
			return false
		}
		return equalList(x.Else, y.Else)
	case *For:
		y := b.(*For)
		return Equal(x.Adecl, y.Adecl) && Equal(x.Cond, y.Cond) && Equal(x.Incr, y.Incr) && equalList(x.Body, y.Body)
	case *Case:
		y := b.(*Case)
		return Equal(x.Cond, y.Cond) && equalList(x.Body, y.Body)
	case *Block:
		return equalList(x.Nodes, b.(*Block).Nodes)
	}
	return false
}

func equalList(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
