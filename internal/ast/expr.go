package ast

// -----------------------------------------------------------------------------
// Leaves
// -----------------------------------------------------------------------------

// Var represents an identifier reference.
// Examples: x, jlen0, CYCLUS_SHA1_SIZE
type Var struct {
	Name string
}

// Type represents a raw C++ type spelling.
// Examples: int, std::string, std::map<std::string,int>
type Type struct {
	Cpp string
}

// Raw is an escape hatch holding unparsed code.
// Examples: 0, break;, col_sizes_[table][j]
type Raw struct {
	Code string
}

// -----------------------------------------------------------------------------
// Expressions
// -----------------------------------------------------------------------------

// Decl represents a "<type> <name>" declaration fragment without terminator.
// Example: std::string s
type Decl struct {
	Type Node
	Name Node
}

// BinOp represents a binary expression. No parentheses are inferred.
// Examples: x+y, i<5
type BinOp struct {
	X  Node
	Op string
	Y  Node
}

// LeftUnaryOp represents a prefix unary expression.
// Examples: ++x, &fieldlen0
type LeftUnaryOp struct {
	Op   string
	Name Node
}

// RightUnaryOp represents a postfix unary expression.
// Op may be any suffix text, including subscripts such as "[i]".
// Examples: x++, c[i]
type RightUnaryOp struct {
	Name Node
	Op   string
}

// FuncCall represents a function or template invocation.
// Examples: f(a,b), mult_two<std::string,STRING>(a,b)
type FuncCall struct {
	Name  Node
	Args  []Node
	Targs []Node // template arguments; the <...> group is omitted when empty
}

func (*Var) Kind() Kind          { return KindVar }
func (*Type) Kind() Kind         { return KindType }
func (*Raw) Kind() Kind          { return KindRaw }
func (*Decl) Kind() Kind         { return KindDecl }
func (*BinOp) Kind() Kind        { return KindBinOp }
func (*LeftUnaryOp) Kind() Kind  { return KindLeftUnaryOp }
func (*RightUnaryOp) Kind() Kind { return KindRightUnaryOp }
func (*FuncCall) Kind() Kind     { return KindFuncCall }

func (*Var) node()          {}
func (*Type) node()         {}
func (*Raw) node()          {}
func (*Decl) node()         {}
func (*BinOp) node()        {}
func (*LeftUnaryOp) node()  {}
func (*RightUnaryOp) node() {}
func (*FuncCall) node()     {}
