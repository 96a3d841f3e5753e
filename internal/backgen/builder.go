package backgen

import (
	"github.com/kolkov/hdf5gen/internal/ast"
	"github.com/kolkov/hdf5gen/internal/types"
)

// divide is the operator text used for size computations.
const divide = " / "

// Builder assembles setup and declaration fragments.
// A Builder is immutable and safe for concurrent use.
type Builder struct {
	names Names
}

// New returns a Builder using names, with defaults for empty fields.
func New(names Names) *Builder {
	return &Builder{names: names.withDefaults()}
}

var std = New(Names{})

// Names returns the API names the builder emits.
func (b *Builder) Names() Names { return b.names }

// PrimitiveSetup computes the element count of a fixed-size type:
//
//	jlen0=col_sizes_[table][j] / sizeof(double);
func (b *Builder) PrimitiveSetup(t *ast.Type, s Scope) ast.Node {
	return ast.NewAssign(
		ast.NewVar("jlen"+s.Suffix()),
		ast.NewBinOp(ast.NewRaw(b.names.ColumnSizes), divide,
			ast.NewFuncCall(ast.NewVar("sizeof"), []ast.Node{t}, nil)),
	)
}

// StringSetup fetches the string field's type handle and array dimension
// and derives the string length from the cell size:
//
//	hid_t field_type0=H5Tget_member_type(tb_type,j);
//	size_t nullpos0;
//	hsize_t fieldlen0;
//	H5Tget_array_dims2(field_type0,&fieldlen0);
//	unsigned int strlen0=col_sizes_[table][j] / fieldlen0;
func (b *Builder) StringSetup(s Scope) ast.Node {
	sfx := s.Suffix()
	fieldType := "field_type" + sfx
	fieldLen := "fieldlen" + sfx

	return ast.NewBlock(
		ast.NewDeclAssign(ast.NewType("hid_t"), ast.NewVar(fieldType),
			ast.NewFuncCall(ast.NewVar("H5Tget_member_type"),
				[]ast.Node{ast.NewVar(b.names.TableType), ast.NewVar(b.names.FieldIndex)}, nil)),
		ast.NewExprStmt(ast.NewDecl(ast.NewType("size_t"), ast.NewVar("nullpos"+sfx))),
		ast.NewExprStmt(ast.NewDecl(ast.NewType("hsize_t"), ast.NewVar(fieldLen))),
		ast.NewExprStmt(ast.NewFuncCall(ast.NewVar("H5Tget_array_dims2"),
			[]ast.Node{ast.NewVar(fieldType), ast.NewLeftUnaryOp("&", ast.NewVar(fieldLen))}, nil)),
		ast.NewDeclAssign(ast.NewType("unsigned int"), ast.NewVar("strlen"+sfx),
			ast.NewBinOp(ast.NewRaw(b.names.ColumnSizes), divide, ast.NewVar(fieldLen))),
	)
}

// VLStringSetup computes the element count of hash-stored values:
//
//	jlen0=col_sizes_[table][j] / CYCLUS_SHA1_SIZE;
func (b *Builder) VLStringSetup(s Scope) ast.Node {
	return ast.NewAssign(
		ast.NewVar("jlen"+s.Suffix()),
		ast.NewBinOp(ast.NewRaw(b.names.ColumnSizes), divide, ast.NewVar(b.names.HashSize)),
	)
}

// Setup returns the sizing fragment for a column value of type d.
// A leaf yields its single setup at depth 0. A container yields a Block
// holding the setup of each inner type, key first, one level deeper.
func (b *Builder) Setup(d types.Descriptor) (ast.Node, error) {
	c, err := d.Canonicalize()
	if err != nil {
		return nil, err
	}
	if c.IsLeaf() {
		return b.leafSetup(c, ast.NewType(d.Spelling(c)), Scope{}), nil
	}
	return b.setup(c, Scope{}), nil
}

func (b *Builder) setup(c types.Canon, s Scope) ast.Node {
	if c.IsLeaf() {
		return b.leafSetup(c, ast.NewType(c.Cpp()), s)
	}
	args := c.Args()
	nodes := make([]ast.Node, len(args))
	for i, a := range args {
		nodes[i] = b.setup(a, s.Child(roles[i]))
	}
	return ast.NewBlock(nodes...)
}

func (b *Builder) leafSetup(c types.Canon, t *ast.Type, s Scope) ast.Node {
	switch c.Kind() {
	case types.KindString:
		return b.StringSetup(s)
	case types.KindVLString:
		return b.VLStringSetup(s)
	default:
		return b.PrimitiveSetup(t, s)
	}
}

// Decl returns the declaration of the variable receiving the value:
//
//	double x0;
func (b *Builder) Decl(d types.Descriptor) (ast.Node, error) {
	c, err := d.Canonicalize()
	if err != nil {
		return nil, err
	}
	return ast.NewBlock(
		ast.NewExprStmt(ast.NewDecl(ast.NewType(d.Spelling(c)), ast.NewVar(b.names.Landing+"0"))),
	), nil
}

// ReadCase returns the switch arm reading a column of type d:
//
//	case MAP_STRING_INT: {
//	  <setup>
//	  <decl>
//	  break;
//	}
func (b *Builder) ReadCase(d types.Descriptor) (ast.Node, error) {
	c, err := d.Canonicalize()
	if err != nil {
		return nil, err
	}
	setup, err := b.Setup(d)
	if err != nil {
		return nil, err
	}
	decl, err := b.Decl(d)
	if err != nil {
		return nil, err
	}
	return ast.NewCase(ast.NewVar(c.DB()), setup, decl, ast.NewRaw("break;")), nil
}

// Package-level builders use DefaultNames.

// PrimitiveSetup is Builder.PrimitiveSetup with default names.
func PrimitiveSetup(t *ast.Type, s Scope) ast.Node { return std.PrimitiveSetup(t, s) }

// StringSetup is Builder.StringSetup with default names.
func StringSetup(s Scope) ast.Node { return std.StringSetup(s) }

// VLStringSetup is Builder.VLStringSetup with default names.
func VLStringSetup(s Scope) ast.Node { return std.VLStringSetup(s) }

// Setup is Builder.Setup with default names.
func Setup(d types.Descriptor) (ast.Node, error) { return std.Setup(d) }

// Decl is Builder.Decl with default names.
func Decl(d types.Descriptor) (ast.Node, error) { return std.Decl(d) }

// ReadCase is Builder.ReadCase with default names.
func ReadCase(d types.Descriptor) (ast.Node, error) { return std.ReadCase(d) }
