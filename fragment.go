package hdf5gen

import (
	"io"
	"strings"

	"github.com/kolkov/hdf5gen/internal/ast"
	"github.com/kolkov/hdf5gen/internal/backgen"
	"github.com/kolkov/hdf5gen/internal/cppgen"
	"github.com/kolkov/hdf5gen/internal/types"
)

// Fragment holds the rendered C++ fragments for one column type.
// It is immutable and safe for concurrent use.
type Fragment struct {
	canon    types.Canon
	cpp      string
	config   Config
	setup    ast.Node
	declared []string

	setupText string
	declText  string
	caseText  string
}

func compile(name string, d types.Descriptor, config *Config) (*Fragment, error) {
	cfg := Config{}
	if config != nil {
		cfg = *config
	}
	cfg.applyDefaults()
	b := cfg.builder()

	c, err := d.Canonicalize()
	if err != nil {
		return nil, convertError(name, err)
	}
	setup, err := b.Setup(d)
	if err != nil {
		return nil, convertError(name, err)
	}
	decl, err := b.Decl(d)
	if err != nil {
		return nil, convertError(name, err)
	}
	arm, err := b.ReadCase(d)
	if err != nil {
		return nil, convertError(name, err)
	}

	f := &Fragment{
		canon:    c,
		cpp:      d.Spelling(c),
		config:   cfg,
		setup:    setup,
		declared: backgen.Declared(setup),
	}
	for _, r := range []struct {
		node ast.Node
		dst  *string
	}{
		{setup, &f.setupText},
		{decl, &f.declText},
		{arm, &f.caseText},
	} {
		text, err := cppgen.Generate(r.node)
		if err != nil {
			return nil, convertError(name, err)
		}
		*r.dst = text
	}
	return f, nil
}

// Setup returns the C++ statements computing element counts and string
// lengths for the value.
func (f *Fragment) Setup() string { return f.setupText }

// Decl returns the declaration of the landing variable, e.g. "double x0;\n".
func (f *Fragment) Decl() string { return f.declText }

// Case returns the switch arm holding setup, declaration and break.
func (f *Fragment) Case() string { return f.caseText }

// Canon returns the canonical tag, e.g. "(MAP, STRING, VL_STRING)".
func (f *Fragment) Canon() string { return f.canon.String() }

// DB returns the database type name, e.g. "MAP_STRING_VL_STRING".
func (f *Fragment) DB() string { return f.canon.DB() }

// Cpp returns the C++ spelling used in the declaration.
func (f *Fragment) Cpp() string { return f.cpp }

// Config returns the configuration the fragment was rendered with,
// defaults filled in.
func (f *Fragment) Config() Config { return f.config }

// Declared lists the variables the setup fragment declares or assigns.
func (f *Fragment) Declared() []string {
	return append([]string(nil), f.declared...)
}

// Pretty returns the debugging representation of the setup tree.
func (f *Fragment) Pretty() string {
	return ast.String(f.setup)
}

// WriteTo writes the setup fragment followed by the declaration.
// Setup text of a leaf type has no trailing newline; one is added.
func (f *Fragment) WriteTo(w io.Writer) (int64, error) {
	setup := f.setupText
	if !strings.HasSuffix(setup, "\n") {
		setup += "\n"
	}
	n, err := io.WriteString(w, setup+f.declText)
	return int64(n), err
}
