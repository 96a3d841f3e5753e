package hdf5gen

import (
	"io"

	"github.com/kolkov/hdf5gen/internal/types"
)

// Version is the hdf5gen version string.
const Version = "0.1.0"

// Descriptor names a column type by C++ spelling, database name, or both.
// When both are set the database name decides the canonical type and the
// C++ spelling is used verbatim in the declaration.
type Descriptor struct {
	Cpp string // e.g. std::map<std::string,std::string>
	DB  string // e.g. MAP_STRING_VL_STRING
}

// Compile resolves typ, given as a database name or a C++ spelling, and
// renders all of its fragments.
//
// Example:
//
//	frag, err := hdf5gen.Compile("MAP_STRING_VL_STRING", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(frag.Setup())
func Compile(typ string, config *Config) (*Fragment, error) {
	d, err := types.Resolve(typ)
	if err != nil {
		return nil, convertError(typ, err)
	}
	return compile(typ, d, config)
}

// CompileDescriptor is like Compile for a type known by both names.
func CompileDescriptor(desc Descriptor, config *Config) (*Fragment, error) {
	name := desc.DB
	if name == "" {
		name = desc.Cpp
	}
	return compile(name, types.Descriptor{Cpp: desc.Cpp, DB: desc.DB}, config)
}

// MustCompile is like Compile but panics if the type is not supported.
// It simplifies initialization of global fragment tables.
func MustCompile(typ string) *Fragment {
	frag, err := Compile(typ, nil)
	if err != nil {
		panic(err)
	}
	return frag
}

// Setup returns the sizing fragment for typ.
func Setup(typ string, config *Config) (string, error) {
	frag, err := Compile(typ, config)
	if err != nil {
		return "", err
	}
	return frag.Setup(), nil
}

// Declare returns the declaration of the variable receiving a typ value.
func Declare(typ string, config *Config) (string, error) {
	frag, err := Compile(typ, config)
	if err != nil {
		return "", err
	}
	return frag.Decl(), nil
}

// ReadCase returns the switch arm that sizes and declares a typ value.
func ReadCase(typ string, config *Config) (string, error) {
	frag, err := Compile(typ, config)
	if err != nil {
		return "", err
	}
	return frag.Case(), nil
}

// Exec writes the setup and declaration fragments for typ to w.
//
// Example:
//
//	err := hdf5gen.Exec("VECTOR_INT", os.Stdout, nil)
func Exec(typ string, w io.Writer, config *Config) error {
	frag, err := Compile(typ, config)
	if err != nil {
		return err
	}
	_, err = frag.WriteTo(w)
	return err
}
