package hdf5gen_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/kolkov/hdf5gen"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name   string
		typ    string
		expect string
	}{
		{"db primitive", "DOUBLE", "jlen0=col_sizes_[table][j] / sizeof(double);"},
		{"cpp primitive", "double", "jlen0=col_sizes_[table][j] / sizeof(double);"},
		{"uuid", "UUID", "jlen0=col_sizes_[table][j] / sizeof(boost::uuids::uuid);"},
		{"blob", "BLOB", "jlen0=col_sizes_[table][j] / CYCLUS_SHA1_SIZE;"},
		{
			"set of vl strings",
			"SET_VL_STRING",
			"jlen1KEY=col_sizes_[table][j] / CYCLUS_SHA1_SIZE;\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := hdf5gen.Setup(tt.typ, nil)
			if err != nil {
				t.Fatalf("Setup() error: %v", err)
			}
			if got != tt.expect {
				t.Errorf("Setup() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestDeclare(t *testing.T) {
	tests := []struct {
		typ    string
		expect string
	}{
		{"DOUBLE", "double x0;\n"},
		{"std::list<std::pair<int, double>>", "std::list<std::pair<int, double>> x0;\n"},
		{"VL_MAP_STRING_VL_VECTOR_BLOB", "std::map<std::string,std::vector<cyclus::Blob>> x0;\n"},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			got, err := hdf5gen.Declare(tt.typ, nil)
			if err != nil {
				t.Fatalf("Declare() error: %v", err)
			}
			if got != tt.expect {
				t.Errorf("Declare() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestCompile(t *testing.T) {
	frag, err := hdf5gen.Compile("MAP_STRING_VL_STRING", nil)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}

	if got := frag.Canon(); got != "(MAP, STRING, VL_STRING)" {
		t.Errorf("Canon() = %q", got)
	}
	if got := frag.DB(); got != "MAP_STRING_VL_STRING" {
		t.Errorf("DB() = %q", got)
	}
	if got := frag.Cpp(); got != "std::map<std::string,std::string>" {
		t.Errorf("Cpp() = %q", got)
	}
	if got := frag.Decl(); got != "std::map<std::string,std::string> x0;\n" {
		t.Errorf("Decl() = %q", got)
	}
	if !strings.HasPrefix(frag.Setup(), "hid_t field_type1KEY=H5Tget_member_type(tb_type,j);\n") {
		t.Errorf("Setup() = %q", frag.Setup())
	}
	if !strings.HasSuffix(frag.Setup(), "jlen1VALUE=col_sizes_[table][j] / CYCLUS_SHA1_SIZE;\n") {
		t.Errorf("Setup() = %q", frag.Setup())
	}
	if !strings.HasPrefix(frag.Case(), "case MAP_STRING_VL_STRING: {\n  hid_t field_type1KEY") ||
		!strings.HasSuffix(frag.Case(), "  break;\n}\n") {
		t.Errorf("Case() = %q", frag.Case())
	}
	if got := len(frag.Declared()); got != 5 {
		t.Errorf("Declared() has %d names, want 5", got)
	}
	if !strings.HasPrefix(frag.Pretty(), "Block(\n nodes=[") {
		t.Errorf("Pretty() = %q", frag.Pretty())
	}
	if got := frag.Config().HashSize; got != "CYCLUS_SHA1_SIZE" {
		t.Errorf("Config().HashSize = %q", got)
	}
}

func TestCompileDescriptor(t *testing.T) {
	frag, err := hdf5gen.CompileDescriptor(hdf5gen.Descriptor{
		Cpp: "std::vector<std::string>",
		DB:  "VL_VECTOR_VL_STRING",
	}, nil)
	if err != nil {
		t.Fatalf("CompileDescriptor() error: %v", err)
	}
	if got := frag.Setup(); got != "jlen1KEY=col_sizes_[table][j] / CYCLUS_SHA1_SIZE;\n" {
		t.Errorf("Setup() = %q", got)
	}
	if got := frag.Decl(); got != "std::vector<std::string> x0;\n" {
		t.Errorf("Decl() = %q", got)
	}
}

func TestConfig(t *testing.T) {
	cfg := &hdf5gen.Config{HashSize: "HASH", Landing: "val", ColumnSizes: "n"}
	frag, err := hdf5gen.Compile("VL_STRING", cfg)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	if got := frag.Setup(); got != "jlen0=n / HASH;" {
		t.Errorf("Setup() = %q", got)
	}
	if got := frag.Decl(); got != "std::string val0;\n" {
		t.Errorf("Decl() = %q", got)
	}
	if cfg.TableType != "" {
		t.Errorf("Compile() modified the caller's config: %+v", cfg)
	}
}

func TestExec(t *testing.T) {
	var sb strings.Builder
	if err := hdf5gen.Exec("INT", &sb, nil); err != nil {
		t.Fatalf("Exec() error: %v", err)
	}
	want := "jlen0=col_sizes_[table][j] / sizeof(int);\nint x0;\n"
	if sb.String() != want {
		t.Errorf("Exec() wrote %q, want %q", sb.String(), want)
	}
}

func TestUnsupported(t *testing.T) {
	for _, typ := range []string{"MAP_STRING", "COMPLEX", "std::deque<int>", "int*", ""} {
		t.Run(typ, func(t *testing.T) {
			_, err := hdf5gen.Compile(typ, nil)
			var ue *hdf5gen.UnsupportedTypeError
			if !errors.As(err, &ue) {
				t.Fatalf("Compile() error = %v, want *UnsupportedTypeError", err)
			}
			if ue.Type != typ {
				t.Errorf("Type = %q, want %q", ue.Type, typ)
			}
			if !hdf5gen.IsUnsupported(err) {
				t.Error("IsUnsupported() = false")
			}
		})
	}
}

func TestMustCompilePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCompile() did not panic")
		}
	}()
	hdf5gen.MustCompile("NOT_A_TYPE")
}
