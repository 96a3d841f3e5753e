package types_test

import (
	"errors"
	"testing"

	"github.com/kolkov/hdf5gen/internal/types"
)

var (
	str   = types.Leaf("STRING")
	vlStr = types.Leaf("VL_STRING")
	i32   = types.Leaf("INT")
)

// TestParseDB verifies database names canonicalize recursively.
func TestParseDB(t *testing.T) {
	tests := []struct {
		name   string
		expect types.Canon
	}{
		{"INT", i32},
		{"VL_STRING", vlStr},
		{"MAP_STRING_VL_STRING", types.Compose("MAP", str, vlStr)},
		{"MAP_STRING_VECTOR_INT", types.Compose("MAP", str, types.Compose("VECTOR", i32))},
		{"VL_MAP_VL_STRING_DOUBLE", types.Compose("VL_MAP", vlStr, types.Leaf("DOUBLE"))},
		{"PAIR_INT_STRING", types.Compose("PAIR", i32, str)},
		{
			"MAP_PAIR_INT_STRING_LIST_SET_BLOB",
			types.Compose("MAP",
				types.Compose("PAIR", i32, str),
				types.Compose("LIST", types.Compose("SET", types.Leaf("BLOB")))),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := types.ParseDB(tt.name)
			if err != nil {
				t.Fatalf("ParseDB() error: %v", err)
			}
			if !got.Equal(tt.expect) {
				t.Errorf("ParseDB() = %s, want %s", got, tt.expect)
			}
			if got.DB() != tt.name {
				t.Errorf("DB() = %q, want %q", got.DB(), tt.name)
			}
		})
	}
}

// TestParseCpp verifies C++ spellings canonicalize recursively.
func TestParseCpp(t *testing.T) {
	tests := []struct {
		spelling string
		expect   string
		cpp      string
	}{
		{"double", "DOUBLE", "double"},
		{"std::string", "STRING", "std::string"},
		{"std::map<std::string,std::string>", "(MAP, STRING, STRING)", "std::map<std::string,std::string>"},
		{"std::map< std::string , std::vector<int> >", "(MAP, STRING, (VECTOR, INT))", "std::map<std::string,std::vector<int>>"},
		{"std::pair<int, boost::uuids::uuid>", "(PAIR, INT, UUID)", "std::pair<int,boost::uuids::uuid>"},
		{"std::list<std::set<bool>>", "(LIST, (SET, BOOL))", "std::list<std::set<bool>>"},
	}

	for _, tt := range tests {
		t.Run(tt.spelling, func(t *testing.T) {
			got, err := types.ParseCpp(tt.spelling)
			if err != nil {
				t.Fatalf("ParseCpp() error: %v", err)
			}
			if got.String() != tt.expect {
				t.Errorf("ParseCpp() = %s, want %s", got, tt.expect)
			}
			if got.Cpp() != tt.cpp {
				t.Errorf("Cpp() = %q, want %q", got.Cpp(), tt.cpp)
			}
		})
	}
}

// TestUnsupported verifies unknown shapes fail rather than defaulting.
func TestUnsupported(t *testing.T) {
	tests := []struct {
		name string
		fn   func() error
	}{
		{"unknown leaf", func() error { _, err := types.ParseDB("INT128"); return err }},
		{"missing inner", func() error { _, err := types.ParseDB("MAP_STRING"); return err }},
		{"trailing", func() error { _, err := types.ParseDB("INT_INT"); return err }},
		{"lowercase", func() error { _, err := types.ParseDB("map_int_int"); return err }},
		{"dangling VL", func() error { _, err := types.ParseDB("VECTOR_VL"); return err }},
		{"unknown cpp", func() error { _, err := types.ParseCpp("unsigned int"); return err }},
		{"unknown template", func() error { _, err := types.ParseCpp("std::deque<int>"); return err }},
		{"wrong arity", func() error { _, err := types.ParseCpp("std::map<int>"); return err }},
		{"unclosed", func() error { _, err := types.ParseCpp("std::vector<int"); return err }},
		{"pointer", func() error { _, err := types.ParseCpp("int*"); return err }},
		{"empty", func() error { _, err := types.Descriptor{}.Canonicalize(); return err }},
		{"bad explicit", func() error {
			c := types.Compose("VECTOR", i32, i32)
			_, err := types.Descriptor{Canon: &c}.Canonicalize()
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ue *types.UnsupportedTypeError
			if err := tt.fn(); !errors.As(err, &ue) {
				t.Errorf("error = %v, want *UnsupportedTypeError", err)
			}
		})
	}
}

// TestCanonicalizePrecedence verifies explicit tag, then DB, then C++.
func TestCanonicalizePrecedence(t *testing.T) {
	explicit := types.Compose("MAP", str, vlStr)
	tests := []struct {
		name   string
		desc   types.Descriptor
		expect string
	}{
		{
			"explicit wins",
			types.Descriptor{Cpp: "std::map<std::string,std::string>", DB: "MAP_STRING_STRING", Canon: &explicit},
			"(MAP, STRING, VL_STRING)",
		},
		{"db over cpp", types.Descriptor{Cpp: "std::string", DB: "VL_STRING"}, "VL_STRING"},
		{"cpp only", types.Descriptor{Cpp: "std::vector<double>"}, "(VECTOR, DOUBLE)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.desc.Canonicalize()
			if err != nil {
				t.Fatalf("Canonicalize() error: %v", err)
			}
			if got.String() != tt.expect {
				t.Errorf("Canonicalize() = %s, want %s", got, tt.expect)
			}
		})
	}
}

// TestResolve verifies database names and C++ spellings both resolve.
func TestResolve(t *testing.T) {
	d, err := types.Resolve("MAP_STRING_VL_STRING")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if d.Cpp != "std::map<std::string,std::string>" || d.DB != "MAP_STRING_VL_STRING" {
		t.Errorf("Resolve() = %+v", d)
	}

	d, err = types.Resolve("std::vector< int >")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if d.Cpp != "std::vector< int >" || d.DB != "VECTOR_INT" {
		t.Errorf("Resolve() = %+v", d)
	}
}

// TestKind verifies storage classification.
func TestKind(t *testing.T) {
	tests := []struct {
		canon  types.Canon
		expect types.Kind
	}{
		{types.Leaf("DOUBLE"), types.KindPrimitive},
		{types.Leaf("UUID"), types.KindPrimitive},
		{str, types.KindString},
		{vlStr, types.KindVLString},
		{types.Leaf("BLOB"), types.KindVLString},
		{types.Compose("SET", i32), types.KindContainer},
		{types.Leaf("NOPE"), types.KindInvalid},
		{types.Compose("NOPE", i32), types.KindInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.canon.String(), func(t *testing.T) {
			if got := tt.canon.Kind(); got != tt.expect {
				t.Errorf("Kind() = %v, want %v", got, tt.expect)
			}
		})
	}
}

// TestArgsCopy verifies a Canon cannot be changed through Args.
func TestArgsCopy(t *testing.T) {
	c := types.Compose("MAP", str, vlStr)
	args := c.Args()
	args[0] = i32
	if c.String() != "(MAP, STRING, VL_STRING)" {
		t.Errorf("Canon changed through Args(): %s", c)
	}
}
