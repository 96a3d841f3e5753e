package types

// Descriptor describes a column value type as the schema knows it: its
// C++ spelling and its database name. Canon, when set, overrides both.
type Descriptor struct {
	Cpp   string // C++ spelling, e.g. std::map<std::string,std::string>
	DB    string // Database name, e.g. MAP_STRING_VL_STRING
	Canon *Canon // Explicit canonical tag (optional)
}

// Canonicalize returns the canonical tag of d. The explicit tag wins,
// then the database name, then the C++ spelling. A descriptor matching
// no known shape yields an *UnsupportedTypeError; no default is guessed.
func (d Descriptor) Canonicalize() (Canon, error) {
	switch {
	case d.Canon != nil:
		if err := d.Canon.Check(); err != nil {
			return Canon{}, err
		}
		return *d.Canon, nil
	case d.DB != "":
		return ParseDB(d.DB)
	case d.Cpp != "":
		return ParseCpp(d.Cpp)
	default:
		return Canon{}, unsupported("", "empty type descriptor")
	}
}

// Spelling returns d.Cpp, or the spelling derived from c when d has none.
func (d Descriptor) Spelling(c Canon) string {
	if d.Cpp != "" {
		return d.Cpp
	}
	return c.Cpp()
}

// Resolve builds a complete descriptor from either a database name
// (MAP_STRING_VL_STRING) or a C++ spelling (std::map<std::string,int>).
func Resolve(s string) (Descriptor, error) {
	var (
		c   Canon
		err error
	)
	if IsDBName(s) {
		c, err = ParseDB(s)
	} else {
		c, err = ParseCpp(s)
	}
	if err != nil {
		return Descriptor{}, err
	}

	d := Descriptor{Cpp: c.Cpp(), DB: c.DB(), Canon: &c}
	if !IsDBName(s) {
		d.Cpp = s
	}
	return d, nil
}
