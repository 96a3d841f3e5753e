package types

import (
	"strings"

	"github.com/coregx/coregex"
)

var (
	// dbNameRe matches a well-formed database type name: MAP_STRING_INT.
	dbNameRe = mustCompile(`^[A-Z0-9]+(?:_[A-Z0-9]+)*$`)

	// dbTokenRe splits a database name into tags; VL_ binds to the
	// following word so VL_STRING and VL_MAP stay single tokens.
	dbTokenRe = mustCompile(`VL_[A-Z0-9]+|[A-Z0-9]+`)

	// cppTokenRe splits a C++ spelling into qualified names and punctuation.
	cppTokenRe = mustCompile(`[A-Za-z_][A-Za-z0-9_]*(?:::[A-Za-z_][A-Za-z0-9_]*)*|[<>,]`)
)

func mustCompile(pattern string) *coregex.Regexp {
	re, err := coregex.Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// IsDBName reports whether s is shaped like a database type name
// rather than a C++ spelling.
func IsDBName(s string) bool {
	return dbNameRe.MatchString(s)
}

// ParseDB canonicalizes a database type name. Container shapes prefix
// their inner tags, so the name reads in Polish notation:
//
//	MAP_STRING_VECTOR_INT -> (MAP, STRING, (VECTOR, INT))
func ParseDB(name string) (Canon, error) {
	if !dbNameRe.MatchString(name) {
		return Canon{}, unsupported(name, "not a database type name")
	}
	p := &dbParser{name: name}
	for _, loc := range dbTokenRe.FindAllStringIndex(name, -1) {
		p.toks = append(p.toks, name[loc[0]:loc[1]])
	}
	c, err := p.parse()
	if err != nil {
		return Canon{}, err
	}
	if p.pos != len(p.toks) {
		return Canon{}, unsupported(name, "unexpected %q after %s", strings.Join(p.toks[p.pos:], "_"), c.DB())
	}
	return c, nil
}

type dbParser struct {
	name string
	toks []string
	pos  int
}

func (p *dbParser) parse() (Canon, error) {
	if p.pos >= len(p.toks) {
		return Canon{}, unsupported(p.name, "missing inner type")
	}
	tok := p.toks[p.pos]
	p.pos++

	if _, ok := leaves[tok]; ok {
		return Leaf(tok), nil
	}
	s, ok := shapes[tok]
	if !ok {
		return Canon{}, unsupported(p.name, "unknown type %q", tok)
	}
	args := make([]Canon, s.arity)
	for i := range args {
		a, err := p.parse()
		if err != nil {
			return Canon{}, err
		}
		args[i] = a
	}
	return Canon{name: tok, args: args}, nil
}

// ParseCpp canonicalizes a C++ type spelling.
//
//	std::map<std::string, std::vector<int>> -> (MAP, STRING, (VECTOR, INT))
//
// std::string always yields the fixed STRING leaf.
func ParseCpp(spelling string) (Canon, error) {
	p := &cppParser{spelling: spelling}
	last := 0
	for _, loc := range cppTokenRe.FindAllStringIndex(spelling, -1) {
		if strings.TrimSpace(spelling[last:loc[0]]) != "" {
			return Canon{}, unsupported(spelling, "unexpected %q", strings.TrimSpace(spelling[last:loc[0]]))
		}
		p.toks = append(p.toks, spelling[loc[0]:loc[1]])
		last = loc[1]
	}
	if strings.TrimSpace(spelling[last:]) != "" {
		return Canon{}, unsupported(spelling, "unexpected %q", strings.TrimSpace(spelling[last:]))
	}

	c, err := p.parse()
	if err != nil {
		return Canon{}, err
	}
	if p.pos != len(p.toks) {
		return Canon{}, unsupported(spelling, "unexpected %q", p.toks[p.pos])
	}
	return c, nil
}

type cppParser struct {
	spelling string
	toks     []string
	pos      int
}

func (p *cppParser) peek() string {
	if p.pos < len(p.toks) {
		return p.toks[p.pos]
	}
	return ""
}

// name consumes consecutive words, so "unsigned int" reads as one name.
func (p *cppParser) name() string {
	var words []string
	for {
		t := p.peek()
		if t == "" || t == "<" || t == ">" || t == "," {
			break
		}
		words = append(words, t)
		p.pos++
	}
	return strings.Join(words, " ")
}

func (p *cppParser) parse() (Canon, error) {
	name := p.name()
	if name == "" {
		return Canon{}, unsupported(p.spelling, "missing type name")
	}

	if p.peek() != "<" {
		tag, ok := cppLeaves[name]
		if !ok {
			return Canon{}, unsupported(p.spelling, "unknown type %q", name)
		}
		return Leaf(tag), nil
	}

	shape, ok := cppShapes[name]
	if !ok {
		return Canon{}, unsupported(p.spelling, "unknown template %q", name)
	}
	p.pos++ // <

	var args []Canon
	for {
		a, err := p.parse()
		if err != nil {
			return Canon{}, err
		}
		args = append(args, a)
		if p.peek() != "," {
			break
		}
		p.pos++
	}
	if p.peek() != ">" {
		return Canon{}, unsupported(p.spelling, "missing '>' after %s arguments", name)
	}
	p.pos++

	c := Canon{name: shape, args: args}
	if want := shapes[shape].arity; len(args) != want {
		return Canon{}, unsupported(p.spelling, "%s takes %d template arguments, got %d", name, want, len(args))
	}
	return c, nil
}
