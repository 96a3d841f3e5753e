package types

type leafInfo struct {
	kind Kind
	cpp  string
}

type shapeInfo struct {
	arity int
	cpp   string
}

// leaves lists every leaf tag with its storage kind and C++ spelling.
var leaves = map[string]leafInfo{
	"BOOL":      {KindPrimitive, "bool"},
	"INT":       {KindPrimitive, "int"},
	"FLOAT":     {KindPrimitive, "float"},
	"DOUBLE":    {KindPrimitive, "double"},
	"UUID":      {KindPrimitive, "boost::uuids::uuid"},
	"STRING":    {KindString, "std::string"},
	"VL_STRING": {KindVLString, "std::string"},
	"BLOB":      {KindVLString, "cyclus::Blob"},
}

// shapes lists every container shape. VL_ shapes are stored as
// variable-length sequences but nest exactly like their fixed forms.
var shapes = map[string]shapeInfo{
	"MAP":       {2, "std::map"},
	"VL_MAP":    {2, "std::map"},
	"PAIR":      {2, "std::pair"},
	"VECTOR":    {1, "std::vector"},
	"VL_VECTOR": {1, "std::vector"},
	"SET":       {1, "std::set"},
	"VL_SET":    {1, "std::set"},
	"LIST":      {1, "std::list"},
	"VL_LIST":   {1, "std::list"},
}

// cppLeaves maps C++ spellings to leaf tags. std::string resolves to the
// fixed-length STRING; use a database name to ask for VL_STRING.
var cppLeaves = map[string]string{
	"bool":               "BOOL",
	"int":                "INT",
	"float":              "FLOAT",
	"double":             "DOUBLE",
	"boost::uuids::uuid": "UUID",
	"std::string":        "STRING",
	"cyclus::Blob":       "BLOB",
}

// cppShapes maps C++ template names to fixed container shapes.
var cppShapes = map[string]string{
	"std::map":    "MAP",
	"std::pair":   "PAIR",
	"std::vector": "VECTOR",
	"std::set":    "SET",
	"std::list":   "LIST",
}
