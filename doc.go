// Package hdf5gen generates the C++ fragments an HDF5 table reader needs
// to size and declare a column value of any supported type.
//
// Column types are named either by their database name or by their C++
// spelling, and may nest containers to any depth:
//
//	INT, VL_STRING, MAP_STRING_VL_STRING, VECTOR_PAIR_INT_STRING
//	double, std::map<std::string,std::vector<int>>
//
// # Quick Start
//
// For a single fragment:
//
//	setup, err := hdf5gen.Setup("MAP_STRING_VL_STRING", nil)
//	// hid_t field_type1KEY=H5Tget_member_type(tb_type,j);
//	// ...
//	// jlen1VALUE=col_sizes_[table][j] / CYCLUS_SHA1_SIZE;
//
// # Compiled Fragments
//
// Compile resolves the type once and renders every fragment:
//
//	frag, err := hdf5gen.Compile("std::vector<double>", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(frag.Setup(), frag.Decl())
//
// # Configuration
//
// The [Config] type renames the external C API the fragments refer to:
// the cell size lookup, the table type handle, the field index, the hash
// size constant and the landing variable.
//
// # Error Handling
//
// Errors are returned as specific types:
//   - [UnsupportedTypeError]: the type matches no known leaf or container
//   - [MalformedTreeError]: a synthesized tree could not be rendered
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use. [Fragment] values
// are immutable.
package hdf5gen
