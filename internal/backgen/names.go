package backgen

// Names spells the external C API the generated code refers to.
// Empty fields take the defaults from DefaultNames.
type Names struct {
	ColumnSizes string // Byte size of the current cell: col_sizes_[table][j]
	TableType   string // Compound type handle of the table: tb_type
	FieldIndex  string // Index of the current field: j
	HashSize    string // Byte size of a hash reference: CYCLUS_SHA1_SIZE
	Landing     string // Prefix of the variable receiving the value: x
}

// DefaultNames returns the names used by the HDF5 back end.
func DefaultNames() Names {
	return Names{
		ColumnSizes: "col_sizes_[table][j]",
		TableType:   "tb_type",
		FieldIndex:  "j",
		HashSize:    "CYCLUS_SHA1_SIZE",
		Landing:     "x",
	}
}

func (n Names) withDefaults() Names {
	d := DefaultNames()
	if n.ColumnSizes == "" {
		n.ColumnSizes = d.ColumnSizes
	}
	if n.TableType == "" {
		n.TableType = d.TableType
	}
	if n.FieldIndex == "" {
		n.FieldIndex = d.FieldIndex
	}
	if n.HashSize == "" {
		n.HashSize = d.HashSize
	}
	if n.Landing == "" {
		n.Landing = d.Landing
	}
	return n
}
