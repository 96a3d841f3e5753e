package hdf5gen

import "github.com/kolkov/hdf5gen/internal/backgen"

// Config names the external C API referenced by generated fragments.
// Empty fields take the HDF5 back end defaults.
type Config struct {
	// ColumnSizes is the expression giving the byte size of the current
	// cell (default: "col_sizes_[table][j]").
	ColumnSizes string

	// TableType is the compound type handle of the table (default: "tb_type").
	TableType string

	// FieldIndex is the index of the current field (default: "j").
	FieldIndex string

	// HashSize is the byte size of the hash reference that stands in for
	// variable-length values (default: "CYCLUS_SHA1_SIZE").
	HashSize string

	// Landing is the prefix of the variable receiving the value; the
	// declared variable is Landing+"0" (default: "x").
	Landing string
}

// applyDefaults fills in default values for unset Config fields.
func (c *Config) applyDefaults() {
	d := backgen.DefaultNames()
	if c.ColumnSizes == "" {
		c.ColumnSizes = d.ColumnSizes
	}
	if c.TableType == "" {
		c.TableType = d.TableType
	}
	if c.FieldIndex == "" {
		c.FieldIndex = d.FieldIndex
	}
	if c.HashSize == "" {
		c.HashSize = d.HashSize
	}
	if c.Landing == "" {
		c.Landing = d.Landing
	}
}

// builder returns the synthesis builder for c.
func (c *Config) builder() *backgen.Builder {
	return backgen.New(backgen.Names{
		ColumnSizes: c.ColumnSizes,
		TableType:   c.TableType,
		FieldIndex:  c.FieldIndex,
		HashSize:    c.HashSize,
		Landing:     c.Landing,
	})
}
