package main

import (
	"strings"
	"testing"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, inv *invocation)
	}{
		{
			name: "default output",
			args: []string{"INT"},
			check: func(t *testing.T, inv *invocation) {
				if !inv.opts.setup || !inv.opts.decl || inv.opts.arm {
					t.Errorf("opts = %+v, want setup and decl", inv.opts)
				}
				if len(inv.types) != 1 || inv.types[0] != "INT" {
					t.Errorf("types = %v", inv.types)
				}
			},
		},
		{
			name: "api names",
			args: []string{"-table", "tbl", "-field", "k", "-cols", "n", "-hash", "H", "-x", "v", "STRING"},
			check: func(t *testing.T, inv *invocation) {
				c := inv.cfg
				if c.TableType != "tbl" || c.FieldIndex != "k" || c.ColumnSizes != "n" || c.HashSize != "H" || c.Landing != "v" {
					t.Errorf("cfg = %+v", c)
				}
			},
		},
		{
			name: "double dash ends flags",
			args: []string{"-case", "--", "-x"},
			check: func(t *testing.T, inv *invocation) {
				if !inv.opts.arm || inv.opts.setup {
					t.Errorf("opts = %+v, want case only", inv.opts)
				}
				if len(inv.types) != 1 || inv.types[0] != "-x" {
					t.Errorf("types = %v", inv.types)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := parseArgs(tt.args)
			if err != nil {
				t.Fatalf("parseArgs() error: %v", err)
			}
			tt.check(t, inv)
		})
	}
}

func TestParseArgsErrors(t *testing.T) {
	for _, args := range [][]string{{"-table"}, {"-field"}, {"-nope", "INT"}} {
		if _, err := parseArgs(args); err == nil {
			t.Errorf("parseArgs(%q) succeeded, want error", args)
		}
	}
}

func TestEmitTableAndField(t *testing.T) {
	inv, err := parseArgs([]string{"-setup", "-table", "tbl", "-field", "k", "STRING"})
	if err != nil {
		t.Fatalf("parseArgs() error: %v", err)
	}
	var sb strings.Builder
	if err := emit(&sb, inv.types[0], inv.opts, &inv.cfg); err != nil {
		t.Fatalf("emit() error: %v", err)
	}
	if want := "hid_t field_type0=H5Tget_member_type(tbl,k);\n"; !strings.HasPrefix(sb.String(), want) {
		t.Errorf("emit() = %q, want prefix %q", sb.String(), want)
	}
}
