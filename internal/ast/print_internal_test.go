package ast

import "testing"

func TestFormatFields(t *testing.T) {
	var p prettyFormatter
	tests := []struct {
		name   string
		fields []field
		expect string
	}{
		{"Empty", nil, "Empty()"},
		{"One", []field{p.text("a", "x")}, "One(\n a='x'\n)"},
		{"Two", []field{p.text("a", "x"), {"b", "<nil>"}}, "Two(\n a='x',\n b=<nil>\n)"},
	}
	for _, tt := range tests {
		if got := p.format(tt.name, tt.fields...); got != tt.expect {
			t.Errorf("format(%s) = %q, want %q", tt.name, got, tt.expect)
		}
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in, expect string
	}{
		{"x", `'x'`},
		{`a "b"`, `'a "b"'`},
		{"it's", `'it\'s'`},
		{`\"`, `'\\"'`},
		{"tab\there", `'tab\there'`},
	}
	for _, tt := range tests {
		if got := quote(tt.in); got != tt.expect {
			t.Errorf("quote(%q) = %s, want %s", tt.in, got, tt.expect)
		}
	}
}
