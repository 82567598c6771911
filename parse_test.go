package ievalg

import (
	"fmt"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		char  int
		want  string
	}{
		{"", 2, "0"},
		{"1", 2, "1"},
		{"0", 5, "0"},
		{"3*x", 5, "3*x"},
		{"3*x", 2, "x"},
		{"x+x", 2, "0"},
		{"x^-1", 7, "x^-1"},
		{"2*x*y^2+5", 7, "5+2*x*y^2"},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.input, tt.char)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if got.String() != tt.want {
				t.Fatalf("Parse(%q).String() = %q, want %q", tt.input, got.String(), tt.want)
			}
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	char := 5
	exprs := []string{"3*x", "2*x*y^2+4", "x^-1*y^3", "1", "0"}
	for i, e := range exprs {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			t.Parallel()
			p, err := Parse(e, char)
			if err != nil {
				t.Fatalf("Parse(%q): %v", e, err)
			}
			q, err := Parse(p.String(), char)
			if err != nil {
				t.Fatalf("Parse(%q): %v", p.String(), err)
			}
			if !p.Equal(q) {
				t.Fatalf("round trip mismatch: %s != %s", p, q)
			}
		})
	}
}

func TestParseError(t *testing.T) {
	if _, err := Parse("x@y", 2); err == nil {
		t.Fatal("want error")
	}
	if _, err := Parse("3*x", 4); err == nil {
		t.Fatal("want error for non-prime characteristic")
	}
}
