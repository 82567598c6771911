package scan

import (
	"fmt"
	"testing"
)

func TestNext(t *testing.T) {
	tests := []struct {
		input string
		want  []Type
	}{
		{"", []Type{EOF}},
		{"1", []Type{Number, EOF}},
		{"x", []Type{Identifier, EOF}},
		{"2*x^3", []Type{Number, Star, Identifier, Caret, Number, EOF}},
		{"x^-1", []Type{Identifier, Caret, Minus, Number, EOF}},
		{"3*x*y^2+5", []Type{
			Number, Star, Identifier, Star, Identifier, Caret, Number,
			Plus, Number, EOF,
		}},
		{" 7 + x_1 ", []Type{Number, Plus, Identifier, EOF}},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			t.Parallel()
			s := NewScanner(tt.input)
			for j, want := range tt.want {
				got := s.Next()
				if got.Type != want {
					t.Fatalf("token %d: got %s, want %s", j, got.Type, want)
				}
			}
		})
	}
}

func TestNextError(t *testing.T) {
	s := NewScanner("x @ y")
	if got := s.Next(); got.Type != Identifier {
		t.Fatalf("got %s, want Identifier", got.Type)
	}
	if got := s.Next(); got.Type != Error {
		t.Fatalf("got %s, want Error", got.Type)
	}
}

func TestNextPos(t *testing.T) {
	s := NewScanner("x+1")
	tok := s.Next()
	if tok.Pos != 0 {
		t.Fatalf("got pos %d, want 0", tok.Pos)
	}
	tok = s.Next()
	if tok.Pos != 1 {
		t.Fatalf("got pos %d, want 1", tok.Pos)
	}
	tok = s.Next()
	if tok.Pos != 2 {
		t.Fatalf("got pos %d, want 2", tok.Pos)
	}
}
