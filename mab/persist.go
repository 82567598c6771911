package mab

import (
	"fmt"
	"io"

	"github.com/ivan-efimov/ievalg"
)

// WriteSolution appends the canonical renderings of a witness (A, B)
// and their products A@A, B@B, A@B to w, one labeled block per matrix.
// It never writes a binary format; callers needing machine-readable
// output should render the matrices themselves.
func WriteSolution(w io.Writer, a, b *ievalg.UT) error {
	aa, err := a.Mul(a)
	if err != nil {
		return err
	}
	bb, err := b.Mul(b)
	if err != nil {
		return err
	}
	ab, err := a.Mul(b)
	if err != nil {
		return err
	}
	blocks := []struct {
		label string
		m     *ievalg.UT
	}{
		{"A", a},
		{"B", b},
		{"A@A", aa},
		{"B@B", bb},
		{"A@B", ab},
	}
	for _, blk := range blocks {
		if _, err := fmt.Fprintf(w, "%s:\n%s\n\n", blk.label, blk.m); err != nil {
			return err
		}
	}
	return nil
}
