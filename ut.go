package ievalg

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// A UT is a rank-r unit upper-triangular matrix: the diagonal is
// implicitly 1, the strict upper part is implicitly 0, and only the
// strictly-lower entries (i, j) for 2<=i<=r, 1<=j<i are stored, cell
// (i,j) at index (i-1)(i-2)/2+(j-1).
type UT struct {
	withCharacteristic
	rank    int
	entries []*Polynomial
}

func idx(i, j int) int { return (i-1)*(i-2)/2 + (j - 1) }

// NewUT returns a UT of the given rank with every strictly-lower entry
// set to zero. rank must be at least 2.
func NewUT(rank, char int) (*UT, error) {
	wc, err := newWithCharacteristic(char)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	if rank < 2 {
		return nil, errors.Errorf("invalid UT rank: %d", rank)
	}
	z, err := Zero(char)
	if err != nil {
		return nil, err
	}
	n := rank * (rank - 1) / 2
	entries := make([]*Polynomial, n)
	for k := range entries {
		entries[k] = z
	}
	return &UT{withCharacteristic: wc, rank: rank, entries: entries}, nil
}

// Rank returns the matrix's rank.
func (u *UT) Rank() int { return u.rank }

func (u *UT) checkRange(i, j int) error {
	if i < 1 || i > u.rank || j < 1 || j > u.rank {
		return errors.Errorf("UT index (%d,%d) out of range for rank %d", i, j, u.rank)
	}
	return nil
}

// Get returns the entry at (i, j): 1 on the diagonal, 0 above it, and
// the stored polynomial below it.
func (u *UT) Get(i, j int) (*Polynomial, error) {
	if err := u.checkRange(i, j); err != nil {
		return nil, err
	}
	switch {
	case i == j:
		return One(u.char)
	case j > i:
		return Zero(u.char)
	default:
		return u.entries[idx(i, j)], nil
	}
}

// Set stores v at the strictly-lower entry (i, j). It errors if j>=i or
// the index is out of range, or if v's characteristic doesn't match u's.
func (u *UT) Set(i, j int, v *Polynomial) error {
	if err := u.checkRange(i, j); err != nil {
		return err
	}
	if j >= i {
		return errors.Errorf("UT.Set: (%d,%d) is not strictly below the diagonal", i, j)
	}
	if err := u.compat(v.withCharacteristic); err != nil {
		return errors.Wrap(err, "")
	}
	u.entries[idx(i, j)] = v
	return nil
}

// Clone returns an independent copy of u; the stored polynomials
// themselves are treated as immutable and shared.
func (u *UT) Clone() *UT {
	entries := make([]*Polynomial, len(u.entries))
	copy(entries, u.entries)
	return &UT{withCharacteristic: u.withCharacteristic, rank: u.rank, entries: entries}
}

// Mul returns u@v: cell (i,j) for j<i is u[i,j]+v[i,j]+sum_{k=j+1}^{i-1} u[i,k]*v[k,j].
func (u *UT) Mul(v *UT) (*UT, error) {
	if err := u.compat(v.withCharacteristic); err != nil {
		return nil, errors.Wrap(err, "")
	}
	if u.rank != v.rank {
		return nil, errors.Errorf("UT.Mul: rank mismatch %d != %d", u.rank, v.rank)
	}
	out, err := NewUT(u.rank, u.char)
	if err != nil {
		return nil, err
	}
	for i := 2; i <= u.rank; i++ {
		for j := 1; j < i; j++ {
			uij, err := u.Get(i, j)
			if err != nil {
				return nil, err
			}
			vij, err := v.Get(i, j)
			if err != nil {
				return nil, err
			}
			cell, err := uij.Add(vij)
			if err != nil {
				return nil, err
			}
			for k := j + 1; k < i; k++ {
				uik, err := u.Get(i, k)
				if err != nil {
					return nil, err
				}
				vkj, err := v.Get(k, j)
				if err != nil {
					return nil, err
				}
				prod, err := uik.Mul(vkj)
				if err != nil {
					return nil, err
				}
				cell, err = cell.Add(prod)
				if err != nil {
					return nil, err
				}
			}
			if err := out.Set(i, j, cell); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// Sub returns the cell-by-cell difference of u and v's strictly-lower entries.
func (u *UT) Sub(v *UT) (*UT, error) {
	if err := u.compat(v.withCharacteristic); err != nil {
		return nil, errors.Wrap(err, "")
	}
	if u.rank != v.rank {
		return nil, errors.Errorf("UT.Sub: rank mismatch %d != %d", u.rank, v.rank)
	}
	out, err := NewUT(u.rank, u.char)
	if err != nil {
		return nil, err
	}
	for i := 2; i <= u.rank; i++ {
		for j := 1; j < i; j++ {
			uij, err := u.Get(i, j)
			if err != nil {
				return nil, err
			}
			vij, err := v.Get(i, j)
			if err != nil {
				return nil, err
			}
			cell, err := uij.Sub(vij)
			if err != nil {
				return nil, err
			}
			if err := out.Set(i, j, cell); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// String renders u as a rank x rank grid, one row per line, columns
// right-padded to the widest printed entry in that column.
func (u *UT) String() string {
	grid := make([][]string, u.rank)
	widths := make([]int, u.rank)
	for i := 1; i <= u.rank; i++ {
		row := make([]string, u.rank)
		for j := 1; j <= u.rank; j++ {
			v, _ := u.Get(i, j)
			row[j-1] = v.String()
			if len(row[j-1]) > widths[j-1] {
				widths[j-1] = len(row[j-1])
			}
		}
		grid[i-1] = row
	}
	var b strings.Builder
	for i, row := range grid {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, cell := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", widths[j]-len(cell)))
		}
	}
	return b.String()
}

func symbolName(prefix string, i, j int) string {
	return prefix + strconv.Itoa(i) + strconv.Itoa(j)
}
