package ievalg

// Subconj derives a zero-permission pattern from m's first sub-diagonal
// run structure. Scanning i=2..rank, consecutive indices with a
// non-zero first sub-diagonal entry m[i,i-1] form maximal runs; a cell
// (i,j) strictly below the first sub-diagonal (j+1 < i) is forced to 0
// in the returned copy iff j+1 belongs to the union of all runs, or i
// belongs to that union while j is not the maximum of some run.
// First-sub-diagonal entries themselves are never touched.
func Subconj(m *UT) (*UT, error) {
	sc := m.Clone()

	var runs []map[int]bool
	inRun := false
	for i := 2; i <= m.rank; i++ {
		v, err := sc.Get(i, i-1)
		if err != nil {
			return nil, err
		}
		if !v.IsZero() {
			if !inRun {
				runs = append(runs, make(map[int]bool))
				inRun = true
			}
			runs[len(runs)-1][i] = true
		} else {
			inRun = false
		}
	}

	maximals := make(map[int]bool)
	union := make(map[int]bool)
	for _, run := range runs {
		max := 0
		for i := range run {
			union[i] = true
			if i > max {
				max = i
			}
		}
		maximals[max] = true
	}

	zero, err := Zero(m.char)
	if err != nil {
		return nil, err
	}
	for i := 3; i <= m.rank; i++ {
		for j := 1; j <= i-2; j++ {
			if union[j+1] || (union[i] && !maximals[j]) {
				if err := sc.Set(i, j, zero); err != nil {
					return nil, err
				}
			}
		}
	}

	return sc, nil
}
