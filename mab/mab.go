// Package mab implements the MAB solver: given a rank and a prescribed
// zero/non-zero pattern for the first sub-diagonal of M, it searches for
// unit upper-triangular matrices A, B over GF(p) such that A@A=I, B@B=I,
// and A@B=M on every permitted cell.
package mab

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/ivan-efimov/ievalg"
)

// A State is the solver's working context: bindings forced so far,
// zero/non-zero permission sets, an ordering hint, and a monotonic
// counter for fresh free constants. It is never mutated in place;
// branches derive new States via withConstraints/withZero.
type State struct {
	Rank         int
	Char         int
	Constraints  map[string]*ievalg.Polynomial
	PZero        map[string]bool
	PNZ          map[string]bool
	LastZA       bool
	FreeConstIdx int
}

func (s State) withConstraints(extra map[string]*ievalg.Polynomial) State {
	next := s
	next.Constraints = make(map[string]*ievalg.Polynomial, len(s.Constraints)+len(extra))
	for k, v := range s.Constraints {
		next.Constraints[k] = v
	}
	for k, v := range extra {
		next.Constraints[k] = v
	}
	return next
}

func (s State) withZero(sym string) State {
	next := s
	next.PZero = make(map[string]bool, len(s.PZero)+1)
	for k := range s.PZero {
		next.PZero[k] = true
	}
	next.PZero[sym] = true
	return next
}

// NextFreeConst issues the next fresh free-constant symbol r0, r1, ...
// and the State carrying the incremented counter. It is preserved as an
// extension point for a richer linear strategy; no classifier below
// currently consumes it.
func (s State) NextFreeConst() (string, State) {
	sym := fmt.Sprintf("r%d", s.FreeConstIdx)
	next := s
	next.FreeConstIdx = s.FreeConstIdx + 1
	return sym, next
}

func isVariable(sym string) bool {
	return strings.HasPrefix(sym, "a") || strings.HasPrefix(sym, "b")
}

// SymbolClass is a symbol's role in the current state, as used to
// describe the solver's reasoning (no classifier below branches on the
// NonzeroConstant/Constant distinction; it is preserved for a future,
// richer linear strategy).
type SymbolClass int

const (
	Variable SymbolClass = iota
	NonzeroConstant
	Constant
)

// ClassifySymbol reports sym's SymbolClass under the given state.
func ClassifySymbol(state State, sym string) SymbolClass {
	switch {
	case isVariable(sym):
		return Variable
	case state.PNZ[sym]:
		return NonzeroConstant
	default:
		return Constant
	}
}

// GenMABProblem builds the zero/non-zero permission sets for a rank-r
// problem whose first sub-diagonal is fixed by mask: mask[i] forces
// M[i+2,i+1] to 0 when 0, to the constant 1 when 1. len(mask) must equal
// rank-1 and every bit must be 0 or 1.
func GenMABProblem(rank int, mask []int, char int) (pZero, pNZ map[string]bool, err error) {
	if len(mask) != rank-1 {
		return nil, nil, errors.Errorf("mask length %d != rank-1 (%d)", len(mask), rank-1)
	}
	for _, b := range mask {
		if b != 0 && b != 1 {
			return nil, nil, errors.Errorf("mask bit %d is not 0 or 1", b)
		}
	}

	m, err := ievalg.NewUT(rank, char)
	if err != nil {
		return nil, nil, err
	}
	for i := 2; i <= rank; i++ {
		for j := 1; j < i; j++ {
			v, err := ievalg.NewSymbol(fmt.Sprintf("m%d%d", i, j), char)
			if err != nil {
				return nil, nil, err
			}
			if err := m.Set(i, j, v); err != nil {
				return nil, nil, err
			}
		}
	}
	for i := 0; i <= rank-2; i++ {
		v, err := ievalg.NewConstant(mask[i], char)
		if err != nil {
			return nil, nil, err
		}
		if err := m.Set(i+2, i+1, v); err != nil {
			return nil, nil, err
		}
	}

	l, err := ievalg.Subconj(m)
	if err != nil {
		return nil, nil, err
	}

	pZero = make(map[string]bool)
	pNZ = make(map[string]bool)
	for i := 2; i <= rank; i++ {
		for j := 1; j < i; j++ {
			v, err := l.Get(i, j)
			if err != nil {
				return nil, nil, err
			}
			sym := fmt.Sprintf("m%d%d", i, j)
			switch {
			case v.IsZero():
				pZero[sym] = true
			case i == j+1:
				pNZ[sym] = true
			}
		}
	}
	return pZero, pNZ, nil
}

func genAB(state State, prefix string, i, j int) (*ievalg.Polynomial, error) {
	sym := fmt.Sprintf("%s%d%d", prefix, i, j)
	val, ok := state.Constraints[sym]
	if !ok {
		v, err := ievalg.NewSymbol(sym, state.Char)
		if err != nil {
			return nil, err
		}
		val = v
	}
	if state.PZero[val.String()] {
		return ievalg.Zero(state.Char)
	}
	return val, nil
}

func genM(state State, i, j int) (*ievalg.Polynomial, error) {
	sym := fmt.Sprintf("m%d%d", i, j)
	val, err := ievalg.NewSymbol(sym, state.Char)
	if err != nil {
		return nil, err
	}
	if state.PZero[val.String()] {
		return ievalg.Zero(state.Char)
	}
	return val, nil
}

// buildEquations constructs A, B, M from the current state and returns
// the non-zero common-factor-stripped cofactors of AA, BB and AB-M in
// the row-major, matrix-ordered sequence the search walks.
func buildEquations(state State) (equations []*ievalg.Polynomial, a, b *ievalg.UT, err error) {
	a, err = ievalg.NewUT(state.Rank, state.Char)
	if err != nil {
		return nil, nil, nil, err
	}
	b, err = ievalg.NewUT(state.Rank, state.Char)
	if err != nil {
		return nil, nil, nil, err
	}
	m, err := ievalg.NewUT(state.Rank, state.Char)
	if err != nil {
		return nil, nil, nil, err
	}
	for i := 2; i <= state.Rank; i++ {
		for j := 1; j < i; j++ {
			av, err := genAB(state, "a", i, j)
			if err != nil {
				return nil, nil, nil, err
			}
			if err := a.Set(i, j, av); err != nil {
				return nil, nil, nil, err
			}
			bv, err := genAB(state, "b", i, j)
			if err != nil {
				return nil, nil, nil, err
			}
			if err := b.Set(i, j, bv); err != nil {
				return nil, nil, nil, err
			}
			mv, err := genM(state, i, j)
			if err != nil {
				return nil, nil, nil, err
			}
			if err := m.Set(i, j, mv); err != nil {
				return nil, nil, nil, err
			}
		}
	}

	aa, err := a.Mul(a)
	if err != nil {
		return nil, nil, nil, err
	}
	bb, err := b.Mul(b)
	if err != nil {
		return nil, nil, nil, err
	}
	ab, err := a.Mul(b)
	if err != nil {
		return nil, nil, nil, err
	}
	abm, err := ab.Sub(m)
	if err != nil {
		return nil, nil, nil, err
	}

	var morder []*ievalg.UT
	if state.LastZA {
		morder = []*ievalg.UT{bb, aa, abm}
	} else {
		morder = []*ievalg.UT{aa, bb, abm}
	}

	for row := 2; row <= state.Rank; row++ {
		for col := 1; col < row; col++ {
			for _, mat := range morder {
				cell, err := mat.Get(row, col)
				if err != nil {
					return nil, nil, nil, err
				}
				if cell.IsZero() {
					continue
				}
				_, g, err := ievalg.ExtractCommonFactor(cell)
				if err != nil {
					return nil, nil, nil, err
				}
				equations = append(equations, g)
			}
		}
	}
	return equations, a, b, nil
}

// distinctVariables returns the variable symbols appearing anywhere in e.
func distinctVariables(e *ievalg.Polynomial) []string {
	seen := make(map[string]bool)
	for _, t := range e.Terms() {
		for _, f := range t.Monomial.Factors() {
			if isVariable(f.Symbol) {
				seen[f.Symbol] = true
			}
		}
	}
	vars := make([]string, 0, len(seen))
	for v := range seen {
		vars = append(vars, v)
	}
	sort.Strings(vars)
	return vars
}

// resolveEq attempts direct isolation of a single variable in e. An
// empty sym with a nil error means it abstained.
func resolveEq(e *ievalg.Polynomial, char int) (sym string, val *ievalg.Polynomial, err error) {
	vars := distinctVariables(e)
	if len(vars) == 0 {
		return "", nil, Contradiction("non-zero constant equation %s", e.String())
	}
	if len(vars) > 1 {
		return "", nil, nil
	}
	v := vars[0]

	terms := e.Terms()
	countOne := 0
	var tStar ievalg.PolynomialTerm
	for _, t := range terms {
		exp := t.Monomial.Exp(v)
		if exp != 0 && exp != 1 {
			return "", nil, nil
		}
		if exp == 1 {
			countOne++
			tStar = t
		}
	}
	if countOne != 1 {
		return "", nil, nil
	}

	memberPoly, err := ievalg.NewPolynomial(char, tStar)
	if err != nil {
		return "", nil, err
	}
	diff, err := e.Sub(memberPoly)
	if err != nil {
		return "", nil, err
	}

	vMono := ievalg.NewMonomial(ievalg.MonomialFactor{Symbol: v, Exp: 1})
	divisorMono := tStar.Monomial.Div(vMono)
	invCoeff, err := tStar.Coefficient.Inv()
	if err != nil {
		return "", nil, err
	}
	invCoeffPoly, err := ievalg.NewPolynomial(char, ievalg.PolynomialTerm{Coefficient: invCoeff, Monomial: ievalg.Monomial{}})
	if err != nil {
		return "", nil, err
	}
	one, err := ievalg.NewPrimeField(1, char)
	if err != nil {
		return "", nil, err
	}
	divisorInvPoly, err := ievalg.NewPolynomial(char, ievalg.PolynomialTerm{Coefficient: one, Monomial: divisorMono.Pow(-1)})
	if err != nil {
		return "", nil, err
	}

	rhs, err := diff.Mul(invCoeffPoly)
	if err != nil {
		return "", nil, err
	}
	rhs, err = rhs.Mul(divisorInvPoly)
	if err != nil {
		return "", nil, err
	}
	return v, rhs, nil
}

// checkZeroGroup reports the sorted variables of e's single term when
// that term mentions at least two of them.
func checkZeroGroup(e *ievalg.Polynomial) ([]string, bool) {
	terms := e.Terms()
	if len(terms) != 1 {
		return nil, false
	}
	var vars []string
	for _, f := range terms[0].Monomial.Factors() {
		if isVariable(f.Symbol) {
			vars = append(vars, f.Symbol)
		}
	}
	if len(vars) < 2 {
		return nil, false
	}
	sort.Strings(vars)
	return vars, true
}

type linearCandidate struct {
	v           string
	freeMembers []*ievalg.Polynomial
}

// checkLinear scans e's terms for one mentioning exactly one variable at
// exponent 1, returning that variable paired with the free (variable-
// free) terms of e.
func checkLinear(e *ievalg.Polynomial, char int) ([]linearCandidate, error) {
	terms := e.Terms()
	var out []linearCandidate
	for _, t := range terms {
		varCount := 0
		var vName string
		var vExp int
		for _, f := range t.Monomial.Factors() {
			if isVariable(f.Symbol) {
				varCount++
				vName = f.Symbol
				vExp = f.Exp
			}
		}
		if varCount != 1 || vExp != 1 {
			continue
		}
		var free []*ievalg.Polynomial
		for _, t2 := range terms {
			hasVar := false
			for _, f := range t2.Monomial.Factors() {
				if isVariable(f.Symbol) {
					hasVar = true
					break
				}
			}
			if hasVar {
				continue
			}
			p, err := ievalg.NewPolynomial(char, t2)
			if err != nil {
				return nil, err
			}
			free = append(free, p)
		}
		out = append(out, linearCandidate{v: vName, freeMembers: free})
	}
	return out, nil
}

// Solve searches for (A, B) satisfying the constraint set rooted at the
// given state, returning a CouldNotSolveError if every strategy at the
// root exhausts, or propagating the first input-validity error
// encountered. ctx is polled between branches for cooperative cancellation.
func Solve(ctx context.Context, rank int, constraints map[string]*ievalg.Polynomial, pZero, pNZ map[string]bool, lastZA bool, freeConstIdx, char int) (a, b *ievalg.UT, err error) {
	state := State{
		Rank:         rank,
		Char:         char,
		Constraints:  constraints,
		PZero:        pZero,
		PNZ:          pNZ,
		LastZA:       lastZA,
		FreeConstIdx: freeConstIdx,
	}
	return solve(ctx, state)
}

func solve(ctx context.Context, state State) (*ievalg.UT, *ievalg.UT, error) {
	select {
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	default:
	}

	equations, a, b, err := buildEquations(state)
	if err != nil {
		return nil, nil, err
	}
	if len(equations) == 0 {
		return a, b, nil
	}

	resolved := make(map[string]*ievalg.Polynomial)
	for _, eq := range equations {
		v, val, err := resolveEq(eq, state.Char)
		if err != nil {
			if isSearchError(err) {
				return nil, nil, err
			}
			return nil, nil, err
		}
		if v == "" {
			continue
		}
		if existing, ok := resolved[v]; ok {
			if !existing.Equal(val) {
				return nil, nil, Contradiction("conflicting resolutions for %s", v)
			}
			continue
		}
		resolved[v] = val
	}
	if len(resolved) > 0 {
		return solve(ctx, state.withConstraints(resolved))
	}

	for _, eq := range equations {
		vars, ok := checkZeroGroup(eq)
		if !ok {
			continue
		}
		for _, v := range vars {
			select {
			case <-ctx.Done():
				return nil, nil, ctx.Err()
			default:
			}
			next := state.withZero(v)
			next.LastZA = strings.HasPrefix(v, "a")
			a, b, err := solve(ctx, next)
			if err == nil {
				return a, b, nil
			}
			if !isSearchError(err) {
				return nil, nil, err
			}
		}
	}

	for _, eq := range equations {
		candidates, err := checkLinear(eq, state.Char)
		if err != nil {
			return nil, nil, err
		}
		for _, cand := range candidates {
			for _, c := range []int{0, 1} {
				select {
				case <-ctx.Done():
					return nil, nil, ctx.Err()
				default:
				}
				val, err := ievalg.NewConstant(c, state.Char)
				if err != nil {
					return nil, nil, err
				}
				next := state.withConstraints(map[string]*ievalg.Polynomial{cand.v: val})
				next = next.withZero(cand.v)
				a, b, err := solve(ctx, next)
				if err == nil {
					return a, b, nil
				}
				if !isSearchError(err) {
					return nil, nil, err
				}
			}
			for _, fm := range cand.freeMembers {
				select {
				case <-ctx.Done():
					return nil, nil, ctx.Err()
				default:
				}
				next := state.withConstraints(map[string]*ievalg.Polynomial{cand.v: fm})
				a, b, err := solve(ctx, next)
				if err == nil {
					return a, b, nil
				}
				if !isSearchError(err) {
					return nil, nil, err
				}
			}
		}
	}

	return nil, nil, CouldNotSolve("rank %d: exhausted resolve/zero-group/linear strategies", state.Rank)
}
