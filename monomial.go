package ievalg

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// A MonomialFactor is one symbol^exponent factor of a Monomial.
type MonomialFactor struct {
	Symbol string
	Exp    int
}

// A Monomial is a canonical product of symbol->integer-exponent factors.
// Exponents may be negative (Laurent). The zero value is the monomial 1.
type Monomial struct {
	factors []MonomialFactor // sorted by Symbol, no zero exponents
}

// NewMonomial builds the canonical monomial from the given factors, summing
// exponents of repeated symbols and dropping any that sum to zero.
func NewMonomial(factors ...MonomialFactor) Monomial {
	acc := make(map[string]int, len(factors))
	for _, f := range factors {
		acc[f.Symbol] += f.Exp
	}
	return monomialFromMap(acc)
}

func monomialFromMap(acc map[string]int) Monomial {
	syms := make([]string, 0, len(acc))
	for s, e := range acc {
		if e != 0 {
			syms = append(syms, s)
		}
	}
	sort.Strings(syms)
	m := Monomial{factors: make([]MonomialFactor, 0, len(syms))}
	for _, s := range syms {
		m.factors = append(m.factors, MonomialFactor{Symbol: s, Exp: acc[s]})
	}
	return m
}

// Factors returns the canonical, symbol-sorted factors of m. The slice must
// not be mutated by the caller.
func (m Monomial) Factors() []MonomialFactor { return m.factors }

// Symbols returns the sorted distinct symbols appearing in m.
func (m Monomial) Symbols() []string {
	syms := make([]string, len(m.factors))
	for i, f := range m.factors {
		syms[i] = f.Symbol
	}
	return syms
}

// Exp returns the exponent of sym in m, which is 0 if sym does not appear.
func (m Monomial) Exp(sym string) int {
	for _, f := range m.factors {
		if f.Symbol == sym {
			return f.Exp
		}
	}
	return 0
}

// IsOne reports whether m is the empty monomial 1.
func (m Monomial) IsOne() bool { return len(m.factors) == 0 }

// Equal reports whether m and n are the same canonical monomial.
func (m Monomial) Equal(n Monomial) bool {
	if len(m.factors) != len(n.factors) {
		return false
	}
	for i := range m.factors {
		if m.factors[i] != n.factors[i] {
			return false
		}
	}
	return true
}

// Mul returns the product m*n, merging exponents by addition.
func (m Monomial) Mul(n Monomial) Monomial {
	acc := make(map[string]int, len(m.factors)+len(n.factors))
	for _, f := range m.factors {
		acc[f.Symbol] += f.Exp
	}
	for _, f := range n.factors {
		acc[f.Symbol] += f.Exp
	}
	return monomialFromMap(acc)
}

// Pow returns m^k, multiplying every exponent by k.
func (m Monomial) Pow(k int) Monomial {
	if k == 0 {
		return Monomial{}
	}
	out := make([]MonomialFactor, len(m.factors))
	for i, f := range m.factors {
		out[i] = MonomialFactor{Symbol: f.Symbol, Exp: f.Exp * k}
	}
	return Monomial{factors: out}
}

// Div returns m/n, i.e. m multiplied by n with every exponent negated.
func (m Monomial) Div(n Monomial) Monomial {
	return m.Mul(n.Pow(-1))
}

// String renders m in canonical form: factors ordered by symbol, "sym" when
// the exponent is 1, "sym^exp" otherwise, and "1" for the empty monomial.
func (m Monomial) String() string {
	if len(m.factors) == 0 {
		return "1"
	}
	var b strings.Builder
	for i, f := range m.factors {
		if i > 0 {
			b.WriteByte('*')
		}
		b.WriteString(f.Symbol)
		if f.Exp != 1 {
			b.WriteByte('^')
			b.WriteString(strconv.Itoa(f.Exp))
		}
	}
	return b.String()
}

// GoString supports %#v debug printing.
func (m Monomial) GoString() string {
	return fmt.Sprintf("Monomial(%s)", m.String())
}
