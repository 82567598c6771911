package ievalg

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"

	"github.com/jba/omap"
	"github.com/pkg/errors"
)

// A PolynomialTerm pairs a Monomial with its non-zero PrimeField coefficient.
type PolynomialTerm struct {
	Coefficient PrimeField
	Monomial    Monomial
}

type polyTerm struct {
	mono  Monomial
	coeff PrimeField
}

// A Polynomial is a finite formal sum of (Monomial, PrimeField) pairs: no
// term with a zero coefficient, and identical monomials are coalesced. Terms
// are stored in an ordered map keyed by each monomial's canonical string, so
// canonical iteration order falls out of the map itself.
type Polynomial struct {
	withCharacteristic
	m *omap.MapFunc[string, polyTerm]
}

func newEmptyPolynomial(wc withCharacteristic) *Polynomial {
	return &Polynomial{
		withCharacteristic: wc,
		m:                  omap.NewMapFunc[string, polyTerm](strings.Compare),
	}
}

// Zero returns the additive identity 0 in characteristic char.
func Zero(char int) (*Polynomial, error) {
	wc, err := newWithCharacteristic(char)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	return newEmptyPolynomial(wc), nil
}

// One returns the multiplicative identity 1 in characteristic char.
func One(char int) (*Polynomial, error) {
	p, err := Zero(char)
	if err != nil {
		return nil, err
	}
	one, err := NewPrimeField(1, char)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	p.addTerm(Monomial{}, one, 1)
	return p, nil
}

// NewConstant returns the constant polynomial value, reduced mod char.
func NewConstant(value, char int) (*Polynomial, error) {
	p, err := Zero(char)
	if err != nil {
		return nil, err
	}
	c, err := NewPrimeField(value, char)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	p.addTerm(Monomial{}, c, 1)
	return p, nil
}

// NewSymbol returns the single-variable polynomial consisting of sym to the
// first power.
func NewSymbol(sym string, char int) (*Polynomial, error) {
	p, err := Zero(char)
	if err != nil {
		return nil, err
	}
	one, err := NewPrimeField(1, char)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	p.addTerm(NewMonomial(MonomialFactor{Symbol: sym, Exp: 1}), one, 1)
	return p, nil
}

// NewPolynomial builds the canonical polynomial from the given terms,
// coalescing repeated monomials and dropping any whose coefficient sums to
// zero. All term coefficients must share characteristic char.
func NewPolynomial(char int, terms ...PolynomialTerm) (*Polynomial, error) {
	p, err := Zero(char)
	if err != nil {
		return nil, err
	}
	for _, t := range terms {
		if err := p.addTermChecked(t.Monomial, t.Coefficient); err != nil {
			return nil, errors.Wrap(err, "")
		}
	}
	return p, nil
}

func (p *Polynomial) addTermChecked(mono Monomial, coeff PrimeField) error {
	if err := p.compat(coeff.withCharacteristic); err != nil {
		return errors.Wrap(err, "")
	}
	p.addTerm(mono, coeff, 1)
	return nil
}

// addTerm adds (or, for sign<0, subtracts) coeff*mono into p in place. The
// caller must already have checked characteristic compatibility.
func (p *Polynomial) addTerm(mono Monomial, coeff PrimeField, sign int) {
	key := mono.String()
	cur, ok := p.m.Get(key)
	curCoeff := coeff
	curCoeff.value = 0
	if ok {
		curCoeff = cur.coeff
	}
	var newCoeff PrimeField
	if sign < 0 {
		newCoeff, _ = curCoeff.Sub(coeff)
	} else {
		newCoeff, _ = curCoeff.Add(coeff)
	}
	if newCoeff.value == 0 {
		p.m.Delete(key)
	} else {
		p.m.Set(key, polyTerm{mono: mono, coeff: newCoeff})
	}
}

// clone returns an independent copy of p.
func (p *Polynomial) clone() *Polynomial {
	z := newEmptyPolynomial(p.withCharacteristic)
	for _, t := range p.sortedTerms() {
		z.m.Set(t.mono.String(), t)
	}
	return z
}

// sortedTerms returns p's terms ordered by canonical monomial string.
func (p *Polynomial) sortedTerms() []polyTerm {
	keys := make([]string, 0, p.m.Len())
	for k := range p.m.All() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]polyTerm, len(keys))
	for i, k := range keys {
		out[i], _ = p.m.Get(k)
	}
	return out
}

// Len reports the number of terms in p.
func (p *Polynomial) Len() int { return p.m.Len() }

// IsZero reports whether p is the zero polynomial.
func (p *Polynomial) IsZero() bool { return p.m.Len() == 0 }

// IsOne reports whether p is the constant polynomial 1.
func (p *Polynomial) IsOne() bool {
	if p.m.Len() != 1 {
		return false
	}
	t, _ := p.m.Get(Monomial{}.String())
	return t.mono.IsOne() && t.coeff.value == 1
}

// Terms returns p's terms in canonical (monomial-string-sorted) order.
func (p *Polynomial) Terms() []PolynomialTerm {
	st := p.sortedTerms()
	out := make([]PolynomialTerm, len(st))
	for i, t := range st {
		out[i] = PolynomialTerm{Coefficient: t.coeff, Monomial: t.mono}
	}
	return out
}

// Equal reports whether p and q have identical canonical forms.
func (p *Polynomial) Equal(q *Polynomial) bool {
	if p.char != q.char {
		return false
	}
	pt, qt := p.sortedTerms(), q.sortedTerms()
	if len(pt) != len(qt) {
		return false
	}
	for i := range pt {
		if !pt[i].mono.Equal(qt[i].mono) || !pt[i].coeff.Equal(qt[i].coeff) {
			return false
		}
	}
	return true
}

// Hash returns a deterministic hash over the canonical multiset of
// (monomial, coefficient) pairs, suitable for use as a map key alongside Equal.
func (p *Polynomial) Hash() uint64 {
	h := fnv.New64a()
	for _, t := range p.sortedTerms() {
		fmt.Fprintf(h, "%s|%d;", t.mono.String(), t.coeff.value)
	}
	return h.Sum64()
}

// Add returns p+q.
func (p *Polynomial) Add(q *Polynomial) (*Polynomial, error) {
	if err := p.compat(q.withCharacteristic); err != nil {
		return nil, errors.Wrap(err, "")
	}
	z := p.clone()
	for _, t := range q.sortedTerms() {
		z.addTerm(t.mono, t.coeff, 1)
	}
	return z, nil
}

// Sub returns p-q.
func (p *Polynomial) Sub(q *Polynomial) (*Polynomial, error) {
	if err := p.compat(q.withCharacteristic); err != nil {
		return nil, errors.Wrap(err, "")
	}
	z := p.clone()
	for _, t := range q.sortedTerms() {
		z.addTerm(t.mono, t.coeff, -1)
	}
	return z, nil
}

// Neg returns -p.
func (p *Polynomial) Neg() *Polynomial {
	z := newEmptyPolynomial(p.withCharacteristic)
	for _, t := range p.sortedTerms() {
		z.addTerm(t.mono, t.coeff, -1)
	}
	return z
}

// Mul returns p*q, the Cartesian product of terms accumulated into the
// canonical multiset.
func (p *Polynomial) Mul(q *Polynomial) (*Polynomial, error) {
	if err := p.compat(q.withCharacteristic); err != nil {
		return nil, errors.Wrap(err, "")
	}
	z := newEmptyPolynomial(p.withCharacteristic)
	for _, pt := range p.sortedTerms() {
		for _, qt := range q.sortedTerms() {
			c, err := pt.coeff.Mul(qt.coeff)
			if err != nil {
				return nil, errors.Wrap(err, "")
			}
			z.addTerm(pt.mono.Mul(qt.mono), c, 1)
		}
	}
	return z, nil
}

// Pow returns p^k. k=0 returns 1. Negative k is only supported for
// single-term polynomials (a monomial times a non-zero coefficient); a
// negative power of a multi-term polynomial errors as unsupported.
func (p *Polynomial) Pow(k int) (*Polynomial, error) {
	if k == 0 {
		return One(p.char)
	}
	if k < 0 {
		if p.m.Len() != 1 {
			return nil, errors.Errorf("unsupported: negative power %d of multi-term polynomial %s", k, p.String())
		}
		t := p.sortedTerms()[0]
		c, err := t.coeff.Pow(k)
		if err != nil {
			return nil, errors.Wrap(err, "")
		}
		z := newEmptyPolynomial(p.withCharacteristic)
		z.addTerm(t.mono.Pow(k), c, 1)
		return z, nil
	}
	z, err := One(p.char)
	if err != nil {
		return nil, err
	}
	for range k {
		z, err = z.Mul(p)
		if err != nil {
			return nil, err
		}
	}
	return z, nil
}

// String renders p in canonical form: terms ordered by their monomial's
// canonical string, coefficient omitted when it is 1 and the monomial is
// non-empty, terms joined by "+", and "0" for the zero polynomial.
func (p *Polynomial) String() string {
	terms := p.sortedTerms()
	if len(terms) == 0 {
		return "0"
	}
	parts := make([]string, len(terms))
	for i, t := range terms {
		switch {
		case t.coeff.value == 1 && !t.mono.IsOne():
			parts[i] = t.mono.String()
		default:
			ms := t.mono.String()
			if t.mono.IsOne() {
				parts[i] = t.coeff.String()
			} else {
				parts[i] = t.coeff.String() + "*" + ms
			}
		}
	}
	return strings.Join(parts, "+")
}
