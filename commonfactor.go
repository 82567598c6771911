package ievalg

import "github.com/pkg/errors"

// ExtractCommonFactor returns (cf, g) such that f = cf*g, where cf is a
// single monomial (coefficient 1) and g has no symbol common to every term
// with a uniform minimum exponent.
//
// If f is 0, 1, or has exactly one term, cf is 1 and g is f unchanged.
// Otherwise cf is the product, over symbols common to every term of f, of
// that symbol raised to the minimum exponent it takes across those terms.
func ExtractCommonFactor(f *Polynomial) (cf, g *Polynomial, err error) {
	one, err := One(f.Char())
	if err != nil {
		return nil, nil, errors.Wrap(err, "")
	}
	if f.IsZero() || f.IsOne() || f.Len() == 1 {
		return one, f, nil
	}

	terms := f.Terms()
	common := make(map[string]bool)
	for _, fac := range terms[0].Monomial.Factors() {
		common[fac.Symbol] = true
	}
	for _, t := range terms[1:] {
		present := make(map[string]bool)
		for _, fac := range t.Monomial.Factors() {
			present[fac.Symbol] = true
		}
		for sym := range common {
			if !present[sym] {
				delete(common, sym)
			}
		}
	}

	minExp := make(map[string]int, len(common))
	for sym := range common {
		minExp[sym] = terms[0].Monomial.Exp(sym)
	}
	for _, t := range terms[1:] {
		for sym := range common {
			if e := t.Monomial.Exp(sym); e < minExp[sym] {
				minExp[sym] = e
			}
		}
	}

	cfFactors := make([]MonomialFactor, 0, len(minExp))
	for sym, exp := range minExp {
		cfFactors = append(cfFactors, MonomialFactor{Symbol: sym, Exp: exp})
	}
	cfMono := NewMonomial(cfFactors...)

	cfCoeff, err := NewPrimeField(1, f.Char())
	if err != nil {
		return nil, nil, errors.Wrap(err, "")
	}
	cf, err = NewPolynomial(f.Char(), PolynomialTerm{Coefficient: cfCoeff, Monomial: cfMono})
	if err != nil {
		return nil, nil, errors.Wrap(err, "")
	}

	gTerms := make([]PolynomialTerm, len(terms))
	for i, t := range terms {
		gTerms[i] = PolynomialTerm{Coefficient: t.Coefficient, Monomial: t.Monomial.Div(cfMono)}
	}
	g, err = NewPolynomial(f.Char(), gTerms...)
	if err != nil {
		return nil, nil, errors.Wrap(err, "")
	}
	return cf, g, nil
}
