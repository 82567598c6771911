package ievalg

import (
	"github.com/pkg/errors"

	"github.com/ivan-efimov/ievalg/parse"
)

// Parse reads s as polynomial text over GF(char), in the grammar
//
//	poly := term ("+" term)*
//	term := factor ("*" factor)*
//	factor := NUMBER | SYMBOL ["^" ["-"] NUMBER]
//
// e.g. "3*x*y^2+5" or "x^-1+2*z". Coefficients are reduced mod char as
// they're read; an empty string parses as 0.
func Parse(s string, char int) (*Polynomial, error) {
	terms, err := parse.Parse(s)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	p, err := Zero(char)
	if err != nil {
		return nil, err
	}
	for _, t := range terms {
		coeff, err := NewPrimeField(int(t.Coeff), char)
		if err != nil {
			return nil, errors.Wrap(err, "")
		}
		factors := make([]MonomialFactor, len(t.Factors))
		for i, f := range t.Factors {
			factors[i] = MonomialFactor{Symbol: f.Symbol, Exp: f.Exp}
		}
		if err := p.addTermChecked(NewMonomial(factors...), coeff); err != nil {
			return nil, errors.Wrap(err, "")
		}
	}
	return p, nil
}
