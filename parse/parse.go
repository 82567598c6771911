// Package parse turns polynomial text into a flat list of terms, each a
// signed integer coefficient times a product of symbol^exponent factors.
// It knows nothing about a field's characteristic; reducing coefficients
// mod p and building the canonical polynomial is the caller's job.
package parse

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/ivan-efimov/ievalg/parse/scan"
)

// A Factor is one symbol raised to an integer exponent.
type Factor struct {
	Symbol string
	Exp    int
}

// A Term is a signed coefficient times a product of Factors, e.g. the
// "3*x*y^2" in "3*x*y^2+5".
type Term struct {
	Coeff   int64
	Factors []Factor
}

type parser struct {
	s   *scan.Scanner
	tok scan.Token
}

func newParser(input string) *parser {
	p := &parser{s: scan.NewScanner(input)}
	p.advance()
	return p
}

func (p *parser) advance() {
	p.tok = p.s.Next()
}

func (p *parser) expect(t scan.Type) (scan.Token, error) {
	if p.tok.Type != t {
		return scan.Token{}, errors.Errorf("parse: at %d: expected %s, got %s", p.tok.Pos, t, p.tok.Type)
	}
	tok := p.tok
	p.advance()
	return tok, nil
}

// Parse parses s against the grammar
//
//	poly := term ("+" term)*
//	term := factor ("*" factor)*
//	factor := NUMBER | SYMBOL ["^" ["-"] NUMBER]
//
// and returns its terms. An empty or all-whitespace s parses as no terms
// (the zero polynomial).
func Parse(s string) ([]Term, error) {
	p := newParser(s)
	terms, err := p.parsePoly()
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	if p.tok.Type != scan.EOF {
		return nil, errors.Errorf("parse: at %d: unexpected %s", p.tok.Pos, p.tok.Type)
	}
	return terms, nil
}

func (p *parser) parsePoly() ([]Term, error) {
	if p.tok.Type == scan.EOF {
		return nil, nil
	}
	first, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	terms := []Term{first}
	for p.tok.Type == scan.Plus {
		p.advance()
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	return terms, nil
}

func (p *parser) parseTerm() (Term, error) {
	term := Term{Coeff: 1}
	first := true
	for {
		if !first {
			if p.tok.Type != scan.Star {
				break
			}
			p.advance()
		}
		first = false
		if err := p.parseFactor(&term); err != nil {
			return Term{}, err
		}
	}
	return term, nil
}

func (p *parser) parseFactor(term *Term) error {
	switch p.tok.Type {
	case scan.Number:
		n, err := strconv.ParseInt(p.tok.Text, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "parse: at %d: bad integer %q", p.tok.Pos, p.tok.Text)
		}
		p.advance()
		term.Coeff *= n
		return nil
	case scan.Identifier:
		sym := p.tok.Text
		p.advance()
		exp := 1
		if p.tok.Type == scan.Caret {
			p.advance()
			neg := false
			if p.tok.Type == scan.Minus {
				neg = true
				p.advance()
			}
			numTok, err := p.expect(scan.Number)
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(numTok.Text)
			if err != nil {
				return errors.Wrapf(err, "parse: at %d: bad exponent %q", numTok.Pos, numTok.Text)
			}
			exp = n
			if neg {
				exp = -exp
			}
		}
		term.Factors = append(term.Factors, Factor{Symbol: sym, Exp: exp})
		return nil
	default:
		return errors.Errorf("parse: at %d: expected number or symbol, got %s", p.tok.Pos, p.tok.Type)
	}
}
