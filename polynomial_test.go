package ievalg

import (
	"fmt"
	"testing"
)

func TestPolynomialZeroOneString(t *testing.T) {
	z, err := Zero(2)
	if err != nil {
		t.Fatal(err)
	}
	if z.String() != "0" {
		t.Errorf("Zero().String() = %q, want \"0\"", z.String())
	}
	one, err := One(2)
	if err != nil {
		t.Fatal(err)
	}
	if one.String() != "1" {
		t.Errorf("One().String() = %q, want \"1\"", one.String())
	}
}

func TestPolynomialAddGF2(t *testing.T) {
	char := 2
	a, err := Parse("a+b", char)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse("b+c", char)
	if err != nil {
		t.Fatal(err)
	}
	sum, err := a.Add(b)
	if err != nil {
		t.Fatal(err)
	}
	want, err := Parse("a+c", char)
	if err != nil {
		t.Fatal(err)
	}
	if !sum.Equal(want) {
		t.Errorf("(a+b)+(b+c) = %s, want %s", sum, want)
	}
}

func TestPolynomialMulGF2(t *testing.T) {
	char := 2
	a, err := Parse("a+b", char)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse("b+c", char)
	if err != nil {
		t.Fatal(err)
	}
	prod, err := a.Mul(b)
	if err != nil {
		t.Fatal(err)
	}
	want, err := Parse("a*b+a*c+b*c+b^2", char)
	if err != nil {
		t.Fatal(err)
	}
	if !prod.Equal(want) {
		t.Errorf("(a+b)*(b+c) = %s, want %s", prod, want)
	}
}

func TestPolynomialInverseMonomial(t *testing.T) {
	char := 2
	a, err := Parse("a", char)
	if err != nil {
		t.Fatal(err)
	}
	aInv, err := Parse("a^-1", char)
	if err != nil {
		t.Fatal(err)
	}
	prod, err := a.Mul(aInv)
	if err != nil {
		t.Fatal(err)
	}
	one, err := One(char)
	if err != nil {
		t.Fatal(err)
	}
	if !prod.Equal(one) {
		t.Errorf("a*a^-1 = %s, want 1", prod)
	}
}

func TestPolynomialRingLaws(t *testing.T) {
	char := 5
	a, err := Parse("2*x+3*y", char)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse("x^2+4", char)
	if err != nil {
		t.Fatal(err)
	}
	c, err := Parse("x*y+1", char)
	if err != nil {
		t.Fatal(err)
	}

	lhs, err := a.Add(b)
	if err != nil {
		t.Fatal(err)
	}
	lhs, err = lhs.Add(c)
	if err != nil {
		t.Fatal(err)
	}
	rhs, err := b.Add(c)
	if err != nil {
		t.Fatal(err)
	}
	rhs, err = a.Add(rhs)
	if err != nil {
		t.Fatal(err)
	}
	if !lhs.Equal(rhs) {
		t.Errorf("addition not associative: %s != %s", lhs, rhs)
	}

	ab, err := a.Mul(b)
	if err != nil {
		t.Fatal(err)
	}
	ba, err := b.Mul(a)
	if err != nil {
		t.Fatal(err)
	}
	if !ab.Equal(ba) {
		t.Errorf("multiplication not commutative: %s != %s", ab, ba)
	}

	bc, err := b.Add(c)
	if err != nil {
		t.Fatal(err)
	}
	distLHS, err := a.Mul(bc)
	if err != nil {
		t.Fatal(err)
	}
	ab2, err := a.Mul(b)
	if err != nil {
		t.Fatal(err)
	}
	ac, err := a.Mul(c)
	if err != nil {
		t.Fatal(err)
	}
	distRHS, err := ab2.Add(ac)
	if err != nil {
		t.Fatal(err)
	}
	if !distLHS.Equal(distRHS) {
		t.Errorf("multiplication does not distribute: %s != %s", distLHS, distRHS)
	}
}

func TestPolynomialSubSelfIsZero(t *testing.T) {
	p, err := Parse("3*x*y^2+4", 5)
	if err != nil {
		t.Fatal(err)
	}
	diff, err := p.Sub(p)
	if err != nil {
		t.Fatal(err)
	}
	if !diff.IsZero() {
		t.Errorf("p-p = %s, want 0", diff)
	}
	negSum, err := p.Add(p.Neg())
	if err != nil {
		t.Fatal(err)
	}
	if !negSum.IsZero() {
		t.Errorf("p+(-p) = %s, want 0", negSum)
	}
}

func TestPolynomialTermDroppedMod2(t *testing.T) {
	p, err := Parse("2", 2)
	if err != nil {
		t.Fatal(err)
	}
	if !p.IsZero() {
		t.Errorf("Parse(\"2\",2) = %s, want 0", p)
	}
}

func TestPolynomialPowNegativeMultiTermErrors(t *testing.T) {
	p, err := Parse("a+b", 2)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Pow(-1); err == nil {
		t.Fatal("want error for negative power of multi-term polynomial")
	}
}

func TestPolynomialHashEqualConsistent(t *testing.T) {
	tests := []struct{ a, b string }{
		{"a+b", "b+a"},
		{"a*b+1", "1+b*a"},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			t.Parallel()
			pa, err := Parse(tt.a, 5)
			if err != nil {
				t.Fatal(err)
			}
			pb, err := Parse(tt.b, 5)
			if err != nil {
				t.Fatal(err)
			}
			if !pa.Equal(pb) {
				t.Fatalf("%q and %q should be equal", tt.a, tt.b)
			}
			if pa.Hash() != pb.Hash() {
				t.Fatalf("%q and %q should hash equal", tt.a, tt.b)
			}
		})
	}
}

func TestPolynomialPrimeFieldRendering(t *testing.T) {
	p, err := Parse("1*2*3+a^2", 11)
	if err != nil {
		t.Fatal(err)
	}
	if p.String() != "6+a^2" {
		t.Errorf("Parse(\"1*2*3+a^2\",11).String() = %q, want \"6+a^2\"", p.String())
	}
}
