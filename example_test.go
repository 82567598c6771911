package ievalg_test

import (
	"fmt"

	"github.com/ivan-efimov/ievalg"
)

func ExampleParse() {
	p, err := ievalg.Parse("3*x*y^2+5", 7)
	if err != nil {
		panic(err)
	}
	fmt.Println(p)
	// Output: 5+3*x*y^2
}

func ExamplePolynomial_add() {
	a, _ := ievalg.Parse("a+b", 2)
	b, _ := ievalg.Parse("b+c", 2)
	sum, err := a.Add(b)
	if err != nil {
		panic(err)
	}
	fmt.Println(sum)
	// Output: a+c
}

func ExampleExtractCommonFactor() {
	f, _ := ievalg.Parse("a^2+a*b^2", 2)
	cf, g, err := ievalg.ExtractCommonFactor(f)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%s, %s\n", cf, g)
	// Output: a, a+b^2
}

func ExampleUT_mul() {
	char := 2
	a, _ := ievalg.NewUT(3, char)
	b, _ := ievalg.NewUT(3, char)
	a21, _ := ievalg.NewSymbol("a21", char)
	_ = a.Set(2, 1, a21)
	b21, _ := ievalg.NewSymbol("b21", char)
	_ = b.Set(2, 1, b21)

	ab, err := a.Mul(b)
	if err != nil {
		panic(err)
	}
	v, _ := ab.Get(2, 1)
	fmt.Println(v)
	// Output: a21+b21
}
