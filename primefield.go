package ievalg

import (
	"strconv"

	"github.com/pkg/errors"
)

// A PrimeField is an element of Z/pZ for a small prime p < 100.
type PrimeField struct {
	withCharacteristic
	value int
}

// NewPrimeField returns the element of Z/pZ represented by value, reduced
// into [0, char). It errors if char is not a prime less than 100.
func NewPrimeField(value, char int) (PrimeField, error) {
	wc, err := newWithCharacteristic(char)
	if err != nil {
		return PrimeField{}, errors.Wrap(err, "")
	}
	return PrimeField{withCharacteristic: wc, value: mod(value, char)}, nil
}

// MustPrimeField is like NewPrimeField but panics on error. It exists for
// constructing constants from literals known to be valid at compile time.
func MustPrimeField(value, char int) PrimeField {
	x, err := NewPrimeField(value, char)
	if err != nil {
		panic(err)
	}
	return x
}

// ParsePrimeField parses s as an integer in the given base and reduces it
// into Z/pZ.
func ParsePrimeField(s string, char, base int) (PrimeField, error) {
	v, err := strconv.ParseInt(s, base, 64)
	if err != nil {
		return PrimeField{}, errors.Wrap(err, "")
	}
	return NewPrimeField(int(v), char)
}

// Value returns the integer representative in [0, char).
func (x PrimeField) Value() int { return x.value }

// String returns the base-10 representation of the integer representative.
func (x PrimeField) String() string {
	return strconv.Itoa(x.value)
}

// Equal reports whether x and y represent the same element of the same field.
func (x PrimeField) Equal(y PrimeField) bool {
	return x.char == y.char && x.value == y.value
}

// Cmp compares the integer representatives of x and y. It errors if their
// characteristics differ.
func (x PrimeField) Cmp(y PrimeField) (int, error) {
	if err := x.compat(y.withCharacteristic); err != nil {
		return 0, errors.Wrap(err, "")
	}
	switch {
	case x.value < y.value:
		return -1, nil
	case x.value > y.value:
		return 1, nil
	default:
		return 0, nil
	}
}

// Add returns x+y.
func (x PrimeField) Add(y PrimeField) (PrimeField, error) {
	if err := x.compat(y.withCharacteristic); err != nil {
		return PrimeField{}, errors.Wrap(err, "")
	}
	return PrimeField{withCharacteristic: x.withCharacteristic, value: mod(x.value+y.value, x.char)}, nil
}

// Sub returns x-y.
func (x PrimeField) Sub(y PrimeField) (PrimeField, error) {
	if err := x.compat(y.withCharacteristic); err != nil {
		return PrimeField{}, errors.Wrap(err, "")
	}
	return PrimeField{withCharacteristic: x.withCharacteristic, value: mod(x.value-y.value, x.char)}, nil
}

// Neg returns -x.
func (x PrimeField) Neg() PrimeField {
	return PrimeField{withCharacteristic: x.withCharacteristic, value: mod(-x.value, x.char)}
}

// Mul returns x*y.
func (x PrimeField) Mul(y PrimeField) (PrimeField, error) {
	if err := x.compat(y.withCharacteristic); err != nil {
		return PrimeField{}, errors.Wrap(err, "")
	}
	return PrimeField{withCharacteristic: x.withCharacteristic, value: mod(x.value*y.value, x.char)}, nil
}

// Pow returns x^k. Negative k is supported via Fermat's little theorem:
// x^(-1) = x^(p-2), and x^k for k < -1 is (x^-1)^(-k).
func (x PrimeField) Pow(k int) (PrimeField, error) {
	switch {
	case k >= 0:
		return PrimeField{withCharacteristic: x.withCharacteristic, value: powMod(x.value, k, x.char)}, nil
	case k == -1:
		return x.Inv()
	default:
		inv, err := x.Inv()
		if err != nil {
			return PrimeField{}, errors.Wrap(err, "")
		}
		return inv.Pow(-k)
	}
}

// Inv returns 1/x. It errors if x is zero.
func (x PrimeField) Inv() (PrimeField, error) {
	if x.value == 0 {
		return PrimeField{}, errors.Errorf("division by zero in GF(%d)", x.char)
	}
	return PrimeField{withCharacteristic: x.withCharacteristic, value: powMod(x.value, x.char-2, x.char)}, nil
}

func mod(v, p int) int {
	v %= p
	if v < 0 {
		v += p
	}
	return v
}

func powMod(base, exp, p int) int {
	base = mod(base, p)
	result := 1 % p
	for exp > 0 {
		if exp&1 == 1 {
			result = (result * base) % p
		}
		base = (base * base) % p
		exp >>= 1
	}
	return result
}
