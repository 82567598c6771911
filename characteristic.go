package ievalg

import "github.com/pkg/errors"

// withCharacteristic is embedded by every type whose arithmetic lives in
// Z/pZ (or is built from such elements) so that characteristic validation
// and cross-operand compatibility checks are written once.
type withCharacteristic struct {
	char int
}

// newWithCharacteristic validates p and returns a withCharacteristic for it.
func newWithCharacteristic(p int) (withCharacteristic, error) {
	if !isSmallPrime(p) {
		return withCharacteristic{}, errors.Errorf("invalid characteristic: expected prime < 100, got %d", p)
	}
	return withCharacteristic{char: p}, nil
}

// Char returns the characteristic p.
func (w withCharacteristic) Char() int { return w.char }

// compat returns an error if w and other do not share a characteristic.
func (w withCharacteristic) compat(other withCharacteristic) error {
	if w.char != other.char {
		return errors.Errorf("incompatible characteristics: %d != %d", w.char, other.char)
	}
	return nil
}
