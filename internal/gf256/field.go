package gf256

// Field adapts the package-level GF(2^8) operations to the generic
// polynomial.Field[byte] interface used by internal/polynomial.
type Field struct{}

// Add returns a+b in GF(2^8).
func (Field) Add(a, b byte) byte { return Add(a, b) }

// Sub returns a-b in GF(2^8).
func (Field) Sub(a, b byte) byte { return Sub(a, b) }

// Mul returns a*b in GF(2^8).
func (Field) Mul(a, b byte) byte { return Mul(a, b) }

// Inv returns the multiplicative inverse of a, or ErrDivByZero if a is zero.
func (Field) Inv(a byte) (byte, error) { return Inv(a) }

// Zero returns the additive identity, 0.
func (Field) Zero() byte { return 0 }
