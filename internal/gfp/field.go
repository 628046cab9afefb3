package gfp

import "math/big"

// elemSize is large enough to hold any modulus in primeTable (up to
// 768 bits = 96 bytes).
const elemSize = 96

// Elem is a fixed-size, comparable representation of a field element,
// the big-endian bytes of a value in [0, p). Using a byte array
// instead of *big.Int lets gfp.Field satisfy polynomial.Field[Elem],
// whose generic constraint relies on == for duplicate-x detection —
// *big.Int pointers compare by identity, not value, so they can't be
// used directly.
type Elem [elemSize]byte

// FromBigInt converts a big.Int (reduced mod p) to an Elem.
func FromBigInt(v, p *big.Int) Elem {
	var e Elem
	r := new(big.Int).Mod(v, p)
	b := r.Bytes()
	copy(e[elemSize-len(b):], b)
	return e
}

// BigInt converts an Elem back to a *big.Int.
func (e Elem) BigInt() *big.Int {
	return new(big.Int).SetBytes(e[:])
}

// Field adapts modular arithmetic mod P to polynomial.Field[Elem].
type Field struct {
	P *big.Int
}

// NewField returns a Field for modulus p.
func NewField(p *big.Int) Field {
	return Field{P: p}
}

// Add returns a+b mod P.
func (f Field) Add(a, b Elem) Elem { return FromBigInt(Add(a.BigInt(), b.BigInt(), f.P), f.P) }

// Sub returns a-b mod P.
func (f Field) Sub(a, b Elem) Elem { return FromBigInt(Sub(a.BigInt(), b.BigInt(), f.P), f.P) }

// Mul returns a*b mod P.
func (f Field) Mul(a, b Elem) Elem { return FromBigInt(Mul(a.BigInt(), b.BigInt(), f.P), f.P) }

// Inv returns the modular inverse of a, or ErrDivByZero if a ≡ 0.
func (f Field) Inv(a Elem) (Elem, error) {
	inv, err := Inv(a.BigInt(), f.P)
	if err != nil {
		return Elem{}, err
	}
	return FromBigInt(inv, f.P), nil
}

// Zero returns the additive identity.
func (f Field) Zero() Elem { return Elem{} }
