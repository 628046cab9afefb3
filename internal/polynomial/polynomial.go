// Package polynomial evaluates and interpolates polynomials over a
// caller-supplied finite field. It is shared by internal/shamir (GF(256)
// splitting) and internal/reedsolomon (GF(256) systematic encoding),
// and is exercised against internal/gfp in tests as the validation
// field named in spec.md §4.2.
package polynomial

import "errors"

// ErrDuplicateX indicates two points share the same x-coordinate.
var ErrDuplicateX = errors.New("polynomial: duplicate x coordinate")

// ErrPointAtZero indicates a point has x=0. Interpolate accepts such a
// point; RejectZeroX returns this error for callers that must not.
var ErrPointAtZero = errors.New("polynomial: point at x=0")

// ErrNoPoints indicates zero points were supplied.
var ErrNoPoints = errors.New("polynomial: no points supplied")

// Field is the minimal arithmetic a field element type must support
// for polynomial evaluation and Lagrange interpolation. Implementations
// are expected to be value types (comparable with ==) so callers can
// detect duplicate x-coordinates directly.
type Field[T comparable] interface {
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Inv(a T) (T, error)
	Zero() T
}

// Point is one (x, y) sample of a polynomial over T.
type Point[T comparable] struct {
	X T
	Y T
}

// Eval evaluates the polynomial with coefficients coeffs (coeffs[0] is
// the constant term) at x, using Horner's method in field f.
func Eval[T comparable](f Field[T], coeffs []T, x T) T {
	if len(coeffs) == 0 {
		return f.Zero()
	}
	acc := coeffs[len(coeffs)-1]
	for i := len(coeffs) - 2; i >= 0; i-- {
		acc = f.Add(f.Mul(acc, x), coeffs[i])
	}
	return acc
}

// Interpolate evaluates, at x, the unique polynomial of degree <
// len(points) passing through all of points, via Lagrange
// interpolation. All x-coordinates in points must be distinct; if
// evalAtZeroOnly callers want the constant term they pass x = f.Zero().
func Interpolate[T comparable](f Field[T], points []Point[T], x T) (T, error) {
	var zero T
	if len(points) == 0 {
		return zero, ErrNoPoints
	}

	seen := make(map[T]struct{}, len(points))
	for _, p := range points {
		if _, dup := seen[p.X]; dup {
			return zero, ErrDuplicateX
		}
		seen[p.X] = struct{}{}
	}

	result := f.Zero()
	for i, pi := range points {
		term := pi.Y
		for j, pj := range points {
			if i == j {
				continue
			}
			num := f.Sub(x, pj.X)
			den := f.Sub(pi.X, pj.X)
			denInv, err := f.Inv(den)
			if err != nil {
				return zero, err
			}
			term = f.Mul(term, f.Mul(num, denInv))
		}
		result = f.Add(result, term)
	}
	return result, nil
}

// InterpolateAtZero is the common case (secret reconstruction, ECC
// decoding): interpolate the polynomial's value at x=0.
func InterpolateAtZero[T comparable](f Field[T], points []Point[T]) (T, error) {
	return Interpolate(f, points, f.Zero())
}

// RejectZeroX returns ErrPointAtZero if any point has x equal to
// f.Zero(), used by callers (Shamir join) for whom an x=0 point is a
// forced-secret attack rather than a legitimate sample.
func RejectZeroX[T comparable](f Field[T], points []Point[T]) error {
	for _, p := range points {
		if p.X == f.Zero() {
			return ErrPointAtZero
		}
	}
	return nil
}
