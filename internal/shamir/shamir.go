// Package shamir implements Shamir's Secret Sharing over GF(2^8),
// splitting a byte secret into N shares and reconstructing it from any
// T of them. It evaluates and interpolates one polynomial per byte
// position using internal/polynomial over internal/gf256, generalized
// from a single-string share encoding to the RawShare value type
// spec.md §3 names.
package shamir

import (
	"io"

	"github.com/sbk-go/sbk/internal/gf256"
	"github.com/sbk-go/sbk/internal/polynomial"
	"github.com/sbk-go/sbk/internal/randsrc"
)

// RawShare is one share of a split secret: an x-coordinate (1..255,
// never 0) and the polynomial values at that x for every byte
// position of the secret.
type RawShare struct {
	X  int
	Ys []byte
}

var field = gf256.Field{} //nolint:gochecknoglobals // stateless field adapter

// Split divides secret into n shares, t of which are required to
// reconstruct it. Coefficients are drawn from rng (crypto/rand.Reader
// in production; see internal/randsrc for the debug-gated deterministic
// override used by tests and reference-vector reproduction).
func Split(rng io.Reader, secret []byte, t, n int) ([]RawShare, error) {
	if t < 2 {
		return nil, ErrThresholdInvalid
	}
	if n < t {
		return nil, ErrSharesInsufficient
	}
	if n > 255 {
		return nil, ErrSharesExceedMax
	}
	if len(secret) == 0 {
		return nil, ErrSecretEmpty
	}

	// One random polynomial of degree t-1 per secret byte: coefficients
	// coeffs[i*(t-1) : (i+1)*(t-1)] are c1..c_{t-1} for byte i (c0 is
	// the secret byte itself).
	coeffs, err := randsrc.Bytes(rng, len(secret)*(t-1))
	if err != nil {
		return nil, err
	}

	shares := make([]RawShare, n)
	for x := 1; x <= n; x++ {
		ys := make([]byte, len(secret))
		xb := byte(x)
		for i, secretByte := range secret {
			polyCoeffs := make([]byte, t)
			polyCoeffs[0] = secretByte
			copy(polyCoeffs[1:], coeffs[i*(t-1):(i+1)*(t-1)])
			ys[i] = polynomial.Eval(field, polyCoeffs, xb)
		}
		shares[x-1] = RawShare{X: x, Ys: ys}
	}
	return shares, nil
}

// Join reconstructs the secret from shares, which must contain at
// least t distinct, same-length shares none of which has x=0.
func Join(shares []RawShare, t int) ([]byte, error) {
	if len(shares) == 0 {
		return nil, ErrNoShares
	}

	secretLen := len(shares[0].Ys)
	seen := make(map[byte]bool, len(shares))
	unique := make([]RawShare, 0, len(shares))

	for _, s := range shares {
		if s.X == 0 {
			return nil, ErrForcedSecret
		}
		if len(s.Ys) != secretLen {
			return nil, ErrLengthMismatch
		}
		xb := byte(s.X)
		if seen[xb] {
			return nil, ErrDuplicateX
		}
		seen[xb] = true
		unique = append(unique, s)
	}

	if len(unique) < t {
		return nil, ErrInsufficientShares
	}
	unique = unique[:t]

	secret := make([]byte, secretLen)
	for i := 0; i < secretLen; i++ {
		points := make([]polynomial.Point[byte], len(unique))
		for j, s := range unique {
			points[j] = polynomial.Point[byte]{X: byte(s.X), Y: s.Ys[i]}
		}
		y, err := polynomial.InterpolateAtZero(field, points)
		if err != nil {
			return nil, err
		}
		secret[i] = y
	}
	return secret, nil
}
