// Package reedsolomon implements a systematic Reed-Solomon code over
// GF(2^8): given an L-byte message, it emits L bytes of parity so that
// the 2L-byte block tolerates up to L erasures. A corrupted symbol in a
// position marked known is detected (decoding fails) but not corrected.
// Both encoding and decoding reuse
// internal/polynomial over internal/gf256, the same primitives
// internal/shamir uses for secret splitting.
package reedsolomon

import (
	"errors"

	"github.com/sbk-go/sbk/internal/gf256"
	"github.com/sbk-go/sbk/internal/polynomial"
)

// ErrEmptyMessage indicates Encode was called with a zero-length message.
var ErrEmptyMessage = errors.New("reedsolomon: message cannot be empty")

// ErrMessageTooLarge indicates the message exceeds MaxMessageLen.
var ErrMessageTooLarge = errors.New("reedsolomon: message exceeds maximum length")

// ErrMaskLength indicates the known-mask length does not match the block.
var ErrMaskLength = errors.New("reedsolomon: known mask length must equal block length")

// ErrTooFewKnown indicates fewer than L of the 2L positions are known,
// which makes the message mathematically unrecoverable.
var ErrTooFewKnown = errors.New("reedsolomon: fewer than L positions known")

// ErrUnrecoverable indicates no subset of L known positions produced a
// polynomial consistent with all other known positions.
var ErrUnrecoverable = errors.New("reedsolomon: block is unrecoverable")

// MaxMessageLen is the longest message Encode accepts. SBK's salts and
// shares are well under this. Decode does not check it; its subset
// search is bounded by maxCombinations instead.
const MaxMessageLen = 128

// maxCombinations bounds the exhaustive search in decodeWithErrors so
// a pathological (known, L) pair can't hang the caller; it returns
// ErrUnrecoverable instead of iterating forever.
const maxCombinations = 2_000_000

var field = gf256.Field{} //nolint:gochecknoglobals // stateless field adapter

// Encode returns message||ecc, a 2*len(message)-byte systematic block.
// Message byte i is treated as the point (i, message[i]); ecc[j] is
// the unique degree-<L polynomial through those points evaluated at
// L+j.
func Encode(message []byte) ([]byte, error) {
	l := len(message)
	if l == 0 {
		return nil, ErrEmptyMessage
	}
	if l > MaxMessageLen {
		return nil, ErrMessageTooLarge
	}

	points := make([]polynomial.Point[byte], l)
	for i, b := range message {
		points[i] = polynomial.Point[byte]{X: byte(i), Y: b}
	}

	ecc := make([]byte, l)
	for j := 0; j < l; j++ {
		y, err := polynomial.Interpolate(field, points, byte(l+j))
		if err != nil {
			return nil, err
		}
		ecc[j] = y
	}

	block := make([]byte, 0, 2*l)
	block = append(block, message...)
	block = append(block, ecc...)
	return block, nil
}

// Decode recovers the original L-byte message from a 2L-byte block.
// known[i] reports whether block[i] should be trusted; false marks an
// erasure. With more than L known positions, Decode accepts only a
// polynomial that agrees with every known position, per spec.md §4.5:
// a known position holding a wrong value makes it return
// ErrUnrecoverable; it is not corrected by marking it as an erasure.
func Decode(block []byte, known []bool) ([]byte, error) {
	if len(known) != len(block) {
		return nil, ErrMaskLength
	}
	n := len(block)
	l := n / 2

	knownIdx := make([]int, 0, n)
	for i, ok := range known {
		if ok {
			knownIdx = append(knownIdx, i)
		}
	}
	if len(knownIdx) < l {
		return nil, ErrTooFewKnown
	}

	// Base case: exactly L known positions. No redundancy to check
	// against, so they are trusted outright (erasure-only recovery is
	// always attempted this way and must always succeed per spec.md §4.5).
	if len(knownIdx) == l {
		return interpolateMessage(pointsFrom(block, knownIdx), l)
	}

	return decodeWithErrors(block, knownIdx, l)
}

func pointsFrom(block []byte, idx []int) []polynomial.Point[byte] {
	points := make([]polynomial.Point[byte], len(idx))
	for i, x := range idx {
		points[i] = polynomial.Point[byte]{X: byte(x), Y: block[x]}
	}
	return points
}

func interpolateMessage(points []polynomial.Point[byte], l int) ([]byte, error) {
	message := make([]byte, l)
	for i := 0; i < l; i++ {
		// If position i happens to be one of the support points, its
		// value is already exact; interpolating still reproduces it
		// since the points define that unique polynomial.
		y, err := polynomial.Interpolate(field, points, byte(i))
		if err != nil {
			return nil, err
		}
		message[i] = y
	}
	return message, nil
}

// decodeWithErrors handles len(knownIdx) > l: some known positions may
// be corrupted. It first checks the uncorrupted base case — the first
// L known positions alone, which is the overwhelmingly common case of
// a fully-known, untampered block — before falling back to an
// exhaustive L-sized subset search that accepts the first subset whose
// interpolated polynomial agrees with every other known position
// (spec.md §4.5's "trial" search).
func decodeWithErrors(block []byte, knownIdx []int, l int) ([]byte, error) {
	if accepted, ok := tryConsistentSubset(block, knownIdx[:l], knownIdx); ok {
		return interpolateMessage(pointsFrom(block, accepted), l)
	}

	if combinationCount(len(knownIdx), l) > maxCombinations {
		return nil, ErrUnrecoverable
	}

	var accepted []int
	found := forEachCombination(len(knownIdx), l, func(chosen []int) bool {
		subsetPositions := make([]int, l)
		for i, c := range chosen {
			subsetPositions[i] = knownIdx[c]
		}
		ok := false
		accepted, ok = tryConsistentSubset(block, subsetPositions, knownIdx)
		return ok
	})

	if !found {
		return nil, ErrUnrecoverable
	}
	return interpolateMessage(pointsFrom(block, accepted), l)
}

// tryConsistentSubset interpolates through block's values at the L
// positions in subset and checks the resulting polynomial against
// every other position in knownIdx. It reports the subset and true if
// all of them agree.
func tryConsistentSubset(block []byte, subset, knownIdx []int) ([]int, bool) {
	points := pointsFrom(block, subset)
	for _, idx := range knownIdx {
		if containsInt(subset, idx) {
			continue
		}
		y, err := polynomial.Interpolate(field, points, byte(idx))
		if err != nil || y != block[idx] {
			return nil, false
		}
	}
	return subset, true
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// combinationCount returns C(n, k), saturating at maxCombinations+1 to
// avoid overflow for large n choose k.
func combinationCount(n, k int) int64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := int64(1)
	for i := 0; i < k; i++ {
		result = result * int64(n-i) / int64(i+1)
		if result > maxCombinations {
			return maxCombinations + 1
		}
	}
	return result
}

// forEachCombination calls f with every k-sized, strictly increasing
// index combination from [0, n), stopping early if f returns true.
// Returns whether some call returned true.
func forEachCombination(n, k int, f func(chosen []int) bool) bool {
	chosen := make([]int, k)
	var recurse func(start, depth int) bool
	recurse = func(start, depth int) bool {
		if depth == k {
			return f(chosen)
		}
		for i := start; i < n; i++ {
			chosen[depth] = i
			if recurse(i+1, depth+1) {
				return true
			}
		}
		return false
	}
	return recurse(0, 0)
}
