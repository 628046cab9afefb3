// Package kdf implements the memory-hard key derivation step: an
// Argon2id digest chained across several steps so a caller can drive a
// progress meter, plus a calibration helper that picks parameters for
// a target wall-clock duration on the host. Grounded on
// golang.org/x/crypto/argon2 (the same primitive
// other_examples/argon2.go wraps) and on internal/chain.RateLimiter's
// use of golang.org/x/time/rate for progress smoothing.
package kdf

import (
	"context"
	"time"

	"golang.org/x/crypto/argon2"
	"golang.org/x/time/rate"

	"github.com/sbk-go/sbk/internal/params"
	"github.com/sbk-go/sbk/pkg/sbkerrors"
)

// Version is the Argon2 version this package pins, per spec.md §4.7.
const Version = argon2.Version

// Parallelism is hard-coded; spec.md §4.7 fixes it at 128 lanes.
const Parallelism = 128

// intermediateHashLen is the length of each chained step's output,
// which also feeds back in as the next step's input and self-salt.
const intermediateHashLen = 128

// ProgressFunc is called after a chained step with the fraction of
// steps completed so far, in (0, 1]. A step that finishes less than
// progressMinInterval after the previous call is not reported; the
// final step always is. It must be cheap and non-blocking and must
// never call back into Digest.
type ProgressFunc func(fraction float64)

// progressMinInterval is the shortest gap between two ProgressFunc
// calls, so a fast run does not flood the caller with updates. Calls
// happen only at step boundaries; nothing is reported while a single
// Argon2 step is running.
const progressMinInterval = 100 * time.Millisecond

// Digest runs the chained Argon2id derivation described in spec.md
// §4.7: p.KdfT total iterations split into S = min(p.KdfT, 10) steps,
// each of its own time cost, chained so each step's output feeds the
// next step's input and self-salt. progress is optional and may be
// nil. ctx is checked only at step boundaries; an in-flight Argon2
// call always runs to completion.
func Digest(ctx context.Context, data []byte, p params.Parameters, hashLen uint32, progress ProgressFunc) ([]byte, error) {
	steps := p.KdfT
	if steps > 10 {
		steps = 10
	}
	if steps < 1 {
		steps = 1
	}

	stepCosts := splitIterations(p.KdfT, steps)

	limiter := rate.NewLimiter(rate.Every(progressMinInterval), 1)
	report := func(done, total int) {
		if progress == nil {
			return
		}
		if done == total || limiter.Allow() {
			progress(float64(done) / float64(total))
		}
	}

	current := data
	for i, t := range stepCosts {
		select {
		case <-ctx.Done():
			return nil, sbkerrors.ErrCancelled
		default:
		}

		out := argon2.IDKey(current, current, t, uint32(p.KdfM)*1024, Parallelism, intermediateHashLen)
		current = out
		report(i+1, len(stepCosts))
	}

	if int(hashLen) > len(current) {
		hashLen = uint32(len(current))
	}
	return current[:hashLen], nil
}

// splitIterations divides total iterations across n steps as evenly
// as possible, with any remainder folded into the final step so
// Σ stepCosts == total exactly and every step cost is at least 1.
func splitIterations(total, n int) []uint32 {
	if n < 1 {
		n = 1
	}
	base := total / n
	remainder := total % n
	costs := make([]uint32, n)
	for i := range costs {
		c := base
		if i == n-1 {
			c += remainder
		}
		if c < 1 {
			c = 1
		}
		costs[i] = uint32(c)
	}
	return costs
}
