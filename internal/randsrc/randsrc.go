// Package randsrc is the single indirection point for all randomness
// consumed by the core (Shamir coefficient generation, RawSalt and
// BrainKey creation). Production code always
// reads from crypto/rand.Reader; a seedable deterministic reader is
// reachable only through an explicit, double-gated debug path so it
// can never be mistakenly enabled in a release build — see
// DebugReader.
package randsrc

import (
	"crypto/rand"
	"errors"
	"io"
	mathrand "math/rand"
)

// ErrShortRead indicates the source did not fill the requested buffer.
var ErrShortRead = errors.New("randsrc: short read")

// Default is the production CSPRNG. Callers needing randomness should
// accept an io.Reader parameter defaulting to Default rather than
// reading crypto/rand.Reader directly, so tests can substitute
// DebugReader without touching call sites.
var Default io.Reader = rand.Reader //nolint:gochecknoglobals // swappable RNG indirection, mirrors teacher's entropy.Reader pattern

// Bytes reads n cryptographically random bytes from rng.
func Bytes(rng io.Reader, n int) ([]byte, error) {
	b := make([]byte, n)
	read, err := io.ReadFull(rng, b)
	if err != nil {
		return nil, err
	}
	if read != n {
		return nil, ErrShortRead
	}
	return b, nil
}

// AllowDebugRNG must be explicitly set to true by the embedding
// program (never by a flag parsed from untrusted input) before
// DebugReader will honor SBK_DEBUG_RNG_SEED. It defaults to false, so
// a release binary that never touches this variable cannot be coaxed
// into deterministic randomness via the environment alone.
var AllowDebugRNG = false //nolint:gochecknoglobals // intentional opt-in switch, see doc comment

// DebugReader returns a seeded, deterministic io.Reader for tests and
// reference-vector reproduction (spec.md §9, "Random source"). It
// panics if AllowDebugRNG is false, since callers only reach this
// function from test code or an explicit debug command path that sets
// the flag first.
func DebugReader(seed int64) io.Reader {
	if !AllowDebugRNG {
		panic("randsrc: DebugReader called without AllowDebugRNG")
	}
	return mathrand.New(mathrand.NewSource(seed)) //nolint:gosec // deterministic by design, gated by AllowDebugRNG
}
