// Package params implements the compact, self-describing parameter
// header: a 2-byte layout carried by a salt and a 3-byte layout
// carried by a share, plus the log-scale rounding discipline that
// keeps kdf_m/kdf_t values round-tripping exactly through those few
// bits.
package params

import (
	"errors"
	"math"
)

// ErrParamRoundTrip indicates encode(decode(encode(p))) != encode(p):
// the supplied Parameters do not land on a codomain value and so
// cannot survive a header write/read cycle unchanged.
var ErrParamRoundTrip = errors.New("params: value is not a fixed point of the log-scale codec")

// ErrHeaderLength indicates a decode call received the wrong byte count.
var ErrHeaderLength = errors.New("params: wrong header length")

// ErrFieldRange indicates a Parameters field is outside its encodable range.
var ErrFieldRange = errors.New("params: field out of range")

// ErrForcedSecretX indicates SssX is 0 on a share header, which would
// mark it as the secret's own constant term rather than a share.
var ErrForcedSecretX = errors.New("params: sss_x cannot be 0")

// MinThreshold is the sss_t decoded for a salt header, which cannot
// carry a meaningful threshold of its own.
const MinThreshold = 2

// KdfP is hard-coded; spec.md §4.7 fixes Argon2id parallelism at 128 lanes.
const KdfP = 128

// Parameters describes one wallet's KDF difficulty and sharing shape.
// Version, KdfM and KdfT are carried by every header; the sharing
// fields are carried by share headers only (salt headers zero-pad them
// and decode as SssT=MinThreshold, SssX=-1, SssN=0). SssN is carried
// only in the third byte of a share header.
type Parameters struct {
	Version int
	KdfM    int // MiB, always a codomain value
	KdfT    int // iterations, always a codomain value
	SssT    int // 2..10, or MinThreshold on a salt-only header
	SssX    int // 1..31, or -1 if absent (salt header, or not yet assigned)
	SssN    int // total shares; 0 until set at creation
}

const (
	unitM = 512.0
	baseM = 1.5
	unitT = 1.0
	baseT = 4.0

	bitsVersion = 2
	bitsKdfM    = 3
	bitsKdfT    = 3
	bitsSssX    = 5
	bitsSssT    = 3
)

func scaleParams(base float64) (s, o float64) {
	s = 1 / (base - 1)
	o = 1 - s
	return s, o
}

// encodeLogScale returns the exponent n, clamped to [0, 2^bits-1],
// nearest to v on the log scale. Rounding happens in log space, so
// decodeLogScale(n) is not always the codomain value nearest to v
// (v=1400 with unit 512 and base 1.5 yields 2048, not 1024).
func encodeLogScale(v, unit, base float64, bits int) int {
	s, o := scaleParams(base)
	max := 1<<bits - 1

	raw := v/unit - o
	var n int
	if raw <= 0 {
		n = 0
	} else {
		n = int(math.Round(math.Log(raw/s) / math.Log(base)))
	}
	if n < 0 {
		n = 0
	}
	if n > max {
		n = max
	}
	return n
}

func decodeLogScale(n int, unit, base float64) int {
	s, o := scaleParams(base)
	return int(math.Round(o+s*math.Pow(base, float64(n))) * unit)
}

// EncodeKdfM returns the 3-bit codomain index for v MiB.
func EncodeKdfM(v int) int { return encodeLogScale(float64(v), unitM, baseM, bitsKdfM) }

// DecodeKdfM returns the MiB value for a 3-bit codomain index.
func DecodeKdfM(n int) int { return decodeLogScale(n, unitM, baseM) }

// EncodeKdfT returns the 3-bit codomain index for v iterations.
func EncodeKdfT(v int) int { return encodeLogScale(float64(v), unitT, baseT, bitsKdfT) }

// DecodeKdfT returns the iteration count for a 3-bit codomain index.
func DecodeKdfT(n int) int { return decodeLogScale(n, unitT, baseT) }

// Normalize snaps KdfM and KdfT to their nearest codomain values,
// leaving every other field untouched. Callers that construct
// Parameters from arbitrary calibration math should always normalize
// before use, per spec.md §4.6.
func Normalize(p Parameters) Parameters {
	p.KdfM = DecodeKdfM(EncodeKdfM(p.KdfM))
	p.KdfT = DecodeKdfT(EncodeKdfT(p.KdfT))
	return p
}

// EncodeSalt packs the 2-byte salt header: version, kdf_m, kdf_t, with
// the sharing fields zero-padded (a salt cannot carry a meaningful
// sss_x/sss_t).
func EncodeSalt(p Parameters) ([2]byte, error) {
	var out [2]byte
	if p.Version < 0 || p.Version >= 1<<bitsVersion {
		return out, ErrFieldRange
	}

	m := EncodeKdfM(p.KdfM)
	if DecodeKdfM(m) != p.KdfM {
		return out, ErrParamRoundTrip
	}
	t := EncodeKdfT(p.KdfT)
	if DecodeKdfT(t) != p.KdfT {
		return out, ErrParamRoundTrip
	}

	word := uint16(p.Version)<<14 | uint16(m)<<11 | uint16(t)<<8
	out[0] = byte(word >> 8)
	out[1] = byte(word)
	return out, nil
}

// DecodeSalt unpacks a 2-byte salt header. SssX is reported as -1 and
// SssT as MinThreshold, since a salt header cannot carry either.
func DecodeSalt(b []byte) (Parameters, error) {
	if len(b) != 2 {
		return Parameters{}, ErrHeaderLength
	}
	word := uint16(b[0])<<8 | uint16(b[1])

	version := int(word>>14) & (1<<bitsVersion - 1)
	m := int(word>>11) & (1<<bitsKdfM - 1)
	t := int(word>>8) & (1<<bitsKdfT - 1)

	return Parameters{
		Version: version,
		KdfM:    DecodeKdfM(m),
		KdfT:    DecodeKdfT(t),
		SssT:    MinThreshold,
		SssX:    -1,
	}, nil
}

// EncodeShare packs the 3-byte share header: the 2-byte salt layout
// plus SssX (stored as SssX-1) and SssT (stored as SssT-2) filled with
// real values, followed by a raw SssN byte recording the total share
// count at creation (spec.md §3's sss_n, which has no bit position of
// its own in the 2-byte layout shared with the salt header).
func EncodeShare(p Parameters) ([3]byte, error) {
	var out [3]byte
	salt, err := EncodeSalt(p)
	if err != nil {
		return out, err
	}
	if p.SssX < 1 || p.SssX > 31 {
		return out, ErrForcedSecretX
	}
	// sss_t's 3-bit field holds 8 values; stored as sss_t-2 this
	// covers 2..9. A Parameters value of 10 is valid in memory but
	// cannot be written to a header.
	if p.SssT < 2 || p.SssT > 9 {
		return out, ErrFieldRange
	}
	if p.SssN < 1 || p.SssN > 255 {
		return out, ErrFieldRange
	}

	word := uint16(salt[0])<<8 | uint16(salt[1])
	word |= uint16(p.SssX-1) << 3
	word |= uint16(p.SssT - 2)

	out[0] = byte(word >> 8)
	out[1] = byte(word)
	out[2] = byte(p.SssN)
	return out, nil
}

// DecodeShare unpacks a 3-byte share header.
func DecodeShare(b []byte) (Parameters, error) {
	if len(b) != 3 {
		return Parameters{}, ErrHeaderLength
	}
	word := uint16(b[0])<<8 | uint16(b[1])

	version := int(word>>14) & (1<<bitsVersion - 1)
	m := int(word>>11) & (1<<bitsKdfM - 1)
	t := int(word>>8) & (1<<bitsKdfT - 1)
	sssX := int(word>>3)&(1<<bitsSssX-1) + 1
	sssT := int(word)&(1<<bitsSssT-1) + 2

	return Parameters{
		Version: version,
		KdfM:    DecodeKdfM(m),
		KdfT:    DecodeKdfT(t),
		SssX:    sssX,
		SssT:    sssT,
		SssN:    int(b[2]),
	}, nil
}
