package mnemonic

import (
	"fmt"
	"strconv"

	"github.com/sbk-go/sbk/pkg/sbkerrors"
)

// indexModulus bounds the intcode position nibble, per spec.md §4.8.
// It caps the payload this codec can uniquely position at 2*13 = 26
// bytes (spec.md §9's open question on the index wrap).
const indexModulus = 13

// MaxBlockLen is the largest m||ecc block this codec can address.
const MaxBlockLen = 2 * indexModulus

// EncodeIntcode renders the byte pair (b0, b1) found at pair index
// pairIndex (0-based, counting two-byte pairs from the start of the
// block) as a six-digit decimal intcode.
func EncodeIntcode(pairIndex int, b0, b1 byte) string {
	index := pairIndex % indexModulus
	value := uint32(index)<<16 | uint32(b0)<<8 | uint32(b1)
	return fmt.Sprintf("%06d", value)
}

// DecodeIntcode parses a six-digit intcode expected at pairIndex,
// returning its two payload bytes. It fails with IntcodeChecksum if
// the encoded index nibble does not match pairIndex mod 13 — the
// signal that the code was transcribed into the wrong position.
func DecodeIntcode(code string, pairIndex int) (b0, b1 byte, err error) {
	if len(code) != 6 {
		return 0, 0, sbkerrors.ErrIntcodeChecksum
	}
	value, parseErr := strconv.ParseUint(code, 10, 32)
	if parseErr != nil {
		return 0, 0, sbkerrors.ErrIntcodeChecksum
	}
	index := (value >> 16) & 0xF
	if int(index) != pairIndex%indexModulus {
		return 0, 0, sbkerrors.ErrIntcodeChecksum
	}
	return byte((value >> 8) & 0xFF), byte(value & 0xFF), nil
}

// BytesToIntcodes renders an even-length byte sequence as one
// six-digit intcode per byte pair.
func BytesToIntcodes(data []byte) ([]string, error) {
	if len(data)%2 != 0 {
		return nil, sbkerrors.ErrInvalidInput
	}
	if len(data) > MaxBlockLen {
		return nil, sbkerrors.ErrInvalidInput
	}
	codes := make([]string, len(data)/2)
	for k := range codes {
		codes[k] = EncodeIntcode(k, data[2*k], data[2*k+1])
	}
	return codes, nil
}

// IntcodesToBytes parses a full, in-order sequence of intcodes back
// into bytes, validating each one's position checksum.
func IntcodesToBytes(codes []string) ([]byte, error) {
	out := make([]byte, 2*len(codes))
	for k, code := range codes {
		b0, b1, err := DecodeIntcode(code, k)
		if err != nil {
			return nil, err
		}
		out[2*k] = b0
		out[2*k+1] = b1
	}
	return out, nil
}
