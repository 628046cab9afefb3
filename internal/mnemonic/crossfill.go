package mnemonic

import (
	"github.com/sbk-go/sbk/internal/reedsolomon"
	"github.com/sbk-go/sbk/pkg/sbkerrors"
)

// ErrMismatch indicates a mnemonic word and an intcode disagree about
// the same block position — the cross-check spec.md §4.8 asks the
// user to resolve against their paper copy.
var ErrMismatch = sbkerrors.New("CROSS_FILL_MISMATCH", "mnemonic word and intcode disagree at the same position")

// FillBlock reconstructs a 2L-byte m||ecc block from a partial set of
// mnemonic words (keyed by byte position) and a partial set of
// intcodes (keyed by pair index), recovering any remaining positions
// through the Reed-Solomon decoder as long as the two inputs together
// cover at least L of the 2L positions. blockLen must be even and at
// most MaxBlockLen.
func FillBlock(words map[int]string, intcodes map[int]string, blockLen int) ([]byte, error) {
	if blockLen%2 != 0 || blockLen > MaxBlockLen || blockLen <= 0 {
		return nil, sbkerrors.ErrInvalidInput
	}

	block := make([]byte, blockLen)
	known := make([]bool, blockLen)

	for pos, word := range words {
		if pos < 0 || pos >= blockLen {
			return nil, sbkerrors.ErrInvalidInput
		}
		b, err := WordToByte(word)
		if err != nil {
			return nil, err
		}
		block[pos] = b
		known[pos] = true
	}

	for pairIdx, code := range intcodes {
		if pairIdx < 0 || 2*pairIdx+1 >= blockLen {
			return nil, sbkerrors.ErrInvalidInput
		}
		b0, b1, err := DecodeIntcode(code, pairIdx)
		if err != nil {
			return nil, err
		}
		p0, p1 := 2*pairIdx, 2*pairIdx+1
		if known[p0] && block[p0] != b0 {
			return nil, ErrMismatch
		}
		if known[p1] && block[p1] != b1 {
			return nil, ErrMismatch
		}
		block[p0], block[p1] = b0, b1
		known[p0], known[p1] = true, true
	}

	return reedsolomon.Decode(block, known)
}
