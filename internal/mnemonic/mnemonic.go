package mnemonic

import (
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"

	"github.com/sbk-go/sbk/pkg/sbkerrors"
)

// fuzzyThreshold is the smallest Damerau-Levenshtein distance at which
// a typed word is no longer accepted as a correction of a wordlist
// entry; distances up to fuzzyThreshold-1 are accepted, per spec.md §4.8.
const fuzzyThreshold = 4

var (
	prefixIndex     map[string]int
	prefixIndexOnce sync.Once
)

func buildPrefixIndex() {
	prefixIndex = make(map[string]int, len(wordlist))
	for i, w := range wordlist {
		prefixIndex[w[:3]] = i
	}
}

// ByteToWord returns the wordlist entry for byte b.
func ByteToWord(b byte) string {
	return wordlist[b]
}

// WordToByte resolves a user-typed word to its byte value. An exact
// 3-character prefix match resolves in O(1) (prefixes are unique by
// construction); anything else falls back to a Damerau-Levenshtein
// scan of the full list. A plain Levenshtein distance from
// agnivade/levenshtein — always >= the Damerau-Levenshtein distance,
// since DL permits every edit LD does plus transposition — is computed
// for every candidate; only an LD of 0 skips the DL computation.
func WordToByte(word string) (byte, error) {
	prefixIndexOnce.Do(buildPrefixIndex)

	normalized := strings.ToLower(strings.TrimSpace(word))
	if len(normalized) >= 3 {
		if idx, ok := prefixIndex[normalized[:3]]; ok {
			return byte(idx), nil
		}
	}

	bestDist := fuzzyThreshold
	bestIdx := -1
	tie := false

	for i, w := range wordlist {
		// A plain Levenshtein distance of 0 certifies an exact match
		// without the fuller DL computation, since DL <= LD always.
		// Any other LD value is only an upper bound, not the answer,
		// so the exact DL distance still has to be computed for it.
		upper := levenshtein.ComputeDistance(normalized, w)
		dist := upper
		if upper > 0 {
			dist = damerauLevenshtein(normalized, w)
		}
		if dist >= fuzzyThreshold {
			continue
		}
		switch {
		case dist < bestDist:
			bestDist = dist
			bestIdx = i
			tie = false
		case dist == bestDist && i != bestIdx:
			tie = true
		}
	}

	if bestIdx == -1 {
		return 0, sbkerrors.ErrUnknownWord
	}
	if bestDist > 0 && tie {
		return 0, sbkerrors.ErrAmbiguousWord
	}
	return byte(bestIdx), nil
}

// BytesToPhrase renders data as one space-separated word per byte.
func BytesToPhrase(data []byte) string {
	words := make([]string, len(data))
	for i, b := range data {
		words[i] = ByteToWord(b)
	}
	return strings.Join(words, " ")
}

// PhraseToBytes parses phrase back into exactly expectedLen bytes.
func PhraseToBytes(phrase string, expectedLen int) ([]byte, error) {
	fields := strings.Fields(phrase)
	if len(fields) != expectedLen {
		return nil, sbkerrors.ErrInvalidInput
	}
	out := make([]byte, expectedLen)
	for i, word := range fields {
		b, err := WordToByte(word)
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}
