package reedsolomon_test

import (
	"encoding/hex"
	"testing"

	"github.com/sbk-go/sbk/internal/reedsolomon"
)

// TestEncodeKnownVector matches spec.md §8 scenario 4:
// ecc_encode(b"WXYZ") = fromhex("5758595afbdc95be").
func TestEncodeKnownVector(t *testing.T) {
	block, err := reedsolomon.Encode([]byte("WXYZ"))
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	want, _ := hex.DecodeString("5758595afbdc95be")
	if hex.EncodeToString(block) != hex.EncodeToString(want) {
		t.Fatalf("Encode(%q) = %x, want %x", "WXYZ", block, want)
	}
}

func allKnown(n int) []bool {
	mask := make([]bool, n)
	for i := range mask {
		mask[i] = true
	}
	return mask
}

func TestDecodeErasureFrontHalfKnown(t *testing.T) {
	block, _ := hex.DecodeString("5758595afbdc95be")
	mask := make([]bool, len(block))
	for i := 0; i < 4; i++ {
		mask[i] = true
	}
	msg, err := reedsolomon.Decode(block, mask)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if string(msg) != "WXYZ" {
		t.Fatalf("Decode = %q, want %q", msg, "WXYZ")
	}
}

func TestDecodeErasureBackHalfKnown(t *testing.T) {
	block, _ := hex.DecodeString("5758595afbdc95be")
	mask := make([]bool, len(block))
	for i := 4; i < 8; i++ {
		mask[i] = true
	}
	msg, err := reedsolomon.Decode(block, mask)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if string(msg) != "WXYZ" {
		t.Fatalf("Decode = %q, want %q", msg, "WXYZ")
	}
}

// TestDecodeUnrecoverable matches spec.md §8 scenario 4: four corrupted
// message bytes (all zeroed) with an intact ecc half. All eight
// positions are marked known, so no L-subset interpolates a polynomial
// that agrees with the other four known positions.
func TestDecodeUnrecoverable(t *testing.T) {
	block, _ := hex.DecodeString("00000000fbdc95be")
	mask := allKnown(len(block))
	if _, err := reedsolomon.Decode(block, mask); err != reedsolomon.ErrUnrecoverable {
		t.Fatalf("expected ErrUnrecoverable, got %v", err)
	}
}

// TestDecodeRecoverWithExtraKnownByte matches spec.md §8 scenario 4:
// one correct message byte survives ("W") and the ecc half is intact.
// The 3 zeroed bytes are marked as erasures, leaving 5 known positions
// against L=4; the extra known position confirms the interpolated
// polynomial.
func TestDecodeRecoverWithExtraKnownByte(t *testing.T) {
	block, _ := hex.DecodeString("57000000fbdc95be")
	mask := allKnown(len(block))
	mask[1] = false
	mask[2] = false
	mask[3] = false

	msg, err := reedsolomon.Decode(block, mask)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if string(msg) != "WXYZ" {
		t.Fatalf("Decode = %q, want %q", msg, "WXYZ")
	}
}

func TestDecodeTooFewKnown(t *testing.T) {
	block, _ := hex.DecodeString("5758595afbdc95be")
	mask := make([]bool, len(block))
	mask[0], mask[1], mask[2] = true, true, true
	if _, err := reedsolomon.Decode(block, mask); err != reedsolomon.ErrTooFewKnown {
		t.Fatalf("expected ErrTooFewKnown, got %v", err)
	}
}

func TestEncodeRejectsEmpty(t *testing.T) {
	if _, err := reedsolomon.Encode(nil); err != reedsolomon.ErrEmptyMessage {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
}

func TestEncodeDecodeRoundTripAllKnown(t *testing.T) {
	message := []byte("the quick brown fox")
	block, err := reedsolomon.Encode(message)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	recovered, err := reedsolomon.Decode(block, allKnown(len(block)))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if string(recovered) != string(message) {
		t.Fatalf("round trip mismatch: got %q, want %q", recovered, message)
	}
}
