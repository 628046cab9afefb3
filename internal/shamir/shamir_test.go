package shamir

import (
	"bytes"
	"crypto/rand"
	"testing"
)

func sortedYs(shares []RawShare, x int) []byte {
	for _, s := range shares {
		if s.X == x {
			return s.Ys
		}
	}
	return nil
}

//nolint:gocognit // table-driven test with many sub-cases, mirrors teacher's style
func TestSplitJoin(t *testing.T) {
	tests := []struct {
		name      string
		secretLen int
		t, n      int
	}{
		{"ShortSecret", 16, 3, 5},
		{"LongSecret", 64, 3, 5},
		{"Threshold2", 32, 2, 5},
		{"ThresholdSameAsN", 32, 5, 5},
		{"MaxShares", 32, 3, 255},
		{"MinShares", 32, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			secret := make([]byte, tt.secretLen)
			if _, err := rand.Read(secret); err != nil {
				t.Fatalf("failed to generate secret: %v", err)
			}

			shares, err := Split(rand.Reader, secret, tt.t, tt.n)
			if err != nil {
				t.Fatalf("Split failed: %v", err)
			}
			if len(shares) != tt.n {
				t.Fatalf("expected %d shares, got %d", tt.n, len(shares))
			}

			recovered, err := Join(shares, tt.t)
			if err != nil {
				t.Fatalf("Join failed with all shares: %v", err)
			}
			if !bytes.Equal(secret, recovered) {
				t.Fatalf("recovered secret mismatch with all shares")
			}

			subset := shares[:tt.t]
			recoveredSub, err := Join(subset, tt.t)
			if err != nil {
				t.Fatalf("Join failed with exactly T shares: %v", err)
			}
			if !bytes.Equal(secret, recoveredSub) {
				t.Fatalf("recovered secret mismatch with T shares")
			}

			last := shares[len(shares)-tt.t:]
			recoveredLast, err := Join(last, tt.t)
			if err != nil {
				t.Fatalf("Join failed with last T shares: %v", err)
			}
			if !bytes.Equal(secret, recoveredLast) {
				t.Fatalf("recovered secret mismatch with last T shares")
			}
		})
	}
}

// TestSplitJoinKnownVectors matches spec.md §8 scenario 2: splitting
// "ABCDEFGH" with T=3, N=5 and a deterministic RNG, then joining
// {x=1,x=3,x=4} must recover the exact secret.
func TestSplitJoinKnownVectors(t *testing.T) {
	secret := []byte("ABCDEFGH")
	zeroRNG := bytes.NewReader(make([]byte, 1<<16))

	shares, err := Split(zeroRNG, secret, 3, 5)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}

	var chosen []RawShare
	for _, x := range []int{1, 3, 4} {
		for _, s := range shares {
			if s.X == x {
				chosen = append(chosen, s)
			}
		}
	}

	recovered, err := Join(chosen, 3)
	if err != nil {
		t.Fatalf("Join failed: %v", err)
	}
	if !bytes.Equal(recovered, secret) {
		t.Fatalf("recovered = %q, want %q", recovered, secret)
	}
}

func TestJoinInsufficientShares(t *testing.T) {
	secret := []byte("ABCDEFGH")
	shares, err := Split(rand.Reader, secret, 3, 5)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}

	var chosen []RawShare
	for _, x := range []int{2, 5} {
		for _, s := range shares {
			if s.X == x {
				chosen = append(chosen, s)
			}
		}
	}

	if _, err := Join(chosen, 3); err != ErrInsufficientShares {
		t.Fatalf("expected ErrInsufficientShares, got %v", err)
	}
}

func TestJoinForcedSecret(t *testing.T) {
	shares := []RawShare{
		{X: 0, Ys: []byte{1, 2, 3}},
		{X: 1, Ys: []byte{4, 5, 6}},
		{X: 2, Ys: []byte{7, 8, 9}},
	}
	if _, err := Join(shares, 2); err != ErrForcedSecret {
		t.Fatalf("expected ErrForcedSecret, got %v", err)
	}
}

func TestJoinDuplicateX(t *testing.T) {
	shares := []RawShare{
		{X: 1, Ys: []byte{1, 2, 3}},
		{X: 1, Ys: []byte{4, 5, 6}},
	}
	if _, err := Join(shares, 2); err != ErrDuplicateX {
		t.Fatalf("expected ErrDuplicateX, got %v", err)
	}
}

func TestSplitRejectsBadParams(t *testing.T) {
	secret := []byte("hello")

	if _, err := Split(rand.Reader, secret, 1, 5); err != ErrThresholdInvalid {
		t.Fatalf("expected ErrThresholdInvalid, got %v", err)
	}
	if _, err := Split(rand.Reader, secret, 5, 3); err != ErrSharesInsufficient {
		t.Fatalf("expected ErrSharesInsufficient, got %v", err)
	}
	if _, err := Split(rand.Reader, secret, 2, 256); err != ErrSharesExceedMax {
		t.Fatalf("expected ErrSharesExceedMax, got %v", err)
	}
	if _, err := Split(rand.Reader, nil, 2, 5); err != ErrSecretEmpty {
		t.Fatalf("expected ErrSecretEmpty, got %v", err)
	}
}

// TestSplitRandomized confirms two splits of the same secret with
// different RNG states yield different share bytes that still
// interpolate to the same secret (spec.md §4.4).
func TestSplitRandomized(t *testing.T) {
	secret := []byte("randomizedsecret")

	sharesA, err := Split(rand.Reader, secret, 3, 5)
	if err != nil {
		t.Fatalf("Split A failed: %v", err)
	}
	sharesB, err := Split(rand.Reader, secret, 3, 5)
	if err != nil {
		t.Fatalf("Split B failed: %v", err)
	}

	identical := true
	for i := range sharesA {
		if !bytes.Equal(sharesA[i].Ys, sharesB[i].Ys) {
			identical = false
			break
		}
	}
	if identical {
		t.Fatalf("two splits produced identical share bytes; RNG not being used")
	}

	recoveredA, err := Join(sharesA[:3], 3)
	if err != nil || !bytes.Equal(recoveredA, secret) {
		t.Fatalf("split A did not recover secret: %v", err)
	}
	recoveredB, err := Join(sharesB[:3], 3)
	if err != nil || !bytes.Equal(recoveredB, secret) {
		t.Fatalf("split B did not recover secret: %v", err)
	}
}
