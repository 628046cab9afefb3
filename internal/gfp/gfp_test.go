package gfp

import (
	"math/big"
	"testing"
)

func TestVerifyTable(t *testing.T) {
	if err := VerifyTable(); err != nil {
		t.Fatalf("VerifyTable() = %v, want nil", err)
	}
}

func TestGetPow2Prime(t *testing.T) {
	prime, err := GetPow2Prime(8)
	if err != nil {
		t.Fatalf("GetPow2Prime(8) error: %v", err)
	}
	if prime.Bits != 8 {
		t.Fatalf("Bits = %d, want 8", prime.Bits)
	}
	want := new(big.Int).Lsh(big.NewInt(1), 8)
	want.Sub(want, big.NewInt(5))
	if prime.P.Cmp(want) != 0 {
		t.Fatalf("P = %s, want %s", prime.P, want)
	}
}

func TestGetPow2PrimeRejectsUnalignedBits(t *testing.T) {
	prime, err := GetPow2Prime(10)
	if err == nil {
		t.Fatalf("GetPow2Prime(10) should fail: not byte-aligned, got %v", prime)
	}
}

func TestGetPow2PrimeTooLarge(t *testing.T) {
	if _, err := GetPow2Prime(10000); err != ErrNoPrimeForBits {
		t.Fatalf("expected ErrNoPrimeForBits, got %v", err)
	}
}

func TestArithmeticRoundTrip(t *testing.T) {
	prime, err := GetPow2Prime(16)
	if err != nil {
		t.Fatalf("GetPow2Prime: %v", err)
	}
	p := prime.P

	a := big.NewInt(12345)
	b := big.NewInt(6789)

	sum := Add(a, b, p)
	diff := Sub(sum, b, p)
	if diff.Cmp(new(big.Int).Mod(a, p)) != 0 {
		t.Fatalf("Add/Sub round trip failed")
	}

	prod := Mul(a, b, p)
	quot, err := Div(prod, b, p)
	if err != nil {
		t.Fatalf("Div error: %v", err)
	}
	if quot.Cmp(new(big.Int).Mod(a, p)) != 0 {
		t.Fatalf("Mul/Div round trip failed: got %s want %s", quot, a)
	}
}

func TestInvZero(t *testing.T) {
	prime, err := GetPow2Prime(16)
	if err != nil {
		t.Fatalf("GetPow2Prime: %v", err)
	}
	if _, err := Inv(big.NewInt(0), prime.P); err != ErrDivByZero {
		t.Fatalf("Inv(0) error = %v, want ErrDivByZero", err)
	}
}
