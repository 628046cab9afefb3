package securemem_test

import (
	"bytes"
	"testing"

	"github.com/sbk-go/sbk/internal/securemem"
)

func TestFromSliceCopies(t *testing.T) {
	src := []byte("brainkeybytes")
	b := securemem.FromSlice(src)
	defer b.Destroy()

	if !bytes.Equal(b.Bytes(), src) {
		t.Fatalf("FromSlice did not copy source bytes")
	}

	src[0] = 'X'
	if b.Bytes()[0] == 'X' {
		t.Fatalf("Bytes() aliases the source slice; must be an independent copy")
	}
}

func TestDestroyZeroes(t *testing.T) {
	b := securemem.FromSlice([]byte("topsecret"))
	b.Destroy()

	if b.Len() != 0 {
		t.Fatalf("expected length 0 after Destroy, got %d", b.Len())
	}
	if b.Bytes() != nil {
		t.Fatalf("expected nil buffer after Destroy")
	}
}

func TestDestroyIsIdempotent(t *testing.T) {
	b := securemem.FromSlice([]byte("secret"))
	b.Destroy()
	b.Destroy()
}

func TestNewZeroed(t *testing.T) {
	b := securemem.New(16)
	defer b.Destroy()
	for _, v := range b.Bytes() {
		if v != 0 {
			t.Fatalf("expected fresh buffer to be zeroed")
		}
	}
	if b.Len() != 16 {
		t.Fatalf("expected length 16, got %d", b.Len())
	}
}
