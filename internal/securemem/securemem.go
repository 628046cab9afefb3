// Package securemem holds secret byte buffers — brainkey, raw_salt,
// master_key, and interim KDF outputs — with guaranteed zeroization on
// drop. Adapted from Sigil's internal/crypto.SecureBytes, narrowed to
// the single property spec.md §5 requires: these buffers must never
// leak into a log or error string, so Bytes deliberately has no
// String() or Format() method a %v/%s verb could reach for.
package securemem

import (
	"runtime"
	"sync"
)

// Bytes is a fixed-size secret buffer. The zero value is not usable;
// construct with New or FromSlice.
type Bytes struct {
	mu     sync.Mutex
	data   []byte
	locked bool
}

// New allocates a zeroed secret buffer of size bytes, best-effort
// mlocked so it cannot be paged to swap.
func New(size int) *Bytes {
	b := &Bytes{data: make([]byte, size)}
	b.locked = mlock(b.data)
	runtime.SetFinalizer(b, func(s *Bytes) { s.Destroy() })
	return b
}

// FromSlice copies src into a new secret buffer. It does not zero src;
// callers holding secret data in an ordinary slice must zero it
// themselves once copied.
func FromSlice(src []byte) *Bytes {
	b := New(len(src))
	copy(b.data, src)
	return b
}

// Bytes returns the underlying slice. The caller must not retain it
// past a subsequent Destroy call.
func (b *Bytes) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data
}

// Len returns the buffer length, or 0 after Destroy.
func (b *Bytes) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data)
}

// IsLocked reports whether the OS honored the mlock request.
func (b *Bytes) IsLocked() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.locked
}

// Destroy zeroes and unlocks the buffer. Safe to call more than once.
func (b *Bytes) Destroy() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.data == nil {
		return
	}
	for i := range b.data {
		b.data[i] = 0
	}
	if b.locked {
		munlock(b.data)
		b.locked = false
	}
	b.data = nil
	runtime.SetFinalizer(b, nil)
}
