// Package secure provides secure memory handling for mersig.
// Internal packages may shadow stdlib names for domain-specific implementations.
//
//nolint:revive // Internal package name is intentional
package secure

import (
	"runtime"
	"sync"
)

// Bytes is a wrapper for sensitive byte slices that provides secure memory
// handling with mlock and explicit zeroing. It is used to hold randomness
// material and reconstructed secret bytes for only as long as they are
// being consumed, never past the call that produced them.
type Bytes struct {
	data   []byte
	locked bool
	mu     sync.Mutex
}

// NewBytes creates a new Bytes with the given size.
// The memory is locked if the system supports it.
func NewBytes(size int) (*Bytes, error) {
	data := make([]byte, size)

	b := &Bytes{
		data:   data,
		locked: false,
	}

	// Try to lock memory - don't fail if not possible.
	b.locked = mlock(data)

	// Set finalizer to ensure memory is cleared even if Destroy isn't called.
	runtime.SetFinalizer(b, func(s *Bytes) {
		s.Destroy()
	})

	return b, nil
}

// FromSlice creates a Bytes from an existing slice. The data is copied
// into secure memory; the caller's original slice is left untouched.
func FromSlice(data []byte) (*Bytes, error) {
	b, err := NewBytes(len(data))
	if err != nil {
		return nil, err
	}
	copy(b.data, data)
	return b, nil
}

// Bytes returns the underlying byte slice.
// Returns nil if the Bytes has been destroyed.
func (b *Bytes) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data
}

// IsLocked returns whether the memory is locked (mlocked).
func (b *Bytes) IsLocked() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.locked
}

// Destroy zeros the memory and unlocks it.
// Safe to call multiple times.
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

	// Remove the finalizer since we've already cleaned up.
	runtime.SetFinalizer(b, nil)
}

// Len returns the length of the data.
func (b *Bytes) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.data == nil {
		return 0
	}
	return len(b.data)
}

// ZeroBytes overwrites a plain (non-locked) byte slice with zeros in place.
// Use this for short-lived material, such as passwords read from a terminal,
// that never went through NewBytes/FromSlice.
func ZeroBytes(data []byte) {
	for i := range data {
		data[i] = 0
	}
}
