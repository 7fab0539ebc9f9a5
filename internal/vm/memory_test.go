// Copyright 2022-2026 The N42 Authors
// This file is part of the evmcore library.
//
// The evmcore library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The evmcore library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the evmcore library. If not, see <http://www.gnu.org/licenses/>.

// Tests adapted from go-ethereum and erigon VM test suites.

package vm

import (
	"bytes"
	"testing"

	"github.com/holiman/uint256"
)

// =============================================================================
// Memory Tests (Reference: go-ethereum/core/vm/memory_test.go)
// =============================================================================

func TestMemoryNew(t *testing.T) {
	mem := NewMemory()
	if mem == nil {
		t.Fatal("NewMemory returned nil")
	}
	if mem.Len() != 0 {
		t.Errorf("New memory should be empty, got len %d", mem.Len())
	}
	if cap(mem.store) < 4*1024 {
		t.Errorf("Initial capacity should be at least 4KB, got %d", cap(mem.store))
	}
	t.Logf("✓ NewMemory creates empty memory with initial capacity")
}

func TestMemoryResize(t *testing.T) {
	tests := []struct {
		name     string
		size     uint64
		expected int
	}{
		{"resize_to_zero", 0, 0},
		{"resize_to_32", 32, 32},
		{"resize_to_64", 64, 64},
		{"resize_to_1024", 1024, 1024},
		{"resize_to_4096", 4096, 4096},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := NewMemory()
			mem.Resize(tt.size)
			if mem.Len() != tt.expected {
				t.Errorf("After Resize(%d), Len() = %d, want %d", tt.size, mem.Len(), tt.expected)
			}
		})
	}
	t.Logf("✓ Memory Resize works correctly")
}

func TestMemoryResizeMultiple(t *testing.T) {
	mem := NewMemory()

	// First resize
	mem.Resize(32)
	if mem.Len() != 32 {
		t.Errorf("First resize: expected len 32, got %d", mem.Len())
	}

	// Larger resize
	mem.Resize(64)
	if mem.Len() != 64 {
		t.Errorf("Second resize: expected len 64, got %d", mem.Len())
	}

	// Smaller resize (should not shrink)
	mem.Resize(32)
	if mem.Len() != 64 {
		t.Errorf("Smaller resize should not shrink: expected len 64, got %d", mem.Len())
	}

	t.Logf("✓ Memory resize handles multiple resizes correctly")
}

func TestMemoryResizeZeroFills(t *testing.T) {
	mem := NewMemory()
	mem.Resize(64)

	if !allZero(mem.Data()) {
		t.Error("Expanded memory should be zero-filled")
	}

	t.Logf("✓ Memory expansion zero-fills")
}

func TestMemorySet(t *testing.T) {
	mem := NewMemory()
	mem.Resize(64)

	// Set some data
	data := []byte{0x01, 0x02, 0x03, 0x04}
	mem.Set(0, uint64(len(data)), data)

	// Verify data was set
	result := mem.GetCopy(0, int64(len(data)))
	if !bytes.Equal(result, data) {
		t.Errorf("Set data mismatch: got %x, want %x", result, data)
	}

	// Set at offset
	mem.Set(32, uint64(len(data)), data)
	result = mem.GetCopy(32, int64(len(data)))
	if !bytes.Equal(result, data) {
		t.Errorf("Set at offset mismatch: got %x, want %x", result, data)
	}

	t.Logf("✓ Memory Set works correctly")
}

func TestMemorySetZeroSize(t *testing.T) {
	mem := NewMemory()
	mem.Resize(32)

	// Set with zero size should be no-op
	mem.Set(100, 0, []byte{0x01, 0x02})

	// Memory should remain unchanged
	if mem.Len() != 32 {
		t.Errorf("Zero-size set changed memory length: got %d, want 32", mem.Len())
	}

	t.Logf("✓ Memory Set with zero size is no-op")
}

func TestMemorySet32(t *testing.T) {
	mem := NewMemory()
	mem.Resize(64)

	// Set a uint256 value
	val := uint256.NewInt(0x12345678)
	mem.Set32(0, val)

	// Check that value was written correctly (left-zeroed to 32 bytes)
	data := mem.GetPtr(0, 32)
	if data == nil {
		t.Fatal("GetPtr returned nil")
	}

	b32 := val.Bytes32()
	if !bytes.Equal(data, b32[:]) {
		t.Errorf("Set32 mismatch: got %x, want %x", data, b32[:])
	}

	t.Logf("✓ Memory Set32 works correctly")
}

func TestMemorySet8(t *testing.T) {
	mem := NewMemory()
	mem.Resize(32)

	// Only the low byte of the value lands in memory
	val := uint256.NewInt(0x1142)
	mem.Set8(5, val)

	data := mem.GetPtr(0, 32)
	if data[5] != 0x42 {
		t.Errorf("Set8 wrote %x, want 0x42", data[5])
	}
	for i, b := range data {
		if i != 5 && b != 0 {
			t.Errorf("Set8 touched byte %d", i)
		}
	}

	t.Logf("✓ Memory Set8 works correctly")
}

func TestMemoryGetCopy(t *testing.T) {
	mem := NewMemory()
	mem.Resize(64)

	// Set some data
	data := []byte{0xAA, 0xBB, 0xCC, 0xDD}
	mem.Set(10, uint64(len(data)), data)

	// GetCopy returns a copy, not a reference
	copy1 := mem.GetCopy(10, 4)
	copy2 := mem.GetCopy(10, 4)

	// Modify copy1
	copy1[0] = 0xFF

	// copy2 should be unchanged
	if copy2[0] != 0xAA {
		t.Error("GetCopy should return independent copies")
	}

	t.Logf("✓ Memory GetCopy returns independent copies")
}

func TestMemoryGetCopyZeroSize(t *testing.T) {
	mem := NewMemory()
	mem.Resize(32)

	result := mem.GetCopy(0, 0)
	if result != nil {
		t.Error("GetCopy with size 0 should return nil")
	}

	t.Logf("✓ Memory GetCopy with zero size returns nil")
}

func TestMemoryGetCopyBeyondEnd(t *testing.T) {
	mem := NewMemory()
	mem.Resize(32)

	// Request beyond memory end
	result := mem.GetCopy(100, 10)
	if result != nil && len(result) != 0 {
		t.Errorf("GetCopy beyond end should return empty/nil, got len %d", len(result))
	}

	t.Logf("✓ Memory GetCopy beyond end returns empty")
}

func TestMemoryGetPtr(t *testing.T) {
	mem := NewMemory()
	mem.Resize(64)

	data := []byte{0x11, 0x22, 0x33}
	mem.Set(0, uint64(len(data)), data)

	ptr := mem.GetPtr(0, 3)
	if !bytes.Equal(ptr, data) {
		t.Errorf("GetPtr mismatch: got %x, want %x", ptr, data)
	}

	// GetPtr aliases the backing store
	ptr[0] = 0xFF
	if mem.Data()[0] != 0xFF {
		t.Error("GetPtr should alias backing store")
	}

	if mem.GetPtr(0, 0) != nil {
		t.Error("GetPtr with size 0 should return nil")
	}

	t.Logf("✓ Memory GetPtr works correctly")
}

func TestMemoryLenAndData(t *testing.T) {
	mem := NewMemory()
	if mem.Len() != len(mem.Data()) {
		t.Error("Len and Data disagree")
	}
	mem.Resize(96)
	if mem.Len() != 96 || len(mem.Data()) != 96 {
		t.Errorf("Len = %d, len(Data) = %d, want 96", mem.Len(), len(mem.Data()))
	}
	t.Logf("✓ Memory Len/Data work correctly")
}

// =============================================================================
// Benchmark Tests
// =============================================================================

func BenchmarkMemoryResize(b *testing.B) {
	for i := 0; i < b.N; i++ {
		mem := NewMemory()
		mem.Resize(4096)
	}
}

func BenchmarkMemorySet32(b *testing.B) {
	mem := NewMemory()
	mem.Resize(64)
	val := uint256.NewInt(0xdeadbeef)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		mem.Set32(0, val)
	}
}

func BenchmarkMemoryGetCopy(b *testing.B) {
	mem := NewMemory()
	mem.Resize(1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = mem.GetCopy(0, 32)
	}
}
