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

package utils

import (
	"bytes"
	"encoding/hex"
	"testing"
)

// =============================================================================
// ToBytes Tests
// =============================================================================

func TestToBytes20(t *testing.T) {
	tests := []struct {
		name string
		len  int
	}{
		{"exact_20", 20},
		{"less_than_20", 10},
		{"more_than_20", 30},
		{"empty", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := make([]byte, tt.len)
			for i := range input {
				input[i] = byte(i % 256)
			}

			got := ToBytes20(input)

			if len(got) != 20 {
				t.Errorf("ToBytes20 result length = %d, want 20", len(got))
			}

			expectedLen := tt.len
			if expectedLen > 20 {
				expectedLen = 20
			}
			for i := 0; i < expectedLen; i++ {
				if got[i] != input[i] {
					t.Errorf("ToBytes20[%d] = %d, want %d", i, got[i], input[i])
				}
			}
		})
	}

	t.Logf("✓ ToBytes20 works correctly")
}

func TestToBytes32(t *testing.T) {
	tests := []struct {
		name string
		len  int
	}{
		{"exact_32", 32},
		{"less_than_32", 16},
		{"more_than_32", 64},
		{"empty", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := make([]byte, tt.len)
			for i := range input {
				input[i] = byte(i % 256)
			}

			got := ToBytes32(input)

			if len(got) != 32 {
				t.Errorf("ToBytes32 result length = %d, want 32", len(got))
			}
		})
	}

	t.Logf("✓ ToBytes32 works correctly")
}

// =============================================================================
// Keccak Tests
// =============================================================================

func TestKeccak256(t *testing.T) {
	data := []byte("hello world")
	hash := Keccak256(data)

	if len(hash) != 32 {
		t.Errorf("Keccak256 hash length = %d, want 32", len(hash))
	}

	// Same input should produce same output
	hash2 := Keccak256(data)
	if !bytes.Equal(hash, hash2) {
		t.Error("Keccak256 is not deterministic")
	}

	t.Logf("✓ Keccak256 works correctly")
}

func TestKeccak256Multiple(t *testing.T) {
	data1 := []byte("hello")
	data2 := []byte(" world")

	// Hash of concatenated data
	hash1 := Keccak256(data1, data2)
	hash2 := Keccak256(append(data1, data2...))

	if !bytes.Equal(hash1, hash2) {
		t.Error("Keccak256 multi-input should equal concatenated input")
	}

	t.Logf("✓ Keccak256 handles multiple inputs correctly")
}

func TestKeccak256Empty(t *testing.T) {
	hash := Keccak256([]byte{})

	if len(hash) != 32 {
		t.Errorf("Keccak256 empty hash length = %d, want 32", len(hash))
	}

	// Known vector: keccak256 of the empty string.
	want := "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"
	if hex.EncodeToString(hash) != want {
		t.Errorf("Keccak256(empty) = %x, want %s", hash, want)
	}

	t.Logf("✓ Keccak256 handles empty input correctly")
}

func TestKeccak256Hash(t *testing.T) {
	data := []byte("test data")
	hash := Keccak256Hash(data)

	if len(hash) != 32 {
		t.Errorf("Keccak256Hash length = %d, want 32", len(hash))
	}
	if !bytes.Equal(hash.Bytes(), Keccak256(data)) {
		t.Error("Keccak256Hash should match Keccak256")
	}

	t.Logf("✓ Keccak256Hash works correctly")
}

func TestHash256toS(t *testing.T) {
	data := []byte("hello")
	hexHash := Hash256toS(data)

	if len(hexHash) != 64 { // 32 bytes = 64 hex chars
		t.Errorf("Hash256toS length = %d, want 64", len(hexHash))
	}

	for _, c := range hexHash {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			t.Errorf("Hash256toS contains invalid hex char: %c", c)
		}
	}

	t.Logf("✓ Hash256toS works correctly")
}

// =============================================================================
// Benchmark Tests
// =============================================================================

func BenchmarkToBytes32(b *testing.B) {
	input := make([]byte, 32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ToBytes32(input)
	}
}

func BenchmarkKeccak256(b *testing.B) {
	data := make([]byte, 128)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Keccak256(data)
	}
}
