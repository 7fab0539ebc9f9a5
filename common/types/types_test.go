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

package types

import (
	"bytes"
	"testing"

	"github.com/holiman/uint256"
)

func TestBytesToAddress(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		hex  string
	}{
		{"empty", nil, "0x0000000000000000000000000000000000000000"},
		{"short", []byte{0x01}, "0x0000000000000000000000000000000000000001"},
		{"exact", bytes.Repeat([]byte{0xab}, 20), "0xabababababababababababababababababababab"},
		{"cropped_left", append(bytes.Repeat([]byte{0xff}, 12), bytes.Repeat([]byte{0x11}, 20)...), "0x1111111111111111111111111111111111111111"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := BytesToAddress(tt.in)
			if a.Hex() != tt.hex {
				t.Errorf("BytesToAddress(%x).Hex() = %s, want %s", tt.in, a.Hex(), tt.hex)
			}
		})
	}
	t.Logf("✓ BytesToAddress works correctly")
}

func TestHexToAddress(t *testing.T) {
	a := HexToAddress("0x1e79b045dc29eae9fdc69673c9dcd7c53e5e159d")
	if a.Hex() != "0x1e79b045dc29eae9fdc69673c9dcd7c53e5e159d" {
		t.Errorf("round trip mismatch: %s", a.Hex())
	}

	// Uppercase input must canonicalize to lowercase.
	if HexToAddress("0x1E79B045DC29EAE9FDC69673C9DCD7C53E5E159D") != a {
		t.Error("uppercase and lowercase inputs should parse to the same address")
	}

	// Short input is left-padded.
	if HexToAddress("0xff").Hex() != "0x00000000000000000000000000000000000000ff" {
		t.Errorf("short input not left-padded: %s", HexToAddress("0xff").Hex())
	}

	t.Logf("✓ HexToAddress works correctly")
}

func TestParseAddress(t *testing.T) {
	a, err := ParseAddress("0x1e79b045dc29eae9fdc69673c9dcd7c53e5e159d")
	if err != nil {
		t.Fatalf("ParseAddress failed: %v", err)
	}
	if a != HexToAddress("0x1e79b045dc29eae9fdc69673c9dcd7c53e5e159d") {
		t.Error("ParseAddress and HexToAddress disagree")
	}

	if _, err := ParseAddress("0xzz"); err == nil {
		t.Error("expected error for invalid hex")
	}
	if _, err := ParseAddress("0x" + "00" + "1e79b045dc29eae9fdc69673c9dcd7c53e5e159d"); err == nil {
		t.Error("expected error for 21-byte address")
	}

	t.Logf("✓ ParseAddress works correctly")
}

func TestWordToAddress(t *testing.T) {
	// An address on the stack is the low 160 bits of the word; high bits
	// are discarded.
	w := new(uint256.Int).SetBytes(bytes.Repeat([]byte{0xee}, 32))
	a := WordToAddress(w)
	if a.Hex() != "0xeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee" {
		t.Errorf("WordToAddress = %s", a.Hex())
	}

	small := uint256.NewInt(0x42)
	b := WordToAddress(small)
	if b.Hex() != "0x0000000000000000000000000000000000000042" {
		t.Errorf("WordToAddress small = %s", b.Hex())
	}

	// Widening back keeps only the low 160 bits.
	if AddressToWord(a).Cmp(new(uint256.Int).SetBytes(a[:])) != 0 {
		t.Error("AddressToWord round trip mismatch")
	}

	t.Logf("✓ Word/Address conversions work correctly")
}

func TestHashSetBytes(t *testing.T) {
	var h Hash
	h.SetBytes([]byte{0x01, 0x02})
	if h.Hex() != "0x0000000000000000000000000000000000000000000000000000000000000102" {
		t.Errorf("SetBytes short = %s", h.Hex())
	}

	w := uint256.NewInt(256)
	k := WordToHash(w)
	if k.Bytes()[31] != 0 || k.Bytes()[30] != 1 {
		t.Errorf("WordToHash big-endian layout wrong: %x", k.Bytes())
	}

	if !(Hash{}).IsZero() {
		t.Error("zero hash should report IsZero")
	}

	t.Logf("✓ Hash helpers work correctly")
}

func TestFromHex(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []byte
		wantErr bool
	}{
		{"prefixed", "0x0102", []byte{0x01, 0x02}, false},
		{"bare", "0102", []byte{0x01, 0x02}, false},
		{"odd_length", "0x102", []byte{0x01, 0x02}, false},
		{"empty", "", []byte{}, false},
		{"prefix_only", "0x", []byte{}, false},
		{"invalid", "0xzz", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && !bytes.Equal(got, tt.want) {
				t.Errorf("FromHex(%q) = %x, want %x", tt.in, got, tt.want)
			}
		})
	}
	t.Logf("✓ FromHex works correctly")
}

func TestCopyBytes(t *testing.T) {
	src := []byte{1, 2, 3}
	dst := CopyBytes(src)
	dst[0] = 9
	if src[0] != 1 {
		t.Error("CopyBytes should return an independent copy")
	}
	if CopyBytes(nil) != nil {
		t.Error("CopyBytes(nil) should be nil")
	}
	t.Logf("✓ CopyBytes works correctly")
}
