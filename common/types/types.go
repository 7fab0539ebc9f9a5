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

// Package types holds the fixed-size value types shared by the whole module:
// 20-byte account addresses and 32-byte hashes / storage keys.
package types

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/holiman/uint256"
)

const (
	// AddressLength is the expected length of an account address in bytes.
	AddressLength = 20
	// HashLength is the expected length of a hash or storage key in bytes.
	HashLength = 32
)

// Address represents the 20-byte address of an account.
type Address [AddressLength]byte

// Hash represents a 32-byte value: a code hash, a storage key or slot.
type Hash [HashLength]byte

// BytesToAddress returns Address with value b.
// If b is larger than AddressLength, b is cropped from the left.
func BytesToAddress(b []byte) Address {
	var a Address
	a.SetBytes(b)
	return a
}

// SetBytes sets the address to the value of b.
// If b is larger than AddressLength, b is cropped from the left.
func (a *Address) SetBytes(b []byte) {
	if len(b) > AddressLength {
		b = b[len(b)-AddressLength:]
	}
	copy(a[AddressLength-len(b):], b)
}

// Bytes returns the address as a byte slice.
func (a Address) Bytes() []byte { return a[:] }

// Hex returns the lowercase 0x-prefixed hex encoding of the address.
// This is the canonical form used as a world-state key.
func (a Address) Hex() string {
	return "0x" + hex.EncodeToString(a[:])
}

// String implements fmt.Stringer.
func (a Address) String() string { return a.Hex() }

// IsZero reports whether the address is the all-zero address.
func (a Address) IsZero() bool { return a == Address{} }

// HexToAddress returns the Address with byte values of s.
// If s is larger than an address it is cropped from the left; shorter
// inputs are left-padded with zeros, matching the EVM view of an address
// as the low 160 bits of a word. Invalid hex decodes best-effort.
func HexToAddress(s string) Address {
	b, _ := FromHex(s)
	return BytesToAddress(b)
}

// ParseAddress is the strict form of HexToAddress used on external input:
// it rejects malformed hex and inputs longer than 20 bytes.
func ParseAddress(s string) (Address, error) {
	b, err := FromHex(s)
	if err != nil {
		return Address{}, err
	}
	if len(b) > AddressLength {
		return Address{}, fmt.Errorf("address too long: %d bytes", len(b))
	}
	return BytesToAddress(b), nil
}

// WordToAddress truncates a 256-bit word to its low 160 bits.
func WordToAddress(w *uint256.Int) Address {
	b := w.Bytes32()
	return BytesToAddress(b[12:])
}

// AddressToWord widens an address into a 256-bit word.
func AddressToWord(a Address) *uint256.Int {
	return new(uint256.Int).SetBytes(a[:])
}

// BytesToHash returns Hash with value b.
// If b is larger than HashLength, b is cropped from the left.
func BytesToHash(b []byte) Hash {
	var h Hash
	h.SetBytes(b)
	return h
}

// SetBytes sets the hash to the value of b.
// If b is larger than HashLength, b is cropped from the left.
func (h *Hash) SetBytes(b []byte) {
	if len(b) > HashLength {
		b = b[len(b)-HashLength:]
	}
	copy(h[HashLength-len(b):], b)
}

// Bytes returns the hash as a byte slice.
func (h Hash) Bytes() []byte { return h[:] }

// Hex returns the lowercase 0x-prefixed hex encoding of the hash.
func (h Hash) Hex() string {
	return "0x" + hex.EncodeToString(h[:])
}

// String implements fmt.Stringer.
func (h Hash) String() string { return h.Hex() }

// IsZero reports whether the hash is the all-zero hash.
func (h Hash) IsZero() bool { return h == Hash{} }

// HexToHash returns the Hash with byte values of s, cropped or left-padded
// like HexToAddress.
func HexToHash(s string) Hash {
	b, _ := FromHex(s)
	return BytesToHash(b)
}

// WordToHash returns the 32-byte big-endian form of a word, used for
// storage keys.
func WordToHash(w *uint256.Int) Hash {
	return Hash(w.Bytes32())
}

// FromHex decodes a hex string with optional 0x prefix. Odd-length inputs
// are left-padded with a zero nibble.
func FromHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s)%2 == 1 {
		s = "0" + s
	}
	return hex.DecodeString(s)
}

// CopyBytes returns an exact copy of the provided bytes.
func CopyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
