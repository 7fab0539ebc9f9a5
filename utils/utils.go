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
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/n42blockchain/evmcore/common/types"
)

// ToBytes20 converts a byte slice to a fixed 20-byte array.
// Longer inputs are truncated, shorter inputs right-padded with zeros.
func ToBytes20(b []byte) [20]byte {
	var out [20]byte
	copy(out[:], b)
	return out
}

// ToBytes32 converts a byte slice to a fixed 32-byte array.
// Longer inputs are truncated, shorter inputs right-padded with zeros.
func ToBytes32(b []byte) [32]byte {
	var out [32]byte
	copy(out[:], b)
	return out
}

// Keccak256 calculates and returns the Keccak256 hash of the input data.
func Keccak256(data ...[]byte) []byte {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	return d.Sum(nil)
}

// Keccak256Hash calculates the Keccak256 hash of the input data and
// returns it as a Hash.
func Keccak256Hash(data ...[]byte) types.Hash {
	return types.BytesToHash(Keccak256(data...))
}

// Hash256toS returns the Keccak256 hash of data as a bare hex string.
func Hash256toS(data []byte) string {
	return hex.EncodeToString(Keccak256(data))
}
