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

// Package evmtypes holds the read-only execution context handed to the
// interpreter and the state interface it reads and writes through.
package evmtypes

import (
	"github.com/holiman/uint256"

	"github.com/n42blockchain/evmcore/common/types"
)

// GetHashFunc returns the nth block hash in the blockchain
// and is used by the BLOCKHASH EVM op code.
type GetHashFunc func(uint64) types.Hash

// BlockContext provides the EVM with auxiliary information. Once provided
// it shouldn't be modified.
type BlockContext struct {
	// GetHash returns the hash corresponding to n
	GetHash GetHashFunc

	// Block information
	Coinbase    types.Address // Provides information for COINBASE
	GasLimit    uint64        // Provides information for GASLIMIT
	BlockNumber uint64        // Provides information for NUMBER
	Time        uint64        // Provides information for TIMESTAMP
	Difficulty  *uint256.Int  // Provides information for DIFFICULTY
	BaseFee     *uint256.Int  // Provides information for BASEFEE
	ChainID     *uint256.Int  // Provides information for CHAINID
}

// TxContext provides the EVM with information about a transaction.
// All fields can change between transactions.
type TxContext struct {
	Origin   types.Address // Provides information for ORIGIN
	GasPrice *uint256.Int  // Provides information for GASPRICE
}

// Message is the transaction-level call description for one evaluation:
// who calls, which account executes, with what value and input.
type Message struct {
	Caller types.Address
	To     types.Address
	Value  *uint256.Int
	Data   []byte
}

// IntraBlockState is the world-state view one evaluation runs against.
// Balances and code are read-only projections of the supplied state;
// storage reads and writes are scoped to the executing account and live
// only for the evaluation.
type IntraBlockState interface {
	// Exist reports whether the account is present in the state.
	Exist(addr types.Address) bool

	// GetBalance returns the account balance, zero for absent accounts.
	GetBalance(addr types.Address) *uint256.Int

	// GetCode returns the account code, nil for absent accounts.
	GetCode(addr types.Address) []byte

	// GetCodeSize returns len(GetCode(addr)) without copying the code.
	GetCodeSize(addr types.Address) int

	// GetCodeHash returns the keccak256 of the account code, the zero
	// hash for absent accounts.
	GetCodeHash(addr types.Address) types.Hash

	// GetState reads the storage slot key of addr into outValue,
	// zero when unset.
	GetState(addr types.Address, key *types.Hash, outValue *uint256.Int)

	// SetState overwrites the storage slot key of addr. Zero values are
	// stored, not elided.
	SetState(addr types.Address, key *types.Hash, value uint256.Int)
}
