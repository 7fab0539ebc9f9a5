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

// Package state provides the in-memory world state an evaluation runs
// against: accounts with balance and code seeded from the caller, plus
// per-account storage that lives for the duration of one evaluation.
package state

import (
	"github.com/holiman/uint256"

	"github.com/n42blockchain/evmcore/common/types"
	"github.com/n42blockchain/evmcore/utils"
)

type account struct {
	balance  uint256.Int
	code     []byte
	codeHash types.Hash
	storage  map[types.Hash]uint256.Int
	written  map[types.Hash]uint256.Int
}

// IntraBlockState is a map-backed implementation of the VM's state
// interface. It is not safe for concurrent use; one evaluation owns it.
type IntraBlockState struct {
	accounts map[types.Address]*account
}

// New returns an empty state.
func New() *IntraBlockState {
	return &IntraBlockState{accounts: make(map[types.Address]*account)}
}

func (s *IntraBlockState) getAccount(addr types.Address) *account {
	return s.accounts[addr]
}

func (s *IntraBlockState) getOrNewAccount(addr types.Address) *account {
	acc := s.accounts[addr]
	if acc == nil {
		acc = &account{
			codeHash: utils.Keccak256Hash(nil),
			storage:  make(map[types.Hash]uint256.Int),
			written:  make(map[types.Hash]uint256.Int),
		}
		s.accounts[addr] = acc
	}
	return acc
}

// CreateAccount makes addr present with zero balance and no code.
func (s *IntraBlockState) CreateAccount(addr types.Address) {
	s.getOrNewAccount(addr)
}

// SetBalance overwrites the balance of addr, creating the account.
func (s *IntraBlockState) SetBalance(addr types.Address, balance *uint256.Int) {
	acc := s.getOrNewAccount(addr)
	acc.balance.Set(balance)
}

// SetCode installs code on addr, creating the account. The code hash is
// computed eagerly; EXTCODEHASH reads it without rehashing.
func (s *IntraBlockState) SetCode(addr types.Address, code []byte) {
	acc := s.getOrNewAccount(addr)
	acc.code = types.CopyBytes(code)
	acc.codeHash = utils.Keccak256Hash(code)
}

// Exist reports whether the account is present in the state.
func (s *IntraBlockState) Exist(addr types.Address) bool {
	return s.getAccount(addr) != nil
}

// GetBalance returns the account balance, zero for absent accounts.
func (s *IntraBlockState) GetBalance(addr types.Address) *uint256.Int {
	if acc := s.getAccount(addr); acc != nil {
		return &acc.balance
	}
	return uint256.NewInt(0)
}

// GetCode returns the account code, nil for absent accounts.
func (s *IntraBlockState) GetCode(addr types.Address) []byte {
	if acc := s.getAccount(addr); acc != nil {
		return acc.code
	}
	return nil
}

// GetCodeSize returns the code length without copying.
func (s *IntraBlockState) GetCodeSize(addr types.Address) int {
	if acc := s.getAccount(addr); acc != nil {
		return len(acc.code)
	}
	return 0
}

// GetCodeHash returns the keccak256 of the account code, zero hash for
// absent accounts.
func (s *IntraBlockState) GetCodeHash(addr types.Address) types.Hash {
	if acc := s.getAccount(addr); acc != nil {
		return acc.codeHash
	}
	return types.Hash{}
}

// GetState reads the storage slot key of addr into outValue, zero when
// unset.
func (s *IntraBlockState) GetState(addr types.Address, key *types.Hash, outValue *uint256.Int) {
	if acc := s.getAccount(addr); acc != nil {
		if v, ok := acc.storage[*key]; ok {
			outValue.Set(&v)
			return
		}
	}
	outValue.Clear()
}

// SetState overwrites the storage slot key of addr. Zero values are
// stored, not elided.
func (s *IntraBlockState) SetState(addr types.Address, key *types.Hash, value uint256.Int) {
	acc := s.getOrNewAccount(addr)
	acc.storage[*key] = value
	acc.written[*key] = value
}

// StorageWrites returns the slots written on addr since construction.
// The VM surfaces these in the evaluation result.
func (s *IntraBlockState) StorageWrites(addr types.Address) map[types.Hash]uint256.Int {
	acc := s.getAccount(addr)
	if acc == nil || len(acc.written) == 0 {
		return nil
	}
	out := make(map[types.Hash]uint256.Int, len(acc.written))
	for k, v := range acc.written {
		out[k] = v
	}
	return out
}
