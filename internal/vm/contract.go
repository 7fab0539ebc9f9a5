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

package vm

import (
	"github.com/holiman/uint256"

	"github.com/n42blockchain/evmcore/common/types"
	"github.com/n42blockchain/evmcore/utils"
)

// ContractRef is a reference to the contract's backing object
type ContractRef interface {
	Address() types.Address
}

// AccountRef implements ContractRef.
//
// Account references are used during EVM initialisation and
// its primary use is to fetch addresses. Removing this object
// proves difficult because of the cached jump destinations which
// are fetched from the parent contract (i.e. the caller), which
// is a ContractRef.
type AccountRef types.Address

// Address casts AccountRef to an Address
func (ar AccountRef) Address() types.Address { return (types.Address)(ar) }

// Contract represents an ethereum contract in the state database. It contains
// the contract code, calling arguments.
type Contract struct {
	// CallerAddress is the result of the caller which initialised this
	// contract. However when the "call method" is delegated this value
	// needs to be initialised to that of the caller's caller.
	CallerAddress types.Address
	caller        ContractRef
	self          ContractRef

	jumpdests map[types.Hash]bitvec // Aggregated result of JUMPDEST analysis.
	analysis  bitvec                // Locally cached result of JUMPDEST analysis

	Code     []byte
	CodeHash types.Hash
	CodeAddr *types.Address
	Input    []byte

	value        *uint256.Int
	skipAnalysis bool
}

// NewContract returns a new contract environment for the execution of EVM.
func NewContract(caller ContractRef, object ContractRef, value *uint256.Int, skipAnalysis bool) *Contract {
	c := &Contract{CallerAddress: caller.Address(), caller: caller, self: object}

	if parent, ok := caller.(*Contract); ok {
		// Reuse JUMPDEST analysis from parent context if available.
		c.jumpdests = parent.jumpdests
	} else {
		c.jumpdests = make(map[types.Hash]bitvec)
	}

	c.value = value
	c.skipAnalysis = skipAnalysis

	return c
}

func (c *Contract) validJumpdest(dest *uint256.Int) bool {
	udest, overflow := dest.Uint64WithOverflow()
	// PC cannot go beyond len(code) and certainly can't be bigger than 64bits.
	// Don't bother checking for JUMPDEST in that case.
	if overflow || udest >= uint64(len(c.Code)) {
		return false
	}
	// Only JUMPDESTs allowed for destinations
	if OpCode(c.Code[udest]) != JUMPDEST {
		return false
	}
	if c.skipAnalysis {
		return true
	}
	return c.isCode(udest)
}

// isCode reports whether the provided PC location is an actual opcode, as
// opposed to a data-segment following a PUSHN operation.
func (c *Contract) isCode(udest uint64) bool {
	// Do we already have an analysis laying around?
	if c.analysis != nil {
		return c.analysis.codeSegment(udest)
	}
	// Do we have a contract hash already?
	// If we do have a hash, that means it's a 'regular' contract. For regular
	// contracts ( not temporary initcode), we store the analysis in a
	// two-tier cache: the call-tree local map and the shared LRU.
	if c.CodeHash != (types.Hash{}) {
		analysis, exist := c.jumpdests[c.CodeHash]
		if !exist {
			if cached, ok := lookupAnalysis(c.CodeHash); ok {
				analysis = cached
			} else {
				// Do the analysis and save in parent context
				// We do not need to store it in c.analysis
				analysis = codeBitmap(c.Code)
				storeAnalysis(c.CodeHash, analysis)
			}
			c.jumpdests[c.CodeHash] = analysis
		}
		// Also stash it in current contract for faster access
		c.analysis = analysis
		return analysis.codeSegment(udest)
	}
	// We don't have the code hash, most likely a piece of initcode not already
	// in state trie. In that case, we do an analysis, and save it locally, so
	// we don't have to recalculate it for every JUMP instruction in the execution
	// However, we don't save it within the parent context
	if c.analysis == nil {
		c.analysis = codeBitmap(c.Code)
	}
	return c.analysis.codeSegment(udest)
}

// AsDelegate sets the contract to be a delegate call and returns the current
// contract (for chaining calls)
func (c *Contract) AsDelegate() *Contract {
	// NOTE: caller must, at all times be a contract. It should never happen
	// that caller is something other than a Contract.
	parent := c.caller.(*Contract)
	c.CallerAddress = parent.CallerAddress
	c.value = parent.value

	return c
}

// GetOp returns the n'th element in the contract's byte array
func (c *Contract) GetOp(n uint64) OpCode {
	if n < uint64(len(c.Code)) {
		return OpCode(c.Code[n])
	}

	return STOP
}

// Caller returns the caller of the contract, as stored in CallerAddress.
func (c *Contract) Caller() types.Address {
	return c.CallerAddress
}

// Address returns the contracts address
func (c *Contract) Address() types.Address {
	return c.self.Address()
}

// Value returns the contract's value (sent to it from it's caller)
func (c *Contract) Value() *uint256.Int {
	return c.value
}

// SetCallCode sets the code of the contract and address of the backing data
// object
func (c *Contract) SetCallCode(addr *types.Address, hash types.Hash, code []byte) {
	c.Code = code
	c.CodeHash = hash
	c.CodeAddr = addr
}

// SetCodeOptionalHash can be used to provide code, but it's optional to
// provide hash. In case hash is not provided, the jumpdest analysis will not
// be saved to the parent context
func (c *Contract) SetCodeOptionalHash(addr *types.Address, codeAndHash *codeAndHash) {
	c.Code = codeAndHash.code
	c.CodeHash = codeAndHash.hash
	c.CodeAddr = addr
}

// codeAndHash lazily computes and memoizes the keccak256 of a code blob.
type codeAndHash struct {
	code []byte
	hash types.Hash
}

// Hash returns the code hash, computing it on first access.
func (c *codeAndHash) Hash() types.Hash {
	if c.hash == (types.Hash{}) {
		c.hash = utils.Keccak256Hash(c.code)
	}
	return c.hash
}
