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
	"github.com/n42blockchain/evmcore/internal/vm/stack"
	"github.com/n42blockchain/evmcore/params"
)

type (
	executionFunc func(pc *uint64, interpreter *EVMInterpreter, scope *ScopeContext) ([]byte, error)
	// memorySizeFunc returns the required size, and whether the operation overflowed a uint64
	memorySizeFunc func(*stack.Stack) (size uint64, overflow bool)
)

// operation is the static descriptor of one opcode: its handler plus the
// stack-effect bounds the dispatch loop validates before handler entry.
type operation struct {
	// execute is the operation function
	execute executionFunc

	// minStack tells how many stack items are required
	minStack int
	// maxStack specifies the max length the stack can have for this operation
	// to not overflow the stack.
	maxStack int

	// memorySize returns the memory size required for the operation
	memorySize memorySizeFunc

	halts   bool // indicates whether the operation should halt further execution
	jumps   bool // indicates whether the program counter should not increment
	reverts bool // determines whether the operation reverts state (implicitly halts)
	returns bool // determines whether the operations sets the return data content
}

// JumpTable contains the EVM opcodes supported at a given fork.
type JumpTable [256]*operation

func minStack(pops, push int) int {
	return pops
}

func maxStack(pops, push int) int {
	return int(params.StackLimit) + pops - push
}

func minSwapStack(n int) int {
	return minStack(n, n)
}
func maxSwapStack(n int) int {
	return maxStack(n, n)
}

func minDupStack(n int) int {
	return minStack(n, n+1)
}
func maxDupStack(n int) int {
	return maxStack(n, n+1)
}

// newEvaluatorInstructionSet returns the instruction table of the evaluator.
// There is a single table: the opcode surface is fixed, no fork switching.
func newEvaluatorInstructionSet() JumpTable {
	tbl := JumpTable{
		STOP: {
			execute:  opStop,
			minStack: minStack(0, 0),
			maxStack: maxStack(0, 0),
			halts:    true,
		},
		ADD: {
			execute:  opAdd,
			minStack: minStack(2, 1),
			maxStack: maxStack(2, 1),
		},
		MUL: {
			execute:  opMul,
			minStack: minStack(2, 1),
			maxStack: maxStack(2, 1),
		},
		SUB: {
			execute:  opSub,
			minStack: minStack(2, 1),
			maxStack: maxStack(2, 1),
		},
		DIV: {
			execute:  opDiv,
			minStack: minStack(2, 1),
			maxStack: maxStack(2, 1),
		},
		SDIV: {
			execute:  opSdiv,
			minStack: minStack(2, 1),
			maxStack: maxStack(2, 1),
		},
		MOD: {
			execute:  opMod,
			minStack: minStack(2, 1),
			maxStack: maxStack(2, 1),
		},
		SMOD: {
			execute:  opSmod,
			minStack: minStack(2, 1),
			maxStack: maxStack(2, 1),
		},
		ADDMOD: {
			execute:  opAddmod,
			minStack: minStack(3, 1),
			maxStack: maxStack(3, 1),
		},
		MULMOD: {
			execute:  opMulmod,
			minStack: minStack(3, 1),
			maxStack: maxStack(3, 1),
		},
		EXP: {
			execute:  opExp,
			minStack: minStack(2, 1),
			maxStack: maxStack(2, 1),
		},
		SIGNEXTEND: {
			execute:  opSignExtend,
			minStack: minStack(2, 1),
			maxStack: maxStack(2, 1),
		},
		LT: {
			execute:  opLt,
			minStack: minStack(2, 1),
			maxStack: maxStack(2, 1),
		},
		GT: {
			execute:  opGt,
			minStack: minStack(2, 1),
			maxStack: maxStack(2, 1),
		},
		SLT: {
			execute:  opSlt,
			minStack: minStack(2, 1),
			maxStack: maxStack(2, 1),
		},
		SGT: {
			execute:  opSgt,
			minStack: minStack(2, 1),
			maxStack: maxStack(2, 1),
		},
		EQ: {
			execute:  opEq,
			minStack: minStack(2, 1),
			maxStack: maxStack(2, 1),
		},
		ISZERO: {
			execute:  opIszero,
			minStack: minStack(1, 1),
			maxStack: maxStack(1, 1),
		},
		AND: {
			execute:  opAnd,
			minStack: minStack(2, 1),
			maxStack: maxStack(2, 1),
		},
		XOR: {
			execute:  opXor,
			minStack: minStack(2, 1),
			maxStack: maxStack(2, 1),
		},
		OR: {
			execute:  opOr,
			minStack: minStack(2, 1),
			maxStack: maxStack(2, 1),
		},
		NOT: {
			execute:  opNot,
			minStack: minStack(1, 1),
			maxStack: maxStack(1, 1),
		},
		BYTE: {
			execute:  opByte,
			minStack: minStack(2, 1),
			maxStack: maxStack(2, 1),
		},
		SHL: {
			execute:  opSHL,
			minStack: minStack(2, 1),
			maxStack: maxStack(2, 1),
		},
		SHR: {
			execute:  opSHR,
			minStack: minStack(2, 1),
			maxStack: maxStack(2, 1),
		},
		SAR: {
			execute:  opSAR,
			minStack: minStack(2, 1),
			maxStack: maxStack(2, 1),
		},
		KECCAK256: {
			execute:    opKeccak256,
			minStack:   minStack(2, 1),
			maxStack:   maxStack(2, 1),
			memorySize: memoryKeccak256,
		},
		ADDRESS: {
			execute:  opAddress,
			minStack: minStack(0, 1),
			maxStack: maxStack(0, 1),
		},
		BALANCE: {
			execute:  opBalance,
			minStack: minStack(1, 1),
			maxStack: maxStack(1, 1),
		},
		ORIGIN: {
			execute:  opOrigin,
			minStack: minStack(0, 1),
			maxStack: maxStack(0, 1),
		},
		CALLER: {
			execute:  opCaller,
			minStack: minStack(0, 1),
			maxStack: maxStack(0, 1),
		},
		CALLVALUE: {
			execute:  opCallValue,
			minStack: minStack(0, 1),
			maxStack: maxStack(0, 1),
		},
		CALLDATALOAD: {
			execute:  opCallDataLoad,
			minStack: minStack(1, 1),
			maxStack: maxStack(1, 1),
		},
		CALLDATASIZE: {
			execute:  opCallDataSize,
			minStack: minStack(0, 1),
			maxStack: maxStack(0, 1),
		},
		CALLDATACOPY: {
			execute:    opCallDataCopy,
			minStack:   minStack(3, 0),
			maxStack:   maxStack(3, 0),
			memorySize: memoryCallDataCopy,
		},
		CODESIZE: {
			execute:  opCodeSize,
			minStack: minStack(0, 1),
			maxStack: maxStack(0, 1),
		},
		CODECOPY: {
			execute:    opCodeCopy,
			minStack:   minStack(3, 0),
			maxStack:   maxStack(3, 0),
			memorySize: memoryCodeCopy,
		},
		GASPRICE: {
			execute:  opGasprice,
			minStack: minStack(0, 1),
			maxStack: maxStack(0, 1),
		},
		EXTCODESIZE: {
			execute:  opExtCodeSize,
			minStack: minStack(1, 1),
			maxStack: maxStack(1, 1),
		},
		EXTCODECOPY: {
			execute:    opExtCodeCopy,
			minStack:   minStack(4, 0),
			maxStack:   maxStack(4, 0),
			memorySize: memoryExtCodeCopy,
		},
		RETURNDATASIZE: {
			execute:  opReturnDataSize,
			minStack: minStack(0, 1),
			maxStack: maxStack(0, 1),
		},
		RETURNDATACOPY: {
			execute:    opReturnDataCopy,
			minStack:   minStack(3, 0),
			maxStack:   maxStack(3, 0),
			memorySize: memoryReturnDataCopy,
		},
		EXTCODEHASH: {
			execute:  opExtCodeHash,
			minStack: minStack(1, 1),
			maxStack: maxStack(1, 1),
		},
		BLOCKHASH: {
			execute:  opBlockhash,
			minStack: minStack(1, 1),
			maxStack: maxStack(1, 1),
		},
		COINBASE: {
			execute:  opCoinbase,
			minStack: minStack(0, 1),
			maxStack: maxStack(0, 1),
		},
		TIMESTAMP: {
			execute:  opTimestamp,
			minStack: minStack(0, 1),
			maxStack: maxStack(0, 1),
		},
		NUMBER: {
			execute:  opNumber,
			minStack: minStack(0, 1),
			maxStack: maxStack(0, 1),
		},
		DIFFICULTY: {
			execute:  opDifficulty,
			minStack: minStack(0, 1),
			maxStack: maxStack(0, 1),
		},
		GASLIMIT: {
			execute:  opGasLimit,
			minStack: minStack(0, 1),
			maxStack: maxStack(0, 1),
		},
		CHAINID: {
			execute:  opChainID,
			minStack: minStack(0, 1),
			maxStack: maxStack(0, 1),
		},
		SELFBALANCE: {
			execute:  opSelfBalance,
			minStack: minStack(0, 1),
			maxStack: maxStack(0, 1),
		},
		BASEFEE: {
			execute:  opBaseFee,
			minStack: minStack(0, 1),
			maxStack: maxStack(0, 1),
		},
		POP: {
			execute:  opPop,
			minStack: minStack(1, 0),
			maxStack: maxStack(1, 0),
		},
		MLOAD: {
			execute:    opMload,
			minStack:   minStack(1, 1),
			maxStack:   maxStack(1, 1),
			memorySize: memoryMLoad,
		},
		MSTORE: {
			execute:    opMstore,
			minStack:   minStack(2, 0),
			maxStack:   maxStack(2, 0),
			memorySize: memoryMStore,
		},
		MSTORE8: {
			execute:    opMstore8,
			minStack:   minStack(2, 0),
			maxStack:   maxStack(2, 0),
			memorySize: memoryMStore8,
		},
		SLOAD: {
			execute:  opSload,
			minStack: minStack(1, 1),
			maxStack: maxStack(1, 1),
		},
		SSTORE: {
			execute:  opSstore,
			minStack: minStack(2, 0),
			maxStack: maxStack(2, 0),
		},
		JUMP: {
			execute:  opJump,
			minStack: minStack(1, 0),
			maxStack: maxStack(1, 0),
			jumps:    true,
		},
		JUMPI: {
			execute:  opJumpi,
			minStack: minStack(2, 0),
			maxStack: maxStack(2, 0),
			jumps:    true,
		},
		PC: {
			execute:  opPc,
			minStack: minStack(0, 1),
			maxStack: maxStack(0, 1),
		},
		MSIZE: {
			execute:  opMsize,
			minStack: minStack(0, 1),
			maxStack: maxStack(0, 1),
		},
		GAS: {
			execute:  opGas,
			minStack: minStack(0, 1),
			maxStack: maxStack(0, 1),
		},
		JUMPDEST: {
			execute:  opJumpdest,
			minStack: minStack(0, 0),
			maxStack: maxStack(0, 0),
		},
		PUSH0: {
			execute:  opPush0,
			minStack: minStack(0, 1),
			maxStack: maxStack(0, 1),
		},
		CREATE: {
			execute:  opCreate,
			minStack: minStack(3, 1),
			maxStack: maxStack(3, 1),
			returns:  true,
		},
		CALL: {
			execute:  opCall,
			minStack: minStack(7, 1),
			maxStack: maxStack(7, 1),
			returns:  true,
		},
		CALLCODE: {
			execute:  opCallCode,
			minStack: minStack(7, 1),
			maxStack: maxStack(7, 1),
			returns:  true,
		},
		RETURN: {
			execute:    opReturn,
			minStack:   minStack(2, 0),
			maxStack:   maxStack(2, 0),
			memorySize: memoryReturn,
			halts:      true,
		},
		DELEGATECALL: {
			execute:  opDelegateCall,
			minStack: minStack(6, 1),
			maxStack: maxStack(6, 1),
			returns:  true,
		},
		CREATE2: {
			execute:  opCreate2,
			minStack: minStack(4, 1),
			maxStack: maxStack(4, 1),
			returns:  true,
		},
		STATICCALL: {
			execute:  opStaticCall,
			minStack: minStack(6, 1),
			maxStack: maxStack(6, 1),
			returns:  true,
		},
		REVERT: {
			execute:    opRevert,
			minStack:   minStack(2, 0),
			maxStack:   maxStack(2, 0),
			memorySize: memoryRevert,
			reverts:    true,
			returns:    true,
		},
		SELFDESTRUCT: {
			execute:  opSelfdestruct,
			minStack: minStack(1, 0),
			maxStack: maxStack(1, 0),
			halts:    true,
		},
	}

	// Fill PUSH, DUP, SWAP and LOG ranges by numeric derivation.
	for i := 0; i < 32; i++ {
		n := i + 1
		tbl[int(PUSH1)+i] = &operation{
			execute:  makePush(uint64(n), n),
			minStack: minStack(0, 1),
			maxStack: maxStack(0, 1),
		}
	}
	for i := 0; i < 16; i++ {
		n := i + 1
		tbl[int(DUP1)+i] = &operation{
			execute:  makeDup(int64(n)),
			minStack: minDupStack(n),
			maxStack: maxDupStack(n),
		}
		tbl[int(SWAP1)+i] = &operation{
			execute:  makeSwap(int64(n)),
			minStack: minSwapStack(n + 1),
			maxStack: maxSwapStack(n + 1),
		}
	}
	for i := 0; i <= 4; i++ {
		tbl[int(LOG0)+i] = &operation{
			execute:    makeLog(i),
			minStack:   minStack(i+2, 0),
			maxStack:   maxStack(i+2, 0),
			memorySize: memoryLog,
		}
	}

	return tbl
}

// evaluatorInstructionSet is the shared immutable table; entries are never
// mutated after init.
var evaluatorInstructionSet = newEvaluatorInstructionSet()
