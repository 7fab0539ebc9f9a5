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
	"github.com/n42blockchain/evmcore/internal/vm/stack"
)

// Config are the configuration options for the Interpreter
type Config struct {
	Debug  bool      // Enables per-step tracing through Tracer
	Tracer EVMLogger // Opcode logger

	// StepLimit bounds the number of executed instructions; 0 means
	// unbounded. Exceeding the bound halts with ErrOutOfSteps.
	StepLimit uint64

	// SkipAnalysis disables the jumpdest analysis: every JUMPDEST byte
	// becomes a valid target. Only safe for trusted bytecode.
	SkipAnalysis bool
}

// ScopeContext contains the things that are per-call, such as stack and
// memory, but not transients like pc and gas
type ScopeContext struct {
	Memory   *Memory
	Stack    *stack.Stack
	Contract *Contract
}

// EVMInterpreter runs the dispatch loop over a contract's bytecode.
type EVMInterpreter struct {
	evm *EVM
	cfg Config

	jt *JumpTable // instruction table

	hasherBuf  types.Hash // shared buffer for storage keys
	returnData []byte     // last CALL's return data for subsequent reuse

	// lastStack is the snapshot of the operand stack at loop exit, bottom
	// first. Evaluate reads it to build the reified result.
	lastStack []uint256.Int
}

// NewEVMInterpreter returns a new instance of the Interpreter.
func NewEVMInterpreter(evm *EVM, cfg Config) *EVMInterpreter {
	return &EVMInterpreter{
		evm: evm,
		cfg: cfg,
		jt:  &evaluatorInstructionSet,
	}
}

// Run loops and evaluates the contract's code with the given input data and
// returns the return byte-slice and an error if one occurred.
//
// It's important to note that any errors returned by the interpreter should
// be considered a revert-and-consume-all-gas operation except for
// ErrExecutionReverted which means revert-and-keep-gas-left.
func (in *EVMInterpreter) Run(contract *Contract, input []byte) (ret []byte, err error) {
	// Don't bother with the execution if there's no code.
	if len(contract.Code) == 0 {
		in.lastStack = in.lastStack[:0]
		return nil, nil
	}

	contract.Input = input

	var (
		op          OpCode        // current opcode
		mem         = NewMemory() // bound memory
		locStack    = stack.New() // local stack
		callContext = &ScopeContext{
			Memory:   mem,
			Stack:    locStack,
			Contract: contract,
		}
		// For optimisation reason we're using uint64 as the program counter.
		// It's theoretically possible to go above 2^64. The YP defines the PC
		// to be uint256. Practically much less so feasible.
		pc    = uint64(0) // program counter
		steps = uint64(0)
		res   []byte // result of the opcode execution function
	)
	defer func() {
		// Snapshot the final stack before the backing slice goes back to
		// the pool; callers read it through the evaluation result.
		in.lastStack = append(in.lastStack[:0], locStack.Data()...)
		stack.ReturnNormalStack(locStack)
	}()

	// Reset the previous call's return data. It's unimportant to preserve the old buffer
	// as every returning call will return new data anyway.
	in.returnData = nil

	if in.cfg.Debug && in.cfg.Tracer != nil {
		in.cfg.Tracer.CaptureStart(in.evm, contract.Caller(), contract.Address(), input, contract.Value())
		defer func() {
			in.cfg.Tracer.CaptureEnd(ret, err)
		}()
	}

	// The Interpreter main run loop (contextual). This loop runs until
	// explicit STOP, RETURN or REVERT is executed, an error occurred during
	// the execution of one of the operations, or the program counter ran
	// off the end of the code (GetOp reads an implicit STOP there).
	for {
		steps++
		if in.cfg.StepLimit > 0 && steps > in.cfg.StepLimit {
			return nil, ErrOutOfSteps
		}

		// Get the operation from the jump table and validate the stack to ensure there are
		// enough stack items available to perform the operation.
		op = contract.GetOp(pc)
		operation := in.jt[op]
		if operation == nil {
			return nil, &ErrInvalidOpCode{opcode: op}
		}
		// Validate stack
		if sLen := locStack.Len(); sLen < operation.minStack {
			return nil, &ErrStackUnderflow{stackLen: sLen, required: operation.minStack}
		} else if sLen > operation.maxStack {
			return nil, &ErrStackOverflow{stackLen: sLen, limit: operation.maxStack}
		}

		// Calculate the new memory size and expand the memory to fit the
		// operation. The check needs to happen before execution to detect
		// offset arithmetic that overflows the machine word.
		var memorySize uint64
		if operation.memorySize != nil {
			memSize, overflow := operation.memorySize(locStack)
			if overflow {
				return nil, ErrMemoryOverflow
			}
			// memory is expanded in words of 32 bytes, keeping the length
			// a word multiple at every step boundary.
			if memorySize, overflow = safeMul(toWordSize(memSize), 32); overflow {
				return nil, ErrMemoryOverflow
			}
		}
		if memorySize > 0 {
			mem.Resize(memorySize)
		}

		if in.cfg.Debug && in.cfg.Tracer != nil {
			in.cfg.Tracer.CaptureState(pc, op, callContext, in.returnData, err)
		}

		// execute the operation
		res, err = operation.execute(&pc, in, callContext)

		if operation.returns {
			in.returnData = res
		}

		switch {
		case err != nil:
			return nil, err
		case operation.reverts:
			return res, ErrExecutionReverted
		case operation.halts:
			return res, nil
		case !operation.jumps:
			pc++
		}
	}
}
