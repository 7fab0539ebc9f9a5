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
	"errors"
	"fmt"
)

// List evaluation errors. Every failure mode of the dispatch loop is one of
// these; nothing else crosses the Evaluate boundary.
var (
	ErrInvalidJump        = errors.New("invalid jump destination")
	ErrExecutionReverted  = errors.New("execution reverted")
	ErrReturnDataOutOfBounds = errors.New("return data out of bounds")
	ErrMemoryOverflow     = errors.New("memory offset overflow")
	ErrOutOfSteps         = errors.New("step limit exceeded")
)

// ErrStackUnderflow wraps an evaluation error caused by too few items on
// the stack for the fetched operation.
type ErrStackUnderflow struct {
	stackLen int
	required int
}

func (e *ErrStackUnderflow) Error() string {
	return fmt.Sprintf("stack underflow (%d <=> %d)", e.stackLen, e.required)
}

// ErrStackOverflow wraps an evaluation error caused by the operation
// pushing past the stack limit.
type ErrStackOverflow struct {
	stackLen int
	limit    int
}

func (e *ErrStackOverflow) Error() string {
	return fmt.Sprintf("stack limit reached %d (%d)", e.stackLen, e.limit)
}

// ErrInvalidOpCode wraps an evaluation error caused by an undefined (or
// explicitly invalid) opcode byte.
type ErrInvalidOpCode struct {
	opcode OpCode
}

func (e *ErrInvalidOpCode) Error() string {
	return fmt.Sprintf("invalid opcode: %s", e.opcode)
}

// HaltReason is the tagged outcome that terminates the dispatch loop.
type HaltReason uint8

const (
	HaltSuccess HaltReason = iota
	HaltRevert
	HaltInvalidOpcode
	HaltInvalidJump
	HaltStackUnderflow
	HaltStackOverflow
	HaltMemoryOverflow
	HaltOutOfSteps
)

func (h HaltReason) String() string {
	switch h {
	case HaltSuccess:
		return "Success"
	case HaltRevert:
		return "Revert"
	case HaltInvalidOpcode:
		return "InvalidOpcode"
	case HaltInvalidJump:
		return "InvalidJump"
	case HaltStackUnderflow:
		return "StackUnderflow"
	case HaltStackOverflow:
		return "StackOverflow"
	case HaltMemoryOverflow:
		return "MemoryOverflow"
	case HaltOutOfSteps:
		return "OutOfSteps"
	default:
		return fmt.Sprintf("HaltReason(%d)", uint8(h))
	}
}

// Success reports whether the reason counts as a successful exit:
// STOP, RETURN or running off the end of the code.
func (h HaltReason) Success() bool {
	return h == HaltSuccess
}

// haltReasonFor maps a loop error onto the halt taxonomy.
func haltReasonFor(err error) HaltReason {
	if err == nil {
		return HaltSuccess
	}
	var (
		underflow *ErrStackUnderflow
		overflow  *ErrStackOverflow
		badOp     *ErrInvalidOpCode
	)
	switch {
	case errors.Is(err, ErrExecutionReverted):
		return HaltRevert
	case errors.Is(err, ErrInvalidJump):
		return HaltInvalidJump
	case errors.Is(err, ErrMemoryOverflow), errors.Is(err, ErrReturnDataOutOfBounds):
		return HaltMemoryOverflow
	case errors.Is(err, ErrOutOfSteps):
		return HaltOutOfSteps
	case errors.As(err, &underflow):
		return HaltStackUnderflow
	case errors.As(err, &overflow):
		return HaltStackOverflow
	case errors.As(err, &badOp):
		return HaltInvalidOpcode
	default:
		return HaltInvalidOpcode
	}
}
