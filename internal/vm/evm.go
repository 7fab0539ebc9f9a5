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
	"github.com/VictoriaMetrics/metrics"
	"github.com/holiman/uint256"

	"github.com/n42blockchain/evmcore/common/types"
	"github.com/n42blockchain/evmcore/internal/vm/evmtypes"
	"github.com/n42blockchain/evmcore/utils"
)

var (
	evaluationsTotal  = metrics.GetOrCreateCounter(`evmcore_evaluations_total`)
	evaluationsFailed = metrics.GetOrCreateCounter(`evmcore_evaluations_total{result="failed"}`)
)

// EVM owns everything one evaluation needs: the immutable block and
// transaction context, the state view, and the interpreter. An EVM must
// not be shared between concurrent evaluations; each one is cheap to
// construct.
type EVM struct {
	context         evmtypes.BlockContext
	txContext       evmtypes.TxContext
	intraBlockState evmtypes.IntraBlockState

	config      Config
	interpreter *EVMInterpreter
}

// NewEVM returns a new EVM. The out of band parameters may be nil:
// opcodes projecting a missing context read zero.
func NewEVM(blockCtx evmtypes.BlockContext, txCtx evmtypes.TxContext, state evmtypes.IntraBlockState, config Config) *EVM {
	evm := &EVM{
		context:         blockCtx,
		txContext:       txCtx,
		intraBlockState: state,
		config:          config,
	}
	evm.interpreter = NewEVMInterpreter(evm, config)
	return evm
}

// Context returns the block context.
func (evm *EVM) Context() evmtypes.BlockContext {
	return evm.context
}

// TxContext returns the transaction context.
func (evm *EVM) TxContext() evmtypes.TxContext {
	return evm.txContext
}

// IntraBlockState returns the state accessor, possibly nil.
func (evm *EVM) IntraBlockState() evmtypes.IntraBlockState {
	return evm.intraBlockState
}

// Config returns the VM configuration.
func (evm *EVM) Config() Config {
	return evm.config
}

// EvalResult is the reified outcome of one evaluation. No error crosses
// the Evaluate boundary; every failure mode is a halt reason here.
type EvalResult struct {
	Success    bool
	HaltReason HaltReason

	// Stack is the final operand stack, top first.
	Stack []uint256.Int

	// ReturnData is populated by RETURN and REVERT.
	ReturnData []byte

	// StorageWrites holds the slots written by SSTORE during the
	// evaluation, when the state view tracks them.
	StorageWrites map[types.Hash]uint256.Int
}

// storageWriteTracker is optionally implemented by state views that record
// the slots an evaluation wrote.
type storageWriteTracker interface {
	StorageWrites(addr types.Address) map[types.Hash]uint256.Int
}

// Evaluate executes code in the context of msg.To and returns the final
// operand stack, return data and halt reason. It is deterministic:
// identical code and context produce identical results.
func (evm *EVM) Evaluate(code []byte, msg evmtypes.Message) *EvalResult {
	evaluationsTotal.Inc()

	contract := NewContract(AccountRef(msg.Caller), AccountRef(msg.To), msg.Value, evm.config.SkipAnalysis)
	codeHash := utils.Keccak256Hash(code)
	contract.SetCallCode(&msg.To, codeHash, code)

	ret, err := evm.interpreter.Run(contract, msg.Data)

	reason := haltReasonFor(err)
	result := &EvalResult{
		Success:    reason.Success(),
		HaltReason: reason,
		ReturnData: ret,
	}
	if !result.Success {
		evaluationsFailed.Inc()
	}

	// Reverse the remaining stack into top-first order.
	data := evm.interpreter.lastStack
	result.Stack = make([]uint256.Int, 0, len(data))
	for i := len(data) - 1; i >= 0; i-- {
		result.Stack = append(result.Stack, data[i])
	}

	if tracker, ok := evm.intraBlockState.(storageWriteTracker); ok && evm.intraBlockState != nil {
		if writes := tracker.StorageWrites(msg.To); len(writes) > 0 {
			result.StorageWrites = writes
		}
	}
	return result
}
