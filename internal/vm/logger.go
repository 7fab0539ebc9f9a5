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
	"encoding/hex"

	"github.com/holiman/uint256"

	"github.com/n42blockchain/evmcore/common/types"
	"github.com/n42blockchain/evmcore/log"
)

// EVMLogger is used to collect execution traces from an evaluation.
// CaptureState is called for each step of the VM before the opcode
// executes; the scope must not be retained past the call.
type EVMLogger interface {
	CaptureStart(evm *EVM, from, to types.Address, input []byte, value *uint256.Int)
	CaptureState(pc uint64, op OpCode, scope *ScopeContext, rData []byte, err error)
	CaptureEnd(output []byte, err error)
}

// StructLogger writes each step to the structured log at debug level.
// It is the tracer the CLI --trace flag installs.
type StructLogger struct {
	logger log.Logger
}

// NewStructLogger returns a StructLogger writing to the vm-scoped logger.
func NewStructLogger() *StructLogger {
	return &StructLogger{logger: log.New("module", "vm")}
}

func (l *StructLogger) CaptureStart(evm *EVM, from, to types.Address, input []byte, value *uint256.Int) {
	val := "0x0"
	if value != nil {
		val = value.Hex()
	}
	l.logger.Debug("evaluation start",
		"from", from.Hex(),
		"to", to.Hex(),
		"input", hex.EncodeToString(input),
		"value", val,
	)
}

func (l *StructLogger) CaptureState(pc uint64, op OpCode, scope *ScopeContext, rData []byte, err error) {
	l.logger.Debug("step",
		"pc", pc,
		"op", op.String(),
		"stack", scope.Stack.Len(),
		"mem", scope.Memory.Len(),
	)
}

func (l *StructLogger) CaptureEnd(output []byte, err error) {
	if err != nil {
		l.logger.Debug("evaluation end", "err", err, "output", hex.EncodeToString(output))
		return
	}
	l.logger.Debug("evaluation end", "output", hex.EncodeToString(output))
}
