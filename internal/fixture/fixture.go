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

// Package fixture decodes and runs JSON test fixtures against the
// evaluator. A fixture file is an array of cases, each carrying bytecode,
// an optional transaction/block/state context and the expected final
// stack.
package fixture

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/holiman/uint256"

	"github.com/n42blockchain/evmcore/common/types"
	"github.com/n42blockchain/evmcore/conf"
	"github.com/n42blockchain/evmcore/internal/vm"
	"github.com/n42blockchain/evmcore/internal/vm/evmtypes"
	"github.com/n42blockchain/evmcore/log"
	"github.com/n42blockchain/evmcore/modules/state"
	"github.com/n42blockchain/evmcore/params"
	cerrors "github.com/n42blockchain/evmcore/pkg/errors"
)

// Fixture is one test case of a fixture file.
type Fixture struct {
	Name  string       `json:"name"`
	Hint  string       `json:"hint"`
	Code  *CodeBlob    `json:"code"`
	Tx    *TxFields    `json:"tx"`
	Block *BlockFields `json:"block"`
	State StateFields  `json:"state"`

	Expect Expectation `json:"expect"`
}

// CodeBlob is the bytecode of a fixture, hex in "bin"; "asm" is carried
// by some fixture sets for readability and ignored here.
type CodeBlob struct {
	Bin string `json:"bin"`
	Asm string `json:"asm"`
}

// TxFields mirrors the transaction object; all fields optional.
type TxFields struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Origin   string `json:"origin"`
	GasPrice string `json:"gasprice"`
	Value    string `json:"value"`
	Data     string `json:"data"`
}

// BlockFields mirrors the block object; all fields optional.
type BlockFields struct {
	Coinbase   string `json:"coinbase"`
	Timestamp  string `json:"timestamp"`
	Number     string `json:"number"`
	Difficulty string `json:"difficulty"`
	GasLimit   string `json:"gaslimit"`
	ChainID    string `json:"chainid"`
	BaseFee    string `json:"basefee"`
}

// AccountFields is one world-state account: balance and code.
type AccountFields struct {
	Balance string    `json:"balance"`
	Code    *CodeBlob `json:"code"`
}

// StateFields maps lowercase 0x-prefixed addresses to accounts.
type StateFields map[string]AccountFields

// Expectation is the asserted outcome: stack top first, success flag and
// optionally the return data.
type Expectation struct {
	Stack   []string `json:"stack"`
	Success bool     `json:"success"`
	Return  string   `json:"return"`
}

// Outcome is the verdict of running one fixture.
type Outcome struct {
	Name   string
	Pass   bool
	Reason string
	Result *vm.EvalResult
}

// Load reads a fixture file. The file is either a JSON array of cases or
// a single case object.
func Load(path string) ([]Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Decode parses fixture JSON.
func Decode(data []byte) ([]Fixture, error) {
	var fixtures []Fixture
	if err := json.Unmarshal(data, &fixtures); err == nil {
		return fixtures, nil
	}
	var single Fixture
	if err := json.Unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("%w: %s", cerrors.ErrBadFixture, err)
	}
	return []Fixture{single}, nil
}

// parseWord parses a hex (0x-prefixed) or decimal numeric string.
// Fixture writers are sloppy about leading zeros, so those are trimmed
// before the canonical hex parse.
func parseWord(s string) (*uint256.Int, error) {
	v := new(uint256.Int)
	if s == "" {
		return v, nil
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		digits := strings.TrimLeft(strings.ToLower(s[2:]), "0")
		if digits == "" {
			digits = "0"
		}
		if err := v.SetFromHex("0x" + digits); err != nil {
			return nil, err
		}
		return v, nil
	}
	if err := v.SetFromDecimal(s); err != nil {
		return nil, err
	}
	return v, nil
}

// buildContext assembles the VM context and state view of one fixture.
func buildContext(f *Fixture) (evmtypes.BlockContext, evmtypes.TxContext, evmtypes.Message, *state.IntraBlockState, error) {
	var (
		blockCtx evmtypes.BlockContext
		txCtx    evmtypes.TxContext
		msg      evmtypes.Message
	)

	msg.Value = new(uint256.Int)
	if f.Tx != nil {
		var err error
		if msg.Caller, err = types.ParseAddress(f.Tx.From); err != nil {
			return blockCtx, txCtx, msg, nil, fmt.Errorf("tx.from: %w", err)
		}
		if msg.To, err = types.ParseAddress(f.Tx.To); err != nil {
			return blockCtx, txCtx, msg, nil, fmt.Errorf("tx.to: %w", err)
		}
		if txCtx.Origin, err = types.ParseAddress(f.Tx.Origin); err != nil {
			return blockCtx, txCtx, msg, nil, fmt.Errorf("tx.origin: %w", err)
		}
		if txCtx.GasPrice, err = parseWord(f.Tx.GasPrice); err != nil {
			return blockCtx, txCtx, msg, nil, fmt.Errorf("tx.gasprice: %w", err)
		}
		if msg.Value, err = parseWord(f.Tx.Value); err != nil {
			return blockCtx, txCtx, msg, nil, fmt.Errorf("tx.value: %w", err)
		}
		if msg.Data, err = types.FromHex(f.Tx.Data); err != nil {
			return blockCtx, txCtx, msg, nil, fmt.Errorf("tx.data: %w", err)
		}
	}

	if f.Block != nil {
		var err error
		if blockCtx.Coinbase, err = types.ParseAddress(f.Block.Coinbase); err != nil {
			return blockCtx, txCtx, msg, nil, fmt.Errorf("block.coinbase: %w", err)
		}
		fields := []struct {
			raw  string
			name string
			dst  **uint256.Int
		}{
			{f.Block.Difficulty, "block.difficulty", &blockCtx.Difficulty},
			{f.Block.ChainID, "block.chainid", &blockCtx.ChainID},
			{f.Block.BaseFee, "block.basefee", &blockCtx.BaseFee},
		}
		for _, fld := range fields {
			if fld.raw == "" {
				continue
			}
			v, err := parseWord(fld.raw)
			if err != nil {
				return blockCtx, txCtx, msg, nil, fmt.Errorf("%s: %w", fld.name, err)
			}
			*fld.dst = v
		}
		scalars := []struct {
			raw  string
			name string
			dst  *uint64
		}{
			{f.Block.Timestamp, "block.timestamp", &blockCtx.Time},
			{f.Block.Number, "block.number", &blockCtx.BlockNumber},
			{f.Block.GasLimit, "block.gaslimit", &blockCtx.GasLimit},
		}
		for _, fld := range scalars {
			if fld.raw == "" {
				continue
			}
			v, err := parseWord(fld.raw)
			if err != nil {
				return blockCtx, txCtx, msg, nil, fmt.Errorf("%s: %w", fld.name, err)
			}
			*fld.dst = v.Uint64()
		}
	}

	ibs := state.New()
	for addr, acc := range f.State {
		a, err := types.ParseAddress(addr)
		if err != nil {
			return blockCtx, txCtx, msg, nil, fmt.Errorf("state address %q: %w", addr, err)
		}
		ibs.CreateAccount(a)
		if acc.Balance != "" {
			bal, err := parseWord(acc.Balance)
			if err != nil {
				return blockCtx, txCtx, msg, nil, fmt.Errorf("state %s balance: %w", addr, err)
			}
			ibs.SetBalance(a, bal)
		}
		if acc.Code != nil && acc.Code.Bin != "" {
			code, err := types.FromHex(acc.Code.Bin)
			if err != nil {
				return blockCtx, txCtx, msg, nil, fmt.Errorf("state %s code: %w", addr, err)
			}
			ibs.SetCode(a, code)
		}
	}

	return blockCtx, txCtx, msg, ibs, nil
}

// Run evaluates one fixture and checks the expectation.
func Run(f *Fixture, evmCfg conf.EvmConfig) Outcome {
	out := Outcome{Name: f.Name}

	if f.Code == nil {
		out.Reason = cerrors.ErrEmptyCode.Error()
		return out
	}
	code, err := types.FromHex(f.Code.Bin)
	if err != nil {
		out.Reason = fmt.Sprintf("code.bin: %v", err)
		return out
	}
	if len(code) > params.MaxCodeSize {
		out.Reason = cerrors.ErrCodeTooLarge.Error()
		return out
	}

	blockCtx, txCtx, msg, ibs, err := buildContext(f)
	if err != nil {
		out.Reason = err.Error()
		return out
	}

	cfg := vm.Config{StepLimit: evmCfg.StepLimit}
	if evmCfg.Trace {
		cfg.Debug = true
		cfg.Tracer = vm.NewStructLogger()
	}

	evm := vm.NewEVM(blockCtx, txCtx, ibs, cfg)
	result := evm.Evaluate(code, msg)
	out.Result = result

	if reason, ok := check(f, result); !ok {
		out.Reason = reason
		return out
	}
	out.Pass = true
	return out
}

// check compares an evaluation result against the fixture expectation.
func check(f *Fixture, result *vm.EvalResult) (string, bool) {
	if result.Success != f.Expect.Success {
		return fmt.Sprintf("success = %v, want %v (halt %s)", result.Success, f.Expect.Success, result.HaltReason), false
	}
	if len(result.Stack) != len(f.Expect.Stack) {
		return fmt.Sprintf("stack depth = %d, want %d", len(result.Stack), len(f.Expect.Stack)), false
	}
	for i, want := range f.Expect.Stack {
		w, err := parseWord(want)
		if err != nil {
			return fmt.Sprintf("expect.stack[%d]: %v", i, err), false
		}
		if result.Stack[i].Cmp(w) != 0 {
			return fmt.Sprintf("stack[%d] = %s, want %s", i, result.Stack[i].Hex(), w.Hex()), false
		}
	}
	if f.Expect.Return != "" {
		want, err := types.FromHex(f.Expect.Return)
		if err != nil {
			return fmt.Sprintf("expect.return: %v", err), false
		}
		got := result.ReturnData
		if len(got) != len(want) || (len(want) > 0 && string(got) != string(want)) {
			return fmt.Sprintf("return = %x, want %x", got, want), false
		}
	}
	return "", true
}

// RunAll runs every fixture in a file and reports per-case outcomes.
// Failures are logged together with a dump of the actual result.
func RunAll(path string, evmCfg conf.EvmConfig) ([]Outcome, error) {
	fixtures, err := Load(path)
	if err != nil {
		return nil, err
	}

	outcomes := make([]Outcome, 0, len(fixtures))
	for i := range fixtures {
		f := &fixtures[i]
		out := Run(f, evmCfg)
		if out.Pass {
			log.Debug("fixture passed", "name", f.Name)
		} else {
			log.Error("fixture failed", "name", f.Name, "reason", out.Reason, "hint", f.Hint)
			if out.Result != nil {
				log.Debugf("result dump:\n%s", spew.Sdump(out.Result))
			}
		}
		outcomes = append(outcomes, out)
	}
	return outcomes, nil
}
