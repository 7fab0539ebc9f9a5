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

package conf

// EvmConfig carries the evaluator knobs exposed by the CLI and embedders.
type EvmConfig struct {
	// StepLimit bounds the number of executed instructions per evaluation.
	// 0 means unbounded; exceeding the bound halts with OutOfSteps.
	StepLimit uint64 `json:"step_limit" yaml:"step_limit"`

	// Trace enables per-step tracing through the configured EVMLogger.
	Trace bool `json:"trace" yaml:"trace"`

	// AnalysisCacheSize is the number of jumpdest bitmaps kept in the
	// shared LRU, keyed by code hash.
	AnalysisCacheSize int `json:"analysis_cache_size" yaml:"analysis_cache_size"`
}

// DefaultEvmConfig returns the default evaluator configuration.
func DefaultEvmConfig() EvmConfig {
	return EvmConfig{
		StepLimit:         0,
		Trace:             false,
		AnalysisCacheSize: 1024,
	}
}

// Validate normalizes out-of-range values in place.
func (c *EvmConfig) Validate() error {
	if c.AnalysisCacheSize <= 0 {
		c.AnalysisCacheSize = 1024
	}
	return nil
}
