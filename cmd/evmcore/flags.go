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

package main

import (
	"github.com/urfave/cli/v2"

	"github.com/n42blockchain/evmcore/conf"
)

// DefaultConfig carries the flag destinations; flags write straight into
// the conf structs.
var DefaultConfig = struct {
	DataDir   string
	LoggerCfg conf.LoggerConfig
	EvmCfg    conf.EvmConfig
}{
	DataDir:   "./evmcore-data",
	LoggerCfg: conf.DefaultLoggerConfig(),
	EvmCfg:    conf.DefaultEvmConfig(),
}

var rootFlags = []cli.Flag{
	&cli.StringFlag{
		Name:        "data.dir",
		Usage:       "base directory for log output",
		Category:    "NODE",
		Value:       DefaultConfig.DataDir,
		Destination: &DefaultConfig.DataDir,
	},

	&cli.StringFlag{
		Name:        "log.level",
		Usage:       "log level: trace, debug, info, warn, error",
		Category:    "LOGGING",
		Value:       DefaultConfig.LoggerCfg.Level,
		Destination: &DefaultConfig.LoggerCfg.Level,
	},

	&cli.StringFlag{
		Name:        "log.file",
		Usage:       "log file name; empty logs to console only",
		Category:    "LOGGING",
		Value:       "",
		Destination: &DefaultConfig.LoggerCfg.LogFile,
	},

	&cli.BoolFlag{
		Name:        "trace",
		Usage:       "trace every executed opcode (debug level)",
		Category:    "EVM",
		Value:       false,
		Destination: &DefaultConfig.EvmCfg.Trace,
	},

	&cli.Uint64Flag{
		Name:        "step.limit",
		Usage:       "abort an evaluation after this many instructions (0 = unbounded)",
		Category:    "EVM",
		Value:       0,
		Destination: &DefaultConfig.EvmCfg.StepLimit,
	},

	&cli.IntFlag{
		Name:        "analysis.cache",
		Usage:       "number of jumpdest bitmaps kept in the shared cache",
		Category:    "EVM",
		Value:       DefaultConfig.EvmCfg.AnalysisCacheSize,
		Destination: &DefaultConfig.EvmCfg.AnalysisCacheSize,
	},
}
