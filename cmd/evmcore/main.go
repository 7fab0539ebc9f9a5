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
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/n42blockchain/evmcore/params"
)

const banner = `
 ███████╗██╗   ██╗███╗   ███╗ ██████╗ ██████╗ ██████╗ ███████╗
 ██╔════╝██║   ██║████╗ ████║██╔════╝██╔═══██╗██╔══██╗██╔════╝
 █████╗  ██║   ██║██╔████╔██║██║     ██║   ██║██████╔╝█████╗
 ██╔══╝  ╚██╗ ██╔╝██║╚██╔╝██║██║     ██║   ██║██╔══██╗██╔══╝
 ███████╗ ╚████╔╝ ██║ ╚═╝ ██║╚██████╗╚██████╔╝██║  ██║███████╗
 ╚══════╝  ╚═══╝  ╚═╝     ╚═╝ ╚═════╝ ╚═════╝ ╚═╝  ╚═╝╚══════╝
`

const usageText = `evmcore [options] run <fixture.json> [more.json ...]

Quick start:
  evmcore run tests.json            run a fixture file
  evmcore --trace run tests.json    trace every executed opcode
  evmcore --step.limit 1000000 run tests.json
                                    bound runaway loops

Exit code is 0 when every fixture matches its expectation.`

func main() {
	fmt.Print(banner)
	app := &cli.App{
		Name:      "evmcore",
		Usage:     "standalone EVM bytecode evaluator",
		UsageText: usageText,
		Version:   params.VersionWithCommit(),
		Flags:     rootFlags,
		Commands: []*cli.Command{
			runCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
