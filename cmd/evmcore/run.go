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

	"github.com/VictoriaMetrics/metrics"
	"github.com/urfave/cli/v2"

	"github.com/n42blockchain/evmcore/internal/fixture"
	"github.com/n42blockchain/evmcore/internal/vm"
	"github.com/n42blockchain/evmcore/log"
	cerrors "github.com/n42blockchain/evmcore/pkg/errors"
)

var (
	fixturesPassed = metrics.GetOrCreateCounter(`evmcore_fixtures_total{result="pass"}`)
	fixturesFailed = metrics.GetOrCreateCounter(`evmcore_fixtures_total{result="fail"}`)
)

var runCommand = &cli.Command{
	Name:      "run",
	Usage:     "run fixture files against the evaluator",
	ArgsUsage: "<fixture.json> [more.json ...]",
	Action:    runFixtures,
}

func runFixtures(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return fmt.Errorf("no fixture files given")
	}

	log.Init(DefaultConfig.DataDir, DefaultConfig.LoggerCfg)
	_ = DefaultConfig.EvmCfg.Validate()
	vm.InitAnalysisCache(DefaultConfig.EvmCfg.AnalysisCacheSize)

	var passed, failed int
	for _, path := range ctx.Args().Slice() {
		outcomes, err := fixture.RunAll(path, DefaultConfig.EvmCfg)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		for _, out := range outcomes {
			if out.Pass {
				passed++
				fixturesPassed.Inc()
			} else {
				failed++
				fixturesFailed.Inc()
				fmt.Printf("FAIL %s: %s\n", out.Name, out.Reason)
			}
		}
	}

	fmt.Printf("%d passed, %d failed\n", passed, failed)
	if failed > 0 {
		return cli.Exit(cerrors.ErrExpectMismatch.Error(), 1)
	}
	return nil
}
