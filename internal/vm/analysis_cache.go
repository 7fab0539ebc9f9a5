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
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/n42blockchain/evmcore/log"
)

// The jumpdest bitmaps are immutable once computed, so they can be safely
// shared between evaluations. The cache is keyed by code hash; Evaluate
// hashes every code it runs, so raw fixture bytecode is cached as well.
const defaultAnalysisCacheSize = 1024

var (
	analysisCacheOnce sync.Once
	analysisCache     *lru.Cache[[32]byte, bitvec]
)

// InitAnalysisCache sizes the shared analysis cache. Calling it after the
// cache was touched is a no-op; the first user wins.
func InitAnalysisCache(size int) {
	if size <= 0 {
		size = defaultAnalysisCacheSize
	}
	analysisCacheOnce.Do(func() {
		cache, err := lru.New[[32]byte, bitvec](size)
		if err != nil {
			log.Error("analysis cache init failed", "err", err)
			return
		}
		analysisCache = cache
	})
}

func lookupAnalysis(codeHash [32]byte) (bitvec, bool) {
	InitAnalysisCache(defaultAnalysisCacheSize)
	if analysisCache == nil {
		return nil, false
	}
	return analysisCache.Get(codeHash)
}

func storeAnalysis(codeHash [32]byte, analysis bitvec) {
	InitAnalysisCache(defaultAnalysisCacheSize)
	if analysisCache == nil {
		return
	}
	analysisCache.Add(codeHash, analysis)
}
