// Copyright 2022-2026 The N42 Authors
// This file is part of the evmcore library.

package conf

import "testing"

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig()
	if cfg.Level != "info" {
		t.Errorf("default level = %q, want info", cfg.Level)
	}
	if cfg.MaxSize != 100 || cfg.MaxBackups != 10 || cfg.MaxAge != 30 {
		t.Error("default rotation parameters are wrong")
	}
	if !cfg.Console {
		t.Error("console output should default to on")
	}
	t.Logf("✓ Default logger config is correct")
}

func TestLoggerConfigValidate(t *testing.T) {
	cfg := LoggerConfig{MaxSize: -1, MaxBackups: -5, MaxAge: -2}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if cfg.MaxSize <= 0 || cfg.MaxBackups < 0 || cfg.MaxAge < 0 {
		t.Errorf("Validate did not normalize: %+v", cfg)
	}
	t.Logf("✓ LoggerConfig.Validate normalizes bad values")
}

func TestDefaultEvmConfig(t *testing.T) {
	cfg := DefaultEvmConfig()
	if cfg.StepLimit != 0 {
		t.Error("default step limit should be unbounded")
	}
	if cfg.Trace {
		t.Error("tracing should default to off")
	}
	if cfg.AnalysisCacheSize <= 0 {
		t.Error("analysis cache size should default to a positive value")
	}

	bad := EvmConfig{AnalysisCacheSize: -1}
	_ = bad.Validate()
	if bad.AnalysisCacheSize <= 0 {
		t.Error("Validate should normalize the cache size")
	}

	t.Logf("✓ EvmConfig defaults and validation are correct")
}
