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

// LoggerConfig controls log output and rotation.
//
// Rotation policy: a file is split once it exceeds MaxSize MB; files beyond
// MaxBackups or older than MaxAge days are removed; Compress gzips rotated
// files.
type LoggerConfig struct {
	// LogFile is the log file name. Empty means console-only output.
	// The name is joined onto DataDir/log/, so the file is always placed there.
	LogFile string `json:"name" yaml:"name"`

	// Level is one of: trace, debug, info, warn, error, fatal.
	Level string `json:"level" yaml:"level"`

	// MaxSize is the maximum size of a single log file in MB.
	MaxSize int `json:"max_size" yaml:"max_size"`

	// MaxBackups is the number of rotated files to keep. 0 keeps all
	// (still subject to MaxAge).
	MaxBackups int `json:"max_count" yaml:"max_count"`

	// MaxAge is the number of days to retain rotated files. 0 disables
	// age-based deletion.
	MaxAge int `json:"max_day" yaml:"max_day"`

	// Compress gzips rotated files.
	Compress bool `json:"compress" yaml:"compress"`

	// LocalTime names rotated files with local time instead of UTC.
	LocalTime bool `json:"local_time" yaml:"local_time"`

	// Console keeps console output even when LogFile is set.
	Console bool `json:"console" yaml:"console"`

	// JSONFormat uses JSON for file output. When LogFile and Console are both
	// set, console output uses the same format as the file; console-only
	// output is always textual.
	JSONFormat bool `json:"json_format" yaml:"json_format"`
}

// DefaultLoggerConfig returns the default logger configuration.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		LogFile:    "",
		Level:      "info",
		MaxSize:    100,
		MaxBackups: 10,
		MaxAge:     30,
		Compress:   true,
		LocalTime:  true,
		Console:    true,
		JSONFormat: true,
	}
}

// Validate normalizes out-of-range values in place.
func (c *LoggerConfig) Validate() error {
	if c.MaxSize <= 0 {
		c.MaxSize = 100
	}
	if c.MaxBackups < 0 {
		c.MaxBackups = 10
	}
	if c.MaxAge < 0 {
		c.MaxAge = 30
	}
	return nil
}
