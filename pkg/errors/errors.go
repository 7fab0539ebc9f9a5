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

// Package errors defines common error values shared across the module
// boundary. Errors internal to the VM loop live in internal/vm; the
// sentinels here are the ones the harness and embedders match on.
package errors

import "errors"

var (
	// ErrEmptyCode is returned when a fixture or caller supplies no
	// bytecode at all (a missing "code" object, not zero-length code).
	ErrEmptyCode = errors.New("no bytecode supplied")

	// ErrCodeTooLarge is returned when bytecode exceeds params.MaxCodeSize.
	ErrCodeTooLarge = errors.New("bytecode exceeds maximum code size")

	// ErrBadFixture is returned when a fixture file cannot be decoded.
	ErrBadFixture = errors.New("malformed fixture")

	// ErrExpectMismatch is returned by the harness when an evaluation
	// result does not match the fixture's expectation.
	ErrExpectMismatch = errors.New("fixture expectation mismatch")
)
