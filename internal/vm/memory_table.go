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
	"github.com/n42blockchain/evmcore/internal/vm/stack"
)

func memoryKeccak256(st *stack.Stack) (uint64, bool) {
	return calcMemSize64(st.Back(0), st.Back(1))
}

func memoryCallDataCopy(st *stack.Stack) (uint64, bool) {
	return calcMemSize64(st.Back(0), st.Back(2))
}

func memoryReturnDataCopy(st *stack.Stack) (uint64, bool) {
	return calcMemSize64(st.Back(0), st.Back(2))
}

func memoryCodeCopy(st *stack.Stack) (uint64, bool) {
	return calcMemSize64(st.Back(0), st.Back(2))
}

func memoryExtCodeCopy(st *stack.Stack) (uint64, bool) {
	return calcMemSize64(st.Back(1), st.Back(3))
}

func memoryMLoad(st *stack.Stack) (uint64, bool) {
	return calcMemSize64WithUint(st.Back(0), 32)
}

func memoryMStore8(st *stack.Stack) (uint64, bool) {
	return calcMemSize64WithUint(st.Back(0), 1)
}

func memoryMStore(st *stack.Stack) (uint64, bool) {
	return calcMemSize64WithUint(st.Back(0), 32)
}

func memoryLog(st *stack.Stack) (uint64, bool) {
	return calcMemSize64(st.Back(0), st.Back(1))
}

func memoryReturn(st *stack.Stack) (uint64, bool) {
	return calcMemSize64(st.Back(0), st.Back(1))
}

func memoryRevert(st *stack.Stack) (uint64, bool) {
	return calcMemSize64(st.Back(0), st.Back(1))
}
