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

// Package stack provides the EVM operand stack: a bounded LIFO of 256-bit
// words with the top at the end of the backing slice. Depth checks are the
// dispatch loop's job; the methods here assume they already passed.
package stack

import (
	"fmt"
	"strings"
	"sync"

	"github.com/holiman/uint256"
)

var stackPool = sync.Pool{
	New: func() interface{} {
		return &Stack{data: make([]uint256.Int, 0, 16)}
	},
}

// Stack is an object for basic stack operations. Items popped to the stack
// are expected not to be changed and modified.
type Stack struct {
	data []uint256.Int
}

// New returns a stack from the shared pool. Return it with
// ReturnNormalStack when the evaluation is done.
func New() *Stack {
	return stackPool.Get().(*Stack)
}

// ReturnNormalStack resets s and puts it back into the pool.
func ReturnNormalStack(s *Stack) {
	s.data = s.data[:0]
	stackPool.Put(s)
}

// Data returns the underlying slice, bottom first.
func (st *Stack) Data() []uint256.Int {
	return st.data
}

// Push places d on top of the stack.
func (st *Stack) Push(d *uint256.Int) {
	// NOTE push limit (1024) is checked by the interpreter loop before the handler runs
	st.data = append(st.data, *d)
}

// PushN places a batch of words on the stack, last argument topmost.
func (st *Stack) PushN(ds ...uint256.Int) {
	// FIXME: Is there a way to pass args by pointers.
	st.data = append(st.data, ds...)
}

// Pop removes and returns the top element.
func (st *Stack) Pop() (ret uint256.Int) {
	ret = st.data[len(st.data)-1]
	st.data = st.data[:len(st.data)-1]
	return
}

// Cap returns the capacity of the backing slice.
func (st *Stack) Cap() int {
	return cap(st.data)
}

// Swap exchanges the top of the stack with the n'th element from the top,
// counting the top as the first (Swap(2) swaps the top two).
func (st *Stack) Swap(n int) {
	st.data[st.Len()-n], st.data[st.Len()-1] = st.data[st.Len()-1], st.data[st.Len()-n]
}

// Dup duplicates the n'th element from the top onto the top.
func (st *Stack) Dup(n int) {
	st.data = append(st.data, st.data[st.Len()-n])
}

// Peek returns the top element without removing it.
func (st *Stack) Peek() *uint256.Int {
	return &st.data[st.Len()-1]
}

// Back returns the n'th item in stack counted from the top.
func (st *Stack) Back(n int) *uint256.Int {
	return &st.data[st.Len()-n-1]
}

// Reset empties the stack, keeping the backing slice.
func (st *Stack) Reset() {
	st.data = st.data[:0]
}

// Len returns the number of elements.
func (st *Stack) Len() int {
	return len(st.data)
}

// Print dumps the stack content for debugging, bottom first.
func (st *Stack) Print() string {
	var sb strings.Builder
	sb.WriteString("### stack ###\n")
	if len(st.data) > 0 {
		for i, val := range st.data {
			fmt.Fprintf(&sb, "%-3d  %s\n", i, val.Hex())
		}
	} else {
		sb.WriteString("-- empty --\n")
	}
	sb.WriteString("#############")
	return sb.String()
}
