/******************************************************************************\
* The Ember Language                                                          *
*                                                                              *
* Copyright 2024-2026 The Ember Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package vm

import "github.com/emberlang/ember/pkg/bytecode"

// stackMax is the VM's fixed stack capacity. Pushing a 257th value is a
// runtime error rather than the undefined behavior the source design leaves
// it as.
const stackMax = 256

// Stack implements the VM's runtime value stack: a fixed-capacity array of
// bytecode.Values, indexed from the bottom by a running top-of-stack count.
type Stack struct {
	data [stackMax]bytecode.Value
	top  int
}

// size returns the number of elements currently on the stack.
func (s *Stack) size() int {
	return s.top
}

// full reports whether the stack has no room for another push.
func (s *Stack) full() bool {
	return s.top == stackMax
}

// push pushes v onto the stack. Callers must check full() first; push panics
// on overflow rather than silently growing, since overflow always indicates
// either a VM bug or we'd be going beyond the spec's fixed capacity.
func (s *Stack) push(v bytecode.Value) {
	s.data[s.top] = v
	s.top++
}

// pop pops and returns the top value. Panics on underflow.
func (s *Stack) pop() bytecode.Value {
	s.top--
	return s.data[s.top]
}

// peek returns the value distance slots below the top, without popping
// anything. peek(0) is the same as what pop() would return.
func (s *Stack) peek(distance int) bytecode.Value {
	return s.data[s.top-1-distance]
}

// reset empties the stack. Used by the VM's runtime-error path.
func (s *Stack) reset() {
	s.top = 0
}

// values returns every value currently on the stack, bottom first. Used only
// for --trace diagnostics.
func (s *Stack) values() []bytecode.Value {
	return s.data[:s.top]
}
