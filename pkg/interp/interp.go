/******************************************************************************\
* The Ember Language                                                          *
*                                                                              *
* Copyright 2024-2026 The Ember Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// Package interp wires the compiler and the VM together the way a REPL or a
// file runner needs them: one long-lived VM, one fresh Chunk per call.
package interp

import (
	"github.com/emberlang/ember/pkg/compiler"
	"github.com/emberlang/ember/pkg/errs"
	"github.com/emberlang/ember/pkg/romutil"
	"github.com/emberlang/ember/pkg/vm"
)

// Interp is a long-lived Ember interpreter: one VM (and therefore one heap,
// one interned-string set, one globals table) reused across every source
// snippet it is given. The REPL holds exactly one Interp for its lifetime; a
// single-file run also creates exactly one, runs it once, and discards it.
type Interp struct {
	vm *vm.VM
}

// New returns an Interp that sends program output to out.
func New(out romutil.Mouth) *Interp {
	return &Interp{vm: vm.New(out)}
}

// SetTrace enables or disables --trace execution logging on the underlying VM.
func (it *Interp) SetTrace(trace bool) {
	it.vm.SetTrace(trace)
}

// Run compiles source into a fresh Chunk and runs it to completion. The
// Chunk is owned entirely by this call and is not retained afterwards;
// everything it allocated on the heap (interned strings, in particular)
// outlives it, tracked by the VM's heap until the VM itself goes away.
func (it *Interp) Run(source string) errs.Error {
	chunk, err := compiler.Compile(source, it.vm.Heap())
	if err != nil {
		return err
	}
	return it.vm.Interpret(chunk)
}
