/******************************************************************************\
* The Ember Language                                                          *
*                                                                              *
* Copyright 2024-2026 The Ember Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// Package vm implements Ember's stack-based bytecode interpreter: the value
// stack, the global-variable table, and the dispatch loop that runs a
// compiled Chunk.
package vm

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/emberlang/ember/pkg/bytecode"
	"github.com/emberlang/ember/pkg/errs"
	"github.com/emberlang/ember/pkg/object"
	"github.com/emberlang/ember/pkg/romutil"
	"github.com/emberlang/ember/pkg/table"
)

// VM is an Ember Virtual Machine. Create one with New and reuse it across
// every Interpret call for a REPL session or a single file run: the heap,
// the interned-string set and the globals table all outlive any individual
// Chunk, the way one VM outlives the many compiles it may run.
type VM struct {
	// DebugTraceExecution, when true, makes the VM log the stack and the
	// disassembled instruction before executing each one.
	DebugTraceExecution bool

	out  romutil.Mouth
	log  *logrus.Logger
	heap *object.Heap

	globals *table.Table[bytecode.Value]

	stack Stack
	chunk *bytecode.Chunk
	pc    int
}

// New returns a new VM that sends OP_PRINT output to out.
func New(out romutil.Mouth) *VM {
	return &VM{
		out:     out,
		log:     logrus.StandardLogger(),
		heap:    object.NewHeap(),
		globals: table.New[bytecode.Value](),
	}
}

// Heap returns the VM's object heap. Exposed so the compiler can intern
// string constants into the same heap this VM will later read them from.
func (vm *VM) Heap() *object.Heap {
	return vm.heap
}

// SetTrace turns --trace execution logging on or off. Besides flipping
// DebugTraceExecution, it raises the logger to Debug level, since
// traceStep's stack dump is logged at that level and logrus.StandardLogger
// defaults to Info.
func (vm *VM) SetTrace(trace bool) {
	vm.DebugTraceExecution = trace
	if trace {
		vm.log.SetLevel(logrus.DebugLevel)
	} else {
		vm.log.SetLevel(logrus.InfoLevel)
	}
}

// Interpret runs chunk to completion: either it reaches OP_RETURN (nil
// error), or it hits a runtime error (an *errs.Runtime). The Chunk itself is
// owned by the caller, who releases it after this returns; the VM's heap,
// interned strings and globals persist across calls.
func (vm *VM) Interpret(chunk *bytecode.Chunk) (err errs.Error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*errs.Runtime); ok {
				err = e
				return
			}
			panic(r)
		}
	}()

	vm.chunk = chunk
	vm.pc = 0

	r := vm.run()
	vm.out.Flush()
	return r
}

// run executes vm.chunk starting at vm.pc until OP_RETURN or a runtime error.
func (vm *VM) run() errs.Error {
	for {
		if vm.DebugTraceExecution {
			vm.traceStep()
		}

		op := bytecode.OpCode(vm.readByte())

		switch op {
		case bytecode.OpConstant:
			vm.push(vm.chunk.Constants[vm.readByteIndex()])

		case bytecode.OpConstantLong:
			vm.push(vm.chunk.Constants[vm.readUint24Index()])

		case bytecode.OpNone:
			vm.push(bytecode.None())

		case bytecode.OpTrue:
			vm.push(bytecode.Bool(true))

		case bytecode.OpFalse:
			vm.push(bytecode.Bool(false))

		case bytecode.OpNot:
			vm.push(bytecode.Bool(vm.pop().IsFalsey()))

		case bytecode.OpNegate:
			if !vm.peek(0).IsNum() {
				vm.runtimeError("Operand is not a number ")
				continue
			}
			vm.push(bytecode.Num(-vm.pop().AsNum()))

		case bytecode.OpAdd:
			if !vm.add() {
				continue
			}

		case bytecode.OpSub:
			if !vm.numericBinary(func(a, b float64) float64 { return a - b }) {
				continue
			}

		case bytecode.OpMul:
			if !vm.numericBinary(func(a, b float64) float64 { return a * b }) {
				continue
			}

		case bytecode.OpDiv:
			if !vm.numericBinary(func(a, b float64) float64 { return a / b }) {
				continue
			}

		case bytecode.OpEqual:
			b := vm.pop()
			a := vm.pop()
			vm.push(bytecode.Bool(bytecode.Equals(a, b)))

		case bytecode.OpGreaterThan:
			if !vm.comparisonBinary(func(a, b float64) bool { return a > b }) {
				continue
			}

		case bytecode.OpLessThan:
			if !vm.comparisonBinary(func(a, b float64) bool { return a < b }) {
				continue
			}

		case bytecode.OpPrint:
			vm.out.Say(vm.pop().String())
			vm.out.Say("\n")

		case bytecode.OpPop:
			vm.pop()

		case bytecode.OpDefineGlobal:
			vm.defineGlobal(vm.readByteIndex())

		case bytecode.OpDefineGlobalLong:
			vm.defineGlobal(vm.readUint24Index())

		case bytecode.OpGetGlobal:
			if !vm.getGlobal(vm.readByteIndex()) {
				continue
			}

		case bytecode.OpGetGlobalLong:
			if !vm.getGlobal(vm.readUint24Index()) {
				continue
			}

		case bytecode.OpSetGlobal:
			if !vm.setGlobal(vm.readByteIndex()) {
				continue
			}

		case bytecode.OpSetGlobalLong:
			if !vm.setGlobal(vm.readUint24Index()) {
				continue
			}

		case bytecode.OpReturn:
			return nil

		default:
			vm.runtimeError("Unexpected instruction: %v", op)
		}
	}
}

//
// Opcode helpers
//

func (vm *VM) add() bool {
	b := vm.peek(0)
	a := vm.peek(1)

	switch {
	case a.IsString() && b.IsString():
		vm.pop()
		vm.pop()
		result := vm.heap.Concat(a.AsString(), b.AsString())
		vm.push(bytecode.Obj(result))
		return true
	case a.IsNum() && b.IsNum():
		vm.pop()
		vm.pop()
		vm.push(bytecode.Num(a.AsNum() + b.AsNum()))
		return true
	default:
		vm.runtimeError("Operands are not both strings or both numbers")
		return false
	}
}

func (vm *VM) numericBinary(op func(a, b float64) float64) bool {
	if !vm.peek(0).IsNum() || !vm.peek(1).IsNum() {
		vm.runtimeError("Operands must be numbers")
		return false
	}
	b := vm.pop().AsNum()
	a := vm.pop().AsNum()
	vm.push(bytecode.Num(op(a, b)))
	return true
}

func (vm *VM) comparisonBinary(op func(a, b float64) bool) bool {
	if !vm.peek(0).IsNum() || !vm.peek(1).IsNum() {
		vm.runtimeError("Operands must be numbers")
		return false
	}
	b := vm.pop().AsNum()
	a := vm.pop().AsNum()
	vm.push(bytecode.Bool(op(a, b)))
	return true
}

func (vm *VM) defineGlobal(idx int) {
	name := vm.chunk.Constants[idx].AsString()
	vm.globals.Insert(name.Chars, vm.peek(0))
	vm.pop()
}

func (vm *VM) getGlobal(idx int) bool {
	name := vm.chunk.Constants[idx].AsString()
	value, ok := vm.globals.Get(name.Chars)
	if !ok {
		vm.runtimeError("This variable has not been defined '%s'", name.Chars)
		return false
	}
	vm.push(value)
	return true
}

func (vm *VM) setGlobal(idx int) bool {
	name := vm.chunk.Constants[idx].AsString()
	if vm.globals.Insert(name.Chars, vm.peek(0)) {
		// Insert reports a fresh insertion: the name didn't exist yet, so
		// this assignment was actually to an undefined variable. Roll it
		// back -- OP_SET_GLOBAL must not silently create globals.
		vm.globals.Delete(name.Chars)
		vm.runtimeError("Undefined variable name '%s'", name.Chars)
		return false
	}
	return true
}

//
// Bytecode reading
//

func (vm *VM) readByte() byte {
	b := vm.chunk.Code[vm.pc]
	vm.pc++
	return b
}

func (vm *VM) readByteIndex() int {
	return int(vm.readByte())
}

func (vm *VM) readUint24Index() int {
	idx := vm.chunk.ReadUint24(vm.pc)
	vm.pc += 3
	return idx
}

//
// Stack helpers
//

func (vm *VM) push(v bytecode.Value) {
	if vm.stack.full() {
		vm.runtimeError("Stack overflow")
		return
	}
	vm.stack.push(v)
}

func (vm *VM) pop() bytecode.Value {
	return vm.stack.pop()
}

func (vm *VM) peek(distance int) bytecode.Value {
	return vm.stack.peek(distance)
}

//
// Diagnostics
//

func (vm *VM) traceStep() {
	fields := logrus.Fields{}
	stackDesc := ""
	for _, v := range vm.stack.values() {
		stackDesc += fmt.Sprintf("[ %v ]", v)
	}
	fields["stack"] = stackDesc
	vm.log.WithFields(fields).Debug("trace")
	vm.chunk.DisassembleInstruction(os.Stdout, vm.pc)
}

// runtimeError reports a runtime error the way the dispatch loop's source
// design does: the message, then the source line, then a stack reset, then
// aborts execution via panic (recovered by Interpret).
func (vm *VM) runtimeError(format string, a ...any) {
	vm.out.Flush()
	line := vm.chunk.Lines.GetLine(vm.pc - 1)
	vm.stack.reset()
	panic(errs.NewRuntime(line, format, a...))
}
