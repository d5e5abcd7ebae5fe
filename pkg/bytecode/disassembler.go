/******************************************************************************\
* The Ember Language                                                          *
*                                                                              *
* Copyright 2024-2026 The Ember Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                *
\******************************************************************************/

package bytecode

import (
	"fmt"
	"io"
)

// Disassemble writes a textual disassembly of every instruction in c to out,
// preceded by a name header. It is a diagnostic tool only: nothing in the
// compiler or VM depends on it.
func (c *Chunk) Disassemble(out io.Writer, name string) {
	fmt.Fprintf(out, "== %s ==\n", name)
	for offset := 0; offset < len(c.Code); {
		offset = c.DisassembleInstruction(out, offset)
	}
}

// DisassembleInstruction disassembles the instruction at offset, writes it to
// out, and returns the offset of the next instruction.
func (c *Chunk) DisassembleInstruction(out io.Writer, offset int) int {
	fmt.Fprintf(out, "%04d ", offset)

	line := c.Lines.GetLine(offset)
	if offset > 0 && line == c.Lines.GetLine(offset-1) {
		fmt.Fprint(out, "   | ")
	} else {
		fmt.Fprintf(out, "%4d ", line)
	}

	op := OpCode(c.Code[offset])
	switch op {
	case OpConstant, OpDefineGlobal, OpGetGlobal, OpSetGlobal:
		return c.disassembleConstant(out, op, offset, false)
	case OpConstantLong, OpDefineGlobalLong, OpGetGlobalLong, OpSetGlobalLong:
		return c.disassembleConstant(out, op, offset, true)
	case OpNone, OpTrue, OpFalse, OpNot, OpNegate, OpAdd, OpSub, OpMul, OpDiv,
		OpEqual, OpGreaterThan, OpLessThan, OpPrint, OpPop, OpReturn:
		return c.disassembleSimple(out, op, offset)
	default:
		fmt.Fprintf(out, "Unknown opcode %d\n", op)
		return offset + 1
	}
}

func (c *Chunk) disassembleSimple(out io.Writer, op OpCode, offset int) int {
	fmt.Fprintf(out, "%s\n", op)
	return offset + 1
}

func (c *Chunk) disassembleConstant(out io.Writer, op OpCode, offset int, long bool) int {
	if long {
		idx := c.ReadUint24(offset + 1)
		fmt.Fprintf(out, "%-22s %4d '%v'\n", op, idx, c.Constants[idx])
		return offset + 4
	}
	idx := int(c.Code[offset+1])
	fmt.Fprintf(out, "%-22s %4d '%v'\n", op, idx, c.Constants[idx])
	return offset + 2
}
