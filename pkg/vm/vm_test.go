/******************************************************************************\
* The Ember Language                                                          *
*                                                                              *
* Copyright 2024-2026 The Ember Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberlang/ember/pkg/bytecode"
	"github.com/emberlang/ember/pkg/compiler"
	"github.com/emberlang/ember/pkg/romutil"
)

func run(t *testing.T, source string) (string, error) {
	t.Helper()
	mouth := &romutil.MemoryMouth{}
	theVM := New(mouth)
	chunk, cerr := compiler.Compile(source, theVM.Heap())
	require.Nil(t, cerr)

	err := theVM.Interpret(chunk)
	out := ""
	for _, s := range mouth.Outputs {
		out += s
	}
	if err != nil {
		return out, err
	}
	return out, nil
}

func TestVMArithmetic(t *testing.T) {
	out, err := run(t, `print 1 + 2 * 3;`)
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)
}

func TestVMStringConcat(t *testing.T) {
	out, err := run(t, `print "foo" + "bar";`)
	require.NoError(t, err)
	assert.Equal(t, "foobar\n", out)
}

func TestVMComparisons(t *testing.T) {
	out, err := run(t, `print 1 < 2; print 2 <= 2; print 3 > 4; print 3 >= 3; print 1 == 1; print 1 != 2;`)
	require.NoError(t, err)
	assert.Equal(t, "true\ntrue\nfalse\ntrue\ntrue\ntrue\n", out)
}

func TestVMGlobals(t *testing.T) {
	out, err := run(t, `let a = 1; let b = 2; a = a + b; print a;`)
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestVMUndefinedGlobalRead(t *testing.T) {
	_, err := run(t, `print nope;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has not been defined")
}

func TestVMUndefinedGlobalAssign(t *testing.T) {
	_, err := run(t, `nope = 1;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined variable name")
}

func TestVMTypeMismatch(t *testing.T) {
	_, err := run(t, `print 1 + "x";`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Operands are not both strings or both numbers")
}

func TestVMStackOverflow(t *testing.T) {
	c := bytecode.NewChunk()
	for i := 0; i <= stackMax; i++ {
		c.WriteConstant(bytecode.Num(1), 1)
	}
	c.Write(byte(bytecode.OpReturn), 1)

	mouth := &romutil.MemoryMouth{}
	theVM := New(mouth)
	err := theVM.Interpret(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Stack overflow")
}
