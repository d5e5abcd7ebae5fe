/******************************************************************************\
* The Ember Language                                                          *
*                                                                              *
* Copyright 2024-2026 The Ember Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package compiler

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberlang/ember/pkg/bytecode"
	"github.com/emberlang/ember/pkg/object"
)

func TestCompileSimplePrint(t *testing.T) {
	chunk, err := Compile(`print 1 + 2;`, object.NewHeap())
	require.Nil(t, err)
	require.NotNil(t, chunk)

	assert.Equal(t, []byte{
		byte(bytecode.OpConstant), 0,
		byte(bytecode.OpConstant), 1,
		byte(bytecode.OpAdd),
		byte(bytecode.OpPrint),
		byte(bytecode.OpReturn),
	}, chunk.Code)
}

func TestCompileNotEqualDesugarsToEqualNot(t *testing.T) {
	chunk, err := Compile(`print 1 != 2;`, object.NewHeap())
	require.Nil(t, err)

	assert.Equal(t, []byte{
		byte(bytecode.OpConstant), 0,
		byte(bytecode.OpConstant), 1,
		byte(bytecode.OpEqual),
		byte(bytecode.OpNot),
		byte(bytecode.OpPrint),
		byte(bytecode.OpReturn),
	}, chunk.Code)
}

func TestCompileLessEqualDesugarsToGreaterNot(t *testing.T) {
	chunk, err := Compile(`print 1 <= 2;`, object.NewHeap())
	require.Nil(t, err)

	assert.Equal(t, []byte{
		byte(bytecode.OpConstant), 0,
		byte(bytecode.OpConstant), 1,
		byte(bytecode.OpGreaterThan),
		byte(bytecode.OpNot),
		byte(bytecode.OpPrint),
		byte(bytecode.OpReturn),
	}, chunk.Code)
}

func TestCompileAssignmentEmitsSetGlobal(t *testing.T) {
	chunk, err := Compile(`let a = 1; a = 2;`, object.NewHeap())
	require.Nil(t, err)

	assert.True(t, bytes.Contains(chunk.Code, []byte{byte(bytecode.OpSetGlobal)}))
}

func TestCompileInvalidAssignmentTarget(t *testing.T) {
	_, err := Compile(`1 = 2;`, object.NewHeap())
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "Invalid assignment target")
}

func TestCompileErrorRecoverySkipsToNextStatement(t *testing.T) {
	// The missing ';' after the first statement triggers an error; synchronize
	// then skips ahead past the next ';' (it does not stop at 'let'), so a
	// single diagnostic is reported rather than cascading failures for every
	// remaining token.
	_, err := Compile(`let a = 1 let b = 2;`, object.NewHeap())
	require.NotNil(t, err)
	assert.NotContains(t, err.Error(), "\n", "only one diagnostic should be reported")
}

func TestCompileUndeclaredSyntaxError(t *testing.T) {
	_, err := Compile(`let = 1;`, object.NewHeap())
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "Expected variable name")
}
