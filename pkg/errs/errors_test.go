/******************************************************************************\
* The Ember Language                                                          *
*                                                                              *
* Copyright 2024-2026 The Ember Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package errs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompileTimeErrorFormatting(t *testing.T) {
	atEnd := NewCompileTime(3, "", true, "Expected ';'")
	assert.Equal(t, "[line 3] Error at end: Expected ';'", atEnd.Error())
	assert.Equal(t, StatusCodeCompileTimeError, atEnd.ExitCode())

	atLexeme := NewCompileTime(5, "foo", false, "Unexpected token")
	assert.Equal(t, "[line 5] Error at 'foo': Unexpected token", atLexeme.Error())

	bare := NewCompileTime(1, "", false, "Something broke")
	assert.Equal(t, "[line 1] Error: Something broke", bare.Error())
}

func TestCompileTimeCollectionJoinsWithNewlines(t *testing.T) {
	var coll CompileTimeCollection
	assert.True(t, coll.IsEmpty())

	coll.Add(NewCompileTime(1, "a", false, "first"))
	coll.Add(NewCompileTime(2, "b", false, "second"))
	assert.False(t, coll.IsEmpty())
	assert.Equal(t, "[line 1] Error at 'a': first\n[line 2] Error at 'b': second", coll.Error())
	assert.Equal(t, StatusCodeCompileTimeError, coll.ExitCode())
}

func TestCompileTimeCollectionAddNilIsNoOp(t *testing.T) {
	var coll CompileTimeCollection
	coll.Add(nil)
	assert.True(t, coll.IsEmpty())
}

func TestRuntimeErrorIncludesLineWhenKnown(t *testing.T) {
	withLine := NewRuntime(7, "bad thing happened")
	assert.Equal(t, "bad thing happened\n[line 7] in program", withLine.Error())
	assert.Equal(t, StatusCodeRuntimeError, withLine.ExitCode())

	noLine := NewRuntime(0, "bad thing happened")
	assert.Equal(t, "bad thing happened", noLine.Error())
}

func TestBadUsageAndFileIOAndICE(t *testing.T) {
	bu := NewBadUsage("Error: no path specified")
	assert.Equal(t, "Error: no path specified", bu.Error())
	assert.Equal(t, StatusCodeBadUsage, bu.ExitCode())

	fio := NewFileIO("could not read %v", "x.ember")
	assert.Equal(t, "could not read x.ember", fio.Error())
	assert.Equal(t, StatusCodeFileIO, fio.ExitCode())

	ice := NewICE("unreachable state")
	assert.Equal(t, "Internal error: unreachable state", ice.Error())
	assert.Equal(t, StatusCodeICE, ice.ExitCode())
}

func TestTestSuiteErrorFormatting(t *testing.T) {
	ts := NewTestSuite("testdata/suite/hello", "stdout mismatch")
	assert.Equal(t, "testdata/suite/hello: stdout mismatch", ts.Error())
	assert.Equal(t, StatusCodeICE, ts.ExitCode())
}
