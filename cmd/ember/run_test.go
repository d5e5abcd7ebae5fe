/******************************************************************************\
* The Ember Language                                                          *
*                                                                              *
* Copyright 2024-2026 The Ember Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emberlang/ember/pkg/interp"
	"github.com/emberlang/ember/pkg/romutil"
)

func TestRunREPLLoopStopsOnlyAtEOF(t *testing.T) {
	// A blank line in the middle of the transcript must not end the
	// session -- only fatefulEar running out of inputs should.
	ear := romutil.NewFatefulEar([]string{
		`let a = 1;`,
		``,
		`print a;`,
	})
	mouth := &romutil.MemoryMouth{}
	it := interp.New(mouth)

	runREPLLoop(it, mouth, ear)

	out := ""
	for _, s := range mouth.Outputs {
		out += s
	}
	assert.Contains(t, out, "1\n", "the line after the blank one must still have run")
}

func TestRunREPLLoopBlankLineIsNoop(t *testing.T) {
	ear := romutil.NewFatefulEar([]string{``})
	mouth := &romutil.MemoryMouth{}
	it := interp.New(mouth)

	runREPLLoop(it, mouth, ear)

	for _, s := range mouth.Outputs {
		assert.NotContains(t, s, "Error", "a blank line must not be treated as a compile error")
	}
	// Errors go to stderr, not to the Mouth, so check the run result directly.
	assert.Nil(t, it.Run(""), "a blank line must not be treated as a compile error")
}
