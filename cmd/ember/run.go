/******************************************************************************\
* The Ember Language                                                          *
*                                                                              *
* Copyright 2024-2026 The Ember Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/emberlang/ember/pkg/compiler"
	"github.com/emberlang/ember/pkg/errs"
	"github.com/emberlang/ember/pkg/interp"
	"github.com/emberlang/ember/pkg/object"
	"github.com/emberlang/ember/pkg/romutil"
)

// runEmber is rootCmd's entire dispatch: no path means REPL, one path means
// run that file, anything else is a usage error. This is deliberately not
// cobra.ExactArgs so the exact messages and exit codes below are ours to
// control.
func runEmber(cmd *cobra.Command, args []string) error {
	if disassembleFlag && len(args) != 1 {
		reportAndExit(errs.NewBadUsage("Error: --disassemble requires a file argument"))
		return nil
	}

	switch len(args) {
	case 0:
		runREPL()
	case 1:
		runFile(args[0])
	default:
		reportAndExit(errs.NewBadUsage("Error: no path specified"))
	}

	return nil
}

// runREPL reads and runs one line at a time until stdin is exhausted. One
// Interp lives for the whole session, so globals declared on one line are
// still there on the next.
func runREPL() {
	out, ear := romutil.StdMouthAndEar()
	it := interp.New(out)
	it.SetTrace(traceFlag)
	runREPLLoop(it, out, ear)
}

// runREPLLoop is runREPL's body, factored out so it can be driven by a
// fatefulEar in tests instead of real stdin. It runs until ear reports EOF;
// a blank line is just another line to run, not a terminator.
func runREPLLoop(it *interp.Interp, out romutil.Mouth, ear romutil.Ear) {
	for {
		out.Say("> ")
		out.Flush()

		line, ok := ear.Listen()
		if !ok {
			break
		}

		if err := it.Run(line); err != nil {
			reportErrorWithoutExiting(err)
		}
	}
}

// runFile reads path and runs it once through a fresh Interp. With
// --disassemble, it compiles but does not run, printing the resulting
// Chunk's disassembly instead.
func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		reportAndExit(errs.NewFileIO("could not read file %v: %v", path, err))
		return
	}

	if disassembleFlag {
		chunk, cerr := compiler.Compile(string(source), object.NewHeap())
		if cerr != nil {
			reportAndExit(cerr)
			return
		}
		chunk.Disassemble(os.Stdout, path)
		reportAndExit(nil)
		return
	}

	out, _ := romutil.StdMouthAndEar()
	it := interp.New(out)
	it.SetTrace(traceFlag)

	reportAndExit(it.Run(string(source)))
}

// reportErrorWithoutExiting prints err to stderr the way reportAndExit does,
// but doesn't terminate the process -- used by the REPL, where one bad line
// shouldn't end the session.
func reportErrorWithoutExiting(err errs.Error) {
	os.Stderr.WriteString(err.Error())
	os.Stderr.WriteString("\n")
}
