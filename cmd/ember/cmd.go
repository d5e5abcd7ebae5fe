/******************************************************************************\
* The Ember Language                                                          *
*                                                                              *
* Copyright 2024-2026 The Ember Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package main

import (
	"github.com/spf13/cobra"
)

// traceFlag is for --trace.
var traceFlag bool

// disassembleFlag is for --disassemble.
var disassembleFlag bool

// rootCmd is Ember's entire CLI surface: one binary, dispatched on argument
// count rather than on a verb, per the language's "no positional args means
// REPL, one means run this file" contract.
var rootCmd = &cobra.Command{
	Use:          "ember [path]",
	SilenceUsage: true,
	Short:        "Ember is a small bytecode-compiled scripting language",
	Long: `Ember compiles and runs a small Lox-family scripting language: a
single-pass compiler emits bytecode directly, which a stack-based VM then
executes. With no arguments it starts a REPL; with one argument it runs
the named file.`,
	Args: cobra.ArbitraryArgs,
	RunE: runEmber,
}

func init() {
	rootCmd.Flags().BoolVar(&traceFlag, "trace", false, "log the VM's stack and each instruction as it executes")
	rootCmd.Flags().BoolVar(&disassembleFlag, "disassemble", false, "print the file's disassembled bytecode instead of running it")
}
