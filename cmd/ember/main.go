/******************************************************************************\
* The Ember Language                                                          *
*                                                                              *
* Copyright 2024-2026 The Ember Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package main

func main() {
	// A file run and a usage error end in errs.ReportAndExit, which os.Exits
	// with the right status itself; a REPL session returns from RunE at EOF
	// and the process exits 0. An error returned by Execute itself (such as
	// an unknown flag) is printed by cobra and not otherwise acted on.
	_ = rootCmd.Execute()
}
