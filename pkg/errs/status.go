/******************************************************************************\
* The Ember Language                                                          *
*                                                                              *
* Copyright 2024-2026 The Ember Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package errs

// Exit codes follow the sysexits.h convention: callers (shell scripts, CI) can
// distinguish "your program has a bug" from "you called ember wrong" from
// "ember itself is broken".
const (
	// StatusCodeSuccess indicates a successful execution.
	StatusCodeSuccess = 0

	// StatusCodeBadUsage indicates the ember tool was invoked incorrectly
	// (wrong number of command-line arguments). Matches EX_USAGE.
	StatusCodeBadUsage = 64

	// StatusCodeCompileTimeError indicates one or more errors while scanning
	// or compiling the source. Matches EX_DATAERR.
	StatusCodeCompileTimeError = 65

	// StatusCodeRuntimeError indicates the VM aborted the program it was
	// running. Matches EX_SOFTWARE.
	StatusCodeRuntimeError = 70

	// StatusCodeFileIO indicates the source file could not be opened or read.
	// Matches EX_IOERR.
	StatusCodeFileIO = 74

	// StatusCodeICE indicates an internal error -- a bug in Ember itself,
	// rather than in the program it was given.
	StatusCodeICE = 125
)
