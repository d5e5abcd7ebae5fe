/******************************************************************************\
* The Ember Language                                                          *
*                                                                              *
* Copyright 2024-2026 The Ember Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package errs

import (
	"fmt"
	"strings"
)

//
// The Error interface
//

// Error is an Ember error: anything the CLI knows how to report and convert
// into a process exit code.
type Error interface {
	error
	ExitCode() int
}

//
// CompileTime
//

// CompileTime is a single scan- or compile-time error, already formatted the
// way report_error produces it: "[line L] Error (at 'lexeme'|at end): msg".
type CompileTime struct {
	// Message contains the diagnostic text.
	Message string

	// Line contains the line number where the error was detected.
	Line int

	// Lexeme contains the offending lexeme, or "" for an end-of-file error.
	Lexeme string

	// AtEOF is true when the error token was end-of-file.
	AtEOF bool
}

// NewCompileTime builds a CompileTime error at a specific line and lexeme.
func NewCompileTime(line int, lexeme string, atEOF bool, format string, a ...any) *CompileTime {
	return &CompileTime{
		Message: fmt.Sprintf(format, a...),
		Line:    line,
		Lexeme:  lexeme,
		AtEOF:   atEOF,
	}
}

// Error converts the CompileTime to a string. Fulfills the error interface.
func (e *CompileTime) Error() string {
	at := ""
	switch {
	case e.AtEOF:
		at = " at end"
	case e.Lexeme != "":
		at = fmt.Sprintf(" at '%v'", e.Lexeme)
	}
	return fmt.Sprintf("[line %v] Error%v: %v", e.Line, at, e.Message)
}

// ExitCode fulfills the Error interface.
func (e *CompileTime) ExitCode() int {
	return StatusCodeCompileTimeError
}

//
// CompileTimeCollection
//

// CompileTimeCollection is every CompileTime error accumulated during one
// compile, reported together once compilation gives up.
type CompileTimeCollection struct {
	Errors []*CompileTime
}

// Add appends err to the collection. A no-op if err is nil.
func (e *CompileTimeCollection) Add(err *CompileTime) {
	if err == nil {
		return
	}
	e.Errors = append(e.Errors, err)
}

// IsEmpty reports whether the collection holds no errors.
func (e *CompileTimeCollection) IsEmpty() bool {
	return len(e.Errors) == 0
}

// Error converts the CompileTimeCollection to a string, one error per line.
// Fulfills the error interface.
func (e *CompileTimeCollection) Error() string {
	s := strings.Builder{}
	for i, err := range e.Errors {
		if i > 0 {
			s.WriteByte('\n')
		}
		s.WriteString(err.Error())
	}
	return s.String()
}

// ExitCode fulfills the Error interface.
func (e *CompileTimeCollection) ExitCode() int {
	return StatusCodeCompileTimeError
}

//
// FileIO
//

// FileIO is an error opening or reading the source file given to ember.
type FileIO struct {
	Message string
}

// NewFileIO builds a FileIO error.
func NewFileIO(format string, a ...any) *FileIO {
	return &FileIO{Message: fmt.Sprintf(format, a...)}
}

// Error converts the FileIO to a string. Fulfills the error interface.
func (e *FileIO) Error() string {
	return e.Message
}

// ExitCode fulfills the Error interface.
func (e *FileIO) ExitCode() int {
	return StatusCodeFileIO
}

//
// BadUsage
//

// BadUsage is an error that happened because the ember tool was called in
// the wrong way (the wrong number of command-line arguments).
type BadUsage struct {
	Message string
}

// NewBadUsage builds a BadUsage error.
func NewBadUsage(format string, a ...any) *BadUsage {
	return &BadUsage{Message: fmt.Sprintf(format, a...)}
}

// Error converts the BadUsage to a string. Fulfills the error interface.
func (e *BadUsage) Error() string {
	return e.Message
}

// ExitCode fulfills the Error interface.
func (e *BadUsage) ExitCode() int {
	return StatusCodeBadUsage
}

//
// Runtime
//

// Runtime is the error the VM raises when it aborts program execution --
// a type mismatch, an undefined global, and so on.
type Runtime struct {
	Message string

	// Line is the source line active when the VM aborted, or 0 if unknown.
	Line int
}

// NewRuntime builds a Runtime error at a specific line.
func NewRuntime(line int, format string, a ...any) *Runtime {
	return &Runtime{Message: fmt.Sprintf(format, a...), Line: line}
}

// Error converts the Runtime to a string. Fulfills the error interface.
func (e *Runtime) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%v\n[line %v] in program", e.Message, e.Line)
	}
	return e.Message
}

// ExitCode fulfills the Error interface.
func (e *Runtime) ExitCode() int {
	return StatusCodeRuntimeError
}

//
// ICE
//

// ICE is an Internal error -- used to report some unexpected issue with
// Ember's own implementation, like finding it in a state it should never
// reach. It's always a bug in Ember, never in the program it was running.
type ICE struct {
	Message string
}

// NewICE builds an ICE.
func NewICE(format string, a ...any) *ICE {
	return &ICE{Message: fmt.Sprintf(format, a...)}
}

// Error converts the ICE to a string. Fulfills the error interface.
func (e *ICE) Error() string {
	return "Internal error: " + e.Message
}

// ExitCode fulfills the Error interface.
func (e *ICE) ExitCode() int {
	return StatusCodeICE
}

//
// TestSuite
//

// TestSuite reports a failed assertion while running the golden test suite
// (pkg/test): an expectation in some case.toml didn't match what Ember
// actually did. Distinct from ICE -- this is a bug in a test case or in
// Ember's observable behavior, not necessarily an internal invariant
// violation.
type TestSuite struct {
	Case    string
	Message string
}

// NewTestSuite builds a TestSuite error for the case at casePath.
func NewTestSuite(casePath string, format string, a ...any) *TestSuite {
	return &TestSuite{Case: casePath, Message: fmt.Sprintf(format, a...)}
}

// Error converts the TestSuite to a string. Fulfills the error interface.
func (e *TestSuite) Error() string {
	return fmt.Sprintf("%v: %v", e.Case, e.Message)
}

// ExitCode fulfills the Error interface.
func (e *TestSuite) ExitCode() int {
	return StatusCodeICE
}
