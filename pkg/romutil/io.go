/******************************************************************************\
* The Ember Language                                                          *
*                                                                              *
* Copyright 2024-2026 The Ember Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package romutil

import (
	"bufio"
	"io"
	"os"
	"strings"
)

//
// Body parts
//

// A Mouth is something that can produce output for Ember -- the abstraction
// behind OP_PRINT. A Mouth never returns an error, which is technically wrong
// but should be true enough for the use cases that matter.
type Mouth interface {
	// Say outputs the given string. In fact, it buffers the string, and only
	// outputs it when Flush is called.
	Say(string)

	// Flush outputs all strings buffered by calls to Say.
	Flush()
}

// An Ear is something that can receive input from outside Ember -- the
// abstraction behind the REPL's line reading. An Ear never returns an error,
// which is technically wrong but should be true enough for the use cases
// that matter.
type Ear interface {
	// Listen returns the next string from the input source, and whether
	// there was one to return. A false result means the source is
	// exhausted (EOF); callers must not confuse it with a blank line, which
	// returns ("", true).
	Listen() (string, bool)
}

//
// writerMouth
//

// NewWriterMouth creates a new Mouth that outputs to the given io.Writer.
func NewWriterMouth(w io.Writer) Mouth {
	return &writerMouth{w: w}
}

// writerMouth is a Mouth that outputs to an io.Writer.
type writerMouth struct {
	w       io.Writer
	buffer  strings.Builder
	hasData bool
}

// Say buffers the given string; Flush writes it to the underlying io.Writer.
func (wm *writerMouth) Say(s string) {
	// WriteString() always returns a nil error.
	wm.buffer.WriteString(s)
	wm.hasData = true
}

// Flush effectively outputs the strings previously Say()ed.
func (wm *writerMouth) Flush() {
	if !wm.hasData {
		return
	}

	s := wm.buffer.String()
	wm.buffer.Reset()

	// Ignore errors. Hopefully this will not be too bad for the envisioned use
	// cases (std output and in-memory buffers).
	_, _ = wm.w.Write([]byte(s))
	wm.hasData = false
}

//
// memoryMouth
//

// MemoryMouth is a Mouth that stores all output in memory so we can check it
// later. Good for testing.
type MemoryMouth struct {
	Outputs []string
	buffer  strings.Builder
	hasData bool
}

// Say stores the said string in memory.
func (mm *MemoryMouth) Say(s string) {
	mm.hasData = true
	mm.buffer.WriteString(s)
}

// Flush outputs the buffered strings previously Say()ed.
func (mm *MemoryMouth) Flush() {
	if !mm.hasData {
		return
	}
	s := mm.buffer.String()
	mm.buffer.Reset()
	mm.Outputs = append(mm.Outputs, s)
	mm.hasData = false
}

//
// readerEar
//

// NewReaderEar creates a new Ear that reads from the given io.Reader.
func NewReaderEar(r io.Reader) Ear {
	s := bufio.NewScanner(r)
	return &readerEar{s}
}

// readerEar is an Ear that gets data from an io.Reader.
type readerEar struct {
	s *bufio.Scanner
}

// Listen returns the next line from the underlying io.Reader. The second
// result is Scan's own verdict: false once the reader is exhausted, true for
// every line read before that, blank ones included.
func (ri *readerEar) Listen() (string, bool) {
	ok := ri.s.Scan()
	return ri.s.Text(), ok
}

//
// fatefulEar
//

// Returns an Ear that produces a predefined sequence of strings. It will
// produce, in sequence, each of the strings in inputs, and after that it
// behaves as if exhausted, the same as an io.Reader hitting EOF.
func NewFatefulEar(inputs []string) Ear {
	return &fatefulEar{inputs}
}

// fatefulEar is an Ear that produces a fixed sequence of strings.
type fatefulEar struct {
	inputs []string
}

// Listen returns the next string from the fixed sequence of inputs, or
// ("", false) once that sequence is used up.
func (fi *fatefulEar) Listen() (string, bool) {
	if len(fi.inputs) == 0 {
		return "", false
	}

	s := fi.inputs[0]
	fi.inputs = fi.inputs[1:]
	return s, true
}

//
// Helpers
//

// StdMouthAndEar returns a Mouth and an Ear that use the standard input and
// output.
func StdMouthAndEar() (Mouth, Ear) {
	return NewWriterMouth(os.Stdout), NewReaderEar(os.Stdin)
}
