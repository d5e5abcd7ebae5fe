/******************************************************************************\
* The Ember Language                                                          *
*                                                                              *
* Copyright 2024-2026 The Ember Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

// Package compiler implements Ember's single-pass Pratt compiler: it walks
// the frontend token stream exactly once, emitting bytecode into a Chunk as
// it goes. There is no intermediate AST.
package compiler

import (
	"strconv"

	"github.com/emberlang/ember/pkg/bytecode"
	"github.com/emberlang/ember/pkg/errs"
	"github.com/emberlang/ember/pkg/frontend"
	"github.com/emberlang/ember/pkg/object"
)

// precedence orders Ember's binding powers from loosest to tightest.
type precedence int

const (
	precNone       precedence = iota
	precAssign                // =
	precOr                    // or
	precAnd                   // and
	precEquality              // == !=
	precCompare               // < > <= >=
	precAddSub                // + -
	precMulDiv                // * /
	precUnary                 // ! -
	precAccessor              // . ()
)

type parseFn func(c *compiler, canAssign bool)

// rule is one entry of the parse-rule table: what to do when a token kind is
// seen in prefix position, what to do when seen in infix position, and how
// tightly it binds as an infix operator.
type rule struct {
	prefix     parseFn
	infix      parseFn
	precedence precedence
}

var rules map[frontend.TokenKind]rule

func init() {
	rules = map[frontend.TokenKind]rule{
		frontend.TokenKindLeftParen:  {prefix: (*compiler).grouping},
		frontend.TokenKindMinus:      {prefix: (*compiler).unary, infix: (*compiler).binary, precedence: precAddSub},
		frontend.TokenKindPlus:       {infix: (*compiler).binary, precedence: precAddSub},
		frontend.TokenKindSlash:      {infix: (*compiler).binary, precedence: precMulDiv},
		frontend.TokenKindStar:       {infix: (*compiler).binary, precedence: precMulDiv},
		frontend.TokenKindBang:       {prefix: (*compiler).unary},
		frontend.TokenKindBangEqual:  {infix: (*compiler).binary, precedence: precEquality},
		frontend.TokenKindEqualEqual: {infix: (*compiler).binary, precedence: precEquality},
		frontend.TokenKindGreater:      {infix: (*compiler).binary, precedence: precCompare},
		frontend.TokenKindGreaterEqual: {infix: (*compiler).binary, precedence: precCompare},
		frontend.TokenKindLess:         {infix: (*compiler).binary, precedence: precCompare},
		frontend.TokenKindLessEqual:    {infix: (*compiler).binary, precedence: precCompare},
		frontend.TokenKindIdentifier: {prefix: (*compiler).namedVariable},
		frontend.TokenKindStr:        {prefix: (*compiler).string},
		frontend.TokenKindNum:        {prefix: (*compiler).number},
		frontend.TokenKindTrue:       {prefix: (*compiler).literal},
		frontend.TokenKindFalse:      {prefix: (*compiler).literal},
		frontend.TokenKindNone:       {prefix: (*compiler).literal},
	}
}

func ruleFor(kind frontend.TokenKind) rule {
	return rules[kind]
}

// compiler is the parser state for a single compile: the scanner it pulls
// tokens from, the current/previous token pair, the Chunk being built, and
// the panic-mode/error-accumulation bookkeeping report_error needs.
type compiler struct {
	scanner *frontend.Scanner
	heap    *object.Heap

	current  frontend.Token
	previous frontend.Token

	hadError  bool
	panicMode bool
	errors    errs.CompileTimeCollection

	chunk *bytecode.Chunk
}

// Compile compiles source into a fresh Chunk, interning any string constants
// (and global-variable name constants) into heap. On success, returns the
// Chunk and a nil error. On a compile error, returns nil and the accumulated
// CompileTimeCollection.
func Compile(source string, heap *object.Heap) (*bytecode.Chunk, errs.Error) {
	c := &compiler{
		scanner: frontend.NewScanner(source),
		heap:    heap,
		chunk:   bytecode.NewChunk(),
	}

	c.advance()
	for !c.match(frontend.TokenKindEOF) {
		c.declaration()
	}
	c.emit(byte(bytecode.OpReturn))

	if c.hadError {
		return nil, &c.errors
	}
	return c.chunk, nil
}

//
// Token stream helpers
//

func (c *compiler) advance() {
	c.previous = c.current
	for {
		c.current = c.scanner.Token()
		if c.current.Kind != frontend.TokenKindError {
			break
		}
		c.errorAtCurrent(c.current.Lexeme)
	}
}

func (c *compiler) check(kind frontend.TokenKind) bool {
	return c.current.Kind == kind
}

func (c *compiler) match(kind frontend.TokenKind) bool {
	if !c.check(kind) {
		return false
	}
	c.advance()
	return true
}

func (c *compiler) consume(kind frontend.TokenKind, message string) {
	if c.current.Kind == kind {
		c.advance()
		return
	}
	c.errorAtCurrent(message)
}

//
// Declarations and statements
//

func (c *compiler) declaration() {
	if c.match(frontend.TokenKindLet) {
		c.letDeclaration()
	} else {
		c.statement()
	}

	if c.panicMode {
		c.synchronize()
	}
}

func (c *compiler) letDeclaration() {
	idx := c.parseVariable("Expected variable name")

	if c.match(frontend.TokenKindEqual) {
		c.expression()
	} else {
		c.emit(byte(bytecode.OpNone))
	}
	c.consume(frontend.TokenKindSemicolon, "Expect ';' after variable declaration")

	c.chunk.WriteGlobalOp(bytecode.OpDefineGlobal, bytecode.OpDefineGlobalLong, idx, c.previous.Line)
}

func (c *compiler) statement() {
	if c.match(frontend.TokenKindPrint) {
		c.printStatement()
	} else {
		c.expressionStatement()
	}
}

func (c *compiler) printStatement() {
	c.expression()
	c.consume(frontend.TokenKindSemicolon, "Expect ';' after value")
	c.emit(byte(bytecode.OpPrint))
}

func (c *compiler) expressionStatement() {
	c.expression()
	c.consume(frontend.TokenKindSemicolon, "Expect ';' after expression")
	c.emit(byte(bytecode.OpPop))
}

//
// Expressions
//

func (c *compiler) expression() {
	c.parsePrecedence(precAssign)
}

func (c *compiler) parsePrecedence(min precedence) {
	c.advance()
	prefix := ruleFor(c.previous.Kind).prefix
	if prefix == nil {
		c.errorAtPrevious("Expected expression")
		return
	}

	canAssign := min <= precAssign
	prefix(c, canAssign)

	for min <= ruleFor(c.current.Kind).precedence {
		c.advance()
		infix := ruleFor(c.previous.Kind).infix
		infix(c, canAssign)
	}

	if canAssign && c.match(frontend.TokenKindEqual) {
		c.errorAtPrevious("Invalid assignment target")
	}
}

// parseVariable consumes an identifier, adds its lexeme as an interned-string
// constant to the chunk's pool, and returns that constant's index.
func (c *compiler) parseVariable(message string) int {
	c.consume(frontend.TokenKindIdentifier, message)
	return c.identifierConstant(c.previous)
}

func (c *compiler) identifierConstant(name frontend.Token) int {
	s := c.heap.InternString(name.Lexeme)
	return c.chunk.AddConstant(bytecode.Obj(s))
}

func (c *compiler) number(canAssign bool) {
	n, err := strconv.ParseFloat(c.previous.Lexeme, 64)
	if err != nil {
		c.errorAtPrevious("Invalid number literal")
		return
	}
	c.chunk.WriteConstant(bytecode.Num(n), c.previous.Line)
}

func (c *compiler) string(canAssign bool) {
	raw := c.previous.Lexeme
	unquoted := raw[1 : len(raw)-1] // strip the surrounding quotes
	s := c.heap.InternString(unquoted)
	c.chunk.WriteConstant(bytecode.Obj(s), c.previous.Line)
}

func (c *compiler) literal(canAssign bool) {
	switch c.previous.Kind {
	case frontend.TokenKindTrue:
		c.emit(byte(bytecode.OpTrue))
	case frontend.TokenKindFalse:
		c.emit(byte(bytecode.OpFalse))
	case frontend.TokenKindNone:
		c.emit(byte(bytecode.OpNone))
	}
}

func (c *compiler) grouping(canAssign bool) {
	c.expression()
	c.consume(frontend.TokenKindRightParen, "Expect ')' after expression")
}

func (c *compiler) unary(canAssign bool) {
	operator := c.previous.Kind
	line := c.previous.Line

	c.parsePrecedence(precUnary)

	switch operator {
	case frontend.TokenKindMinus:
		c.emitAt(line, byte(bytecode.OpNegate))
	case frontend.TokenKindBang:
		c.emitAt(line, byte(bytecode.OpNot))
	}
}

func (c *compiler) binary(canAssign bool) {
	operator := c.previous.Kind
	line := c.previous.Line
	r := ruleFor(operator)

	c.parsePrecedence(r.precedence + 1) // left-associative

	switch operator {
	case frontend.TokenKindPlus:
		c.emitAt(line, byte(bytecode.OpAdd))
	case frontend.TokenKindMinus:
		c.emitAt(line, byte(bytecode.OpSub))
	case frontend.TokenKindStar:
		c.emitAt(line, byte(bytecode.OpMul))
	case frontend.TokenKindSlash:
		c.emitAt(line, byte(bytecode.OpDiv))
	case frontend.TokenKindEqualEqual:
		c.emitAt(line, byte(bytecode.OpEqual))
	case frontend.TokenKindBangEqual:
		c.emitAt(line, byte(bytecode.OpEqual), byte(bytecode.OpNot))
	case frontend.TokenKindLess:
		c.emitAt(line, byte(bytecode.OpLessThan))
	case frontend.TokenKindLessEqual:
		c.emitAt(line, byte(bytecode.OpGreaterThan), byte(bytecode.OpNot))
	case frontend.TokenKindGreater:
		c.emitAt(line, byte(bytecode.OpGreaterThan))
	case frontend.TokenKindGreaterEqual:
		c.emitAt(line, byte(bytecode.OpLessThan), byte(bytecode.OpNot))
	}
}

// namedVariable emits code to read, or -- when canAssign and an '=' follows
// -- write, the global named by the just-consumed identifier token.
func (c *compiler) namedVariable(canAssign bool) {
	name := c.previous
	idx := c.identifierConstant(name)

	if canAssign && c.match(frontend.TokenKindEqual) {
		c.expression()
		c.chunk.WriteGlobalOp(bytecode.OpSetGlobal, bytecode.OpSetGlobalLong, idx, name.Line)
		return
	}

	c.chunk.WriteGlobalOp(bytecode.OpGetGlobal, bytecode.OpGetGlobalLong, idx, name.Line)
}

//
// Emission
//

func (c *compiler) emit(bytes ...byte) {
	c.emitAt(c.previous.Line, bytes...)
}

func (c *compiler) emitAt(line int, bytes ...byte) {
	for _, b := range bytes {
		c.chunk.Write(b, line)
	}
}

//
// Error handling
//

func (c *compiler) errorAtCurrent(message string) {
	c.errorAt(c.current, message)
}

func (c *compiler) errorAtPrevious(message string) {
	c.errorAt(c.previous, message)
}

func (c *compiler) errorAt(tok frontend.Token, message string) {
	if c.panicMode {
		return
	}
	c.panicMode = true
	c.hadError = true

	lexeme := tok.Lexeme
	if tok.Kind == frontend.TokenKindError {
		lexeme = ""
	}
	c.errors.Add(errs.NewCompileTime(tok.Line, lexeme, tok.Kind == frontend.TokenKindEOF, "%s", message))
}

// synchronize skips tokens until it finds a plausible statement boundary: the
// previous token was ';', or the current one is 'return' (or we hit EOF).
// Other statement keywords such as 'let' or 'print' do not stop it.
func (c *compiler) synchronize() {
	c.panicMode = false

	for c.current.Kind != frontend.TokenKindEOF {
		if c.previous.Kind == frontend.TokenKindSemicolon {
			return
		}
		if c.current.Kind == frontend.TokenKindReturn {
			return
		}
		c.advance()
	}
}
