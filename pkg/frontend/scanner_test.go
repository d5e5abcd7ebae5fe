/******************************************************************************\
* The Ember Language                                                          *
*                                                                              *
* Copyright 2024-2026 The Ember Authors                                       *
* Licensed under the MIT license (see LICENSE.txt for details)                 *
\******************************************************************************/

package frontend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func scanAll(t *testing.T, source string) []Token {
	t.Helper()
	s := NewScanner(source)
	var toks []Token
	for {
		tok := s.Token()
		toks = append(toks, tok)
		if tok.Kind == TokenKindEOF {
			return toks
		}
	}
}

func TestScannerPunctuationAndOperators(t *testing.T) {
	toks := scanAll(t, "(),;-+/* ! != = == < <= << > >= >>")
	kinds := make([]TokenKind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	assert.Equal(t, []TokenKind{
		TokenKindLeftParen, TokenKindRightParen, TokenKindComma, TokenKindSemicolon,
		TokenKindMinus, TokenKindPlus, TokenKindSlash, TokenKindStar,
		TokenKindBang, TokenKindBangEqual, TokenKindEqual, TokenKindEqualEqual,
		TokenKindLess, TokenKindLessEqual, TokenKindLessLess,
		TokenKindGreater, TokenKindGreaterEqual, TokenKindGreaterGreater,
		TokenKindEOF,
	}, kinds)
}

func TestScannerKeywordsAndIdentifiers(t *testing.T) {
	toks := scanAll(t, "let x = print_me")
	require := assert.New(t)
	require.Equal(TokenKindLet, toks[0].Kind)
	require.Equal(TokenKindIdentifier, toks[1].Kind)
	require.Equal("x", toks[1].Lexeme)
	require.Equal(TokenKindEqual, toks[2].Kind)
	require.Equal(TokenKindIdentifier, toks[3].Kind)
	require.Equal("print_me", toks[3].Lexeme)
}

func TestScannerNumbers(t *testing.T) {
	toks := scanAll(t, "42 3.14 7.")
	assert.Equal(t, "42", toks[0].Lexeme)
	assert.Equal(t, TokenKindNum, toks[0].Kind)
	assert.Equal(t, "3.14", toks[1].Lexeme)
	assert.Equal(t, TokenKindNum, toks[1].Kind)
	// "7." has no digit after the dot, so the dot is not part of the number.
	assert.Equal(t, "7", toks[2].Lexeme)
}

func TestScannerStrings(t *testing.T) {
	toks := scanAll(t, `"hello" "unterminated`)
	assert.Equal(t, TokenKindStr, toks[0].Kind)
	assert.Equal(t, `"hello"`, toks[0].Lexeme)
	assert.Equal(t, TokenKindError, toks[1].Kind)
	assert.Equal(t, "Unclosed string", toks[1].Lexeme)
}

func TestScannerCommentsAndWhitespace(t *testing.T) {
	toks := scanAll(t, "1 // a comment\n2")
	assert.Equal(t, "1", toks[0].Lexeme)
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, "2", toks[1].Lexeme)
	assert.Equal(t, 2, toks[1].Line)
}

func TestScannerUnexpectedCharacter(t *testing.T) {
	toks := scanAll(t, "@")
	assert.Equal(t, TokenKindError, toks[0].Kind)
	assert.Contains(t, toks[0].Lexeme, "Unexpected character")
}
