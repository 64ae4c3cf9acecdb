// Package core implements the canonical textual encoding of expressions:
// a lexer for the token alphabet, the grammar that folds tokens into
// expression trees, and the printer that renders trees back with minimal
// parentheses. Encode then decode is the identity on expressions.
// Decoding and encoding recurse once per nesting level, so the call stack
// bounds the expression depth either direction can handle.
package core

import (
	"unicode/utf8"

	"github.com/glossopoeia/matcha/enc"
)

// TokenKind classifies the tokens of the core encoding.
type TokenKind int

const (
	// Identifier: a lowercase letter followed by lowercase letters,
	// decimal digits or underscores. Never empty.
	Ident TokenKind = iota + 1
	// Left parenthesis, opening a grouped expression.
	LParen
	// Right parenthesis, closing a grouped expression.
	RParen
	// Dot, separating a binder's type from its body.
	Dot
	// Colon, separating a binder's symbol from its type.
	Colon
	// Lambda glyph, prefixing a λ-abstraction.
	Lambda
	// Pi glyph, prefixing a Π-type.
	Pi
	// Sigma glyph, prefixing a Σ-type.
	Sigma
	// Box glyph, the universe constant.
	Box
)

// Return the display name of the token kind, as it appears in the
// expected sets of decode errors.
func (k TokenKind) String() string {
	switch k {
	case Ident:
		return "identifier"
	case LParen:
		return "("
	case RParen:
		return ")"
	case Dot:
		return "."
	case Colon:
		return ":"
	case Lambda:
		return "λ"
	case Pi:
		return "Π"
	case Sigma:
		return "Σ"
	case Box:
		return "□"
	default:
		panic("Invalid token kind encountered.")
	}
}

// Token is a single lexed token. Text carries the spelling of an
// identifier and is empty for every other kind.
type Token struct {
	Kind TokenKind
	Text string
}

// Return the source text of the token: the identifier spelling, or the
// fixed glyph of its kind.
func (t Token) String() string {
	if t.Kind == Ident {
		return t.Text
	}
	return t.Kind.String()
}

// Spanned is a token together with the byte offsets delimiting it in the
// input.
type Spanned struct {
	Start int
	Tok   Token
	End   int
}

// glyphs maps each fixed single-rune token to its kind.
var glyphs = map[rune]TokenKind{
	'(': LParen,
	')': RParen,
	'.': Dot,
	':': Colon,
	'λ': Lambda,
	'Π': Pi,
	'Σ': Sigma,
	'□': Box,
}

// Lexer turns input text into a stream of spanned tokens, produced one at
// a time in the manner of bufio.Scanner: Scan advances to the next token,
// Token returns it, and Err reports the lexical failure that stopped an
// early Scan. Space, tab, newline and form feed are skipped between
// tokens; any other rune outside the token alphabet stops the stream with
// an invalid-token error at its byte offset.
type Lexer struct {
	input string
	pos   int
	tok   Spanned
	err   error
}

// Create a new lexer over the given input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Advance to the next token. False when the input is exhausted or a
// lexical error occurred; Err distinguishes the two.
func (l *Lexer) Scan() bool {
	if l.err != nil {
		return false
	}
	l.skipSpace()
	if l.pos >= len(l.input) {
		return false
	}
	start := l.pos
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	if kind, ok := glyphs[r]; ok {
		l.pos += size
		l.tok = Spanned{Start: start, Tok: Token{Kind: kind}, End: l.pos}
		return true
	}
	if r >= 'a' && r <= 'z' {
		l.pos += size
		for l.pos < len(l.input) && isIdentTail(l.input[l.pos]) {
			l.pos++
		}
		l.tok = Spanned{Start: start, Tok: Token{Kind: Ident, Text: l.input[start:l.pos]}, End: l.pos}
		return true
	}
	l.err = enc.InvalidTokenError{Loc: start}
	return false
}

// Return the token most recently produced by Scan.
func (l *Lexer) Token() Spanned {
	return l.tok
}

// Return the error that stopped scanning, or nil if the input simply
// ended.
func (l *Lexer) Err() error {
	return l.err
}

// Rewind the lexer to the start of its input.
func (l *Lexer) Reset() {
	l.pos = 0
	l.tok = Spanned{}
	l.err = nil
}

func (l *Lexer) skipSpace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\n', '\f':
			l.pos++
		default:
			return
		}
	}
}

// Identifier tails are ASCII only, so a byte test suffices.
func isIdentTail(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b == '_'
}
