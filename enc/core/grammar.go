package core

import (
	"github.com/glossopoeia/matcha/ast"
	"github.com/glossopoeia/matcha/enc"
	"github.com/rjNemo/underscore"
	"golang.org/x/exp/slices"
)

// Token classes the grammar branches on. A binder can only appear as the
// last factor of an application sequence, because its body is greedy:
// everything up to the closing parenthesis or the end of the input
// belongs to it.
var (
	atomStart   = []TokenKind{Ident, Box, LParen}
	binderStart = []TokenKind{Lambda, Pi, Sigma}
	expStart    = []TokenKind{Ident, Box, LParen, Lambda, Pi, Sigma}
)

// names renders a token class as the display strings decode errors carry.
func names(kinds []TokenKind) []string {
	return underscore.Map(kinds, TokenKind.String)
}

// parser folds the lexer's stream into an expression with one token of
// lookahead, according to the grammar
//
//	Exp         := Binder | Application
//	Binder      := ('λ' | 'Π' | 'Σ') Ident ':' Exp '.' Exp
//	Application := Atom+ [Binder]
//	Atom        := Ident | '□' | '(' Exp ')'
//
// where application associates to the left.
type parser struct {
	lex *Lexer
	tok *Spanned // lookahead; nil once the stream has ended
	end int      // offset reported by end-of-stream errors
}

// parse decodes the whole input to a single expression. Input left over
// after a complete expression is an unexpected token that nothing could
// accept.
func parse(input string) (ast.Exp, error) {
	p := &parser{lex: NewLexer(input), end: len(input)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	e, err := p.exp()
	if err != nil {
		return nil, err
	}
	if p.tok != nil {
		return nil, enc.UnexpectedTokenError{Token: p.tok.Tok.String(), Start: p.tok.Start, End: p.tok.End}
	}
	return e, nil
}

// advance moves the lookahead one token forward, surfacing any lexical
// error.
func (p *parser) advance() error {
	if p.lex.Scan() {
		tok := p.lex.Token()
		p.tok = &tok
		return nil
	}
	p.tok = nil
	return p.lex.Err()
}

// peek reports whether the lookahead is one of the given kinds.
func (p *parser) peek(kinds []TokenKind) bool {
	return p.tok != nil && slices.Contains(kinds, p.tok.Tok.Kind)
}

// expect consumes the lookahead when it is of the given kind and fails
// with the fitting decode error otherwise.
func (p *parser) expect(kind TokenKind) (Token, error) {
	if p.tok == nil {
		return Token{}, enc.EndOfStreamError{Loc: p.end, Expected: names([]TokenKind{kind})}
	}
	if p.tok.Tok.Kind != kind {
		return Token{}, p.unexpected([]TokenKind{kind})
	}
	tok := p.tok.Tok
	if err := p.advance(); err != nil {
		return Token{}, err
	}
	return tok, nil
}

// unexpected builds the error for a lookahead token none of the given
// kinds accept. The lookahead must be present.
func (p *parser) unexpected(kinds []TokenKind) error {
	return enc.UnexpectedTokenError{Token: p.tok.Tok.String(), Start: p.tok.Start, End: p.tok.End, Expected: names(kinds)}
}

// exp parses a full expression: a binder, or an application sequence that
// a trailing binder may close.
func (p *parser) exp() (ast.Exp, error) {
	if p.peek(binderStart) {
		return p.binder()
	}
	e, err := p.atom(expStart)
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.peek(atomStart):
			a, err := p.atom(atomStart)
			if err != nil {
				return nil, err
			}
			e = ast.NewApp(e, a)
		case p.peek(binderStart):
			b, err := p.binder()
			if err != nil {
				return nil, err
			}
			// The binder body ran to the end of this expression, so the
			// sequence is done.
			return ast.NewApp(e, b), nil
		default:
			return e, nil
		}
	}
}

// binder parses one of the three binding forms and constructs it, which
// indexes the body. A limit hit during construction surfaces as a system
// error.
func (p *parser) binder() (ast.Exp, error) {
	prefix := p.tok.Tok.Kind
	if err := p.advance(); err != nil {
		return nil, err
	}
	name, err := p.expect(Ident)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(Colon); err != nil {
		return nil, err
	}
	typ, err := p.exp()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(Dot); err != nil {
		return nil, err
	}
	body, err := p.exp()
	if err != nil {
		return nil, err
	}
	sym := ast.NewSym(name.Text)
	switch prefix {
	case Lambda:
		abs, err := ast.NewAbs(sym, typ, body)
		if err != nil {
			return nil, enc.SystemError{Err: err}
		}
		return abs, nil
	case Pi:
		prd, err := ast.NewPrd(sym, typ, body)
		if err != nil {
			return nil, enc.SystemError{Err: err}
		}
		return prd, nil
	case Sigma:
		sum, err := ast.NewSum(sym, typ, body)
		if err != nil {
			return nil, enc.SystemError{Err: err}
		}
		return sum, nil
	default:
		panic("Invalid binder prefix encountered.")
	}
}

// atom parses an atomic expression. The expected set names what the
// caller would have accepted here, for error reporting.
func (p *parser) atom(expected []TokenKind) (ast.Exp, error) {
	if p.tok == nil {
		return nil, enc.EndOfStreamError{Loc: p.end, Expected: names(expected)}
	}
	switch p.tok.Tok.Kind {
	case Ident:
		sym := ast.NewSym(p.tok.Tok.Text)
		if err := p.advance(); err != nil {
			return nil, err
		}
		return sym, nil
	case Box:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return ast.NewUnv(), nil
	case LParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		e, err := p.exp()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RParen); err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, p.unexpected(expected)
	}
}
