/*
Package scanner defines the Tokenizer contract consumed by package driver
and provides two implementations: a thin wrapper over the Go standard
library's text/scanner, and a lexmachine-backed adapter in sub-package
lexmach for grammars with their own token grammar.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"io"
	"text/scanner"

	"github.com/npillmayer/schuko/tracing"

	lr0gen "github.com/go-lrtools/lr0gen"
)

// tracer traces with key 'lr0gen.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lr0gen.scanner")
}

// Go standard scanner token kinds, re-exported so callers of this package
// never need to import text/scanner directly.
const (
	EOF       = scanner.EOF
	Ident     = scanner.Ident
	Int       = scanner.Int
	Float     = scanner.Float
	Char      = scanner.Char
	String    = scanner.String
	RawString = scanner.RawString
	Comment   = scanner.Comment
)

// Tokenizer is what package driver needs from a lexer: a pull-based stream
// of lr0gen.Token plus an error hook.
type Tokenizer interface {
	NextToken() lr0gen.Token
	SetErrorHandler(func(error))
}

// DefaultTokenizer implements Tokenizer by wrapping text/scanner.Scanner.
// Token types produced are the scanner's own rune categories (Ident, Int,
// and so on, or an individual rune for single-character tokens); a grammar
// built directly against this tokenizer should use those same values as its
// terminal token types.
type DefaultTokenizer struct {
	scanner.Scanner
	lastToken    rune
	Error        func(error)
	unifyStrings bool
}

var _ Tokenizer = (*DefaultTokenizer)(nil)

func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// GoTokenizer creates a tokenizer over input, naming it sourceID for error
// messages (typically a file path).
func GoTokenizer(sourceID string, input io.Reader, opts ...Option) *DefaultTokenizer {
	t := &DefaultTokenizer{}
	t.Error = logError
	t.Init(input)
	t.Filename = sourceID
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetErrorHandler installs h as the error handler, or resets to the default
// logging handler if h is nil.
func (t *DefaultTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken scans and returns the next token, or an EOF-typed token once the
// input is exhausted.
func (t *DefaultTokenizer) NextToken() lr0gen.Token {
	t.lastToken = t.Scan()
	if t.lastToken == scanner.EOF {
		tracer().Debugf("tokenizer reached end of input")
	}
	if t.unifyStrings && (t.lastToken == scanner.RawString || t.lastToken == scanner.Char) {
		t.lastToken = scanner.String
	}
	return DefaultToken{
		kind:   lr0gen.TokType(t.lastToken),
		lexeme: t.TokenText(),
		span:   lr0gen.Span{uint64(t.Position.Offset), uint64(t.Pos().Offset)},
	}
}

// DefaultToken is a minimal lr0gen.Token, used by DefaultTokenizer and
// sub-package lexmach alike.
type DefaultToken struct {
	kind   lr0gen.TokType
	lexeme string
	Val    interface{}
	span   lr0gen.Span
}

// MakeDefaultToken constructs a DefaultToken directly, for adapters that
// produce tokens outside of DefaultTokenizer's own Scan loop.
func MakeDefaultToken(typ lr0gen.TokType, lexeme string, span lr0gen.Span) DefaultToken {
	return DefaultToken{kind: typ, lexeme: lexeme, span: span}
}

func (t DefaultToken) TokType() lr0gen.TokType { return t.kind }
func (t DefaultToken) Value() interface{}      { return t.Val }
func (t DefaultToken) Lexeme() string          { return t.lexeme }
func (t DefaultToken) Span() lr0gen.Span       { return t.span }

// Option configures a DefaultTokenizer at construction time.
type Option func(t *DefaultTokenizer)

const (
	optionSkipComments uint = 1 << 1
	optionUnifyStrings uint = 1 << 2
)

// SkipComments toggles whether comment tokens are suppressed.
func SkipComments(b bool) Option {
	return func(t *DefaultTokenizer) {
		if b {
			t.Mode |= scanner.SkipComments
		} else {
			t.Mode &^= scanner.SkipComments
		}
	}
}

// UnifyStrings toggles whether raw strings and single chars are reported as
// String tokens rather than their own rune categories.
func UnifyStrings(b bool) Option {
	return func(t *DefaultTokenizer) { t.unifyStrings = b }
}

func (t *DefaultTokenizer) hasmode(m uint) bool {
	if m == optionUnifyStrings {
		return t.unifyStrings
	}
	return t.Mode&m > 0
}
