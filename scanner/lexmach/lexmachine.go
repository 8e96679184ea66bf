// Package lexmach adapts timtadh/lexmachine, a DFA-based lexer generator,
// to the scanner.Tokenizer contract, for grammars whose terminals are
// defined by regular-expression rules rather than the Go-like lexical rules
// of scanner.DefaultTokenizer.
package lexmach

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	lr0gen "github.com/go-lrtools/lr0gen"
	"github.com/go-lrtools/lr0gen/scanner"
)

// tracer traces with key 'lr0gen.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lr0gen.scanner")
}

// LMAdapter wraps a compiled lexmachine DFA.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter builds a lexer: init adds regex rules for anything beyond
// literals and keywords, literals are single- or multi-character fixed
// strings ("(", "::="), keywords are identifiers ("if", "end") matched only
// in their lower-case spelling, and tokenIds maps every literal and keyword name to the terminal
// token value the grammar expects for it.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string, tokenIds map[string]int) (*LMAdapter, error) {
	adapter := &LMAdapter{Lexer: lexmachine.NewLexer()}
	init(adapter.Lexer)
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(lit, tokenIds[lit]))
	}
	for _, name := range keywords {
		adapter.Lexer.Add([]byte(strings.ToLower(name)), MakeToken(name, tokenIds[name]))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a Tokenizer over input.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, Error: logError}, nil
}

// LMScanner implements scanner.Tokenizer over a compiled lexmachine DFA.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler installs h, or resets to the default logging handler.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NextToken scans past any unconsumed-input errors (reporting each to the
// error handler) and returns the next token, or an EOF token.
func (lms *LMScanner) NextToken() lr0gen.Token {
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.scanner.TC = ui.FailTC
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		return scanner.MakeDefaultToken(scanner.EOF, "", lr0gen.Span{})
	}
	token := tok.(*lexmachine.Token)
	return scanner.MakeDefaultToken(
		lr0gen.TokType(token.Type),
		string(token.Lexeme),
		lr0gen.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	)
}

// Skip is a lexmachine action that discards the match (for whitespace).
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a lexmachine action that wraps a match into a token of the
// given id.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
