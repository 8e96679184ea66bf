/*
Package driver implements a runtime shift/reduce driver over a
lr.ParsingTable, grounded on the teacher corpus's lr/slr package (itself
grounded on "Crafting a Compiler", §6.2 LR(0)/SLR(1) parsing).

It is the consumer spec.md §6 names but leaves unspecified ("Consume (by
the parse driver, out of scope)"): given a table and a token stream, walk
shifts and reduces until accept, error, or input exhaustion.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package driver

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"

	lr0gen "github.com/go-lrtools/lr0gen"
	"github.com/go-lrtools/lr0gen/lr"
	"github.com/go-lrtools/lr0gen/scanner"
)

// tracer traces with key 'lr0gen.driver'.
func tracer() tracing.Trace {
	return tracing.Select("lr0gen.driver")
}

// TermFor maps a scanned token's type to the grammar terminal it stands
// for. The core grammar machinery never interprets TokType itself (spec
// §6); this is the one place that bridges a concrete tokenizer to the
// Symbol space a ParsingTable was built over.
type TermFor func(lr0gen.TokType) (lr.Symbol, bool)

// Driver walks a ParsingTable against a Tokenizer (spec §4.6).
type Driver struct {
	Table   *lr.ParsingTable
	TermFor TermFor
	stack   []stackItem
}

type stackItem struct {
	state  int
	symbol lr.Symbol
	span   lr0gen.Span
}

// NewDriver creates a Driver for table, using termFor to translate scanned
// token types into the table's terminal symbols.
func NewDriver(table *lr.ParsingTable, termFor TermFor) *Driver {
	return &Driver{Table: table, TermFor: termFor}
}

// SyntaxError reports a driving failure: an empty or conflicted ACTION
// cell, or a token type the driver cannot map to a terminal.
type SyntaxError struct {
	State int
	Token lr0gen.Token
	Msg   string
}

func (e *SyntaxError) Error() string {
	lexeme := ""
	if e.Token != nil {
		lexeme = e.Token.Lexeme()
	}
	return fmt.Sprintf("syntax error in state %d at %q: %s", e.State, lexeme, e.Msg)
}

// Run drives tok to completion against d.Table (spec §4.6 steps 1-2). It
// returns true with a nil error on accept, and false with a *SyntaxError on
// any other outcome: an unmapped token type, an empty ACTION cell, or a
// conflict cell, which is always a hard error here — the driver never
// guesses which of a conflict's actions to take (spec §4.5 Open Question 3,
// spec §4.6 step 2).
func (d *Driver) Run(tok scanner.Tokenizer) (bool, error) {
	d.stack = append(d.stack[:0], stackItem{state: 0})
	token := tok.NextToken()

	for {
		top := d.stack[len(d.stack)-1]
		sym, ok := d.TermFor(token.TokType())
		if !ok {
			return false, &SyntaxError{State: top.state, Token: token, Msg: "unrecognized token type"}
		}

		cell := d.Table.ActionAt(top.state, sym)
		if cell.IsEmpty() {
			return false, &SyntaxError{State: top.state, Token: token, Msg: "no action for this terminal"}
		}
		if cell.IsConflict() {
			return false, &SyntaxError{State: top.state, Token: token, Msg: "conflict cell, refusing to guess"}
		}

		action := cell.Actions[0]
		switch action.Kind {
		case lr.ShiftKind:
			tracer().Debugf("shift to state %d on %s", action.Target, sym)
			d.stack = append(d.stack, stackItem{state: action.Target, symbol: sym, span: token.Span()})
			token = tok.NextToken()

		case lr.AcceptKind:
			tracer().Debugf("accept")
			return true, nil

		case lr.ReduceKind:
			rule := d.Table.Grammar.Rule(action.Target)
			newState, err := d.reduce(rule)
			if err != nil {
				return false, err
			}
			tracer().Debugf("reduced %s, goto state %d", rule, newState)
		}
	}
}

// reduce pops rule.RHS's length worth of stack entries, extends their spans
// into the handle's span, consults GOTO for the resulting state, and pushes
// the reduced non-terminal.
func (d *Driver) reduce(rule lr.Rule) (int, error) {
	n := rule.Len()
	var span lr0gen.Span
	for i := 0; i < n; i++ {
		popped := d.stack[len(d.stack)-1]
		d.stack = d.stack[:len(d.stack)-1]
		if i == 0 {
			span = popped.span
		} else {
			span = span.Extend(popped.span)
		}
	}
	top := d.stack[len(d.stack)-1]
	newState, ok := d.Table.GotoAt(top.state, rule.LHS)
	if !ok {
		return 0, &SyntaxError{State: top.state, Msg: fmt.Sprintf("no GOTO entry for %s", rule.LHS)}
	}
	d.stack = append(d.stack, stackItem{state: newState, symbol: rule.LHS, span: span})
	return newState, nil
}
