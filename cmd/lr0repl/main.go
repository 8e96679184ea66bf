/*
Command lr0repl is an interactive shell for experimenting with the LR(0)
table builder: type a sentence of the built-in arithmetic-expression
grammar and watch the shift/reduce driver accept or reject it, print the
table with ":table", or leave with ":quit". The grammar is fixed; there is
no command for loading another grammar or adding rules.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/scanner"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	lr0gen "github.com/go-lrtools/lr0gen"
	"github.com/go-lrtools/lr0gen/driver"
	"github.com/go-lrtools/lr0gen/lr"
	gscanner "github.com/go-lrtools/lr0gen/scanner"
)

func tracer() tracing.Trace {
	return tracing.Select("lr0gen.cmd")
}

// makeExprGrammar builds the classic ambiguous-under-LR(0) arithmetic
// grammar used as spec S1: terminals {number, +, *, (, )}.
func makeExprGrammar() *lr.Grammar {
	b := lr.NewGrammarBuilder("expr")
	b.LHS("exp").N("exp").T("+").N("term").End()
	b.LHS("exp").N("term").End()
	b.LHS("term").N("term").T("*").N("factor").End()
	b.LHS("term").N("factor").End()
	b.LHS("factor").T("(").N("exp").T(")").End()
	b.LHS("factor").T("number").End()
	g, err := b.Grammar()
	if err != nil {
		panic(err)
	}
	return g
}

func termFor(tt lr0gen.TokType) (lr.Symbol, bool) {
	switch rune(tt) {
	case scanner.Int:
		return lr.NewSymbol("number"), true
	case '+', '*', '(', ')':
		return lr.NewSymbol(string(rune(tt))), true
	case scanner.EOF:
		return lr.NewSymbol(lr.EndSymbolName), true
	}
	return lr.Symbol{}, false
}

func main() {
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	flag.Parse()

	gtrace.SyntaxTracer = gologadapter.New()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))

	pterm.Info.Println("Welcome to lr0repl — type an expression, or :quit")

	g := makeExprGrammar()
	table, diags := buildTable(g)
	if len(diags) > 0 {
		pterm.Warning.Printfln("%d conflicting state(s) in the default grammar", len(diags))
	}

	repl, err := readline.New("lr0> ")
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	defer repl.Close()

	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF on ^D
			break
		}
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case line == ":quit":
			return
		case line == ":table":
			fmt.Print(table.String())
			continue
		}

		d := driver.NewDriver(table, termFor)
		tok := gscanner.GoTokenizer("lr0repl", strings.NewReader(line))
		accepted, err := d.Run(tok)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if accepted {
			pterm.Success.Println("accepted")
		} else {
			pterm.Warning.Println("rejected")
		}
	}
	pterm.Info.Println("Good bye!")
}

func buildTable(g *lr.Grammar) (*lr.ParsingTable, []lr.StateDiagnostic) {
	ag := g.ToAugmentedGrammar()
	automaton, err := lr.BuildLR0Automaton(ag)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	diags := lr.Conflicts(lr.ValidateLR0(automaton))
	table, err := lr.BuildTables(automaton)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	return table, diags
}
