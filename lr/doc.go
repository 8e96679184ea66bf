/*
Package lr implements the core LR(0) parser-generator pipeline: grammars,
the LR(0) characteristic finite-state machine, the conflict validator, and
dense ACTION/GOTO table construction.

Building a Grammar

Grammars are specified either directly from a rule slice, or with a fluent
builder that reads like a textbook production list. Classification of a
symbol as terminal or non-terminal is derived automatically from left-hand-
side membership; this package does not support epsilon-productions.

Example:

    b := lr.NewGrammarBuilder("G")
    b.LHS("S").N("A").T("a").End()   // S -> A a
    b.LHS("A").N("B").N("D").End()   // A -> B D
    b.LHS("B").T("b").End()          // B -> b
    b.LHS("D").T("d").End()          // D -> d

    g, err := b.Grammar()

Automaton and Tables

Once a grammar has been built, ToAugmentedGrammar introduces the fresh
start symbol S' and rule S' -> S. BuildLR0Automaton then constructs the
canonical LR(0) automaton via CLOSURE and GOTO, ValidateLR0 reports any
shift/reduce or reduce/reduce conflicts found in it, and BuildTables derives
the dense ACTION and GOTO tables the automaton implies.

Example:

    ag := g.ToAugmentedGrammar()
    automaton, err := lr.BuildLR0Automaton(ag)
    table, err := lr.BuildTables(automaton)

The automaton is kept around rather than discarded after table
construction; it is useful for debugging and for rendering conflict
diagnostics against specific states.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lr
