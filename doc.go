/*
Package lr0gen is an LR(0) parser-generator toolkit.

Given a context-free grammar, it builds the canonical LR(0) characteristic
finite-state machine (CFSM), checks whether the grammar is LR(0), and emits a
shift/reduce/goto parsing table a runtime driver can execute. It is aimed at
compiler-course students and authors of small domain-specific languages who
want a transparent, inspectable pipeline from rules to tables, not a
production-grade LALR generator.

Package structure:

■ lr: grammars, augmentation, the LR(0) automaton builder, the conflict
validator and the ACTION/GOTO table construction. This is the core of the
module; everything else builds on top of it.

■ scanner: two small tokenizers (a stdlib text/scanner wrapper and a
lexmachine-backed adapter) that satisfy the Tokenizer contract the driver
expects.

■ driver: a shift/reduce driver that walks a parsing table against a
Tokenizer.

■ cmd/lr0gen, cmd/lr0repl: a batch CLI and an interactive REPL built on top
of the above.

The root package holds the Token/TokType/Span contract shared by scanner and
driver; package lr does not use it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lr0gen
