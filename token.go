package lr0gen

import "fmt"

// --- A general-purpose token contract --------------------------------------
//
// spec §6 describes tokens as "opaque to the core beyond the invariant that
// each token's type equals one of the grammar's terminals". This file pins
// that contract down so that the scanner and driver packages share one
// definition of it.

// TokType identifies the category of a Token, i.e. which terminal symbol it
// represents. Applications (or the scanner adapters in package scanner)
// define the concrete values; the core grammar machinery never interprets
// them beyond comparing a terminal's assigned value.
type TokType int

// TokTypeStringer renders a TokType for diagnostics. A scanner/grammar pairing
// that wants readable error messages should provide one.
type TokTypeStringer func(TokType) string

// Token is produced by a scanner and consumed by the driver. An example for a
// floating point literal:
//
//	TokType = Float     // category assigned by the application
//	Lexeme  = "3.1416"  // raw text as it appeared in the input
//	Value   = 3.1416    // converted value, set by the scanner or left nil
//	Span    = (67…73)   // input byte range
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// TokenRetriever looks up a previously seen token by input position. Useful
// for drivers that want to re-inspect consumed input without re-scanning.
type TokenRetriever func(uint64) Token

// --- Spans -------------------------------------------------------------

// Span captures an input byte range [from, to). Every terminal and
// non-terminal the driver pushes onto its stack carries one, so that
// reductions can report the input range a handle covered.
type Span [2]uint64

// From returns the start of the span.
func (s Span) From() uint64 { return s[0] }

// To returns the position just behind the end of the span.
func (s Span) To() uint64 { return s[1] }

// Len returns the length of the span.
func (s Span) Len() uint64 { return s[1] - s[0] }

// IsNull reports whether the span is the zero span.
func (s Span) IsNull() bool { return s == Span{} }

// Extend grows s to also cover other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
