package lr

import "fmt"

// ErrorKind enumerates the error taxonomy from spec §7. Grammar-construction
// kinds are fatal and returned at the call site; validation kinds
// (ShiftReduceConflict, ReduceReduceConflict) are non-fatal and reported as a
// stream, one per offending state (spec §4.4, §7).
type ErrorKind int

const (
	// Grammar construction.
	EmptyRules ErrorKind = iota
	EmptyTerminals
	EmptyNonTerminals
	DuplicateTerminal
	DuplicateNonTerminal
	OverlapBetweenSets
	LhsIsTerminal
	LhsIsNotNonTerminal
	UnknownSymbolInRhs
	StartSymbolNotFoundInRules
	StartSymbolIsNotNonTerminal
	UnreachableNonTerminal
	NonProductiveNonTerminal

	// Augmentation.
	GrammarIsNotAugmented

	// Validation (non-fatal, reported per state).
	ShiftReduceConflict
	ReduceReduceConflict
)

func (k ErrorKind) String() string {
	switch k {
	case EmptyRules:
		return "EmptyRules"
	case EmptyTerminals:
		return "EmptyTerminals"
	case EmptyNonTerminals:
		return "EmptyNonTerminals"
	case DuplicateTerminal:
		return "DuplicateTerminal"
	case DuplicateNonTerminal:
		return "DuplicateNonTerminal"
	case OverlapBetweenSets:
		return "OverlapBetweenSets"
	case LhsIsTerminal:
		return "LhsIsTerminal"
	case LhsIsNotNonTerminal:
		return "LhsIsNotNonTerminal"
	case UnknownSymbolInRhs:
		return "UnknownSymbolInRhs"
	case StartSymbolNotFoundInRules:
		return "StartSymbolNotFoundInRules"
	case StartSymbolIsNotNonTerminal:
		return "StartSymbolIsNotNonTerminal"
	case UnreachableNonTerminal:
		return "UnreachableNonTerminal"
	case NonProductiveNonTerminal:
		return "NonProductiveNonTerminal"
	case GrammarIsNotAugmented:
		return "GrammarIsNotAugmented"
	case ShiftReduceConflict:
		return "ShiftReduceConflict"
	case ReduceReduceConflict:
		return "ReduceReduceConflict"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// GrammarError is the single error type implementing the taxonomy of spec §7.
// Callers distinguish cases with Kind (or errors.Is against one of the
// sentinel values below), the way vartan-style grammar tools in the Go
// ecosystem key semantic errors off a small enum rather than minting one Go
// type per variant.
type GrammarError struct {
	Kind ErrorKind
	// Symbol, when non-empty, names the offending symbol (e.g. the
	// unreachable non-terminal, or the rhs symbol with no producer).
	Symbol Symbol
	// Rule, when Len() > 0, names the offending rule.
	Rule Rule
	// State, for validation errors, is the printed form of the offending
	// CFSM state (spec §7 "diagnostics include the offending state's
	// printed form").
	State string
	// Detail carries any free-form context.
	Detail string
}

func (e *GrammarError) Error() string {
	msg := e.Kind.String()
	switch {
	case e.Rule.Len() > 0:
		msg += ": " + e.Rule.String()
	case e.Symbol.Name != "":
		msg += ": " + e.Symbol.Name
	}
	if e.State != "" {
		msg += "\n" + e.State
	}
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

// Is supports errors.Is(err, lr.ErrEmptyRules) and friends by comparing Kind.
func (e *GrammarError) Is(target error) bool {
	other, ok := target.(*GrammarError)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// Sentinel values for use with errors.Is. They carry only a Kind; construct a
// fully-populated *GrammarError when raising an error, and compare against
// these with errors.Is when handling one.
var (
	ErrEmptyRules                  = &GrammarError{Kind: EmptyRules}
	ErrEmptyTerminals              = &GrammarError{Kind: EmptyTerminals}
	ErrEmptyNonTerminals           = &GrammarError{Kind: EmptyNonTerminals}
	ErrDuplicateTerminal           = &GrammarError{Kind: DuplicateTerminal}
	ErrDuplicateNonTerminal        = &GrammarError{Kind: DuplicateNonTerminal}
	ErrOverlapBetweenSets          = &GrammarError{Kind: OverlapBetweenSets}
	ErrLhsIsTerminal               = &GrammarError{Kind: LhsIsTerminal}
	ErrLhsIsNotNonTerminal         = &GrammarError{Kind: LhsIsNotNonTerminal}
	ErrUnknownSymbolInRhs          = &GrammarError{Kind: UnknownSymbolInRhs}
	ErrStartSymbolNotFoundInRules  = &GrammarError{Kind: StartSymbolNotFoundInRules}
	ErrStartSymbolIsNotNonTerminal = &GrammarError{Kind: StartSymbolIsNotNonTerminal}
	ErrUnreachableNonTerminal      = &GrammarError{Kind: UnreachableNonTerminal}
	ErrNonProductiveNonTerminal    = &GrammarError{Kind: NonProductiveNonTerminal}
	ErrGrammarIsNotAugmented       = &GrammarError{Kind: GrammarIsNotAugmented}
	ErrShiftReduceConflict         = &GrammarError{Kind: ShiftReduceConflict}
	ErrReduceReduceConflict        = &GrammarError{Kind: ReduceReduceConflict}
)
