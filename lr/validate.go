package lr

// StateDiagnostic pairs a CFSM state with the conflict found in it, if any
// (spec §6 "AugmentedGrammar -> stream<StateDiagnostic>"). Err is nil for a
// conflict-free state.
type StateDiagnostic struct {
	State *State
	Err   error
}

// ValidateLR0 runs the LR(0) conflict validator over every state of the
// automaton (spec §4.4) and returns one StateDiagnostic per state, in state
// ID order. The table can still be built from a conflicted automaton for
// inspection (spec §4.4 "Rationale") — validation is informative, not a
// gate.
func ValidateLR0(a *Automaton) []StateDiagnostic {
	diags := make([]StateDiagnostic, len(a.States))
	for i, s := range a.States {
		diags[i] = StateDiagnostic{State: s, Err: validateState(s)}
	}
	return diags
}

// StreamLR0 is the channel-based counterpart of ValidateLR0, for callers
// that want to start reacting to diagnostics before the whole automaton has
// been walked (spec §6 describes the validator's result as a "stream").
// The channel is closed after the last state has been sent.
func StreamLR0(a *Automaton) <-chan StateDiagnostic {
	out := make(chan StateDiagnostic)
	go func() {
		defer close(out)
		for _, s := range a.States {
			out <- StateDiagnostic{State: s, Err: validateState(s)}
		}
	}()
	return out
}

// Conflicts filters a diagnostic batch down to the states that actually
// conflict.
func Conflicts(diags []StateDiagnostic) []StateDiagnostic {
	var out []StateDiagnostic
	for _, d := range diags {
		if d.Err != nil {
			out = append(out, d)
		}
	}
	return out
}

// validateState implements spec §4.4: build a mapping from pre-dot symbol
// (ε for dot_pos = 0) to the action kind of that item, in item order. The
// first item to disagree with a previously seen key's kind raises a
// ShiftReduceConflict; two items sharing a key that both reduce raise a
// ReduceReduceConflict. One error is reported per offending state — the
// validator does not try to enumerate every conflict within a state.
func validateState(s *State) error {
	kindByKey := make(map[string]ActionKind)
	itemByKey := make(map[string]Item)

	for _, it := range s.Items {
		key := epsilon.Name
		if pre, ok := it.PreDotSymbol(); ok {
			key = pre.Name
		}

		prevKind, seen := kindByKey[key]
		if !seen {
			kindByKey[key] = it.Action
			itemByKey[key] = it
			continue
		}

		if prevKind != it.Action {
			return &GrammarError{
				Kind:   ShiftReduceConflict,
				State:  s.String(),
				Detail: itemByKey[key].String() + "  vs.  " + it.String(),
			}
		}
		if prevKind == ReduceKind && it.Action == ReduceKind {
			return &GrammarError{
				Kind:   ReduceReduceConflict,
				State:  s.String(),
				Detail: itemByKey[key].String() + "  vs.  " + it.String(),
			}
		}
	}
	return nil
}
