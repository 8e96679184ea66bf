package lr

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/maps/hashmap"
)

// === Closure and Goto set operations ========================================
//
// Refer to "Crafting a Compiler" by Charles N. Fisher & Richard J. LeBlanc,
// Jr., §6.2.1 LR(0) Parsing — the same reference the teacher corpus cites.

// closure computes CLOSURE(I) (spec §4.3): starting from I, for every
// incomplete item seen so far whose dot-symbol X is a non-terminal, add
// item(rule, 0) for every rule with lhs X, once per distinct X. It returns a
// new set; I itself is left untouched.
func closure(g *Grammar, i *itemSet) *itemSet {
	result := newItemSet(i.items()...)
	expanded := newSymbolSet()

	result.keys.IterateOnce()
	for result.keys.Next() {
		it := result.byKey[result.keys.Item()]
		x, ok := it.DotSymbol()
		if !ok || g.IsTerminal(x) {
			continue
		}
		if !expanded.add(x) {
			continue
		}
		for _, r := range g.RulesFor(x) {
			result.add(NewItem(r, 0))
		}
	}
	return result
}

// gotoSet computes GOTO(I, X) (spec §4.3): advance every incomplete item of
// items whose dot-symbol is x, then close the result.
func gotoSet(g *Grammar, items []Item, x Symbol) *itemSet {
	advanced := newItemSet()
	for _, it := range items {
		sym, ok := it.DotSymbol()
		if ok && sym == x {
			advanced.add(it.Advance())
		}
	}
	return closure(g, advanced)
}

// === CFSM construction =======================================================

// Automaton is the canonical LR(0) characteristic finite-state machine for
// an augmented grammar (spec §4.3). Build one with BuildLR0Automaton.
type Automaton struct {
	Grammar *Grammar
	States  []*State
	seen    *hashmap.Map // itemSet.canonicalKey() -> *State, for dedup
}

// State0 returns the automaton's initial state (always ID 0).
func (a *Automaton) State0() *State { return a.States[0] }

// BuildLR0Automaton builds the canonical LR(0) automaton for g, augmenting g
// first if it has not been augmented yet (spec §4.3).
//
// The algorithm is a worklist over states: for each state q, walk its items
// once and, for each unique dot-symbol X in first-occurrence order, compute
// J = GOTO(q.Items, X). If a state with item set J already exists, only a
// transition is recorded; otherwise a new state is appended to both the
// state list and the dedup index before continuing. This terminates because
// the number of distinct item sets over a fixed grammar is finite, and
// BuildLR0Automaton only ever appends to "seen" (spec §4.3, §5 termination).
//
// The worklist is a gods arraylist.List consumed front-to-back by index, and
// the dedup index a gods maps/hashmap.Map keyed by canonical item-set
// string, the same family of containers the teacher's buildCFSM builds its
// CFSM.states worklist and state lookup on (treeset/arraylist there; a
// hashmap here gives O(1) key lookup instead of the teacher's linear
// item-set-equality scan, since canonicalKey() already gives a stable key to
// look up by).
func BuildLR0Automaton(g *Grammar) (*Automaton, error) {
	ag := g
	if !ag.IsAugmented() {
		ag = ag.ToAugmentedGrammar()
	}
	startRule, err := ag.StartRule()
	if err != nil {
		return nil, err
	}

	a := &Automaton{Grammar: ag, seen: hashmap.New()}
	closure0 := closure(ag, newItemSet(NewItem(startRule, 0)))
	initial := a.addState(closure0)

	tracer().Debugf("=== build LR(0) automaton ===========================")
	worklist := arraylist.New()
	worklist.Add(initial)
	for i := 0; i < worklist.Size(); i++ {
		v, _ := worklist.Get(i)
		q := v.(*State)
		tracer().Debugf("--- state %d ---", q.ID)

		dotSymbolsSeen := newSymbolSet()
		for _, it := range q.Items {
			x, ok := it.DotSymbol()
			if !ok || !dotSymbolsSeen.add(x) {
				continue
			}

			J := gotoSet(ag, q.Items, x)
			if J.size() == 0 {
				continue
			}

			key := J.canonicalKey()
			if existing, ok := a.seen.Get(key); ok {
				a.addTransition(q.ID, existing.(*State).ID, x)
				continue
			}

			next := a.addState(J)
			a.addTransition(q.ID, next.ID, x)
			worklist.Add(next)
		}
	}
	return a, nil
}

// addState inserts a new state for the given item set, or returns the
// existing one if an equal item set is already present (spec §4.3 step 4).
func (a *Automaton) addState(items *itemSet) *State {
	key := items.canonicalKey()
	if s, ok := a.seen.Get(key); ok {
		return s.(*State)
	}
	s := &State{ID: len(a.States), Items: items.items()}
	a.seen.Put(key, s)
	a.States = append(a.States, s)
	return s
}

func (a *Automaton) addTransition(from, to int, sym Symbol) {
	s := a.States[from]
	s.Transitions = append(s.Transitions, Transition{From: from, To: to, Symbol: sym})
	tracer().Debugf("transition %d --%s--> %d", from, sym.Name, to)
}

// AcceptingState returns the state containing the complete item S' -> S •
// (spec §8 property 6: exactly one such state exists), or nil if none does
// (which can only happen for a grammar that was never augmented and thus has
// no S' rule at all).
func (a *Automaton) AcceptingState() *State {
	for _, s := range a.States {
		for _, it := range s.Items {
			if it.Action == AcceptKind {
				return s
			}
		}
	}
	return nil
}
