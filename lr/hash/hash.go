// Package hash computes deterministic content hashes of grammars and
// parsing tables, backing the determinism contract (spec §5, §8) and the
// lr0gen CLI's -hash flag.
package hash

import (
	"strconv"

	"github.com/cnf/structhash"

	"github.com/go-lrtools/lr0gen/lr"
)

// hashVersion is the structhash struct-tag version passed to every call in
// this package; bump it if snapshot shapes below change incompatibly.
const hashVersion = 1

// Of returns a deterministic hex digest of v's canonical field values. v
// must be a *lr.Grammar or a *lr.ParsingTable; anything else is hashed via
// structhash directly, which is useful in tests comparing ad-hoc values.
func Of(v interface{}) (string, error) {
	switch x := v.(type) {
	case *lr.Grammar:
		return structhash.Hash(snapshotGrammar(x), hashVersion)
	case *lr.ParsingTable:
		return structhash.Hash(snapshotTable(x), hashVersion)
	default:
		return structhash.Hash(v, hashVersion)
	}
}

// grammarSnapshot flattens a Grammar into plain, structhash-friendly fields.
// Field order does not matter to structhash (it sorts keys internally), but
// it must only ever contain values derived from exported accessors so the
// digest reflects what callers can actually observe (spec §5 "Determinism
// contract").
type grammarSnapshot struct {
	Name         string
	Start        string
	Terminals    []string
	NonTerminals []string
	Rules        []string
}

func snapshotGrammar(g *lr.Grammar) grammarSnapshot {
	return grammarSnapshot{
		Name:         g.Name(),
		Start:        g.Start().String(),
		Terminals:    symbolNames(g.Terminals()),
		NonTerminals: symbolNames(g.NonTerminals()),
		Rules:        ruleStrings(g.Rules()),
	}
}

type tableSnapshot struct {
	Terminals    []string
	NonTerminals []string
	Action       [][]string
	Goto         [][]string
}

func snapshotTable(t *lr.ParsingTable) tableSnapshot {
	n := t.NStates()
	action := make([][]string, n)
	goTo := make([][]string, n)

	for s := 0; s < n; s++ {
		row := make([]string, len(t.Terminals))
		for i, sym := range t.Terminals {
			row[i] = t.ActionAt(s, sym).String()
		}
		action[s] = row

		gr := make([]string, 0, len(t.NonTerminals)-1)
		for _, sym := range t.NonTerminals[1:] { // drop S'
			if target, ok := t.GotoAt(s, sym); ok {
				gr = append(gr, strconv.Itoa(target))
			} else {
				gr = append(gr, "-")
			}
		}
		goTo[s] = gr
	}

	return tableSnapshot{
		Terminals:    symbolNames(t.Terminals),
		NonTerminals: symbolNames(t.NonTerminals),
		Action:       action,
		Goto:         goTo,
	}
}

func symbolNames(syms []lr.Symbol) []string {
	out := make([]string, len(syms))
	for i, s := range syms {
		out[i] = s.String()
	}
	return out
}

func ruleStrings(rules []lr.Rule) []string {
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.String()
	}
	return out
}
