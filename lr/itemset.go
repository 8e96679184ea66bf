package lr

import (
	"sort"
	"strings"

	"github.com/go-lrtools/lr0gen/lr/iteratable"
)

// itemSet is an insertion-ordered, deduplicated collection of items, backed
// by an iteratable.Set of item keys. Go slices (Rule.RHS) make Item
// non-comparable, so the set itself stores keys and a side table maps keys
// back to the items they were built from; every operation below keeps the
// two in lock-step.
type itemSet struct {
	keys *iteratable.Set[string]
	byKey map[string]Item
}

func newItemSet(items ...Item) *itemSet {
	s := &itemSet{keys: iteratable.NewSet[string](), byKey: make(map[string]Item)}
	for _, it := range items {
		s.add(it)
	}
	return s
}

// add inserts it if not already present (by (Rule, DotPos) identity),
// reporting whether it was newly added.
func (s *itemSet) add(it Item) bool {
	k := it.key()
	if !s.keys.Add(k) {
		return false
	}
	s.byKey[k] = it
	return true
}

// items returns the set's items in insertion order (spec §4.3 "Determinism:
// process items in insertion order").
func (s *itemSet) items() []Item {
	out := make([]Item, s.keys.Size())
	for i, k := range s.keys.Values() {
		out[i] = s.byKey[k]
	}
	return out
}

func (s *itemSet) size() int { return s.keys.Size() }

// equals reports whether s and other contain exactly the same items,
// ignoring order (spec §3 "State... equality and hashing... use the item
// set, order-independent").
func (s *itemSet) equals(other *itemSet) bool { return s.keys.Equals(other.keys) }

// canonicalKey returns an order-independent string identifying this item
// set, used to deduplicate states during automaton construction.
func (s *itemSet) canonicalKey() string {
	keys := append([]string(nil), s.keys.Values()...)
	sort.Strings(keys)
	return strings.Join(keys, "\x1f")
}
