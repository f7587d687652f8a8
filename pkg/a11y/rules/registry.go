package rules

import (
	"cmp"
	"slices"

	"github.com/leapstack-labs/a11ytester/pkg/a11y"
)

// catalogue is populated by init() functions and never modified afterwards.
var catalogue = map[string]a11y.RuleDef{}

func register(def a11y.RuleDef) {
	if _, dup := catalogue[def.ID]; dup {
		panic("rules: duplicate rule " + def.ID)
	}
	catalogue[def.ID] = def
}

// All returns every catalogue rule sorted by ID.
func All() []a11y.RuleDef {
	defs := make([]a11y.RuleDef, 0, len(catalogue))
	for _, def := range catalogue {
		defs = append(defs, def)
	}
	slices.SortFunc(defs, func(a, b a11y.RuleDef) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return defs
}

// Get returns a catalogue rule by its ID.
func Get(id string) (a11y.RuleDef, bool) {
	def, ok := catalogue[id]
	return def, ok
}

// Count returns the number of catalogue rules.
func Count() int {
	return len(catalogue)
}

// Default returns a new rule set holding the whole catalogue.
func Default() *a11y.RuleSet {
	return a11y.MustRuleSet(All()...)
}
