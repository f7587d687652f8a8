package a11y

import (
	"fmt"
	"maps"
	"strings"
)

// RuleDef is a named rule with its documentation.
type RuleDef struct {
	ID          string // Unique identifier, e.g. "img-uses-alt"
	Description string // Human-readable description
	Rule        Rule   // Check or AllOf

	// Markup examples; the root element of GoodExample passes and the root
	// element of BadExample fails.
	GoodExample string
	BadExample  string
}

// RuleSet is an immutable, ordered set of rules. Iteration order is the order
// the definitions were given in.
type RuleSet struct {
	defs    []RuleDef
	index   map[string]int
	options map[string]Options
}

// NewRuleSet validates defs and builds a rule set. Tag names are lower-cased.
func NewRuleSet(defs ...RuleDef) (*RuleSet, error) {
	s := &RuleSet{
		defs:    make([]RuleDef, 0, len(defs)),
		index:   make(map[string]int, len(defs)),
		options: make(map[string]Options),
	}
	for i, def := range defs {
		if def.ID == "" {
			return nil, fmt.Errorf("rule %d: id is required", i)
		}
		if _, dup := s.index[def.ID]; dup {
			return nil, fmt.Errorf("duplicate rule id %q", def.ID)
		}
		rule, err := normalizeRule(def.Rule)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", def.ID, err)
		}
		def.Rule = rule
		s.index[def.ID] = len(s.defs)
		s.defs = append(s.defs, def)
	}
	return s, nil
}

// MustRuleSet is like NewRuleSet but panics on invalid definitions.
func MustRuleSet(defs ...RuleDef) *RuleSet {
	s, err := NewRuleSet(defs...)
	if err != nil {
		panic(err)
	}
	return s
}

func normalizeCheck(c Check) (Check, error) {
	if c.Test == nil {
		return c, fmt.Errorf("check has no test")
	}
	c.TagName = strings.ToLower(c.TagName)
	return c, nil
}

func normalizeRule(r Rule) (Rule, error) {
	switch v := r.(type) {
	case Check:
		return normalizeCheck(v)
	case AllOf:
		if len(v) == 0 {
			return nil, fmt.Errorf("all-of rule has no checks")
		}
		out := make(AllOf, len(v))
		for i, c := range v {
			nc, err := normalizeCheck(c)
			if err != nil {
				return nil, fmt.Errorf("check %d: %w", i, err)
			}
			out[i] = nc
		}
		return out, nil
	case nil:
		return nil, fmt.Errorf("rule is required")
	default:
		return nil, fmt.Errorf("unsupported rule type %T", r)
	}
}

// Len returns the number of rules.
func (s *RuleSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.defs)
}

// IDs returns the rule IDs in iteration order.
func (s *RuleSet) IDs() []string {
	ids := make([]string, s.Len())
	for i := range ids {
		ids[i] = s.defs[i].ID
	}
	return ids
}

// All returns a copy of the rule definitions in iteration order.
func (s *RuleSet) All() []RuleDef {
	if s == nil {
		return nil
	}
	return append([]RuleDef(nil), s.defs...)
}

// Get returns a rule by its ID.
func (s *RuleSet) Get(id string) (RuleDef, bool) {
	if s == nil {
		return RuleDef{}, false
	}
	i, ok := s.index[id]
	if !ok {
		return RuleDef{}, false
	}
	return s.defs[i], true
}

// Options returns the configured options for a rule, or nil.
func (s *RuleSet) Options(id string) Options {
	if s == nil {
		return nil
	}
	return s.options[id]
}

// derive builds a new set from defs, carrying options for the rules kept.
func (s *RuleSet) derive(defs []RuleDef) (*RuleSet, error) {
	next, err := NewRuleSet(defs...)
	if err != nil {
		return nil, err
	}
	for id, opts := range s.options {
		if _, ok := next.index[id]; ok {
			next.options[id] = opts
		}
	}
	return next, nil
}

// Without returns a set without the given rule IDs. Unknown IDs are ignored.
func (s *RuleSet) Without(ids ...string) *RuleSet {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	var kept []RuleDef
	for _, def := range s.defs {
		if !drop[def.ID] {
			kept = append(kept, def)
		}
	}
	// kept is a subset of valid definitions
	next, _ := s.derive(kept)
	return next
}

// Only returns a set restricted to the given IDs, keeping iteration order.
func (s *RuleSet) Only(ids ...string) (*RuleSet, error) {
	keep := make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, ok := s.index[id]; !ok {
			return nil, fmt.Errorf("unknown rule %q", id)
		}
		keep[id] = true
	}
	var kept []RuleDef
	for _, def := range s.defs {
		if keep[def.ID] {
			kept = append(kept, def)
		}
	}
	return s.derive(kept)
}

// With returns a set with defs appended.
func (s *RuleSet) With(defs ...RuleDef) (*RuleSet, error) {
	return s.derive(append(s.All(), defs...))
}

// WithOptions returns a set whose rule id receives opts.
func (s *RuleSet) WithOptions(id string, opts Options) (*RuleSet, error) {
	if _, ok := s.index[id]; !ok {
		return nil, fmt.Errorf("unknown rule %q", id)
	}
	next, err := s.derive(s.defs)
	if err != nil {
		return nil, err
	}
	next.options[id] = maps.Clone(opts)
	return next, nil
}
