package a11y

import (
	"strings"

	"github.com/leapstack-labs/a11ytester/pkg/dom"
)

// TestFunc is an accessibility predicate. It returns false when the node
// violates the check.
type TestFunc func(tag string, props dom.Props, children []*dom.Node, opts Options) bool

// Rule is either a Check or an AllOf.
type Rule interface {
	isRule()
}

// Check is a single predicate record.
type Check struct {
	// TagName restricts the check to one tag; empty applies to every node.
	TagName string
	Test    TestFunc
	Msg     string
	URL     string
}

// AllOf is an ordered conjunction of checks. It passes iff every check passes.
type AllOf []Check

func (Check) isRule() {}
func (AllOf) isRule() {}

// AppliesTo reports whether the check runs against a node with the given tag.
func (c Check) AppliesTo(tag string) bool {
	return c.TagName == "" || strings.EqualFold(c.TagName, tag)
}

// run evaluates the check against node; a tag mismatch is a pass.
func (c Check) run(node *dom.Node, opts Options) bool {
	if !c.AppliesTo(node.Name()) {
		return true
	}
	return c.Test(node.Name(), node.Props(), node.Children(), opts)
}

func (c Check) failure() FailedRule {
	return FailedRule{Msg: c.Msg, URL: c.URL}
}

// Checks returns the checks making up a rule, in order.
func Checks(r Rule) []Check {
	switch v := r.(type) {
	case Check:
		return []Check{v}
	case AllOf:
		return append([]Check(nil), v...)
	default:
		return nil
	}
}
