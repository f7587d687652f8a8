// Package a11y runs accessibility rules against every node of a mounted UI tree.
//
// # Rules
//
// A Rule is either a single Check or an AllOf conjunction of Checks. A Check
// with a TagName only applies to nodes with that tag (compared
// case-insensitively); every other node passes it without the predicate
// running. Rules only apply to host elements: composite components and text
// always pass.
//
// Rules are grouped into an immutable RuleSet, which the Evaluator receives at
// construction:
//
//	set, err := a11y.NewRuleSet(rules.All()...)
//	ev := a11y.NewEvaluator(set, a11y.WithLogger(logger))
//
// # Running
//
// Test mounts a tree, evaluates every node and returns nil when nothing
// failed, or a *ViolationError listing one Violation per failing node in
// document order:
//
//	err := ev.Test(ctx, dom.El("div", nil, dom.El("img", dom.Props{"src": "image.jpg"})))
//	var verr *a11y.ViolationError
//	if errors.As(err, &verr) {
//		// verr.Violations[0].Selector == "div > img"
//	}
//
// Any other error (a mount failure, a panicking predicate reported as
// *EvalError, a cancelled context) is fatal and carries no violations.
package a11y
