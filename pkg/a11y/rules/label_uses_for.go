package rules

import (
	"github.com/leapstack-labs/a11ytester/pkg/a11y"
	"github.com/leapstack-labs/a11ytester/pkg/dom"
)

func init() {
	register(LabelUsesFor)
}

// LabelUsesFor associates labels with form controls.
var LabelUsesFor = a11y.RuleDef{
	ID:          "label-uses-for",
	Description: "Labels must reference a control with htmlFor or wrap one.",
	Rule: a11y.Check{
		TagName: "label",
		Test:    checkLabelUsesFor,
		Msg:     "You should use the `htmlFor` attribute on a label element to specify which form element it is a label for.",
		URL:     "https://www.w3.org/WAI/tutorials/forms/labels/",
	},
	GoodExample: `<label for="email">Email</label>`,
	BadExample:  `<label>Email</label>`,
}

func checkLabelUsesFor(_ string, props dom.Props, children []*dom.Node, _ a11y.Options) bool {
	if props.Has("for") {
		return true
	}
	return containsTag(children, "input", "select", "textarea")
}
