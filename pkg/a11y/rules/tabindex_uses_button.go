package rules

import (
	"github.com/leapstack-labs/a11ytester/pkg/a11y"
	"github.com/leapstack-labs/a11ytester/pkg/dom"
)

func init() {
	register(TabindexUsesButton)
}

// TabindexUsesButton requires a role on focusable non-interactive elements.
var TabindexUsesButton = a11y.RuleDef{
	ID:          "tabindex-uses-button",
	Description: "Focusable non-interactive elements must declare what they are.",
	Rule: a11y.Check{
		Test: checkTabindexUsesButton,
		Msg: "You have a `tabIndex` on a non-interactive element without a `role`. " +
			"Use a `button`, or give the element an interactive role.",
		URL: "https://www.w3.org/TR/wai-aria/#widget_roles",
	},
	GoodExample: `<div tabindex="0" role="button" onkeydown="go()">Go</div>`,
	BadExample:  `<div tabindex="0">Go</div>`,
}

func checkTabindexUsesButton(tag string, props dom.Props, _ []*dom.Node, _ a11y.Options) bool {
	n, ok := props.Int("tabindex")
	if !ok || n < 0 || isInteractive(tag, props) {
		return true
	}
	return len(roles(props)) > 0
}
