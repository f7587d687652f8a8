package rules

import (
	"github.com/leapstack-labs/a11ytester/pkg/a11y"
	"github.com/leapstack-labs/a11ytester/pkg/dom"
)

func init() {
	register(OnclickUsesTabindex)
}

// OnclickUsesTabindex makes clickable non-interactive elements focusable.
var OnclickUsesTabindex = a11y.RuleDef{
	ID:          "onclick-uses-tabindex",
	Description: "Non-interactive elements with click handlers must have a tabIndex.",
	Rule: a11y.Check{
		Test: checkOnclickUsesTabindex,
		Msg: "You have a click handler on a non-interactive element but no `tabIndex` DOM property. " +
			"The element will not be navigable or interactive by keyboard users.",
		URL: "https://www.w3.org/WAI/ARIA/apg/practices/keyboard-interface/",
	},
	GoodExample: `<div onclick="go()" tabindex="0">Go</div>`,
	BadExample:  `<div onclick="go()">Go</div>`,
}

func checkOnclickUsesTabindex(tag string, props dom.Props, _ []*dom.Node, _ a11y.Options) bool {
	if !props.Has("onclick") || isInteractive(tag, props) || isHidden(props) {
		return true
	}
	_, ok := props.Int("tabindex")
	return ok
}
