package rules

import (
	"github.com/leapstack-labs/a11ytester/pkg/a11y"
	"github.com/leapstack-labs/a11ytester/pkg/dom"
)

func init() {
	register(HiddenUsesTabindex)
}

// HiddenUsesTabindex removes aria-hidden elements from the tab flow.
var HiddenUsesTabindex = a11y.RuleDef{
	ID:          "hidden-uses-tabindex",
	Description: "Focusable elements hidden with aria-hidden must set tabIndex to -1.",
	Rule: a11y.Check{
		Test: checkHiddenUsesTabindex,
		Msg: "You have `aria-hidden=\"true\"` applied to an interactive element but have not removed it from the tab flow. " +
			"This could result in a hidden tab stop for users of screen-readers.",
		URL: "https://www.w3.org/TR/wai-aria/#aria-hidden",
	},
	GoodExample: `<button aria-hidden="true" tabindex="-1">Close</button>`,
	BadExample:  `<button aria-hidden="true">Close</button>`,
}

func checkHiddenUsesTabindex(tag string, props dom.Props, _ []*dom.Node, _ a11y.Options) bool {
	if !isHidden(props) {
		return true
	}
	n, ok := props.Int("tabindex")
	if ok {
		return n < 0
	}
	return !isInteractive(tag, props)
}
