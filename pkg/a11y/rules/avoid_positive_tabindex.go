package rules

import (
	"github.com/leapstack-labs/a11ytester/pkg/a11y"
	"github.com/leapstack-labs/a11ytester/pkg/dom"
)

func init() {
	register(AvoidPositiveTabindex)
}

// AvoidPositiveTabindex forbids tabIndex values above zero.
var AvoidPositiveTabindex = a11y.RuleDef{
	ID:          "avoid-positive-tabindex",
	Description: "Positive tabIndex values override the document tab order.",
	Rule: a11y.Check{
		Test: checkAvoidPositiveTabindex,
		Msg:  "Avoid positive integer values for `tabIndex`.",
		URL:  "https://www.w3.org/TR/WCAG20-TECHS/F44.html",
	},
	GoodExample: `<div tabindex="0">Focusable</div>`,
	BadExample:  `<div tabindex="2">Focusable</div>`,
}

func checkAvoidPositiveTabindex(_ string, props dom.Props, _ []*dom.Node, _ a11y.Options) bool {
	n, ok := props.Int("tabindex")
	return !ok || n <= 0
}
