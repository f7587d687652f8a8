package rules

import (
	"github.com/leapstack-labs/a11ytester/pkg/a11y"
	"github.com/leapstack-labs/a11ytester/pkg/dom"
)

func init() {
	register(ButtonRoleSpace)
}

// ButtonRoleSpace requires a keydown handler on elements acting as buttons.
var ButtonRoleSpace = a11y.RuleDef{
	ID:          "button-role-space",
	Description: "Elements with role=\"button\" must respond to the Space key.",
	Rule: a11y.Check{
		Test: checkButtonRoleSpace,
		Msg: "You have `role=\"button\"` but did not define an `onKeyDown` handler. " +
			"Add it, and have the \"Space\" key do the same thing as an `onClick` handler.",
		URL: "https://www.w3.org/WAI/ARIA/apg/patterns/button/",
	},
	GoodExample: `<span role="button" onkeydown="press(event)">Save</span>`,
	BadExample:  `<span role="button">Save</span>`,
}

func checkButtonRoleSpace(tag string, props dom.Props, _ []*dom.Node, _ a11y.Options) bool {
	if tag == "button" || !hasRole(props, "button") {
		return true
	}
	return props.Has("onkeydown")
}
