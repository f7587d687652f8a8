package rules

import (
	"github.com/leapstack-labs/a11ytester/pkg/a11y"
	"github.com/leapstack-labs/a11ytester/pkg/dom"
)

func init() {
	register(OnclickUsesRole)
}

// OnclickUsesRole requires a role on clickable non-interactive elements.
var OnclickUsesRole = a11y.RuleDef{
	ID:          "onclick-uses-role",
	Description: "Non-interactive elements with click handlers must have a role.",
	Rule: a11y.Check{
		Test: checkOnclickUsesRole,
		Msg: "You have a click handler on a non-interactive element but no `role` DOM property. " +
			"It will be unclear what this element is supposed to do to a screen-reader user.",
		URL: "https://www.w3.org/TR/wai-aria/#role_definitions",
	},
	GoodExample: `<div onclick="go()" role="button">Go</div>`,
	BadExample:  `<div onclick="go()">Go</div>`,
}

func checkOnclickUsesRole(tag string, props dom.Props, _ []*dom.Node, _ a11y.Options) bool {
	if !props.Has("onclick") || isInteractive(tag, props) || isHidden(props) {
		return true
	}
	return len(roles(props)) > 0
}
