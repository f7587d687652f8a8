package rules

import (
	"github.com/leapstack-labs/a11ytester/pkg/a11y"
	"github.com/leapstack-labs/a11ytester/pkg/dom"
)

func init() {
	register(UseOnblurNotOnchange)
}

// UseOnblurNotOnchange keeps select elements from acting on every keystroke.
var UseOnblurNotOnchange = a11y.RuleDef{
	ID:          "use-onblur-not-onchange",
	Description: "Select elements must handle onBlur when they handle onChange.",
	Rule: a11y.Check{
		TagName: "select",
		Test:    checkUseOnblurNotOnchange,
		Msg: "onBlur should be used instead of onChange, unless absolutely necessary and it causes no negative " +
			"consequences for keyboard only or screen reader users.",
		URL: "https://www.w3.org/WAI/WCAG21/Understanding/on-input.html",
	},
	GoodExample: `<select onchange="pick()" onblur="pick()"><option>A</option></select>`,
	BadExample:  `<select onchange="pick()"><option>A</option></select>`,
}

func checkUseOnblurNotOnchange(_ string, props dom.Props, _ []*dom.Node, _ a11y.Options) bool {
	return !props.Has("onchange") || props.Has("onblur")
}
