package rules

import (
	"github.com/leapstack-labs/a11ytester/pkg/a11y"
	"github.com/leapstack-labs/a11ytester/pkg/dom"
)

func init() {
	register(MouseEventsMapToKeyEvents)
}

const mouseEventsURL = "https://www.w3.org/WAI/WCAG21/Understanding/keyboard.html"

// MouseEventsMapToKeyEvents requires a keyboard equivalent for each mouse
// handler. Every pairing is reported separately.
var MouseEventsMapToKeyEvents = a11y.RuleDef{
	ID:          "mouse-events-map-to-key-events",
	Description: "Mouse handlers must have keyboard equivalents.",
	Rule: a11y.AllOf{
		{
			Test: checkClickHasKeyHandler,
			Msg:  keyboardHandlerMsg,
			URL:  keyboardHandlerURL,
		},
		{
			Test: pairedHandler("onmouseover", "onfocus"),
			Msg:  "You have an `onMouseOver` handler but did not define an `onFocus` handler. Add it, so keyboard users see the same content.",
			URL:  mouseEventsURL,
		},
		{
			Test: pairedHandler("onmouseout", "onblur"),
			Msg:  "You have an `onMouseOut` handler but did not define an `onBlur` handler. Add it, so keyboard users see the same content.",
			URL:  mouseEventsURL,
		},
	},
	GoodExample: `<div onmouseover="show()" onfocus="show()" onmouseout="hide()" onblur="hide()">Tip</div>`,
	BadExample:  `<div onmouseover="show()" onmouseout="hide()">Tip</div>`,
}

// pairedHandler fails when mouse is set without key.
func pairedHandler(mouse, key string) a11y.TestFunc {
	return func(_ string, props dom.Props, _ []*dom.Node, _ a11y.Options) bool {
		return !props.Has(mouse) || props.Has(key)
	}
}
