package rules

import (
	"github.com/leapstack-labs/a11ytester/pkg/a11y"
	"github.com/leapstack-labs/a11ytester/pkg/dom"
)

func init() {
	register(ClickEventsHaveKeyEvents)
}

// ClickEventsHaveKeyEvents requires a keyboard handler next to onClick.
var ClickEventsHaveKeyEvents = a11y.RuleDef{
	ID:          "click-events-have-key-events",
	Description: "Click handlers must be paired with a keyboard handler.",
	Rule: a11y.Check{
		Test: checkClickHasKeyHandler,
		Msg:  keyboardHandlerMsg,
		URL:  keyboardHandlerURL,
	},
	GoodExample: `<div onclick="go()" onkeydown="go()">Go</div>`,
	BadExample:  `<div onclick="go()">Go</div>`,
}

func checkClickHasKeyHandler(_ string, props dom.Props, _ []*dom.Node, _ a11y.Options) bool {
	return !props.Has("onclick") || hasKeyHandler(props)
}
