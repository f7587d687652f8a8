package rules

import (
	"github.com/leapstack-labs/a11ytester/pkg/a11y"
	"github.com/leapstack-labs/a11ytester/pkg/dom"
)

func init() {
	register(NoAccessKey)
}

// NoAccessKey forbids the accessKey prop.
var NoAccessKey = a11y.RuleDef{
	ID:          "no-access-key",
	Description: "Elements must not define access keys.",
	Rule: a11y.Check{
		Test: checkNoAccessKey,
		Msg: "No access key on an element. Inconsistencies between keyboard shortcuts and keyboard commands " +
			"used by screen-reader and keyboard only users create a11y complications.",
		URL: "https://webaim.org/techniques/keyboard/accesskey#spec",
	},
	GoodExample: `<button>Save</button>`,
	BadExample:  `<button accesskey="s">Save</button>`,
}

func checkNoAccessKey(_ string, props dom.Props, _ []*dom.Node, _ a11y.Options) bool {
	return !props.Has("accesskey")
}
