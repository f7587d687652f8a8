package rules

import (
	"strings"

	"github.com/leapstack-labs/a11ytester/pkg/a11y"
	"github.com/leapstack-labs/a11ytester/pkg/dom"
)

func init() {
	register(NoHashHref)
}

// NoHashHref flags links that do not navigate.
var NoHashHref = a11y.RuleDef{
	ID:          "no-hash-href",
	Description: "Links must not use \"#\" as their href.",
	Rule: a11y.Check{
		TagName: "a",
		Test:    checkNoHashHref,
		Msg:     "Links should not point to `#`. Use a `button` for actions that do not navigate.",
		URL:     "https://www.w3.org/TR/WCAG20-TECHS/F42.html",
	},
	GoodExample: `<a href="/about">About</a>`,
	BadExample:  `<a href="#">About</a>`,
}

func checkNoHashHref(_ string, props dom.Props, _ []*dom.Node, _ a11y.Options) bool {
	return strings.TrimSpace(props.String("href")) != "#"
}
