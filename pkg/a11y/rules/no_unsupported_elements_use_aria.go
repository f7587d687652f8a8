package rules

import (
	"strings"

	"github.com/leapstack-labs/a11ytester/pkg/a11y"
	"github.com/leapstack-labs/a11ytester/pkg/dom"
)

func init() {
	register(NoUnsupportedElementsUseAria)
}

// unsupportedAriaTags cannot take roles, states or properties.
var unsupportedAriaTags = map[string]bool{
	"base":     true,
	"col":      true,
	"colgroup": true,
	"head":     true,
	"html":     true,
	"link":     true,
	"meta":     true,
	"noscript": true,
	"param":    true,
	"script":   true,
	"style":    true,
	"template": true,
	"title":    true,
}

// NoUnsupportedElementsUseAria forbids ARIA on elements that ignore it.
var NoUnsupportedElementsUseAria = a11y.RuleDef{
	ID:          "no-unsupported-elements-use-aria",
	Description: "Elements that do not support ARIA must not set role or aria-* props.",
	Rule: a11y.Check{
		Test: checkNoUnsupportedElementsUseAria,
		Msg:  "This element does not support ARIA roles, states and properties.",
		URL:  "https://www.w3.org/TR/html-aria/#docconformance",
	},
	GoodExample: `<script src="app.js"></script>`,
	BadExample:  `<script src="app.js" aria-hidden="true"></script>`,
}

func checkNoUnsupportedElementsUseAria(tag string, props dom.Props, _ []*dom.Node, _ a11y.Options) bool {
	if !unsupportedAriaTags[tag] {
		return true
	}
	for _, k := range props.Keys() {
		if k == "role" || strings.HasPrefix(k, "aria-") {
			return false
		}
	}
	return true
}
