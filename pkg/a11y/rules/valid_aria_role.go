package rules

import (
	"github.com/leapstack-labs/a11ytester/pkg/a11y"
	"github.com/leapstack-labs/a11ytester/pkg/dom"
)

func init() {
	register(ValidAriaRole)
}

// validRoles lists the non-abstract WAI-ARIA 1.2 roles.
var validRoles = map[string]bool{
	"alert": true, "alertdialog": true, "application": true, "article": true, "banner": true,
	"blockquote": true, "button": true, "caption": true, "cell": true, "checkbox": true,
	"code": true, "columnheader": true, "combobox": true, "complementary": true,
	"contentinfo": true, "definition": true, "deletion": true, "dialog": true,
	"directory": true, "document": true, "emphasis": true, "feed": true, "figure": true,
	"form": true, "generic": true, "grid": true, "gridcell": true, "group": true,
	"heading": true, "img": true, "insertion": true, "link": true, "list": true,
	"listbox": true, "listitem": true, "log": true, "main": true, "marquee": true,
	"math": true, "menu": true, "menubar": true, "menuitem": true, "menuitemcheckbox": true,
	"menuitemradio": true, "meter": true, "navigation": true, "none": true, "note": true,
	"option": true, "paragraph": true, "presentation": true, "progressbar": true,
	"radio": true, "radiogroup": true, "region": true, "row": true, "rowgroup": true,
	"rowheader": true, "scrollbar": true, "search": true, "searchbox": true,
	"separator": true, "slider": true, "spinbutton": true, "status": true, "strong": true,
	"subscript": true, "superscript": true, "switch": true, "tab": true, "table": true,
	"tablist": true, "tabpanel": true, "term": true, "textbox": true, "time": true,
	"timer": true, "toolbar": true, "tooltip": true, "tree": true, "treegrid": true,
	"treeitem": true,
}

// ValidAriaRole rejects unknown and abstract roles.
var ValidAriaRole = a11y.RuleDef{
	ID:          "valid-aria-role",
	Description: "Role values must be valid, non-abstract ARIA roles.",
	Rule: a11y.Check{
		Test: checkValidAriaRole,
		Msg:  "Elements with ARIA roles must use a valid, non-abstract ARIA role.",
		URL:  "https://www.w3.org/TR/wai-aria/#role_definitions",
	},
	GoodExample: `<nav role="navigation"></nav>`,
	BadExample:  `<div role="datepicker"></div>`,
}

func checkValidAriaRole(_ string, props dom.Props, _ []*dom.Node, _ a11y.Options) bool {
	for _, r := range roles(props) {
		if !validRoles[r] {
			return false
		}
	}
	return true
}
