package rules

import (
	"github.com/leapstack-labs/a11ytester/pkg/a11y"
	"github.com/leapstack-labs/a11ytester/pkg/dom"
)

func init() {
	register(ImgUsesAlt)
}

// ImgUsesAlt requires alt text on images. An empty alt marks a decorative
// image and passes; a nil or false alt is not rendered and fails.
var ImgUsesAlt = a11y.RuleDef{
	ID:          "img-uses-alt",
	Description: "Images must have an alt prop.",
	Rule: a11y.Check{
		TagName: "img",
		Test:    checkImgUsesAlt,
		Msg:     "The img does not have an `alt` prop, screen-readers will not know what it is",
		URL:     "https://dev.w3.org/html5/alt-techniques",
	},
	GoodExample: `<img src="cat.jpg" alt="A cat asleep on a chair">`,
	BadExample:  `<img src="cat.jpg">`,
}

func checkImgUsesAlt(_ string, props dom.Props, _ []*dom.Node, _ a11y.Options) bool {
	if props.Has("alt") {
		return true
	}
	return hasRole(props, "presentation") || hasRole(props, "none")
}
