package rules

import (
	"strings"

	"github.com/leapstack-labs/a11ytester/pkg/a11y"
	"github.com/leapstack-labs/a11ytester/pkg/dom"
)

func init() {
	register(RedundantAlt)
}

var defaultRedundantWords = []string{"image", "photo", "picture"}

// RedundantAlt flags alt text that repeats what screen-readers announce.
// Option "words" replaces the default word list.
var RedundantAlt = a11y.RuleDef{
	ID:          "redundant-alt",
	Description: "Alt text must not contain words like image, photo or picture.",
	Rule: a11y.Check{
		TagName: "img",
		Test:    checkRedundantAlt,
		Msg: "Screen-readers already announce `img` tags as an image, you don't need to use the words " +
			"`image`, `photo,` or `picture` (or any specified custom words) in the alt prop.",
		URL: "https://webaim.org/techniques/alttext/",
	},
	GoodExample: `<img src="cat.jpg" alt="A cat asleep on a chair">`,
	BadExample:  `<img src="cat.jpg" alt="Photo of a cat">`,
}

func checkRedundantAlt(_ string, props dom.Props, _ []*dom.Node, opts a11y.Options) bool {
	if isHidden(props) {
		return true
	}
	alt := strings.ToLower(props.String("alt"))
	words := a11y.GetStringSliceOption(opts, "words", defaultRedundantWords)
	for _, field := range strings.FieldsFunc(alt, func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	}) {
		for _, w := range words {
			if field == strings.ToLower(w) {
				return false
			}
		}
	}
	return true
}
