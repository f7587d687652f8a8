package rules

import (
	"strings"

	"github.com/leapstack-labs/a11ytester/pkg/dom"
)

const (
	keyboardHandlerURL = "https://www.w3.org/WAI/GL/wiki/Making_actions_keyboard_accessible_by_using_keyboard_event_handlers_with_WAI-ARIA_controls"
	keyboardHandlerMsg = "You have an `onClick` handler but did not define an `onKeyDown`, `onKeyUp` or `onKeyPress` handler. " +
		"Add it, and have the \"Space\" key do the same thing as an `onClick` handler."
)

// interactiveTags are focusable and operable without extra ARIA.
var interactiveTags = map[string]bool{
	"button":   true,
	"select":   true,
	"textarea": true,
	"option":   true,
	"summary":  true,
	"details":  true,
}

func isInteractive(tag string, props dom.Props) bool {
	switch tag {
	case "a", "area":
		return props.Has("href")
	case "input":
		return !strings.EqualFold(props.String("type"), "hidden")
	}
	return interactiveTags[tag]
}

func hasKeyHandler(props dom.Props) bool {
	return props.Has("onkeydown") || props.Has("onkeyup") || props.Has("onkeypress")
}

func isHidden(props dom.Props) bool {
	return strings.EqualFold(props.String("aria-hidden"), "true")
}

// roles splits the role prop into lower-case tokens.
func roles(props dom.Props) []string {
	return strings.Fields(strings.ToLower(props.String("role")))
}

func hasRole(props dom.Props, role string) bool {
	for _, r := range roles(props) {
		if r == role {
			return true
		}
	}
	return false
}

// containsTag reports whether any node in nodes, or a descendant, has one of tags.
func containsTag(nodes []*dom.Node, tags ...string) bool {
	found := false
	for _, n := range nodes {
		n.Walk(func(d *dom.Node) bool {
			for _, t := range tags {
				if d.Kind() == dom.HostElement && d.Name() == t {
					found = true
				}
			}
			return !found
		})
		if found {
			return true
		}
	}
	return false
}
