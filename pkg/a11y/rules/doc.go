// Package rules contains the vendored accessibility rule catalogue.
//
// Rules register themselves via init() functions, one rule per file. The
// catalogue is read-only after package initialization; callers receive a
// fresh, immutable set:
//
//	set := rules.Default()
//	ev := a11y.NewEvaluator(set)
//
// Catalogue:
//   - avoid-positive-tabindex: tabIndex must not be a positive integer
//   - button-role-space: role="button" needs an onKeyDown handler
//   - click-events-have-key-events: onClick needs a keyboard handler
//   - hidden-uses-tabindex: aria-hidden interactive elements leave the tab flow
//   - img-uses-alt: img needs an alt prop
//   - label-uses-for: label needs htmlFor or a nested control
//   - mouse-events-map-to-key-events: mouse handlers need keyboard equivalents
//   - no-access-key: accessKey is not allowed
//   - no-hash-href: links must not point to "#"
//   - no-unsupported-elements-use-aria: no ARIA on elements that do not support it
//   - onclick-uses-role: clickable non-interactive elements need a role
//   - onclick-uses-tabindex: clickable non-interactive elements need a tabIndex
//   - redundant-alt: alt text must not say "image", "photo" or "picture"
//   - tabindex-uses-button: focusable non-interactive elements need a role
//   - use-onblur-not-onchange: select uses onBlur rather than only onChange
//   - valid-aria-role: role values must be valid ARIA roles
package rules
