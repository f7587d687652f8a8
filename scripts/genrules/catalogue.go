package main

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/a11ytester/pkg/a11y"
)

// ruleOptions documents the options each rule reads.
var ruleOptions = map[string]string{
	"redundant-alt": "`words` (list of strings) replaces the default image, photo, picture list.",
}

// renderCatalogue renders the rule catalogue page.
func renderCatalogue(defs []a11y.RuleDef) []byte {
	var sb strings.Builder

	sb.WriteString("<!-- Code generated by scripts/genrules. DO NOT EDIT. -->\n\n")
	sb.WriteString("# Accessibility Rules\n\n")
	fmt.Fprintf(&sb, "The built-in catalogue has **%d rules**. Disable or configure them in `a11y.yaml`:\n\n", len(defs))
	sb.WriteString("```yaml\nrules:\n  disabled: [no-access-key]\n  options:\n    redundant-alt:\n      words: [image, graphic]\n```\n\n")

	sb.WriteString("| Rule | Applies to | Description |\n|---|---|---|\n")
	for _, def := range defs {
		fmt.Fprintf(&sb, "| [`%s`](#%s) | %s | %s |\n", def.ID, def.ID, appliesTo(def.Rule), def.Description)
	}
	sb.WriteString("\n")

	for _, def := range defs {
		writeRuleDoc(&sb, def)
	}
	return []byte(sb.String())
}

// writeRuleDoc writes detailed documentation for a single rule.
func writeRuleDoc(sb *strings.Builder, def a11y.RuleDef) {
	fmt.Fprintf(sb, "## %s {#%s}\n\n", def.ID, def.ID)
	sb.WriteString(def.Description + "\n\n")

	checks := a11y.Checks(def.Rule)
	if len(checks) > 1 {
		sb.WriteString("Every check below must pass; each failing check is reported.\n\n")
	}
	for _, c := range checks {
		fmt.Fprintf(sb, "- %s", c.Msg)
		if c.URL != "" {
			fmt.Fprintf(sb, " ([reference](%s))", c.URL)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	if opts, ok := ruleOptions[def.ID]; ok {
		sb.WriteString("**Options:** " + opts + "\n\n")
	}
	if def.BadExample != "" {
		sb.WriteString("#### Bad\n\n```html\n" + def.BadExample + "\n```\n\n")
	}
	if def.GoodExample != "" {
		sb.WriteString("#### Good\n\n```html\n" + def.GoodExample + "\n```\n\n")
	}

	sb.WriteString("---\n\n")
}

// appliesTo lists the tags a rule is restricted to.
func appliesTo(r a11y.Rule) string {
	seen := map[string]bool{}
	var tags []string
	for _, c := range a11y.Checks(r) {
		if c.TagName == "" {
			return "all elements"
		}
		if !seen[c.TagName] {
			seen[c.TagName] = true
			tags = append(tags, "`"+c.TagName+"`")
		}
	}
	return strings.Join(tags, ", ")
}
