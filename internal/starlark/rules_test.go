package starlark

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/a11ytester/pkg/a11y"
	"github.com/leapstack-labs/a11ytester/pkg/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const htmlLangRules = `
def has_lang(tag, props, children, options):
    return "lang" in props

def has_title(tag, props, children):
    return len([c for c in children if c.name == "head"]) > 0

rule("html-has-lang", check(has_lang, msg = "html needs a lang", url = "https://example.com/lang", tag = "html"))
rule("html-has-head", check(has_title, msg = "html needs a head", tag = "HTML"), description = "documents have a head")
`

func mountFirst(t *testing.T, markup, selector string) *dom.Node {
	t.Helper()
	w, err := dom.MountHTML(context.Background(), markup)
	require.NoError(t, err)
	n, err := w.First(selector)
	require.NoError(t, err)
	require.NotNil(t, n, "no node matches %q", selector)
	return n
}

func TestLoadSource(t *testing.T) {
	defs, err := NewLoader(nil).LoadSource("html.star", []byte(htmlLangRules))
	require.NoError(t, err)
	require.Len(t, defs, 2)

	assert.Equal(t, "html-has-lang", defs[0].ID)
	assert.Equal(t, "html-has-head", defs[1].ID)
	assert.Equal(t, "documents have a head", defs[1].Description)

	check, ok := defs[0].Rule.(a11y.Check)
	require.True(t, ok, "expected a11y.Check, got %T", defs[0].Rule)
	assert.Equal(t, "html", check.TagName)
	assert.Equal(t, "html needs a lang", check.Msg)
	assert.Equal(t, "https://example.com/lang", check.URL)
}

func TestLoadSource_Predicates(t *testing.T) {
	defs, err := NewLoader(nil).LoadSource("div.star", []byte(`
def labelled(tag, props, children, options):
    return "aria-label" in props

def short(tag, props, children, options):
    return len(children) <= options.get("max", 2)

def any_tag(tag):
    return tag != "marquee"

rule("labelled", check(labelled, msg = "needs a label", tag = "nav"))
rule("short", check(short, msg = "too many children"))
rule("no-marquee", check(any_tag, msg = "marquee is obsolete"))
`))
	require.NoError(t, err)

	rs, err := a11y.NewRuleSet(defs...)
	require.NoError(t, err)
	rs, err = rs.WithOptions("short", a11y.Options{"max": 1})
	require.NoError(t, err)
	ev := a11y.NewEvaluator(rs)

	tests := []struct {
		name     string
		markup   string
		selector string
		ruleID   string
		passed   bool
	}{
		{"label present", `<nav aria-label="Main"></nav>`, "nav", "labelled", true},
		{"label missing", `<nav></nav>`, "nav", "labelled", false},
		{"tag mismatch passes", `<div></div>`, "div", "labelled", true},
		{"option respected", `<ul><li></li><li></li></ul>`, "ul", "short", false},
		{"under limit", `<ul><li></li></ul>`, "ul", "short", true},
		{"one parameter", `<marquee></marquee>`, "marquee", "no-marquee", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := mountFirst(t, tt.markup, tt.selector)
			def, ok := rs.Get(tt.ruleID)
			require.True(t, ok)

			res, err := ev.RunRuleDef(node, def)
			require.NoError(t, err)
			assert.Equal(t, tt.passed, res.Passed)
		})
	}
}

func TestLoadSource_AllOf(t *testing.T) {
	defs, err := NewLoader(nil).LoadSource("img.star", []byte(`
def has_alt(tag, props, children, options):
    return "alt" in props

def has_src(tag, props, children, options):
    return "src" in props

rule("img-complete", all_of(
    check(has_alt, msg = "missing alt", tag = "img"),
    check(has_src, msg = "missing src", tag = "img"),
))
`))
	require.NoError(t, err)
	require.Len(t, defs, 1)

	all, ok := defs[0].Rule.(a11y.AllOf)
	require.True(t, ok, "expected a11y.AllOf, got %T", defs[0].Rule)
	require.Len(t, all, 2)

	node := mountFirst(t, `<img>`, "img")
	res, err := a11y.NewEvaluator(nil).RunRule(node, all)
	require.NoError(t, err)
	assert.False(t, res.Passed)
	assert.Equal(t, []a11y.FailedRule{{Msg: "missing alt"}, {Msg: "missing src"}}, res.FailedRules)
}

func TestLoadSource_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"syntax error", `rule(`},
		{"missing msg", "def f(tag):\n    return True\nrule(\"x\", check(f))"},
		{"not a callable", `rule("x", check(1, msg = "m"))`},
		{"bad rule value", `rule("x", 1)`},
		{"empty all_of", `rule("x", all_of())`},
		{"all_of non-check", `rule("x", all_of(1))`},
		{"empty id", "def f(tag):\n    return True\nrule(\"\", check(f, msg = \"m\"))"},
		{"duplicate id", "def f(tag):\n    return True\nrule(\"x\", check(f, msg = \"m\"))\nrule(\"x\", check(f, msg = \"m\"))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader(nil).LoadSource("bad.star", []byte(tt.src))
			require.Error(t, err)

			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr), "expected *LoadError, got %T", err)
			assert.Equal(t, "bad.star", loadErr.File)
		})
	}
}

func TestPredicate_FailuresAreFatal(t *testing.T) {
	defs, err := NewLoader(nil).LoadSource("fatal.star", []byte(`
def boom(tag, props, children, options):
    fail("boom")

def not_bool(tag, props, children, options):
    return "yes"

rule("boom", check(boom, msg = "m"))
rule("not-bool", check(not_bool, msg = "m"))
`))
	require.NoError(t, err)
	rs, err := a11y.NewRuleSet(defs...)
	require.NoError(t, err)
	ev := a11y.NewEvaluator(rs)

	node := mountFirst(t, `<div></div>`, "div")
	for _, def := range rs.All() {
		t.Run(def.ID, func(t *testing.T) {
			_, err := ev.RunRuleDef(node, def)
			require.Error(t, err)

			var evalErr *a11y.EvalError
			require.True(t, errors.As(err, &evalErr), "expected *a11y.EvalError, got %T", err)
			assert.Equal(t, def.ID, evalErr.RuleID)
			assert.Equal(t, "div", evalErr.Selector)

			var callErr *CallError
			require.True(t, errors.As(err, &callErr), "expected *CallError in chain")
			assert.Equal(t, "fatal.star", callErr.File)
		})
	}
}

func TestPredicate_Concurrent(t *testing.T) {
	defs, err := NewLoader(NewThreadPool(2)).LoadSource("alt.star", []byte(`
def has_alt(tag, props, children, options):
    return "alt" in props

rule("alt", check(has_alt, msg = "missing alt", tag = "img"))
`))
	require.NoError(t, err)
	rs, err := a11y.NewRuleSet(defs...)
	require.NoError(t, err)

	markup := `<div>`
	for range 50 {
		markup += `<img src="a.png"><img src="b.png" alt="b">`
	}
	markup += `</div>`

	violations, err := a11y.NewEvaluator(rs, a11y.WithConcurrency(8)).Report(context.Background(), dom.Raw(markup))
	require.NoError(t, err)
	assert.Len(t, violations, 50)
	for _, v := range violations {
		assert.Equal(t, "div > img", v.Selector)
	}
}

func TestLoadRules(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.star")
	second := filepath.Join(dir, "second.star")
	require.NoError(t, os.WriteFile(first, []byte(htmlLangRules), 0o600))
	require.NoError(t, os.WriteFile(second, []byte(`
def ok(tag):
    return True

rule("always", check(ok, msg = "never shown"))
`), 0o600))

	defs, err := LoadRules(first, second)
	require.NoError(t, err)

	ids := make([]string, len(defs))
	for i, def := range defs {
		ids[i] = def.ID
	}
	assert.Equal(t, []string{"html-has-lang", "html-has-head", "always"}, ids)

	_, err = LoadRules(filepath.Join(dir, "missing.star"))
	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr), "expected *LoadError, got %T", err)
	assert.Contains(t, loadErr.Message, "failed to read file")
}
