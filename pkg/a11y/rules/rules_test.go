package rules

import (
	"context"
	"testing"

	"github.com/leapstack-labs/a11ytester/pkg/a11y"
	"github.com/leapstack-labs/a11ytester/pkg/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mountRoot(t *testing.T, markup string) *dom.Node {
	t.Helper()
	w, err := dom.MountHTML(context.Background(), markup)
	require.NoError(t, err)
	children := w.Root().Children()
	require.NotEmpty(t, children, "markup %q mounted nothing", markup)
	return children[0]
}

func TestCatalogue(t *testing.T) {
	all := All()
	assert.Len(t, all, 16)
	assert.Equal(t, len(all), Count())

	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].ID, all[i].ID, "All is sorted by ID")
	}

	def, ok := Get("img-uses-alt")
	require.True(t, ok)
	assert.Equal(t, ImgUsesAlt.ID, def.ID)

	_, ok = Get("nope")
	assert.False(t, ok)

	assert.Equal(t, Count(), Default().Len())
}

func TestCatalogue_Examples(t *testing.T) {
	ev := a11y.NewEvaluator(Default())

	for _, def := range All() {
		t.Run(def.ID, func(t *testing.T) {
			require.NotEmpty(t, def.Description)
			require.NotEmpty(t, def.GoodExample)
			require.NotEmpty(t, def.BadExample)
			for _, c := range a11y.Checks(def.Rule) {
				assert.NotEmpty(t, c.Msg)
				assert.NotEmpty(t, c.URL)
			}

			res, err := ev.RunRuleDef(mountRoot(t, def.GoodExample), def)
			require.NoError(t, err)
			assert.True(t, res.Passed, "good example should pass: %s", def.GoodExample)

			res, err = ev.RunRuleDef(mountRoot(t, def.BadExample), def)
			require.NoError(t, err)
			assert.False(t, res.Passed, "bad example should fail: %s", def.BadExample)
			assert.NotEmpty(t, res.FailedRules)
		})
	}
}

func TestRules_EdgeCases(t *testing.T) {
	tests := []struct {
		name   string
		def    a11y.RuleDef
		markup string
		passed bool
	}{
		{"decorative img", ImgUsesAlt, `<img src="line.png" alt="">`, true},
		{"presentation img", ImgUsesAlt, `<img src="line.png" role="presentation">`, true},
		{"alt on other tags is ignored", ImgUsesAlt, `<div></div>`, true},
		{"negative tabindex", AvoidPositiveTabindex, `<div tabindex="-1"></div>`, true},
		{"zero tabindex", AvoidPositiveTabindex, `<div tabindex="0"></div>`, true},
		{"label wrapping input", LabelUsesFor, `<label>Email <input type="email"></label>`, true},
		{"label wrapping nested select", LabelUsesFor, `<label><span><select></select></span></label>`, true},
		{"click on button", OnclickUsesRole, `<button onclick="go()">Go</button>`, true},
		{"click on link with href", OnclickUsesTabindex, `<a href="/x" onclick="go()">Go</a>`, true},
		{"click on link without href", OnclickUsesTabindex, `<a onclick="go()">Go</a>`, false},
		{"click on hidden element", OnclickUsesRole, `<div onclick="go()" aria-hidden="true"></div>`, true},
		{"hidden input with aria-hidden", HiddenUsesTabindex, `<input type="hidden" aria-hidden="true">`, true},
		{"hidden text input", HiddenUsesTabindex, `<input aria-hidden="true">`, false},
		{"hidden div", HiddenUsesTabindex, `<div aria-hidden="true"></div>`, true},
		{"multiple valid roles", ValidAriaRole, `<div role="switch checkbox"></div>`, true},
		{"abstract role", ValidAriaRole, `<div role="widget"></div>`, false},
		{"redundant word inside another word", RedundantAlt, `<img alt="Photographer at work">`, true},
		{"redundant word any case", RedundantAlt, `<img alt="A PICTURE of a dog">`, false},
		{"button role on button", ButtonRoleSpace, `<button role="button">Go</button>`, true},
		{"select with only onblur", UseOnblurNotOnchange, `<select onblur="pick()"></select>`, true},
		{"tabindex on input", TabindexUsesButton, `<input tabindex="0">`, true},
		{"meta without aria", NoUnsupportedElementsUseAria, `<meta charset="utf-8">`, true},
		{"meta with role", NoUnsupportedElementsUseAria, `<meta charset="utf-8" role="none">`, false},
		{"hash fragment link", NoHashHref, `<a href="#main">Skip</a>`, true},
	}

	ev := a11y.NewEvaluator(Default())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ev.RunRuleDef(mountRoot(t, tt.markup), tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.passed, res.Passed, tt.markup)
		})
	}
}

func TestRules_ElementProps(t *testing.T) {
	w, err := dom.Mount(context.Background(), dom.El("div", dom.Props{
		"onClick":     func() {},
		"onKeyDown":   func() {},
		"tabIndex":    0,
		"role":        "button",
		"aria-hidden": false,
	}))
	require.NoError(t, err)

	violations, err := a11y.NewEvaluator(Default()).Report(context.Background(), dom.El("section", nil,
		dom.El("div", dom.Props{"onClick": func() {}, "onKeyDown": func() {}, "tabIndex": 0, "role": "button"}),
	))
	require.NoError(t, err)
	assert.Empty(t, violations)

	node := w.Root().Children()[0]
	res, err := a11y.NewEvaluator(nil).RunRuleDef(node, HiddenUsesTabindex)
	require.NoError(t, err)
	assert.True(t, res.Passed)
}

func TestImgUsesAlt_Props(t *testing.T) {
	tests := []struct {
		name   string
		props  dom.Props
		passed bool
	}{
		{"text", dom.Props{"alt": "A cat"}, true},
		{"empty", dom.Props{"alt": ""}, true},
		{"nil", dom.Props{"alt": nil}, false},
		{"false", dom.Props{"alt": false}, false},
		{"missing", dom.Props{"src": "cat.jpg"}, false},
		{"nil with presentation role", dom.Props{"alt": nil, "role": "presentation"}, true},
	}

	ev := a11y.NewEvaluator(Default())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := dom.Mount(context.Background(), dom.El("img", tt.props))
			require.NoError(t, err)
			res, err := ev.RunRuleDef(w.Root().Children()[0], ImgUsesAlt)
			require.NoError(t, err)
			assert.Equal(t, tt.passed, res.Passed)
		})
	}
}

func TestRedundantAlt_Words(t *testing.T) {
	rs, err := Default().WithOptions(RedundantAlt.ID, a11y.Options{"words": []any{"graphic"}})
	require.NoError(t, err)
	ev := a11y.NewEvaluator(rs)
	def, _ := rs.Get(RedundantAlt.ID)

	res, err := ev.RunRuleDef(mountRoot(t, `<img alt="Graphic of a dog">`), def)
	require.NoError(t, err)
	assert.False(t, res.Passed)

	res, err = ev.RunRuleDef(mountRoot(t, `<img alt="Photo of a dog">`), def)
	require.NoError(t, err)
	assert.True(t, res.Passed, "custom words replace the defaults")
}
