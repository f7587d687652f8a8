package a11y_test

import (
	"testing"

	"github.com/leapstack-labs/a11ytester/pkg/a11y"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func def(id string) a11y.RuleDef {
	return a11y.RuleDef{ID: id, Rule: a11y.Check{Test: always(true), Msg: id}}
}

func TestNewRuleSet(t *testing.T) {
	rs, err := a11y.NewRuleSet(def("b"), def("a"), a11y.RuleDef{
		ID:   "c",
		Rule: a11y.AllOf{{TagName: "IMG", Test: always(true)}},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, rs.Len())
	assert.Equal(t, []string{"b", "a", "c"}, rs.IDs(), "definition order is kept")

	c, ok := rs.Get("c")
	require.True(t, ok)
	assert.Equal(t, "img", c.Rule.(a11y.AllOf)[0].TagName, "tag names are lower-cased")

	_, ok = rs.Get("missing")
	assert.False(t, ok)
}

func TestNewRuleSet_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		defs    []a11y.RuleDef
		wantErr string
	}{
		{"empty id", []a11y.RuleDef{{Rule: a11y.Check{Test: always(true)}}}, "id is required"},
		{"duplicate", []a11y.RuleDef{def("x"), def("x")}, `duplicate rule id "x"`},
		{"nil rule", []a11y.RuleDef{{ID: "x"}}, "rule is required"},
		{"nil test", []a11y.RuleDef{{ID: "x", Rule: a11y.Check{Msg: "m"}}}, "check has no test"},
		{"empty all-of", []a11y.RuleDef{{ID: "x", Rule: a11y.AllOf{}}}, "all-of rule has no checks"},
		{"nil test in all-of", []a11y.RuleDef{{ID: "x", Rule: a11y.AllOf{{Test: always(true)}, {}}}}, "check 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a11y.NewRuleSet(tt.defs...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	assert.Panics(t, func() { a11y.MustRuleSet(def("x"), def("x")) })
}

func TestRuleSet_Derive(t *testing.T) {
	base := a11y.MustRuleSet(def("a"), def("b"), def("c"))
	base, err := base.WithOptions("b", a11y.Options{"level": 2})
	require.NoError(t, err)

	t.Run("Without", func(t *testing.T) {
		rs := base.Without("a", "unknown")
		assert.Equal(t, []string{"b", "c"}, rs.IDs())
		assert.Equal(t, a11y.Options{"level": 2}, rs.Options("b"), "options carry over")
		assert.Equal(t, 3, base.Len(), "base is unchanged")
	})

	t.Run("Only", func(t *testing.T) {
		rs, err := base.Only("c", "a")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "c"}, rs.IDs())
		assert.Nil(t, rs.Options("b"))

		_, err = base.Only("z")
		assert.ErrorContains(t, err, `unknown rule "z"`)
	})

	t.Run("With", func(t *testing.T) {
		rs, err := base.With(def("d"))
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c", "d"}, rs.IDs())

		_, err = base.With(def("a"))
		assert.Error(t, err)
	})

	t.Run("WithOptions", func(t *testing.T) {
		opts := a11y.Options{"level": 5}
		rs, err := base.WithOptions("b", opts)
		require.NoError(t, err)
		opts["level"] = 9
		assert.Equal(t, a11y.Options{"level": 5}, rs.Options("b"), "options are copied")
		assert.Equal(t, a11y.Options{"level": 2}, base.Options("b"))

		_, err = base.WithOptions("z", nil)
		assert.Error(t, err)
	})

	t.Run("All returns a copy", func(t *testing.T) {
		all := base.All()
		all[0].ID = "changed"
		assert.Equal(t, "a", base.IDs()[0])
	})
}

func TestRuleSet_Nil(t *testing.T) {
	var rs *a11y.RuleSet
	assert.Zero(t, rs.Len())
	assert.Empty(t, rs.IDs())
	assert.Nil(t, rs.All())
	assert.Nil(t, rs.Options("a"))
	_, ok := rs.Get("a")
	assert.False(t, ok)
}
