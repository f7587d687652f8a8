package config

import (
	"fmt"
	"log/slog"

	starctx "github.com/leapstack-labs/a11ytester/internal/starlark"
	"github.com/leapstack-labs/a11ytester/pkg/a11y"
	"github.com/leapstack-labs/a11ytester/pkg/a11y/rules"
)

// RuleSet applies the rules section to base. A nil base starts from the
// built-in catalogue. Scripted rules are added first, so only, disabled and
// options may name them. Unknown ids in only or disabled are errors.
func (c *Config) RuleSet(base *a11y.RuleSet) (*a11y.RuleSet, error) {
	rs := base
	if rs == nil {
		rs = rules.Default()
	}

	if len(c.Rules.Scripts) > 0 {
		defs, err := starctx.LoadRules(c.Rules.Scripts...)
		if err != nil {
			return nil, err
		}
		if rs, err = rs.With(defs...); err != nil {
			return nil, fmt.Errorf("scripted rules: %w", err)
		}
	}

	// Checked before only so a rule may be both filtered and disabled.
	for _, id := range c.Rules.Disabled {
		if _, ok := rs.Get(id); !ok {
			return nil, fmt.Errorf("rules.disabled: unknown rule %q", id)
		}
	}

	if len(c.Rules.Only) > 0 {
		var err error
		if rs, err = rs.Only(c.Rules.Only...); err != nil {
			return nil, fmt.Errorf("rules.only: %w", err)
		}
	}
	rs = rs.Without(c.Rules.Disabled...)

	for id, opts := range c.Rules.Options {
		if _, ok := rs.Get(id); !ok {
			// Options for disabled rules are harmless.
			continue
		}
		var err error
		if rs, err = rs.WithOptions(id, a11y.Options(opts)); err != nil {
			return nil, fmt.Errorf("rules.options: %w", err)
		}
	}
	return rs, nil
}

// EvaluatorOptions returns evaluator options for the configured concurrency
// and the given logger.
func (c *Config) EvaluatorOptions(logger *slog.Logger) []a11y.Option {
	return []a11y.Option{
		a11y.WithConcurrency(c.Concurrency),
		a11y.WithLogger(logger),
	}
}

// NewEvaluator builds an evaluator from the configuration.
func (c *Config) NewEvaluator(base *a11y.RuleSet, logger *slog.Logger) (*a11y.Evaluator, error) {
	rs, err := c.RuleSet(base)
	if err != nil {
		return nil, err
	}
	return a11y.NewEvaluator(rs, c.EvaluatorOptions(logger)...), nil
}
