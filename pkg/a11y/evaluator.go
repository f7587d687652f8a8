package a11y

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/google/uuid"
	"github.com/leapstack-labs/a11ytester/pkg/dom"
	"golang.org/x/sync/errgroup"
)

// Evaluator runs a RuleSet against mounted trees. It holds no state between
// runs and is safe for concurrent use.
type Evaluator struct {
	rules       *RuleSet
	logger      *slog.Logger
	concurrency int
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithLogger sets the logger. The default discards all records.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Evaluator) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithConcurrency bounds the number of concurrent node and rule tasks per
// group. Values below 1 select runtime.GOMAXPROCS(0).
func WithConcurrency(n int) Option {
	return func(e *Evaluator) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// NewEvaluator creates an evaluator for rules. A nil set evaluates nothing.
func NewEvaluator(rules *RuleSet, opts ...Option) *Evaluator {
	if rules == nil {
		rules = MustRuleSet()
	}
	e := &Evaluator{
		rules:       rules,
		logger:      slog.New(slog.DiscardHandler),
		concurrency: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Rules returns the evaluator's rule set.
func (e *Evaluator) Rules() *RuleSet {
	return e.rules
}

// RunRule evaluates rule against node without options.
func (e *Evaluator) RunRule(node *dom.Node, rule Rule) (RuleResult, error) {
	return e.runRule(node, "", rule, nil)
}

// RunRuleDef evaluates a rule definition with the options configured for it
// in the evaluator's rule set.
func (e *Evaluator) RunRuleDef(node *dom.Node, def RuleDef) (RuleResult, error) {
	return e.runRule(node, def.ID, def.Rule, e.rules.Options(def.ID))
}

func (e *Evaluator) runRule(node *dom.Node, id string, rule Rule, opts Options) (res RuleResult, err error) {
	// Only concrete host elements are meaningful to test.
	if !node.HasInstance() {
		return RuleResult{Passed: true}, nil
	}

	defer func() {
		if r := recover(); r != nil {
			res = RuleResult{}
			err = &EvalError{RuleID: id, Selector: SelectorForNode(node), Value: r}
		}
	}()

	switch r := rule.(type) {
	case Check:
		if !r.run(node, opts) {
			return RuleResult{FailedRules: []FailedRule{r.failure()}}, nil
		}
		return RuleResult{Passed: true}, nil

	case AllOf:
		var failed []FailedRule
		for _, c := range r {
			if !c.run(node, opts) {
				failed = append(failed, c.failure())
			}
		}
		if len(failed) > 0 {
			return RuleResult{FailedRules: failed}, nil
		}
		return RuleResult{Passed: true}, nil

	default:
		return RuleResult{}, fmt.Errorf("rule %q: unsupported rule type %T", id, rule)
	}
}

// RunTests evaluates every rule in the set against node. Rules run
// concurrently; the result lists failing rules in rule-set order.
func (e *Evaluator) RunTests(ctx context.Context, node *dom.Node) (NodeResult, error) {
	defs := e.rules.defs
	results := make([]RuleResult, len(defs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i, def := range defs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := e.runRule(node, def.ID, def.Rule, e.rules.Options(def.ID))
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return NodeResult{}, err
	}

	var failed [][]FailedRule
	for _, res := range results {
		if !res.Passed {
			failed = append(failed, res.FailedRules)
		}
	}
	if len(failed) == 0 {
		return NodeResult{Passed: true}, nil
	}
	return NodeResult{
		Passed:      false,
		Selector:    SelectorForNode(node),
		FailedRules: failed,
	}, nil
}

// AllNodesInSubtree mounts el and returns its element nodes in document order.
func (e *Evaluator) AllNodesInSubtree(ctx context.Context, el dom.Element) ([]*dom.Node, error) {
	nodes, err := AllNodesInSubtree(ctx, el)
	if err != nil {
		return nil, fmt.Errorf("failed to mount tree: %w", err)
	}
	e.logger.Debug("enumerated nodes", "nodes", len(nodes))
	return nodes, nil
}

// Test mounts el and evaluates every node. It returns nil when every node
// passed and a *ViolationError when any failed. Other errors are fatal.
func (e *Evaluator) Test(ctx context.Context, el dom.Element) error {
	w, err := dom.Mount(ctx, el)
	if err != nil {
		return fmt.Errorf("failed to mount tree: %w", err)
	}
	return e.TestWrapper(ctx, w)
}

// TestWrapper is Test for an already mounted tree.
func (e *Evaluator) TestWrapper(ctx context.Context, w *dom.Wrapper) error {
	nodes := AllNodes(w)
	runID := uuid.NewString()
	logger := e.logger.With("run_id", runID)
	logger.Debug("running accessibility checks", "nodes", len(nodes), "rules", e.rules.Len())

	results := make([]NodeResult, len(nodes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i, node := range nodes {
		g.Go(func() error {
			res, err := e.RunTests(gctx, node)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("accessibility run aborted", "error", err)
		return err
	}

	var violations []Violation
	for _, res := range results {
		if res.Passed {
			continue
		}
		violations = append(violations, Violation{
			Selector:    res.Selector,
			FailedRules: res.FailedRules,
		})
	}
	if len(violations) == 0 {
		logger.Debug("accessibility checks passed")
		return nil
	}

	logger.Warn("accessibility violations found", "violations", len(violations))
	return &ViolationError{Violations: violations}
}

// Report is Test returning violations as a value: nil with a nil error when
// everything passed.
func (e *Evaluator) Report(ctx context.Context, el dom.Element) ([]Violation, error) {
	err := e.Test(ctx, el)
	if err == nil {
		return nil, nil
	}
	var verr *ViolationError
	if errors.As(err, &verr) {
		return verr.Violations, nil
	}
	return nil, err
}
