package a11y

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
)

// FailedRule identifies one failing check.
type FailedRule struct {
	Msg string `json:"msg"`
	URL string `json:"url"`
}

// RuleResult is the outcome of one rule against one node.
type RuleResult struct {
	Passed      bool         `json:"passed"`
	FailedRules []FailedRule `json:"failedRules,omitempty"`
}

// NodeResult is the outcome of every rule against one node. FailedRules holds
// one list per failing rule, in rule-set order.
type NodeResult struct {
	Passed      bool           `json:"passed"`
	Selector    string         `json:"selector,omitempty"`
	FailedRules [][]FailedRule `json:"failedRules,omitempty"`
}

// Violation is a failing node in a whole-tree report.
type Violation struct {
	Selector    string         `json:"selector"`
	FailedRules [][]FailedRule `json:"failedRules"`
}

// ViolationError is returned by Evaluator.Test when at least one node failed.
type ViolationError struct {
	Violations []Violation
}

func (e *ViolationError) Error() string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Selector", "Message", "URL"})
	for _, v := range e.Violations {
		for _, group := range v.FailedRules {
			for _, f := range group {
				t.AppendRow(table.Row{v.Selector, f.Msg, f.URL})
			}
		}
	}
	return fmt.Sprintf("%d accessibility violation(s)\n%s", len(e.Violations), t.Render())
}

// EvalError reports a predicate that panicked. It is fatal and never counted
// as a rule failure.
type EvalError struct {
	RuleID   string
	Selector string
	Value    any // recovered panic value
}

func (e *EvalError) Error() string {
	id := e.RuleID
	if id == "" {
		id = "<anonymous>"
	}
	return fmt.Sprintf("rule %s panicked on %s: %v", id, e.Selector, e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *EvalError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
