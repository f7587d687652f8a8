// Package starlark loads accessibility rules written in Starlark.
//
// A rule file declares checks with three builtins:
//
//	def has_lang(tag, props, children, options):
//	    return "lang" in props
//
//	rule("html-has-lang", check(has_lang, msg = "html needs a lang", url = "https://...", tag = "html"))
//	rule("both", all_of(check(a, msg = "a"), check(b, msg = "b")), description = "a and b")
//
// Test functions take up to four positional parameters: tag, props (a dict),
// children (a list of node structs with name, kind, props, text and children)
// and options (a dict). They must return a bool.
package starlark

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/a11ytester/pkg/a11y"
	"github.com/leapstack-labs/a11ytester/pkg/dom"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// LoadError represents an error loading a rule file.
type LoadError struct {
	File    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("rules/%s: %s", filepath.Base(e.File), e.Message)
}

// CallError reports a Starlark test function that failed or returned a
// non-bool. Predicates panic with it; the evaluator reports it as an
// *a11y.EvalError.
type CallError struct {
	File string
	Func string
	Err  error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("%s: %s: %v", filepath.Base(e.File), e.Func, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// Loader turns Starlark rule files into rule definitions.
type Loader struct {
	pool *ThreadPool
}

// NewLoader creates a loader whose predicates draw threads from pool.
// A nil pool gets a default one.
func NewLoader(pool *ThreadPool) *Loader {
	if pool == nil {
		pool = NewThreadPool(0)
	}
	return &Loader{pool: pool}
}

// LoadRules loads rule definitions from the given files, in order.
func LoadRules(paths ...string) ([]a11y.RuleDef, error) {
	l := NewLoader(nil)
	var defs []a11y.RuleDef
	for _, path := range paths {
		fileDefs, err := l.LoadFile(path)
		if err != nil {
			return nil, err
		}
		defs = append(defs, fileDefs...)
	}
	return defs, nil
}

// LoadFile loads the rules declared in one .star file.
func (l *Loader) LoadFile(path string) ([]a11y.RuleDef, error) {
	content, err := os.ReadFile(path) //nolint:gosec // G304: rule script paths come from configuration
	if err != nil {
		return nil, &LoadError{
			File:    path,
			Message: fmt.Sprintf("failed to read file: %v", err),
		}
	}
	return l.LoadSource(path, content)
}

// LoadSource executes src and returns the rules it declared.
func (l *Loader) LoadSource(filename string, src []byte) ([]a11y.RuleDef, error) {
	fl := &fileLoader{loader: l, file: filename, seen: map[string]bool{}}

	thread := &starlark.Thread{
		Name: "load:" + filepath.Base(filename),
		Print: func(_ *starlark.Thread, _ string) {
			// Ignore prints during rule loading
		},
	}
	predeclared := starlark.StringDict{
		"check":  starlark.NewBuiltin("check", fl.check),
		"all_of": starlark.NewBuiltin("all_of", fl.allOf),
		"rule":   starlark.NewBuiltin("rule", fl.rule),
	}

	if _, err := starlark.ExecFileOptions(&syntax.FileOptions{}, thread, filename, src, predeclared); err != nil {
		return nil, &LoadError{
			File:    filename,
			Message: fmt.Sprintf("Starlark execution error: %v", err),
		}
	}
	return fl.defs, nil
}

type fileLoader struct {
	loader *Loader
	file   string
	defs   []a11y.RuleDef
	seen   map[string]bool
}

func (fl *fileLoader) check(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var (
		test starlark.Callable
		msg  string
		url  string
		tag  string
	)
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "test", &test, "msg", &msg, "url?", &url, "tag?", &tag); err != nil {
		return nil, err
	}
	return &checkValue{tag: tag, test: test, msg: msg, url: url}, nil
}

func (fl *fileLoader) allOf(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) > 0 {
		return nil, fmt.Errorf("%s: unexpected keyword arguments", b.Name())
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("%s: at least one check is required", b.Name())
	}
	checks := make([]*checkValue, len(args))
	for i, arg := range args {
		c, ok := arg.(*checkValue)
		if !ok {
			return nil, fmt.Errorf("%s: argument %d is %s, want check", b.Name(), i+1, arg.Type())
		}
		checks[i] = c
	}
	return &allOfValue{checks: checks}, nil
}

func (fl *fileLoader) rule(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var (
		id          string
		r           starlark.Value
		description string
	)
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "id", &id, "rule", &r, "description?", &description); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, fmt.Errorf("%s: id is required", b.Name())
	}
	if fl.seen[id] {
		return nil, fmt.Errorf("%s: duplicate rule id %q", b.Name(), id)
	}

	var rule a11y.Rule
	switch v := r.(type) {
	case *checkValue:
		v.Freeze()
		rule = fl.toCheck(v)
	case *allOfValue:
		v.Freeze()
		all := make(a11y.AllOf, len(v.checks))
		for i, c := range v.checks {
			all[i] = fl.toCheck(c)
		}
		rule = all
	default:
		return nil, fmt.Errorf("%s: rule is %s, want check or all_of", b.Name(), r.Type())
	}

	fl.seen[id] = true
	fl.defs = append(fl.defs, a11y.RuleDef{ID: id, Description: description, Rule: rule})
	return starlark.None, nil
}

func (fl *fileLoader) toCheck(c *checkValue) a11y.Check {
	return a11y.Check{
		TagName: c.tag,
		Test:    fl.loader.predicate(fl.file, c.test),
		Msg:     c.msg,
		URL:     c.url,
	}
}

// predicate adapts a frozen Starlark callable to an a11y.TestFunc.
func (l *Loader) predicate(file string, fn starlark.Callable) a11y.TestFunc {
	nargs := positionalParams(fn, 4)
	return func(tag string, props dom.Props, children []*dom.Node, opts a11y.Options) bool {
		fail := func(err error) {
			panic(&CallError{File: file, Func: fn.Name(), Err: err})
		}

		propsVal, err := GoToStarlark(props)
		if err != nil {
			fail(err)
		}
		childrenVal, err := NodesToStarlark(children)
		if err != nil {
			fail(err)
		}
		optsVal, err := GoToStarlark(opts)
		if err != nil {
			fail(err)
		}
		args := starlark.Tuple{starlark.String(tag), propsVal, childrenVal, optsVal}

		thread := l.pool.Get(filepath.Base(file) + ":" + fn.Name())
		defer l.pool.Put(thread)

		v, err := starlark.Call(thread, fn, args[:nargs], nil)
		if err != nil {
			fail(err)
		}
		b, ok := v.(starlark.Bool)
		if !ok {
			fail(fmt.Errorf("test returned %s, want bool", v.Type()))
		}
		return bool(b)
	}
}

// positionalParams returns how many of limit positional arguments fn accepts.
func positionalParams(fn starlark.Callable, limit int) int {
	f, ok := fn.(*starlark.Function)
	if !ok || f.HasVarargs() {
		return limit
	}
	n := f.NumParams() - f.NumKwonlyParams()
	if f.HasKwargs() {
		n--
	}
	return min(n, limit)
}

type checkValue struct {
	tag  string
	test starlark.Callable
	msg  string
	url  string
}

func (c *checkValue) String() string        { return fmt.Sprintf("<check %s>", c.test.Name()) }
func (c *checkValue) Type() string          { return "check" }
func (c *checkValue) Freeze()               { c.test.Freeze() }
func (c *checkValue) Truth() starlark.Bool  { return starlark.True }
func (c *checkValue) Hash() (uint32, error) { return 0, fmt.Errorf("unhashable type: check") }

type allOfValue struct {
	checks []*checkValue
}

func (a *allOfValue) String() string        { return fmt.Sprintf("<all_of %d checks>", len(a.checks)) }
func (a *allOfValue) Type() string          { return "all_of" }
func (a *allOfValue) Truth() starlark.Bool  { return starlark.True }
func (a *allOfValue) Hash() (uint32, error) { return 0, fmt.Errorf("unhashable type: all_of") }

func (a *allOfValue) Freeze() {
	for _, c := range a.checks {
		c.Freeze()
	}
}
