package starlark

import (
	"fmt"
	"reflect"

	"github.com/leapstack-labs/a11ytester/pkg/a11y"
	"github.com/leapstack-labs/a11ytester/pkg/dom"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

// GoToStarlark converts a Go value to a Starlark value.
// Supported types: string, int, int64, float64, bool, []string, []any, map[string]any.
// Functions convert to True so event handlers read as present.
func GoToStarlark(v any) (starlark.Value, error) {
	if v == nil {
		return starlark.None, nil
	}

	switch val := v.(type) {
	case string:
		return starlark.String(val), nil

	case int:
		return starlark.MakeInt(val), nil

	case int64:
		return starlark.MakeInt64(val), nil

	case float64:
		return starlark.Float(val), nil

	case bool:
		return starlark.Bool(val), nil

	case []string:
		list := make([]starlark.Value, len(val))
		for i, s := range val {
			list[i] = starlark.String(s)
		}
		return starlark.NewList(list), nil

	case []any:
		list := make([]starlark.Value, len(val))
		for i, item := range val {
			sv, err := GoToStarlark(item)
			if err != nil {
				return nil, fmt.Errorf("list index %d: %w", i, err)
			}
			list[i] = sv
		}
		return starlark.NewList(list), nil

	case map[string]any:
		return mapToDict(val)

	case dom.Props:
		return mapToDict(val)

	case a11y.Options:
		return mapToDict(val)
	}

	if reflect.TypeOf(v).Kind() == reflect.Func {
		return starlark.True, nil
	}
	return nil, fmt.Errorf("unsupported type: %T", v)
}

func mapToDict(m map[string]any) (*starlark.Dict, error) {
	dict := starlark.NewDict(len(m))
	for k, v := range m {
		sv, err := GoToStarlark(v)
		if err != nil {
			// Opaque values keep their printed form.
			sv = starlark.String(fmt.Sprint(v))
		}
		if err := dict.SetKey(starlark.String(k), sv); err != nil {
			return nil, fmt.Errorf("dict setkey %q: %w", k, err)
		}
	}
	return dict, nil
}

// NodeToStarlark converts a mounted node into a struct with name, kind, props,
// text and children fields. Children are converted recursively.
func NodeToStarlark(n *dom.Node) (starlark.Value, error) {
	props, err := mapToDict(n.Props())
	if err != nil {
		return nil, fmt.Errorf("node %s: %w", n.Name(), err)
	}
	children, err := NodesToStarlark(n.Children())
	if err != nil {
		return nil, err
	}
	return starlarkstruct.FromStringDict(starlark.String("node"), starlark.StringDict{
		"name":     starlark.String(n.Name()),
		"kind":     starlark.String(n.Kind().String()),
		"props":    props,
		"text":     starlark.String(n.Text()),
		"children": children,
	}), nil
}

// NodesToStarlark converts nodes into a Starlark list.
func NodesToStarlark(nodes []*dom.Node) (*starlark.List, error) {
	list := make([]starlark.Value, 0, len(nodes))
	for _, n := range nodes {
		v, err := NodeToStarlark(n)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return starlark.NewList(list), nil
}
