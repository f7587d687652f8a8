package dom

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Props maps prop names to arbitrary values.
// Mounted nodes hold canonical (lower-case) keys.
type Props map[string]any

// propAliases maps React-style prop names to their HTML attribute names.
var propAliases = map[string]string{
	"classname": "class",
	"htmlfor":   "for",
}

// CanonicalKey returns the mounted form of a prop name.
func CanonicalKey(key string) string {
	key = strings.ToLower(key)
	if alias, ok := propAliases[key]; ok {
		return alias
	}
	return key
}

// canonical returns a copy of p with canonical keys.
func (p Props) canonical() Props {
	out := make(Props, len(p))
	for k, v := range p {
		out[CanonicalKey(k)] = v
	}
	return out
}

// Get returns the value for key, matched case-insensitively.
func (p Props) Get(key string) (any, bool) {
	if p == nil {
		return nil, false
	}
	ck := CanonicalKey(key)
	if v, ok := p[ck]; ok {
		return v, true
	}
	for k, v := range p {
		if CanonicalKey(k) == ck {
			return v, true
		}
	}
	return nil, false
}

// Has reports whether key is set to something other than nil or false.
// An empty string counts as set, matching HTML boolean attributes.
func (p Props) Has(key string) bool {
	v, ok := p.Get(key)
	if !ok || v == nil {
		return false
	}
	if b, isBool := v.(bool); isBool {
		return b
	}
	return true
}

// String returns the value for key as a string. Function values and missing
// keys yield "".
func (p Props) String(key string) string {
	v, ok := p.Get(key)
	if !ok {
		return ""
	}
	if b, isBool := v.(bool); isBool {
		return strconv.FormatBool(b)
	}
	s, _ := attrValue(v)
	return s
}

// Int returns the value for key as an int and whether it was numeric.
func (p Props) Int(key string) (int, bool) {
	v, ok := p.Get(key)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		return i, err == nil
	default:
		return 0, false
	}
}

// Keys returns the prop names in sorted order.
func (p Props) Keys() []string {
	return slices.Sorted(maps.Keys(p))
}

// attrValue converts a prop value to an HTML attribute value.
// The second result is false when the prop should not be rendered.
func attrValue(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, true
	case bool:
		if !val {
			return "", false
		}
		return "", true
	case int, int64, float64, float32, int32, uint, uint64:
		return fmt.Sprint(val), true
	case fmt.Stringer:
		return val.String(), true
	}
	// Event handlers and other callables render as present, empty attributes.
	if reflect.TypeOf(v).Kind() == reflect.Func {
		return "", true
	}
	return fmt.Sprint(v), true
}
