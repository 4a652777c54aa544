package command

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/geoflowgo/internal/script"
)

// Resolve maps a parsed call's arguments onto the command's declared
// parameter names and fills registered defaults for everything the user left
// out. Positional arguments are resolved by their index in the declared
// order. The returned set always covers every declared name; parameters with
// no default and no user value are present as null strings so Configure can
// report them as missing.
//
// expand, when non-nil, is applied to every string value and list item before
// conversion; the driver passes the session's ${property} expansion.
func Resolve(call *script.Call, names []string, defaults map[string]cty.Value, expand func(string) string) (ParamSet, error) {
	if expand == nil {
		expand = func(s string) string { return s }
	}

	supplied := make(map[string]cty.Value, len(call.Args))
	for i, arg := range call.Args {
		name := arg.Name
		if name == "" {
			if i >= len(names) {
				return nil, fmt.Errorf("command %s takes at most %d parameter(s), got %d", call.Name, len(names), len(call.Args))
			}
			name = names[i]
		} else if !contains(names, name) {
			return nil, fmt.Errorf("command %s has no parameter named %q", call.Name, name)
		}
		if _, dup := supplied[name]; dup {
			return nil, fmt.Errorf("parameter %q assigned more than once", name)
		}
		supplied[name] = toCty(arg.Value, expand)
	}

	params := make(ParamSet, len(names))
	for _, name := range names {
		if v, ok := supplied[name]; ok {
			params[name] = v
		} else if d, ok := defaults[name]; ok {
			params[name] = d
		} else {
			params[name] = cty.NullVal(cty.String)
		}
	}
	return params, nil
}

func toCty(v script.Value, expand func(string) string) cty.Value {
	if v.Kind == script.ValueList {
		if len(v.List) == 0 {
			return cty.ListValEmpty(cty.String)
		}
		items := make([]cty.Value, 0, len(v.List))
		for _, item := range v.List {
			items = append(items, cty.StringVal(expand(item)))
		}
		return cty.ListVal(items)
	}
	return cty.StringVal(expand(v.Str))
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
