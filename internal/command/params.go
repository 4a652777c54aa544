package command

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// ParamSet is the complete name→value mapping for one command instance.
// Every declared parameter name of the command is present: user-supplied
// values, registered defaults, or a null placeholder for omitted parameters
// that have no default. Values are cty values so commands can decode them
// with ordinary type conversion instead of re-parsing strings.
type ParamSet map[string]cty.Value

// Has reports whether name carries a non-null, non-empty value.
func (p ParamSet) Has(name string) bool {
	v, ok := p[name]
	if !ok || v.IsNull() {
		return false
	}
	if v.Type() == cty.String && v.AsString() == "" {
		return false
	}
	return true
}

// String returns the value of name converted to a string. Omitted parameters
// yield the empty string.
func (p ParamSet) String(name string) (string, error) {
	v, ok := p[name]
	if !ok || v.IsNull() {
		return "", nil
	}
	converted, err := convert.Convert(v, cty.String)
	if err != nil {
		return "", fmt.Errorf("parameter %q: %w", name, err)
	}
	return converted.AsString(), nil
}

// RequiredString returns the value of name and fails when the parameter was
// omitted or empty. This is where missing-required surfaces, at configure
// time rather than parse time.
func (p ParamSet) RequiredString(name string) (string, error) {
	if !p.Has(name) {
		return "", fmt.Errorf("required parameter %q was not provided", name)
	}
	return p.String(name)
}

// StringList returns the value of name as a list of strings. A scalar value
// yields a single-element list; omitted parameters yield nil.
func (p ParamSet) StringList(name string) ([]string, error) {
	v, ok := p[name]
	if !ok || v.IsNull() {
		return nil, nil
	}
	if v.Type() == cty.String {
		return []string{v.AsString()}, nil
	}
	converted, err := convert.Convert(v, cty.List(cty.String))
	if err != nil {
		return nil, fmt.Errorf("parameter %q: %w", name, err)
	}
	var out []string
	for it := converted.ElementIterator(); it.Next(); {
		_, ev := it.Element()
		out = append(out, ev.AsString())
	}
	return out, nil
}

// RequiredStringList returns the list value of name and fails when it was
// omitted or empty.
func (p ParamSet) RequiredStringList(name string) ([]string, error) {
	items, err := p.StringList(name)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("required parameter %q was not provided", name)
	}
	return items, nil
}

// Int returns the value of name as an int, converting numeric strings.
func (p ParamSet) Int(name string) (int, error) {
	v, ok := p[name]
	if !ok || v.IsNull() {
		return 0, fmt.Errorf("required parameter %q was not provided", name)
	}
	converted, err := convert.Convert(v, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("parameter %q: %w", name, err)
	}
	var out int
	if err := gocty.FromCtyValue(converted, &out); err != nil {
		return 0, fmt.Errorf("parameter %q: %w", name, err)
	}
	return out, nil
}

// Float returns the value of name as a float64, converting numeric strings.
func (p ParamSet) Float(name string) (float64, error) {
	v, ok := p[name]
	if !ok || v.IsNull() {
		return 0, fmt.Errorf("required parameter %q was not provided", name)
	}
	converted, err := convert.Convert(v, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("parameter %q: %w", name, err)
	}
	var out float64
	if err := gocty.FromCtyValue(converted, &out); err != nil {
		return 0, fmt.Errorf("parameter %q: %w", name, err)
	}
	return out, nil
}
