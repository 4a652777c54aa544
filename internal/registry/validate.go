package registry

import (
	"fmt"
	"strings"
)

// Validate performs a strict consistency check over every registered spec.
// Declaration mistakes (a default for an undeclared parameter, duplicate
// parameter names, a missing constructor) are caught at startup, before any
// script line is interpreted.
func (r *Registry) Validate() error {
	var errs []string

	for name, spec := range r.specs {
		if spec.New == nil {
			errs = append(errs, fmt.Sprintf("command %q: no constructor registered", name))
		}
		if len(spec.ParameterNames) == 0 {
			errs = append(errs, fmt.Sprintf("command %q: no parameters declared", name))
		}

		declared := make(map[string]struct{}, len(spec.ParameterNames))
		for _, pname := range spec.ParameterNames {
			if pname == "" {
				errs = append(errs, fmt.Sprintf("command %q: empty parameter name", name))
				continue
			}
			if _, dup := declared[pname]; dup {
				errs = append(errs, fmt.Sprintf("command %q: parameter %q declared twice", name, pname))
			}
			declared[pname] = struct{}{}
		}

		for dname := range spec.Defaults {
			if _, ok := declared[dname]; !ok {
				errs = append(errs, fmt.Sprintf("command %q: default registered for undeclared parameter %q", name, dname))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
