package command

import "fmt"

// ExistsPolicy is the user-configurable choice for commands that would
// register a layer ID that already exists in the session.
type ExistsPolicy int

const (
	// Replace silently overwrites the existing entry.
	Replace ExistsPolicy = iota
	// ReplaceAndWarn overwrites the existing entry and records a warning.
	ReplaceAndWarn
	// Warn keeps the existing entry and records a warning.
	Warn
	// Fail aborts the command.
	Fail
)

// ParseExistsPolicy parses the IfGeoLayerIDExists-style parameter value.
func ParseExistsPolicy(s string) (ExistsPolicy, error) {
	switch s {
	case "Replace", "":
		return Replace, nil
	case "ReplaceAndWarn":
		return ReplaceAndWarn, nil
	case "Warn":
		return Warn, nil
	case "Fail":
		return Fail, nil
	default:
		return Replace, fmt.Errorf("invalid policy %q: must be Replace, ReplaceAndWarn, Warn, or Fail", s)
	}
}

// NotFoundPolicy is the user-configurable choice for commands whose input
// (a file or a layer ID) turns out to be absent.
type NotFoundPolicy int

const (
	// WarnNotFound records a warning and continues.
	WarnNotFound NotFoundPolicy = iota
	// FailNotFound aborts the command.
	FailNotFound
	// IgnoreNotFound continues without noise.
	IgnoreNotFound
)

// ParseNotFoundPolicy parses the IfSourceFileNotFound-style parameter value.
func ParseNotFoundPolicy(s string) (NotFoundPolicy, error) {
	switch s {
	case "Warn", "":
		return WarnNotFound, nil
	case "Fail":
		return FailNotFound, nil
	case "Ignore":
		return IgnoreNotFound, nil
	default:
		return WarnNotFound, fmt.Errorf("invalid policy %q: must be Warn, Fail, or Ignore", s)
	}
}
