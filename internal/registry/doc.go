// Package registry provides the central mapping between command names as
// they appear in script files and the Go implementations behind them.
//
// Each command contributes a Spec: its declared parameter names in order, the
// default values for optional parameters, and a constructor for a fresh
// command instance. Modules self-register their specs at startup; after
// registration the registry is validated so that a malformed declaration is a
// startup failure instead of a runtime surprise.
package registry
