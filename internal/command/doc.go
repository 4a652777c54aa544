// Package command defines the contract every workflow command implements and
// the machinery around it: the resolved parameter set, the argument resolver
// that applies declared defaults, the shared run-policy types, and the
// warning recorder used for per-command status.
//
// Commands are stateless across lines. Each line instantiates a fresh command
// through its registry constructor, configures it from a complete ParamSet,
// and executes it once against the injected session context.
package command
