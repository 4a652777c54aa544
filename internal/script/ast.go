package script

// ValueKind discriminates the literal forms a parameter value can take.
type ValueKind int

const (
	// ValueString is a double-quoted or bare scalar value.
	ValueString ValueKind = iota
	// ValueList is a bracketed list of single-quoted items.
	ValueList
)

// Value is a parsed parameter literal.
type Value struct {
	Kind ValueKind
	Str  string
	List []string
}

// StringVal builds a scalar Value.
func StringVal(s string) Value {
	return Value{Kind: ValueString, Str: s}
}

// ListVal builds a list Value.
func ListVal(items ...string) Value {
	return Value{Kind: ValueList, List: items}
}

// Arg is a single argument of a call. Name is empty for positional arguments.
type Arg struct {
	Name  string
	Value Value
}

// Call is the structured form of one command line: the command name and its
// arguments in source order.
type Call struct {
	Name string
	Args []Arg
	// Line is the 1-based line number the call was parsed from, zero when the
	// call was parsed from a bare string.
	Line int
}
