// Package script parses workflow command files.
//
// A script is plain text with one command call per line. Lines starting with
// '#' are comments and blank lines are ignored; every other line must match
//
//	Name(positional, name=value, items=['a', 'b'])
//
// The parser is a small recursive-descent grammar that produces a structured
// Call (command name plus ordered and named arguments) before any semantic
// resolution happens. String values are double-quoted and may contain commas
// and parentheses; list items are single-quoted. There is no escape-sequence
// support for embedded quotes. Whitespace is allowed between a closing quote
// and the following comma or closing parenthesis.
package script
