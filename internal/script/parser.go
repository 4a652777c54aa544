package script

import (
	"fmt"
	"strings"
)

// ParseError describes a syntax error in a single command line. The driver
// reports it and skips the offending line; it never aborts the whole run.
type ParseError struct {
	Line int
	Col  int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d, col %d: %s", e.Line, e.Col, e.Msg)
	}
	return fmt.Sprintf("col %d: %s", e.Col, e.Msg)
}

// parser is a character-level recursive-descent parser over one command line.
type parser struct {
	in   string
	pos  int
	line int
}

// ParseCall parses a single command line into a Call. lineNum is used for
// error reporting and may be zero.
func ParseCall(raw string, lineNum int) (*Call, error) {
	p := &parser{in: strings.TrimSpace(raw), line: lineNum}

	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	call := &Call{Name: name, Line: lineNum}

	p.skipSpace()
	if !p.accept('(') {
		return nil, p.errf("expected '(' after command name %q", name)
	}

	p.skipSpace()
	if !p.accept(')') {
		for {
			arg, err := p.arg()
			if err != nil {
				return nil, err
			}
			call.Args = append(call.Args, arg)

			p.skipSpace()
			if p.accept(',') {
				continue
			}
			if p.accept(')') {
				break
			}
			return nil, p.errf("expected ',' or ')' in argument list")
		}
	}

	p.skipSpace()
	if p.pos != len(p.in) {
		return nil, p.errf("unexpected trailing text %q", p.in[p.pos:])
	}
	return call, nil
}

// arg parses one argument: either name=value or a bare positional value.
func (p *parser) arg() (Arg, error) {
	p.skipSpace()
	start := p.pos

	// Try the named form first. An identifier followed by '=' is a parameter
	// name; anything else rewinds and is treated as a positional value.
	if name, err := p.ident(); err == nil {
		p.skipSpace()
		if p.accept('=') {
			val, err := p.value()
			if err != nil {
				return Arg{}, err
			}
			return Arg{Name: name, Value: val}, nil
		}
	}
	p.pos = start

	val, err := p.value()
	if err != nil {
		return Arg{}, err
	}
	return Arg{Value: val}, nil
}

// value parses a double-quoted string, a bracketed list, or a bare scalar.
func (p *parser) value() (Value, error) {
	p.skipSpace()
	switch {
	case p.peek() == '"':
		s, err := p.quoted('"')
		if err != nil {
			return Value{}, err
		}
		return StringVal(s), nil
	case p.peek() == '[':
		return p.list()
	default:
		s, err := p.bare(",)")
		if err != nil {
			return Value{}, err
		}
		return StringVal(s), nil
	}
}

// list parses [ 'item', 'item' ]. Items are single-quoted; a quoted item may
// contain commas and brackets.
func (p *parser) list() (Value, error) {
	p.accept('[')
	items := []string{}

	p.skipSpace()
	if p.accept(']') {
		return Value{Kind: ValueList, List: items}, nil
	}
	for {
		p.skipSpace()
		var item string
		var err error
		if p.peek() == '\'' {
			item, err = p.quoted('\'')
		} else {
			item, err = p.bare(",]")
		}
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)

		p.skipSpace()
		if p.accept(',') {
			continue
		}
		if p.accept(']') {
			return Value{Kind: ValueList, List: items}, nil
		}
		return Value{}, p.errf("expected ',' or ']' in list value")
	}
}

// quoted consumes a value delimited by quote. There are no escape sequences;
// the value runs to the next occurrence of the same quote character.
func (p *parser) quoted(quote byte) (string, error) {
	p.accept(rune(quote))
	start := p.pos
	idx := strings.IndexByte(p.in[p.pos:], quote)
	if idx < 0 {
		return "", p.errf("unterminated %c-quoted value", quote)
	}
	p.pos += idx + 1
	return p.in[start : p.pos-1], nil
}

// bare consumes an unquoted scalar up to any byte in stop, trimming
// surrounding whitespace. Quotes inside a bare value are rejected so that
// malformed quoting surfaces as a parse error instead of silently becoming
// part of the value.
func (p *parser) bare(stop string) (string, error) {
	start := p.pos
	for p.pos < len(p.in) && !strings.ContainsRune(stop, rune(p.in[p.pos])) {
		p.pos++
	}
	s := strings.TrimSpace(p.in[start:p.pos])
	if s == "" {
		return "", p.errf("expected a value")
	}
	if strings.ContainsAny(s, `"'[`) {
		return "", p.errf("malformed value %q", s)
	}
	return s, nil
}

// ident consumes an identifier: [A-Za-z_][A-Za-z0-9_]*.
func (p *parser) ident() (string, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.in) {
		c := p.in[p.pos]
		alpha := c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		digit := c >= '0' && c <= '9'
		if !alpha && !(digit && p.pos > start) {
			break
		}
		p.pos++
	}
	if p.pos == start {
		return "", p.errf("expected an identifier")
	}
	return p.in[start:p.pos], nil
}

func (p *parser) skipSpace() {
	for p.pos < len(p.in) && (p.in[p.pos] == ' ' || p.in[p.pos] == '\t') {
		p.pos++
	}
}

// peek returns the current byte or 0 at end of input.
func (p *parser) peek() byte {
	if p.pos >= len(p.in) {
		return 0
	}
	return p.in[p.pos]
}

// accept consumes c if it is the current character.
func (p *parser) accept(c rune) bool {
	if p.pos < len(p.in) && rune(p.in[p.pos]) == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser) errf(format string, args ...any) *ParseError {
	return &ParseError{Line: p.line, Col: p.pos + 1, Msg: fmt.Sprintf(format, args...)}
}
