package script

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// LineKind partitions raw script lines.
type LineKind int

const (
	LineBlank LineKind = iota
	LineComment
	LineCommand
)

// Line is one raw line of a script file.
type Line struct {
	Num  int // 1-based
	Raw  string
	Kind LineKind
}

// Script is an ordered sequence of raw lines read from one file. There is no
// cross-line state beyond the comment/command partition; parsing of command
// lines happens lazily, one line at a time, during the driver's Running phase.
type Script struct {
	Path  string
	Lines []Line
}

// Load reads a script file from disk.
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()
	return Parse(f, path)
}

// Parse reads a script from r, tagging each line as blank, comment, or
// command. path is recorded for diagnostics only.
func Parse(r io.Reader, path string) (*Script, error) {
	s := &Script{Path: path}
	scanner := bufio.NewScanner(r)
	num := 0
	for scanner.Scan() {
		num++
		raw := scanner.Text()
		kind := LineCommand
		switch trimmed := strings.TrimSpace(raw); {
		case trimmed == "":
			kind = LineBlank
		case strings.HasPrefix(trimmed, "#"):
			kind = LineComment
		}
		s.Lines = append(s.Lines, Line{Num: num, Raw: raw, Kind: kind})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	return s, nil
}

// Commands returns the command lines of the script in file order.
func (s *Script) Commands() []Line {
	var cmds []Line
	for _, line := range s.Lines {
		if line.Kind == LineCommand {
			cmds = append(cmds, line)
		}
	}
	return cmds
}
