// Copyright 2026 The configster Authors
// SPDX-License-Identifier: BSD-3-Clause

package configster

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

const version = "0.5.0"

// Version returns the configster library version.
func Version() string {
	return version
}

// OptionProperties is a single parsed configuration entry: an option name
// and the value that followed it on the line.
type OptionProperties struct {
	Option string
	Value  Value
}

// Value holds the primary value of an entry and its attribute list.
type Value struct {
	// Primary is the trimmed text between the equals sign and the first
	// attribute delimiter. It may be empty.
	Primary string

	// Attributes are the trimmed delimiter-separated tokens following
	// Primary, in source order. Adjacent delimiters produce empty tokens,
	// which are preserved.
	Attributes []string
}

// Options is an ordered list of parsed entries. Entries appear in the same
// order as their source lines.
type Options []OptionProperties

// Parse parses configuration text. delim is the attribute delimiter: the
// character separating the primary value from its attributes and the
// attributes from each other (commonly ',').
//
// Blank lines and comment lines contribute no entry. A line whose option
// name contains whitespace produces an entry named
// "InvalidOption_on_Line<N>" with an empty value, where N is the 1-based
// line number; callers can detect and handle such lines downstream without
// the whole parse failing.
//
// If reading from r fails, Parse returns a nil list and the read error;
// it never returns a partial result.
//
// See the Syntax section in the package documentation for the format
// recognized by Parse.
func Parse(r io.Reader, delim rune) (Options, error) {
	s := bufio.NewScanner(r)
	var opts Options
	lineno := 1
	for ; s.Scan(); lineno++ {
		switch res := parseLine(s.Text(), delim); res.kind {
		case lineSkip:
		case lineInvalid:
			opts = append(opts, OptionProperties{
				Option: fmt.Sprintf("InvalidOption_on_Line%d", lineno),
			})
		case lineRecord:
			opts = append(opts, OptionProperties{
				Option: res.option,
				Value: Value{
					Primary:    res.primary,
					Attributes: res.attributes,
				},
			})
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("parse config file: line %d: %w", lineno, err)
	}
	return opts, nil
}

// ParseFile parses the configuration file at the given path. It returns an
// error if the file cannot be opened or read; there is no partial result.
func ParseFile(path string, delim rune) (Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	defer f.Close()
	return Parse(f, delim)
}

type lineKind int

const (
	lineSkip lineKind = iota
	lineRecord
	lineInvalid
)

// lineResult is the outcome of parsing a single line: a record payload, a
// skip for blank and comment lines, or an invalid marker for a line whose
// option name contains whitespace. The caller tracks line numbers, so an
// invalid result carries no payload.
type lineResult struct {
	kind       lineKind
	option     string
	primary    string
	attributes []string
}

func parseLine(line string, delim rune) lineResult {
	line = strings.TrimSpace(line)
	if line == "" || line[0] == '#' {
		return lineResult{kind: lineSkip}
	}

	option, value := line, ""
	if i := strings.IndexByte(line, '='); i != -1 {
		option = strings.TrimSpace(line[:i])
		value = strings.TrimSpace(line[i+1:])
	}

	// An equals sign is required after the option name; whitespace inside
	// the name is invalid. Only the text before the first '=' is checked,
	// so a stray '=' later in the value has no effect.
	if strings.IndexFunc(option, unicode.IsSpace) != -1 {
		return lineResult{kind: lineInvalid}
	}
	if option == "" {
		// A line starting with '=' has no option name.
		return lineResult{kind: lineSkip}
	}

	res := lineResult{kind: lineRecord, option: option, primary: value}
	if i := strings.IndexRune(value, delim); i != -1 {
		res.primary = strings.TrimSpace(value[:i])
		tail := value[i+utf8.RuneLen(delim):]
		res.attributes = strings.Split(tail, string(delim))
		for j, a := range res.attributes {
			res.attributes[j] = strings.TrimSpace(a)
		}
	}
	return res
}
