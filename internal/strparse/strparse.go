// Copyright 2024 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package strparse provides facilities for parsing strings, intended for use in
// tests and debug input.
package strparse

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/cockroachdb/appearance/internal/base"
	"github.com/cockroachdb/errors"
)

// Separators are the runes that always form their own token when parsing
// interval lists.
const Separators = "[](),:"

// Parser is a helper used to parse interval lists such as
// "pupil: [100,200) [150,250)" in test input.
//
// It takes a string and splits it into tokens. Tokens are separated by
// whitespace; in addition user-specified separators are also always separate
// tokens. For example, when passed the separators `[](),` the string
// `[10,20)` results in tokens `[`, `10`, `,`, `20`, `)`.
//
// All Parser methods throw panics instead of returning errors. The code
// that uses a Parser can recover them and convert them to errors.
type Parser struct {
	original  string
	tokens    []token
	lastToken token
}

type token struct {
	tok    string
	offset int
}

// MakeParser constructs a new Parser that converts any instance of the runes
// contained in [separators] into separate tokens, and consumes the provided
// input string.
func MakeParser(separators string, input string) Parser {
	p := Parser{original: input}
	start := -1
	flush := func(end int) {
		if start >= 0 {
			p.tokens = append(p.tokens, token{tok: input[start:end], offset: start})
			start = -1
		}
	}
	for off, r := range input {
		switch {
		case unicode.IsSpace(r):
			flush(off)
		case strings.ContainsRune(separators, r):
			flush(off)
			p.tokens = append(p.tokens, token{tok: string(r), offset: off})
		case start < 0:
			start = off
		}
	}
	flush(len(input))
	return p
}

// Done returns true if there are no more tokens.
func (p *Parser) Done() bool {
	return len(p.tokens) == 0
}

// Offset returns the offset of the next token.
func (p *Parser) Offset() int {
	if p.Done() {
		return len(p.original)
	}
	return p.tokens[0].offset
}

// Peek returns the next token, without consuming the token. Returns "" if there
// are no more tokens.
func (p *Parser) Peek() string {
	if p.Done() {
		p.lastToken = token{}
		return ""
	}
	p.lastToken = p.tokens[0]
	return p.tokens[0].tok
}

// Next returns the next token, or "" if there are no more tokens.
func (p *Parser) Next() string {
	res := p.Peek()
	if res != "" {
		p.tokens = p.tokens[1:]
	}
	return res
}

// Remaining returns all the remaining tokens, separated by spaces.
func (p *Parser) Remaining() string {
	var buf strings.Builder
	for _, tok := range p.tokens {
		if buf.Len() > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(tok.tok)
	}
	p.tokens = nil
	return buf.String()
}

// Expect consumes the next tokens, verifying that they exactly match the
// arguments.
func (p *Parser) Expect(tokens ...string) {
	for _, tok := range tokens {
		if res := p.Next(); res != tok {
			p.Errf("expected %q, got %q", tok, res)
		}
	}
}

// TryLabel consumes a "name:" prefix if present and returns the name.
func (p *Parser) TryLabel() (label string, ok bool) {
	if len(p.tokens) >= 2 && p.tokens[1].tok == ":" {
		label = p.Next()
		p.Next()
		return label, true
	}
	return "", false
}

// Int parses the next token as an integer.
func (p *Parser) Int() int {
	x, err := strconv.Atoi(p.Next())
	if err != nil {
		p.Errf("cannot parse number: %v", err)
	}
	return x
}

// Timestamp parses the next token as a 64-bit timestamp.
func (p *Parser) Timestamp() base.Timestamp {
	x, err := strconv.ParseInt(p.Next(), 10, 64)
	if err != nil {
		p.Errf("cannot parse timestamp: %v", err)
	}
	return x
}

// Interval parses the next tokens as an interval of the form [a,b) or [a,b].
// The closing bracket is informational only; intervals are always half-open.
func (p *Parser) Interval() base.Interval {
	p.Expect("[")
	start := p.Timestamp()
	p.Expect(",")
	end := p.Timestamp()
	if closing := p.Next(); closing != ")" && closing != "]" {
		p.Errf("expected closing bracket, got %q", closing)
	}
	iv := base.MakeInterval(start, end)
	if !iv.Valid() {
		p.Errf("interval %s has start after end", iv)
	}
	return iv
}

// Intervals parses intervals until the input is exhausted. The literal
// "(none)" denotes the empty list.
func (p *Parser) Intervals() []base.Interval {
	var set []base.Interval
	if p.Peek() == "(" {
		p.Expect("(", "none", ")")
		return set
	}
	for !p.Done() {
		set = append(set, p.Interval())
	}
	return set
}

// Timestamps parses the remaining tokens as a flat, comma or space separated
// list of timestamps, e.g. "100, 200, 150, 250" or "[100 200 150 250]".
func (p *Parser) Timestamps() []base.Timestamp {
	flat := []base.Timestamp{}
	bracketed := p.Peek() == "["
	if bracketed {
		p.Next()
	}
	for !p.Done() {
		switch p.Peek() {
		case ",":
			p.Next()
			continue
		case "]":
			if bracketed {
				p.Next()
				return flat
			}
		}
		flat = append(flat, p.Timestamp())
	}
	if bracketed {
		p.Errf("missing closing bracket")
	}
	return flat
}

// Errf panics with an error which includes the original string and the last
// token.
func (p *Parser) Errf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	panic(errors.Errorf("error parsing %q at token %q: %s", p.original, p.lastToken.tok, msg))
}

// ParseIntervals parses a whole string with Parser.Intervals.
func ParseIntervals(s string) []base.Interval {
	p := MakeParser(Separators, s)
	return p.Intervals()
}
