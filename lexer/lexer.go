/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package lexer tokenizes legacy vocabulary table files.
//
// The format is line-oriented. Each significant line produces exactly one
// token:
//
//	#subs default plural     directive
//	> cat/cats               entry
//	>> mouse/----+ice        diff entry
//	| weight 5               property
//
// Blank lines and // comment lines are skipped. A nonblank line with no
// prefix is tolerated as an entry, for legacy files that omitted ">".
package lexer

import "strings"

// Kind identifies the token type of one source line.
type Kind int

const (
	// Directive is a #-prefixed file or scope instruction.
	Directive Kind = iota

	// Entry is a vocabulary entry line with fully spelled term forms.
	Entry

	// DiffEntry is an entry line whose alternate forms are written as
	// edits relative to the base form.
	DiffEntry

	// Property is a property line applying to the preceding entry.
	Property
)

// String returns the token kind name.
func (k Kind) String() string {
	switch k {
	case Directive:
		return "directive"
	case Entry:
		return "entry"
	case DiffEntry:
		return "diff entry"
	case Property:
		return "property"
	default:
		return "unknown"
	}
}

// Token is one classified source line.
type Token struct {
	Kind Kind

	// Line is the 1-based source line number.
	Line int

	// Value is the line content after the kind prefix, trimmed.
	Value string
}

// Tokenize splits source text into an ordered token stream. It never fails:
// classification is purely prefix-based and unclassifiable lines fall back
// to Entry.
func Tokenize(data []byte) []Token {
	var tokens []Token

	for i, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		tok := Token{Line: i + 1}
		switch {
		case strings.HasPrefix(line, "#"):
			tok.Kind = Directive
			tok.Value = strings.TrimSpace(line[1:])
		case strings.HasPrefix(line, ">>"):
			tok.Kind = DiffEntry
			tok.Value = strings.TrimSpace(line[2:])
		case strings.HasPrefix(line, ">"):
			tok.Kind = Entry
			tok.Value = strings.TrimSpace(line[1:])
		case strings.HasPrefix(line, "|"):
			tok.Kind = Property
			tok.Value = strings.TrimSpace(line[1:])
		default:
			tok.Kind = Entry
			tok.Value = line
		}
		tokens = append(tokens, tok)
	}

	return tokens
}
