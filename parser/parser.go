/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser interprets a vocabulary file token stream and builds a
// committed table. Parsing is a single sequential pass over the tokens
// followed by one type-constraint validation pass; the first violation
// aborts the load and no partial table is returned.
package parser

import (
	"strings"

	"bennypowers.dev/milon/diff"
	"bennypowers.dev/milon/lexer"
	"bennypowers.dev/milon/table"
)

// TermEncoder encodes an alternate term form as an edit script relative to
// a base form. The parser stores the encoded script; decoding happens
// lazily downstream.
type TermEncoder interface {
	Encode(base, alt string) string
}

// Options configures a parse.
type Options struct {
	// Encoder encodes diff-entry alternate forms. Nil selects diff.Mark.
	Encoder TermEncoder
}

// record pairs a built entry with its originating token so post-load
// validation can report the source line.
type record struct {
	entry *table.Entry
	token lexer.Token
}

// state is the parser's accumulating context, owned by a single Parse call.
type state struct {
	filePath string
	opts     Options

	name     string
	subtypes []string

	// header is true until the first entry; header-only directives are
	// rejected once it clears.
	header bool

	// scoped is the class set applied to each entry at creation,
	// mutated by #class add/remove and the deprecated #nsfw/#sfw.
	scoped map[string]struct{}

	hidden      map[string]struct{}
	types       []*table.TypeDef
	typesByName map[string]*table.TypeDef

	// current is the most recently built entry; property tokens apply
	// to it until the next entry begins.
	current *table.Entry
	entries []record
}

// Parse consumes the token stream and returns the committed table, or the
// first fatal error. filePath is used only for error reporting.
func Parse(filePath string, tokens []lexer.Token, opts Options) (*table.Table, error) {
	if opts.Encoder == nil {
		opts.Encoder = diff.Mark{}
	}

	p := &state{
		filePath:    filePath,
		opts:        opts,
		subtypes:    []string{"default"},
		header:      true,
		scoped:      make(map[string]struct{}),
		hidden:      map[string]struct{}{table.DefaultHiddenClass: {}},
		typesByName: make(map[string]*table.TypeDef),
	}

	for _, tok := range tokens {
		var err *Error
		switch tok.Kind {
		case lexer.Directive:
			err = p.handleDirective(tok)
		case lexer.Entry:
			err = p.beginEntry(tok, false)
		case lexer.DiffEntry:
			err = p.beginEntry(tok, true)
		case lexer.Property:
			err = p.handleProperty(tok)
		}
		if err != nil {
			return nil, err
		}
	}

	if err := p.validateTypes(); err != nil {
		return nil, err
	}

	return p.assemble()
}

// beginEntry builds an entry from an Entry or DiffEntry token and makes it
// current. Diff-entry alternate forms are stored as edit scripts relative
// to the base form.
func (p *state) beginEntry(tok lexer.Token, diffEncoded bool) *Error {
	if p.name == "" {
		return p.errorf(tok.Line, "missing table name before first entry")
	}
	if tok.Value == "" {
		return p.errorf(tok.Line, "empty entry")
	}
	p.header = false

	parts := strings.Split(tok.Value, "/")
	terms := make([]table.Term, len(parts))
	base := strings.TrimSpace(parts[0])
	terms[0] = table.Term{Value: base}
	for i := 1; i < len(parts); i++ {
		value := strings.TrimSpace(parts[i])
		if diffEncoded {
			terms[i] = table.Term{Value: p.opts.Encoder.Encode(base, value), Diff: true}
		} else {
			terms[i] = table.Term{Value: value}
		}
	}

	entry := table.NewEntry(terms)
	for class := range p.scoped {
		entry.AddClass(class, false)
	}

	p.entries = append(p.entries, record{entry: entry, token: tok})
	p.current = entry
	return nil
}

// assemble commits the finished table: subtype names registered by
// position, hidden classes applied, entries inserted in declaration order.
func (p *state) assemble() (*table.Table, error) {
	t := table.New(p.name, len(p.subtypes))
	for i, sub := range p.subtypes {
		if err := t.RegisterSubtype(i, sub); err != nil {
			return nil, p.errorf(0, "registering subtype %q: %v", sub, err)
		}
	}
	for class := range p.hidden {
		if err := t.HideClass(class); err != nil {
			return nil, p.errorf(0, "hiding class %q: %v", class, err)
		}
	}
	for _, rec := range p.entries {
		if err := t.AddEntry(rec.entry); err != nil {
			return nil, p.errorf(rec.token.Line, "adding entry: %v", err)
		}
	}
	t.Commit()
	return t, nil
}
