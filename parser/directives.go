/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"strings"

	"bennypowers.dev/milon/internal/strutil"
	"bennypowers.dev/milon/lexer"
	"bennypowers.dev/milon/table"
)

// directiveKind is the closed set of recognized directives. Unrecognized
// names classify as directiveUnknown and are ignored, matching the legacy
// format's forward-compatibility tolerance.
type directiveKind int

const (
	directiveUnknown directiveKind = iota
	directiveName
	directiveSubs
	directiveVersion
	directiveHidden
	directiveNSFW
	directiveSFW
	directiveClass
	directiveType
)

func classifyDirective(name string) directiveKind {
	switch name {
	case "name":
		return directiveName
	case "subs":
		return directiveSubs
	case "version":
		return directiveVersion
	case "hidden":
		return directiveHidden
	case "nsfw":
		return directiveNSFW
	case "sfw":
		return directiveSFW
	case "class":
		return directiveClass
	case "type":
		return directiveType
	default:
		return directiveUnknown
	}
}

// headerOnly reports whether the directive may only appear before the first
// entry.
func (k directiveKind) headerOnly() bool {
	switch k {
	case directiveName, directiveSubs, directiveVersion, directiveHidden, directiveType:
		return true
	default:
		return false
	}
}

func (p *state) handleDirective(tok lexer.Token) *Error {
	args := strutil.SplitArgs(tok.Value)
	if len(args) == 0 {
		return nil
	}
	name := strings.ToLower(args[0])
	args = args[1:]

	kind := classifyDirective(name)
	if kind.headerOnly() && !p.header {
		return p.errorf(tok.Line, "directive '#%s' may only appear before the first entry", name)
	}

	switch kind {
	case directiveName:
		if len(args) != 1 {
			return p.errorf(tok.Line, "directive '#name' expects one argument, got %d", len(args))
		}
		if !strutil.ValidName(args[0]) {
			return p.errorf(tok.Line, "invalid table name: %q", args[0])
		}
		p.name = strings.ToLower(args[0])

	case directiveSubs:
		if len(args) == 0 {
			return p.errorf(tok.Line, "directive '#subs' expects at least one subtype name")
		}
		subtypes := make([]string, len(args))
		for i, sub := range args {
			subtypes[i] = strings.ToLower(strings.TrimSpace(sub))
		}
		p.subtypes = subtypes

	case directiveVersion:
		// Accepted and ignored for legacy compatibility.

	case directiveHidden:
		for _, class := range args {
			if strutil.ValidName(class) {
				p.hidden[class] = struct{}{}
			}
		}

	case directiveNSFW:
		p.scoped[table.DefaultHiddenClass] = struct{}{}

	case directiveSFW:
		delete(p.scoped, table.DefaultHiddenClass)

	case directiveClass:
		if len(args) < 2 {
			return p.errorf(tok.Line, "directive '#class' expects an operation and at least one class")
		}
		switch strings.ToLower(args[0]) {
		case "add":
			for _, class := range args[1:] {
				p.scoped[class] = struct{}{}
			}
		case "remove":
			for _, class := range args[1:] {
				delete(p.scoped, class)
			}
		}

	case directiveType:
		return p.handleTypeDirective(tok, args)

	case directiveUnknown:
		// Ignored.
	}

	return nil
}

// handleTypeDirective registers a custom type: its name, whitespace-split
// allowed class values, and a filter expression. A blank filter expression,
// or one with no usable terms, means the type has no filter and never
// applies to any entry.
func (p *state) handleTypeDirective(tok lexer.Token, args []string) *Error {
	if len(args) != 3 {
		return p.errorf(tok.Line, "directive '#type' expects 3 arguments, got %d", len(args))
	}

	name := strings.ToLower(args[0])
	if !strutil.ValidName(name) {
		return p.errorf(tok.Line, "invalid type name: %q", args[0])
	}

	var filter *table.ClassFilter
	if expr := strings.TrimSpace(args[2]); expr != "" {
		filter = table.ParseFilter(expr)
	}

	def := table.NewTypeDef(name, strings.Fields(args[1]), filter)
	if _, exists := p.typesByName[name]; exists {
		for i, existing := range p.types {
			if existing.Name == name {
				p.types[i] = def
				break
			}
		}
	} else {
		p.types = append(p.types, def)
	}
	p.typesByName[name] = def
	return nil
}
