/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"strconv"
	"strings"
	"unicode"

	"bennypowers.dev/milon/internal/strutil"
	"bennypowers.dev/milon/lexer"
)

// propertyKind is the closed set of built-in property names. Any other name
// resolves through the type registry as propertyCustom.
type propertyKind int

const (
	propertyCustom propertyKind = iota
	propertyClass
	propertyWeight
	propertyPron
)

func classifyProperty(name string) propertyKind {
	switch name {
	case "class":
		return propertyClass
	case "weight":
		return propertyWeight
	case "pron":
		return propertyPron
	default:
		return propertyCustom
	}
}

// cutProperty splits a property token value at the first whitespace
// boundary only.
func cutProperty(value string) (name, remainder string) {
	i := strings.IndexFunc(value, unicode.IsSpace)
	if i < 0 {
		return value, ""
	}
	return value[:i], strings.TrimSpace(value[i:])
}

func (p *state) handleProperty(tok lexer.Token) *Error {
	if p.current == nil {
		return p.errorf(tok.Line, "property without preceding entry")
	}

	name, remainder := cutProperty(tok.Value)
	name = strings.ToLower(name)

	switch classifyProperty(name) {
	case propertyClass:
		for _, class := range strings.Fields(remainder) {
			optional := strings.HasSuffix(class, "?")
			class = strings.TrimSuffix(class, "?")
			p.current.AddClass(strutil.Unescape(class), optional)
		}

	case propertyWeight:
		weight, err := strconv.Atoi(remainder)
		if err != nil {
			return p.errorf(tok.Line, "invalid weight value: %q", remainder)
		}
		p.current.Weight = weight

	case propertyPron:
		// A segment count that does not match the subtype count is
		// dropped without failing the load (legacy tolerance). The same
		// drop covers entries declared with fewer forms than subtypes.
		parts := strings.Split(remainder, "/")
		if len(parts) != len(p.subtypes) || len(parts) > p.current.TermCount() {
			return nil
		}
		for i, part := range parts {
			p.current.SetPronunciation(i, strings.TrimSpace(part))
		}

	case propertyCustom:
		def, ok := p.typesByName[name]
		if !ok {
			return p.errorf(tok.Line, "unknown property name: %q", name)
		}
		value := strutil.Unescape(remainder)
		if !def.Allows(value) {
			return p.errorf(tok.Line, "%q is not a valid value for type '%s'", value, def.Name)
		}
		p.current.AddClass(value, false)
	}

	return nil
}
