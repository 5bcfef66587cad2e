/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package table

import (
	"regexp"
	"sort"
	"strings"
)

// filterTermPattern matches one filter expression term: an optional negation
// followed by an identifier.
var filterTermPattern = regexp.MustCompile(`^(!?)([\w\-]+)$`)

// filterTerm is one conjunct of a class filter: the entry must (or, when
// negated, must not) carry the named class.
type filterTerm struct {
	name     string
	required bool
}

// ClassFilter determines which entries a TypeDef applies to. A filter is
// either the literal wildcard, which applies to every entry, or a
// conjunction of class presence/absence terms.
//
// A nil ClassFilter never applies. Entries outside a filter's scope are
// exempt from the owning TypeDef's constraint.
type ClassFilter struct {
	wildcard bool
	terms    []filterTerm
}

// ParseFilter builds a ClassFilter from a filter expression: either the
// literal "*", or whitespace-separated identifier terms where a leading "!"
// means the class must be absent. Tokens that are not filter terms are
// skipped; an expression with no usable terms yields no filter at all.
func ParseFilter(expr string) *ClassFilter {
	expr = strings.TrimSpace(expr)
	if expr == "*" {
		return &ClassFilter{wildcard: true}
	}

	var terms []filterTerm
	for _, field := range strings.Fields(expr) {
		m := filterTermPattern.FindStringSubmatch(field)
		if m == nil {
			continue
		}
		terms = append(terms, filterTerm{
			name:     m[2],
			required: m[1] == "",
		})
	}
	if len(terms) == 0 {
		return nil
	}
	return &ClassFilter{terms: terms}
}

// Test reports whether the filter applies to the entry. A nil filter never
// applies; a wildcard filter always applies; otherwise every term must be
// satisfied.
func (f *ClassFilter) Test(e *Entry) bool {
	if f == nil {
		return false
	}
	if f.wildcard {
		return true
	}
	for _, term := range f.terms {
		if e.HasClass(term.name) != term.required {
			return false
		}
	}
	return true
}

// TypeDef is a named classification constraint: entries within its filter's
// scope must carry exactly one class from the allowed set. Declared in the
// file header and immutable thereafter.
type TypeDef struct {
	// Name is the type's name, also usable as a property name on entries.
	Name string

	allowed map[string]struct{}

	// Filter scopes the constraint. Nil means the constraint never
	// applies (legacy semantics, preserved deliberately).
	Filter *ClassFilter
}

// NewTypeDef creates a type definition with the given allowed class values.
func NewTypeDef(name string, allowed []string, filter *ClassFilter) *TypeDef {
	set := make(map[string]struct{}, len(allowed))
	for _, class := range allowed {
		set[class] = struct{}{}
	}
	return &TypeDef{Name: name, allowed: set, Filter: filter}
}

// Allows reports whether the value is in the type's allowed class set.
func (d *TypeDef) Allows(value string) bool {
	_, ok := d.allowed[value]
	return ok
}

// AllowedClasses returns the allowed class values in declaration-independent
// sorted order.
func (d *TypeDef) AllowedClasses() []string {
	classes := make([]string, 0, len(d.allowed))
	for class := range d.allowed {
		classes = append(classes, class)
	}
	sort.Strings(classes)
	return classes
}

// Test reports whether the entry satisfies the type constraint. Entries the
// filter does not apply to are exempt and satisfy the constraint; entries in
// scope must carry exactly one allowed class.
func (d *TypeDef) Test(e *Entry) bool {
	if !d.Filter.Test(e) {
		return true
	}
	matches := 0
	for class := range d.allowed {
		if e.HasClass(class) {
			matches++
		}
	}
	return matches == 1
}
