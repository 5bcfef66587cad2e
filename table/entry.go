/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package table provides the in-memory vocabulary table model: tables,
// entries, term forms, and the type-constraint machinery applied to them.
package table

import "sort"

// Term is a single term form occupying one subtype slot of an entry.
type Term struct {
	// Value is the term text. For diff entries this is an edit script
	// relative to the entry's base term rather than the literal form.
	Value string

	// Pronunciation is the optional pronunciation for this form.
	Pronunciation string

	// Diff marks Value as an edit script to be expanded lazily against
	// the entry's base term by downstream consumers.
	Diff bool
}

// Entry is one vocabulary record: one term form per subtype slot, a set of
// classes (tags), and a selection weight.
type Entry struct {
	terms []Term

	// classes maps class name to its optional flag. An optional class is
	// present on the entry but not required when matching queries.
	classes map[string]bool

	// Weight is the relative selection weight used by weighted-random
	// queries. Defaults to 1.
	Weight int
}

// NewEntry creates an entry with the given term forms and weight 1.
func NewEntry(terms []Term) *Entry {
	return &Entry{
		terms:   terms,
		classes: make(map[string]bool),
		Weight:  1,
	}
}

// TermCount returns the number of term forms (one per subtype slot).
func (e *Entry) TermCount() int {
	return len(e.terms)
}

// Term returns the term form at the given subtype index.
func (e *Entry) Term(i int) Term {
	return e.terms[i]
}

// SetPronunciation sets the pronunciation of the term at the given index.
func (e *Entry) SetPronunciation(i int, pron string) {
	e.terms[i].Pronunciation = pron
}

// AddClass adds a class to the entry. Adding an existing class updates its
// optional flag.
func (e *Entry) AddClass(name string, optional bool) {
	e.classes[name] = optional
}

// RemoveClass removes a class from the entry.
func (e *Entry) RemoveClass(name string) {
	delete(e.classes, name)
}

// HasClass reports whether the entry carries the named class, optional or
// not.
func (e *Entry) HasClass(name string) bool {
	_, ok := e.classes[name]
	return ok
}

// IsOptionalClass reports whether the named class is present and marked
// optional.
func (e *Entry) IsOptionalClass(name string) bool {
	return e.classes[name]
}

// Classes returns the entry's class names in sorted order.
func (e *Entry) Classes() []string {
	names := make([]string, 0, len(e.classes))
	for name := range e.classes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
