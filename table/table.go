/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package table

import (
	"fmt"
	"math/rand"
	"sort"
)

// DefaultHiddenClass is hidden in every table regardless of declarations.
const DefaultHiddenClass = "nsfw"

// Table is a named vocabulary collection: an ordered list of entries with a
// fixed number of named subtype slots. A table is mutable while a load
// builds it and immutable after Commit.
type Table struct {
	// Name is the table's lowercase identifier.
	Name string

	subtypes  []string
	hidden    map[string]struct{}
	entries   []*Entry
	committed bool
}

// New creates an empty table with the given name and subtype slot count.
// The DefaultHiddenClass is always hidden.
func New(name string, subtypeCount int) *Table {
	return &Table{
		Name:     name,
		subtypes: make([]string, subtypeCount),
		hidden:   map[string]struct{}{DefaultHiddenClass: {}},
	}
}

// SubtypeCount returns the number of term slots per entry.
func (t *Table) SubtypeCount() int {
	return len(t.subtypes)
}

// RegisterSubtype names the subtype slot at the given index.
func (t *Table) RegisterSubtype(i int, name string) error {
	if t.committed {
		return ErrCommitted
	}
	if i < 0 || i >= len(t.subtypes) {
		return fmt.Errorf("%w: %d", ErrSubtypeIndex, i)
	}
	t.subtypes[i] = name
	return nil
}

// SubtypeIndex returns the slot index of the named subtype, or -1.
func (t *Table) SubtypeIndex(name string) int {
	for i, sub := range t.subtypes {
		if sub == name {
			return i
		}
	}
	return -1
}

// Subtypes returns the subtype names in slot order.
func (t *Table) Subtypes() []string {
	out := make([]string, len(t.subtypes))
	copy(out, t.subtypes)
	return out
}

// HideClass adds a class to the table's hidden set. Hidden classes exclude
// entries from default selection.
func (t *Table) HideClass(name string) error {
	if t.committed {
		return ErrCommitted
	}
	t.hidden[name] = struct{}{}
	return nil
}

// IsHidden reports whether the named class is hidden.
func (t *Table) IsHidden(name string) bool {
	_, ok := t.hidden[name]
	return ok
}

// HiddenClasses returns the hidden class names in sorted order.
func (t *Table) HiddenClasses() []string {
	names := make([]string, 0, len(t.hidden))
	for name := range t.hidden {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AddEntry appends an entry. Entries keep their declaration order.
func (t *Table) AddEntry(e *Entry) error {
	if t.committed {
		return ErrCommitted
	}
	t.entries = append(t.entries, e)
	return nil
}

// Entries returns the entries in declaration order.
func (t *Table) Entries() []*Entry {
	return t.entries
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Commit finalizes the table. No entry or subtype may be added afterwards.
func (t *Table) Commit() {
	t.committed = true
}

// Committed reports whether the table has been finalized.
func (t *Table) Committed() bool {
	return t.committed
}

// Query selects entries from a committed table.
type Query struct {
	// Subtype names the term slot the caller wants; empty means the
	// first slot.
	Subtype string

	// Classes are classes a matching entry must carry.
	Classes []string

	// AllowHidden includes entries carrying hidden classes.
	AllowHidden bool
}

// Pick returns one entry chosen by weighted random selection among entries
// matching the query. Entries carrying a hidden class are excluded unless
// the query allows them.
func (t *Table) Pick(rng *rand.Rand, q Query) (*Entry, error) {
	if !t.committed {
		return nil, ErrNotCommitted
	}
	if q.Subtype != "" && t.SubtypeIndex(q.Subtype) < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSubtype, q.Subtype)
	}

	var pool []*Entry
	total := 0
	for _, e := range t.entries {
		if !t.matches(e, q) {
			continue
		}
		pool = append(pool, e)
		total += e.Weight
	}
	if len(pool) == 0 || total <= 0 {
		return nil, ErrNoEntries
	}

	n := rng.Intn(total)
	for _, e := range pool {
		n -= e.Weight
		if n < 0 {
			return e, nil
		}
	}
	return pool[len(pool)-1], nil
}

func (t *Table) matches(e *Entry, q Query) bool {
	if !q.AllowHidden {
		for name := range t.hidden {
			if e.HasClass(name) {
				return false
			}
		}
	}
	for _, class := range q.Classes {
		if !e.HasClass(class) {
			return false
		}
	}
	return true
}
