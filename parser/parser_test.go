/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser_test

import (
	"reflect"
	"strings"
	"testing"

	"bennypowers.dev/milon/diff"
	"bennypowers.dev/milon/lexer"
	"bennypowers.dev/milon/parser"
	"bennypowers.dev/milon/table"
)

func parse(t *testing.T, src string) (*table.Table, error) {
	t.Helper()
	return parser.Parse("test.tbl", lexer.Tokenize([]byte(src)), parser.Options{})
}

func mustParse(t *testing.T, src string) *table.Table {
	t.Helper()
	tbl, err := parse(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tbl
}

func TestParse_SimpleEntryWithWeight(t *testing.T) {
	tbl := mustParse(t, `
#name foo
#subs default
> cat
| weight 5
`)

	if tbl.Name != "foo" {
		t.Errorf("expected table name foo, got %q", tbl.Name)
	}
	if tbl.SubtypeCount() != 1 {
		t.Errorf("expected 1 subtype, got %d", tbl.SubtypeCount())
	}
	if tbl.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", tbl.Len())
	}

	e := tbl.Entries()[0]
	if e.Term(0).Value != "cat" {
		t.Errorf("expected term cat, got %q", e.Term(0).Value)
	}
	if e.Weight != 5 {
		t.Errorf("expected weight 5, got %d", e.Weight)
	}
	if len(e.Classes()) != 0 {
		t.Errorf("expected no classes, got %v", e.Classes())
	}
}

func TestParse_TypeSatisfiedByOneClass(t *testing.T) {
	tbl := mustParse(t, `
#name foo
#subs default
#type animal "cat dog" *
> cat
| class cat
`)

	if tbl.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", tbl.Len())
	}
}

func TestParse_TypeViolatedByTwoClasses(t *testing.T) {
	_, err := parse(t, `
#name foo
#subs default
#type animal "cat dog" *
> cat
| class cat
| class dog
`)

	if err == nil {
		t.Fatal("expected a type-constraint error")
	}
	if !strings.Contains(err.Error(), "animal") {
		t.Errorf("expected error to name the violated type, got: %v", err)
	}
	if !strings.Contains(err.Error(), "cat") {
		t.Errorf("expected error to name the entry, got: %v", err)
	}
}

func TestParse_HeaderDirectiveAfterEntry(t *testing.T) {
	_, err := parse(t, `
#name foo
> cat
#subs default
`)

	if err == nil {
		t.Fatal("expected a header-ordering error")
	}
	if !strings.Contains(err.Error(), "#subs") {
		t.Errorf("expected error to name the directive, got: %v", err)
	}
}

func TestParse_Pronunciations(t *testing.T) {
	tbl := mustParse(t, `
#name foo
#subs default plural
> cat/cats
| pron kat/kats
`)

	e := tbl.Entries()[0]
	if e.Term(0).Pronunciation != "kat" {
		t.Errorf("expected pron kat, got %q", e.Term(0).Pronunciation)
	}
	if e.Term(1).Pronunciation != "kats" {
		t.Errorf("expected pron kats, got %q", e.Term(1).Pronunciation)
	}
}

func TestParse_PronunciationCountMismatchIgnored(t *testing.T) {
	tbl := mustParse(t, `
#name foo
#subs default plural
> cat/cats
| pron kat
`)

	e := tbl.Entries()[0]
	if e.Term(0).Pronunciation != "" || e.Term(1).Pronunciation != "" {
		t.Error("mismatched pronunciation count must leave pronunciations unset")
	}
}

func TestParse_PronunciationOnShortEntryIgnored(t *testing.T) {
	// The entry declares fewer forms than the table has subtypes; the
	// pronunciation has nowhere to land past the first term and is
	// dropped whole rather than failing the load.
	tbl := mustParse(t, `
#name foo
#subs default plural
> cat
| pron kat/kats
`)

	e := tbl.Entries()[0]
	if e.TermCount() != 1 {
		t.Fatalf("expected 1 term, got %d", e.TermCount())
	}
	if e.Term(0).Pronunciation != "" {
		t.Errorf("expected pronunciation unset, got %q", e.Term(0).Pronunciation)
	}
}

func TestParse_DefaultSubtypeWhenSubsAbsent(t *testing.T) {
	tbl := mustParse(t, `
#name foo
> cat
`)

	if tbl.SubtypeCount() != 1 {
		t.Errorf("expected 1 subtype, got %d", tbl.SubtypeCount())
	}
	if got := tbl.Subtypes(); got[0] != "default" {
		t.Errorf("expected default subtype, got %v", got)
	}
}

func TestParse_MissingNameBeforeEntry(t *testing.T) {
	_, err := parse(t, `
#subs default
> cat
`)

	if err == nil {
		t.Fatal("expected a missing-name error")
	}
	if !strings.Contains(err.Error(), "table name") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestParse_EmptyEntry(t *testing.T) {
	_, err := parse(t, "#name foo\n>")
	if err == nil {
		t.Fatal("expected an empty-entry error")
	}
}

func TestParse_PropertyWithoutEntry(t *testing.T) {
	_, err := parse(t, `
#name foo
| weight 2
`)

	if err == nil {
		t.Fatal("expected a property-without-entry error")
	}
	if !strings.Contains(err.Error(), "property") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestParse_MalformedWeight(t *testing.T) {
	_, err := parse(t, `
#name foo
> cat
| weight heavy
`)

	if err == nil {
		t.Fatal("expected a malformed-weight error")
	}
	if !strings.Contains(err.Error(), "weight") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestParse_UnknownPropertyName(t *testing.T) {
	_, err := parse(t, `
#name foo
> cat
| flavor sweet
`)

	if err == nil {
		t.Fatal("expected an unknown-property error")
	}
	if !strings.Contains(err.Error(), "flavor") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestParse_CustomTypeProperty(t *testing.T) {
	tbl := mustParse(t, `
#name foo
#type gender "masc fem" *
> abba
| gender masc
`)

	e := tbl.Entries()[0]
	if !e.HasClass("masc") {
		t.Error("expected the type value to be added as a class")
	}
}

func TestParse_CustomTypePropertyInvalidValue(t *testing.T) {
	_, err := parse(t, `
#name foo
#type gender "masc fem" *
> abba
| gender plural
`)

	if err == nil {
		t.Fatal("expected an invalid-value error")
	}
	if !strings.Contains(err.Error(), "plural") || !strings.Contains(err.Error(), "gender") {
		t.Errorf("expected error to name the value and the type, got: %v", err)
	}
}

func TestParse_TypeWrongArgumentCount(t *testing.T) {
	_, err := parse(t, `
#name foo
#type gender "masc fem"
`)

	if err == nil {
		t.Fatal("expected a wrong-argument-count error")
	}
	if !strings.Contains(err.Error(), "#type") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestParse_TypeBlankFilterNeverApplies(t *testing.T) {
	// A blank filter expression means the type has no filter; with no
	// filter the constraint applies to no entry at all, so even an
	// entry with two allowed classes loads.
	tbl := mustParse(t, `
#name foo
#type gender "masc fem" ""
> abba
| class masc fem
`)

	if tbl.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", tbl.Len())
	}
}

func TestParse_TypeFilterWithoutUsableTermsNeverApplies(t *testing.T) {
	// A filter expression with no identifier terms behaves like a blank
	// one: the type never applies.
	tbl := mustParse(t, `
#name foo
#type gender "masc fem" "a/b"
> abba
| class masc fem
`)

	if tbl.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", tbl.Len())
	}
}

func TestParse_TypeNegatedFilter(t *testing.T) {
	_, err := parse(t, `
#name foo
#type gender "masc fem" !indeclinable
> rock
| class indeclinable
> abba
`)

	if err == nil {
		t.Fatal("expected the unfiltered entry to violate the type")
	}
	if !strings.Contains(err.Error(), "abba") {
		t.Errorf("expected the violating entry to be named, got: %v", err)
	}
}

func TestParse_UnrecognizedDirectiveIgnored(t *testing.T) {
	tbl := mustParse(t, `
#name foo
#fancy new directive
> cat
`)

	if tbl.Len() != 1 {
		t.Errorf("expected the load to succeed, got %d entries", tbl.Len())
	}
}

func TestParse_VersionDirectiveIgnored(t *testing.T) {
	tbl := mustParse(t, `
#name foo
#version 2
> cat
`)

	if tbl.Len() != 1 {
		t.Errorf("expected the load to succeed, got %d entries", tbl.Len())
	}
}

func TestParse_ScopedClasses(t *testing.T) {
	tbl := mustParse(t, `
#name foo
> plain
#class add mammal pet
> cat
#class remove pet
> bear
`)

	entries := tbl.Entries()
	if got := entries[0].Classes(); len(got) != 0 {
		t.Errorf("entry before class add must have no classes, got %v", got)
	}
	if got := entries[1].Classes(); !reflect.DeepEqual(got, []string{"mammal", "pet"}) {
		t.Errorf("expected [mammal pet], got %v", got)
	}
	if got := entries[2].Classes(); !reflect.DeepEqual(got, []string{"mammal"}) {
		t.Errorf("expected [mammal], got %v", got)
	}
}

func TestParse_ClassDirectiveMissingArgs(t *testing.T) {
	_, err := parse(t, `
#name foo
#class add
`)

	if err == nil {
		t.Fatal("expected an argument-count error")
	}
}

func TestParse_DeprecatedNSFWDirectives(t *testing.T) {
	tbl := mustParse(t, `
#name foo
#nsfw
> curse
#sfw
> word
`)

	entries := tbl.Entries()
	if !entries[0].HasClass("nsfw") {
		t.Error("entry under #nsfw must carry the nsfw class")
	}
	if entries[1].HasClass("nsfw") {
		t.Error("entry after #sfw must not carry the nsfw class")
	}
}

func TestParse_HiddenDirective(t *testing.T) {
	tbl := mustParse(t, `
#name foo
#hidden mythical
> unicorn
`)

	if !tbl.IsHidden("mythical") {
		t.Error("expected mythical to be hidden")
	}
	if !tbl.IsHidden("nsfw") {
		t.Error("nsfw must always be hidden")
	}
}

func TestParse_InvalidTableName(t *testing.T) {
	_, err := parse(t, "#name bad name!\n> cat")
	if err == nil {
		t.Fatal("expected an invalid-name error")
	}
}

func TestParse_NameLowercased(t *testing.T) {
	tbl := mustParse(t, "#name Animals\n> cat")
	if tbl.Name != "animals" {
		t.Errorf("expected lowercased name, got %q", tbl.Name)
	}
}

func TestParse_SubsLowercased(t *testing.T) {
	tbl := mustParse(t, "#name foo\n#subs Default PLURAL\n> cat/cats")
	if got := tbl.Subtypes(); !reflect.DeepEqual(got, []string{"default", "plural"}) {
		t.Errorf("expected lowercased subtypes, got %v", got)
	}
}

func TestParse_OptionalClassMarker(t *testing.T) {
	tbl := mustParse(t, `
#name foo
> cat
| class feline pet?
`)

	e := tbl.Entries()[0]
	if e.IsOptionalClass("feline") {
		t.Error("feline must not be optional")
	}
	if !e.IsOptionalClass("pet") {
		t.Error("pet must be optional")
	}
}

func TestParse_DiffEntryEncodesAlternates(t *testing.T) {
	tbl := mustParse(t, `
#name foo
#subs default plural
>> mouse/mice
`)

	e := tbl.Entries()[0]
	if e.Term(0).Value != "mouse" {
		t.Errorf("base term must be stored verbatim, got %q", e.Term(0).Value)
	}
	if e.Term(0).Diff {
		t.Error("base term must not be marked as a diff")
	}

	var m diff.Mark
	want := m.Encode("mouse", "mice")
	if e.Term(1).Value != want {
		t.Errorf("alternate term must be the encoder output %q, got %q", want, e.Term(1).Value)
	}
	if !e.Term(1).Diff {
		t.Error("alternate term must be marked as a diff")
	}
}

// prefixEncoder is a stub encoder proving the parser delegates encoding.
type prefixEncoder struct{}

func (prefixEncoder) Encode(base, alt string) string {
	return "enc:" + base + ":" + alt
}

func TestParse_DiffEntryDelegatesToEncoder(t *testing.T) {
	tokens := lexer.Tokenize([]byte("#name foo\n#subs default plural\n>> cat/cats"))
	tbl, err := parser.Parse("test.tbl", tokens, parser.Options{Encoder: prefixEncoder{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e := tbl.Entries()[0]
	if e.Term(1).Value != "enc:cat:cats" {
		t.Errorf("expected delegated encoding, got %q", e.Term(1).Value)
	}
}

func TestParse_ErrorFormat(t *testing.T) {
	_, err := parse(t, "#name foo\n#subs default\n> cat\n| weight x")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.HasPrefix(err.Error(), "test.tbl: (Line 4) ") {
		t.Errorf("unexpected error format: %q", err.Error())
	}
}

func TestParse_Idempotent(t *testing.T) {
	src := `
#name foo
#subs default plural
#hidden mythical
#class add mammal
> cat/cats
| weight 3
> dog/dogs
`
	first := mustParse(t, src)
	second := mustParse(t, src)

	if first.Name != second.Name {
		t.Errorf("names differ: %q vs %q", first.Name, second.Name)
	}
	if !reflect.DeepEqual(first.Subtypes(), second.Subtypes()) {
		t.Errorf("subtypes differ: %v vs %v", first.Subtypes(), second.Subtypes())
	}
	if !reflect.DeepEqual(first.HiddenClasses(), second.HiddenClasses()) {
		t.Errorf("hidden classes differ: %v vs %v", first.HiddenClasses(), second.HiddenClasses())
	}
	if first.Len() != second.Len() {
		t.Fatalf("entry counts differ: %d vs %d", first.Len(), second.Len())
	}
	for i := range first.Entries() {
		a, b := first.Entries()[i], second.Entries()[i]
		if a.Term(0).Value != b.Term(0).Value || a.Weight != b.Weight ||
			!reflect.DeepEqual(a.Classes(), b.Classes()) {
			t.Errorf("entry %d differs", i)
		}
	}
}

func TestParse_EntryTermsTrimmed(t *testing.T) {
	tbl := mustParse(t, "#name foo\n#subs default plural\n> cat / cats")
	e := tbl.Entries()[0]
	if e.Term(0).Value != "cat" || e.Term(1).Value != "cats" {
		t.Errorf("terms must be trimmed, got %q / %q", e.Term(0).Value, e.Term(1).Value)
	}
}
