/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

// validateTypes runs the post-load type-constraint pass. It runs only when
// at least one type was declared. Each entry must satisfy every declared
// type: entries outside a type's filter scope are exempt, entries in scope
// must carry exactly one class from the type's allowed set.
func (p *state) validateTypes() *Error {
	if len(p.types) == 0 {
		return nil
	}
	for _, rec := range p.entries {
		for _, def := range p.types {
			if !def.Test(rec.entry) {
				return p.errorf(rec.token.Line,
					"entry %q violates type constraint '%s': exactly one of its classes must be among %v",
					rec.entry.Term(0).Value, def.Name, def.AllowedClasses())
			}
		}
	}
	return nil
}
