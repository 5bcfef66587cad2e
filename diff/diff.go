/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package diff encodes alternate term forms as compact edit scripts
// relative to a base form, and expands them back.
//
// The script grammar is deliberately tiny:
//
//	*            the alternate equals the base
//	-            delete one trailing character of the base
//	+<text>      append text
//
// so "mice" relative to "mouse" encodes as "----+ice": drop four trailing
// characters, append "ice".
package diff

import "strings"

// Mark encodes and expands edit scripts. The zero value is ready to use.
type Mark struct{}

// Encode returns the edit script producing alt from base.
func (Mark) Encode(base, alt string) string {
	if alt == base {
		return "*"
	}

	prefix := 0
	for prefix < len(base) && prefix < len(alt) && base[prefix] == alt[prefix] {
		prefix++
	}

	var sb strings.Builder
	sb.WriteString(strings.Repeat("-", len(base)-prefix))
	if rest := alt[prefix:]; rest != "" {
		sb.WriteByte('+')
		sb.WriteString(rest)
	}
	return sb.String()
}

// Expand applies an edit script to base and returns the alternate form.
// Inputs that are not scripts are returned unchanged.
func Expand(base, script string) string {
	if script == "*" {
		return base
	}

	drop := 0
	for drop < len(script) && script[drop] == '-' {
		drop++
	}
	rest := script[drop:]
	if drop == 0 && !strings.HasPrefix(rest, "+") {
		return script
	}
	rest = strings.TrimPrefix(rest, "+")

	if drop > len(base) {
		drop = len(base)
	}
	return base[:len(base)-drop] + rest
}
