/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package strutil provides string utilities shared by the vocabulary file
// loader: identifier validation, quoted argument splitting, and
// string-literal unescaping.
package strutil

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// namePattern matches a valid identifier: letters, digits, underscores, and
// hyphens.
var namePattern = regexp.MustCompile(`^[\w\-]+$`)

// ValidName reports whether s is a valid identifier for table names,
// subtypes, and classes.
func ValidName(s string) bool {
	return namePattern.MatchString(s)
}

// SplitArgs splits s on whitespace, treating double-quoted segments as
// single arguments. Quotes are removed; escapes inside quotes are resolved
// via Unescape.
func SplitArgs(s string) []string {
	var args []string
	var sb strings.Builder
	inQuotes := false
	escaped := false
	pending := false

	flush := func() {
		if pending {
			args = append(args, sb.String())
			sb.Reset()
			pending = false
		}
	}

	for _, r := range s {
		switch {
		case escaped:
			sb.WriteRune('\\')
			sb.WriteRune(r)
			escaped = false
		case r == '\\' && inQuotes:
			escaped = true
			pending = true
		case r == '"':
			inQuotes = !inQuotes
			pending = true
		case !inQuotes && (r == ' ' || r == '\t'):
			flush()
		default:
			sb.WriteRune(r)
			pending = true
		}
	}
	if escaped {
		sb.WriteRune('\\')
	}
	flush()

	for i, arg := range args {
		args[i] = Unescape(arg)
	}
	return args
}

// Unescape resolves string-literal escapes: \\ \" \n \r \t and \uXXXX.
// Malformed escapes pass through verbatim, matching the tolerance of the
// legacy format.
func Unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case '\\':
			sb.WriteByte('\\')
		case '"':
			sb.WriteByte('"')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'u':
			if i+4 < len(s) {
				if n, err := strconv.ParseUint(s[i+1:i+5], 16, 32); err == nil && utf8.ValidRune(rune(n)) {
					sb.WriteRune(rune(n))
					i += 4
					continue
				}
			}
			sb.WriteByte('\\')
			sb.WriteByte('u')
		default:
			sb.WriteByte('\\')
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}
