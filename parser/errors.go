/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import "fmt"

// Error is the single load-failure type. A load either returns a complete
// committed table or one Error describing the first violation; partial
// tables are never exposed.
type Error struct {
	// FilePath is the path of the file being loaded.
	FilePath string

	// Line is the 1-based source line of the violation, or 0 when no
	// line applies.
	Line int

	// Message describes what went wrong.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: (Line %d) %s", e.FilePath, e.Line, e.Message)
}

func (p *state) errorf(line int, format string, args ...any) *Error {
	return &Error{
		FilePath: p.filePath,
		Line:     line,
		Message:  fmt.Sprintf(format, args...),
	}
}
