/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package table

import "errors"

// Sentinel errors for table operations.
var (
	// ErrCommitted indicates a mutation was attempted after Commit.
	ErrCommitted = errors.New("table already committed")

	// ErrNotCommitted indicates a query was attempted before Commit.
	ErrNotCommitted = errors.New("table not committed")

	// ErrNoEntries indicates a query matched no entries.
	ErrNoEntries = errors.New("no entries match query")

	// ErrUnknownSubtype indicates a query named an undeclared subtype.
	ErrUnknownSubtype = errors.New("unknown subtype")

	// ErrSubtypeIndex indicates a subtype registration outside the
	// table's declared slot range.
	ErrSubtypeIndex = errors.New("subtype index out of range")
)
