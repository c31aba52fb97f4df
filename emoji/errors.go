// SPDX-License-Identifier: MIT

package emoji

import "errors"

var (
	// ErrUnknownCategory indicates a category key outside the supported set.
	ErrUnknownCategory = errors.New("emoji: unknown category")

	// ErrBadDatabase indicates the embedded table could not be parsed or is
	// inconsistent (e.g. duplicate aliases).
	ErrBadDatabase = errors.New("emoji: invalid database")
)
