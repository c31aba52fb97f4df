// SPDX-License-Identifier: MIT

// Package words extracts the first word of a line.
//
// A word ends at the first ASCII space. A line without a space is a single
// word. ReadFirstWord reads one line from an io.Reader (typically stdin).
package words
