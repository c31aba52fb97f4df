// SPDX-License-Identifier: MIT

package words

import "errors"

// ErrNoInput indicates the reader was exhausted before any byte was read.
var ErrNoInput = errors.New("words: no input")
