// SPDX-License-Identifier: MIT

package bucket

import "errors"

// ErrOutOfRange indicates an index outside the bucket's bounds.
var ErrOutOfRange = errors.New("bucket: index out of range")
