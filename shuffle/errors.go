// SPDX-License-Identifier: MIT

package shuffle

import "errors"

// ErrEmpty indicates an operation needed at least one element.
var ErrEmpty = errors.New("shuffle: empty sequence")
