// SPDX-License-Identifier: MIT

package stats

import "errors"

// ErrEmpty indicates a statistic was requested over no values.
var ErrEmpty = errors.New("stats: empty input")
