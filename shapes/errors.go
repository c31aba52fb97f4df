// SPDX-License-Identifier: MIT

package shapes

import "errors"

// ErrUnknownBed indicates a Bed value or name outside the known sizes.
var ErrUnknownBed = errors.New("shapes: unknown bed size")
