// SPDX-License-Identifier: MIT

// Package shake demonstrates package-level visibility: Shake's price is an
// unexported field, so callers outside the package can read it through
// Price but can neither set it nor build a Shake with a custom price.
package shake
