// SPDX-License-Identifier: MIT

// Package carpark models a car park whose old cars can be filtered out in
// place.
package carpark
