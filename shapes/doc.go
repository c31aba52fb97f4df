// SPDX-License-Identifier: MIT

// Package shapes holds the enum drills: a closed Shape sum type with areas,
// standard bed sizes, compass directions, and a three-way comparison.
//
// Shape is sealed: only Rectangle, Circle and UnknownPolygon implement it,
// so a type switch over those three is exhaustive.
package shapes
