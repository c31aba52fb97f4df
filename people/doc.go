// SPDX-License-Identifier: MIT

// Package people is the struct drill: a Human record with a factory,
// a setter, predicates and a copy-with-update helper.
package people
