// SPDX-License-Identifier: MIT

// Package piglatin converts text to pig latin.
//
// Rules:
//   - A word is a maximal run of letters (unicode.IsLetter). Everything
//     between words (spaces, punctuation, digits) is copied verbatim.
//   - A word starting with a vowel (a, e, i, o, u, any case) gets "hay"
//     appended: "apple" → "applehay".
//   - Otherwise its first rune moves to the end followed by "ay":
//     "first" → "irstfay".
//
// Runes, not bytes, are the unit throughout, so "ñandú" → "andúñay".
package piglatin
