// SPDX-License-Identifier: MIT

// Package emoji encodes ":alias:" shortcodes into emoji glyphs and lists the
// known emoji by category.
//
// The table is embedded (emoji.yaml) and parsed with gopkg.in/yaml.v3 on
// first use.
//
//	db, _ := emoji.Load()
//	db.Encode("hi :wave:") // "hi 👋"
package emoji
