// SPDX-License-Identifier: MIT

package emoji

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed emoji.yaml
var embedded []byte

// categories maps CLI category keys to the display names stored in the table.
var categories = map[string]string{
	"activities":         "Activities",
	"animals_and_nature": "Animals & Nature",
	"flags":              "Flags",
	"food_and_drink":     "Food & Drink",
	"objects":            "Objects",
	"people_and_body":    "People & Body",
	"smilies":            "Smileys & Emotion",
	"symbols":            "Symbols",
	"travel":             "Travel & Places",
}

// Entry is one emoji with its aliases.
type Entry struct {
	Emoji    string   `yaml:"emoji"`
	Aliases  []string `yaml:"aliases"`
	Category string   `yaml:"category"`
}

// String renders "<emoji> - <alias>,<alias>".
func (e Entry) String() string {
	return e.Emoji + " - " + strings.Join(e.Aliases, ",")
}

// DB is an immutable emoji table.
type DB struct {
	entries []Entry
	byAlias map[string]string
}

var (
	loadOnce sync.Once
	loaded   *DB
	loadErr  error
)

// Load returns the embedded table, parsing it on first call.
func Load() (*DB, error) {
	loadOnce.Do(func() {
		loaded, loadErr = Parse(embedded)
	})

	return loaded, loadErr
}

// Parse builds a DB from YAML in the emoji.yaml layout.
func Parse(data []byte) (*DB, error) {
	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDatabase, err)
	}

	db := &DB{entries: entries, byAlias: make(map[string]string)}
	for _, e := range entries {
		if e.Emoji == "" || len(e.Aliases) == 0 {
			return nil, fmt.Errorf("%w: entry %q has no emoji or aliases", ErrBadDatabase, e.Emoji)
		}
		for _, a := range e.Aliases {
			if _, dup := db.byAlias[a]; dup {
				return nil, fmt.Errorf("%w: duplicate alias %q", ErrBadDatabase, a)
			}
			db.byAlias[a] = e.Emoji
		}
	}

	return db, nil
}

// Lookup returns the glyph for alias (without colons).
func (db *DB) Lookup(alias string) (string, bool) {
	g, ok := db.byAlias[alias]

	return g, ok
}

// Encode replaces every ":alias:" with its glyph. Unknown shortcodes and
// stray colons are kept verbatim.
func (db *DB) Encode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for {
		open := strings.IndexByte(s, ':')
		if open < 0 {
			break
		}
		end := strings.IndexByte(s[open+1:], ':')
		if end < 0 {
			break
		}
		closing := open + 1 + end
		if glyph, ok := db.byAlias[s[open+1:closing]]; ok {
			b.WriteString(s[:open])
			b.WriteString(glyph)
			s = s[closing+1:]
			continue
		}
		// not an alias: keep the first colon and retry from the second,
		// which may open a real shortcode
		b.WriteString(s[:closing])
		s = s[closing:]
	}
	b.WriteString(s)

	return b.String()
}

// List returns the entries of a category key, or all entries for "".
func (db *DB) List(category string) ([]Entry, error) {
	if category == "" {
		return append([]Entry(nil), db.entries...), nil
	}
	name, ok := categories[category]
	if !ok {
		return nil, fmt.Errorf("List(%q): %w", category, ErrUnknownCategory)
	}

	var out []Entry
	for _, e := range db.entries {
		if e.Category == name {
			out = append(out, e)
		}
	}

	return out, nil
}

// CategoryKeys returns the supported category keys in sorted order.
func CategoryKeys() []string {
	keys := make([]string, 0, len(categories))
	for k := range categories {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
