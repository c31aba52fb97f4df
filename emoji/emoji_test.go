package emoji_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/drills/emoji"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadDB(t *testing.T) *emoji.DB {
	t.Helper()
	db, err := emoji.Load()
	require.NoError(t, err)

	return db
}

func TestEncode(t *testing.T) {
	db := loadDB(t)
	cases := map[string]string{
		":wave:":            "👋",
		"hi :wave: :wave:":  "hi 👋 👋",
		":nope:":            ":nope:",
		"time 10:30 :tada:": "time 10:30 🎉",
		"a:b:wave:":         "a:b👋",
		"no shortcodes":     "no shortcodes",
		"trailing :":        "trailing :",
		":+1: and :x:":      "👍 and ❌",
	}
	for in, want := range cases {
		assert.Equal(t, want, db.Encode(in), "Encode(%q)", in)
	}
}

func TestLookup(t *testing.T) {
	db := loadDB(t)
	g, ok := db.Lookup("uk")
	assert.True(t, ok)
	assert.Equal(t, "🇬🇧", g)

	_, ok = db.Lookup("unicorn_rainbow")
	assert.False(t, ok)
}

func TestList(t *testing.T) {
	db := loadDB(t)

	all, err := db.List("")
	require.NoError(t, err)
	assert.NotEmpty(t, all)

	flags, err := db.List("flags")
	require.NoError(t, err)
	var lines []string
	for _, e := range flags {
		lines = append(lines, e.String())
	}
	want := []string{"🏁 - checkered_flag", "🇬🇧 - gb,uk"}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("List(flags) mismatch (-want +got):\n%s", diff)
	}

	_, err = db.List("weather")
	assert.ErrorIs(t, err, emoji.ErrUnknownCategory)
}

// TestList_EveryCategoryPopulated checks the embedded table covers every key.
func TestList_EveryCategoryPopulated(t *testing.T) {
	db := loadDB(t)
	for _, key := range emoji.CategoryKeys() {
		entries, err := db.List(key)
		require.NoError(t, err, key)
		assert.NotEmpty(t, entries, key)
	}
}

// TestCategoryKeys checks the keys are sorted and callers get their own copy.
func TestCategoryKeys(t *testing.T) {
	keys := emoji.CategoryKeys()
	require.Len(t, keys, 9)
	assert.IsIncreasing(t, keys)
	assert.Contains(t, keys, "flags")

	keys[0] = "tampered"
	assert.NotContains(t, emoji.CategoryKeys(), "tampered")
}

func TestParse_Invalid(t *testing.T) {
	_, err := emoji.Parse([]byte("not: [valid"))
	assert.ErrorIs(t, err, emoji.ErrBadDatabase)

	_, err = emoji.Parse([]byte("- emoji: x\n  aliases: [a]\n- emoji: y\n  aliases: [a]\n"))
	assert.ErrorIs(t, err, emoji.ErrBadDatabase)

	_, err = emoji.Parse([]byte("- emoji: x\n"))
	assert.ErrorIs(t, err, emoji.ErrBadDatabase)
}
