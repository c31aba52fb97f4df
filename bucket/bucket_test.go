package bucket_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/drills/bucket"
	"github.com/katalvlaran/drills/shuffle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBucket_IndexAccess covers positive and negative indexes and bounds.
func TestBucket_IndexAccess(t *testing.T) {
	b := bucket.New(10, 20, 30)
	require.Equal(t, 3, b.Len())

	v, err := b.At(0)
	require.NoError(t, err)
	assert.Equal(t, 10, v)

	v, err = b.At(-1)
	require.NoError(t, err)
	assert.Equal(t, 30, v)

	_, err = b.At(3)
	assert.ErrorIs(t, err, bucket.ErrOutOfRange)
	_, err = b.At(-4)
	assert.ErrorIs(t, err, bucket.ErrOutOfRange)

	require.NoError(t, b.Set(-2, 99))
	assert.Equal(t, []int{10, 99, 30}, b.Items())
	assert.ErrorIs(t, b.Set(5, 1), bucket.ErrOutOfRange)
}

// TestBucket_Mutation covers Delete, Insert and Append.
func TestBucket_Mutation(t *testing.T) {
	b := bucket.New("a", "b", "c")

	require.NoError(t, b.Delete(1))
	assert.Equal(t, []string{"a", "c"}, b.Items())
	assert.ErrorIs(t, b.Delete(2), bucket.ErrOutOfRange)

	require.NoError(t, b.Insert(1, "b"))
	require.NoError(t, b.Insert(b.Len(), "d"))
	require.NoError(t, b.Insert(-4, "_"))
	assert.Equal(t, []string{"_", "a", "b", "c", "d"}, b.Items())
	assert.ErrorIs(t, b.Insert(7, "x"), bucket.ErrOutOfRange)

	b.Append("e")
	assert.Equal(t, 6, b.Len())
	assert.True(t, bucket.Contains(b, "e"))
	assert.False(t, bucket.Contains(b, "z"))
}

// TestBucket_IsolatedFromCaller checks New and Items copy their slices.
func TestBucket_IsolatedFromCaller(t *testing.T) {
	src := []int{1, 2, 3}
	b := bucket.New(src...)
	src[0] = 100
	got := b.Items()
	got[1] = 200

	assert.Equal(t, []int{1, 2, 3}, b.Items())
}

// TestBucket_Iteration checks forward, backward and early exit.
func TestBucket_Iteration(t *testing.T) {
	b := bucket.New(1, 2, 3)
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(b.All()))
	assert.Equal(t, []int{3, 2, 1}, slices.Collect(b.Backward()))

	var seen []int
	for v := range b.All() {
		if v == 2 {
			break
		}
		seen = append(seen, v)
	}
	assert.Equal(t, []int{1}, seen)
	assert.Equal(t, "[1 2 3]", b.String())
}

// TestBucket_ShuffleAsSwapper verifies a bucket can be shuffled in place.
func TestBucket_ShuffleAsSwapper(t *testing.T) {
	b := bucket.New(1, 2, 3, 4, 5, 6)
	shuffle.Sequence(b, shuffle.WithSeed(3))

	got := b.Items()
	slices.Sort(got)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, got)
}

func TestBucket_ZeroValue(t *testing.T) {
	var b bucket.Bucket[int]
	assert.Equal(t, 0, b.Len())
	b.Append(4)
	v, err := b.At(0)
	require.NoError(t, err)
	assert.Equal(t, 4, v)
}
