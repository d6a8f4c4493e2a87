package segment

import (
	"context"
	"sync"
	"testing"

	"github.com/antgroup/rawseg/schema"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExampleSegmenter(t *testing.T, opts ...Option) *Segmenter {
	t.Helper()
	s := New(opts...)
	require.NoError(t, s.Insert("ab", "v"))
	require.NoError(t, s.Insert("ab", "n"))
	require.NoError(t, s.Insert("cd", "ns"))
	require.NoError(t, s.Insert("fg", "nz"))
	require.NoError(t, s.Insert("abcdefg", "zhuanming"))
	s.Build()
	return s
}

func TestSegmenterSeg(t *testing.T) {
	t.Parallel()
	s := newExampleSegmenter(t)
	paths, err := s.Seg(context.Background(), "abcdefg")
	require.NoError(t, err)
	require.Len(t, paths, 9)

	got := make(map[string]int)
	for _, p := range paths {
		got[joinWords(p)]++
	}
	for _, want := range []string{"a/b/c/d/e/f/g", "ab/cd/e/f/g", "ab/cd/e/fg", "abcdefg"} {
		assert.Equal(t, 1, got[want], want)
	}
}

func TestSegmenterDeterministic(t *testing.T) {
	t.Parallel()
	s := newExampleSegmenter(t)
	first, err := s.Seg(context.Background(), "abcdefgab")
	require.NoError(t, err)
	second, err := s.Seg(context.Background(), "abcdefgab")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSegmenterNotBuilt(t *testing.T) {
	t.Parallel()
	s := New()
	require.NoError(t, s.Insert("ab", "n"))
	_, err := s.Seg(context.Background(), "ab")
	assert.True(t, errors.Is(err, schema.ErrNotBuilt))
	_, err = s.Matches("ab")
	assert.True(t, errors.Is(err, schema.ErrNotBuilt))
}

func TestSegmenterEmptyDictionary(t *testing.T) {
	t.Parallel()
	s := New()
	s.Build()
	paths, err := s.Seg(context.Background(), "计算机科学与技术")
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, "计/算/机/科/学/与/技/术", joinWords(paths[0]))
	for _, w := range paths[0].Words {
		assert.True(t, w.IsSingle(schema.SingleTag))
	}
}

func TestSegmenterCustomSingleTag(t *testing.T) {
	t.Parallel()
	s := New(WithSingleTag("w"))
	require.NoError(t, s.Insert("科学", "n"))
	s.Build()
	paths, err := s.Seg(context.Background(), "计科学")
	require.NoError(t, err)
	require.Len(t, paths, 2)
	for _, p := range paths {
		assert.True(t, p.Words[0].IsSingle("w"))
		assert.False(t, p.Words[0].IsSingle(schema.SingleTag))
	}
	assert.False(t, paths[1].Words[1].IsSingle("w"), "dictionary word")
}

func TestSegmenterMaxPaths(t *testing.T) {
	t.Parallel()
	s := newExampleSegmenter(t, WithMaxPaths(4))
	_, err := s.Seg(context.Background(), "abcdefg")
	assert.True(t, errors.Is(err, schema.ErrTooManyPaths))

	paths, err := s.Seg(context.Background(), "abc")
	require.NoError(t, err)
	assert.Len(t, paths, 2)
}

func TestSegmenterSegBatch(t *testing.T) {
	t.Parallel()
	s := newExampleSegmenter(t, WithConcurrency(2))
	texts := []string{"abcdefg", "", "xyz", "ab"}
	all, err := s.SegBatch(context.Background(), texts)
	require.NoError(t, err)
	require.Len(t, all, len(texts))
	assert.Len(t, all[0], 9)
	assert.Len(t, all[1], 1)
	assert.Len(t, all[2], 1)
	assert.Len(t, all[3], 2)
	for i, paths := range all {
		for _, p := range paths {
			assert.Equal(t, texts[i], p.Text())
		}
	}
}

func TestSegmenterSegBatchError(t *testing.T) {
	t.Parallel()
	s := newExampleSegmenter(t, WithMaxPaths(2))
	_, err := s.SegBatch(context.Background(), []string{"ab", "abcdefg"})
	assert.True(t, errors.Is(err, schema.ErrTooManyPaths))
}

func TestSegmenterConcurrentQueries(t *testing.T) {
	t.Parallel()
	s := newExampleSegmenter(t)
	want, err := s.Seg(context.Background(), "abcdefg")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := s.Seg(context.Background(), "abcdefg")
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}

func TestSegmenterLookup(t *testing.T) {
	t.Parallel()
	s := newExampleSegmenter(t)
	assert.Equal(t, 4, s.Len())
	tags, ok := s.Lookup("ab")
	require.True(t, ok)
	assert.Equal(t, []string{"v", "n"}, tags)

	var words []string
	s.Walk(func(word string, _ []string) bool {
		words = append(words, word)
		return true
	})
	assert.ElementsMatch(t, []string{"ab", "cd", "fg", "abcdefg"}, words)
}
