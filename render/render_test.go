package render

import (
	"context"
	"testing"

	"github.com/antgroup/rawseg/schema"
	"github.com/antgroup/rawseg/segment"
	"github.com/antgroup/rawseg/utils/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleResult(t *testing.T) (string, []schema.Match, []schema.Path) {
	t.Helper()
	s := segment.New()
	require.NoError(t, s.Insert("ab", "v"))
	require.NoError(t, s.Insert("ab", "n"))
	require.NoError(t, s.Insert("cd", "ns"))
	s.Build()

	const text = "abcd"
	matches, err := s.Matches(text)
	require.NoError(t, err)
	paths, err := s.Seg(context.Background(), text)
	require.NoError(t, err)
	return text, matches, paths
}

func TestText(t *testing.T) {
	t.Parallel()
	_, _, paths := exampleResult(t)
	assert.Equal(t, "a|Single\tb|Single\tc|Single\td|Single\n"+
		"a|Single\tb|Single\tcd|ns\n"+
		"ab|v,n\tc|Single\td|Single\n"+
		"ab|v,n\tcd|ns\n", Text(paths))
	assert.Equal(t, "", Text(nil))
}

func TestMatches(t *testing.T) {
	t.Parallel()
	text, matches, _ := exampleResult(t)
	assert.Equal(t, "word:ab\tpos_tag:v\tn\t[0,2)\n"+
		"word:cd\tpos_tag:ns\t[2,4)\n", Matches(text, matches))
}

func TestJSON(t *testing.T) {
	t.Parallel()
	text, _, paths := exampleResult(t)
	for _, indent := range []bool{false, true} {
		b, err := JSON(text, paths, indent)
		require.NoError(t, err)

		var res struct {
			Query string        `json:"query"`
			Count int           `json:"count"`
			Paths []schema.Path `json:"paths"`
		}
		require.NoError(t, json.Unmarshal(b, &res))
		assert.Equal(t, text, res.Query)
		assert.Equal(t, 4, res.Count)
		assert.Equal(t, paths, res.Paths)
	}
}

func TestLattice(t *testing.T) {
	t.Parallel()
	text, matches, paths := exampleResult(t)
	dot, err := Lattice(context.Background(), text, matches, &paths[3])
	require.NoError(t, err)

	out := string(dot)
	assert.Contains(t, out, "digraph")
	assert.Contains(t, out, "ab|v,n")
	assert.Contains(t, out, "cd|ns")
	assert.Contains(t, out, _pathColor)
	assert.Contains(t, out, _singleColor)
}
