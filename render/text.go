// Package render turns segmentation results into text, JSON or a Graphviz
// drawing of the segmentation lattice.
package render

import (
	"fmt"
	"strings"

	"github.com/antgroup/rawseg/schema"
	"github.com/antgroup/rawseg/utils/json"
)

// Text renders one path per line, words as "word|tag,tag" separated by tabs.
func Text(paths []schema.Path) string {
	var sb strings.Builder
	for _, p := range paths {
		sb.WriteString(p.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Matches renders one dictionary occurrence of text per line.
func Matches(text string, matches []schema.Match) string {
	query := []rune(text)
	var sb strings.Builder
	for _, m := range matches {
		fmt.Fprintf(&sb, "word:%s\tpos_tag:%s\t[%d,%d)\n",
			string(query[m.Start:m.End]), strings.Join(m.Tags, "\t"), m.Start, m.End)
	}
	return sb.String()
}

type jsonResult struct {
	Query string        `json:"query"`
	Count int           `json:"count"`
	Paths []schema.Path `json:"paths"`
}

// JSON renders the paths of query as a json document.
func JSON(query string, paths []schema.Path, indent bool) ([]byte, error) {
	res := jsonResult{Query: query, Count: len(paths), Paths: paths}
	if indent {
		return json.MarshalPretty(res)
	}
	return json.Marshal(res)
}
