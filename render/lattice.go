package render

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/antgroup/rawseg/schema"
	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
	"github.com/pkg/errors"
)

const (
	_singleColor = "gray"
	_matchColor  = "blue"
	_pathColor   = "red"
)

// Lattice draws the segmentation DAG of text in dot format: one node per
// boundary, a gray edge per character and a blue edge per match. Edges used
// by highlight, when given, are drawn red.
func Lattice(ctx context.Context, text string, matches []schema.Match, highlight *schema.Path) ([]byte, error) {
	query := []rune(text)
	g, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "graphviz")
	}
	defer g.Close()
	graph, err := g.Graph()
	if err != nil {
		return nil, errors.Wrap(err, "graphviz graph")
	}
	defer graph.Close()
	graph.SetRankDir(cgraph.LRRank)

	nodes := make([]*cgraph.Node, len(query)+1)
	for i := range nodes {
		nodes[i], err = graph.CreateNodeByName(strconv.Itoa(i))
		if err != nil {
			return nil, errors.Wrapf(err, "create node %d", i)
		}
		nodes[i].SetShape(cgraph.CircleShape)
	}

	used := make(map[string]bool)
	if highlight != nil {
		for _, w := range highlight.Words {
			used[edgeKey(w.Start, w.End, w.Tags)] = true
		}
	}
	for i, ch := range query {
		tags := []string{schema.SingleTag}
		edge, err := graph.CreateEdgeByName(fmt.Sprintf("s%d", i), nodes[i], nodes[i+1])
		if err != nil {
			return nil, errors.Wrapf(err, "create edge s%d", i)
		}
		edge.SetLabel(string(ch))
		edge.SetColor(edgeColor(used[edgeKey(i, i+1, tags)], _singleColor))
	}
	for i, m := range matches {
		if m.Start < 0 || m.End > len(query) || m.End <= m.Start {
			continue
		}
		edge, err := graph.CreateEdgeByName(fmt.Sprintf("m%d", i), nodes[m.Start], nodes[m.End])
		if err != nil {
			return nil, errors.Wrapf(err, "create edge m%d", i)
		}
		edge.SetLabel(string(query[m.Start:m.End]) + "|" + strings.Join(m.Tags, ","))
		edge.SetColor(edgeColor(used[edgeKey(m.Start, m.End, m.Tags)], _matchColor))
	}

	var buf bytes.Buffer
	if err := g.Render(ctx, graph, graphviz.XDOT, &buf); err != nil {
		return nil, errors.Wrap(err, "render lattice")
	}
	return buf.Bytes(), nil
}

func edgeKey(start, end int, tags []string) string {
	return fmt.Sprintf("%d-%d-%s", start, end, strings.Join(tags, ","))
}

func edgeColor(highlighted bool, color string) string {
	if highlighted {
		return _pathColor
	}
	return color
}
