package segment

import (
	"cmp"
	"context"
	"slices"

	"github.com/antgroup/rawseg/schema"
	"github.com/pkg/errors"
)

const _ctxCheckInterval = 1024

// frame is one pending position of the search over the boundary lattice.
type frame struct {
	cidx    int // current boundary
	widx    int // first match that may still start at or after cidx
	next    int // next match to branch on, valid once started
	depth   int // path length when the frame was entered
	started bool
}

type enumerator struct {
	query   []rune
	matches []schema.Match
	opts    Options

	path  []schema.Word
	paths []schema.Path
}

// Enumerate returns every path that tiles query with single-character words
// and the given matches. At each boundary the single-character word is tried
// first, then the matches starting there in start order. The number of paths
// grows exponentially with overlapping matches; WithMaxPaths bounds it.
func Enumerate(query []rune, matches []schema.Match, opts ...Option) ([]schema.Path, error) {
	return EnumerateContext(context.Background(), query, matches, opts...)
}

// EnumerateContext is Enumerate that stops with ctx.Err() once ctx is done.
func EnumerateContext(ctx context.Context, query []rune, matches []schema.Match, opts ...Option) ([]schema.Path, error) {
	options := DefaultOptions()
	for _, o := range opts {
		o(&options)
	}
	e := &enumerator{
		query:   query,
		matches: sortMatches(matches, len(query)),
		opts:    options,
		paths:   make([]schema.Path, 0),
	}
	if err := e.run(ctx); err != nil {
		return nil, err
	}
	return e.paths, nil
}

// sortMatches drops spans outside [0, n) or empty ones and sorts the rest by
// start, keeping the scanner order for equal starts.
func sortMatches(matches []schema.Match, n int) []schema.Match {
	sorted := make([]schema.Match, 0, len(matches))
	for _, m := range matches {
		if m.Start < 0 || m.End > n || m.End <= m.Start {
			continue
		}
		sorted = append(sorted, m)
	}
	slices.SortStableFunc(sorted, func(a, b schema.Match) int {
		return cmp.Compare(a.Start, b.Start)
	})
	return sorted
}

func (e *enumerator) run(ctx context.Context) error {
	n, m := len(e.query), len(e.matches)
	frames := []frame{{}}
	for steps := 0; len(frames) > 0; steps++ {
		if steps%_ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		top := len(frames) - 1
		f := frames[top]

		if !f.started {
			// with no match left the tail can only be single characters
			if f.cidx >= n || f.widx >= m {
				e.path = e.path[:f.depth]
				if err := e.record(n); err != nil {
					return err
				}
				frames = frames[:top]
				continue
			}
			frames[top].started = true
			frames[top].next = f.widx
			e.path = append(e.path[:f.depth], e.single(f.cidx))
			frames = append(frames, frame{cidx: f.cidx + 1, widx: f.widx, depth: len(e.path)})
			continue
		}

		j := f.next
		for j < m && e.matches[j].Start < f.cidx {
			j++
		}
		if j >= m || e.matches[j].Start > f.cidx {
			frames = frames[:top]
			continue
		}
		frames[top].next = j + 1
		e.path = append(e.path[:f.depth], e.word(e.matches[j]))
		frames = append(frames, frame{cidx: e.matches[j].End, widx: j + 1, depth: len(e.path)})
	}
	return nil
}

func (e *enumerator) single(i int) schema.Word {
	return schema.Word{
		Text:  string(e.query[i]),
		Tags:  []string{e.opts.SingleTag},
		Start: i,
		End:   i + 1,
	}
}

func (e *enumerator) word(m schema.Match) schema.Word {
	return schema.Word{
		Text:  string(e.query[m.Start:m.End]),
		Tags:  m.Tags,
		Start: m.Start,
		End:   m.End,
	}
}

// record copies the path stack, completing it with single characters up to n.
func (e *enumerator) record(n int) error {
	if e.opts.MaxPaths > 0 && len(e.paths) >= e.opts.MaxPaths {
		return errors.Wrapf(schema.ErrTooManyPaths, "limit %d", e.opts.MaxPaths)
	}
	cidx := 0
	if len(e.path) > 0 {
		cidx = e.path[len(e.path)-1].End
	}
	words := make([]schema.Word, 0, len(e.path)+n-cidx)
	for _, w := range e.path {
		w.Tags = slices.Clone(w.Tags)
		words = append(words, w)
	}
	for ; cidx < n; cidx++ {
		words = append(words, e.single(cidx))
	}
	e.paths = append(e.paths, schema.Path{Words: words})
	return nil
}
