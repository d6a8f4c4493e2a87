package segment

import (
	"context"
	"log"
	"sync"

	"github.com/antgroup/rawseg/automaton"
	"github.com/antgroup/rawseg/schema"
	"github.com/antgroup/rawseg/utils/parallel"
)

// Segmenter returns every segmentation path of a query over a dictionary.
// Words are inserted, Build is called once, and Seg may then run from many
// goroutines at the same time.
type Segmenter struct {
	mu   sync.RWMutex
	acto *automaton.Automaton
	opts Options
}

func New(opts ...Option) *Segmenter {
	options := DefaultOptions()
	for _, o := range opts {
		o(&options)
	}
	return &Segmenter{
		acto: automaton.New(),
		opts: options,
	}
}

// Insert adds a (word, tag) entry. Build must be called again afterwards.
func (s *Segmenter) Insert(word, tag string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.acto.Insert(word, tag)
}

// Build finalizes the failure links.
func (s *Segmenter) Build() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.acto.Build()
	log.Printf("segmenter built: %d words, %d nodes", s.acto.Len(), s.acto.Size())
}

// Matches returns the dictionary occurrences in text.
func (s *Segmenter) Matches(text string) ([]schema.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.acto.Scan(text)
}

// Seg returns all segmentation paths of text. Each path's words concatenate
// back to text.
func (s *Segmenter) Seg(ctx context.Context, text string) ([]schema.Path, error) {
	query := []rune(text)
	s.mu.RLock()
	matches, err := s.acto.ScanRunes(query)
	s.mu.RUnlock()
	if err != nil {
		return nil, err
	}
	return EnumerateContext(ctx, query, matches,
		WithMaxPaths(s.opts.MaxPaths), WithSingleTag(s.opts.SingleTag))
}

type batchResult struct {
	paths []schema.Path
	err   error
}

// SegBatch segments texts concurrently and returns the paths in input order.
// The first error in input order is returned.
func (s *Segmenter) SegBatch(ctx context.Context, texts []string) ([][]schema.Path, error) {
	results := parallel.Parallel(func(i int) batchResult {
		paths, err := s.Seg(ctx, texts[i])
		return batchResult{paths: paths, err: err}
	}, len(texts), s.opts.Concurrency)

	all := make([][]schema.Path, 0, len(texts))
	for _, r := range results {
		if r.err != nil {
			return nil, r.err
		}
		all = append(all, r.paths)
	}
	return all, nil
}

// Lookup returns the tags stored for word.
func (s *Segmenter) Lookup(word string) ([]string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.acto.Lookup(word)
}

// Walk visits every dictionary word, see automaton.Automaton.Walk.
func (s *Segmenter) Walk(fn func(word string, tags []string) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.acto.Walk(fn)
}

// Len returns the number of distinct dictionary words.
func (s *Segmenter) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.acto.Len()
}
