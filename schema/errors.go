package schema

import "errors"

var (
	ErrEmptyWord        = errors.New("empty word cannot be inserted")
	ErrMalformedInsert  = errors.New("insert did not reach a terminal node")
	ErrNotBuilt         = errors.New("automaton is not built, call Build first")
	ErrTooManyPaths     = errors.New("segmentation paths exceed the configured limit")
	ErrMissingSegmenter = errors.New("missing segmenter")
)
