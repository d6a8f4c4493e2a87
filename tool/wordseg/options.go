package wordseg

import (
	"github.com/antgroup/rawseg/segment"
)

type Options struct {
	ProcessMode string
	OutputModel string
	Segmenter   *segment.Segmenter
}

type Option func(*Options)

// WithProcessMode selects the processor, see SegmentationMode and
// KeywordDetectionMode.
func WithProcessMode(processMode string) Option {
	return func(o *Options) {
		o.ProcessMode = processMode
	}
}

// WithOutputModel sets the default output model of keyword detection.
func WithOutputModel(outputModel string) Option {
	return func(o *Options) {
		o.OutputModel = outputModel
	}
}

func WithSegmenter(s *segment.Segmenter) Option {
	return func(o *Options) {
		o.Segmenter = s
	}
}
