package wordseg

import (
	"context"
	"strings"

	"github.com/antgroup/rawseg/render"
	"github.com/antgroup/rawseg/segment"
	"github.com/thoas/go-funk"
)

type Factory func(s *segment.Segmenter) Processor

type Processor interface {
	Process(ctx context.Context, in Input) (string, error)
}

type segmentation struct {
	segmenter *segment.Segmenter
}

func NewSegmentation(s *segment.Segmenter) Processor {
	return &segmentation{segmenter: s}
}

func (p *segmentation) Process(ctx context.Context, in Input) (string, error) {
	paths, err := p.segmenter.Seg(ctx, in.Content)
	if err != nil {
		return "", err
	}
	b, err := render.JSON(in.Content, paths, false)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// keywordDetector reports the dictionary words occurring in the content.
// With FirstWord it returns the first one only, otherwise all of them.
type keywordDetector struct {
	segmenter *segment.Segmenter
}

func NewKeywordDetector(s *segment.Segmenter) Processor {
	return &keywordDetector{segmenter: s}
}

func (p *keywordDetector) Process(_ context.Context, in Input) (string, error) {
	matches, err := p.segmenter.Matches(in.Content)
	if err != nil {
		return "", err
	}
	content := []rune(in.Content)
	words := make([]string, 0, len(matches))
	for _, m := range matches {
		words = append(words, string(content[m.Start:m.End]))
	}
	words = funk.UniqString(words)

	if in.OutputModel == FirstWord && len(words) > 0 {
		return words[0], nil
	}
	return strings.Join(words, ", "), nil
}
