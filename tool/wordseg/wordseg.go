// Package wordseg exposes the segmenter as agent tools: one returning every
// segmentation path, one detecting dictionary words.
package wordseg

import (
	"context"
	"fmt"
	"strings"

	"github.com/antgroup/rawseg/schema"
	"github.com/antgroup/rawseg/tool"
	"github.com/antgroup/rawseg/utils/json"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

var processors = map[string]Factory{
	SegmentationMode:     NewSegmentation,
	KeywordDetectionMode: NewKeywordDetector,
}

const _defaultMode = SegmentationMode

type Tool struct {
	Mode        string
	OutputModel string
	Processor   Processor
}

// New returns the tool for the configured mode. Unknown modes fall back to
// segmentation.
func New(opts ...Option) (*Tool, error) {
	options := &Options{OutputModel: AllWords}
	for _, opt := range opts {
		opt(options)
	}
	if options.Segmenter == nil {
		return nil, schema.ErrMissingSegmenter
	}
	mode := options.ProcessMode
	factory, ok := processors[mode]
	if !ok {
		mode = _defaultMode
		factory = processors[mode]
	}
	return &Tool{
		Mode:        mode,
		OutputModel: options.OutputModel,
		Processor:   factory(options.Segmenter),
	}, nil
}

var _ tool.Tool = &Tool{}

func (t Tool) Name() string {
	return "rawseg_" + strings.ReplaceAll(t.Mode, "-", "_")
}

func (t Tool) Description() string {
	bytes, _ := json.Marshal(t.Schema())
	switch t.Mode {
	case KeywordDetectionMode:
		return fmt.Sprintf(`Detects the dictionary words contained in a text.
Useful for when you need to find known terms or proper nouns in a text,
the input must be json schema: %s`, string(bytes)) + `
Example Input: {"content": "计算机科学与技术", "output_model": "all-words"}`
	default:
		return fmt.Sprintf(`Splits a text into words in every way a dictionary allows.
Useful for when you need the candidate word segmentations of a Chinese text,
the input must be json schema: %s`, string(bytes)) + `
Example Input: {"content": "计算机科学与技术"}`
	}
}

func (t Tool) Schema() *tool.PropertiesSchema {
	ps := &tool.PropertiesSchema{
		Type: tool.TypeJson,
		Properties: map[string]tool.PropertySchema{
			"content": {
				Type:        tool.TypeString,
				Description: "the text to process",
			},
		},
		Required: []string{"content"},
	}
	if t.Mode == KeywordDetectionMode {
		ps.Properties["output_model"] = tool.PropertySchema{
			Type:        tool.TypeString,
			Description: "return all words or only the first one",
			Enum:        []string{AllWords, FirstWord},
		}
	}
	return ps
}

func (t Tool) Strict() bool {
	return true
}

// Call runs the processor on the json input. Input problems are reported in
// the returned text so the caller can retry, only context errors are returned.
func (t Tool) Call(ctx context.Context, input string) (string, error) {
	var m map[string]any
	if err := json.Unmarshal([]byte(json.TrimJsonString(input)), &m); err != nil {
		return "json unmarshal error, please try again", nil
	}
	in, err := t.Decode(m)
	if err != nil {
		return err.Error(), nil
	}

	ret, err := t.Processor.Process(ctx, in)
	switch {
	case err == nil:
		return ret, nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "", err
	case errors.Is(err, schema.ErrTooManyPaths):
		return "the text has too many segmentations, please send a shorter text", nil
	default:
		return "process content error: " + err.Error(), nil
	}
}

// Decode converts raw arguments into an Input, applying the defaults.
func (t Tool) Decode(args map[string]any) (Input, error) {
	in := Input{}
	if err := mapstructure.Decode(args, &in); err != nil {
		return in, errors.Wrap(err, "invalid input")
	}
	if args["content"] == nil {
		return in, errors.New("content is required")
	}
	if in.OutputModel == "" {
		in.OutputModel = t.OutputModel
	}
	return in, nil
}
