package dictionary

import (
	"github.com/antgroup/rawseg/schema"
)

const (
	EncodingUTF8    = "utf-8"
	EncodingGBK     = "gbk"
	EncodingGB18030 = "gb18030"
)

// Options is a struct that contains options for loading a dictionary.
type Options struct {
	Encoding   string
	DefaultTag string
	// TagPattern keeps only tags matching the glob, empty keeps all.
	TagPattern string
	// Progress logs every Progress loaded lines, 0 disables it.
	Progress int
}

// DefaultOptions returns the default options for loading a dictionary.
func DefaultOptions() Options {
	return Options{
		Encoding:   EncodingUTF8,
		DefaultTag: schema.ProperNounTag,
	}
}

type Option func(*Options)

// WithEncoding sets the file encoding, one of utf-8, gbk or gb18030.
func WithEncoding(encoding string) Option {
	return func(o *Options) {
		o.Encoding = encoding
	}
}

// WithDefaultTag sets the tag of entries that have no pos list.
func WithDefaultTag(tag string) Option {
	return func(o *Options) {
		o.DefaultTag = tag
	}
}

// WithTagPattern keeps only the tags matching pattern, e.g. "n*".
func WithTagPattern(pattern string) Option {
	return func(o *Options) {
		o.TagPattern = pattern
	}
}

func WithProgress(every int) Option {
	return func(o *Options) {
		o.Progress = every
	}
}
