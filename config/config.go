// Package config reads the yaml configuration of the segmentation service.
package config

import (
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/antgroup/rawseg/dictionary"
	"github.com/antgroup/rawseg/schema"
	"github.com/antgroup/rawseg/segment"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// SupportedVersions is the constraint a config file version must satisfy.
const SupportedVersions = ">= 1.0.0, < 2.0.0"

type Config struct {
	Version    string           `yaml:"version"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Segment    SegmentConfig    `yaml:"segment"`
	Server     ServerConfig     `yaml:"server"`
}

type DictionaryConfig struct {
	Path       string `yaml:"path"`
	Encoding   string `yaml:"encoding"`
	DefaultTag string `yaml:"default_tag"`
	TagPattern string `yaml:"tag_pattern"`
	Progress   int    `yaml:"progress"`
}

type SegmentConfig struct {
	MaxPaths    int    `yaml:"max_paths"`
	SingleTag   string `yaml:"single_tag"`
	Concurrency int    `yaml:"concurrency"`
}

type ServerConfig struct {
	Name    string  `yaml:"name"`
	Version string  `yaml:"version"`
	Rate    float64 `yaml:"rate"`
	Burst   int64   `yaml:"burst"`
}

func Default() *Config {
	seg := segment.DefaultOptions()
	dict := dictionary.DefaultOptions()
	return &Config{
		Version: "1.0.0",
		Dictionary: DictionaryConfig{
			Encoding:   dict.Encoding,
			DefaultTag: dict.DefaultTag,
		},
		Segment: SegmentConfig{
			MaxPaths:    10000,
			SingleTag:   seg.SingleTag,
			Concurrency: seg.Concurrency,
		},
		Server: ServerConfig{
			Name:    "rawseg",
			Version: "1.0.0",
			Rate:    20,
			Burst:   40,
		},
	}
}

// Load reads the config file at path on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Apply decodes overrides, keyed like the yaml file, into c. Values may be
// strings, e.g. from flags or environment variables.
func (c *Config) Apply(overrides map[string]any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           c,
		TagName:          "yaml",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(overrides); err != nil {
		return errors.Wrap(err, "apply config overrides")
	}
	return c.Validate()
}

func (c *Config) Validate() error {
	v, err := semver.NewVersion(c.Version)
	if err != nil {
		return errors.Wrapf(err, "config version %q", c.Version)
	}
	constraint, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return err
	}
	if !constraint.Check(v) {
		return errors.Errorf("config version %s is not in %s", c.Version, SupportedVersions)
	}
	if c.Segment.MaxPaths < 0 {
		return errors.New("segment.max_paths must not be negative")
	}
	if c.Segment.SingleTag == "" {
		c.Segment.SingleTag = schema.SingleTag
	}
	return nil
}

func (c *Config) SegmentOptions() []segment.Option {
	opts := []segment.Option{
		segment.WithMaxPaths(c.Segment.MaxPaths),
		segment.WithSingleTag(c.Segment.SingleTag),
	}
	if c.Segment.Concurrency > 0 {
		opts = append(opts, segment.WithConcurrency(c.Segment.Concurrency))
	}
	return opts
}

func (c *Config) DictionaryOptions() []dictionary.Option {
	opts := []dictionary.Option{
		dictionary.WithEncoding(c.Dictionary.Encoding),
		dictionary.WithTagPattern(c.Dictionary.TagPattern),
		dictionary.WithProgress(c.Dictionary.Progress),
	}
	if c.Dictionary.DefaultTag != "" {
		opts = append(opts, dictionary.WithDefaultTag(c.Dictionary.DefaultTag))
	}
	return opts
}
