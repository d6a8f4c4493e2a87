// Package dictionary loads tab separated dictionary files into a segmenter.
//
// Each line is either "word<TAB>freq", stored with the default tag, or
// "word<TAB>freq<TAB>pos1,pos2,...", stored once per non-empty pos. Lines with
// fewer than two or more than three fields are skipped.
package dictionary

import (
	"bufio"
	"context"
	"io"
	"log"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/antgroup/rawseg/schema"
	"github.com/antgroup/rawseg/utils/counter"
	"github.com/pkg/errors"
	"github.com/thoas/go-funk"
	"github.com/tidwall/match"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const _maxLineSize = 1 << 20

// Inserter receives the (word, tag) entries of a dictionary.
type Inserter interface {
	Insert(word, tag string) error
}

type Stats struct {
	Lines   int
	Entries int
	Skipped int
}

// Entry is one parsed dictionary line.
type Entry struct {
	Word string
	Tags []string
}

// LoadFile loads the dictionary at path into ins.
func LoadFile(ctx context.Context, path string, ins Inserter, opts ...Option) (Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return Stats{}, errors.Wrap(err, "open dictionary")
	}
	defer f.Close()
	log.Printf("loading dictionary from %s", path)
	return Load(ctx, f, ins, opts...)
}

// Load reads dictionary lines from r and inserts every entry into ins.
func Load(ctx context.Context, r io.Reader, ins Inserter, opts ...Option) (Stats, error) {
	options := DefaultOptions()
	for _, o := range opts {
		o(&options)
	}
	decoder, err := newDecoder(options.Encoding)
	if err != nil {
		return Stats{}, err
	}

	var stats Stats
	progress := counter.NewCounter(counter.WithDesc("dictionary lines"), counter.WithEvery(options.Progress))
	scanner := bufio.NewScanner(transform.NewReader(r, decoder))
	scanner.Buffer(make([]byte, 0, 64*1024), _maxLineSize)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		stats.Lines++
		progress.Add()

		entry, ok := ParseLine(scanner.Text(), options)
		if !ok {
			stats.Skipped++
			continue
		}
		for _, tag := range entry.Tags {
			err := ins.Insert(entry.Word, tag)
			if errors.Is(err, schema.ErrEmptyWord) {
				log.Printf("dictionary line %d: empty word, skipped", stats.Lines)
				stats.Skipped++
				break
			}
			if err != nil {
				return stats, errors.Wrapf(err, "dictionary line %d", stats.Lines)
			}
			stats.Entries++
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, errors.Wrapf(err, "read dictionary after line %d", stats.Lines)
	}
	if options.Progress > 0 {
		progress.Done()
	}
	return stats, nil
}

// ParseLine parses one dictionary line. It reports false when the line holds
// no entry or every tag was filtered out.
func ParseLine(line string, options Options) (Entry, bool) {
	line = strings.TrimSpace(line)
	fields := strings.Split(line, "\t")
	if len(fields) < 2 || len(fields) > 3 {
		return Entry{}, false
	}
	// undecodable bytes are dropped from the word
	entry := Entry{Word: strings.ReplaceAll(fields[0], string(utf8.RuneError), "")}
	if entry.Word == "" {
		return Entry{}, false
	}
	if len(fields) == 3 {
		entry.Tags = funk.Compact(strings.Split(fields[2], ",")).([]string)
	}
	if len(entry.Tags) == 0 {
		entry.Tags = []string{options.DefaultTag}
	}
	if options.TagPattern != "" {
		tags := make([]string, 0, len(entry.Tags))
		for _, tag := range entry.Tags {
			if match.Match(tag, options.TagPattern) {
				tags = append(tags, tag)
			}
		}
		entry.Tags = tags
	}
	return entry, len(entry.Tags) > 0
}

func newDecoder(encoding string) (transform.Transformer, error) {
	switch strings.ToLower(encoding) {
	case "", EncodingUTF8, "utf8":
		return unicode.BOMOverride(unicode.UTF8.NewDecoder()), nil
	case EncodingGBK:
		return simplifiedchinese.GBK.NewDecoder(), nil
	case EncodingGB18030:
		return simplifiedchinese.GB18030.NewDecoder(), nil
	default:
		return nil, errors.Errorf("unsupported dictionary encoding: %s", encoding)
	}
}
