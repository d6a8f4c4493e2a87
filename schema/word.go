package schema

import (
	"strings"
)

const (
	// SingleTag marks a synthetic one-character word that is not in the dictionary.
	SingleTag = "Single"
	// ProperNounTag is the tag given to dictionary entries that carry no pos list.
	ProperNounTag = "ProperNoun"
)

// Match is one dictionary occurrence in a query, as a half-open rune span.
type Match struct {
	Start int      `json:"start"`
	End   int      `json:"end"`
	Tags  []string `json:"tags"`
}

func (m Match) Len() int {
	return m.End - m.Start
}

// Word is a token of a segmentation path.
type Word struct {
	Text  string   `json:"word"`
	Tags  []string `json:"tags"`
	Start int      `json:"start"`
	End   int      `json:"end"`
}

// IsSingle reports whether w is a single-character fallback word tagged
// singleTag.
func (w Word) IsSingle(singleTag string) bool {
	return w.End-w.Start == 1 && len(w.Tags) == 1 && w.Tags[0] == singleTag
}

func (w Word) String() string {
	return w.Text + "|" + strings.Join(w.Tags, ",")
}

// Path is one complete tokenization of a query.
type Path struct {
	Words []Word `json:"words"`
}

// Text concatenates the words of the path, which reconstructs the query.
func (p Path) Text() string {
	var sb strings.Builder
	for _, w := range p.Words {
		sb.WriteString(w.Text)
	}
	return sb.String()
}

func (p Path) Len() int {
	return len(p.Words)
}

func (p Path) String() string {
	words := make([]string, 0, len(p.Words))
	for _, w := range p.Words {
		words = append(words, w.String())
	}
	return strings.Join(words, "\t")
}
