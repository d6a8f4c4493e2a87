// Package automaton implements an Aho-Corasick automaton over runes whose
// dictionary entries carry part-of-speech tags.
//
// Words are added with Insert, then Build computes the failure links once.
// After Build the automaton is read-only and Scan may be called from any
// number of goroutines.
package automaton

import (
	"slices"
	"unicode/utf8"

	"github.com/antgroup/rawseg/schema"
	"github.com/pkg/errors"
)

const (
	rootNode = 0
	noNode   = -1
)

// node is a trie node stored in the automaton arena. Links are arena indexes.
type node struct {
	char    rune
	tags    []string
	parent  int
	child   int // most recently inserted child
	sibling int
	fail    int
	depth   int
}

// edge keys the goto function: the child of node reached by ch.
type edge struct {
	node int
	ch   rune
}

type Automaton struct {
	nodes []node
	next  map[edge]int
	words int
	built bool
}

func New() *Automaton {
	return &Automaton{
		nodes: []node{{
			parent:  noNode,
			child:   noNode,
			sibling: noNode,
			fail:    rootNode,
		}},
		next: make(map[edge]int),
	}
}

// Insert adds word with tag. Inserting the same word again appends another
// tag, duplicates included. Any Insert invalidates a previous Build.
func (a *Automaton) Insert(word, tag string) error {
	if word == "" {
		return errors.Wrapf(schema.ErrEmptyWord, "tag: %s", tag)
	}
	father := rootNode
	for _, ch := range word {
		child, ok := a.next[edge{father, ch}]
		if !ok {
			child = a.newNode(father, ch)
		}
		father = child
	}
	if father == rootNode || a.nodes[father].depth != utf8.RuneCountInString(word) {
		return errors.Wrapf(schema.ErrMalformedInsert, "word: %s, tag: %s", word, tag)
	}
	n := &a.nodes[father]
	if len(n.tags) == 0 {
		a.words++
	}
	n.tags = append(n.tags, tag)
	a.built = false
	return nil
}

func (a *Automaton) newNode(parent int, ch rune) int {
	id := len(a.nodes)
	a.nodes = append(a.nodes, node{
		char:    ch,
		parent:  parent,
		child:   noNode,
		sibling: a.nodes[parent].child,
		fail:    id,
		depth:   a.nodes[parent].depth + 1,
	})
	a.nodes[parent].child = id
	a.next[edge{parent, ch}] = id
	return id
}

// Lookup returns a copy of the tags stored for word.
func (a *Automaton) Lookup(word string) ([]string, bool) {
	cur := rootNode
	for _, ch := range word {
		next, ok := a.next[edge{cur, ch}]
		if !ok {
			return nil, false
		}
		cur = next
	}
	if len(a.nodes[cur].tags) == 0 {
		return nil, false
	}
	return slices.Clone(a.nodes[cur].tags), true
}

// Len returns the number of distinct words.
func (a *Automaton) Len() int {
	return a.words
}

// Size returns the number of trie nodes, root included.
func (a *Automaton) Size() int {
	return len(a.nodes)
}

func (a *Automaton) Built() bool {
	return a.built
}

// label spells the prefix that leads from the root to id.
func (a *Automaton) label(id int) string {
	runes := make([]rune, a.nodes[id].depth)
	for i := len(runes) - 1; id != rootNode; i-- {
		runes[i] = a.nodes[id].char
		id = a.nodes[id].parent
	}
	return string(runes)
}
