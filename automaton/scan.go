package automaton

import (
	"slices"

	"github.com/antgroup/rawseg/schema"
)

// Scan reports every dictionary occurrence in query, overlapping and nested
// ones included. Offsets are rune offsets. Matches come ordered by end
// position, longest first for the same end.
func (a *Automaton) Scan(query string) ([]schema.Match, error) {
	return a.ScanRunes([]rune(query))
}

func (a *Automaton) ScanRunes(query []rune) ([]schema.Match, error) {
	if !a.built {
		return nil, schema.ErrNotBuilt
	}
	matches := make([]schema.Match, 0)
	state := rootNode
	for i, ch := range query {
		state = a.transition(state, ch)
		// every word ending here is a suffix of the current state
		for n := state; n != rootNode; n = a.nodes[n].fail {
			if len(a.nodes[n].tags) == 0 {
				continue
			}
			matches = append(matches, schema.Match{
				Start: i - a.nodes[n].depth + 1,
				End:   i + 1,
				Tags:  slices.Clone(a.nodes[n].tags),
			})
		}
	}
	return matches, nil
}
