package automaton

import (
	"slices"
)

type walkItem struct {
	node   int
	prefix []rune
}

// Walk visits the stored words depth first, children before siblings, in
// sibling list order. It stops early when fn returns false.
func (a *Automaton) Walk(fn func(word string, tags []string) bool) {
	stack := []walkItem{{node: rootNode}}
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := a.nodes[item.node]
		if n.sibling != noNode {
			prefix := slices.Clone(item.prefix)
			prefix[len(prefix)-1] = a.nodes[n.sibling].char
			stack = append(stack, walkItem{node: n.sibling, prefix: prefix})
		}
		if n.child != noNode {
			prefix := append(slices.Clone(item.prefix), a.nodes[n.child].char)
			stack = append(stack, walkItem{node: n.child, prefix: prefix})
		}
		if len(n.tags) > 0 && !fn(string(item.prefix), slices.Clone(n.tags)) {
			return
		}
	}
}
