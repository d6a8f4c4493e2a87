package automaton

// Build computes the failure links breadth first, so every node's parent is
// resolved before the node itself. Calling Build again without new inserts
// yields the same links.
func (a *Automaton) Build() {
	queue := make([]int, 0, len(a.nodes))
	queue = append(queue, rootNode)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for child := a.nodes[current].child; child != noNode; child = a.nodes[child].sibling {
			if current == rootNode {
				a.nodes[child].fail = rootNode
			} else {
				a.nodes[child].fail = a.transition(a.nodes[current].fail, a.nodes[child].char)
			}
			queue = append(queue, child)
		}
	}
	a.built = true
}

// transition follows the goto function from state on ch, falling back along
// failure links. The root absorbs characters it has no child for.
func (a *Automaton) transition(state int, ch rune) int {
	for {
		if next, ok := a.next[edge{state, ch}]; ok {
			return next
		}
		if state == rootNode {
			return rootNode
		}
		state = a.nodes[state].fail
	}
}
