package neuron

// Reindex compacts non-vacant slots to the left, rewriting each neuron's
// stored index to its new position and rebuilding the input/output lists
// in the new order. It invalidates any cached reverse-adjacency map and
// any outstanding computation grid sized to the old SlotCount — the
// trainer (package train) takes a Network that is structurally stable
// thereafter and must be rebuilt after a Reindex.
//
// Complexity: O(V + E) time (one pass to map old->new indices, one pass to
// rewrite dendrite sources), O(V) extra space.
func (net *Network) Reindex() {
	old := net.slots
	oldToNew := make(map[int]int, net.size)
	compacted := make([]*Neuron, 0, net.size)
	for _, n := range old {
		if n == nil {
			continue
		}
		oldToNew[n.index] = len(compacted)
		compacted = append(compacted, n)
	}
	for newIdx, n := range compacted {
		n.index = newIdx
		for i, d := range n.dendrites {
			n.dendrites[i] = Dendrite{Source: oldToNew[d.Source], Weight: d.Weight}
		}
		n.srcIndex = make(map[int]int, len(n.dendrites))
		for i, d := range n.dendrites {
			n.srcIndex[d.Source] = i
		}
	}

	net.slots = compacted
	net.inputs = remapRoleList(net.inputs, oldToNew)
	net.outputs = remapRoleList(net.outputs, oldToNew)
}

func remapRoleList(list []int, oldToNew map[int]int) []int {
	out := make([]int, 0, len(list))
	for _, idx := range list {
		if newIdx, ok := oldToNew[idx]; ok {
			out = append(out, newIdx)
		}
	}

	return out
}

// Prune drops every dendrite whose weight equals zero, across every
// neuron, by calling Neuron.MinimiseDendrites on each.
//
// Complexity: O(V + E).
func (net *Network) Prune() {
	for _, n := range net.slots {
		if n != nil {
			n.MinimiseDendrites()
		}
	}
}

// Minimise runs Prune, then repeatedly removes INNER neurons with zero
// dendrites, then Reindex.
//
// Warning: this changes semantics for activations with φ(0) ≠ 0 — a
// zero-dendrite INNER neuron computes net=0 and therefore phi=φ(0), which
// may be non-zero, yet Minimise deletes it as if it contributed nothing
// downstream. Callers using non-zero-at-zero activations on inner neurons
// that may end up with no dendrites should avoid Minimise.
//
// Complexity: O(V·(V+E)) worst case (each removal re-sweeps incoming
// edges); acceptable for the topology sizes this library targets.
func (net *Network) Minimise() {
	net.Prune()
	for {
		removed := false
		for _, n := range net.slots {
			if n == nil || n.role != Inner {
				continue
			}
			if len(n.dendrites) == 0 {
				_ = net.RemoveNeuron(n.index)
				removed = true
				break // slots mutated; restart the scan
			}
		}
		if !removed {
			break
		}
	}
	net.Reindex()
}
