package neuron

import "github.com/vencik-go/libnn/errs"

// SetDendrite adds a dendrite from source with the given weight, or updates
// the weight of an existing dendrite from source. Complexity O(1) via the
// neuron's source index.
func (n *Neuron) SetDendrite(source int, weight float64) {
	if pos, ok := n.srcIndex[source]; ok {
		n.dendrites[pos].Weight = weight

		return
	}
	n.srcIndex[source] = len(n.dendrites)
	n.dendrites = append(n.dendrites, Dendrite{Source: source, Weight: weight})
}

// UnsetDendrite removes the dendrite from source, if any. Removal swaps the
// last dendrite into the vacated slot, so dendrite order is stable under
// every operation except an explicit removal like this one.
func (n *Neuron) UnsetDendrite(source int) {
	pos, ok := n.srcIndex[source]
	if !ok {
		return
	}
	last := len(n.dendrites) - 1
	moved := n.dendrites[last]
	n.dendrites[pos] = moved
	n.dendrites = n.dendrites[:last]
	delete(n.srcIndex, source)
	if pos != last {
		n.srcIndex[moved.Source] = pos
	}
}

// GetDendrite returns the dendrite from source and true, or the zero
// Dendrite and false if none exists.
func (n *Neuron) GetDendrite(source int) (Dendrite, bool) {
	pos, ok := n.srcIndex[source]
	if !ok {
		return Dendrite{}, false
	}

	return n.dendrites[pos], true
}

// MinimiseDendrites drops every dendrite whose weight is exactly zero and
// rebuilds the source index. This is the operation Network.Prune invokes
// per neuron.
func (n *Neuron) MinimiseDendrites() {
	kept := n.dendrites[:0]
	for _, d := range n.dendrites {
		if d.Weight != 0 {
			kept = append(kept, d)
		}
	}
	n.dendrites = kept
	n.srcIndex = make(map[int]int, len(n.dendrites))
	for i, d := range n.dendrites {
		n.srcIndex[d.Source] = i
	}
}

// removeIncomingFrom drops any dendrite referencing source. Used by Network
// when a neuron is removed or replaced, to erase every other neuron's
// incoming synapse to it.
func (n *Neuron) removeIncomingFrom(source int) {
	n.UnsetDendrite(source)
}

// removeAllSourcedOn is a package-internal bulk helper: for every non-vacant
// neuron in net, drop any dendrite sourced on the given index.
func removeAllSourcedOn(net *Network, index int) {
	for _, nb := range net.slots {
		if nb == nil {
			continue
		}
		nb.removeIncomingFrom(index)
	}
}

// validateSource fails with errs.ErrIndex unless source names a non-vacant
// neuron in net.
func validateSource(net *Network, source int) error {
	if _, err := net.GetNeuron(source); err != nil {
		return errs.Wrapf(errs.ErrIndex, "neuron.SetDendrite", "dendrite source %d: %v", source, err)
	}

	return nil
}
