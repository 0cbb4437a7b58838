package neuron

import (
	"github.com/vencik-go/libnn/activation"
	"github.com/vencik-go/libnn/errs"
)

// GetNeuron returns the neuron at index. Fails with errs.ErrIndex if index
// is out of range or the slot is vacant. Complexity O(1).
func (net *Network) GetNeuron(index int) (*Neuron, error) {
	if index < 0 || index >= len(net.slots) || net.slots[index] == nil {
		return nil, errs.Wrapf(errs.ErrIndex, "Network.GetNeuron", "index %d out of range or vacant (slot_cnt=%d)", index, len(net.slots))
	}

	return net.slots[index], nil
}

// AddNeuron appends a new neuron and returns it. If role is Input or
// Output, the new index is appended to the corresponding role list.
// Complexity O(1) amortized.
func (net *Network) AddNeuron(role Role, act activation.Activation) *Neuron {
	index := len(net.slots)
	n := newNeuron(index, role, act)
	net.slots = append(net.slots, n)
	net.size++
	net.appendToRoleList(role, index)

	return n
}

// SetNeuron installs a neuron at index, growing the slot vector with
// vacancies as needed. If the slot already holds a neuron, that neuron is
// removed from its role list and every other neuron's incoming dendrite to
// it is erased, before the new neuron is installed. Complexity O(V) worst
// case (role-list removal, incoming-edge sweep); O(1) amortized for a
// vacant or newly grown slot.
func (net *Network) SetNeuron(index int, role Role, act activation.Activation) (*Neuron, error) {
	if index < 0 {
		return nil, errs.Wrapf(errs.ErrIndex, "Network.SetNeuron", "negative index %d", index)
	}
	for len(net.slots) <= index {
		net.slots = append(net.slots, nil)
	}
	if old := net.slots[index]; old != nil {
		net.removeFromRoleList(old.role, index)
		removeAllSourcedOn(net, index)
		net.size--
	}
	n := newNeuron(index, role, act)
	net.slots[index] = n
	net.size++
	net.appendToRoleList(role, index)

	return n, nil
}

// RemoveNeuron removes the neuron at index: drops it from its role list,
// erases every incoming dendrite to it from other neurons, and vacates the
// slot without compacting. Complexity O(V) (incoming-edge sweep).
func (net *Network) RemoveNeuron(index int) error {
	n, err := net.GetNeuron(index)
	if err != nil {
		return errs.Wrapf(errs.ErrIndex, "Network.RemoveNeuron", "%v", err)
	}
	net.removeFromRoleList(n.role, index)
	removeAllSourcedOn(net, index)
	net.slots[index] = nil
	net.size--

	return nil
}

// SetDendrite adds or updates, on the consumer neuron, a dendrite sourced
// on source with the given weight. Fails with errs.ErrIndex if either
// neuron does not exist.
func (net *Network) SetDendrite(consumer, source int, weight float64) error {
	c, err := net.GetNeuron(consumer)
	if err != nil {
		return errs.Wrapf(errs.ErrIndex, "Network.SetDendrite", "consumer: %v", err)
	}
	if err = validateSource(net, source); err != nil {
		return err
	}
	c.SetDendrite(source, weight)

	return nil
}

// Neurons returns every non-vacant neuron, ordered by index.
func (net *Network) Neurons() []*Neuron {
	out := make([]*Neuron, 0, net.size)
	for _, n := range net.slots {
		if n != nil {
			out = append(out, n)
		}
	}

	return out
}

func (net *Network) appendToRoleList(role Role, index int) {
	switch role {
	case Input:
		net.inputs = append(net.inputs, index)
	case Output:
		net.outputs = append(net.outputs, index)
	}
}

func (net *Network) removeFromRoleList(role Role, index int) {
	switch role {
	case Input:
		net.inputs = removeInt(net.inputs, index)
	case Output:
		net.outputs = removeInt(net.outputs, index)
	}
}

func removeInt(s []int, v int) []int {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}

	return s
}
