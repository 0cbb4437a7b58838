package neuron

import "github.com/vencik-go/libnn/activation"

// Role classifies a neuron's external visibility.
type Role int

const (
	// Inner is a hidden neuron, neither fed nor read externally.
	Inner Role = iota
	// Input is fed externally; its Phi is pinned directly by a forward pass.
	Input
	// Output is read externally; its squared error drives a backward pass.
	Output
)

// String renders the Role the way the topotext grammar spells it.
func (r Role) String() string {
	switch r {
	case Input:
		return "INPUT"
	case Output:
		return "OUTPUT"
	default:
		return "INNER"
	}
}

// Dendrite is an incoming weighted edge: a reference to a source neuron's
// index and a weight. Dendrite order within a neuron is stable under every
// operation except explicit removal (UnsetDendrite) or MinimiseDendrites.
type Dendrite struct {
	Source int
	Weight float64
}

// Neuron is a node identified by its stable slot index. Act is the
// activation functor; Dendrites lists incoming weighted edges in stable
// order.
type Neuron struct {
	index      int
	role       Role
	Act        activation.Activation
	dendrites  []Dendrite
	srcIndex   map[int]int // Dendrite.Source -> position in dendrites, kept in sync
}

// Index returns this neuron's stable slot index.
func (n *Neuron) Index() int { return n.index }

// Role returns this neuron's role.
func (n *Neuron) Role() Role { return n.role }

// Dendrites returns the neuron's incoming edges in stable order. The
// returned slice is a read-only view; mutate via SetDendrite/UnsetDendrite.
func (n *Neuron) Dendrites() []Dendrite {
	return n.dendrites
}

func newNeuron(index int, role Role, act activation.Activation) *Neuron {
	return &Neuron{
		index:    index,
		role:     role,
		Act:      act,
		srcIndex: make(map[int]int),
	}
}

// Network is an ordered sequence of neuron slots (some possibly vacant)
// plus ordered Input/Output index lists. See package doc for invariants.
type Network struct {
	slots   []*Neuron // nil entries are vacant
	size    int       // count of non-vacant slots
	inputs  []int
	outputs []int
}

// NewNetwork returns an empty Network.
func NewNetwork() *Network {
	return &Network{}
}

// Size returns the number of non-vacant slots.
func (net *Network) Size() int { return net.size }

// SlotCount returns the total number of slots, including vacancies; this
// defines the valid index range [0, SlotCount()).
func (net *Network) SlotCount() int { return len(net.slots) }

// Inputs returns the indices of INPUT neurons, in insertion order.
func (net *Network) Inputs() []int { return net.inputs }

// Outputs returns the indices of OUTPUT neurons, in insertion order.
func (net *Network) Outputs() []int { return net.outputs }
