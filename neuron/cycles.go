package neuron

import "sort"

const (
	white = 0 // unvisited
	gray  = 1 // on the current DFS path
	black = 2 // fully explored
)

// Cycles reports cycles in the dependency graph induced by dendrites (an
// edge runs from a consumer to each of its dendrite sources, since
// evaluating a consumer depends on its sources). It is a read-only
// diagnostic, not a validity gate: the compute engine (package compute)
// must terminate on cyclic networks regardless, by pre-fixing a SOFT
// default before recursing. Cycles lets callers such as tests confirm a
// topology is or isn't cyclic without depending on evaluation side effects.
//
// The cycles reported are those closed by a back-edge of one depth-first
// search over the neurons in index order, so the result is empty exactly
// when the network is acyclic. It is not a complete enumeration of simple
// cycles: a cycle whose path runs through a neuron the search has already
// finished is not listed.
//
// Returns cycles as index sequences [v0, v1, ..., v0] in canonical minimal
// rotation, sorted for determinism. A neuron with a self-dendrite produces
// the length-1 cycle [v, v].
//
// Complexity: O(V + E + C·L), adapted from the three-color DFS with
// canonical-rotation dedup in dfs.DetectCycles.
func (net *Network) Cycles() [][]int {
	state := make(map[int]int, net.size)
	var path []int
	seen := make(map[string]struct{})
	var cycles [][]int

	for _, n := range net.Neurons() {
		if state[n.index] == white {
			visitForCycles(net, n.index, state, &path, seen, &cycles)
		}
	}

	sort.Slice(cycles, func(i, j int) bool {
		return joinSig(cycles[i]) < joinSig(cycles[j])
	})

	return cycles
}

func visitForCycles(net *Network, id int, state map[int]int, path *[]int, seen map[string]struct{}, cycles *[][]int) {
	state[id] = gray
	*path = append(*path, id)

	n, err := net.GetNeuron(id)
	if err != nil {
		// Vacant slot reached through a stale reference; nothing to explore.
		*path = (*path)[:len(*path)-1]
		state[id] = black

		return
	}

	for _, d := range n.dendrites {
		switch state[d.Source] {
		case white:
			visitForCycles(net, d.Source, state, path, seen, cycles)
		case gray:
			idx := indexOfInt(*path, d.Source)
			recordCycle(d.Source, (*path)[idx:], seen, cycles)
		}
	}

	*path = (*path)[:len(*path)-1]
	state[id] = black
}

func recordCycle(start int, segment []int, seen map[string]struct{}, cycles *[][]int) {
	seq := append(append([]int(nil), segment...), start)
	sig, canon := canonicalCycle(seq)
	if _, ok := seen[sig]; !ok {
		seen[sig] = struct{}{}
		*cycles = append(*cycles, canon)
	}
}

func canonicalCycle(cycle []int) (string, []int) {
	n := len(cycle) - 1
	base := cycle[:n]
	rot := minimalRotation(base)
	closed := append(append([]int(nil), rot...), rot[0])

	return joinSig(closed), closed
}

func indexOfInt(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}

	return -1
}

func joinSig(c []int) string {
	sig := make([]byte, 0, 4*len(c))
	for i, v := range c {
		if i > 0 {
			sig = append(sig, ',')
		}
		sig = appendInt(sig, v)
	}

	return string(sig)
}

func appendInt(dst []byte, v int) []byte {
	if v == 0 {
		return append(dst, '0')
	}
	neg := v < 0
	if neg {
		v = -v
	}
	start := len(dst)
	for v > 0 {
		dst = append(dst, byte('0'+v%10))
		v /= 10
	}
	if neg {
		dst = append(dst, '-')
	}
	// reverse the digits just appended
	for i, j := start, len(dst)-1; i < j; i, j = i+1, j-1 {
		dst[i], dst[j] = dst[j], dst[i]
	}

	return dst
}

// minimalRotation returns the lexicographically minimal rotation of s,
// comparing elements by integer value. n is small in practice (cycle
// length), so a straightforward O(n^2) scan is used rather than Booth's
// linear algorithm.
func minimalRotation(s []int) []int {
	n := len(s)
	best := s
	for start := 1; start < n; start++ {
		cand := make([]int, n)
		for i := 0; i < n; i++ {
			cand[i] = s[(start+i)%n]
		}
		if lessIntSlice(cand, best) {
			best = cand
		}
	}

	return best
}

func lessIntSlice(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}
