package topotext

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vencik-go/libnn/feedforward"
	"github.com/vencik-go/libnn/neuron"
)

func formatNum(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// WriteTopology writes net as a standalone "NNTopology ... NNTopologyEnd"
// block. Neurons are written in index order, followed by every dendrite as
// a Synapsis line.
func WriteTopology(w io.Writer, net *neuron.Network) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "NNTopology")
	for _, n := range net.Neurons() {
		fmt.Fprintf(bw, "    Neuron %d\n", n.Index())
		fmt.Fprintf(bw, "        type = %s\n", n.Role())
		fmt.Fprintf(bw, "        f    = %s\n", n.Act)
		fmt.Fprintln(bw, "    NeuronEnd")
	}
	for _, n := range net.Neurons() {
		for _, d := range n.Dendrites() {
			fmt.Fprintf(bw, "    Synapsis %d -> %d weight = %s\n", d.Source, n.Index(), formatNum(d.Weight))
		}
	}
	fmt.Fprintln(bw, "NNTopologyEnd")

	return bw.Flush()
}

// WriteFFNN writes net wrapped in an "FFNN ... FFNNEnd" block recording
// flags as the "features" hex field.
func WriteFFNN(w io.Writer, flags feedforward.Flags, net *neuron.Network) error {
	var body bytes.Buffer
	if err := WriteTopology(&body, net); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "FFNN")
	fmt.Fprintf(bw, "    features = 0x%x\n", uint(flags))
	for _, line := range strings.Split(strings.TrimRight(body.String(), "\n"), "\n") {
		fmt.Fprintf(bw, "    %s\n", line)
	}
	fmt.Fprintln(bw, "FFNNEnd")

	return bw.Flush()
}
