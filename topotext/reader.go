package topotext

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/vencik-go/libnn/activation"
	"github.com/vencik-go/libnn/errs"
	"github.com/vencik-go/libnn/feedforward"
	"github.com/vencik-go/libnn/neuron"
)

// lineReader yields comment-stripped, whitespace-trimmed, non-blank lines.
// Because every line is fully trimmed, the grammar's indentation is
// cosmetic only — nesting a Topology block inside an FFNN wrapper needs no
// special handling here.
type lineReader struct {
	sc     *bufio.Scanner
	lineNo int
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{sc: bufio.NewScanner(r)}
}

func (lr *lineReader) next() (string, bool) {
	for lr.sc.Scan() {
		lr.lineNo++
		line := lr.sc.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		return line, true
	}

	return "", false
}

func parseErr(lr *lineReader, format string, args ...interface{}) error {
	args = append([]interface{}{lr.lineNo}, args...)
	return errs.Wrapf(errs.ErrParse, "topotext", "line %d: "+format, args...)
}

func roleFromString(s string) (neuron.Role, error) {
	switch s {
	case "INPUT":
		return neuron.Input, nil
	case "OUTPUT":
		return neuron.Output, nil
	case "INNER":
		return neuron.Inner, nil
	default:
		return 0, errs.Wrapf(errs.ErrParse, "topotext.roleFromString", "unrecognised role %q", s)
	}
}

// ParseTopology parses a standalone "NNTopology ... NNTopologyEnd" block.
func ParseTopology(r io.Reader) (*neuron.Network, error) {
	lr := newLineReader(r)
	line, ok := lr.next()
	if !ok || line != "NNTopology" {
		return nil, parseErr(lr, "expected NNTopology header, got %q", line)
	}

	return parseTopologyBody(lr)
}

// ParseFFNN parses an "FFNN ... FFNNEnd" block wrapping a Topology block,
// returning the built network and the feed-forward factory flags recorded
// in the "features" line.
func ParseFFNN(r io.Reader) (*neuron.Network, feedforward.Flags, error) {
	lr := newLineReader(r)

	line, ok := lr.next()
	if !ok || line != "FFNN" {
		return nil, 0, parseErr(lr, "expected FFNN header, got %q", line)
	}

	line, ok = lr.next()
	if !ok {
		return nil, 0, parseErr(lr, "unexpected EOF after FFNN header")
	}
	fields := strings.Fields(line)
	if len(fields) != 3 || fields[0] != "features" || fields[1] != "=" {
		return nil, 0, parseErr(lr, "expected \"features = 0x<hex>\", got %q", line)
	}
	hex := strings.TrimPrefix(fields[2], "0x")
	flagsVal, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return nil, 0, parseErr(lr, "invalid features hex value %q: %v", fields[2], err)
	}

	line, ok = lr.next()
	if !ok || line != "NNTopology" {
		return nil, 0, parseErr(lr, "expected nested NNTopology header, got %q", line)
	}
	net, err := parseTopologyBody(lr)
	if err != nil {
		return nil, 0, err
	}

	line, ok = lr.next()
	if !ok || line != "FFNNEnd" {
		return nil, 0, parseErr(lr, "expected FFNNEnd, got %q", line)
	}

	return net, feedforward.Flags(flagsVal), nil
}

// parseTopologyBody parses every line after an already-consumed "NNTopology"
// header, through and including "NNTopologyEnd".
func parseTopologyBody(lr *lineReader) (*neuron.Network, error) {
	net := neuron.NewNetwork()

	for {
		line, ok := lr.next()
		if !ok {
			return nil, parseErr(lr, "unexpected EOF inside NNTopology")
		}
		if line == "NNTopologyEnd" {
			return net, nil
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "Neuron":
			if err := parseNeuron(lr, net, fields); err != nil {
				return nil, err
			}
		case "Synapsis":
			if err := parseSynapsis(lr, net, fields); err != nil {
				return nil, err
			}
		default:
			return nil, parseErr(lr, "unrecognised statement %q", fields[0])
		}
	}
}

func parseNeuron(lr *lineReader, net *neuron.Network, header []string) error {
	if len(header) != 2 {
		return parseErr(lr, "malformed Neuron header %q", strings.Join(header, " "))
	}
	idx, err := strconv.Atoi(header[1])
	if err != nil {
		return parseErr(lr, "invalid neuron index %q: %v", header[1], err)
	}

	typeLine, ok := lr.next()
	if !ok {
		return parseErr(lr, "unexpected EOF reading Neuron %d's type", idx)
	}
	typeFields := strings.Fields(typeLine)
	if len(typeFields) != 3 || typeFields[0] != "type" || typeFields[1] != "=" {
		return parseErr(lr, "malformed type line %q", typeLine)
	}
	role, err := roleFromString(typeFields[2])
	if err != nil {
		return err
	}

	fLine, ok := lr.next()
	if !ok {
		return parseErr(lr, "unexpected EOF reading Neuron %d's activation", idx)
	}
	fFields := strings.Fields(fLine)
	if len(fFields) != 3 || fFields[0] != "f" || fFields[1] != "=" {
		return parseErr(lr, "malformed f line %q", fLine)
	}
	act, err := activation.ParseLiteral(fFields[2])
	if err != nil {
		return err
	}

	endLine, ok := lr.next()
	if !ok || endLine != "NeuronEnd" {
		return parseErr(lr, "expected NeuronEnd for Neuron %d, got %q", idx, endLine)
	}

	if _, err := net.SetNeuron(idx, role, act); err != nil {
		return parseErr(lr, "Neuron %d: %v", idx, err)
	}

	return nil
}

func parseSynapsis(lr *lineReader, net *neuron.Network, fields []string) error {
	// Synapsis <src> -> <dst> weight = <number>
	if len(fields) != 7 || fields[2] != "->" || fields[4] != "weight" || fields[5] != "=" {
		return parseErr(lr, "malformed Synapsis line %q", strings.Join(fields, " "))
	}
	src, err := strconv.Atoi(fields[1])
	if err != nil {
		return parseErr(lr, "invalid Synapsis source %q: %v", fields[1], err)
	}
	dst, err := strconv.Atoi(fields[3])
	if err != nil {
		return parseErr(lr, "invalid Synapsis destination %q: %v", fields[3], err)
	}
	weight, err := strconv.ParseFloat(fields[6], 64)
	if err != nil {
		return parseErr(lr, "invalid Synapsis weight %q: %v", fields[6], err)
	}

	if err := net.SetDendrite(dst, src, weight); err != nil {
		return parseErr(lr, "Synapsis %d -> %d: %v", src, dst, err)
	}

	return nil
}
