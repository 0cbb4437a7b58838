// Package topotext reads and writes the NNTopology/FFNN text grammar: a
// line-oriented format compatible with the existing serialisation and DOT
// renderer, with '#' line comments and whitespace-insensitive indentation.
package topotext
