// Package train implements the backpropagation trainer: a pool of
// computation slots, each owning a forward and a backward evaluator
// sharing one reverse-adjacency map, driving on-line (TrainOne) and batch
// (TrainBatch) weight updates.
package train
