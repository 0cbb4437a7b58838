// Command-free library libnn builds, evaluates, and trains feed-forward
// neural networks on a synchronous, single-threaded computation engine.
//
// Packages are organised by layer:
//
//	fixable/     — tri-state memoisation cell (UNFIXED/SOFT/HARD)
//	activation/  — activation-function capability (identity, logistic)
//	neuron/      — indexed topology graph: neurons, dendrites, reverse adjacency
//	compute/     — generic fixed-point evaluator shared by forward and backward
//	forward/     — per-neuron (Net, Phi) evaluator
//	backward/    — per-neuron backpropagated Delta evaluator
//	rng/         — quantised uniform weight initialiser
//	criterion/   — learning-rate criteria (Constant, Adaptive)
//	train/       — backpropagation trainer (on-line and batch modes)
//	feedforward/ — layered network factory (BIAS, LATERAL_PREV)
//	topotext/    — NNTopology/FFNN text serialisation
//	errs/        — shared sentinel errors
//
// cmd/perceptron is the shipped CLI test harness.
package libnn
