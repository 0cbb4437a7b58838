// Command perceptron is a small test harness: it builds a feed-forward
// network, trains it against a fixed XOR dataset, and reports whether
// training converged below the requested error threshold.
package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vencik-go/libnn/activation"
	"github.com/vencik-go/libnn/criterion"
	"github.com/vencik-go/libnn/feedforward"
	"github.com/vencik-go/libnn/rng"
	"github.com/vencik-go/libnn/train"
)

// config overrides the harness's default topology. Layers follows
// feedforward.Factory.Build's layersSpec; Bias/Lateral map to the
// feedforward.BIAS/LATERAL_PREV flags.
type config struct {
	Layers  []int `yaml:"layers"`
	Bias    bool  `yaml:"bias"`
	Lateral bool  `yaml:"lateral"`
}

func defaultConfig() config {
	return config{Layers: []int{2, 2, 1}, Bias: true}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

func xorSet() []train.Sample {
	return []train.Sample{
		{Input: []float64{0, 0}, Target: []float64{0}},
		{Input: []float64{0, 1}, Target: []float64{1}},
		{Input: []float64{1, 0}, Target: []float64{1}},
		{Input: []float64{1, 1}, Target: []float64{0}},
	}
}

func main() {
	var configPath string

	root := &cobra.Command{
		Use:   "perceptron loops alpha sigma learn_rate verbose rng_seed",
		Short: "Train a small feed-forward network against a fixed XOR dataset",
		Args:  cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args, configPath)
		},
	}
	root.Flags().StringVar(&configPath, "config", "", "YAML file overriding the default layer topology")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, configPath string) error {
	loops, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("loops: %w", err)
	}
	alpha, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("alpha: %w", err)
	}
	sigma, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("sigma: %w", err)
	}
	learnRate, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		return fmt.Errorf("learn_rate: %w", err)
	}
	verbose, err := strconv.Atoi(args[4])
	if err != nil {
		return fmt.Errorf("verbose: %w", err)
	}
	seed, err := strconv.ParseInt(args[5], 10, 64)
	if err != nil {
		return fmt.Errorf("rng_seed: %w", err)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	src := rand.New(rand.NewSource(seed))
	flags := feedforward.NONE
	if cfg.Bias {
		flags |= feedforward.BIAS
	}
	if cfg.Lateral {
		flags |= feedforward.LATERAL_PREV
	}

	// alpha bounds the initial weight range; learn_rate is the criterion's
	// update rate once err² exceeds sigma.
	factory := feedforward.New(activation.Logistic{X0: 0, L: 1, K: 1})
	if err := factory.SetFlags(flags); err != nil {
		return err
	}
	bound := math.Abs(alpha)
	wInit, err := rng.Uniform(src, -bound, bound, 0)
	if err != nil {
		return err
	}
	if err := factory.Build(cfg.Layers, wInit); err != nil {
		return err
	}

	trainer := factory.Training()
	crit := criterion.NewConstant(sigma, learnRate)
	set := xorSet()

	var lastErr float64
	for i := 0; i < loops; i++ {
		lastErr, err = trainer.TrainBatch(set, crit)
		if err != nil {
			return err
		}
		if verbose != 0 && i%100 == 0 {
			fmt.Printf("iteration %d: err2=%.6f\n", i, lastErr)
		}
		if !crit.LastUpdate() {
			break
		}
	}

	fmt.Printf("final err2=%.6f\n", lastErr)
	if lastErr > sigma {
		return fmt.Errorf("did not converge: err2=%.6f > sigma=%.6f", lastErr, sigma)
	}

	return nil
}
