package bsc

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/nathanhack/gf2codes/benchmarking"
	"github.com/nathanhack/gf2codes/cmd/internal/tools"
	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Trials           uint
	ErrorProbability []float64
	Threads          uint
	ConfigFile       string
)

var BSCRun = func(cmd *cobra.Command, args []string) {
	rand.Seed(time.Now().UnixNano())

	if ConfigFile != "" {
		config, err := tools.LoadConfig(ConfigFile)
		if err != nil {
			fmt.Println(err)
			return
		}
		config.Apply(cmd, &Trials, &Threads, &ErrorProbability, "probability")
	}

	for _, p := range ErrorProbability {
		if p < 0 || p > 1 {
			fmt.Printf("crossover probability must be in [0, 1] but found %v\n", p)
			return
		}
	}

	data, codec, err := tools.Prepare(args[0], args[1], "BSC")
	if err != nil {
		fmt.Println(err)
		return
	}
	logrus.Infof("Simulating %v over a BSC", codec.Name())

	run := func(ctx context.Context, p float64, trials, threads int, previous benchmarking.Stats, checkpoints benchmarking.Checkpoints) benchmarking.Stats {
		return RunBSC(ctx, codec, p, trials, threads, previous, checkpoints, false)
	}
	tools.Simulate(tools.SignalContext(), data, ErrorProbability, int(Trials), int(Threads), args[1], run)
}

// RunBSC continues previousStats up to trials trials of codec over a binary
// symmetric channel with the given crossover probability.
func RunBSC(ctx context.Context,
	codec benchmarking.Codec,
	crossoverProbability float64, trials, threads int,
	previousStats benchmarking.Stats,
	checkpoints benchmarking.Checkpoints,
	showProgress bool) benchmarking.Stats {

	createMessage := func(trial int) mat.SparseVector {
		return benchmarking.RandomMessage(codec.MessageLength())
	}

	channel := func(originalCodeword mat.SparseVector) (erroredCodeword mat.SparseVector) {
		return benchmarking.RandomFlipBits(originalCodeword, crossoverProbability)
	}

	encode, repair, metrics := benchmarking.BSC(codec)
	return benchmarking.BenchmarkBSCContinueStats(ctx, trials, threads, createMessage, encode, channel, repair, metrics, checkpoints, previousStats, showProgress)
}
