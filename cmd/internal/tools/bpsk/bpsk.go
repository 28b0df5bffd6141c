package bpsk

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
	mat2 "gonum.org/v1/gonum/mat"
)

var (
	Trials     uint
	EbN0       []float64
	Threads    uint
	ConfigFile string
)

var BPSKRun = func(cmd *cobra.Command, args []string) {
	rand.Seed(time.Now().UnixNano())

	if ConfigFile != "" {
		config, err := tools.LoadConfig(ConfigFile)
		if err != nil {
			fmt.Println(err)
			return
		}
		config.Apply(cmd, &Trials, &Threads, &EbN0, "ebn0")
	}

	for _, e := range EbN0 {
		if e <= 0 {
			fmt.Printf("E_b/N_0 must be > 0 but found %v\n", e)
			return
		}
	}

	data, codec, err := tools.Prepare(args[0], args[1], "BPSK")
	if err != nil {
		fmt.Println(err)
		return
	}
	logrus.Infof("Simulating %v over BPSK with AWGN", codec.Name())

	run := func(ctx context.Context, ebn0 float64, trials, threads int, previous benchmarking.Stats, checkpoints benchmarking.Checkpoints) benchmarking.Stats {
		return RunBPSK(ctx, codec, ebn0, trials, threads, previous, checkpoints, false)
	}
	tools.Simulate(tools.SignalContext(), data, EbN0, int(Trials), int(Threads), args[1], run)
}

// RunBPSK continues previousStats up to trials trials of codec sent as BPSK
// symbols through additive white gaussian noise at the given E_b/N_0, with a
// hard decision before decoding.
func RunBPSK(ctx context.Context,
	codec benchmarking.Codec,
	EbN0 float64, trials, threads int,
	previousStats benchmarking.Stats,
	checkpoints benchmarking.Checkpoints,
	showProgress bool) benchmarking.Stats {

	createMessage := func(trial int) mat.SparseVector {
		return benchmarking.RandomMessage(codec.MessageLength())
	}

	channel := func(codeword mat2.Vector) (channelInducedCodeword mat2.Vector) {
		return benchmarking.RandomNoiseBPSK(codeword, EbN0)
	}

	encode, repair, metrics := benchmarking.BPSK(codec)
	return benchmarking.BenchmarkBPSKContinueStats(ctx, trials, threads, createMessage, encode, channel, repair, metrics, checkpoints, previousStats, showProgress)
}
