package tools

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/gf2codes/benchmarking"
	"github.com/sirupsen/logrus"
)

// Runner continues previous up to trials trials at channel parameter point.
type Runner func(ctx context.Context, point float64, trials, threads int, previous benchmarking.Stats, checkpoints benchmarking.Checkpoints) benchmarking.Stats

// Simulate runs every point in lock step, trialsPerIter trials at a time, so an
// interrupted run has results for all points. data is saved to outputFilename
// periodically and whenever a step finishes.
func Simulate(ctx context.Context, data *SimulationStats, points []float64, trials, threads int, outputFilename string, run Runner) {
	checkpointMux := sync.Mutex{}
	checkpointCount := 0

	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	trialsPerIter := threads * 10

	bar := pb.StartNew(trials * len(points))
	for _, p := range points {
		bar.Add(data.Stats[p].Trials())
	}

trialLoops:
	for t := trialsPerIter; ; t += trialsPerIter {
		select {
		case <-ctx.Done():
			break trialLoops
		default:
		}

		target := min(t, trials)
		for _, p := range points {
			point := p
			before := data.Stats[point].Trials()
			checkpoint := func(stats benchmarking.Stats) {
				//we want to save the checkpoint
				checkpointMux.Lock()
				defer checkpointMux.Unlock()

				data.Stats[point] = stats

				if checkpointCount%trialsPerIter == 0 {
					err := SaveResults(outputFilename, data)
					if err != nil {
						logrus.Error(err)
					}
				}
				checkpointCount++
			}
			stats := run(ctx, point, target, threads, data.Stats[point], checkpoint)

			checkpointMux.Lock()
			data.Stats[point] = stats
			checkpointMux.Unlock()
			bar.Add(stats.Trials() - before)
		}

		if err := SaveResults(outputFilename, data); err != nil {
			fmt.Println(err)
		}
		if target == trials {
			break
		}
	}
	bar.Finish()
}
