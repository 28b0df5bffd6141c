package tools

import (
	"fmt"

	"github.com/nathanhack/gf2codes/benchmarking"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Which error rate of a benchmarking.Stats to report.
type Metric int

const (
	CodewordMetric Metric = iota
	MessageMetric
	ParityMetric
)

func (m Metric) Of(stats benchmarking.Stats) float64 {
	switch m {
	case MessageMetric:
		return stats.ChannelMessageError.Mean
	case ParityMetric:
		return stats.ChannelParityError.Mean
	default:
		return stats.ChannelCodewordError.Mean
	}
}

// LoadAllResults loads every results file and returns them with the sorted
// union of their channel parameters.
func LoadAllResults(files []string) ([]*SimulationStats, []float64, error) {
	stats := make([]*SimulationStats, len(files))
	points := make(map[float64]bool)
	for i, resultFile := range files {
		s, err := LoadResults(resultFile)
		if err != nil {
			return nil, nil, err
		}
		if s == nil {
			return nil, nil, fmt.Errorf("results file %v does not exist", resultFile)
		}
		for p := range s.Stats {
			points[p] = true
		}
		stats[i] = s
	}

	sorted := maps.Keys(points)
	slices.Sort(sorted)
	return stats, sorted, nil
}
