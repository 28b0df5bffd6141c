package csv

import (
	"bytes"
	"testing"

	"github.com/nathanhack/gf2codes/benchmarking"
	"github.com/nathanhack/gf2codes/cmd/internal/tools"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	var a, b benchmarking.Stats
	a.ChannelCodewordError.Update(0.5)
	a.ChannelParityError.Update(0.25)
	b.ChannelCodewordError.Update(0.125)

	stats := []*tools.SimulationStats{
		{Stats: map[float64]benchmarking.Stats{0.1: a, 0.2: b}},
		{Stats: map[float64]benchmarking.Stats{0.2: a}},
	}

	buf := &bytes.Buffer{}
	require.NoError(t, write(buf, []string{"ham.json", "rep.json"}, stats, []float64{0.1, 0.2}, tools.CodewordMetric))
	assert.Equal(t, "Results File,0.1,0.2\nham,0.5,0.125\nrep,,0.5\n", buf.String())

	buf.Reset()
	require.NoError(t, write(buf, []string{"ham.json"}, stats[:1], []float64{0.1}, tools.ParityMetric))
	assert.Equal(t, "Results File,0.1\nham,0.25\n", buf.String())
}
