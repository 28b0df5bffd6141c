package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nathanhack/gf2codes/cmd/internal/tools"
	"github.com/spf13/cobra"
)

var OutputFile string
var MessageError bool
var ParityError bool

var CSVRun = func(cmd *cobra.Command, args []string) {
	stats, points, err := tools.LoadAllResults(args)
	if err != nil {
		fmt.Println(err)
		return
	}

	metric := tools.CodewordMetric
	switch {
	case MessageError:
		metric = tools.MessageMetric
	case ParityError:
		metric = tools.ParityMetric
	}

	f, err := os.Create(OutputFile)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()

	err = write(f, args, stats, points, metric)
	if err != nil {
		fmt.Println(err)
	}
}

func write(f io.Writer, names []string, stats []*tools.SimulationStats, points []float64, metric tools.Metric) error {
	w := csv.NewWriter(f)
	defer w.Flush()

	//first write headers
	header := []string{"Results File"}
	for _, p := range points {
		header = append(header, fmt.Sprintf("%v", p))
	}

	err := w.Write(header)
	if err != nil {
		return err
	}

	for i, s := range stats {
		record := make([]string, len(header))
		record[0] = strings.TrimSuffix(names[i], filepath.Ext(names[i]))

		for j, p := range points {
			if v, has := s.Stats[p]; has {
				record[j+1] = fmt.Sprintf("%v", metric.Of(v))
			}
		}

		err = w.Write(record)
		if err != nil {
			return err
		}
	}
	return nil
}
