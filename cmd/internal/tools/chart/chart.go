package chart

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/nathanhack/gf2codes/cmd/internal/tools"
	"github.com/spf13/cobra"
)

var OutputFile string
var MessageError bool

var ChartRun = func(cmd *cobra.Command, args []string) {
	// loop through all the results files and collect data needed for displaying
	stats, points, err := tools.LoadAllResults(args)
	if err != nil {
		fmt.Println(err)
		return
	}

	metric := tools.CodewordMetric
	if MessageError {
		metric = tools.MessageMetric
	}

	f, err := os.Create(OutputFile)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()

	// create a new bar instance
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Results",
			Subtitle: "Residual Error Rates",
			Left:     "20%",
		}),
		charts.WithLegendOpts(opts.Legend{Show: true,
			Orient: "vertical",
			Right:  "0",
			Top:    "top",
			Type:   "scroll",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Channel Parameter",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Remaining Error",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)

	names := make([]string, len(points))
	for i, p := range points {
		names[i] = fmt.Sprint(p)
	}
	bar.SetXAxis(names)

	for i, s := range stats {
		bar.AddSeries(args[i], series(s, points, metric))
	}

	err = bar.Render(f)
	if err != nil {
		fmt.Println(err)
	}
}

func series(stat *tools.SimulationStats, points []float64, metric tools.Metric) []opts.BarData {
	results := make([]opts.BarData, len(points))
	null := opts.BarData{Value: nil}
	for i, p := range points {
		x, has := stat.Stats[p]
		if !has {
			results[i] = null
			continue
		}

		results[i] = opts.BarData{
			Value: metric.Of(x),
		}
	}
	return results
}
