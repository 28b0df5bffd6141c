package cmd

import (
	"github.com/nathanhack/gf2codes/cmd/internal/tools/bpsk"
	"github.com/nathanhack/gf2codes/cmd/internal/tools/bsc"
	"github.com/nathanhack/gf2codes/cmd/internal/tools/chart"
	"github.com/nathanhack/gf2codes/cmd/internal/tools/csv"

	"github.com/spf13/cobra"
)

// toolsCmd represents the tools command
var toolsCmd = &cobra.Command{
	Use:     "tools",
	Aliases: []string{"t"},
	Short:   "Tools for ECCs",
	Long:    `Tools for ECCs`,
}

// toolsChansimCmd represents the chansim command
var toolsChansimCmd = &cobra.Command{
	Use:     "chansim",
	Aliases: []string{"cs", "c"},
	Short:   "Channel simulators",
	Long:    `Channel simulators for linearblock ECCs`,
}

// toolsBscCmd represents the bsc command
var toolsBscCmd = &cobra.Command{
	Use:   "bsc ECC_JSON_FILE RESULT_JSON",
	Short: "Binary Symmetric Channel simulator",
	Long: `Simulates an ECC created by "create" over a binary symmetric channel, flipping
each codeword bit with the crossover probability. Results are checkpointed to
RESULT_JSON and an existing RESULT_JSON is continued.`,
	Args: cobra.ExactArgs(2),
	Run:  bsc.BSCRun,
}

// toolsBpskCmd represents the bpsk command
var toolsBpskCmd = &cobra.Command{
	Use:   "bpsk ECC_JSON_FILE RESULT_JSON",
	Short: "BPSK with additive white gaussian noise simulator",
	Long: `Simulates an ECC created by "create" sent as BPSK symbols through additive white
gaussian noise, taking a hard decision before decoding. Results are checkpointed
to RESULT_JSON and an existing RESULT_JSON is continued.`,
	Args: cobra.ExactArgs(2),
	Run:  bpsk.BPSKRun,
}

// toolsResultsCmd represents the results command
var toolsResultsCmd = &cobra.Command{
	Use:     "results",
	Aliases: []string{"r"},
	Short:   "A tool to organize results for graphing and comparison",
	Long:    `A tool to organize results for graphing and comparison`,
}

// toolsCSVCmd represents the csv command
var toolsCSVCmd = &cobra.Command{
	Use:     "csv RESULTS_JSON [RESULTS_JSON] ...",
	Aliases: []string{"c"},
	Short:   "Export to a CSV file",
	Long:    `Export to a CSV file`,
	Args:    cobra.MinimumNArgs(1),
	Run:     csv.CSVRun,
}

// toolsChartCmd represents the chart command
var toolsChartCmd = &cobra.Command{
	Use:   "chart RESULTS_JSON [RESULTS_JSON] ...",
	Short: "Export to an HTML bar chart",
	Long:  `Export to an HTML bar chart`,
	Args:  cobra.MinimumNArgs(1),
	Run:   chart.ChartRun,
}

func init() {
	rootCmd.AddCommand(toolsCmd)
	toolsCmd.AddCommand(toolsChansimCmd)
	toolsCmd.AddCommand(toolsResultsCmd)

	toolsChansimCmd.AddCommand(toolsBscCmd)
	toolsBscCmd.Flags().UintVarP(&bsc.Trials, "trials", "t", 100_000, "the number of trials per step")
	toolsBscCmd.Flags().Float64SliceVarP(&bsc.ErrorProbability, "probability", "p", []float64{0.001, 0.005, 0.01, 0.05, 0.10, 0.15, 0.20}, "probability of crossover errors to test [0, 1]")
	toolsBscCmd.Flags().UintVar(&bsc.Threads, "threads", 0, "number of threads to use (0 means to use the # of threads equal to the # of CPUs)")
	toolsBscCmd.Flags().StringVarP(&bsc.ConfigFile, "config", "c", "", "YAML file with trials, threads and points (the probabilities)")

	toolsChansimCmd.AddCommand(toolsBpskCmd)
	toolsBpskCmd.Flags().UintVarP(&bpsk.Trials, "trials", "t", 100_000, "the number of trials per step")
	toolsBpskCmd.Flags().Float64SliceVarP(&bpsk.EbN0, "ebn0", "e", []float64{0.5, 1, 2, 4, 8}, "the E_b/N_0 ratios to test (>0)")
	toolsBpskCmd.Flags().UintVar(&bpsk.Threads, "threads", 0, "number of threads to use (0 means to use the # of threads equal to the # of CPUs)")
	toolsBpskCmd.Flags().StringVarP(&bpsk.ConfigFile, "config", "c", "", "YAML file with trials, threads and points (the E_b/N_0 ratios)")

	toolsResultsCmd.AddCommand(toolsCSVCmd)
	toolsCSVCmd.Flags().StringVarP(&csv.OutputFile, "output", "o", "results.csv", "filename of the combined csv")
	toolsCSVCmd.Flags().BoolVarP(&csv.MessageError, "message", "m", false, "outputs the MessageError instead of CodewordError or ParityError")
	toolsCSVCmd.Flags().BoolVarP(&csv.ParityError, "parity", "p", false, "outputs the ParityError instead of CodewordError or MessageError")

	toolsResultsCmd.AddCommand(toolsChartCmd)
	toolsChartCmd.Flags().StringVarP(&chart.OutputFile, "output", "o", "results.html", "filename of the chart")
	toolsChartCmd.Flags().BoolVarP(&chart.MessageError, "message", "m", false, "charts the MessageError instead of the CodewordError")
}
