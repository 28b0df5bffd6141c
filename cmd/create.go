package cmd

import (
	"github.com/nathanhack/gf2codes/cmd/internal/create/hamming"
	"github.com/nathanhack/gf2codes/cmd/internal/create/repetition"

	"github.com/spf13/cobra"
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:     "create",
	Aliases: []string{"c"},
	Short:   "used to create a new ECC",
	Long:    `create provides the ability to make a new ECC from the list of built-in ECCs and save them so they can be used later by the tools.`,
}

// createlinearblockCmd represents the linearblock command
var createlinearblockCmd = &cobra.Command{
	Use:     "linearblock",
	Aliases: []string{"lb", "l"},
	Short:   "creates linearblock ECCs",
	Long:    `Creates linearblock ECCs.`,
}

// createHammingCmd represents the Hamming command
var createHammingCmd = &cobra.Command{
	Use:     "hamming OUTPUT_HAMMING_JSON",
	Aliases: []string{"h", "ham"},
	Short:   "Creates a new Hamming code based ECC",
	Long:    `Creates a new Hamming code based ECC.`,
	Args:    cobra.ExactArgs(1),
	Run:     hamming.HammingRun,
}

// createRepetitionCmd represents the repetition command
var createRepetitionCmd = &cobra.Command{
	Use:     "repetition OUTPUT_REPETITION_JSON",
	Aliases: []string{"r", "rep"},
	Short:   "Creates a new repetition code based ECC",
	Long:    `Creates a new repetition code based ECC that sends each bit n times.`,
	Args:    cobra.ExactArgs(1),
	Run:     repetition.RepetitionRun,
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.AddCommand(createlinearblockCmd)

	createlinearblockCmd.AddCommand(createHammingCmd)
	createHammingCmd.Flags().UintVarP(&hamming.ParityBits, "parity", "p", 4, "the parity >=2, sets codeword size (cs) == 2^parity-1 and message size == cs-parity")

	createlinearblockCmd.AddCommand(createRepetitionCmd)
	createRepetitionCmd.Flags().UintVarP(&repetition.Length, "length", "n", 3, "the number of times each bit is sent (>=2)")
}
