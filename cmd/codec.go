package cmd

import (
	"github.com/nathanhack/gf2codes/cmd/internal/codec"

	"github.com/spf13/cobra"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:     "encode DATA_BITS",
	Aliases: []string{"e", "enc"},
	Short:   "Encodes a bit string",
	Long: `Frames DATA_BITS with its length, pads it to the smallest Hamming message that
holds it and prints the codeword. With --raw DATA_BITS must already be a message
of 2^r-r-1 bits. With --repetition N every bit is repeated N times instead.`,
	Args: cobra.ExactArgs(1),
	Run:  codec.EncodeRun,
}

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:     "decode CODEWORD_BITS",
	Aliases: []string{"d", "dec"},
	Short:   "Decodes a bit string",
	Long: `Corrects up to one bit error in a Hamming codeword of 2^r-1 bits and prints the
data framed inside it (or the message with --raw). With --repetition N the bits
are majority decoded in blocks of N.`,
	Args: cobra.ExactArgs(1),
	Run:  codec.DecodeRun,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)

	for _, c := range []*cobra.Command{encodeCmd, decodeCmd} {
		c.Flags().UintVarP(&codec.Repetition, "repetition", "n", 0, "use the repetition code of this length instead of hamming")
		c.Flags().BoolVarP(&codec.Raw, "raw", "r", false, "skip the length framing")
	}
}
