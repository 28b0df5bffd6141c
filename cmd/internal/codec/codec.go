package codec

import (
	"errors"
	"fmt"
	"io"

	"github.com/nathanhack/gf2codes/gf2"
	"github.com/nathanhack/gf2codes/linearblock"
	"github.com/nathanhack/gf2codes/linearblock/hamming"
	"github.com/nathanhack/gf2codes/linearblock/repetition"
	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Repetition uint // when > 0 use the repetition code of this length instead of hamming
	Raw        bool // treat the bits as a message (encode) or return the message (decode) without framing
)

var EncodeRun = func(cmd *cobra.Command, args []string) {
	if err := Encode(cmd.OutOrStdout(), args[0]); err != nil {
		logrus.Error(err)
	}
}

var DecodeRun = func(cmd *cobra.Command, args []string) {
	if err := Decode(cmd.OutOrStdout(), args[0]); err != nil {
		logrus.Error(err)
	}
}

// Encode writes the codeword for bits to w.
func Encode(w io.Writer, bits string) error {
	data, err := gf2.ParseBits(bits)
	if err != nil {
		return err
	}

	if Repetition > 0 {
		for i := 0; i < data.Len(); i++ {
			fmt.Fprint(w, gf2.Format(repetition.Encode(data.At(i), int(Repetition))))
		}
		fmt.Fprintln(w)
		return nil
	}

	var codeword mat.SparseVector
	if Raw {
		codeword, err = hamming.Encode(data)
	} else {
		logrus.Debugf("Framing %v data bits", data.Len())
		codeword, err = hamming.EncodeData(data)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(w, gf2.Format(codeword))
	return nil
}

// Decode writes the data recovered from bits to w.
func Decode(w io.Writer, bits string) error {
	codeword, err := gf2.ParseBits(bits)
	if err != nil {
		return err
	}

	if Repetition > 0 {
		return decodeRepetition(w, gf2.Bits(codeword))
	}

	corrected, index, err := hamming.Correct(codeword)
	if err != nil {
		return err
	}
	if index >= 0 {
		logrus.Infof("Corrected bit %v", index)
	}

	message, err := hamming.MessageFromCodeword(corrected)
	if err != nil {
		return err
	}
	if Raw {
		fmt.Fprintln(w, gf2.Format(message))
		return nil
	}

	data, err := hamming.DataFromMessage(message)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, gf2.Format(data))
	return nil
}

// decodeRepetition decodes consecutive blocks of Repetition bits, writing '?'
// for blocks that are evenly split.
func decodeRepetition(w io.Writer, bits []int) error {
	n := int(Repetition)
	if len(bits)%n != 0 {
		return fmt.Errorf("%w: %v bits is not a multiple of the repetition length %v", linearblock.ErrFormat, len(bits), n)
	}

	for i := 0; i < len(bits); i += n {
		bit, err := repetition.Decode(gf2.FromBits(bits[i : i+n]))
		switch {
		case errors.Is(err, linearblock.ErrUndecidable):
			fmt.Fprint(w, "?")
		case err != nil:
			return err
		default:
			fmt.Fprint(w, gf2.Format(bit))
		}
	}
	fmt.Fprintln(w)
	return nil
}
