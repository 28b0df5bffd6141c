package hamming

import (
	"fmt"

	"github.com/nathanhack/gf2codes/cmd/internal/tools"
	"github.com/nathanhack/gf2codes/linearblock/hamming"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	ParityBits uint
)

var HammingRun = func(cmd *cobra.Command, args []string) {
	if ParityBits < 2 {
		fmt.Println("hamming codes require a parity >= 2")
		return
	}

	logrus.Debugf("Creating hamming code with %v parity bits", ParityBits)
	h, err := hamming.New(int(ParityBits))
	if err != nil {
		fmt.Println("Unable to create hamming code: ", err)
		return
	}

	err = tools.SaveLinearBlockECC(args[0], h)
	if err != nil {
		fmt.Println(err)
		return
	}
	logrus.Infof("Hamming(%v,%v) Message Size:%v Parity Size:%v  Codeword Size:%v  Code Rate: %v", h.CodewordLength(), h.MessageLength(), h.MessageLength(), h.ParitySymbols(), h.CodewordLength(), h.CodeRate())
	logrus.Infof("Wrote %v", args[0])
}
