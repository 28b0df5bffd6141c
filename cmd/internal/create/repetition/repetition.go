package repetition

import (
	"fmt"

	"github.com/nathanhack/gf2codes/cmd/internal/tools"
	"github.com/nathanhack/gf2codes/linearblock/repetition"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Length uint
)

var RepetitionRun = func(cmd *cobra.Command, args []string) {
	if Length < 2 {
		fmt.Println("repetition codes require a length >= 2")
		return
	}

	r, err := repetition.New(int(Length))
	if err != nil {
		fmt.Println("Unable to create repetition code: ", err)
		return
	}

	err = tools.SaveLinearBlockECC(args[0], r)
	if err != nil {
		fmt.Println(err)
		return
	}
	logrus.Infof("Repetition(%v,1) Message Size:%v Parity Size:%v  Codeword Size:%v  Code Rate: %v", r.CodewordLength(), r.MessageLength(), r.ParitySymbols(), r.CodewordLength(), r.CodeRate())
	logrus.Infof("Wrote %v", args[0])
}
