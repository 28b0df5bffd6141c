package benchmarking

import (
	"errors"
	"fmt"

	"github.com/nathanhack/gf2codes/linearblock"
	"github.com/nathanhack/gf2codes/linearblock/hamming"
	"github.com/nathanhack/gf2codes/linearblock/repetition"
	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
	mat2 "gonum.org/v1/gonum/mat"
)

// Codec is what the channel simulators need from a code.
type Codec interface {
	Name() string
	MessageLength() int
	ParitySymbols() int
	CodewordLength() int
	Encode(message mat.SparseVector) (codeword mat.SparseVector, err error)
	// Correct repairs channel errors in codeword where it can.
	Correct(codeword mat.SparseVector) (corrected mat.SparseVector, err error)
	// Extract returns the message carried by codeword.
	Extract(codeword mat.SparseVector) (message mat.SparseVector, err error)
}

// Hamming is a Hamming(2^r-1, 2^r-r-1) code encoded with the generator of ECC
// and repaired by syndrome decoding. ECC.H must be hamming.ParityCheckMatrix(r).
type Hamming struct {
	ECC *linearblock.LinearBlock
}

// NewHamming builds the Hamming code with r parity symbols.
func NewHamming(r int) (Hamming, error) {
	ecc, err := hamming.New(r)
	if err != nil {
		return Hamming{}, err
	}
	return Hamming{ECC: ecc}, nil
}

func (h Hamming) Name() string {
	return fmt.Sprintf("hamming(%v,%v)", h.CodewordLength(), h.MessageLength())
}
func (h Hamming) MessageLength() int  { return h.ECC.MessageLength() }
func (h Hamming) ParitySymbols() int  { return h.ECC.ParitySymbols() }
func (h Hamming) CodewordLength() int { return h.ECC.CodewordLength() }

func (h Hamming) Encode(message mat.SparseVector) (mat.SparseVector, error) {
	return h.ECC.Encode(message)
}

func (h Hamming) Correct(codeword mat.SparseVector) (mat.SparseVector, error) {
	corrected, _, err := hamming.Correct(codeword)
	return corrected, err
}

func (h Hamming) Extract(codeword mat.SparseVector) (mat.SparseVector, error) {
	return hamming.MessageFromCodeword(codeword)
}

// Repetition is an [n,1] repetition code encoded with the generator of ECC
// and repaired by majority vote.
type Repetition struct {
	ECC *linearblock.LinearBlock
}

// NewRepetition builds the [n,1] repetition code.
func NewRepetition(n int) (Repetition, error) {
	ecc, err := repetition.New(n)
	if err != nil {
		return Repetition{}, err
	}
	return Repetition{ECC: ecc}, nil
}

func (r Repetition) Name() string {
	return fmt.Sprintf("repetition(%v,1)", r.CodewordLength())
}
func (r Repetition) MessageLength() int  { return r.ECC.MessageLength() }
func (r Repetition) ParitySymbols() int  { return r.ECC.ParitySymbols() }
func (r Repetition) CodewordLength() int { return r.ECC.CodewordLength() }

func (r Repetition) Encode(message mat.SparseVector) (mat.SparseVector, error) {
	return r.ECC.Encode(message)
}

func (r Repetition) Correct(codeword mat.SparseVector) (mat.SparseVector, error) {
	bit, err := repetition.Decode(codeword)
	if err != nil {
		return nil, err
	}
	return r.ECC.Encode(bit)
}

func (r Repetition) Extract(codeword mat.SparseVector) (mat.SparseVector, error) {
	return repetition.Decode(codeword)
}

// BSC returns the encode, repair and metrics stages of a binary symmetric
// channel benchmark for codec.
func BSC(codec Codec) (BinarySymmetricChannelEncoder, BinarySymmetricChannelCorrection, BinarySymmetricChannelMetrics) {
	encode := func(message mat.SparseVector) mat.SparseVector {
		return mustEncode(codec, message)
	}

	repair := func(originalCodeword, channelInducedCodeword mat.SparseVector) mat.SparseVector {
		return correct(codec, channelInducedCodeword)
	}

	metrics := func(originalMessage, originalCodeword, fixedChannelInducedCodeword mat.SparseVector) (float64, float64, float64) {
		codewordErrors := originalCodeword.HammingDistance(fixedChannelInducedCodeword)
		return rates(codec, originalMessage, fixedChannelInducedCodeword, codewordErrors)
	}
	return encode, repair, metrics
}

// BPSK returns the encode, repair and metrics stages of a BPSK benchmark for
// codec. Repair takes a hard decision at 0 before correcting.
func BPSK(codec Codec) (BPSKChannelEncoder, BPSKChannelCorrection, BPSKChannelMetrics) {
	encode := func(message mat.SparseVector) mat2.Vector {
		return BitsToBPSK(mustEncode(codec, message))
	}

	repair := func(originalCodeword, channelInducedCodeword mat2.Vector) mat2.Vector {
		return BitsToBPSK(correct(codec, BPSKToBits(channelInducedCodeword, 0)))
	}

	metrics := func(originalMessage mat.SparseVector, originalCodeword, fixedChannelInducedCodeword mat2.Vector) (float64, float64, float64) {
		codewordErrors := HammingDistanceBPSK(originalCodeword, fixedChannelInducedCodeword)
		return rates(codec, originalMessage, BPSKToBits(fixedChannelInducedCodeword, 0), codewordErrors)
	}
	return encode, repair, metrics
}

func mustEncode(codec Codec, message mat.SparseVector) mat.SparseVector {
	codeword, err := codec.Encode(message)
	if err != nil {
		panic(fmt.Sprintf("%v: unable to encode message: %v", codec.Name(), err))
	}
	return codeword
}

// correct falls back to the received codeword when the decoder gives up.
func correct(codec Codec, received mat.SparseVector) mat.SparseVector {
	corrected, err := codec.Correct(received)
	if err != nil {
		if !errors.Is(err, linearblock.ErrUndecidable) {
			logrus.Errorf("%v: %v", codec.Name(), err)
		}
		return received
	}
	return corrected
}

func rates(codec Codec, originalMessage, fixed mat.SparseVector, codewordErrors int) (percentFixedCodewordErrors, percentFixedMessageErrors, percentFixedParityErrors float64) {
	messageErrors := codec.MessageLength()
	if message, err := codec.Extract(fixed); err == nil {
		messageErrors = message.HammingDistance(originalMessage)
	}
	parityErrors := codewordErrors - messageErrors
	if parityErrors < 0 {
		parityErrors = 0
	}

	percentFixedCodewordErrors = float64(codewordErrors) / float64(codec.CodewordLength())
	percentFixedMessageErrors = float64(messageErrors) / float64(codec.MessageLength())
	percentFixedParityErrors = float64(parityErrors) / float64(codec.ParitySymbols())
	return
}
