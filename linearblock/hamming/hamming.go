// Package hamming implements the binary Hamming(2^r-1, 2^r-r-1) codes: generator
// construction, encoding, single error syndrome decoding and the framing that
// carries variable length data inside a fixed size message.
package hamming

import (
	"fmt"

	"github.com/nathanhack/gf2codes/gf2"
	"github.com/nathanhack/gf2codes/linearblock"
	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
)

// New creates the hamming code with paritySymbols (r) number of parity symbols.
// Hamming codes can detect up to two-bit errors or correct one-bit errors without
// detection of uncorrected errors.
func New(paritySymbols int) (*linearblock.LinearBlock, error) {
	if paritySymbols < 2 {
		panic(fmt.Sprintf("hamming codes require >=2 parity symbols but found %v", paritySymbols))
	}
	if paritySymbols > maxRedundancy {
		return nil, fmt.Errorf("hamming codes with more than %v parity symbols are not supported", maxRedundancy)
	}

	lb := &linearblock.LinearBlock{
		H: ParityCheckMatrix(paritySymbols),
		G: GeneratorMatrix(paritySymbols),
	}
	if !lb.Validate() {
		return nil, fmt.Errorf("generator for r=%v does not satisfy the parity checks", paritySymbols)
	}
	return lb, nil
}

// Encode maps a message of length 2^r-r-1 onto its codeword of length 2^r-1.
func Encode(message mat.SparseVector) (codeword mat.SparseVector, err error) {
	r, ok := RedundancyForMessage(message.Len())
	if !ok {
		return nil, fmt.Errorf("%w: message length %v is not 2^r-r-1 for any r>=2", linearblock.ErrFormat, message.Len())
	}

	return gf2.Multiply(message, GeneratorMatrix(r)), nil
}

// syndrome returns the 1-indexed position named by the parity checks, which is
// codeword*H^T for the H of ParityCheckMatrix: the XOR of i+1 over every set bit i.
func syndrome(codeword mat.SparseVector) int {
	s := 0
	for _, i := range codeword.NonzeroArray() {
		s ^= i + 1
	}
	return s
}

func redundancy(codeword mat.SparseVector) (int, error) {
	r, ok := RedundancyForCodeword(codeword.Len())
	if !ok {
		return 0, fmt.Errorf("%w: codeword length %v is not 2^r-1 for any r>=2", linearblock.ErrFormat, codeword.Len())
	}
	return r, nil
}

// Syndrome returns the r bit syndrome of codeword. It is zero for a member of the
// code and otherwise spells out the 1-indexed position of a single bit error.
func Syndrome(codeword mat.SparseVector) (mat.SparseVector, error) {
	r, err := redundancy(codeword)
	if err != nil {
		return nil, err
	}
	return gf2.BinaryEncode(syndrome(codeword), r), nil
}

// Correct repairs at most one bit error in codeword. It returns a corrected copy
// and the 0-based index of the flipped bit, or -1 when the syndrome was zero.
func Correct(codeword mat.SparseVector) (corrected mat.SparseVector, errorIndex int, err error) {
	if _, err = redundancy(codeword); err != nil {
		return nil, -1, err
	}

	corrected = mat.CSRVecCopy(codeword)
	errorIndex = syndrome(codeword) - 1
	if errorIndex < 0 {
		return corrected, -1, nil
	}

	logrus.Debugf("Flipping bit %v of %v bit codeword", errorIndex, codeword.Len())
	corrected.Set(errorIndex, corrected.At(errorIndex)^1)
	return corrected, errorIndex, nil
}

// Decode returns the codeword with any single bit error corrected.
// A zero syndrome leaves the codeword unchanged.
func Decode(codeword mat.SparseVector) (mat.SparseVector, error) {
	corrected, _, err := Correct(codeword)
	return corrected, err
}
