package linearblock

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/nathanhack/gf2codes/gf2"
	"github.com/nathanhack/gf2codes/linearblock/internal"
	mat "github.com/nathanhack/sparsemat"
)

var (
	// ErrFormat is returned when a vector's length does not correspond to any
	// valid parameter of the code, or when a framed message is malformed.
	ErrFormat = errors.New("format error")

	// ErrUndecidable is returned when a decoder cannot pick a value, e.g. a
	// repetition codeword with as many zeros as ones.
	ErrUndecidable = errors.New("undecidable")
)

//LinearBlock contains the parity check matrix H and the generator G of a binary linear block code.
type LinearBlock struct {
	H mat.SparseMat // parity check matrix, (n-k) x n
	G mat.SparseMat // generator matrix, k x n
}

//// For JSON unmarshalling
type linearblock struct {
	H mat.CSRMatrix
	G mat.CSRMatrix
}

//UnmarshalJSON is needed because LinearBlock has a mat.SparseMat and requires special handling
func (l *LinearBlock) UnmarshalJSON(bytes []byte) error {
	var lb linearblock
	err := json.Unmarshal(bytes, &lb)
	if err != nil {
		return err
	}

	l.H = &lb.H
	l.G = &lb.G
	return nil
}

//Encode takes in a message and encodes it using the linear block, returning a codeword
func (l *LinearBlock) Encode(message mat.SparseVector) (codeword mat.SparseVector, err error) {
	if message.Len() != l.MessageLength() {
		return nil, fmt.Errorf("%w: message length == %v required but found %v", ErrFormat, l.MessageLength(), message.Len())
	}

	return gf2.Multiply(message, l.G), nil
}

//Syndrome returns H*codeword, which is zero exactly when codeword is a member of the code.
func (l *LinearBlock) Syndrome(codeword mat.SparseVector) (syndrome mat.SparseVector, err error) {
	if codeword.Len() != l.CodewordLength() {
		return nil, fmt.Errorf("%w: codeword length == %v required but found %v", ErrFormat, l.CodewordLength(), codeword.Len())
	}

	syndrome = mat.CSRVec(l.ParitySymbols())
	syndrome.MatMul(l.H, codeword)
	return syndrome, nil
}

func (l *LinearBlock) MessageLength() int {
	k, _ := l.G.Dims()
	return k
}
func (l *LinearBlock) ParitySymbols() int {
	m, _ := l.H.Dims()
	return m
}
func (l *LinearBlock) CodewordLength() int {
	_, n := l.H.Dims()
	return n
}
func (l *LinearBlock) CodeRate() float64 {
	return float64(l.MessageLength()) / float64(l.CodewordLength())
}

//Validate will test if this linearblock satisfies G*H.T=0, where G is the generator matrix and H.T is the transpose of H
func (l *LinearBlock) Validate() bool {
	_, gcols := l.G.Dims()
	if gcols != l.CodewordLength() {
		return false
	}
	return internal.ValidateHGMatrices(l.G, l.H)
}

func (l *LinearBlock) String() string {
	buf := strings.Builder{}
	buf.WriteString("{\nH:\n")
	buf.WriteString(l.H.String())
	buf.WriteString("\nG:\n")
	buf.WriteString(l.G.String())
	buf.WriteString("\n}\n")
	return buf.String()
}
