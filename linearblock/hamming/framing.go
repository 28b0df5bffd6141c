package hamming

import (
	"fmt"

	"github.com/nathanhack/gf2codes/gf2"
	"github.com/nathanhack/gf2codes/linearblock"
	mat "github.com/nathanhack/sparsemat"
)

// Frame packs data into a message for the smallest Hamming code that holds it:
// an r bit length prefix, the data, then zero padding up to 2^r-r-1 bits.
// Data longer than DataCapacity(30) has no such code and panics; EncodeData
// reports it as ErrFormat instead.
func Frame(data mat.SparseVector) mat.SparseVector {
	length := data.Len()
	r, ok := RedundancyForData(length)
	if !ok {
		panic(fmt.Sprintf("data length <= %v required but found %v", DataCapacity(maxRedundancy), length))
	}

	message := mat.CSRVec(MessageLength(r))
	for _, i := range gf2.BinaryEncode(length, r).NonzeroArray() {
		message.Set(i, 1)
	}
	for _, i := range data.NonzeroArray() {
		message.Set(r+i, 1)
	}
	return message
}

// MessageFromCodeword drops the parity bits (1-indexed positions 1,2,4,8,...)
// from codeword and returns the message bits in order.
func MessageFromCodeword(codeword mat.SparseVector) (mat.SparseVector, error) {
	r, err := redundancy(codeword)
	if err != nil {
		return nil, err
	}

	message := mat.CSRVec(MessageLength(r))
	j := 0
	for i := 0; i < codeword.Len(); i++ {
		if gf2.IsPowerOfTwo(i + 1) {
			continue
		}
		if codeword.At(i) == 1 {
			message.Set(j, 1)
		}
		j++
	}
	return message, nil
}

// DataFromMessage reads the length prefix of a framed message and returns the
// data it describes.
func DataFromMessage(message mat.SparseVector) (mat.SparseVector, error) {
	k := message.Len()
	r, ok := RedundancyForMessage(k)
	if !ok {
		return nil, fmt.Errorf("%w: message length %v is not 2^r-r-1 for any r>=2", linearblock.ErrFormat, k)
	}
	if k < r {
		return nil, fmt.Errorf("%w: message of %v bits cannot hold a %v bit length prefix", linearblock.ErrFormat, k, r)
	}

	length := gf2.BinaryDecode(message.Slice(0, r))
	if r+length > k {
		return nil, fmt.Errorf("%w: length prefix %v overruns the %v bit message", linearblock.ErrFormat, length, k)
	}
	if length == 0 {
		return mat.CSRVec(0), nil
	}
	return message.Slice(r, length), nil
}

// EncodeData frames data and encodes the resulting message.
func EncodeData(data mat.SparseVector) (codeword mat.SparseVector, err error) {
	if _, ok := RedundancyForData(data.Len()); !ok {
		return nil, fmt.Errorf("%w: %v data bits exceed the largest framed message (%v bits)", linearblock.ErrFormat, data.Len(), DataCapacity(maxRedundancy))
	}
	return Encode(Frame(data))
}

// DecodeData corrects codeword and unpacks the data framed inside it.
func DecodeData(codeword mat.SparseVector) (data mat.SparseVector, err error) {
	corrected, err := Decode(codeword)
	if err != nil {
		return nil, err
	}
	message, err := MessageFromCodeword(corrected)
	if err != nil {
		return nil, err
	}
	return DataFromMessage(message)
}
