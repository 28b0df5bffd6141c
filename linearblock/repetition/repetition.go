// Package repetition implements the [n,1] repetition code: a single bit sent n
// times and recovered by majority vote.
package repetition

import (
	"fmt"

	"github.com/nathanhack/gf2codes/linearblock"
	mat "github.com/nathanhack/sparsemat"
)

// New creates the [n,1] repetition code. Its generator is a single row of ones
// and parity check i compares bit 0 with bit i+1.
func New(n int) (*linearblock.LinearBlock, error) {
	if n < 2 {
		panic(fmt.Sprintf("repetition codes require n>=2 but found %v", n))
	}

	G := mat.CSRMat(1, n)
	G.SetRow(0, Encode(1, n))

	H := mat.CSRMat(n-1, n)
	for i := 0; i < n-1; i++ {
		row := mat.CSRVec(n)
		row.Set(0, 1)
		row.Set(i+1, 1)
		H.SetRow(i, row)
	}

	lb := &linearblock.LinearBlock{H: H, G: G}
	if !lb.Validate() {
		return nil, fmt.Errorf("generator for n=%v does not satisfy the parity checks", n)
	}
	return lb, nil
}

// Encode returns bit repeated n times.
func Encode(bit, n int) mat.SparseVector {
	if n < 0 {
		panic(fmt.Sprintf("n >= 0 required but found %v", n))
	}
	codeword := mat.CSRVec(n)
	if bit&1 == 1 {
		for i := 0; i < n; i++ {
			codeword.Set(i, 1)
		}
	}
	return codeword
}

// Decode returns a one bit vector holding the majority value of codeword.
// An even length codeword split evenly between zeros and ones is an erasure
// and yields ErrUndecidable.
func Decode(codeword mat.SparseVector) (mat.SparseVector, error) {
	if codeword.Len() == 0 {
		return nil, fmt.Errorf("%w: empty repetition codeword", linearblock.ErrFormat)
	}

	var counts [2]int
	counts[1] = codeword.HammingWeight()
	counts[0] = codeword.Len() - counts[1]

	majority := 0
	if counts[1] > counts[0] {
		majority = 1
	}
	if 2*counts[majority] == codeword.Len() {
		return nil, fmt.Errorf("%w: %v zeros and %v ones", linearblock.ErrUndecidable, counts[0], counts[1])
	}

	return mat.CSRVec(1, majority), nil
}
