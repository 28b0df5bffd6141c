// Package gf2 holds the small amount of linear algebra over the two element
// field needed by the block codes: fixed width binary encoding of integers and
// row-vector by matrix multiplication. Vectors and matrices are sparsemat types,
// which store only the set positions and reduce every value mod 2.
package gf2

import (
	"fmt"
	"strings"
	"unicode"

	mat "github.com/nathanhack/sparsemat"
)

// BinaryEncode returns the width bit unsigned representation of value, most
// significant bit first. Values that do not fit keep their low order width bits.
func BinaryEncode(value, width int) mat.SparseVector {
	if width < 0 {
		panic(fmt.Sprintf("width >= 0 required but found %v", width))
	}

	vec := mat.CSRVec(width)
	for i := 0; i < width; i++ {
		shift := width - 1 - i
		if shift < 63 && (value>>shift)&1 == 1 {
			vec.Set(i, 1)
		}
	}
	return vec
}

// BinaryDecode reads v as an unsigned integer, most significant bit first.
func BinaryDecode(v mat.SparseVector) int {
	value := 0
	for i := 0; i < v.Len(); i++ {
		value = value<<1 | v.At(i)
	}
	return value
}

// Multiply returns vector*matrix. The vector length must equal the number of
// rows in the matrix and the result has one entry per column, each the XOR over
// rows of matrix[row][col] AND vector[row].
func Multiply(vector mat.SparseVector, matrix mat.SparseMat) mat.SparseVector {
	rows, cols := matrix.Dims()
	if vector.Len() != rows {
		panic(fmt.Sprintf("vector length == %v is required but found %v", rows, vector.Len()))
	}

	result := mat.CSRVec(cols)
	result.MulMat(vector, matrix)
	return result
}

// IsPowerOfTwo reports whether x is a positive power of two.
func IsPowerOfTwo(x int) bool {
	return x > 0 && x&(x-1) == 0
}

// FromBits builds a vector from a slice of 0/1 values.
func FromBits(bits []int) mat.SparseVector {
	vec := mat.CSRVec(len(bits))
	for i, b := range bits {
		if b&1 == 1 {
			vec.Set(i, 1)
		}
	}
	return vec
}

// Bits returns the entries of v as a slice of 0/1 values.
func Bits(v mat.SparseVector) []int {
	bits := make([]int, v.Len())
	for i := range bits {
		bits[i] = v.At(i)
	}
	return bits
}

// Format renders v as a string of '0' and '1' runes.
func Format(v mat.SparseVector) string {
	buf := strings.Builder{}
	for i := 0; i < v.Len(); i++ {
		if v.At(i) == 1 {
			buf.WriteByte('1')
		} else {
			buf.WriteByte('0')
		}
	}
	return buf.String()
}

// ParseBits parses text such as "1011" or "1,0,1,1" into a vector.
// Whitespace, '_' and ',' are ignored.
func ParseBits(s string) (mat.SparseVector, error) {
	bits := make([]int, 0, len(s))
	for i, r := range s {
		switch {
		case r == '0':
			bits = append(bits, 0)
		case r == '1':
			bits = append(bits, 1)
		case r == '_' || r == ',' || unicode.IsSpace(r):
		default:
			return nil, fmt.Errorf("invalid bit %q at offset %v", r, i)
		}
	}
	return FromBits(bits), nil
}
