package gf2

import (
	"strconv"
	"testing"

	mat "github.com/nathanhack/sparsemat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestBinaryEncode(t *testing.T) {
	tests := []struct {
		value, width int
		expected     mat.SparseVector
	}{
		{0, 3, mat.CSRVec(3, 0, 0, 0)},
		{1, 3, mat.CSRVec(3, 0, 0, 1)},
		{3, 5, mat.CSRVec(5, 0, 0, 0, 1, 1)},
		{6, 3, mat.CSRVec(3, 1, 1, 0)},
		{8, 4, mat.CSRVec(4, 1, 0, 0, 0)},
		{13, 2, mat.CSRVec(2, 0, 1)}, // keeps the low order bits
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual := BinaryEncode(test.value, test.width)
			if !actual.Equals(test.expected) {
				t.Fatalf("expected %v but found %v", test.expected, actual)
			}
		})
	}
}

func TestBinaryEncodeNegativeWidth(t *testing.T) {
	assert.Panics(t, func() { BinaryEncode(1, -1) })
}

func TestBinaryDecodeInvertsEncode(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		width := rapid.IntRange(1, 30).Draw(t, "width")
		value := rapid.IntRange(0, 1<<width-1).Draw(t, "value")

		assert.Equal(t, value, BinaryDecode(BinaryEncode(value, width)))
	})
}

func TestMultiply(t *testing.T) {
	// rows of a 3x4 matrix
	m := mat.CSRMat(3, 4,
		1, 0, 1, 1,
		0, 1, 1, 0,
		1, 1, 0, 1,
	)
	tests := []struct {
		vector   mat.SparseVector
		expected mat.SparseVector
	}{
		{mat.CSRVec(3, 0, 0, 0), mat.CSRVec(4, 0, 0, 0, 0)},
		{mat.CSRVec(3, 1, 0, 0), mat.CSRVec(4, 1, 0, 1, 1)},
		{mat.CSRVec(3, 1, 1, 0), mat.CSRVec(4, 1, 1, 0, 1)},
		{mat.CSRVec(3, 1, 1, 1), mat.CSRVec(4, 0, 0, 0, 0)},
		{mat.CSRVec(3, 0, 1, 1), mat.CSRVec(4, 1, 0, 1, 1)},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual := Multiply(test.vector, m)
			if !actual.Equals(test.expected) {
				t.Fatalf("expected %v but found %v", test.expected, actual)
			}
		})
	}
}

func TestMultiplyDimensionMismatch(t *testing.T) {
	assert.Panics(t, func() {
		Multiply(mat.CSRVec(2, 1, 1), mat.CSRMat(3, 3))
	})
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, x := range []int{1, 2, 4, 8, 1024} {
		assert.True(t, IsPowerOfTwo(x), "%v", x)
	}
	for _, x := range []int{-4, 0, 3, 6, 7, 1023} {
		assert.False(t, IsPowerOfTwo(x), "%v", x)
	}
}

func TestParseBits(t *testing.T) {
	v, err := ParseBits("10_11, 0")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 1, 1, 0}, Bits(v))
	assert.Equal(t, "10110", Format(v))

	_, err = ParseBits("10201")
	assert.Error(t, err)
}

func TestFromBits(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		bits := rapid.SliceOfN(rapid.IntRange(0, 1), 1, 64).Draw(t, "bits")
		assert.Equal(t, bits, Bits(FromBits(bits)))
	})
}
