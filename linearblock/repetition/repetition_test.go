package repetition

import (
	"strconv"
	"testing"

	"github.com/nathanhack/gf2codes/gf2"
	"github.com/nathanhack/gf2codes/linearblock"
	mat "github.com/nathanhack/sparsemat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNew(t *testing.T) {
	for _, n := range []int{2, 3, 5, 8} {
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			lb, err := New(n)
			require.NoError(t, err)
			assert.True(t, lb.Validate())
			assert.Equal(t, 1, lb.MessageLength())
			assert.Equal(t, n, lb.CodewordLength())
			assert.Equal(t, n-1, lb.ParitySymbols())

			codeword, err := lb.Encode(mat.CSRVec(1, 1))
			require.NoError(t, err)
			assert.True(t, codeword.Equals(Encode(1, n)))
		})
	}

	assert.PanicsWithValue(t, "repetition codes require n>=2 but found 1", func() { New(1) })
}

func TestDecode(t *testing.T) {
	tests := []struct {
		codeword string
		expected int
	}{
		{"11111", 1},
		{"00000", 0},
		{"10110", 1},
		{"01001", 0},
		{"1", 1},
		{"100", 0},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			codeword, err := gf2.ParseBits(test.codeword)
			require.NoError(t, err)

			actual, err := Decode(codeword)
			require.NoError(t, err)
			assert.Equal(t, []int{test.expected}, gf2.Bits(actual))
		})
	}
}

func TestDecodeRepeated(t *testing.T) {
	actual, err := Decode(Encode(1, 5))
	require.NoError(t, err)
	assert.Equal(t, []int{1}, gf2.Bits(actual))
}

func TestDecodeTie(t *testing.T) {
	for _, s := range []string{"1100", "10", "010101"} {
		codeword, err := gf2.ParseBits(s)
		require.NoError(t, err)

		actual, err := Decode(codeword)
		assert.Nil(t, actual)
		assert.ErrorIs(t, err, linearblock.ErrUndecidable, s)
	}
}

func TestDecodeEmpty(t *testing.T) {
	_, err := Decode(mat.CSRVec(0))
	assert.ErrorIs(t, err, linearblock.ErrFormat)
}

func TestEncodeNegative(t *testing.T) {
	assert.Panics(t, func() { Encode(1, -1) })
}

// fewer than n/2 flips never changes the decision
func TestDecodeCorrectsMinority(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		bit := rapid.IntRange(0, 1).Draw(t, "bit")
		n := rapid.IntRange(1, 41).Draw(t, "n")
		flips := rapid.SliceOfNDistinct(rapid.IntRange(0, n-1), 0, (n-1)/2, rapid.ID[int]).Draw(t, "flips")

		codeword := Encode(bit, n)
		for _, i := range flips {
			codeword.Set(i, codeword.At(i)^1)
		}

		actual, err := Decode(codeword)
		require.NoError(t, err)
		assert.Equal(t, []int{bit}, gf2.Bits(actual))
	})
}
