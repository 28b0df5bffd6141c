package hamming

import (
	"errors"
	"fmt"
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
	tests := []struct {
		paritySymbols int
	}{
		{2}, {3}, {4}, {5}, {6},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual, err := New(test.paritySymbols)
			if err != nil {
				t.Fatalf("expected no error found :%v", err)
			}

			if !actual.Validate() {
				t.Fatalf("expected valid linearblock code")
			}
			if actual.CodewordLength() != CodewordLength(test.paritySymbols) {
				t.Fatalf("expected codeword length %v but found %v", CodewordLength(test.paritySymbols), actual.CodewordLength())
			}
			if actual.MessageLength() != MessageLength(test.paritySymbols) {
				t.Fatalf("expected message length %v but found %v", MessageLength(test.paritySymbols), actual.MessageLength())
			}
		})
	}
}

func TestNewPanicsBelowTwo(t *testing.T) {
	assert.PanicsWithValue(t, "hamming codes require >=2 parity symbols but found 1", func() { New(1) })
	assert.Panics(t, func() { GeneratorMatrix(1) })
	assert.Panics(t, func() { ParityCheckMatrix(0) })
}

func TestGeneratorMatrix(t *testing.T) {
	tests := []struct {
		r        int
		expected []string
	}{
		{2, []string{"111"}},
		{3, []string{
			"1110000",
			"1001100",
			"0101010",
			"1101001",
		}},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			G := GeneratorMatrix(test.r)
			rows, cols := G.Dims()
			require.Equal(t, len(test.expected), rows)
			require.Equal(t, CodewordLength(test.r), cols)
			for row, expected := range test.expected {
				assert.Equal(t, expected, gf2.Format(G.Row(row)), "row %v", row)
			}
		})
	}
}

func TestGeneratorMatrixCopiesMessageBits(t *testing.T) {
	for r := 2; r <= 6; r++ {
		G := GeneratorMatrix(r)
		k, n := G.Dims()
		message := 0
		for col := 0; col < n; col++ {
			if gf2.IsPowerOfTwo(col + 1) {
				continue
			}
			for row := 0; row < k; row++ {
				expected := 0
				if row == message {
					expected = 1
				}
				if G.Row(row).At(col) != expected {
					t.Fatalf("r=%v: expected G[%v][%v]=%v", r, row, col, expected)
				}
			}
			message++
		}
	}
}

func TestEncodeR2(t *testing.T) {
	codeword, err := Encode(mat.CSRVec(1, 1))
	require.NoError(t, err)
	assert.Equal(t, "111", gf2.Format(codeword))

	decoded, err := Decode(mat.CSRVec(3, 1, 1, 0))
	require.NoError(t, err)
	assert.Equal(t, "111", gf2.Format(decoded))
}

func TestEncode(t *testing.T) {
	tests := []struct {
		message  string
		codeword string
	}{
		{"1011", "0110011"},
		{"0000", "0000000"},
		{"1111", "1111111"},
		{"00111010000", "110001101010000"},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			message, err := gf2.ParseBits(test.message)
			require.NoError(t, err)

			actual, err := Encode(message)
			require.NoError(t, err)
			assert.Equal(t, test.codeword, gf2.Format(actual))
		})
	}
}

func TestEncodeInvalidLength(t *testing.T) {
	for _, length := range []int{2, 3, 5, 10, 12} {
		actual, err := Encode(mat.CSRVec(length))
		assert.Nil(t, actual)
		assert.True(t, errors.Is(err, linearblock.ErrFormat), "length %v: %v", length, err)
	}
}

func TestDecodeInvalidLength(t *testing.T) {
	for _, length := range []int{1, 2, 4, 6, 14, 16} {
		actual, err := Decode(mat.CSRVec(length))
		assert.Nil(t, actual)
		assert.ErrorIs(t, err, linearblock.ErrFormat, "length %v", length)

		_, err = MessageFromCodeword(mat.CSRVec(length))
		assert.ErrorIs(t, err, linearblock.ErrFormat, "length %v", length)

		_, err = Syndrome(mat.CSRVec(length))
		assert.ErrorIs(t, err, linearblock.ErrFormat, "length %v", length)
	}
}

// every message for small codes: encode, check, then flip each bit and repair
func TestSingleErrorCorrectionExhaustive(t *testing.T) {
	for r := 2; r <= 4; r++ {
		k := MessageLength(r)
		n := CodewordLength(r)
		for m := 0; m < 1<<k; m++ {
			message := gf2.BinaryEncode(m, k)
			codeword, err := Encode(message)
			require.NoError(t, err)

			extracted, err := MessageFromCodeword(codeword)
			require.NoError(t, err)
			require.True(t, extracted.Equals(message), "r=%v message %v extracted %v", r, message, extracted)

			unchanged, index, err := Correct(codeword)
			require.NoError(t, err)
			require.Equal(t, -1, index)
			require.True(t, unchanged.Equals(codeword), "r=%v valid codeword %v changed to %v", r, codeword, unchanged)

			for i := 0; i < n; i++ {
				corrupted := mat.CSRVecCopy(codeword)
				corrupted.Set(i, corrupted.At(i)^1)

				fixed, index, err := Correct(corrupted)
				require.NoError(t, err)
				require.Equal(t, i, index)
				require.True(t, fixed.Equals(codeword), "r=%v flip %v: expected %v but found %v", r, i, codeword, fixed)
			}
		}
	}
}

func TestSingleErrorCorrection(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := rapid.IntRange(2, 6).Draw(t, "r")
		bits := rapid.SliceOfN(rapid.IntRange(0, 1), MessageLength(r), MessageLength(r)).Draw(t, "message")
		flip := rapid.IntRange(0, CodewordLength(r)-1).Draw(t, "flip")

		message := gf2.FromBits(bits)
		codeword, err := Encode(message)
		require.NoError(t, err)

		decoded, err := Decode(codeword)
		require.NoError(t, err)
		assert.True(t, decoded.Equals(codeword), "valid codeword changed by Decode")

		corrupted := mat.CSRVecCopy(codeword)
		corrupted.Set(flip, corrupted.At(flip)^1)
		decoded, err = Decode(corrupted)
		require.NoError(t, err)
		assert.True(t, decoded.Equals(codeword), "expected %v but found %v", codeword, decoded)

		extracted, err := MessageFromCodeword(decoded)
		require.NoError(t, err)
		assert.Equal(t, bits, gf2.Bits(extracted))
	})
}

// Two errors are beyond the code: the decoder "corrects" a third position.
func TestDoubleErrorMiscorrects(t *testing.T) {
	codeword, err := Encode(mat.CSRVec(4, 1, 0, 1, 1))
	require.NoError(t, err)

	corrupted := mat.CSRVecCopy(codeword)
	corrupted.Set(0, corrupted.At(0)^1)
	corrupted.Set(1, corrupted.At(1)^1)

	decoded, index, err := Correct(corrupted)
	require.NoError(t, err)
	assert.Equal(t, 2, index)
	assert.False(t, decoded.Equals(codeword))
}

func TestSyndrome(t *testing.T) {
	codeword, err := gf2.ParseBits("0110011")
	require.NoError(t, err)

	s, err := Syndrome(codeword)
	require.NoError(t, err)
	assert.Equal(t, "000", gf2.Format(s))

	codeword.Set(4, codeword.At(4)^1)
	s, err = Syndrome(codeword)
	require.NoError(t, err)
	assert.Equal(t, "101", gf2.Format(s))
}

func TestSyndromeMatchesParityCheckMatrix(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := rapid.IntRange(2, 6).Draw(t, "r")
		bits := rapid.SliceOfN(rapid.IntRange(0, 1), CodewordLength(r), CodewordLength(r)).Draw(t, "codeword")
		codeword := gf2.FromBits(bits)

		lb := &linearblock.LinearBlock{H: ParityCheckMatrix(r), G: GeneratorMatrix(r)}
		expected, err := lb.Syndrome(codeword)
		require.NoError(t, err)

		actual, err := Syndrome(codeword)
		require.NoError(t, err)
		assert.Equal(t, gf2.Bits(expected), gf2.Bits(actual))
	})
}

func ExampleDecode() {
	codeword, _ := Encode(mat.CSRVec(4, 1, 0, 1, 1))
	fmt.Println(gf2.Format(codeword))

	codeword.Set(4, codeword.At(4)^1)
	fmt.Println(gf2.Format(codeword))

	fixed, _ := Decode(codeword)
	fmt.Println(gf2.Format(fixed))
	//Output:
	// 0110011
	// 0110111
	// 0110011
}
