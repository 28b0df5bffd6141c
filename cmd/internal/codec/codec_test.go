package codec

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/nathanhack/gf2codes/linearblock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reset() {
	Repetition = 0
	Raw = false
}

func TestEncodeDecode(t *testing.T) {
	tests := []struct {
		raw        bool
		repetition uint
		input      string
		encoded    string
		corrupted  string
		decoded    string
	}{
		{false, 0, "101", "110001101010000", "110001101000000", "101"},
		{true, 0, "1011", "0110011", "0110111", "1011"},
		{true, 0, "1", "111", "011", "1"},
		{false, 3, "10", "111000", "101010", "10"},
		{false, 4, "1", "1111", "1100", "?"},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			defer reset()
			Raw = test.raw
			Repetition = test.repetition

			buf := &bytes.Buffer{}
			require.NoError(t, Encode(buf, test.input))
			assert.Equal(t, test.encoded+"\n", buf.String())

			buf.Reset()
			require.NoError(t, Decode(buf, test.corrupted))
			assert.Equal(t, test.decoded+"\n", buf.String())
		})
	}
}

func TestDecodeInvalid(t *testing.T) {
	defer reset()

	assert.ErrorIs(t, Decode(&bytes.Buffer{}, "101010"), linearblock.ErrFormat)
	assert.Error(t, Decode(&bytes.Buffer{}, "10x"))

	Raw = true
	assert.ErrorIs(t, Encode(&bytes.Buffer{}, "10101"), linearblock.ErrFormat)

	Raw = false
	Repetition = 3
	assert.ErrorIs(t, Decode(&bytes.Buffer{}, "1111"), linearblock.ErrFormat)
}
