package hamming

// maxRedundancy bounds the searches below; a codeword for r=30 is already
// a billion bits and the generator matrix is quadratic in that.
const maxRedundancy = 30

// CodewordLength returns n = 2^r-1.
func CodewordLength(r int) int {
	return 1<<r - 1
}

// MessageLength returns k = 2^r-r-1.
func MessageLength(r int) int {
	return CodewordLength(r) - r
}

// DataCapacity returns how many data bits fit in a framed message for r,
// i.e. the message length minus its r bit length prefix. It is negative for r=2.
func DataCapacity(r int) int {
	return MessageLength(r) - r
}

// RedundancyForMessage finds the r with MessageLength(r) == k.
func RedundancyForMessage(k int) (r int, ok bool) {
	for r = 2; r <= maxRedundancy; r++ {
		m := MessageLength(r)
		if m == k {
			return r, true
		}
		if m > k {
			break
		}
	}
	return 0, false
}

// RedundancyForCodeword finds the r >= 2 with CodewordLength(r) == n.
func RedundancyForCodeword(n int) (r int, ok bool) {
	for r = 2; r <= maxRedundancy; r++ {
		c := CodewordLength(r)
		if c == n {
			return r, true
		}
		if c > n {
			break
		}
	}
	return 0, false
}

// RedundancyForData finds the smallest r >= 2 whose DataCapacity holds dataLength bits.
func RedundancyForData(dataLength int) (r int, ok bool) {
	for r = 2; r <= maxRedundancy; r++ {
		if DataCapacity(r) >= dataLength {
			return r, true
		}
	}
	return 0, false
}
