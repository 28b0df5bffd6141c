package hamming

import (
	"fmt"

	"github.com/nathanhack/gf2codes/gf2"
	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
)

// GeneratorMatrix returns the k x n generator of the Hamming(2^r-1, 2^r-r-1) code.
// Encoding with it leaves the message bits unchanged at the codeword positions
// that are not powers of two (1-indexed) and puts the parity bits at the rest.
func GeneratorMatrix(r int) mat.SparseMat {
	if r < 2 {
		panic(fmt.Sprintf("hamming codes require >=2 parity symbols but found %v", r))
	}
	n := CodewordLength(r)
	k := n - r
	logrus.Debugf("Creating generator matrix for r=%v (n=%v, k=%v)", r, n, k)

	//pi lists the parity positions, largest first, then the message positions
	// block by block: (2^j, 2^(j+1)) for j=1..r-1
	pi := make([]int, 0, n)
	for i := 0; i < r; i++ {
		pi = append(pi, 1<<(r-i-1))
	}
	for j := 1; j < r; j++ {
		for p := 1<<j + 1; p < 1<<(j+1); p++ {
			pi = append(pi, p)
		}
	}

	//rho = pi^-1, where rho[x] is the index of x+1 in pi
	rho := make([]int, n)
	for i, p := range pi {
		rho[p-1] = i
	}

	//H' holds the r bit names of the message positions
	HPrime := mat.CSRMat(k, r)
	for i := r; i < n; i++ {
		HPrime.SetRow(i-r, gf2.BinaryEncode(pi[i], r))
	}

	//GG = [H'^T ; I_k]
	GG := mat.CSRMat(n, k)
	GG.SetMatrix(HPrime.T(), 0, 0)
	GG.SetMatrix(mat.CSRIdentity(k), r, 0)

	//move each row of GG to its codeword position, giving G^T
	GT := mat.CSRMat(n, k)
	for i := 0; i < n; i++ {
		GT.SetRow(i, GG.Row(rho[i]))
	}

	logrus.Debugf("Generator matrix complete")
	return GT.T()
}

// ParityCheckMatrix returns the r x n parity check matrix whose column i is
// the r bit encoding of i+1, most significant bit first.
func ParityCheckMatrix(r int) mat.SparseMat {
	if r < 2 {
		panic(fmt.Sprintf("hamming codes require >=2 parity symbols but found %v", r))
	}
	n := CodewordLength(r)
	H := mat.CSRMat(r, n)
	for i := 1; i <= n; i++ {
		H.SetColumn(i-1, gf2.BinaryEncode(i, r))
	}
	return H
}
