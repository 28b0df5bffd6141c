package internal

import (
	mat "github.com/nathanhack/sparsemat"
	"github.com/sirupsen/logrus"
)

//ValidateHGMatrices tests if G*H.T ==0 where H.T is the transpose of H
func ValidateHGMatrices(G, H mat.SparseMat) bool {
	grows, gcols := G.Dims()
	hrows, hcols := H.Dims()
	if gcols != hcols {
		logrus.Debugf("G has %v columns but H has %v", gcols, hcols)
		return false
	}

	//each row of H is a column of H.T, so we cache them up front
	checks := make([]mat.SparseVector, hrows)
	for i := 0; i < hrows; i++ {
		checks[i] = H.Row(i)
	}
	for i := 0; i < grows; i++ {
		row := G.Row(i)
		for j, check := range checks {
			//equiv to (G*H.T)[i][j]
			if row.Dot(check) > 0 {
				logrus.Debugf("row %v of G fails parity check %v", i, j)
				return false
			}
		}
	}

	return true
}
